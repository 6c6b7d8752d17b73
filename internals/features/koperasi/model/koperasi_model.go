// file: internals/features/koperasi/model/koperasi_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// =========================================================
// ENUM — jenis pemasukan & pengeluaran koperasi
// =========================================================

type JenisPemasukan string

const (
	PemasukanSimpananPokok    JenisPemasukan = "SIMPANAN_POKOK"
	PemasukanSimpananWajib    JenisPemasukan = "SIMPANAN_WAJIB"
	PemasukanSimpananSukarela JenisPemasukan = "SIMPANAN_SUKARELA"
	PemasukanPenyertaanModal  JenisPemasukan = "PENYERTAAN_MODAL"
)

var AllJenisPemasukan = []JenisPemasukan{
	PemasukanSimpananPokok,
	PemasukanSimpananWajib,
	PemasukanSimpananSukarela,
	PemasukanPenyertaanModal,
}

func (j JenisPemasukan) Valid() bool {
	switch j {
	case PemasukanSimpananPokok, PemasukanSimpananWajib, PemasukanSimpananSukarela, PemasukanPenyertaanModal:
		return true
	}
	return false
}

type JenisPengeluaran string

const (
	PengeluaranOperasional       JenisPengeluaran = "OPERASIONAL"
	PengeluaranPembelianBarang   JenisPengeluaran = "PEMBELIAN_BARANG"
	PengeluaranPenarikanSimpanan JenisPengeluaran = "PENARIKAN_SIMPANAN"
	PengeluaranLainnya           JenisPengeluaran = "LAINNYA"
)

var AllJenisPengeluaran = []JenisPengeluaran{
	PengeluaranOperasional,
	PengeluaranPembelianBarang,
	PengeluaranPenarikanSimpanan,
	PengeluaranLainnya,
}

func (j JenisPengeluaran) Valid() bool {
	switch j {
	case PengeluaranOperasional, PengeluaranPembelianBarang, PengeluaranPenarikanSimpanan, PengeluaranLainnya:
		return true
	}
	return false
}

// =========================================================
// MODEL — anggota
// =========================================================

type AnggotaKoperasi struct {
	AnggotaID      uuid.UUID `gorm:"column:anggota_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"anggota_id"`
	AnggotaNama    string    `gorm:"column:anggota_nama;type:varchar(120);not null;index:ix_anggota_nama" json:"anggota_nama"`
	AnggotaAlamat  *string   `gorm:"column:anggota_alamat" json:"anggota_alamat,omitempty"`
	AnggotaTelepon *string   `gorm:"column:anggota_telepon;type:varchar(20)" json:"anggota_telepon,omitempty"`

	AnggotaCreatedAt time.Time `gorm:"column:anggota_created_at;not null;default:now()" json:"anggota_created_at"`
	AnggotaUpdatedAt time.Time `gorm:"column:anggota_updated_at;not null;default:now()" json:"anggota_updated_at"`
}

func (AnggotaKoperasi) TableName() string {
	return "anggota_koperasi"
}

func (m *AnggotaKoperasi) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.AnggotaCreatedAt.IsZero() {
		m.AnggotaCreatedAt = now
	}
	m.AnggotaUpdatedAt = now
	return nil
}

func (m *AnggotaKoperasi) BeforeUpdate(tx *gorm.DB) (err error) {
	m.AnggotaUpdatedAt = time.Now()
	return nil
}

// =========================================================
// MODEL — pemasukan
// =========================================================

type PemasukanKoperasi struct {
	PemasukanID        uuid.UUID      `gorm:"column:pemasukan_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"pemasukan_id"`
	PemasukanAnggotaID uuid.UUID      `gorm:"column:pemasukan_anggota_id;type:uuid;not null;index" json:"pemasukan_anggota_id"`
	PemasukanJenis     JenisPemasukan `gorm:"column:pemasukan_jenis;type:varchar(20);not null;index:ix_pemasukan_jenis" json:"pemasukan_jenis"`

	// Rupiah bulat; non-negatif dijaga validasi input + check constraint
	PemasukanJumlah     int        `gorm:"column:pemasukan_jumlah;not null;check:pemasukan_jumlah>=0" json:"pemasukan_jumlah"`
	PemasukanTanggal    time.Time  `gorm:"column:pemasukan_tanggal;type:date;not null;index:ix_pemasukan_tanggal" json:"pemasukan_tanggal"`
	PemasukanKeterangan *string    `gorm:"column:pemasukan_keterangan" json:"pemasukan_keterangan,omitempty"`
	PemasukanBuktiURL   *string    `gorm:"column:pemasukan_bukti_url" json:"pemasukan_bukti_url,omitempty"`

	PemasukanCreatedAt time.Time `gorm:"column:pemasukan_created_at;not null;default:now()" json:"pemasukan_created_at"`
	PemasukanUpdatedAt time.Time `gorm:"column:pemasukan_updated_at;not null;default:now()" json:"pemasukan_updated_at"`
}

func (PemasukanKoperasi) TableName() string {
	return "pemasukan_koperasi"
}

func (m *PemasukanKoperasi) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.PemasukanCreatedAt.IsZero() {
		m.PemasukanCreatedAt = now
	}
	m.PemasukanUpdatedAt = now
	return nil
}

func (m *PemasukanKoperasi) BeforeUpdate(tx *gorm.DB) (err error) {
	m.PemasukanUpdatedAt = time.Now()
	return nil
}

// =========================================================
// MODEL — pengeluaran
// =========================================================

type PengeluaranKoperasi struct {
	PengeluaranID        uuid.UUID        `gorm:"column:pengeluaran_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"pengeluaran_id"`
	PengeluaranAnggotaID uuid.UUID        `gorm:"column:pengeluaran_anggota_id;type:uuid;not null;index" json:"pengeluaran_anggota_id"`
	PengeluaranJenis     JenisPengeluaran `gorm:"column:pengeluaran_jenis;type:varchar(20);not null;index:ix_pengeluaran_jenis" json:"pengeluaran_jenis"`

	PengeluaranJumlah     int       `gorm:"column:pengeluaran_jumlah;not null;check:pengeluaran_jumlah>=0" json:"pengeluaran_jumlah"`
	PengeluaranTanggal    time.Time `gorm:"column:pengeluaran_tanggal;type:date;not null;index:ix_pengeluaran_tanggal" json:"pengeluaran_tanggal"`
	PengeluaranKeterangan *string   `gorm:"column:pengeluaran_keterangan" json:"pengeluaran_keterangan,omitempty"`
	PengeluaranBuktiURL   *string   `gorm:"column:pengeluaran_bukti_url" json:"pengeluaran_bukti_url,omitempty"`

	PengeluaranCreatedAt time.Time `gorm:"column:pengeluaran_created_at;not null;default:now()" json:"pengeluaran_created_at"`
	PengeluaranUpdatedAt time.Time `gorm:"column:pengeluaran_updated_at;not null;default:now()" json:"pengeluaran_updated_at"`
}

func (PengeluaranKoperasi) TableName() string {
	return "pengeluaran_koperasi"
}

func (m *PengeluaranKoperasi) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.PengeluaranCreatedAt.IsZero() {
		m.PengeluaranCreatedAt = now
	}
	m.PengeluaranUpdatedAt = now
	return nil
}

func (m *PengeluaranKoperasi) BeforeUpdate(tx *gorm.DB) (err error) {
	m.PengeluaranUpdatedAt = time.Now()
	return nil
}
