// file: internals/features/pembayaran/model/pembayaran_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type JenisPembayaran string

const (
	PembayaranSPP     JenisPembayaran = "SPP"
	PembayaranMakan   JenisPembayaran = "MAKAN"
	PembayaranAsrama  JenisPembayaran = "ASRAMA"
	PembayaranLainnya JenisPembayaran = "LAINNYA"
)

var AllJenisPembayaran = []JenisPembayaran{
	PembayaranSPP,
	PembayaranMakan,
	PembayaranAsrama,
	PembayaranLainnya,
}

func (j JenisPembayaran) Valid() bool {
	switch j {
	case PembayaranSPP, PembayaranMakan, PembayaranAsrama, PembayaranLainnya:
		return true
	}
	return false
}

type StatusPembayaran string

const (
	PembayaranLunas      StatusPembayaran = "LUNAS"
	PembayaranBelumLunas StatusPembayaran = "BELUM_LUNAS"
)

func (s StatusPembayaran) Valid() bool {
	return s == PembayaranLunas || s == PembayaranBelumLunas
}

// PembayaranSantri: satu tagihan/pembayaran per santri per jenis per periode.
type PembayaranSantri struct {
	PembayaranID       uuid.UUID        `gorm:"column:pembayaran_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"pembayaran_id"`
	PembayaranSantriID uuid.UUID        `gorm:"column:pembayaran_santri_id;type:uuid;not null;uniqueIndex:uniq_pembayaran_periode,priority:1" json:"pembayaran_santri_id"`
	PembayaranJenis    JenisPembayaran  `gorm:"column:pembayaran_jenis;type:varchar(10);not null;uniqueIndex:uniq_pembayaran_periode,priority:2" json:"pembayaran_jenis"`
	PembayaranBulan    int              `gorm:"column:pembayaran_bulan;not null;check:pembayaran_bulan BETWEEN 1 AND 12;uniqueIndex:uniq_pembayaran_periode,priority:3" json:"pembayaran_bulan"`
	PembayaranTahun    int              `gorm:"column:pembayaran_tahun;not null;uniqueIndex:uniq_pembayaran_periode,priority:4" json:"pembayaran_tahun"`
	PembayaranJumlah   int              `gorm:"column:pembayaran_jumlah;not null;check:pembayaran_jumlah>=0" json:"pembayaran_jumlah"`
	PembayaranStatus   StatusPembayaran `gorm:"column:pembayaran_status;type:varchar(12);not null;default:'BELUM_LUNAS';index:ix_pembayaran_status" json:"pembayaran_status"`
	PembayaranTanggal  *time.Time       `gorm:"column:pembayaran_tanggal_bayar;type:date" json:"pembayaran_tanggal_bayar,omitempty"`
	PembayaranCatatan  *string          `gorm:"column:pembayaran_keterangan" json:"pembayaran_keterangan,omitempty"`
	PembayaranBuktiURL *string          `gorm:"column:pembayaran_bukti_url" json:"pembayaran_bukti_url,omitempty"`

	PembayaranCreatedAt time.Time `gorm:"column:pembayaran_created_at;not null;default:now()" json:"pembayaran_created_at"`
	PembayaranUpdatedAt time.Time `gorm:"column:pembayaran_updated_at;not null;default:now()" json:"pembayaran_updated_at"`
}

func (PembayaranSantri) TableName() string {
	return "pembayaran_santri"
}

func (m *PembayaranSantri) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.PembayaranCreatedAt.IsZero() {
		m.PembayaranCreatedAt = now
	}
	m.PembayaranUpdatedAt = now
	return nil
}

func (m *PembayaranSantri) BeforeUpdate(tx *gorm.DB) (err error) {
	m.PembayaranUpdatedAt = time.Now()
	return nil
}
