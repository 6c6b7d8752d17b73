// file: internals/features/pelanggaran/model/pelanggaran_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type KategoriPelanggaran string

const (
	PelanggaranRingan KategoriPelanggaran = "RINGAN"
	PelanggaranSedang KategoriPelanggaran = "SEDANG"
	PelanggaranBerat  KategoriPelanggaran = "BERAT"
)

var AllKategoriPelanggaran = []KategoriPelanggaran{
	PelanggaranRingan,
	PelanggaranSedang,
	PelanggaranBerat,
}

func (k KategoriPelanggaran) Valid() bool {
	switch k {
	case PelanggaranRingan, PelanggaranSedang, PelanggaranBerat:
		return true
	}
	return false
}

type PelanggaranSantri struct {
	PelanggaranID       uuid.UUID           `gorm:"column:pelanggaran_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"pelanggaran_id"`
	PelanggaranSantriID uuid.UUID           `gorm:"column:pelanggaran_santri_id;type:uuid;not null;index:ix_pelanggaran_santri" json:"pelanggaran_santri_id"`
	PelanggaranJenis    string              `gorm:"column:pelanggaran_jenis;type:varchar(160);not null" json:"pelanggaran_jenis"`
	PelanggaranKategori KategoriPelanggaran `gorm:"column:pelanggaran_kategori;type:varchar(10);not null;index:ix_pelanggaran_kategori" json:"pelanggaran_kategori"`
	PelanggaranTanggal  time.Time           `gorm:"column:pelanggaran_tanggal;type:date;not null;index:ix_pelanggaran_tanggal" json:"pelanggaran_tanggal"`
	PelanggaranHukuman  *string             `gorm:"column:pelanggaran_hukuman" json:"pelanggaran_hukuman,omitempty"`
	PelanggaranCatatan  *string             `gorm:"column:pelanggaran_keterangan" json:"pelanggaran_keterangan,omitempty"`
	PelanggaranBuktiURL *string             `gorm:"column:pelanggaran_bukti_url" json:"pelanggaran_bukti_url,omitempty"`

	PelanggaranCreatedAt time.Time `gorm:"column:pelanggaran_created_at;not null;default:now()" json:"pelanggaran_created_at"`
	PelanggaranUpdatedAt time.Time `gorm:"column:pelanggaran_updated_at;not null;default:now()" json:"pelanggaran_updated_at"`
}

func (PelanggaranSantri) TableName() string {
	return "pelanggaran_santri"
}

func (m *PelanggaranSantri) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.PelanggaranCreatedAt.IsZero() {
		m.PelanggaranCreatedAt = now
	}
	m.PelanggaranUpdatedAt = now
	return nil
}

func (m *PelanggaranSantri) BeforeUpdate(tx *gorm.DB) (err error) {
	m.PelanggaranUpdatedAt = time.Now()
	return nil
}
