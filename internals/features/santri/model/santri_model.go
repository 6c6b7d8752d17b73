// file: internals/features/santri/model/santri_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// =========================================================
// ENUM — status & tingkat santri
// =========================================================

type SantriStatus string

const (
	SantriStatusAktif    SantriStatus = "aktif"
	SantriStatusNonaktif SantriStatus = "nonaktif"
	SantriStatusLulus    SantriStatus = "lulus"
)

func (s SantriStatus) Valid() bool {
	switch s {
	case SantriStatusAktif, SantriStatusNonaktif, SantriStatusLulus:
		return true
	}
	return false
}

type Tingkat string

const (
	TingkatIbtidaiyah Tingkat = "ibtidaiyah"
	TingkatTsanawiyah Tingkat = "tsanawiyah"
	TingkatAliyah     Tingkat = "aliyah"
)

func (t Tingkat) Valid() bool {
	switch t {
	case TingkatIbtidaiyah, TingkatTsanawiyah, TingkatAliyah:
		return true
	}
	return false
}

// =========================================================
// MODEL
// =========================================================

type Santri struct {
	// PK
	SantriID uuid.UUID `gorm:"column:santri_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"santri_id"`

	// Identitas
	SantriNama         string  `gorm:"column:santri_nama;type:varchar(120);not null;index:ix_santri_nama" json:"santri_nama"`
	SantriNIS          string  `gorm:"column:santri_nis;type:varchar(30);not null;uniqueIndex:uniq_santri_nis" json:"santri_nis"`
	SantriNISN         *string `gorm:"column:santri_nisn;type:varchar(20)" json:"santri_nisn,omitempty"`
	SantriJenisKelamin string  `gorm:"column:santri_jenis_kelamin;type:varchar(1);not null" json:"santri_jenis_kelamin"` // L|P
	SantriTempatLahir  *string `gorm:"column:santri_tempat_lahir;type:varchar(60)" json:"santri_tempat_lahir,omitempty"`
	SantriTanggalLahir *time.Time `gorm:"column:santri_tanggal_lahir;type:date" json:"santri_tanggal_lahir,omitempty"`
	SantriAlamat       *string `gorm:"column:santri_alamat" json:"santri_alamat,omitempty"`

	// Kelas/level
	SantriKelas   string       `gorm:"column:santri_kelas;type:varchar(30);not null;index:ix_santri_kelas" json:"santri_kelas"`
	SantriTingkat Tingkat      `gorm:"column:santri_tingkat;type:varchar(20);not null;index:ix_santri_tingkat" json:"santri_tingkat"`
	SantriStatus  SantriStatus `gorm:"column:santri_status;type:varchar(10);not null;default:'aktif';index:ix_santri_status" json:"santri_status"`

	// Wali (ayah/ibu)
	SantriNamaAyah      *string `gorm:"column:santri_nama_ayah;type:varchar(120)" json:"santri_nama_ayah,omitempty"`
	SantriPekerjaanAyah *string `gorm:"column:santri_pekerjaan_ayah;type:varchar(60)" json:"santri_pekerjaan_ayah,omitempty"`
	SantriTeleponAyah   *string `gorm:"column:santri_telepon_ayah;type:varchar(20)" json:"santri_telepon_ayah,omitempty"`
	SantriNamaIbu       *string `gorm:"column:santri_nama_ibu;type:varchar(120)" json:"santri_nama_ibu,omitempty"`
	SantriPekerjaanIbu  *string `gorm:"column:santri_pekerjaan_ibu;type:varchar(60)" json:"santri_pekerjaan_ibu,omitempty"`
	SantriTeleponIbu    *string `gorm:"column:santri_telepon_ibu;type:varchar(20)" json:"santri_telepon_ibu,omitempty"`

	// Timestamps (eksplisit, hard delete tanpa DeletedAt)
	SantriCreatedAt time.Time `gorm:"column:santri_created_at;not null;default:now();index:ix_santri_created_at" json:"santri_created_at"`
	SantriUpdatedAt time.Time `gorm:"column:santri_updated_at;not null;default:now()" json:"santri_updated_at"`
}

func (Santri) TableName() string {
	return "santri"
}

// =========================================================
// HOOKS — set timestamps eksplisit
// =========================================================

func (m *Santri) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.SantriCreatedAt.IsZero() {
		m.SantriCreatedAt = now
	}
	m.SantriUpdatedAt = now
	return nil
}

func (m *Santri) BeforeUpdate(tx *gorm.DB) (err error) {
	m.SantriUpdatedAt = time.Now()
	return nil
}
