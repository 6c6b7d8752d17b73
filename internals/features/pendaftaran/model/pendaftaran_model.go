// file: internals/features/pendaftaran/model/pendaftaran_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type StatusPendaftaran string

const (
	PendaftaranMenunggu StatusPendaftaran = "MENUNGGU"
	PendaftaranDiterima StatusPendaftaran = "DITERIMA"
	PendaftaranDitolak  StatusPendaftaran = "DITOLAK"
)

func (s StatusPendaftaran) Valid() bool {
	switch s {
	case PendaftaranMenunggu, PendaftaranDiterima, PendaftaranDitolak:
		return true
	}
	return false
}

// PendaftaranSantri: formulir pendaftaran calon santri.
// Payload mentah disimpan utuh (JSON) sebagai arsip; kolom terstruktur
// dipakai untuk listing & pembuatan santri saat diterima.
type PendaftaranSantri struct {
	PendaftaranID uuid.UUID `gorm:"column:pendaftaran_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"pendaftaran_id"`

	PendaftaranNama         string     `gorm:"column:pendaftaran_nama;type:varchar(120);not null" json:"pendaftaran_nama"`
	PendaftaranJenisKelamin string     `gorm:"column:pendaftaran_jenis_kelamin;type:varchar(1);not null" json:"pendaftaran_jenis_kelamin"` // L|P
	PendaftaranTempatLahir  *string    `gorm:"column:pendaftaran_tempat_lahir;type:varchar(60)" json:"pendaftaran_tempat_lahir,omitempty"`
	PendaftaranTanggalLahir *time.Time `gorm:"column:pendaftaran_tanggal_lahir;type:date" json:"pendaftaran_tanggal_lahir,omitempty"`
	PendaftaranAlamat       *string    `gorm:"column:pendaftaran_alamat" json:"pendaftaran_alamat,omitempty"`
	PendaftaranTingkat      string     `gorm:"column:pendaftaran_tingkat;type:varchar(20);not null" json:"pendaftaran_tingkat"`
	PendaftaranNamaWali     *string    `gorm:"column:pendaftaran_nama_wali;type:varchar(120)" json:"pendaftaran_nama_wali,omitempty"`
	PendaftaranTeleponWali  *string    `gorm:"column:pendaftaran_telepon_wali;type:varchar(20)" json:"pendaftaran_telepon_wali,omitempty"`

	PendaftaranPayload datatypes.JSON `gorm:"column:pendaftaran_payload;type:jsonb" json:"pendaftaran_payload,omitempty"`

	PendaftaranStatus  StatusPendaftaran `gorm:"column:pendaftaran_status;type:varchar(10);not null;default:'MENUNGGU';index:ix_pendaftaran_status" json:"pendaftaran_status"`
	PendaftaranCatatan *string           `gorm:"column:pendaftaran_catatan" json:"pendaftaran_catatan,omitempty"`

	// Terisi saat DITERIMA
	PendaftaranSantriID *uuid.UUID `gorm:"column:pendaftaran_santri_id;type:uuid" json:"pendaftaran_santri_id,omitempty"`

	PendaftaranCreatedAt time.Time `gorm:"column:pendaftaran_created_at;not null;default:now();index:ix_pendaftaran_created_at" json:"pendaftaran_created_at"`
	PendaftaranUpdatedAt time.Time `gorm:"column:pendaftaran_updated_at;not null;default:now()" json:"pendaftaran_updated_at"`
}

func (PendaftaranSantri) TableName() string {
	return "pendaftaran_santri"
}

func (m *PendaftaranSantri) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.PendaftaranCreatedAt.IsZero() {
		m.PendaftaranCreatedAt = now
	}
	m.PendaftaranUpdatedAt = now
	return nil
}

func (m *PendaftaranSantri) BeforeUpdate(tx *gorm.DB) (err error) {
	m.PendaftaranUpdatedAt = time.Now()
	return nil
}
