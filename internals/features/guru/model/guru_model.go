// file: internals/features/guru/model/guru_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Guru struct {
	// PK
	GuruID uuid.UUID `gorm:"column:guru_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"guru_id"`

	// Identitas & kepegawaian
	GuruNama         string  `gorm:"column:guru_nama;type:varchar(120);not null;index:ix_guru_nama" json:"guru_nama"`
	GuruNIP          string  `gorm:"column:guru_nip;type:varchar(30);not null;uniqueIndex:uniq_guru_nip" json:"guru_nip"`
	GuruJenisKelamin string  `gorm:"column:guru_jenis_kelamin;type:varchar(1);not null" json:"guru_jenis_kelamin"` // L|P
	GuruJabatan      *string `gorm:"column:guru_jabatan;type:varchar(60)" json:"guru_jabatan,omitempty"`
	GuruMapel        *string `gorm:"column:guru_mapel;type:varchar(60)" json:"guru_mapel,omitempty"`
	GuruTelepon      *string `gorm:"column:guru_telepon;type:varchar(20)" json:"guru_telepon,omitempty"`
	GuruIsActive     bool    `gorm:"column:guru_is_active;not null;default:true;index:ix_guru_is_active" json:"guru_is_active"`

	GuruCreatedAt time.Time `gorm:"column:guru_created_at;not null;default:now()" json:"guru_created_at"`
	GuruUpdatedAt time.Time `gorm:"column:guru_updated_at;not null;default:now()" json:"guru_updated_at"`
}

func (Guru) TableName() string {
	return "guru"
}

func (m *Guru) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.GuruCreatedAt.IsZero() {
		m.GuruCreatedAt = now
	}
	m.GuruUpdatedAt = now
	return nil
}

func (m *Guru) BeforeUpdate(tx *gorm.DB) (err error) {
	m.GuruUpdatedAt = time.Now()
	return nil
}
