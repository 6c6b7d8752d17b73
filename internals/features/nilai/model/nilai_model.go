// file: internals/features/nilai/model/nilai_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Semester string

const (
	SemesterGanjil Semester = "GANJIL"
	SemesterGenap  Semester = "GENAP"
)

func (s Semester) Valid() bool {
	return s == SemesterGanjil || s == SemesterGenap
}

// NilaiSantri: satu nilai mapel per santri per semester.
// Satu santri tidak boleh punya dua nilai untuk mapel yang sama di
// semester & tahun ajaran yang sama.
type NilaiSantri struct {
	NilaiID          uuid.UUID `gorm:"column:nilai_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"nilai_id"`
	NilaiSantriID    uuid.UUID `gorm:"column:nilai_santri_id;type:uuid;not null;uniqueIndex:uniq_nilai_santri,priority:1" json:"nilai_santri_id"`
	NilaiMapel       string    `gorm:"column:nilai_mapel;type:varchar(80);not null;uniqueIndex:uniq_nilai_santri,priority:2" json:"nilai_mapel"`
	NilaiSemester    Semester  `gorm:"column:nilai_semester;type:varchar(10);not null;uniqueIndex:uniq_nilai_santri,priority:3" json:"nilai_semester"`
	NilaiTahunAjaran string    `gorm:"column:nilai_tahun_ajaran;type:varchar(9);not null;uniqueIndex:uniq_nilai_santri,priority:4" json:"nilai_tahun_ajaran"` // "2024/2025"
	NilaiAngka       int       `gorm:"column:nilai_angka;not null;check:nilai_angka>=0 AND nilai_angka<=100" json:"nilai_angka"`
	NilaiCatatan     *string   `gorm:"column:nilai_catatan" json:"nilai_catatan,omitempty"`

	NilaiCreatedAt time.Time `gorm:"column:nilai_created_at;not null;default:now()" json:"nilai_created_at"`
	NilaiUpdatedAt time.Time `gorm:"column:nilai_updated_at;not null;default:now()" json:"nilai_updated_at"`
}

func (NilaiSantri) TableName() string {
	return "nilai_santri"
}

func (m *NilaiSantri) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.NilaiCreatedAt.IsZero() {
		m.NilaiCreatedAt = now
	}
	m.NilaiUpdatedAt = now
	return nil
}

func (m *NilaiSantri) BeforeUpdate(tx *gorm.DB) (err error) {
	m.NilaiUpdatedAt = time.Now()
	return nil
}
