// file: internals/features/absensi/model/absensi_guru_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AbsensiGuru struct {
	AbsensiGuruID uuid.UUID `gorm:"column:absensi_guru_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"absensi_guru_id"`

	// FK → guru(guru_id); satu baris per (guru, tanggal)
	AbsensiGuruGuruID  uuid.UUID `gorm:"column:absensi_guru_guru_id;type:uuid;not null;index;index:uniq_absensi_guru,unique,priority:1" json:"absensi_guru_guru_id"`
	AbsensiGuruTanggal time.Time `gorm:"column:absensi_guru_tanggal;type:date;not null;index:ix_absensi_guru_tanggal;index:uniq_absensi_guru,unique,priority:2" json:"absensi_guru_tanggal"`

	AbsensiGuruStatus     AbsensiStatus `gorm:"column:absensi_guru_status;type:varchar(5);not null" json:"absensi_guru_status"`
	AbsensiGuruKeterangan *string       `gorm:"column:absensi_guru_keterangan" json:"absensi_guru_keterangan,omitempty"`

	AbsensiGuruCreatedAt time.Time `gorm:"column:absensi_guru_created_at;not null;default:now()" json:"absensi_guru_created_at"`
	AbsensiGuruUpdatedAt time.Time `gorm:"column:absensi_guru_updated_at;not null;default:now()" json:"absensi_guru_updated_at"`
}

func (AbsensiGuru) TableName() string {
	return "absensi_guru"
}

func (m *AbsensiGuru) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.AbsensiGuruCreatedAt.IsZero() {
		m.AbsensiGuruCreatedAt = now
	}
	m.AbsensiGuruUpdatedAt = now
	return nil
}

func (m *AbsensiGuru) BeforeUpdate(tx *gorm.DB) (err error) {
	m.AbsensiGuruUpdatedAt = time.Now()
	return nil
}
