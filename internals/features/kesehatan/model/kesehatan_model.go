// file: internals/features/kesehatan/model/kesehatan_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// KesehatanSantri: catatan sakit santri. tanggal_sembuh NULL = masih sakit.
type KesehatanSantri struct {
	KesehatanID       uuid.UUID  `gorm:"column:kesehatan_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"kesehatan_id"`
	KesehatanSantriID uuid.UUID  `gorm:"column:kesehatan_santri_id;type:uuid;not null;index:ix_kesehatan_santri" json:"kesehatan_santri_id"`
	KesehatanJenis    string     `gorm:"column:kesehatan_jenis_sakit;type:varchar(120);not null" json:"kesehatan_jenis_sakit"`
	KesehatanTanggal  time.Time  `gorm:"column:kesehatan_tanggal_sakit;type:date;not null;index:ix_kesehatan_tanggal" json:"kesehatan_tanggal_sakit"`
	KesehatanSembuh   *time.Time `gorm:"column:kesehatan_tanggal_sembuh;type:date" json:"kesehatan_tanggal_sembuh,omitempty"`
	KesehatanTindakan *string    `gorm:"column:kesehatan_tindakan" json:"kesehatan_tindakan,omitempty"`
	KesehatanCatatan  *string    `gorm:"column:kesehatan_keterangan" json:"kesehatan_keterangan,omitempty"`

	KesehatanCreatedAt time.Time `gorm:"column:kesehatan_created_at;not null;default:now()" json:"kesehatan_created_at"`
	KesehatanUpdatedAt time.Time `gorm:"column:kesehatan_updated_at;not null;default:now()" json:"kesehatan_updated_at"`
}

func (KesehatanSantri) TableName() string {
	return "kesehatan_santri"
}

func (m *KesehatanSantri) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.KesehatanCreatedAt.IsZero() {
		m.KesehatanCreatedAt = now
	}
	m.KesehatanUpdatedAt = now
	return nil
}

func (m *KesehatanSantri) BeforeUpdate(tx *gorm.DB) (err error) {
	m.KesehatanUpdatedAt = time.Now()
	return nil
}
