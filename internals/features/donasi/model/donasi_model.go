// file: internals/features/donasi/model/donasi_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DonasiStatusPending  = "pending"
	DonasiStatusPaid     = "paid"
	DonasiStatusExpired  = "expired"
	DonasiStatusCanceled = "canceled"
)

// AllDonasiStatus dipakai rekap per status (zero-fill).
var AllDonasiStatus = []string{
	DonasiStatusPending,
	DonasiStatusPaid,
	DonasiStatusExpired,
	DonasiStatusCanceled,
}

type Donasi struct {
	DonasiID uuid.UUID `gorm:"column:donasi_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"donasi_id"`

	DonasiNama    string  `gorm:"column:donasi_nama;type:varchar(80);not null" json:"donasi_nama"`
	DonasiEmail   *string `gorm:"column:donasi_email;type:varchar(120)" json:"donasi_email,omitempty"`
	DonasiTelepon *string `gorm:"column:donasi_telepon;type:varchar(20)" json:"donasi_telepon,omitempty"`
	DonasiPesan   *string `gorm:"column:donasi_pesan;type:text" json:"donasi_pesan,omitempty"`

	DonasiJumlah int    `gorm:"column:donasi_jumlah;not null;check:donasi_jumlah > 0" json:"donasi_jumlah"`
	DonasiStatus string `gorm:"column:donasi_status;type:varchar(20);not null;default:'pending';index:ix_donasi_status" json:"donasi_status"`

	DonasiOrderID     string  `gorm:"column:donasi_order_id;type:varchar(100);not null;unique" json:"donasi_order_id"`
	DonasiSnapToken   *string `gorm:"column:donasi_snap_token;type:text" json:"donasi_snap_token,omitempty"`
	DonasiRedirectURL *string `gorm:"column:donasi_redirect_url;type:text" json:"donasi_redirect_url,omitempty"`

	DonasiPaidAt *time.Time `gorm:"column:donasi_paid_at" json:"donasi_paid_at,omitempty"`

	DonasiCreatedAt time.Time `gorm:"column:donasi_created_at;not null;default:now()" json:"donasi_created_at"`
	DonasiUpdatedAt time.Time `gorm:"column:donasi_updated_at;not null;default:now()" json:"donasi_updated_at"`
}

func (Donasi) TableName() string { return "donasi" }

func (m *Donasi) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.DonasiCreatedAt.IsZero() {
		m.DonasiCreatedAt = now
	}
	m.DonasiUpdatedAt = now
	return nil
}

func (m *Donasi) BeforeUpdate(tx *gorm.DB) (err error) {
	m.DonasiUpdatedAt = time.Now()
	return nil
}
