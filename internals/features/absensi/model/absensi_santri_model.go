// file: internals/features/absensi/model/absensi_santri_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// =========================================================
// ENUM — status & kategori absensi
// Dideklarasikan SEKALI di sini dan direferensikan semua layer,
// supaya daftar kategori FE/BE tidak saling geser.
// =========================================================

type AbsensiStatus string

const (
	AbsensiStatusHadir AbsensiStatus = "HADIR"
	AbsensiStatusAlpa  AbsensiStatus = "ALPA"
	AbsensiStatusSakit AbsensiStatus = "SAKIT"
	AbsensiStatusIzin  AbsensiStatus = "IZIN"
)

// AllAbsensiStatus: urutan tetap, dipakai untuk zero-fill rekap.
var AllAbsensiStatus = []AbsensiStatus{
	AbsensiStatusHadir,
	AbsensiStatusAlpa,
	AbsensiStatusSakit,
	AbsensiStatusIzin,
}

func (s AbsensiStatus) Valid() bool {
	switch s {
	case AbsensiStatusHadir, AbsensiStatusAlpa, AbsensiStatusSakit, AbsensiStatusIzin:
		return true
	}
	return false
}

type AbsensiKategori string

const (
	AbsensiKategoriKelas   AbsensiKategori = "kelas"
	AbsensiKategoriAsrama  AbsensiKategori = "asrama"
	AbsensiKategoriMengaji AbsensiKategori = "mengaji"
)

var AllAbsensiKategori = []AbsensiKategori{
	AbsensiKategoriKelas,
	AbsensiKategoriAsrama,
	AbsensiKategoriMengaji,
}

func (k AbsensiKategori) Valid() bool {
	switch k {
	case AbsensiKategoriKelas, AbsensiKategoriAsrama, AbsensiKategoriMengaji:
		return true
	}
	return false
}

// =========================================================
// MODEL
// =========================================================

type AbsensiSantri struct {
	// PK
	AbsensiSantriID uuid.UUID `gorm:"column:absensi_santri_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"absensi_santri_id"`

	// FK → santri(santri_id)
	AbsensiSantriSantriID uuid.UUID `gorm:"column:absensi_santri_santri_id;type:uuid;not null;index;index:uniq_absensi_santri,unique,priority:1" json:"absensi_santri_santri_id"`

	AbsensiSantriTanggal  time.Time       `gorm:"column:absensi_santri_tanggal;type:date;not null;index:ix_absensi_santri_tanggal;index:uniq_absensi_santri,unique,priority:2" json:"absensi_santri_tanggal"`
	AbsensiSantriKategori AbsensiKategori `gorm:"column:absensi_santri_kategori;type:varchar(10);not null;index:uniq_absensi_santri,unique,priority:3" json:"absensi_santri_kategori"`

	AbsensiSantriStatus     AbsensiStatus `gorm:"column:absensi_santri_status;type:varchar(5);not null;index:ix_absensi_santri_status" json:"absensi_santri_status"`
	AbsensiSantriKeterangan *string       `gorm:"column:absensi_santri_keterangan" json:"absensi_santri_keterangan,omitempty"`

	AbsensiSantriCreatedAt time.Time `gorm:"column:absensi_santri_created_at;not null;default:now()" json:"absensi_santri_created_at"`
	AbsensiSantriUpdatedAt time.Time `gorm:"column:absensi_santri_updated_at;not null;default:now()" json:"absensi_santri_updated_at"`
}

// Satu baris per (santri, tanggal, kategori) — uniq_absensi_santri di atas
// adalah jaminan sesungguhnya; pre-check di controller cuma jalur cepat.
func (AbsensiSantri) TableName() string {
	return "absensi_santri"
}

func (m *AbsensiSantri) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.AbsensiSantriCreatedAt.IsZero() {
		m.AbsensiSantriCreatedAt = now
	}
	m.AbsensiSantriUpdatedAt = now
	return nil
}

func (m *AbsensiSantri) BeforeUpdate(tx *gorm.DB) (err error) {
	m.AbsensiSantriUpdatedAt = time.Now()
	return nil
}
