// file: internals/features/absensi/dto/absensi_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"pesantrenku_backend/internals/features/absensi/model"
)

////////////////////////////////////////////////////////////////////////////////
// ABSENSI SANTRI — DTO
////////////////////////////////////////////////////////////////////////////////

// Upsert per natural key (santri, tanggal, kategori): submit kedua untuk key
// yang sama menimpa status/keterangan, bukan bikin baris baru.
type AbsensiUpsertDTO struct {
	SantriID   uuid.UUID `json:"santri_id" validate:"required"`
	Tanggal    string    `json:"tanggal" validate:"required"` // YYYY-MM-DD
	Kategori   string    `json:"kategori" validate:"required,oneof=kelas asrama mengaji"`
	Status     string    `json:"status" validate:"required,oneof=HADIR ALPA SAKIT IZIN"`
	Keterangan *string   `json:"keterangan,omitempty"`
}

// Bulk: satu tanggal+kategori, banyak santri. Konteks luar tetap (fixed).
type AbsensiBulkDTO struct {
	Tanggal  string            `json:"tanggal" validate:"required"`
	Kategori string            `json:"kategori" validate:"required,oneof=kelas asrama mengaji"`
	Items    []AbsensiBulkItem `json:"items" validate:"required,min=1,max=500,dive"`
}

type AbsensiBulkItem struct {
	SantriID   uuid.UUID `json:"santri_id" validate:"required"`
	Status     string    `json:"status" validate:"required,oneof=HADIR ALPA SAKIT IZIN"`
	Keterangan *string   `json:"keterangan,omitempty"`
}

// Hasil per item bulk supaya caller tahu baris mana insert / update.
type AbsensiBulkItemResult struct {
	SantriID  uuid.UUID `json:"santri_id"`
	AbsensiID uuid.UUID `json:"absensi_santri_id"`
	Created   bool      `json:"created"` // false = baris lama di-update
}

type AbsensiResponse struct {
	AbsensiSantriID uuid.UUID `json:"absensi_santri_id"`
	SantriID        uuid.UUID `json:"santri_id"`
	Tanggal         string    `json:"tanggal"`
	Kategori        string    `json:"kategori"`
	Status          string    `json:"status"`
	Keterangan      *string   `json:"keterangan,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Baris list dengan field display santri (join) untuk tabel FE & export.
type AbsensiJoinedRow struct {
	AbsensiSantriID uuid.UUID `gorm:"column:absensi_santri_id" json:"absensi_santri_id"`
	SantriID        uuid.UUID `gorm:"column:santri_id" json:"santri_id"`
	SantriNama      string    `gorm:"column:santri_nama" json:"santri_nama"`
	SantriNIS       string    `gorm:"column:santri_nis" json:"santri_nis"`
	SantriKelas     string    `gorm:"column:santri_kelas" json:"santri_kelas"`
	SantriTingkat   string    `gorm:"column:santri_tingkat" json:"santri_tingkat"`
	Tanggal         time.Time `gorm:"column:tanggal" json:"tanggal"`
	Kategori        string    `gorm:"column:kategori" json:"kategori"`
	Status          string    `gorm:"column:status" json:"status"`
	Keterangan      *string   `gorm:"column:keterangan" json:"keterangan,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// ABSENSI GURU — DTO
////////////////////////////////////////////////////////////////////////////////

type AbsensiGuruUpsertDTO struct {
	GuruID     uuid.UUID `json:"guru_id" validate:"required"`
	Tanggal    string    `json:"tanggal" validate:"required"`
	Status     string    `json:"status" validate:"required,oneof=HADIR ALPA SAKIT IZIN"`
	Keterangan *string   `json:"keterangan,omitempty"`
}

type AbsensiGuruResponse struct {
	AbsensiGuruID uuid.UUID `json:"absensi_guru_id"`
	GuruID        uuid.UUID `json:"guru_id"`
	Tanggal       string    `json:"tanggal"`
	Status        string    `json:"status"`
	Keterangan    *string   `json:"keterangan,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS
////////////////////////////////////////////////////////////////////////////////

func ToAbsensiResponse(m model.AbsensiSantri) AbsensiResponse {
	return AbsensiResponse{
		AbsensiSantriID: m.AbsensiSantriID,
		SantriID:        m.AbsensiSantriSantriID,
		Tanggal:         m.AbsensiSantriTanggal.Format("2006-01-02"),
		Kategori:        string(m.AbsensiSantriKategori),
		Status:          string(m.AbsensiSantriStatus),
		Keterangan:      m.AbsensiSantriKeterangan,
		CreatedAt:       m.AbsensiSantriCreatedAt,
		UpdatedAt:       m.AbsensiSantriUpdatedAt,
	}
}

func ToAbsensiResponses(list []model.AbsensiSantri) []AbsensiResponse {
	out := make([]AbsensiResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToAbsensiResponse(m))
	}
	return out
}

func ToAbsensiGuruResponse(m model.AbsensiGuru) AbsensiGuruResponse {
	return AbsensiGuruResponse{
		AbsensiGuruID: m.AbsensiGuruID,
		GuruID:        m.AbsensiGuruGuruID,
		Tanggal:       m.AbsensiGuruTanggal.Format("2006-01-02"),
		Status:        string(m.AbsensiGuruStatus),
		Keterangan:    m.AbsensiGuruKeterangan,
		CreatedAt:     m.AbsensiGuruCreatedAt,
		UpdatedAt:     m.AbsensiGuruUpdatedAt,
	}
}

func ToAbsensiGuruResponses(list []model.AbsensiGuru) []AbsensiGuruResponse {
	out := make([]AbsensiGuruResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToAbsensiGuruResponse(m))
	}
	return out
}
