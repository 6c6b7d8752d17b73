// file: internals/features/guru/dto/guru_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"pesantrenku_backend/internals/features/guru/model"
)

type GuruCreateDTO struct {
	GuruNama         string  `json:"guru_nama" validate:"required,min=2,max=120"`
	GuruNIP          string  `json:"guru_nip" validate:"required,max=30"`
	GuruJenisKelamin string  `json:"guru_jenis_kelamin" validate:"required,oneof=L P"`
	GuruJabatan      *string `json:"guru_jabatan,omitempty" validate:"omitempty,max=60"`
	GuruMapel        *string `json:"guru_mapel,omitempty" validate:"omitempty,max=60"`
	GuruTelepon      *string `json:"guru_telepon,omitempty" validate:"omitempty,max=20"`
}

type GuruUpdateDTO struct {
	GuruNama         *string `json:"guru_nama,omitempty" validate:"omitempty,min=2,max=120"`
	GuruJenisKelamin *string `json:"guru_jenis_kelamin,omitempty" validate:"omitempty,oneof=L P"`
	GuruJabatan      *string `json:"guru_jabatan,omitempty" validate:"omitempty,max=60"`
	GuruMapel        *string `json:"guru_mapel,omitempty" validate:"omitempty,max=60"`
	GuruTelepon      *string `json:"guru_telepon,omitempty" validate:"omitempty,max=20"`
	GuruIsActive     *bool   `json:"guru_is_active,omitempty"`
}

type GuruResponse struct {
	GuruID           uuid.UUID `json:"guru_id"`
	GuruNama         string    `json:"guru_nama"`
	GuruNIP          string    `json:"guru_nip"`
	GuruJenisKelamin string    `json:"guru_jenis_kelamin"`
	GuruJabatan      *string   `json:"guru_jabatan,omitempty"`
	GuruMapel        *string   `json:"guru_mapel,omitempty"`
	GuruTelepon      *string   `json:"guru_telepon,omitempty"`
	GuruIsActive     bool      `json:"guru_is_active"`
	GuruCreatedAt    time.Time `json:"guru_created_at"`
	GuruUpdatedAt    time.Time `json:"guru_updated_at"`
}

type GuruSearchItem struct {
	GuruID   uuid.UUID `json:"guru_id"`
	GuruNama string    `json:"guru_nama"`
	GuruNIP  string    `json:"guru_nip"`
}

func (in GuruCreateDTO) ToModel() model.Guru {
	return model.Guru{
		GuruNama:         in.GuruNama,
		GuruNIP:          in.GuruNIP,
		GuruJenisKelamin: in.GuruJenisKelamin,
		GuruJabatan:      in.GuruJabatan,
		GuruMapel:        in.GuruMapel,
		GuruTelepon:      in.GuruTelepon,
		GuruIsActive:     true,
	}
}

func (in GuruUpdateDTO) ApplyToModel(m *model.Guru) {
	if in.GuruNama != nil {
		m.GuruNama = *in.GuruNama
	}
	if in.GuruJenisKelamin != nil {
		m.GuruJenisKelamin = *in.GuruJenisKelamin
	}
	if in.GuruJabatan != nil {
		m.GuruJabatan = in.GuruJabatan
	}
	if in.GuruMapel != nil {
		m.GuruMapel = in.GuruMapel
	}
	if in.GuruTelepon != nil {
		m.GuruTelepon = in.GuruTelepon
	}
	if in.GuruIsActive != nil {
		m.GuruIsActive = *in.GuruIsActive
	}
}

func ToGuruResponse(m model.Guru) GuruResponse {
	return GuruResponse{
		GuruID:           m.GuruID,
		GuruNama:         m.GuruNama,
		GuruNIP:          m.GuruNIP,
		GuruJenisKelamin: m.GuruJenisKelamin,
		GuruJabatan:      m.GuruJabatan,
		GuruMapel:        m.GuruMapel,
		GuruTelepon:      m.GuruTelepon,
		GuruIsActive:     m.GuruIsActive,
		GuruCreatedAt:    m.GuruCreatedAt,
		GuruUpdatedAt:    m.GuruUpdatedAt,
	}
}

func ToGuruResponses(list []model.Guru) []GuruResponse {
	out := make([]GuruResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToGuruResponse(m))
	}
	return out
}
