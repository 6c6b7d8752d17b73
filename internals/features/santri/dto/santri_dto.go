// file: internals/features/santri/dto/santri_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"pesantrenku_backend/internals/features/santri/model"
)

////////////////////////////////////////////////////////////////////////////////
// SANTRI — DTO
////////////////////////////////////////////////////////////////////////////////

type SantriCreateDTO struct {
	SantriNama         string     `json:"santri_nama" validate:"required,min=2,max=120"`
	SantriNIS          string     `json:"santri_nis" validate:"required,max=30"`
	SantriNISN         *string    `json:"santri_nisn,omitempty" validate:"omitempty,max=20"`
	SantriJenisKelamin string     `json:"santri_jenis_kelamin" validate:"required,oneof=L P"`
	SantriTempatLahir  *string    `json:"santri_tempat_lahir,omitempty"`
	SantriTanggalLahir *time.Time `json:"santri_tanggal_lahir,omitempty"`
	SantriAlamat       *string    `json:"santri_alamat,omitempty"`

	SantriKelas   string `json:"santri_kelas" validate:"required,max=30"`
	SantriTingkat string `json:"santri_tingkat" validate:"required,oneof=ibtidaiyah tsanawiyah aliyah"`
	SantriStatus  string `json:"santri_status,omitempty" validate:"omitempty,oneof=aktif nonaktif lulus"`

	SantriNamaAyah      *string `json:"santri_nama_ayah,omitempty"`
	SantriPekerjaanAyah *string `json:"santri_pekerjaan_ayah,omitempty"`
	SantriTeleponAyah   *string `json:"santri_telepon_ayah,omitempty"`
	SantriNamaIbu       *string `json:"santri_nama_ibu,omitempty"`
	SantriPekerjaanIbu  *string `json:"santri_pekerjaan_ibu,omitempty"`
	SantriTeleponIbu    *string `json:"santri_telepon_ibu,omitempty"`
}

// Update (partial) — field nil tidak disentuh
type SantriUpdateDTO struct {
	SantriNama         *string    `json:"santri_nama,omitempty" validate:"omitempty,min=2,max=120"`
	SantriNISN         *string    `json:"santri_nisn,omitempty" validate:"omitempty,max=20"`
	SantriJenisKelamin *string    `json:"santri_jenis_kelamin,omitempty" validate:"omitempty,oneof=L P"`
	SantriTempatLahir  *string    `json:"santri_tempat_lahir,omitempty"`
	SantriTanggalLahir *time.Time `json:"santri_tanggal_lahir,omitempty"`
	SantriAlamat       *string    `json:"santri_alamat,omitempty"`

	SantriKelas   *string `json:"santri_kelas,omitempty" validate:"omitempty,max=30"`
	SantriTingkat *string `json:"santri_tingkat,omitempty" validate:"omitempty,oneof=ibtidaiyah tsanawiyah aliyah"`
	SantriStatus  *string `json:"santri_status,omitempty" validate:"omitempty,oneof=aktif nonaktif lulus"`

	SantriNamaAyah      *string `json:"santri_nama_ayah,omitempty"`
	SantriPekerjaanAyah *string `json:"santri_pekerjaan_ayah,omitempty"`
	SantriTeleponAyah   *string `json:"santri_telepon_ayah,omitempty"`
	SantriNamaIbu       *string `json:"santri_nama_ibu,omitempty"`
	SantriPekerjaanIbu  *string `json:"santri_pekerjaan_ibu,omitempty"`
	SantriTeleponIbu    *string `json:"santri_telepon_ibu,omitempty"`
}

type SantriResponse struct {
	SantriID           uuid.UUID  `json:"santri_id"`
	SantriNama         string     `json:"santri_nama"`
	SantriNIS          string     `json:"santri_nis"`
	SantriNISN         *string    `json:"santri_nisn,omitempty"`
	SantriJenisKelamin string     `json:"santri_jenis_kelamin"`
	SantriTempatLahir  *string    `json:"santri_tempat_lahir,omitempty"`
	SantriTanggalLahir *time.Time `json:"santri_tanggal_lahir,omitempty"`
	SantriAlamat       *string    `json:"santri_alamat,omitempty"`
	SantriKelas        string     `json:"santri_kelas"`
	SantriTingkat      string     `json:"santri_tingkat"`
	SantriStatus       string     `json:"santri_status"`

	SantriNamaAyah      *string `json:"santri_nama_ayah,omitempty"`
	SantriPekerjaanAyah *string `json:"santri_pekerjaan_ayah,omitempty"`
	SantriTeleponAyah   *string `json:"santri_telepon_ayah,omitempty"`
	SantriNamaIbu       *string `json:"santri_nama_ibu,omitempty"`
	SantriPekerjaanIbu  *string `json:"santri_pekerjaan_ibu,omitempty"`
	SantriTeleponIbu    *string `json:"santri_telepon_ibu,omitempty"`

	SantriCreatedAt time.Time `json:"santri_created_at"`
	SantriUpdatedAt time.Time `json:"santri_updated_at"`
}

// Item ringan untuk dropdown autocomplete di FE
type SantriSearchItem struct {
	SantriID    uuid.UUID `json:"santri_id"`
	SantriNama  string    `json:"santri_nama"`
	SantriNIS   string    `json:"santri_nis"`
	SantriKelas string    `json:"santri_kelas"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS — Model <-> DTO
////////////////////////////////////////////////////////////////////////////////

func (in SantriCreateDTO) ToModel() model.Santri {
	status := model.SantriStatusAktif
	if in.SantriStatus != "" {
		status = model.SantriStatus(in.SantriStatus)
	}
	return model.Santri{
		SantriNama:          in.SantriNama,
		SantriNIS:           in.SantriNIS,
		SantriNISN:          in.SantriNISN,
		SantriJenisKelamin:  in.SantriJenisKelamin,
		SantriTempatLahir:   in.SantriTempatLahir,
		SantriTanggalLahir:  in.SantriTanggalLahir,
		SantriAlamat:        in.SantriAlamat,
		SantriKelas:         in.SantriKelas,
		SantriTingkat:       model.Tingkat(in.SantriTingkat),
		SantriStatus:        status,
		SantriNamaAyah:      in.SantriNamaAyah,
		SantriPekerjaanAyah: in.SantriPekerjaanAyah,
		SantriTeleponAyah:   in.SantriTeleponAyah,
		SantriNamaIbu:       in.SantriNamaIbu,
		SantriPekerjaanIbu:  in.SantriPekerjaanIbu,
		SantriTeleponIbu:    in.SantriTeleponIbu,
	}
}

// ApplyToModel menempelkan field non-nil ke model (partial update).
func (in SantriUpdateDTO) ApplyToModel(m *model.Santri) {
	if in.SantriNama != nil {
		m.SantriNama = *in.SantriNama
	}
	if in.SantriNISN != nil {
		m.SantriNISN = in.SantriNISN
	}
	if in.SantriJenisKelamin != nil {
		m.SantriJenisKelamin = *in.SantriJenisKelamin
	}
	if in.SantriTempatLahir != nil {
		m.SantriTempatLahir = in.SantriTempatLahir
	}
	if in.SantriTanggalLahir != nil {
		m.SantriTanggalLahir = in.SantriTanggalLahir
	}
	if in.SantriAlamat != nil {
		m.SantriAlamat = in.SantriAlamat
	}
	if in.SantriKelas != nil {
		m.SantriKelas = *in.SantriKelas
	}
	if in.SantriTingkat != nil {
		m.SantriTingkat = model.Tingkat(*in.SantriTingkat)
	}
	if in.SantriStatus != nil {
		m.SantriStatus = model.SantriStatus(*in.SantriStatus)
	}
	if in.SantriNamaAyah != nil {
		m.SantriNamaAyah = in.SantriNamaAyah
	}
	if in.SantriPekerjaanAyah != nil {
		m.SantriPekerjaanAyah = in.SantriPekerjaanAyah
	}
	if in.SantriTeleponAyah != nil {
		m.SantriTeleponAyah = in.SantriTeleponAyah
	}
	if in.SantriNamaIbu != nil {
		m.SantriNamaIbu = in.SantriNamaIbu
	}
	if in.SantriPekerjaanIbu != nil {
		m.SantriPekerjaanIbu = in.SantriPekerjaanIbu
	}
	if in.SantriTeleponIbu != nil {
		m.SantriTeleponIbu = in.SantriTeleponIbu
	}
}

func ToSantriResponse(m model.Santri) SantriResponse {
	return SantriResponse{
		SantriID:            m.SantriID,
		SantriNama:          m.SantriNama,
		SantriNIS:           m.SantriNIS,
		SantriNISN:          m.SantriNISN,
		SantriJenisKelamin:  m.SantriJenisKelamin,
		SantriTempatLahir:   m.SantriTempatLahir,
		SantriTanggalLahir:  m.SantriTanggalLahir,
		SantriAlamat:        m.SantriAlamat,
		SantriKelas:         m.SantriKelas,
		SantriTingkat:       string(m.SantriTingkat),
		SantriStatus:        string(m.SantriStatus),
		SantriNamaAyah:      m.SantriNamaAyah,
		SantriPekerjaanAyah: m.SantriPekerjaanAyah,
		SantriTeleponAyah:   m.SantriTeleponAyah,
		SantriNamaIbu:       m.SantriNamaIbu,
		SantriPekerjaanIbu:  m.SantriPekerjaanIbu,
		SantriTeleponIbu:    m.SantriTeleponIbu,
		SantriCreatedAt:     m.SantriCreatedAt,
		SantriUpdatedAt:     m.SantriUpdatedAt,
	}
}

func ToSantriResponses(list []model.Santri) []SantriResponse {
	out := make([]SantriResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToSantriResponse(m))
	}
	return out
}
