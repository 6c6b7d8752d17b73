// file: internals/features/nilai/dto/nilai_dto.go
package dto

import "github.com/google/uuid"

type NilaiCreateDTO struct {
	NilaiSantriID    uuid.UUID `json:"nilai_santri_id" validate:"required"`
	NilaiMapel       string    `json:"nilai_mapel" validate:"required,min=2,max=80"`
	NilaiSemester    string    `json:"nilai_semester" validate:"required,oneof=GANJIL GENAP"`
	NilaiTahunAjaran string    `json:"nilai_tahun_ajaran" validate:"required,len=9"` // "2024/2025"
	NilaiAngka       *int      `json:"nilai_angka" validate:"required,min=0,max=100"`
	NilaiCatatan     *string   `json:"nilai_catatan,omitempty"`
}

type NilaiUpdateDTO struct {
	NilaiMapel       *string `json:"nilai_mapel,omitempty" validate:"omitempty,min=2,max=80"`
	NilaiSemester    *string `json:"nilai_semester,omitempty" validate:"omitempty,oneof=GANJIL GENAP"`
	NilaiTahunAjaran *string `json:"nilai_tahun_ajaran,omitempty" validate:"omitempty,len=9"`
	NilaiAngka       *int    `json:"nilai_angka,omitempty" validate:"omitempty,min=0,max=100"`
	NilaiCatatan     *string `json:"nilai_catatan,omitempty"`
}
