// file: internals/features/kesehatan/dto/kesehatan_dto.go
package dto

import "github.com/google/uuid"

type KesehatanCreateDTO struct {
	KesehatanSantriID uuid.UUID `json:"kesehatan_santri_id" validate:"required"`
	KesehatanJenis    string    `json:"kesehatan_jenis_sakit" validate:"required,min=2,max=120"`
	KesehatanTanggal  string    `json:"kesehatan_tanggal_sakit" validate:"required"` // YYYY-MM-DD
	KesehatanSembuh   *string   `json:"kesehatan_tanggal_sembuh,omitempty"`
	KesehatanTindakan *string   `json:"kesehatan_tindakan,omitempty"`
	KesehatanCatatan  *string   `json:"kesehatan_keterangan,omitempty"`
}

type KesehatanUpdateDTO struct {
	KesehatanJenis    *string `json:"kesehatan_jenis_sakit,omitempty" validate:"omitempty,min=2,max=120"`
	KesehatanTanggal  *string `json:"kesehatan_tanggal_sakit,omitempty"`
	KesehatanSembuh   *string `json:"kesehatan_tanggal_sembuh,omitempty"`
	KesehatanTindakan *string `json:"kesehatan_tindakan,omitempty"`
	KesehatanCatatan  *string `json:"kesehatan_keterangan,omitempty"`
}
