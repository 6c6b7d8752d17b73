// file: internals/features/pelanggaran/dto/pelanggaran_dto.go
package dto

import "github.com/google/uuid"

// Create lewat multipart (form tags) karena bisa bawa file bukti.
type PelanggaranCreateDTO struct {
	PelanggaranSantriID uuid.UUID `json:"pelanggaran_santri_id" form:"pelanggaran_santri_id" validate:"required"`
	PelanggaranJenis    string    `json:"pelanggaran_jenis" form:"pelanggaran_jenis" validate:"required,min=3,max=160"`
	PelanggaranKategori string    `json:"pelanggaran_kategori" form:"pelanggaran_kategori" validate:"required,oneof=RINGAN SEDANG BERAT"`
	PelanggaranTanggal  string    `json:"pelanggaran_tanggal" form:"pelanggaran_tanggal" validate:"required"` // YYYY-MM-DD
	PelanggaranHukuman  *string   `json:"pelanggaran_hukuman,omitempty" form:"pelanggaran_hukuman"`
	PelanggaranCatatan  *string   `json:"pelanggaran_keterangan,omitempty" form:"pelanggaran_keterangan"`
}

type PelanggaranUpdateDTO struct {
	PelanggaranJenis    *string `json:"pelanggaran_jenis,omitempty" form:"pelanggaran_jenis" validate:"omitempty,min=3,max=160"`
	PelanggaranKategori *string `json:"pelanggaran_kategori,omitempty" form:"pelanggaran_kategori" validate:"omitempty,oneof=RINGAN SEDANG BERAT"`
	PelanggaranTanggal  *string `json:"pelanggaran_tanggal,omitempty" form:"pelanggaran_tanggal"`
	PelanggaranHukuman  *string `json:"pelanggaran_hukuman,omitempty" form:"pelanggaran_hukuman"`
	PelanggaranCatatan  *string `json:"pelanggaran_keterangan,omitempty" form:"pelanggaran_keterangan"`
}
