// file: internals/features/pembayaran/dto/pembayaran_dto.go
package dto

import "github.com/google/uuid"

// Create lewat multipart (form tags) karena bisa bawa file bukti.
type PembayaranCreateDTO struct {
	PembayaranSantriID uuid.UUID `json:"pembayaran_santri_id" form:"pembayaran_santri_id" validate:"required"`
	PembayaranJenis    string    `json:"pembayaran_jenis" form:"pembayaran_jenis" validate:"required,oneof=SPP MAKAN ASRAMA LAINNYA"`
	PembayaranBulan    int       `json:"pembayaran_bulan" form:"pembayaran_bulan" validate:"required,min=1,max=12"`
	PembayaranTahun    int       `json:"pembayaran_tahun" form:"pembayaran_tahun" validate:"required,min=2000,max=2100"`
	PembayaranJumlah   int       `json:"pembayaran_jumlah" form:"pembayaran_jumlah" validate:"required,min=0"`
	PembayaranStatus   *string   `json:"pembayaran_status,omitempty" form:"pembayaran_status" validate:"omitempty,oneof=LUNAS BELUM_LUNAS"`
	PembayaranTanggal  *string   `json:"pembayaran_tanggal_bayar,omitempty" form:"pembayaran_tanggal_bayar"` // YYYY-MM-DD
	PembayaranCatatan  *string   `json:"pembayaran_keterangan,omitempty" form:"pembayaran_keterangan"`
}

type PembayaranUpdateDTO struct {
	PembayaranJumlah  *int    `json:"pembayaran_jumlah,omitempty" form:"pembayaran_jumlah" validate:"omitempty,min=0"`
	PembayaranStatus  *string `json:"pembayaran_status,omitempty" form:"pembayaran_status" validate:"omitempty,oneof=LUNAS BELUM_LUNAS"`
	PembayaranTanggal *string `json:"pembayaran_tanggal_bayar,omitempty" form:"pembayaran_tanggal_bayar"`
	PembayaranCatatan *string `json:"pembayaran_keterangan,omitempty" form:"pembayaran_keterangan"`
}
