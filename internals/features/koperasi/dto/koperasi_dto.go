// file: internals/features/koperasi/dto/koperasi_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"pesantrenku_backend/internals/features/koperasi/model"
)

////////////////////////////////////////////////////////////////////////////////
// ANGGOTA — DTO
////////////////////////////////////////////////////////////////////////////////

type AnggotaCreateDTO struct {
	AnggotaNama    string  `json:"anggota_nama" form:"anggota_nama" validate:"required,min=2,max=120"`
	AnggotaAlamat  *string `json:"anggota_alamat,omitempty" form:"anggota_alamat"`
	AnggotaTelepon *string `json:"anggota_telepon,omitempty" form:"anggota_telepon" validate:"omitempty,max=20"`
}

type AnggotaUpdateDTO struct {
	AnggotaNama    *string `json:"anggota_nama,omitempty" validate:"omitempty,min=2,max=120"`
	AnggotaAlamat  *string `json:"anggota_alamat,omitempty"`
	AnggotaTelepon *string `json:"anggota_telepon,omitempty" validate:"omitempty,max=20"`
}

type AnggotaResponse struct {
	AnggotaID        uuid.UUID `json:"anggota_id"`
	AnggotaNama      string    `json:"anggota_nama"`
	AnggotaAlamat    *string   `json:"anggota_alamat,omitempty"`
	AnggotaTelepon   *string   `json:"anggota_telepon,omitempty"`
	AnggotaCreatedAt time.Time `json:"anggota_created_at"`
	AnggotaUpdatedAt time.Time `json:"anggota_updated_at"`
}

////////////////////////////////////////////////////////////////////////////////
// PEMASUKAN / PENGELUARAN — DTO
// Create lewat multipart (form tags) karena bisa bawa file bukti.
////////////////////////////////////////////////////////////////////////////////

type PemasukanCreateDTO struct {
	PemasukanAnggotaID  uuid.UUID `json:"pemasukan_anggota_id" form:"pemasukan_anggota_id" validate:"required"`
	PemasukanJenis      string    `json:"pemasukan_jenis" form:"pemasukan_jenis" validate:"required,oneof=SIMPANAN_POKOK SIMPANAN_WAJIB SIMPANAN_SUKARELA PENYERTAAN_MODAL"`
	PemasukanJumlah     int       `json:"pemasukan_jumlah" form:"pemasukan_jumlah" validate:"required,min=0"`
	PemasukanTanggal    string    `json:"pemasukan_tanggal" form:"pemasukan_tanggal" validate:"required"` // YYYY-MM-DD
	PemasukanKeterangan *string   `json:"pemasukan_keterangan,omitempty" form:"pemasukan_keterangan"`
}

type PemasukanUpdateDTO struct {
	PemasukanJenis      *string `json:"pemasukan_jenis,omitempty" form:"pemasukan_jenis" validate:"omitempty,oneof=SIMPANAN_POKOK SIMPANAN_WAJIB SIMPANAN_SUKARELA PENYERTAAN_MODAL"`
	PemasukanJumlah     *int    `json:"pemasukan_jumlah,omitempty" form:"pemasukan_jumlah" validate:"omitempty,min=0"`
	PemasukanTanggal    *string `json:"pemasukan_tanggal,omitempty" form:"pemasukan_tanggal"`
	PemasukanKeterangan *string `json:"pemasukan_keterangan,omitempty" form:"pemasukan_keterangan"`
}

type PengeluaranCreateDTO struct {
	PengeluaranAnggotaID  uuid.UUID `json:"pengeluaran_anggota_id" form:"pengeluaran_anggota_id" validate:"required"`
	PengeluaranJenis      string    `json:"pengeluaran_jenis" form:"pengeluaran_jenis" validate:"required,oneof=OPERASIONAL PEMBELIAN_BARANG PENARIKAN_SIMPANAN LAINNYA"`
	PengeluaranJumlah     int       `json:"pengeluaran_jumlah" form:"pengeluaran_jumlah" validate:"required,min=0"`
	PengeluaranTanggal    string    `json:"pengeluaran_tanggal" form:"pengeluaran_tanggal" validate:"required"`
	PengeluaranKeterangan *string   `json:"pengeluaran_keterangan,omitempty" form:"pengeluaran_keterangan"`
}

type PengeluaranUpdateDTO struct {
	PengeluaranJenis      *string `json:"pengeluaran_jenis,omitempty" form:"pengeluaran_jenis" validate:"omitempty,oneof=OPERASIONAL PEMBELIAN_BARANG PENARIKAN_SIMPANAN LAINNYA"`
	PengeluaranJumlah     *int    `json:"pengeluaran_jumlah,omitempty" form:"pengeluaran_jumlah" validate:"omitempty,min=0"`
	PengeluaranTanggal    *string `json:"pengeluaran_tanggal,omitempty" form:"pengeluaran_tanggal"`
	PengeluaranKeterangan *string `json:"pengeluaran_keterangan,omitempty" form:"pengeluaran_keterangan"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS
////////////////////////////////////////////////////////////////////////////////

func (in AnggotaCreateDTO) ToModel() model.AnggotaKoperasi {
	return model.AnggotaKoperasi{
		AnggotaNama:    in.AnggotaNama,
		AnggotaAlamat:  in.AnggotaAlamat,
		AnggotaTelepon: in.AnggotaTelepon,
	}
}

func (in AnggotaUpdateDTO) ApplyToModel(m *model.AnggotaKoperasi) {
	if in.AnggotaNama != nil {
		m.AnggotaNama = *in.AnggotaNama
	}
	if in.AnggotaAlamat != nil {
		m.AnggotaAlamat = in.AnggotaAlamat
	}
	if in.AnggotaTelepon != nil {
		m.AnggotaTelepon = in.AnggotaTelepon
	}
}

func ToAnggotaResponse(m model.AnggotaKoperasi) AnggotaResponse {
	return AnggotaResponse{
		AnggotaID:        m.AnggotaID,
		AnggotaNama:      m.AnggotaNama,
		AnggotaAlamat:    m.AnggotaAlamat,
		AnggotaTelepon:   m.AnggotaTelepon,
		AnggotaCreatedAt: m.AnggotaCreatedAt,
		AnggotaUpdatedAt: m.AnggotaUpdatedAt,
	}
}

func ToAnggotaResponses(list []model.AnggotaKoperasi) []AnggotaResponse {
	out := make([]AnggotaResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToAnggotaResponse(m))
	}
	return out
}
