// file: internals/features/pendaftaran/dto/pendaftaran_dto.go
package dto

type PendaftaranCreateDTO struct {
	PendaftaranNama         string  `json:"pendaftaran_nama" validate:"required,min=2,max=120"`
	PendaftaranJenisKelamin string  `json:"pendaftaran_jenis_kelamin" validate:"required,oneof=L P"`
	PendaftaranTempatLahir  *string `json:"pendaftaran_tempat_lahir,omitempty" validate:"omitempty,max=60"`
	PendaftaranTanggalLahir *string `json:"pendaftaran_tanggal_lahir,omitempty"` // YYYY-MM-DD
	PendaftaranAlamat       *string `json:"pendaftaran_alamat,omitempty"`
	PendaftaranTingkat      string  `json:"pendaftaran_tingkat" validate:"required,oneof=ibtidaiyah tsanawiyah aliyah"`
	PendaftaranNamaWali     *string `json:"pendaftaran_nama_wali,omitempty" validate:"omitempty,max=120"`
	PendaftaranTeleponWali  *string `json:"pendaftaran_telepon_wali,omitempty" validate:"omitempty,max=20"`
}

// ApproveDTO: NIS & kelas ditetapkan admin saat menerima pendaftar.
type PendaftaranApproveDTO struct {
	SantriNIS   string  `json:"santri_nis" validate:"required,min=4,max=30"`
	SantriKelas string  `json:"santri_kelas" validate:"required,min=1,max=30"`
	Catatan     *string `json:"catatan,omitempty"`
}

type PendaftaranRejectDTO struct {
	Catatan string `json:"catatan" validate:"required,min=3"`
}
