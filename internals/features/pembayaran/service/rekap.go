// file: internals/features/pembayaran/service/rekap.go
//
// Rekap pembayaran per jenis, zero-fill semua jenis enum.
package service

import "pesantrenku_backend/internals/features/pembayaran/model"

// JenisAgregat: satu baris hasil GROUP BY jenis.
type JenisAgregat struct {
	Jenis       model.JenisPembayaran `gorm:"column:jenis" json:"jenis"`
	TotalLunas  int64                 `gorm:"column:total_lunas" json:"total_lunas"`
	TotalTagih  int64                 `gorm:"column:total_tagihan" json:"total_tagihan"`
	JumlahLunas int64                 `gorm:"column:jumlah_lunas" json:"jumlah_lunas"`
	JumlahBelum int64                 `gorm:"column:jumlah_belum" json:"jumlah_belum"`
}

// ZeroFillJenisPembayaran mengembalikan satu entri untuk SETIAP jenis,
// urut sesuai deklarasi enum; jenis tanpa data bernilai nol semua.
func ZeroFillJenisPembayaran(rows []JenisAgregat) []JenisAgregat {
	per := make(map[model.JenisPembayaran]JenisAgregat, len(model.AllJenisPembayaran))
	for _, r := range rows {
		if !r.Jenis.Valid() {
			continue
		}
		agg := per[r.Jenis]
		agg.Jenis = r.Jenis
		agg.TotalLunas += r.TotalLunas
		agg.TotalTagih += r.TotalTagih
		agg.JumlahLunas += r.JumlahLunas
		agg.JumlahBelum += r.JumlahBelum
		per[r.Jenis] = agg
	}

	out := make([]JenisAgregat, 0, len(model.AllJenisPembayaran))
	for _, j := range model.AllJenisPembayaran {
		agg := per[j]
		agg.Jenis = j
		out = append(out, agg)
	}
	return out
}
