// file: internals/features/koperasi/service/ringkasan.go
//
// Ringkasan keuangan anggota: dekomposisi total pemasukan per jenis + saldo.
// Murni aritmetika di atas hasil GROUP BY, dipisah supaya bisa diuji tanpa DB.
package service

import (
	"sort"

	"pesantrenku_backend/internals/features/koperasi/model"
)

// JenisJumlah: satu baris hasil GROUP BY jenis pemasukan.
type JenisJumlah struct {
	Jenis  model.JenisPemasukan `gorm:"column:jenis" json:"jenis"`
	Jumlah int64                `gorm:"column:jumlah" json:"jumlah"`
}

// RingkasanAnggota memegang invariant:
//
//	TotalPemasukan == TotalSimpananPokok + TotalSimpananWajib +
//	                  TotalSimpananSukarela + TotalPenyertaanModal
//	Saldo          == TotalPemasukan - TotalPengeluaran
type RingkasanAnggota struct {
	TotalSimpananPokok    int64 `json:"total_simpanan_pokok"`
	TotalSimpananWajib    int64 `json:"total_simpanan_wajib"`
	TotalSimpananSukarela int64 `json:"total_simpanan_sukarela"`
	TotalPenyertaanModal  int64 `json:"total_penyertaan_modal"`
	TotalPemasukan        int64 `json:"total_pemasukan"`
	TotalPengeluaran      int64 `json:"total_pengeluaran"`
	Saldo                 int64 `json:"saldo"`
}

// BuildRingkasan menghitung ringkasan dari hasil dua query agregat.
// TotalPemasukan dihitung dari dekomposisi (bukan SUM terpisah) supaya
// kedua angka tidak bisa saling geser.
func BuildRingkasan(pemasukan []JenisJumlah, totalPengeluaran int64) RingkasanAnggota {
	per := make(map[model.JenisPemasukan]int64, len(model.AllJenisPemasukan))
	for _, j := range model.AllJenisPemasukan {
		per[j] = 0
	}
	for _, r := range pemasukan {
		if _, ok := per[r.Jenis]; ok {
			per[r.Jenis] += r.Jumlah
		}
	}

	rk := RingkasanAnggota{
		TotalSimpananPokok:    per[model.PemasukanSimpananPokok],
		TotalSimpananWajib:    per[model.PemasukanSimpananWajib],
		TotalSimpananSukarela: per[model.PemasukanSimpananSukarela],
		TotalPenyertaanModal:  per[model.PemasukanPenyertaanModal],
		TotalPengeluaran:      totalPengeluaran,
	}
	rk.TotalPemasukan = rk.TotalSimpananPokok + rk.TotalSimpananWajib +
		rk.TotalSimpananSukarela + rk.TotalPenyertaanModal
	rk.Saldo = rk.TotalPemasukan - rk.TotalPengeluaran
	return rk
}

// RekapJenis: rekap per jenis pemasukan, zero-fill semua jenis enum.
type RekapJenis struct {
	Jenis  model.JenisPemasukan `json:"jenis"`
	Jumlah int64                `json:"jumlah"`
}

func ZeroFillJenisPemasukan(rows []JenisJumlah) []RekapJenis {
	per := make(map[model.JenisPemasukan]int64, len(model.AllJenisPemasukan))
	for _, j := range model.AllJenisPemasukan {
		per[j] = 0
	}
	for _, r := range rows {
		if _, ok := per[r.Jenis]; ok {
			per[r.Jenis] += r.Jumlah
		}
	}
	out := make([]RekapJenis, 0, len(model.AllJenisPemasukan))
	for _, j := range model.AllJenisPemasukan {
		out = append(out, RekapJenis{Jenis: j, Jumlah: per[j]})
	}
	return out
}

// BulanJumlah: satu baris time-series kas koperasi.
type BulanJumlah struct {
	Bulan  string `gorm:"column:bulan" json:"bulan"` // "YYYY-MM"
	Jumlah int64  `gorm:"column:jumlah" json:"jumlah"`
}

// TrenKas: pemasukan & pengeluaran per bulan, kunci gabungan ascending.
type TrenKas struct {
	Bulan       string `json:"bulan"`
	Pemasukan   int64  `json:"pemasukan"`
	Pengeluaran int64  `json:"pengeluaran"`
}

func GabungTrenKas(masuk, keluar []BulanJumlah) []TrenKas {
	byBulan := map[string]*TrenKas{}
	for _, r := range masuk {
		b, ok := byBulan[r.Bulan]
		if !ok {
			b = &TrenKas{Bulan: r.Bulan}
			byBulan[r.Bulan] = b
		}
		b.Pemasukan += r.Jumlah
	}
	for _, r := range keluar {
		b, ok := byBulan[r.Bulan]
		if !ok {
			b = &TrenKas{Bulan: r.Bulan}
			byBulan[r.Bulan] = b
		}
		b.Pengeluaran += r.Jumlah
	}

	keys := make([]string, 0, len(byBulan))
	for k := range byBulan {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]TrenKas, 0, len(keys))
	for _, k := range keys {
		out = append(out, *byBulan[k])
	}
	return out
}
