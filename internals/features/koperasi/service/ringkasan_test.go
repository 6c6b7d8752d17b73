package service

import (
	"testing"

	"pesantrenku_backend/internals/features/koperasi/model"
)

func TestBuildRingkasan(t *testing.T) {
	tests := []struct {
		name             string
		pemasukan        []JenisJumlah
		totalPengeluaran int64
		want             RingkasanAnggota
	}{
		{
			name:             "anggota baru tanpa transaksi",
			pemasukan:        nil,
			totalPengeluaran: 0,
			want:             RingkasanAnggota{},
		},
		{
			name: "semua jenis terisi",
			pemasukan: []JenisJumlah{
				{Jenis: model.PemasukanSimpananPokok, Jumlah: 100_000},
				{Jenis: model.PemasukanSimpananWajib, Jumlah: 50_000},
				{Jenis: model.PemasukanSimpananSukarela, Jumlah: 25_000},
				{Jenis: model.PemasukanPenyertaanModal, Jumlah: 200_000},
			},
			totalPengeluaran: 75_000,
			want: RingkasanAnggota{
				TotalSimpananPokok:    100_000,
				TotalSimpananWajib:    50_000,
				TotalSimpananSukarela: 25_000,
				TotalPenyertaanModal:  200_000,
				TotalPemasukan:        375_000,
				TotalPengeluaran:      75_000,
				Saldo:                 300_000,
			},
		},
		{
			name: "sebagian jenis kosong tetap ikut dekomposisi",
			pemasukan: []JenisJumlah{
				{Jenis: model.PemasukanSimpananWajib, Jumlah: 10_000},
			},
			totalPengeluaran: 40_000,
			want: RingkasanAnggota{
				TotalSimpananWajib: 10_000,
				TotalPemasukan:     10_000,
				TotalPengeluaran:   40_000,
				Saldo:              -30_000, // penarikan melebihi simpanan tercatat apa adanya
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildRingkasan(tt.pemasukan, tt.totalPengeluaran)
			if got != tt.want {
				t.Errorf("BuildRingkasan = %+v, want %+v", got, tt.want)
			}

			// invariant dekomposisi harus selalu berlaku
			sum := got.TotalSimpananPokok + got.TotalSimpananWajib +
				got.TotalSimpananSukarela + got.TotalPenyertaanModal
			if got.TotalPemasukan != sum {
				t.Errorf("TotalPemasukan %d != dekomposisi %d", got.TotalPemasukan, sum)
			}
			if got.Saldo != got.TotalPemasukan-got.TotalPengeluaran {
				t.Errorf("Saldo %d != pemasukan-pengeluaran %d", got.Saldo, got.TotalPemasukan-got.TotalPengeluaran)
			}
		})
	}
}

func TestZeroFillJenisPemasukan(t *testing.T) {
	got := ZeroFillJenisPemasukan([]JenisJumlah{
		{Jenis: model.PemasukanSimpananPokok, Jumlah: 5000},
	})
	if len(got) != len(model.AllJenisPemasukan) {
		t.Fatalf("jumlah jenis = %d, want %d", len(got), len(model.AllJenisPemasukan))
	}
	for _, r := range got {
		want := int64(0)
		if r.Jenis == model.PemasukanSimpananPokok {
			want = 5000
		}
		if r.Jumlah != want {
			t.Errorf("%s = %d, want %d", r.Jenis, r.Jumlah, want)
		}
	}
}

func TestGabungTrenKas(t *testing.T) {
	got := GabungTrenKas(
		[]BulanJumlah{
			{Bulan: "2024-02", Jumlah: 100},
			{Bulan: "2024-01", Jumlah: 50},
		},
		[]BulanJumlah{
			{Bulan: "2024-02", Jumlah: 30},
			{Bulan: "2024-03", Jumlah: 10},
		},
	)

	if len(got) != 3 {
		t.Fatalf("jumlah bulan = %d, want 3", len(got))
	}
	wantOrder := []string{"2024-01", "2024-02", "2024-03"}
	for i, w := range wantOrder {
		if got[i].Bulan != w {
			t.Errorf("urutan[%d] = %s, want %s", i, got[i].Bulan, w)
		}
	}
	if got[1].Pemasukan != 100 || got[1].Pengeluaran != 30 {
		t.Errorf("2024-02 = %+v, want pemasukan 100 pengeluaran 30", got[1])
	}
	if got[2].Pemasukan != 0 || got[2].Pengeluaran != 10 {
		t.Errorf("2024-03 = %+v, want pemasukan 0 pengeluaran 10", got[2])
	}
}
