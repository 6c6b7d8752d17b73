package service

import (
	"testing"

	"pesantrenku_backend/internals/features/pembayaran/model"
)

func TestZeroFillJenisPembayaran_Kosong(t *testing.T) {
	got := ZeroFillJenisPembayaran(nil)
	if len(got) != len(model.AllJenisPembayaran) {
		t.Fatalf("harus %d jenis, dapat %d", len(model.AllJenisPembayaran), len(got))
	}
	for i, j := range model.AllJenisPembayaran {
		if got[i].Jenis != j {
			t.Errorf("urutan[%d] = %s, harus %s", i, got[i].Jenis, j)
		}
		if got[i].TotalLunas != 0 || got[i].TotalTagih != 0 ||
			got[i].JumlahLunas != 0 || got[i].JumlahBelum != 0 {
			t.Errorf("jenis %s tanpa data harus nol semua: %+v", j, got[i])
		}
	}
}

func TestZeroFillJenisPembayaran_Sebagian(t *testing.T) {
	rows := []JenisAgregat{
		{Jenis: model.PembayaranSPP, TotalLunas: 500000, TotalTagih: 750000, JumlahLunas: 2, JumlahBelum: 1},
		{Jenis: model.PembayaranAsrama, TotalLunas: 300000, TotalTagih: 300000, JumlahLunas: 1},
		{Jenis: "TIDAK_DIKENAL", TotalLunas: 999}, // diabaikan
	}

	got := ZeroFillJenisPembayaran(rows)
	if len(got) != 4 {
		t.Fatalf("harus 4 jenis, dapat %d", len(got))
	}

	byJenis := map[model.JenisPembayaran]JenisAgregat{}
	for _, r := range got {
		byJenis[r.Jenis] = r
	}
	if byJenis[model.PembayaranSPP].TotalLunas != 500000 {
		t.Errorf("SPP total_lunas = %d, harus 500000", byJenis[model.PembayaranSPP].TotalLunas)
	}
	if byJenis[model.PembayaranSPP].JumlahBelum != 1 {
		t.Errorf("SPP jumlah_belum = %d, harus 1", byJenis[model.PembayaranSPP].JumlahBelum)
	}
	if byJenis[model.PembayaranMakan].TotalTagih != 0 {
		t.Errorf("MAKAN tanpa data harus nol, dapat %d", byJenis[model.PembayaranMakan].TotalTagih)
	}
	if byJenis[model.PembayaranLainnya].TotalLunas != 0 {
		t.Errorf("jenis tidak dikenal tidak boleh bocor ke LAINNYA")
	}
}
