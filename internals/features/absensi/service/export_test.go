package service

import (
	"bytes"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"pesantrenku_backend/internals/features/absensi/dto"
)

func TestBuildAbsensiXLSX(t *testing.T) {
	ket := "demam"
	rows := []dto.AbsensiJoinedRow{
		{
			SantriNIS:     "2024001",
			SantriNama:    "Ahmad Fauzi",
			SantriTingkat: "tsanawiyah",
			SantriKelas:   "7A",
			Tanggal:       time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
			Kategori:      "kelas",
			Status:        "HADIR",
		},
		{
			SantriNIS:     "2024002",
			SantriNama:    "Budi Santoso",
			SantriTingkat: "tsanawiyah",
			SantriKelas:   "7A",
			Tanggal:       time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
			Kategori:      "kelas",
			Status:        "SAKIT",
			Keterangan:    &ket,
		},
	}

	raw, err := BuildAbsensiXLSX(rows, ExportFilter{Bulan: 3, Tahun: 2024})
	if err != nil {
		t.Fatalf("BuildAbsensiXLSX gagal: %v", err)
	}
	if len(raw) == 0 {
		t.Fatal("hasil xlsx kosong")
	}

	x, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("hasil bukan xlsx valid: %v", err)
	}
	defer x.Close()

	judul, err := x.GetCellValue("Absensi", "A1")
	if err != nil {
		t.Fatalf("baca judul gagal: %v", err)
	}
	if judul != "Rekap Absensi Santri — Maret 2024" {
		t.Errorf("judul = %q", judul)
	}

	header, err := x.GetCellValue("Absensi", "B3")
	if err != nil {
		t.Fatalf("baca header gagal: %v", err)
	}
	if header != "NIS" {
		t.Errorf("header B3 = %q, harus NIS", header)
	}

	nama, err := x.GetCellValue("Absensi", "C5")
	if err != nil {
		t.Fatalf("baca baris data gagal: %v", err)
	}
	if nama != "Budi Santoso" {
		t.Errorf("C5 = %q, harus Budi Santoso", nama)
	}
}

func TestBuildAbsensiXLSX_Deterministik(t *testing.T) {
	rows := []dto.AbsensiJoinedRow{
		{SantriNIS: "1", SantriNama: "A", Tanggal: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), Status: "HADIR"},
	}
	a, err := BuildAbsensiXLSX(rows, ExportFilter{})
	if err != nil {
		t.Fatal(err)
	}
	b, err := BuildAbsensiXLSX(rows, ExportFilter{})
	if err != nil {
		t.Fatal(err)
	}
	// xlsx = arsip zip; bandingkan isi sel, bukan byte mentah (zip memuat timestamp)
	xa, err := excelize.OpenReader(bytes.NewReader(a))
	if err != nil {
		t.Fatal(err)
	}
	defer xa.Close()
	xb, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		t.Fatal(err)
	}
	defer xb.Close()

	for _, cell := range []string{"A1", "A3", "A4", "B4", "C4", "H4"} {
		va, _ := xa.GetCellValue("Absensi", cell)
		vb, _ := xb.GetCellValue("Absensi", cell)
		if va != vb {
			t.Errorf("sel %s berbeda antara dua build: %q vs %q", cell, va, vb)
		}
	}
}
