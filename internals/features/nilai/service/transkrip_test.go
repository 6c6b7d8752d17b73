package service

import (
	"testing"

	"pesantrenku_backend/internals/features/nilai/model"
)

func nilaiRow(tahun string, sem model.Semester, mapel string, angka int) model.NilaiSantri {
	return model.NilaiSantri{
		NilaiTahunAjaran: tahun,
		NilaiSemester:    sem,
		NilaiMapel:       mapel,
		NilaiAngka:       angka,
	}
}

func TestGroupTranskrip_Kosong(t *testing.T) {
	got := GroupTranskrip(nil)
	if len(got) != 0 {
		t.Fatalf("transkrip kosong harus tanpa blok, dapat %d", len(got))
	}
}

func TestGroupTranskrip_UrutanSemester(t *testing.T) {
	rows := []model.NilaiSantri{
		nilaiRow("2024/2025", model.SemesterGenap, "Fikih", 80),
		nilaiRow("2023/2024", model.SemesterGenap, "Fikih", 75),
		nilaiRow("2024/2025", model.SemesterGanjil, "Fikih", 70),
		nilaiRow("2023/2024", model.SemesterGanjil, "Fikih", 85),
	}

	got := GroupTranskrip(rows)
	if len(got) != 4 {
		t.Fatalf("harus 4 blok, dapat %d", len(got))
	}

	wantOrder := []struct {
		tahun string
		sem   model.Semester
	}{
		{"2023/2024", model.SemesterGanjil},
		{"2023/2024", model.SemesterGenap},
		{"2024/2025", model.SemesterGanjil},
		{"2024/2025", model.SemesterGenap},
	}
	for i, w := range wantOrder {
		if got[i].TahunAjaran != w.tahun || got[i].Semester != w.sem {
			t.Errorf("blok %d = %s %s, harus %s %s",
				i, got[i].TahunAjaran, got[i].Semester, w.tahun, w.sem)
		}
	}
}

func TestGroupTranskrip_RataRataDanUrutanMapel(t *testing.T) {
	rows := []model.NilaiSantri{
		nilaiRow("2024/2025", model.SemesterGanjil, "Nahwu", 90),
		nilaiRow("2024/2025", model.SemesterGanjil, "Fikih", 80),
		nilaiRow("2024/2025", model.SemesterGanjil, "Hadits", 71),
	}

	got := GroupTranskrip(rows)
	if len(got) != 1 {
		t.Fatalf("harus 1 blok, dapat %d", len(got))
	}

	blok := got[0]
	if blok.RataRata != 80.33 {
		t.Errorf("rata-rata = %v, harus 80.33", blok.RataRata)
	}

	wantMapel := []string{"Fikih", "Hadits", "Nahwu"}
	for i, w := range wantMapel {
		if blok.Nilai[i].NilaiMapel != w {
			t.Errorf("mapel[%d] = %s, harus %s", i, blok.Nilai[i].NilaiMapel, w)
		}
	}
}
