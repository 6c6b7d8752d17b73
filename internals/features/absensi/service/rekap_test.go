package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"pesantrenku_backend/internals/features/absensi/model"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestZeroFillStatus(t *testing.T) {
	tests := []struct {
		name string
		rows []StatusCount
		want map[model.AbsensiStatus]int64
	}{
		{
			name: "tanpa data semua status tetap muncul 0",
			rows: nil,
			want: map[model.AbsensiStatus]int64{
				model.AbsensiStatusHadir: 0,
				model.AbsensiStatusAlpa:  0,
				model.AbsensiStatusSakit: 0,
				model.AbsensiStatusIzin:  0,
			},
		},
		{
			name: "sebagian status terisi, sisanya 0",
			rows: []StatusCount{
				{Status: model.AbsensiStatusHadir, Jumlah: 12},
				{Status: model.AbsensiStatusIzin, Jumlah: 3},
			},
			want: map[model.AbsensiStatus]int64{
				model.AbsensiStatusHadir: 12,
				model.AbsensiStatusAlpa:  0,
				model.AbsensiStatusSakit: 0,
				model.AbsensiStatusIzin:  3,
			},
		},
		{
			name: "status di luar enum diabaikan",
			rows: []StatusCount{
				{Status: model.AbsensiStatus("BOLOS"), Jumlah: 9},
				{Status: model.AbsensiStatusSakit, Jumlah: 1},
			},
			want: map[model.AbsensiStatus]int64{
				model.AbsensiStatusHadir: 0,
				model.AbsensiStatusAlpa:  0,
				model.AbsensiStatusSakit: 1,
				model.AbsensiStatusIzin:  0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ZeroFillStatus(tt.rows)
			if len(got) != len(model.AllAbsensiStatus) {
				t.Fatalf("jumlah status = %d, want %d", len(got), len(model.AllAbsensiStatus))
			}
			for _, r := range got {
				if r.Jumlah < 0 {
					t.Errorf("%s: jumlah negatif %d", r.Status, r.Jumlah)
				}
				if want := tt.want[r.Status]; r.Jumlah != want {
					t.Errorf("%s = %d, want %d", r.Status, r.Jumlah, want)
				}
			}
			// urutan output harus mengikuti AllAbsensiStatus
			for i, s := range model.AllAbsensiStatus {
				if got[i].Status != s {
					t.Errorf("urutan[%d] = %s, want %s", i, got[i].Status, s)
				}
			}
		})
	}
}

func TestRekapBulanan(t *testing.T) {
	rows := []TanggalStatus{
		{Tanggal: date("2024-01-15"), Status: model.AbsensiStatusHadir},
		{Tanggal: date("2024-01-28"), Status: model.AbsensiStatusSakit},
		{Tanggal: date("2024-02-01"), Status: model.AbsensiStatusHadir},
	}

	got := RekapBulanan(rows)
	if len(got) != 2 {
		t.Fatalf("jumlah bucket = %d, want 2", len(got))
	}
	if got[0].Bulan != "2024-01" || got[1].Bulan != "2024-02" {
		t.Fatalf("kunci bucket = [%s %s], want [2024-01 2024-02]", got[0].Bulan, got[1].Bulan)
	}
	if got[0].Total != 2 {
		t.Errorf("total 2024-01 = %d, want 2", got[0].Total)
	}
	if got[0].PerStatus[model.AbsensiStatusHadir] != 1 || got[0].PerStatus[model.AbsensiStatusSakit] != 1 {
		t.Errorf("per status 2024-01 = %v", got[0].PerStatus)
	}
	// zero-fill juga berlaku di dalam bucket
	if v, ok := got[1].PerStatus[model.AbsensiStatusAlpa]; !ok || v != 0 {
		t.Errorf("ALPA 2024-02 = %d (ok=%v), want 0 dan hadir di map", v, ok)
	}
}

func TestRekapBulananKosong(t *testing.T) {
	if got := RekapBulanan(nil); len(got) != 0 {
		t.Fatalf("bucket dari input kosong = %d, want 0", len(got))
	}
}

func TestRekapPerHari(t *testing.T) {
	// 2024-01-15 = Senin, 2024-01-22 = Senin, 2024-01-16 = Selasa
	rows := []TanggalStatus{
		{Tanggal: date("2024-01-15"), Status: model.AbsensiStatusHadir},
		{Tanggal: date("2024-01-15"), Status: model.AbsensiStatusHadir},
		{Tanggal: date("2024-01-15"), Status: model.AbsensiStatusAlpa},
		{Tanggal: date("2024-01-22"), Status: model.AbsensiStatusHadir},
		{Tanggal: date("2024-01-16"), Status: model.AbsensiStatusHadir},
	}

	got := RekapPerHari(rows, 10)
	if len(got) != 7 {
		t.Fatalf("jumlah hari = %d, want 7", len(got))
	}

	senin := got[0]
	if senin.Hari != "Senin" {
		t.Fatalf("hari[0] = %s, want Senin", senin.Hari)
	}
	if senin.Hadir != 3 {
		t.Errorf("hadir Senin = %d, want 3", senin.Hadir)
	}
	if senin.Kemunculan != 2 {
		t.Errorf("kemunculan Senin = %d, want 2 (tanggal unik)", senin.Kemunculan)
	}
	// rumus lama: round(3 / (2/10)) = round(15) = 15 — BUKAN 3/2
	if senin.RataRata != 15 {
		t.Errorf("rata-rata Senin = %d, want 15 (rumus legacy)", senin.RataRata)
	}

	selasa := got[1]
	if selasa.Hadir != 1 || selasa.Kemunculan != 1 {
		t.Errorf("Selasa hadir=%d kemunculan=%d, want 1/1", selasa.Hadir, selasa.Kemunculan)
	}
	// round(1 / (1/10)) = 10
	if selasa.RataRata != 10 {
		t.Errorf("rata-rata Selasa = %d, want 10", selasa.RataRata)
	}

	// hari tanpa data: semua nol, tidak panic karena pembagian nol
	rabu := got[2]
	if rabu.Hadir != 0 || rabu.Kemunculan != 0 || rabu.RataRata != 0 {
		t.Errorf("Rabu = %+v, want nol semua", rabu)
	}
}

func TestRekapPerHariPopulasiNol(t *testing.T) {
	rows := []TanggalStatus{
		{Tanggal: date("2024-01-15"), Status: model.AbsensiStatusHadir},
	}
	got := RekapPerHari(rows, 0)
	if got[0].RataRata != 0 {
		t.Errorf("rata-rata dengan populasi 0 = %d, want 0", got[0].RataRata)
	}
}

func TestMondayIndex(t *testing.T) {
	tests := []struct {
		w    time.Weekday
		want int
	}{
		{time.Monday, 0},
		{time.Tuesday, 1},
		{time.Saturday, 5},
		{time.Sunday, 6},
	}
	for _, tt := range tests {
		if got := mondayIndex(tt.w); got != tt.want {
			t.Errorf("mondayIndex(%s) = %d, want %d", tt.w, got, tt.want)
		}
	}
}

func TestDedupeSantriID(t *testing.T) {
	a := uuid.New()
	b := uuid.New()

	tests := []struct {
		name string
		ids  []uuid.UUID
		want []uuid.UUID
	}{
		{
			name: "kosong tetap kosong",
			ids:  nil,
			want: []uuid.UUID{},
		},
		{
			name: "tanpa duplikat urutan dipertahankan",
			ids:  []uuid.UUID{a, b},
			want: []uuid.UUID{a, b},
		},
		{
			name: "santri sama dua kali dihitung sekali",
			ids:  []uuid.UUID{a, a},
			want: []uuid.UUID{a},
		},
		{
			name: "duplikat tersebar, kemunculan pertama yang dipakai",
			ids:  []uuid.UUID{a, b, a, b, a},
			want: []uuid.UUID{a, b},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DedupeSantriID(tt.ids)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ids[%d] = %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}
