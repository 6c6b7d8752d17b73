package helper

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2024-03-15")
	if err != nil {
		t.Fatalf("ParseDate gagal: %v", err)
	}
	if got.Year() != 2024 || got.Month() != time.March || got.Day() != 15 {
		t.Errorf("hasil = %v, harus 2024-03-15", got)
	}

	if _, err := ParseDate("15-03-2024"); err == nil {
		t.Error("format DD-MM-YYYY harus ditolak")
	}
	if _, err := ParseDate(""); err == nil {
		t.Error("string kosong harus ditolak")
	}
}

func TestParseDateRFC3339ZonaPlus(t *testing.T) {
	// dini hari WIB tidak boleh mundur ke hari sebelumnya saat dipotong ke tanggal
	got, err := ParseDate("2024-01-01T01:00:00+07:00")
	if err != nil {
		t.Fatalf("ParseDate gagal: %v", err)
	}
	want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("hasil = %v, harus %v", got, want)
	}
}

func TestParseDateRange(t *testing.T) {
	r, err := ParseDateRange("2024-01-01", "2024-01-31")
	if err != nil {
		t.Fatalf("ParseDateRange gagal: %v", err)
	}
	if r.Start == nil || r.End == nil {
		t.Fatal("start & end harus terisi")
	}

	// Batas atas eksklusif = end + 1 hari, supaya hari terakhir ikut.
	e := r.EndExclusive()
	if e == nil {
		t.Fatal("EndExclusive harus terisi")
	}
	want := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	if !e.Equal(want) {
		t.Errorf("EndExclusive = %v, harus %v", e, want)
	}

	if _, err := ParseDateRange("2024-02-01", "2024-01-01"); err == nil {
		t.Error("end sebelum start harus ditolak")
	}

	// Kedua sisi opsional.
	r2, err := ParseDateRange("", "")
	if err != nil {
		t.Fatalf("range kosong harus valid: %v", err)
	}
	if r2.Start != nil || r2.End != nil || r2.EndExclusive() != nil {
		t.Error("range kosong harus tanpa batas")
	}
}

func TestMonthKey(t *testing.T) {
	got := MonthKey(time.Date(2024, 7, 9, 10, 0, 0, 0, time.UTC))
	if got != "2024-07" {
		t.Errorf("MonthKey = %q, harus \"2024-07\"", got)
	}
}
