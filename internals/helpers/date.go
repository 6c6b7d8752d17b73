// file: internals/helpers/date.go
package helper

import (
	"fmt"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// ParseDate menerima "YYYY-MM-DD" (toleran terhadap RFC3339 dari FE lama).
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		// ambil tanggal kalender di zona pengirim; Truncate bekerja di UTC
		// absolut dan bisa mundur sehari untuk offset seperti +07:00
		y, m, d := t.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}
	return time.Time{}, fmt.Errorf("format tanggal tidak valid: %q (pakai YYYY-MM-DD)", s)
}

// DateRange memegang rentang tanggal inklusif di kedua sisi.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// ParseDateRange membaca start_date/end_date opsional. String kosong = tanpa batas.
func ParseDateRange(startStr, endStr string) (DateRange, error) {
	var r DateRange
	if strings.TrimSpace(startStr) != "" {
		t, err := ParseDate(startStr)
		if err != nil {
			return r, err
		}
		r.Start = &t
	}
	if strings.TrimSpace(endStr) != "" {
		t, err := ParseDate(endStr)
		if err != nil {
			return r, err
		}
		r.End = &t
	}
	if r.Start != nil && r.End != nil && r.End.Before(*r.Start) {
		return r, fmt.Errorf("end_date sebelum start_date")
	}
	return r, nil
}

// EndExclusive mengembalikan batas atas eksklusif (end + 1 hari) supaya
// perbandingan `col < end` tetap memasukkan seluruh hari terakhir.
func (r DateRange) EndExclusive() *time.Time {
	if r.End == nil {
		return nil
	}
	t := r.End.AddDate(0, 0, 1)
	return &t
}

// MonthKey menghasilkan kunci bucket "YYYY-MM" untuk tren bulanan.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}
