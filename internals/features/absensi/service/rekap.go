// file: internals/features/absensi/service/rekap.go
//
// Rekap absensi: agregasi murni di atas hasil query, dipisah dari controller
// supaya gampang diuji tanpa DB.
package service

import (
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"pesantrenku_backend/internals/features/absensi/model"
	helper "pesantrenku_backend/internals/helpers"
)

// DedupeSantriID membuang ID duplikat sambil mempertahankan urutan kemunculan
// pertama. Input bulk boleh memuat santri yang sama lebih dari sekali (entri
// belakangan menimpa), jadi validasi eksistensi harus menghitung ID unik.
func DedupeSantriID(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// StatusCount: satu baris hasil GROUP BY status dari DB.
type StatusCount struct {
	Status model.AbsensiStatus `gorm:"column:status" json:"status"`
	Jumlah int64               `gorm:"column:jumlah" json:"jumlah"`
}

// RekapStatus: hasil akhir rekap status, selalu memuat SEMUA status enum.
type RekapStatus struct {
	Status model.AbsensiStatus `json:"status"`
	Jumlah int64               `json:"jumlah"`
}

// ZeroFillStatus meng-overlay hasil query di atas daftar status lengkap.
// Status tanpa data tetap muncul dengan jumlah 0 — kontrak rekap utama.
func ZeroFillStatus(rows []StatusCount) []RekapStatus {
	counts := make(map[model.AbsensiStatus]int64, len(model.AllAbsensiStatus))
	for _, s := range model.AllAbsensiStatus {
		counts[s] = 0
	}
	for _, r := range rows {
		if _, ok := counts[r.Status]; ok {
			counts[r.Status] = r.Jumlah
		}
	}
	out := make([]RekapStatus, 0, len(model.AllAbsensiStatus))
	for _, s := range model.AllAbsensiStatus {
		out = append(out, RekapStatus{Status: s, Jumlah: counts[s]})
	}
	return out
}

// TanggalStatus: satu record absensi yang sudah ditarik untuk rekap time-series.
type TanggalStatus struct {
	Tanggal time.Time           `gorm:"column:tanggal"`
	Status  model.AbsensiStatus `gorm:"column:status"`
}

// BucketBulanan: satu bucket tren bulanan, kunci "YYYY-MM".
type BucketBulanan struct {
	Bulan     string                        `json:"bulan"`
	PerStatus map[model.AbsensiStatus]int64 `json:"per_status"`
	Total     int64                         `json:"total"`
}

// RekapBulanan mem-bucket record per bulan turunan tanggal, emit ascending by key.
func RekapBulanan(rows []TanggalStatus) []BucketBulanan {
	buckets := map[string]*BucketBulanan{}
	for _, r := range rows {
		key := helper.MonthKey(r.Tanggal)
		b, ok := buckets[key]
		if !ok {
			per := make(map[model.AbsensiStatus]int64, len(model.AllAbsensiStatus))
			for _, s := range model.AllAbsensiStatus {
				per[s] = 0
			}
			b = &BucketBulanan{Bulan: key, PerStatus: per}
			buckets[key] = b
		}
		if _, ok := b.PerStatus[r.Status]; ok {
			b.PerStatus[r.Status]++
		}
		b.Total++
	}

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]BucketBulanan, 0, len(keys))
	for _, k := range keys {
		out = append(out, *buckets[k])
	}
	return out
}

// Nama hari gaya pesantren, urut dari Senin.
var namaHari = [7]string{"Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu", "Ahad"}

// RekapHarian: distribusi per hari dalam minggu.
type RekapHarian struct {
	Hari       string `json:"hari"`
	Hadir      int64  `json:"hadir"`
	Kemunculan int64  `json:"kemunculan"` // jumlah tanggal unik absensi pada hari itu
	RataRata   int64  `json:"rata_rata"`
}

// RekapPerHari menghitung distribusi kehadiran per hari (Senin..Ahad) dengan
// rumus rata-rata lama: round(hadir / (kemunculan / totalSantriAktif)).
// Rumus ini dipertahankan apa adanya demi kompatibilitas laporan lama,
// bukan disederhanakan jadi hadir/kemunculan.
func RekapPerHari(rows []TanggalStatus, totalSantriAktif int64) []RekapHarian {
	type acc struct {
		hadir   int64
		tanggal map[string]struct{}
	}
	accs := [7]*acc{}
	for i := range accs {
		accs[i] = &acc{tanggal: map[string]struct{}{}}
	}

	for _, r := range rows {
		idx := mondayIndex(r.Tanggal.Weekday())
		accs[idx].tanggal[r.Tanggal.Format(helper.DateLayout)] = struct{}{}
		if r.Status == model.AbsensiStatusHadir {
			accs[idx].hadir++
		}
	}

	out := make([]RekapHarian, 0, 7)
	for i, a := range accs {
		kemunculan := int64(len(a.tanggal))
		var rata int64
		if kemunculan > 0 && totalSantriAktif > 0 {
			rata = int64(math.Round(float64(a.hadir) / (float64(kemunculan) / float64(totalSantriAktif))))
		}
		out = append(out, RekapHarian{
			Hari:       namaHari[i],
			Hadir:      a.hadir,
			Kemunculan: kemunculan,
			RataRata:   rata,
		})
	}
	return out
}

// mondayIndex memetakan time.Weekday (Minggu=0) ke indeks Senin=0..Ahad=6.
func mondayIndex(w time.Weekday) int {
	return (int(w) + 6) % 7
}
