// file: internals/features/nilai/service/transkrip.go
//
// Pengelompokan transkrip per semester/tahun ajaran, dipisah dari controller
// supaya bisa diuji tanpa DB.
package service

import (
	"sort"

	"pesantrenku_backend/internals/features/nilai/model"
)

// TranskripSemester: satu blok semester dalam transkrip.
type TranskripSemester struct {
	TahunAjaran string              `json:"tahun_ajaran"`
	Semester    model.Semester      `json:"semester"`
	Nilai       []model.NilaiSantri `json:"nilai"`
	RataRata    float64             `json:"rata_rata"`
}

// semesterOrder: GANJIL mendahului GENAP dalam satu tahun ajaran.
func semesterOrder(s model.Semester) int {
	if s == model.SemesterGanjil {
		return 0
	}
	return 1
}

// GroupTranskrip mengelompokkan nilai per (tahun_ajaran, semester), urut
// tahun ajaran ascending lalu GANJIL sebelum GENAP. Mapel di dalam blok
// diurutkan alfabetis. Rata-rata dibulatkan 2 desimal.
func GroupTranskrip(rows []model.NilaiSantri) []TranskripSemester {
	type key struct {
		tahun    string
		semester model.Semester
	}
	byKey := map[key][]model.NilaiSantri{}
	for _, r := range rows {
		k := key{tahun: r.NilaiTahunAjaran, semester: r.NilaiSemester}
		byKey[k] = append(byKey[k], r)
	}

	keys := make([]key, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].tahun != keys[j].tahun {
			return keys[i].tahun < keys[j].tahun
		}
		return semesterOrder(keys[i].semester) < semesterOrder(keys[j].semester)
	})

	out := make([]TranskripSemester, 0, len(keys))
	for _, k := range keys {
		nilai := byKey[k]
		sort.Slice(nilai, func(i, j int) bool {
			return nilai[i].NilaiMapel < nilai[j].NilaiMapel
		})

		var sum int
		for _, n := range nilai {
			sum += n.NilaiAngka
		}
		rata := 0.0
		if len(nilai) > 0 {
			rata = float64(sum) / float64(len(nilai))
			rata = float64(int(rata*100+0.5)) / 100
		}

		out = append(out, TranskripSemester{
			TahunAjaran: k.tahun,
			Semester:    k.semester,
			Nilai:       nilai,
			RataRata:    rata,
		})
	}
	return out
}
