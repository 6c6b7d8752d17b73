package helper

import "testing"

func TestBuildPaginationFromPage(t *testing.T) {
	tests := []struct {
		name       string
		total      int64
		page       int
		perPage    int
		wantPages  int
		wantNext   bool
		wantPrev   bool
	}{
		{"kosong", 0, 1, 20, 0, false, false},
		{"pas satu halaman", 20, 1, 20, 1, false, false},
		{"lebih satu", 21, 1, 20, 2, true, false},
		{"halaman tengah", 100, 3, 20, 5, true, true},
		{"halaman terakhir", 100, 5, 20, 5, false, true},
		{"halaman melewati total", 10, 9, 20, 1, false, true},
		{"ceil tidak bulat", 95, 1, 20, 5, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildPaginationFromPage(tt.total, tt.page, tt.perPage)
			if got.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, harus %d", got.TotalPages, tt.wantPages)
			}
			if got.HasNext != tt.wantNext {
				t.Errorf("HasNext = %v, harus %v", got.HasNext, tt.wantNext)
			}
			if got.HasPrev != tt.wantPrev {
				t.Errorf("HasPrev = %v, harus %v", got.HasPrev, tt.wantPrev)
			}
			if got.Total != tt.total {
				t.Errorf("Total = %d, harus %d", got.Total, tt.total)
			}
		})
	}
}

func TestBuildPaginationFromPage_Normalisasi(t *testing.T) {
	got := BuildPaginationFromPage(50, 0, 0)
	if got.Page != 1 || got.PerPage != 20 {
		t.Errorf("page/perPage invalid harus dinormalisasi ke 1/20, dapat %d/%d", got.Page, got.PerPage)
	}
	if got.TotalPages != 3 {
		t.Errorf("TotalPages = %d, harus 3", got.TotalPages)
	}
}
