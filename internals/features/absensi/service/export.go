// file: internals/features/absensi/service/export.go
package service

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"pesantrenku_backend/internals/features/absensi/dto"
)

// ExportFilter: parameter tampilan laporan bulanan.
type ExportFilter struct {
	Bulan   int // 1..12, 0 = semua
	Tahun   int
	Kelas   string
	Tingkat string
}

var exportHeader = []string{"No", "NIS", "Nama", "Tingkat", "Kelas", "Tanggal", "Kategori", "Status", "Keterangan"}

var namaBulan = [13]string{"", "Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember"}

// BuildAbsensiXLSX: transform murni (rows, filter) → bytes xlsx.
// Rows diharapkan sudah terurut (tingkat, kelas, nama, tanggal) dari query.
// Deterministik untuk input dan urutan yang sama.
func BuildAbsensiXLSX(rows []dto.AbsensiJoinedRow, f ExportFilter) ([]byte, error) {
	x := excelize.NewFile()
	defer x.Close()

	const sheet = "Absensi"
	x.SetSheetName(x.GetSheetName(0), sheet)

	judul := "Rekap Absensi Santri"
	if f.Bulan >= 1 && f.Bulan <= 12 {
		judul = fmt.Sprintf("%s — %s %d", judul, namaBulan[f.Bulan], f.Tahun)
	} else if f.Tahun > 0 {
		judul = fmt.Sprintf("%s — %d", judul, f.Tahun)
	}
	if err := x.SetCellValue(sheet, "A1", judul); err != nil {
		return nil, err
	}
	if err := x.MergeCell(sheet, "A1", "I1"); err != nil {
		return nil, err
	}

	headerStyle, err := x.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"2E7D32"}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "top", Style: 1, Color: "000000"},
			{Type: "bottom", Style: 1, Color: "000000"},
			{Type: "left", Style: 1, Color: "000000"},
			{Type: "right", Style: 1, Color: "000000"},
		},
	})
	if err != nil {
		return nil, err
	}

	const headerRow = 3
	for i, h := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(i+1, headerRow)
		if err != nil {
			return nil, err
		}
		if err := x.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}
	if err := x.SetCellStyle(sheet, "A3", "I3", headerStyle); err != nil {
		return nil, err
	}

	for i, r := range rows {
		row := headerRow + 1 + i
		ket := ""
		if r.Keterangan != nil {
			ket = *r.Keterangan
		}
		vals := []any{
			i + 1,
			r.SantriNIS,
			r.SantriNama,
			r.SantriTingkat,
			r.SantriKelas,
			r.Tanggal.Format("2006-01-02"),
			r.Kategori,
			r.Status,
			ket,
		}
		for col, v := range vals {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			if err := x.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	// lebar kolom seperlunya saja
	_ = x.SetColWidth(sheet, "B", "B", 14)
	_ = x.SetColWidth(sheet, "C", "C", 28)
	_ = x.SetColWidth(sheet, "F", "F", 12)
	_ = x.SetColWidth(sheet, "I", "I", 30)

	buf := new(bytes.Buffer)
	if err := x.Write(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
