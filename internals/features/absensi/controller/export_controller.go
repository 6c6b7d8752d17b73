// file: internals/features/absensi/controller/export_controller.go
package controller

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/absensi/dto"
	"pesantrenku_backend/internals/features/absensi/model"
	"pesantrenku_backend/internals/features/absensi/service"
	helper "pesantrenku_backend/internals/helpers"
)

type AbsensiExportController struct {
	DB *gorm.DB
}

func NewAbsensiExportController(db *gorm.DB) *AbsensiExportController {
	return &AbsensiExportController{DB: db}
}

// Export (GET /absensi/export?bulan=&tahun=&kelas=&tingkat=)
// Response octet-stream xlsx; baris terurut (tingkat, kelas, nama, tanggal).
func (ctrl *AbsensiExportController) Export(c *fiber.Ctx) error {
	f := service.ExportFilter{
		Bulan:   c.QueryInt("bulan"),
		Tahun:   c.QueryInt("tahun"),
		Kelas:   c.Query("kelas"),
		Tingkat: c.Query("tingkat"),
	}
	if f.Bulan != 0 && (f.Bulan < 1 || f.Bulan > 12) {
		return helper.JsonError(c, fiber.StatusBadRequest, "bulan harus 1..12")
	}

	q := ctrl.DB.Model(&model.AbsensiSantri{}).
		Joins("JOIN santri ON santri.santri_id = absensi_santri.absensi_santri_santri_id")
	if f.Bulan >= 1 && f.Bulan <= 12 {
		q = q.Where("EXTRACT(MONTH FROM absensi_santri_tanggal) = ?", f.Bulan)
	}
	if f.Tahun > 0 {
		q = q.Where("EXTRACT(YEAR FROM absensi_santri_tanggal) = ?", f.Tahun)
	}
	if f.Kelas != "" {
		q = q.Where("santri.santri_kelas = ?", f.Kelas)
	}
	if f.Tingkat != "" {
		q = q.Where("santri.santri_tingkat = ?", f.Tingkat)
	}

	var rows []dto.AbsensiJoinedRow
	if err := q.
		Select(`absensi_santri_id,
			santri.santri_id AS santri_id,
			santri.santri_nama AS santri_nama,
			santri.santri_nis AS santri_nis,
			santri.santri_kelas AS santri_kelas,
			santri.santri_tingkat AS santri_tingkat,
			absensi_santri_tanggal AS tanggal,
			absensi_santri_kategori AS kategori,
			absensi_santri_status AS status,
			absensi_santri_keterangan AS keterangan`).
		Order("santri.santri_tingkat ASC, santri.santri_kelas ASC, santri.santri_nama ASC, absensi_santri_tanggal ASC").
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	out, err := service.BuildAbsensiXLSX(rows, f)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	filename := "rekap-absensi.xlsx"
	if f.Bulan >= 1 && f.Tahun > 0 {
		filename = fmt.Sprintf("rekap-absensi-%04d-%02d.xlsx", f.Tahun, f.Bulan)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(out)
}
