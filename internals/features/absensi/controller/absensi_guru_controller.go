// file: internals/features/absensi/controller/absensi_guru_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/absensi/dto"
	"pesantrenku_backend/internals/features/absensi/model"
	"pesantrenku_backend/internals/features/absensi/service"
	gurumodel "pesantrenku_backend/internals/features/guru/model"
	helper "pesantrenku_backend/internals/helpers"
)

type AbsensiGuruController struct {
	DB *gorm.DB
}

func NewAbsensiGuruController(db *gorm.DB) *AbsensiGuruController {
	return &AbsensiGuruController{DB: db}
}

// Upsert (POST /absensi-guru) — satu baris per (guru, tanggal)
func (ctrl *AbsensiGuruController) Upsert(c *fiber.Ctx) error {
	var in dto.AbsensiGuruUpsertDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if ok, resp := helper.ValidateStruct(c, in); !ok {
		return resp
	}

	tanggal, err := helper.ParseDate(in.Tanggal)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var n int64
	if err := ctrl.DB.Model(&gurumodel.Guru{}).Where("guru_id = ?", in.GuruID).Count(&n).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if n == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Guru tidak ditemukan")
	}

	var m model.AbsensiGuru
	err = ctrl.DB.Where("absensi_guru_guru_id = ? AND absensi_guru_tanggal = ?", in.GuruID, tanggal).
		First(&m).Error
	switch {
	case err == nil:
		m.AbsensiGuruStatus = model.AbsensiStatus(in.Status)
		m.AbsensiGuruKeterangan = in.Keterangan
		if err := ctrl.DB.Save(&m).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		return helper.JsonUpdated(c, "Absensi guru diperbarui", dto.ToAbsensiGuruResponse(m))

	case helper.IsNotFound(err):
		m = model.AbsensiGuru{
			AbsensiGuruGuruID:     in.GuruID,
			AbsensiGuruTanggal:    tanggal,
			AbsensiGuruStatus:     model.AbsensiStatus(in.Status),
			AbsensiGuruKeterangan: in.Keterangan,
		}
		if err := ctrl.DB.Create(&m).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return helper.JsonError(c, fiber.StatusConflict, "Absensi guru untuk tanggal ini sudah tercatat")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		return helper.JsonCreated(c, "Absensi guru tercatat", dto.ToAbsensiGuruResponse(m))

	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
}

// List (GET /absensi-guru) — filter guru_id, status, rentang tanggal inklusif
func (ctrl *AbsensiGuruController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 200)

	r, err := helper.ParseDateRange(c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	q := ctrl.DB.Model(&model.AbsensiGuru{})
	if v := c.Query("guru_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("absensi_guru_guru_id = ?", id)
		}
	}
	if v := c.Query("status"); v != "" {
		q = q.Where("absensi_guru_status = ?", v)
	}
	if r.Start != nil {
		q = q.Where("absensi_guru_tanggal >= ?", *r.Start)
	}
	if end := r.EndExclusive(); end != nil {
		q = q.Where("absensi_guru_tanggal < ?", *end)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []model.AbsensiGuru
	if err := q.Order("absensi_guru_tanggal DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", dto.ToAbsensiGuruResponses(list),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// Stats (GET /absensi-guru/stats) — rekap status zero-fill
func (ctrl *AbsensiGuruController) Stats(c *fiber.Ctx) error {
	r, err := helper.ParseDateRange(c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	q := ctrl.DB.Model(&model.AbsensiGuru{})
	if v := c.Query("guru_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("absensi_guru_guru_id = ?", id)
		}
	}
	if r.Start != nil {
		q = q.Where("absensi_guru_tanggal >= ?", *r.Start)
	}
	if end := r.EndExclusive(); end != nil {
		q = q.Where("absensi_guru_tanggal < ?", *end)
	}

	var counts []service.StatusCount
	if err := q.
		Select("absensi_guru_status AS status, COUNT(*) AS jumlah").
		Group("absensi_guru_status").
		Scan(&counts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "", service.ZeroFillStatus(counts))
}
