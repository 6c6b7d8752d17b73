// file: internals/features/kesehatan/controller/kesehatan_controller.go
package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/kesehatan/dto"
	"pesantrenku_backend/internals/features/kesehatan/model"
	santrimodel "pesantrenku_backend/internals/features/santri/model"
	helper "pesantrenku_backend/internals/helpers"
)

type KesehatanController struct {
	DB *gorm.DB
}

func NewKesehatanController(db *gorm.DB) *KesehatanController {
	return &KesehatanController{DB: db}
}

func (ctrl *KesehatanController) santriExists(id uuid.UUID) (bool, error) {
	var n int64
	err := ctrl.DB.Model(&santrimodel.Santri{}).
		Where("santri_id = ?", id).
		Count(&n).Error
	return n > 0, err
}

func (ctrl *KesehatanController) Create(c *fiber.Ctx) error {
	var in dto.KesehatanCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if ok, resp := helper.ValidateStruct(c, in); !ok {
		return resp
	}

	tanggal, err := helper.ParseDate(in.KesehatanTanggal)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal harus YYYY-MM-DD")
	}
	var sembuh *time.Time
	if in.KesehatanSembuh != nil && *in.KesehatanSembuh != "" {
		t, err := helper.ParseDate(*in.KesehatanSembuh)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal_sembuh harus YYYY-MM-DD")
		}
		if t.Before(tanggal) {
			return helper.JsonError(c, fiber.StatusBadRequest, "tanggal_sembuh tidak boleh sebelum tanggal_sakit")
		}
		sembuh = &t
	}

	if ok, err := ctrl.santriExists(in.KesehatanSantriID); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	} else if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "Santri tidak ditemukan")
	}

	m := model.KesehatanSantri{
		KesehatanSantriID: in.KesehatanSantriID,
		KesehatanJenis:    in.KesehatanJenis,
		KesehatanTanggal:  tanggal,
		KesehatanSembuh:   sembuh,
		KesehatanTindakan: in.KesehatanTindakan,
		KesehatanCatatan:  in.KesehatanCatatan,
	}
	if err := ctrl.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Catatan kesehatan berhasil ditambahkan", m)
}

func (ctrl *KesehatanController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 200)

	q := ctrl.DB.Model(&model.KesehatanSantri{})
	if v := c.Query("santri_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "santri_id tidak valid")
		}
		q = q.Where("kesehatan_santri_id = ?", id)
	}
	// masih_sakit=true: hanya yang belum sembuh
	if c.Query("masih_sakit") == "true" {
		q = q.Where("kesehatan_tanggal_sembuh IS NULL")
	}
	rng, err := helper.ParseDateRange(c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if rng.Start != nil {
		q = q.Where("kesehatan_tanggal_sakit >= ?", *rng.Start)
	}
	if e := rng.EndExclusive(); e != nil {
		q = q.Where("kesehatan_tanggal_sakit < ?", *e)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []model.KesehatanSantri
	if err := q.Order("kesehatan_tanggal_sakit DESC, kesehatan_created_at DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", list,
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

func (ctrl *KesehatanController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.KesehatanSantri
	if err := ctrl.DB.First(&m, "kesehatan_id = ?", id).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Catatan kesehatan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", m)
}

func (ctrl *KesehatanController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var in dto.KesehatanUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if ok, resp := helper.ValidateStruct(c, in); !ok {
		return resp
	}

	var m model.KesehatanSantri
	if err := ctrl.DB.First(&m, "kesehatan_id = ?", id).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Catatan kesehatan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if in.KesehatanJenis != nil {
		m.KesehatanJenis = *in.KesehatanJenis
	}
	if in.KesehatanTanggal != nil {
		t, err := helper.ParseDate(*in.KesehatanTanggal)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal harus YYYY-MM-DD")
		}
		m.KesehatanTanggal = t
	}
	if in.KesehatanSembuh != nil {
		if *in.KesehatanSembuh == "" {
			m.KesehatanSembuh = nil // dinyatakan belum sembuh lagi
		} else {
			t, err := helper.ParseDate(*in.KesehatanSembuh)
			if err != nil {
				return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal_sembuh harus YYYY-MM-DD")
			}
			if t.Before(m.KesehatanTanggal) {
				return helper.JsonError(c, fiber.StatusBadRequest, "tanggal_sembuh tidak boleh sebelum tanggal_sakit")
			}
			m.KesehatanSembuh = &t
		}
	}
	if in.KesehatanTindakan != nil {
		m.KesehatanTindakan = in.KesehatanTindakan
	}
	if in.KesehatanCatatan != nil {
		m.KesehatanCatatan = in.KesehatanCatatan
	}

	if err := ctrl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Catatan kesehatan berhasil diperbarui", m)
}

func (ctrl *KesehatanController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.Delete(&model.KesehatanSantri{}, "kesehatan_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Catatan kesehatan tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Catatan kesehatan berhasil dihapus", fiber.Map{"kesehatan_id": id})
}
