// file: internals/features/koperasi/controller/anggota_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/koperasi/dto"
	"pesantrenku_backend/internals/features/koperasi/model"
	"pesantrenku_backend/internals/features/koperasi/service"
	helper "pesantrenku_backend/internals/helpers"
)

type AnggotaController struct {
	DB *gorm.DB
}

func NewAnggotaController(db *gorm.DB) *AnggotaController {
	return &AnggotaController{DB: db}
}

func (ctrl *AnggotaController) Create(c *fiber.Ctx) error {
	var in dto.AnggotaCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if ok, resp := helper.ValidateStruct(c, in); !ok {
		return resp
	}

	m := in.ToModel()
	if err := ctrl.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Anggota berhasil ditambahkan", dto.ToAnggotaResponse(m))
}

func (ctrl *AnggotaController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 200)

	q := ctrl.DB.Model(&model.AnggotaKoperasi{})
	if v := strings.TrimSpace(c.Query("q")); v != "" {
		q = q.Where("anggota_nama ILIKE ?", "%"+v+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []model.AnggotaKoperasi
	if err := q.Order("anggota_nama ASC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", dto.ToAnggotaResponses(list),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// Search: autocomplete nama anggota, minimal 3 karakter, maksimal 10 hasil.
func (ctrl *AnggotaController) Search(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q"))
	if len([]rune(q)) < 3 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Kata kunci minimal 3 karakter")
	}

	var list []model.AnggotaKoperasi
	if err := ctrl.DB.
		Where("anggota_nama ILIKE ?", "%"+q+"%").
		Order("anggota_nama ASC").
		Limit(10).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.ToAnggotaResponses(list))
}

func (ctrl *AnggotaController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.AnggotaKoperasi
	if err := ctrl.DB.First(&m, "anggota_id = ?", id).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Anggota tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.ToAnggotaResponse(m))
}

func (ctrl *AnggotaController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var in dto.AnggotaUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if ok, resp := helper.ValidateStruct(c, in); !ok {
		return resp
	}

	var m model.AnggotaKoperasi
	if err := ctrl.DB.First(&m, "anggota_id = ?", id).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Anggota tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	in.ApplyToModel(&m)
	if err := ctrl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Anggota berhasil diperbarui", dto.ToAnggotaResponse(m))
}

func (ctrl *AnggotaController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.Delete(&model.AnggotaKoperasi{}, "anggota_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Anggota tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Anggota berhasil dihapus", fiber.Map{"anggota_id": id})
}

// -----------------------------------------
// Ringkasan (GET /koperasi/anggota/:id/ringkasan)
// Invariant: total pemasukan = jumlah dekomposisi 4 jenis; saldo = masuk-keluar.
// -----------------------------------------
func (ctrl *AnggotaController) Ringkasan(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.AnggotaKoperasi
	if err := ctrl.DB.First(&m, "anggota_id = ?", id).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Anggota tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var pemasukan []service.JenisJumlah
	if err := ctrl.DB.Model(&model.PemasukanKoperasi{}).
		Select("pemasukan_jenis AS jenis, COALESCE(SUM(pemasukan_jumlah),0) AS jumlah").
		Where("pemasukan_anggota_id = ?", id).
		Group("pemasukan_jenis").
		Scan(&pemasukan).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var totalKeluar int64
	if err := ctrl.DB.Model(&model.PengeluaranKoperasi{}).
		Where("pengeluaran_anggota_id = ?", id).
		Select("COALESCE(SUM(pengeluaran_jumlah),0)").
		Scan(&totalKeluar).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "", fiber.Map{
		"anggota":   dto.ToAnggotaResponse(m),
		"ringkasan": service.BuildRingkasan(pemasukan, totalKeluar),
	})
}
