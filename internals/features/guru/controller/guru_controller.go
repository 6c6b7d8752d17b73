// file: internals/features/guru/controller/guru_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/guru/dto"
	"pesantrenku_backend/internals/features/guru/model"
	helper "pesantrenku_backend/internals/helpers"
)

type GuruController struct {
	DB *gorm.DB
}

func NewGuruController(db *gorm.DB) *GuruController {
	return &GuruController{DB: db}
}

// Create (POST /guru). NIP ganda → 409, tidak ada row baru tertulis.
func (ctrl *GuruController) Create(c *fiber.Ctx) error {
	var in dto.GuruCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if ok, resp := helper.ValidateStruct(c, in); !ok {
		return resp
	}

	m := in.ToModel()
	if err := ctrl.DB.Create(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "NIP "+in.GuruNIP+" sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Guru berhasil ditambahkan", dto.ToGuruResponse(m))
}

// List (GET /guru). Filters: q, jabatan, mapel, is_active.
func (ctrl *GuruController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 200)

	q := ctrl.DB.Model(&model.Guru{})
	if v := strings.TrimSpace(c.Query("q")); v != "" {
		q = q.Where("guru_nama ILIKE ?", "%"+v+"%")
	}
	if v := c.Query("jabatan"); v != "" {
		q = q.Where("guru_jabatan = ?", v)
	}
	if v := c.Query("mapel"); v != "" {
		q = q.Where("guru_mapel = ?", v)
	}
	if v := c.Query("is_active"); v != "" {
		q = q.Where("guru_is_active = ?", strings.EqualFold(v, "true"))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []model.Guru
	if err := q.Order("guru_nama ASC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", dto.ToGuruResponses(list),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// Search (GET /guru/search?q=...) — autocomplete guru aktif
func (ctrl *GuruController) Search(c *fiber.Ctx) error {
	qs := strings.TrimSpace(c.Query("q"))
	if len([]rune(qs)) < 3 {
		return helper.JsonOK(c, "", []dto.GuruSearchItem{})
	}

	var items []dto.GuruSearchItem
	if err := ctrl.DB.Model(&model.Guru{}).
		Select("guru_id, guru_nama, guru_nip").
		Where("guru_nama ILIKE ? AND guru_is_active", "%"+qs+"%").
		Order("guru_nama ASC").
		Limit(10).
		Scan(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", items)
}

// Detail (GET /guru/:id)
func (ctrl *GuruController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.Guru
	if err := ctrl.DB.First(&m, "guru_id = ?", id).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Guru tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.ToGuruResponse(m))
}

// Update (PUT /guru/:id)
func (ctrl *GuruController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var in dto.GuruUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if ok, resp := helper.ValidateStruct(c, in); !ok {
		return resp
	}

	var m model.Guru
	if err := ctrl.DB.First(&m, "guru_id = ?", id).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Guru tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	in.ApplyToModel(&m)
	if err := ctrl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Guru berhasil diperbarui", dto.ToGuruResponse(m))
}

// Delete (DELETE /guru/:id)
func (ctrl *GuruController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.Delete(&model.Guru{}, "guru_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Guru tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Guru berhasil dihapus", fiber.Map{"guru_id": id})
}
