// file: internals/features/santri/controller/santri_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/santri/dto"
	"pesantrenku_backend/internals/features/santri/model"
	helper "pesantrenku_backend/internals/helpers"
)

type SantriController struct {
	DB *gorm.DB
}

func NewSantriController(db *gorm.DB) *SantriController {
	return &SantriController{DB: db}
}

func buildSantriOrderClause(sortBy, order string) string {
	allowed := map[string]string{
		"nama":       "santri_nama",
		"nis":        "santri_nis",
		"kelas":      "santri_kelas",
		"created_at": "santri_created_at",
	}
	col, ok := allowed[strings.ToLower(sortBy)]
	if !ok {
		col = allowed["created_at"]
	}
	dir := "DESC"
	if strings.EqualFold(order, "asc") {
		dir = "ASC"
	}
	return col + " " + dir
}

// -----------------------------------------
// Create (POST /santri)
// -----------------------------------------
func (ctrl *SantriController) Create(c *fiber.Ctx) error {
	var in dto.SantriCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if ok, resp := helper.ValidateStruct(c, in); !ok {
		return resp
	}

	m := in.ToModel()
	if err := ctrl.DB.Create(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "NIS "+in.SantriNIS+" sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Santri berhasil ditambahkan", dto.ToSantriResponse(m))
}

// -----------------------------------------
// List (GET /santri)
// Query filters (opsional): q, kelas, tingkat, status, jenis_kelamin
// -----------------------------------------
func (ctrl *SantriController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 200)

	q := ctrl.DB.Model(&model.Santri{})
	if v := strings.TrimSpace(c.Query("q")); v != "" {
		q = q.Where("santri_nama ILIKE ?", "%"+v+"%")
	}
	if v := c.Query("kelas"); v != "" {
		q = q.Where("santri_kelas = ?", v)
	}
	if v := c.Query("tingkat"); v != "" {
		q = q.Where("santri_tingkat = ?", v)
	}
	if v := c.Query("status"); v != "" {
		q = q.Where("santri_status = ?", v)
	}
	if v := c.Query("jenis_kelamin"); v != "" {
		q = q.Where("santri_jenis_kelamin = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []model.Santri
	if err := q.
		Order(buildSantriOrderClause(c.Query("sort_by"), c.Query("order"))).
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", dto.ToSantriResponses(list),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// -----------------------------------------
// Search (GET /santri/search?q=...) — autocomplete, minimal 3 karakter
// -----------------------------------------
func (ctrl *SantriController) Search(c *fiber.Ctx) error {
	qs := strings.TrimSpace(c.Query("q"))
	if len([]rune(qs)) < 3 {
		return helper.JsonOK(c, "", []dto.SantriSearchItem{})
	}

	var items []dto.SantriSearchItem
	if err := ctrl.DB.Model(&model.Santri{}).
		Select("santri_id, santri_nama, santri_nis, santri_kelas").
		Where("santri_nama ILIKE ?", "%"+qs+"%").
		Where("santri_status = ?", model.SantriStatusAktif).
		Order("santri_nama ASC").
		Limit(10).
		Scan(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", items)
}

// -----------------------------------------
// Detail (GET /santri/:id)
// -----------------------------------------
func (ctrl *SantriController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.Santri
	if err := ctrl.DB.First(&m, "santri_id = ?", id).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Santri tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.ToSantriResponse(m))
}

// -----------------------------------------
// Update (PUT /santri/:id) — partial, NIS tidak bisa diganti
// -----------------------------------------
func (ctrl *SantriController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var in dto.SantriUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if ok, resp := helper.ValidateStruct(c, in); !ok {
		return resp
	}

	var m model.Santri
	if err := ctrl.DB.First(&m, "santri_id = ?", id).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Santri tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	in.ApplyToModel(&m)
	if err := ctrl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Santri berhasil diperbarui", dto.ToSantriResponse(m))
}

// -----------------------------------------
// Delete (DELETE /santri/:id) — hard delete, anak ikut terhapus via FK cascade
// -----------------------------------------
func (ctrl *SantriController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.Delete(&model.Santri{}, "santri_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Santri tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Santri berhasil dihapus", fiber.Map{"santri_id": id})
}
