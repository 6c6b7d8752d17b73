// file: internals/features/nilai/controller/nilai_controller.go
package controller

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/nilai/dto"
	"pesantrenku_backend/internals/features/nilai/model"
	"pesantrenku_backend/internals/features/nilai/service"
	santrimodel "pesantrenku_backend/internals/features/santri/model"
	helper "pesantrenku_backend/internals/helpers"
)

type NilaiController struct {
	DB *gorm.DB
}

func NewNilaiController(db *gorm.DB) *NilaiController {
	return &NilaiController{DB: db}
}

func (ctrl *NilaiController) santriExists(id uuid.UUID) (bool, error) {
	var n int64
	err := ctrl.DB.Model(&santrimodel.Santri{}).
		Where("santri_id = ?", id).
		Count(&n).Error
	return n > 0, err
}

func (ctrl *NilaiController) Create(c *fiber.Ctx) error {
	var in dto.NilaiCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if ok, resp := helper.ValidateStruct(c, in); !ok {
		return resp
	}

	if ok, err := ctrl.santriExists(in.NilaiSantriID); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	} else if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "Santri tidak ditemukan")
	}

	m := model.NilaiSantri{
		NilaiSantriID:    in.NilaiSantriID,
		NilaiMapel:       in.NilaiMapel,
		NilaiSemester:    model.Semester(in.NilaiSemester),
		NilaiTahunAjaran: in.NilaiTahunAjaran,
		NilaiAngka:       *in.NilaiAngka,
		NilaiCatatan:     in.NilaiCatatan,
	}
	if err := ctrl.DB.Create(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict,
				fmt.Sprintf("Nilai %s untuk semester %s %s sudah tercatat",
					in.NilaiMapel, in.NilaiSemester, in.NilaiTahunAjaran))
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Nilai berhasil ditambahkan", m)
}

func (ctrl *NilaiController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 200)

	q := ctrl.DB.Model(&model.NilaiSantri{})
	if v := c.Query("santri_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "santri_id tidak valid")
		}
		q = q.Where("nilai_santri_id = ?", id)
	}
	if v := c.Query("mapel"); v != "" {
		q = q.Where("nilai_mapel ILIKE ?", "%"+v+"%")
	}
	if v := c.Query("semester"); v != "" {
		if !model.Semester(v).Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "Semester harus GANJIL atau GENAP")
		}
		q = q.Where("nilai_semester = ?", v)
	}
	if v := c.Query("tahun_ajaran"); v != "" {
		q = q.Where("nilai_tahun_ajaran = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []model.NilaiSantri
	if err := q.Order("nilai_tahun_ajaran DESC, nilai_semester ASC, nilai_mapel ASC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", list,
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// Transkrip: seluruh nilai satu santri, dikelompokkan per semester.
func (ctrl *NilaiController) Transkrip(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("santri_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "santri_id tidak valid")
	}

	var s santrimodel.Santri
	if err := ctrl.DB.First(&s, "santri_id = ?", id).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Santri tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.NilaiSantri
	if err := ctrl.DB.
		Where("nilai_santri_id = ?", id).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "", fiber.Map{
		"santri_id":   s.SantriID,
		"santri_nama": s.SantriNama,
		"transkrip":   service.GroupTranskrip(rows),
	})
}

func (ctrl *NilaiController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var in dto.NilaiUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if ok, resp := helper.ValidateStruct(c, in); !ok {
		return resp
	}

	var m model.NilaiSantri
	if err := ctrl.DB.First(&m, "nilai_id = ?", id).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Nilai tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if in.NilaiMapel != nil {
		m.NilaiMapel = *in.NilaiMapel
	}
	if in.NilaiSemester != nil {
		m.NilaiSemester = model.Semester(*in.NilaiSemester)
	}
	if in.NilaiTahunAjaran != nil {
		m.NilaiTahunAjaran = *in.NilaiTahunAjaran
	}
	if in.NilaiAngka != nil {
		m.NilaiAngka = *in.NilaiAngka
	}
	if in.NilaiCatatan != nil {
		m.NilaiCatatan = in.NilaiCatatan
	}

	if err := ctrl.DB.Save(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict,
				"Nilai untuk mapel & semester tersebut sudah tercatat")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Nilai berhasil diperbarui", m)
}

func (ctrl *NilaiController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.Delete(&model.NilaiSantri{}, "nilai_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Nilai tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Nilai berhasil dihapus", fiber.Map{"nilai_id": id})
}
