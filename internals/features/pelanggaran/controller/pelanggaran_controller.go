// file: internals/features/pelanggaran/controller/pelanggaran_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/pelanggaran/dto"
	"pesantrenku_backend/internals/features/pelanggaran/model"
	santrimodel "pesantrenku_backend/internals/features/santri/model"
	helper "pesantrenku_backend/internals/helpers"
	"pesantrenku_backend/internals/helpers/oss"
)

type PelanggaranController struct {
	DB  *gorm.DB
	OSS *oss.Service
}

func NewPelanggaranController(db *gorm.DB, svc *oss.Service) *PelanggaranController {
	return &PelanggaranController{DB: db, OSS: svc}
}

func (ctrl *PelanggaranController) uploadBukti(c *fiber.Ctx) (*string, error) {
	fh, err := c.FormFile("bukti")
	if err != nil || fh == nil {
		return nil, nil
	}
	if ctrl.OSS == nil {
		return nil, fiber.NewError(fiber.StatusServiceUnavailable, "Penyimpanan bukti belum dikonfigurasi")
	}
	url, err := ctrl.OSS.UploadBuktiImage("pelanggaran", fh)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return &url, nil
}

func (ctrl *PelanggaranController) Create(c *fiber.Ctx) error {
	var in dto.PelanggaranCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if ok, resp := helper.ValidateStruct(c, in); !ok {
		return resp
	}

	tanggal, err := helper.ParseDate(in.PelanggaranTanggal)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal harus YYYY-MM-DD")
	}

	var n int64
	if err := ctrl.DB.Model(&santrimodel.Santri{}).
		Where("santri_id = ?", in.PelanggaranSantriID).
		Count(&n).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if n == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Santri tidak ditemukan")
	}

	buktiURL, errBukti := ctrl.uploadBukti(c)
	if errBukti != nil {
		if fe, okFE := errBukti.(*fiber.Error); okFE {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, errBukti.Error())
	}

	m := model.PelanggaranSantri{
		PelanggaranSantriID: in.PelanggaranSantriID,
		PelanggaranJenis:    in.PelanggaranJenis,
		PelanggaranKategori: model.KategoriPelanggaran(in.PelanggaranKategori),
		PelanggaranTanggal:  tanggal,
		PelanggaranHukuman:  in.PelanggaranHukuman,
		PelanggaranCatatan:  in.PelanggaranCatatan,
		PelanggaranBuktiURL: buktiURL,
	}
	if err := ctrl.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Pelanggaran berhasil dicatat", m)
}

func (ctrl *PelanggaranController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 200)

	q := ctrl.DB.Model(&model.PelanggaranSantri{})
	if v := c.Query("santri_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "santri_id tidak valid")
		}
		q = q.Where("pelanggaran_santri_id = ?", id)
	}
	if v := c.Query("kategori"); v != "" {
		if !model.KategoriPelanggaran(v).Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "Kategori harus RINGAN, SEDANG, atau BERAT")
		}
		q = q.Where("pelanggaran_kategori = ?", v)
	}
	rng, err := helper.ParseDateRange(c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if rng.Start != nil {
		q = q.Where("pelanggaran_tanggal >= ?", *rng.Start)
	}
	if e := rng.EndExclusive(); e != nil {
		q = q.Where("pelanggaran_tanggal < ?", *e)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []model.PelanggaranSantri
	if err := q.Order("pelanggaran_tanggal DESC, pelanggaran_created_at DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", list,
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

func (ctrl *PelanggaranController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.PelanggaranSantri
	if err := ctrl.DB.First(&m, "pelanggaran_id = ?", id).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pelanggaran tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", m)
}

func (ctrl *PelanggaranController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var in dto.PelanggaranUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if ok, resp := helper.ValidateStruct(c, in); !ok {
		return resp
	}

	var m model.PelanggaranSantri
	if err := ctrl.DB.First(&m, "pelanggaran_id = ?", id).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pelanggaran tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if in.PelanggaranJenis != nil {
		m.PelanggaranJenis = *in.PelanggaranJenis
	}
	if in.PelanggaranKategori != nil {
		m.PelanggaranKategori = model.KategoriPelanggaran(*in.PelanggaranKategori)
	}
	if in.PelanggaranTanggal != nil {
		t, err := helper.ParseDate(*in.PelanggaranTanggal)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal harus YYYY-MM-DD")
		}
		m.PelanggaranTanggal = t
	}
	if in.PelanggaranHukuman != nil {
		m.PelanggaranHukuman = in.PelanggaranHukuman
	}
	if in.PelanggaranCatatan != nil {
		m.PelanggaranCatatan = in.PelanggaranCatatan
	}

	// Bukti baru (opsional) menggantikan yang lama.
	if buktiURL, errBukti := ctrl.uploadBukti(c); errBukti != nil {
		if fe, okFE := errBukti.(*fiber.Error); okFE {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, errBukti.Error())
	} else if buktiURL != nil {
		if m.PelanggaranBuktiURL != nil && ctrl.OSS != nil {
			_ = ctrl.OSS.DeleteByPublicURL(*m.PelanggaranBuktiURL)
		}
		m.PelanggaranBuktiURL = buktiURL
	}

	if err := ctrl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Pelanggaran berhasil diperbarui", m)
}

func (ctrl *PelanggaranController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.PelanggaranSantri
	if err := ctrl.DB.First(&m, "pelanggaran_id = ?", id).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pelanggaran tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := ctrl.DB.Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if m.PelanggaranBuktiURL != nil && ctrl.OSS != nil {
		_ = ctrl.OSS.DeleteByPublicURL(*m.PelanggaranBuktiURL)
	}
	return helper.JsonDeleted(c, "Pelanggaran berhasil dihapus", fiber.Map{"pelanggaran_id": id})
}
