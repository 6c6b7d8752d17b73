// file: internals/features/pendaftaran/controller/pendaftaran_controller.go
package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/pendaftaran/dto"
	"pesantrenku_backend/internals/features/pendaftaran/model"
	santrimodel "pesantrenku_backend/internals/features/santri/model"
	helper "pesantrenku_backend/internals/helpers"
)

type PendaftaranController struct {
	DB *gorm.DB
}

func NewPendaftaranController(db *gorm.DB) *PendaftaranController {
	return &PendaftaranController{DB: db}
}

// POST /api/public/pendaftaran — formulir publik, rate-limited di route.
func (ctrl *PendaftaranController) Create(c *fiber.Ctx) error {
	var in dto.PendaftaranCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if ok, resp := helper.ValidateStruct(c, in); !ok {
		return resp
	}

	var tanggalLahir *time.Time
	if in.PendaftaranTanggalLahir != nil && *in.PendaftaranTanggalLahir != "" {
		t, err := helper.ParseDate(*in.PendaftaranTanggalLahir)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal_lahir harus YYYY-MM-DD")
		}
		tanggalLahir = &t
	}

	m := model.PendaftaranSantri{
		PendaftaranNama:         in.PendaftaranNama,
		PendaftaranJenisKelamin: in.PendaftaranJenisKelamin,
		PendaftaranTempatLahir:  in.PendaftaranTempatLahir,
		PendaftaranTanggalLahir: tanggalLahir,
		PendaftaranAlamat:       in.PendaftaranAlamat,
		PendaftaranTingkat:      in.PendaftaranTingkat,
		PendaftaranNamaWali:     in.PendaftaranNamaWali,
		PendaftaranTeleponWali:  in.PendaftaranTeleponWali,
		// Body mentah diarsipkan utuh untuk audit.
		PendaftaranPayload: datatypes.JSON(c.Body()),
		PendaftaranStatus:  model.PendaftaranMenunggu,
	}
	if err := ctrl.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Pendaftaran berhasil dikirim", fiber.Map{
		"pendaftaran_id":     m.PendaftaranID,
		"pendaftaran_status": m.PendaftaranStatus,
	})
}

// GET /api/a/pendaftaran — daftar per status, paginated.
func (ctrl *PendaftaranController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 200)

	q := ctrl.DB.Model(&model.PendaftaranSantri{})
	if v := c.Query("status"); v != "" {
		if !model.StatusPendaftaran(v).Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "Status harus MENUNGGU, DITERIMA, atau DITOLAK")
		}
		q = q.Where("pendaftaran_status = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []model.PendaftaranSantri
	if err := q.Order("pendaftaran_created_at DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", list,
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

func (ctrl *PendaftaranController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.PendaftaranSantri
	if err := ctrl.DB.First(&m, "pendaftaran_id = ?", id).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pendaftaran tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", m)
}

// POST /api/a/pendaftaran/:id/approve — terima pendaftar & buat santri.
// Satu transaksi: status DITERIMA + insert santri; approve ulang → 409.
func (ctrl *PendaftaranController) Approve(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var in dto.PendaftaranApproveDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if ok, resp := helper.ValidateStruct(c, in); !ok {
		return resp
	}

	var pendaftaran model.PendaftaranSantri
	var santri santrimodel.Santri

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&pendaftaran, "pendaftaran_id = ?", id).Error; err != nil {
			if helper.IsNotFound(err) {
				return fiber.NewError(fiber.StatusNotFound, "Pendaftaran tidak ditemukan")
			}
			return err
		}
		if pendaftaran.PendaftaranStatus != model.PendaftaranMenunggu {
			return fiber.NewError(fiber.StatusConflict,
				"Pendaftaran sudah diproses dengan status "+string(pendaftaran.PendaftaranStatus))
		}

		santri = santrimodel.Santri{
			SantriNama:         pendaftaran.PendaftaranNama,
			SantriNIS:          in.SantriNIS,
			SantriJenisKelamin: pendaftaran.PendaftaranJenisKelamin,
			SantriTempatLahir:  pendaftaran.PendaftaranTempatLahir,
			SantriTanggalLahir: pendaftaran.PendaftaranTanggalLahir,
			SantriAlamat:       pendaftaran.PendaftaranAlamat,
			SantriKelas:        in.SantriKelas,
			SantriTingkat:      santrimodel.Tingkat(pendaftaran.PendaftaranTingkat),
			SantriStatus:       santrimodel.SantriStatusAktif,
			SantriNamaAyah:     pendaftaran.PendaftaranNamaWali,
			SantriTeleponAyah:  pendaftaran.PendaftaranTeleponWali,
		}
		if err := tx.Create(&santri).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return fiber.NewError(fiber.StatusConflict, "NIS "+in.SantriNIS+" sudah terdaftar")
			}
			return err
		}

		pendaftaran.PendaftaranStatus = model.PendaftaranDiterima
		pendaftaran.PendaftaranSantriID = &santri.SantriID
		pendaftaran.PendaftaranCatatan = in.Catatan
		return tx.Save(&pendaftaran).Error
	})
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "Pendaftaran diterima, santri berhasil dibuat", fiber.Map{
		"pendaftaran": pendaftaran,
		"santri_id":   santri.SantriID,
	})
}

// POST /api/a/pendaftaran/:id/reject — tolak pendaftar dengan catatan.
func (ctrl *PendaftaranController) Reject(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var in dto.PendaftaranRejectDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if ok, resp := helper.ValidateStruct(c, in); !ok {
		return resp
	}

	var m model.PendaftaranSantri
	if err := ctrl.DB.First(&m, "pendaftaran_id = ?", id).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pendaftaran tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if m.PendaftaranStatus != model.PendaftaranMenunggu {
		return helper.JsonError(c, fiber.StatusConflict,
			"Pendaftaran sudah diproses dengan status "+string(m.PendaftaranStatus))
	}

	m.PendaftaranStatus = model.PendaftaranDitolak
	m.PendaftaranCatatan = &in.Catatan
	if err := ctrl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Pendaftaran ditolak", m)
}
