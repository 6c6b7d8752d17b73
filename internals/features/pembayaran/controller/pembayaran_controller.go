// file: internals/features/pembayaran/controller/pembayaran_controller.go
package controller

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/pembayaran/dto"
	"pesantrenku_backend/internals/features/pembayaran/model"
	"pesantrenku_backend/internals/features/pembayaran/service"
	santrimodel "pesantrenku_backend/internals/features/santri/model"
	helper "pesantrenku_backend/internals/helpers"
	"pesantrenku_backend/internals/helpers/oss"
)

type PembayaranController struct {
	DB  *gorm.DB
	OSS *oss.Service
}

func NewPembayaranController(db *gorm.DB, svc *oss.Service) *PembayaranController {
	return &PembayaranController{DB: db, OSS: svc}
}

func (ctrl *PembayaranController) uploadBukti(c *fiber.Ctx) (*string, error) {
	fh, err := c.FormFile("bukti")
	if err != nil || fh == nil {
		return nil, nil
	}
	if ctrl.OSS == nil {
		return nil, fiber.NewError(fiber.StatusServiceUnavailable, "Penyimpanan bukti belum dikonfigurasi")
	}
	url, err := ctrl.OSS.UploadBuktiImage("pembayaran", fh)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return &url, nil
}

func (ctrl *PembayaranController) Create(c *fiber.Ctx) error {
	var in dto.PembayaranCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if ok, resp := helper.ValidateStruct(c, in); !ok {
		return resp
	}

	var n int64
	if err := ctrl.DB.Model(&santrimodel.Santri{}).
		Where("santri_id = ?", in.PembayaranSantriID).
		Count(&n).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if n == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Santri tidak ditemukan")
	}

	status := model.PembayaranBelumLunas
	if in.PembayaranStatus != nil {
		status = model.StatusPembayaran(*in.PembayaranStatus)
	}
	var tanggalBayar *time.Time
	if in.PembayaranTanggal != nil && *in.PembayaranTanggal != "" {
		t, err := helper.ParseDate(*in.PembayaranTanggal)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal_bayar harus YYYY-MM-DD")
		}
		tanggalBayar = &t
	}
	// Status LUNAS tanpa tanggal bayar: pakai hari ini.
	if status == model.PembayaranLunas && tanggalBayar == nil {
		now := time.Now().Truncate(24 * time.Hour)
		tanggalBayar = &now
	}

	buktiURL, errBukti := ctrl.uploadBukti(c)
	if errBukti != nil {
		if fe, okFE := errBukti.(*fiber.Error); okFE {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, errBukti.Error())
	}

	m := model.PembayaranSantri{
		PembayaranSantriID: in.PembayaranSantriID,
		PembayaranJenis:    model.JenisPembayaran(in.PembayaranJenis),
		PembayaranBulan:    in.PembayaranBulan,
		PembayaranTahun:    in.PembayaranTahun,
		PembayaranJumlah:   in.PembayaranJumlah,
		PembayaranStatus:   status,
		PembayaranTanggal:  tanggalBayar,
		PembayaranCatatan:  in.PembayaranCatatan,
		PembayaranBuktiURL: buktiURL,
	}
	if err := ctrl.DB.Create(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict,
				fmt.Sprintf("Pembayaran %s periode %02d/%d untuk santri tersebut sudah tercatat",
					in.PembayaranJenis, in.PembayaranBulan, in.PembayaranTahun))
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Pembayaran berhasil dicatat", m)
}

func (ctrl *PembayaranController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 200)

	q := ctrl.DB.Model(&model.PembayaranSantri{})
	if v := c.Query("santri_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "santri_id tidak valid")
		}
		q = q.Where("pembayaran_santri_id = ?", id)
	}
	if v := c.Query("jenis"); v != "" {
		if !model.JenisPembayaran(v).Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "Jenis pembayaran tidak dikenal")
		}
		q = q.Where("pembayaran_jenis = ?", v)
	}
	if v := c.Query("status"); v != "" {
		if !model.StatusPembayaran(v).Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "Status harus LUNAS atau BELUM_LUNAS")
		}
		q = q.Where("pembayaran_status = ?", v)
	}
	if v := c.Query("bulan"); v != "" {
		b, err := strconv.Atoi(v)
		if err != nil || b < 1 || b > 12 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Bulan harus 1..12")
		}
		q = q.Where("pembayaran_bulan = ?", b)
	}
	if v := c.Query("tahun"); v != "" {
		t, err := strconv.Atoi(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Tahun tidak valid")
		}
		q = q.Where("pembayaran_tahun = ?", t)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []model.PembayaranSantri
	if err := q.Order("pembayaran_tahun DESC, pembayaran_bulan DESC, pembayaran_created_at DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", list,
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

func (ctrl *PembayaranController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var in dto.PembayaranUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if ok, resp := helper.ValidateStruct(c, in); !ok {
		return resp
	}

	var m model.PembayaranSantri
	if err := ctrl.DB.First(&m, "pembayaran_id = ?", id).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pembayaran tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if in.PembayaranJumlah != nil {
		m.PembayaranJumlah = *in.PembayaranJumlah
	}
	if in.PembayaranStatus != nil {
		m.PembayaranStatus = model.StatusPembayaran(*in.PembayaranStatus)
		if m.PembayaranStatus == model.PembayaranBelumLunas {
			m.PembayaranTanggal = nil
		}
	}
	if in.PembayaranTanggal != nil && *in.PembayaranTanggal != "" {
		t, err := helper.ParseDate(*in.PembayaranTanggal)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal_bayar harus YYYY-MM-DD")
		}
		m.PembayaranTanggal = &t
	}
	if m.PembayaranStatus == model.PembayaranLunas && m.PembayaranTanggal == nil {
		now := time.Now().Truncate(24 * time.Hour)
		m.PembayaranTanggal = &now
	}
	if in.PembayaranCatatan != nil {
		m.PembayaranCatatan = in.PembayaranCatatan
	}

	if buktiURL, errBukti := ctrl.uploadBukti(c); errBukti != nil {
		if fe, okFE := errBukti.(*fiber.Error); okFE {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, errBukti.Error())
	} else if buktiURL != nil {
		if m.PembayaranBuktiURL != nil && ctrl.OSS != nil {
			_ = ctrl.OSS.DeleteByPublicURL(*m.PembayaranBuktiURL)
		}
		m.PembayaranBuktiURL = buktiURL
	}

	if err := ctrl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Pembayaran berhasil diperbarui", m)
}

func (ctrl *PembayaranController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.PembayaranSantri
	if err := ctrl.DB.First(&m, "pembayaran_id = ?", id).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pembayaran tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := ctrl.DB.Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if m.PembayaranBuktiURL != nil && ctrl.OSS != nil {
		_ = ctrl.OSS.DeleteByPublicURL(*m.PembayaranBuktiURL)
	}
	return helper.JsonDeleted(c, "Pembayaran berhasil dihapus", fiber.Map{"pembayaran_id": id})
}

// Stats: rekap per jenis (zero-fill), opsional difilter bulan/tahun.
func (ctrl *PembayaranController) Stats(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.PembayaranSantri{})
	if v := c.Query("bulan"); v != "" {
		b, err := strconv.Atoi(v)
		if err != nil || b < 1 || b > 12 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Bulan harus 1..12")
		}
		q = q.Where("pembayaran_bulan = ?", b)
	}
	if v := c.Query("tahun"); v != "" {
		t, err := strconv.Atoi(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Tahun tidak valid")
		}
		q = q.Where("pembayaran_tahun = ?", t)
	}

	var rows []service.JenisAgregat
	if err := q.
		Select(`pembayaran_jenis AS jenis,
			COALESCE(SUM(pembayaran_jumlah) FILTER (WHERE pembayaran_status = 'LUNAS'),0) AS total_lunas,
			COALESCE(SUM(pembayaran_jumlah),0) AS total_tagihan,
			COUNT(*) FILTER (WHERE pembayaran_status = 'LUNAS') AS jumlah_lunas,
			COUNT(*) FILTER (WHERE pembayaran_status = 'BELUM_LUNAS') AS jumlah_belum`).
		Group("pembayaran_jenis").
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "", fiber.Map{
		"per_jenis": service.ZeroFillJenisPembayaran(rows),
	})
}
