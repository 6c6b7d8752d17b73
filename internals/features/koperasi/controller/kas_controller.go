// file: internals/features/koperasi/controller/kas_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/koperasi/dto"
	"pesantrenku_backend/internals/features/koperasi/model"
	"pesantrenku_backend/internals/features/koperasi/service"
	helper "pesantrenku_backend/internals/helpers"
	"pesantrenku_backend/internals/helpers/oss"
)

// KasController menangani arus kas koperasi (pemasukan & pengeluaran).
// OSS boleh nil; tanpa kredensial object storage upload bukti dilewati.
type KasController struct {
	DB  *gorm.DB
	OSS *oss.Service
}

func NewKasController(db *gorm.DB, svc *oss.Service) *KasController {
	return &KasController{DB: db, OSS: svc}
}

// uploadBukti mengambil file "bukti" dari form (opsional) dan mengunggahnya.
func (ctrl *KasController) uploadBukti(c *fiber.Ctx, dir string) (*string, error) {
	fh, err := c.FormFile("bukti")
	if err != nil || fh == nil {
		return nil, nil // tidak ada file, bukan error
	}
	if ctrl.OSS == nil {
		return nil, fiber.NewError(fiber.StatusServiceUnavailable, "Penyimpanan bukti belum dikonfigurasi")
	}
	url, err := ctrl.OSS.UploadBuktiImage(dir, fh)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return &url, nil
}

func (ctrl *KasController) anggotaExists(id uuid.UUID) (bool, error) {
	var n int64
	err := ctrl.DB.Model(&model.AnggotaKoperasi{}).
		Where("anggota_id = ?", id).
		Count(&n).Error
	return n > 0, err
}

// =========================================================
// PEMASUKAN
// =========================================================

func (ctrl *KasController) CreatePemasukan(c *fiber.Ctx) error {
	var in dto.PemasukanCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if ok, resp := helper.ValidateStruct(c, in); !ok {
		return resp
	}

	tanggal, err := helper.ParseDate(in.PemasukanTanggal)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal harus YYYY-MM-DD")
	}

	ok, err := ctrl.anggotaExists(in.PemasukanAnggotaID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "Anggota tidak ditemukan")
	}

	buktiURL, errBukti := ctrl.uploadBukti(c, "koperasi/pemasukan")
	if errBukti != nil {
		if fe, okFE := errBukti.(*fiber.Error); okFE {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, errBukti.Error())
	}

	m := model.PemasukanKoperasi{
		PemasukanAnggotaID:  in.PemasukanAnggotaID,
		PemasukanJenis:      model.JenisPemasukan(in.PemasukanJenis),
		PemasukanJumlah:     in.PemasukanJumlah,
		PemasukanTanggal:    tanggal,
		PemasukanKeterangan: in.PemasukanKeterangan,
		PemasukanBuktiURL:   buktiURL,
	}
	if err := ctrl.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Pemasukan koperasi berhasil dicatat", m)
}

func (ctrl *KasController) ListPemasukan(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 200)

	q := ctrl.DB.Model(&model.PemasukanKoperasi{})
	if v := c.Query("jenis"); v != "" {
		if !model.JenisPemasukan(v).Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "Jenis pemasukan tidak dikenal")
		}
		q = q.Where("pemasukan_jenis = ?", v)
	}
	if v := c.Query("anggota_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "anggota_id tidak valid")
		}
		q = q.Where("pemasukan_anggota_id = ?", id)
	}
	rng, err := helper.ParseDateRange(c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if rng.Start != nil {
		q = q.Where("pemasukan_tanggal >= ?", *rng.Start)
	}
	if e := rng.EndExclusive(); e != nil {
		q = q.Where("pemasukan_tanggal < ?", *e)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []model.PemasukanKoperasi
	if err := q.Order("pemasukan_tanggal DESC, pemasukan_created_at DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", list,
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

func (ctrl *KasController) UpdatePemasukan(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var in dto.PemasukanUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if ok, resp := helper.ValidateStruct(c, in); !ok {
		return resp
	}

	var m model.PemasukanKoperasi
	if err := ctrl.DB.First(&m, "pemasukan_id = ?", id).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pemasukan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if in.PemasukanJenis != nil {
		m.PemasukanJenis = model.JenisPemasukan(*in.PemasukanJenis)
	}
	if in.PemasukanJumlah != nil {
		m.PemasukanJumlah = *in.PemasukanJumlah
	}
	if in.PemasukanTanggal != nil {
		t, err := helper.ParseDate(*in.PemasukanTanggal)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal harus YYYY-MM-DD")
		}
		m.PemasukanTanggal = t
	}
	if in.PemasukanKeterangan != nil {
		m.PemasukanKeterangan = in.PemasukanKeterangan
	}

	if err := ctrl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Pemasukan berhasil diperbarui", m)
}

func (ctrl *KasController) DeletePemasukan(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.PemasukanKoperasi
	if err := ctrl.DB.First(&m, "pemasukan_id = ?", id).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pemasukan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := ctrl.DB.Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if m.PemasukanBuktiURL != nil && ctrl.OSS != nil {
		_ = ctrl.OSS.DeleteByPublicURL(*m.PemasukanBuktiURL) // best effort
	}
	return helper.JsonDeleted(c, "Pemasukan berhasil dihapus", fiber.Map{"pemasukan_id": id})
}

// =========================================================
// PENGELUARAN
// =========================================================

func (ctrl *KasController) CreatePengeluaran(c *fiber.Ctx) error {
	var in dto.PengeluaranCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if ok, resp := helper.ValidateStruct(c, in); !ok {
		return resp
	}

	tanggal, err := helper.ParseDate(in.PengeluaranTanggal)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal harus YYYY-MM-DD")
	}

	ok, err := ctrl.anggotaExists(in.PengeluaranAnggotaID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "Anggota tidak ditemukan")
	}

	buktiURL, errBukti := ctrl.uploadBukti(c, "koperasi/pengeluaran")
	if errBukti != nil {
		if fe, okFE := errBukti.(*fiber.Error); okFE {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, errBukti.Error())
	}

	m := model.PengeluaranKoperasi{
		PengeluaranAnggotaID:  in.PengeluaranAnggotaID,
		PengeluaranJenis:      model.JenisPengeluaran(in.PengeluaranJenis),
		PengeluaranJumlah:     in.PengeluaranJumlah,
		PengeluaranTanggal:    tanggal,
		PengeluaranKeterangan: in.PengeluaranKeterangan,
		PengeluaranBuktiURL:   buktiURL,
	}
	if err := ctrl.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Pengeluaran koperasi berhasil dicatat", m)
}

func (ctrl *KasController) ListPengeluaran(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 200)

	q := ctrl.DB.Model(&model.PengeluaranKoperasi{})
	if v := c.Query("jenis"); v != "" {
		if !model.JenisPengeluaran(v).Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "Jenis pengeluaran tidak dikenal")
		}
		q = q.Where("pengeluaran_jenis = ?", v)
	}
	if v := c.Query("anggota_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "anggota_id tidak valid")
		}
		q = q.Where("pengeluaran_anggota_id = ?", id)
	}
	rng, err := helper.ParseDateRange(c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if rng.Start != nil {
		q = q.Where("pengeluaran_tanggal >= ?", *rng.Start)
	}
	if e := rng.EndExclusive(); e != nil {
		q = q.Where("pengeluaran_tanggal < ?", *e)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []model.PengeluaranKoperasi
	if err := q.Order("pengeluaran_tanggal DESC, pengeluaran_created_at DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", list,
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

func (ctrl *KasController) UpdatePengeluaran(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var in dto.PengeluaranUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if ok, resp := helper.ValidateStruct(c, in); !ok {
		return resp
	}

	var m model.PengeluaranKoperasi
	if err := ctrl.DB.First(&m, "pengeluaran_id = ?", id).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pengeluaran tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if in.PengeluaranJenis != nil {
		m.PengeluaranJenis = model.JenisPengeluaran(*in.PengeluaranJenis)
	}
	if in.PengeluaranJumlah != nil {
		m.PengeluaranJumlah = *in.PengeluaranJumlah
	}
	if in.PengeluaranTanggal != nil {
		t, err := helper.ParseDate(*in.PengeluaranTanggal)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal harus YYYY-MM-DD")
		}
		m.PengeluaranTanggal = t
	}
	if in.PengeluaranKeterangan != nil {
		m.PengeluaranKeterangan = in.PengeluaranKeterangan
	}

	if err := ctrl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Pengeluaran berhasil diperbarui", m)
}

func (ctrl *KasController) DeletePengeluaran(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.PengeluaranKoperasi
	if err := ctrl.DB.First(&m, "pengeluaran_id = ?", id).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pengeluaran tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := ctrl.DB.Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if m.PengeluaranBuktiURL != nil && ctrl.OSS != nil {
		_ = ctrl.OSS.DeleteByPublicURL(*m.PengeluaranBuktiURL)
	}
	return helper.JsonDeleted(c, "Pengeluaran berhasil dihapus", fiber.Map{"pengeluaran_id": id})
}

// =========================================================
// STATS (GET /koperasi/stats)
// =========================================================

func (ctrl *KasController) Stats(c *fiber.Ctx) error {
	rng, err := helper.ParseDateRange(c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	masukQ := ctrl.DB.Model(&model.PemasukanKoperasi{})
	keluarQ := ctrl.DB.Model(&model.PengeluaranKoperasi{})
	if rng.Start != nil {
		masukQ = masukQ.Where("pemasukan_tanggal >= ?", *rng.Start)
		keluarQ = keluarQ.Where("pengeluaran_tanggal >= ?", *rng.Start)
	}
	if e := rng.EndExclusive(); e != nil {
		masukQ = masukQ.Where("pemasukan_tanggal < ?", *e)
		keluarQ = keluarQ.Where("pengeluaran_tanggal < ?", *e)
	}

	var perJenis []service.JenisJumlah
	if err := masukQ.Session(&gorm.Session{}).
		Select("pemasukan_jenis AS jenis, COALESCE(SUM(pemasukan_jumlah),0) AS jumlah").
		Group("pemasukan_jenis").
		Scan(&perJenis).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var totalKeluar int64
	if err := keluarQ.Session(&gorm.Session{}).
		Select("COALESCE(SUM(pengeluaran_jumlah),0)").
		Scan(&totalKeluar).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var trenMasuk, trenKeluar []service.BulanJumlah
	if err := masukQ.Session(&gorm.Session{}).
		Select("TO_CHAR(pemasukan_tanggal,'YYYY-MM') AS bulan, COALESCE(SUM(pemasukan_jumlah),0) AS jumlah").
		Group("TO_CHAR(pemasukan_tanggal,'YYYY-MM')").
		Scan(&trenMasuk).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := keluarQ.Session(&gorm.Session{}).
		Select("TO_CHAR(pengeluaran_tanggal,'YYYY-MM') AS bulan, COALESCE(SUM(pengeluaran_jumlah),0) AS jumlah").
		Group("TO_CHAR(pengeluaran_tanggal,'YYYY-MM')").
		Scan(&trenKeluar).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	ringkasan := service.BuildRingkasan(perJenis, totalKeluar)

	return helper.JsonOK(c, "", fiber.Map{
		"pemasukan_per_jenis": service.ZeroFillJenisPemasukan(perJenis),
		"total_pemasukan":     ringkasan.TotalPemasukan,
		"total_pengeluaran":   ringkasan.TotalPengeluaran,
		"saldo":               ringkasan.Saldo,
		"tren_bulanan":        service.GabungTrenKas(trenMasuk, trenKeluar),
	})
}
