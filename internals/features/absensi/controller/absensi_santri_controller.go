// file: internals/features/absensi/controller/absensi_santri_controller.go
package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/absensi/dto"
	"pesantrenku_backend/internals/features/absensi/model"
	"pesantrenku_backend/internals/features/absensi/service"
	santrimodel "pesantrenku_backend/internals/features/santri/model"
	helper "pesantrenku_backend/internals/helpers"
)

type AbsensiSantriController struct {
	DB *gorm.DB
}

func NewAbsensiSantriController(db *gorm.DB) *AbsensiSantriController {
	return &AbsensiSantriController{DB: db}
}

// upsertOne: cari baris existing untuk (santri, tanggal, kategori); kalau ada
// update status/keterangan, kalau tidak insert. Unique constraint DB adalah
// jaminan sebenarnya — 23505 saat balapan ditangani dengan update ulang.
func upsertOne(tx *gorm.DB, santriID uuid.UUID, tanggal time.Time, kategori model.AbsensiKategori, status model.AbsensiStatus, keterangan *string) (model.AbsensiSantri, bool, error) {
	var m model.AbsensiSantri
	err := tx.Where(
		"absensi_santri_santri_id = ? AND absensi_santri_tanggal = ? AND absensi_santri_kategori = ?",
		santriID, tanggal, kategori,
	).First(&m).Error

	switch {
	case err == nil:
		m.AbsensiSantriStatus = status
		m.AbsensiSantriKeterangan = keterangan
		if err := tx.Save(&m).Error; err != nil {
			return m, false, err
		}
		return m, false, nil

	case helper.IsNotFound(err):
		m = model.AbsensiSantri{
			AbsensiSantriSantriID:   santriID,
			AbsensiSantriTanggal:    tanggal,
			AbsensiSantriKategori:   kategori,
			AbsensiSantriStatus:     status,
			AbsensiSantriKeterangan: keterangan,
		}
		if err := tx.Create(&m).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				// kalah balapan dengan submit paralel → timpa baris pemenang
				if err2 := tx.Where(
					"absensi_santri_santri_id = ? AND absensi_santri_tanggal = ? AND absensi_santri_kategori = ?",
					santriID, tanggal, kategori,
				).First(&m).Error; err2 != nil {
					return m, false, err2
				}
				m.AbsensiSantriStatus = status
				m.AbsensiSantriKeterangan = keterangan
				return m, false, tx.Save(&m).Error
			}
			return m, false, err
		}
		return m, true, nil

	default:
		return m, false, err
	}
}

func santriExists(db *gorm.DB, id uuid.UUID) (bool, error) {
	var n int64
	err := db.Model(&santrimodel.Santri{}).Where("santri_id = ?", id).Count(&n).Error
	return n > 0, err
}

// -----------------------------------------
// Upsert (POST /absensi)
// -----------------------------------------
func (ctrl *AbsensiSantriController) Upsert(c *fiber.Ctx) error {
	var in dto.AbsensiUpsertDTO
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

	if ok, err := santriExists(ctrl.DB, in.SantriID); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	} else if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "Santri tidak ditemukan")
	}

	m, created, err := upsertOne(ctrl.DB, in.SantriID, tanggal,
		model.AbsensiKategori(in.Kategori), model.AbsensiStatus(in.Status), in.Keterangan)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if created {
		return helper.JsonCreated(c, "Absensi tercatat", dto.ToAbsensiResponse(m))
	}
	return helper.JsonUpdated(c, "Absensi diperbarui", dto.ToAbsensiResponse(m))
}

// -----------------------------------------
// Bulk upsert (POST /absensi/bulk)
// Satu tanggal+kategori, banyak santri. SATU transaksi: gagal di tengah →
// rollback semua, caller terima daftar hasil per item saat sukses.
// -----------------------------------------
func (ctrl *AbsensiSantriController) BulkUpsert(c *fiber.Ctx) error {
	var in dto.AbsensiBulkDTO
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
	kategori := model.AbsensiKategori(in.Kategori)

	results := make([]dto.AbsensiBulkItemResult, 0, len(in.Items))
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		// validasi semua santri dulu supaya error 404 tidak menyisakan tulisan.
		// ID yang sama boleh muncul dua kali (entri belakangan menimpa), jadi
		// hitung yang unik saja.
		ids := make([]uuid.UUID, 0, len(in.Items))
		for _, it := range in.Items {
			ids = append(ids, it.SantriID)
		}
		ids = service.DedupeSantriID(ids)
		var n int64
		if err := tx.Model(&santrimodel.Santri{}).Where("santri_id IN ?", ids).Count(&n).Error; err != nil {
			return err
		}
		if n != int64(len(ids)) {
			return fiber.NewError(fiber.StatusNotFound, "Ada santri yang tidak ditemukan")
		}

		for _, it := range in.Items {
			m, created, err := upsertOne(tx, it.SantriID, tanggal, kategori,
				model.AbsensiStatus(it.Status), it.Keterangan)
			if err != nil {
				return err
			}
			results = append(results, dto.AbsensiBulkItemResult{
				SantriID:  it.SantriID,
				AbsensiID: m.AbsensiSantriID,
				Created:   created,
			})
		}
		return nil
	})
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "Absensi massal tersimpan", fiber.Map{
		"tanggal":  in.Tanggal,
		"kategori": in.Kategori,
		"items":    results,
	})
}

// absensiBaseQuery menempelkan filter umum list/stats: rentang tanggal
// (inklusif dua sisi), kategori, status, kelas (join ke santri).
func (ctrl *AbsensiSantriController) absensiBaseQuery(c *fiber.Ctx) (*gorm.DB, error) {
	r, err := helper.ParseDateRange(c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	q := ctrl.DB.Model(&model.AbsensiSantri{}).
		Joins("JOIN santri ON santri.santri_id = absensi_santri.absensi_santri_santri_id")

	if r.Start != nil {
		q = q.Where("absensi_santri_tanggal >= ?", *r.Start)
	}
	if end := r.EndExclusive(); end != nil {
		q = q.Where("absensi_santri_tanggal < ?", *end)
	}
	if v := c.Query("kategori"); v != "" {
		q = q.Where("absensi_santri_kategori = ?", v)
	}
	if v := c.Query("status"); v != "" {
		q = q.Where("absensi_santri_status = ?", v)
	}
	if v := c.Query("kelas"); v != "" {
		q = q.Where("santri.santri_kelas = ?", v)
	}
	if v := c.Query("tingkat"); v != "" {
		q = q.Where("santri.santri_tingkat = ?", v)
	}
	if v := c.Query("santri_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("absensi_santri_santri_id = ?", id)
		}
	}
	return q, nil
}

// -----------------------------------------
// List (GET /absensi) — baris join dengan display santri
// -----------------------------------------
func (ctrl *AbsensiSantriController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 200)

	q, err := ctrl.absensiBaseQuery(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []dto.AbsensiJoinedRow
	if err := q.
		Select(`absensi_santri_id,
			santri.santri_id AS santri_id,
			santri.santri_nama AS santri_nama,
			santri.santri_nis AS santri_nis,
			santri.santri_kelas AS santri_kelas,
			santri.santri_tingkat AS santri_tingkat,
			absensi_santri_tanggal AS tanggal,
			absensi_santri_kategori AS kategori,
			absensi_santri_status AS status,
			absensi_santri_keterangan AS keterangan`).
		Order("absensi_santri_tanggal DESC, santri.santri_nama ASC").
		Limit(p.Limit).
		Offset(p.Offset).
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", rows, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// -----------------------------------------
// Riwayat per santri (GET /absensi/santri/:id) — list + rekap status
// -----------------------------------------
func (ctrl *AbsensiSantriController) GetBySantri(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	if ok, err := santriExists(ctrl.DB, id); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	} else if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "Santri tidak ditemukan")
	}

	r, err := helper.ParseDateRange(c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	base := ctrl.DB.Model(&model.AbsensiSantri{}).Where("absensi_santri_santri_id = ?", id)
	if r.Start != nil {
		base = base.Where("absensi_santri_tanggal >= ?", *r.Start)
	}
	if end := r.EndExclusive(); end != nil {
		base = base.Where("absensi_santri_tanggal < ?", *end)
	}
	if v := c.Query("kategori"); v != "" {
		base = base.Where("absensi_santri_kategori = ?", v)
	}

	var list []model.AbsensiSantri
	if err := base.Session(&gorm.Session{}).
		Order("absensi_santri_tanggal DESC").
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var counts []service.StatusCount
	if err := base.Session(&gorm.Session{}).
		Select("absensi_santri_status AS status, COUNT(*) AS jumlah").
		Group("absensi_santri_status").
		Scan(&counts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "", fiber.Map{
		"absensi": dto.ToAbsensiResponses(list),
		"rekap":   service.ZeroFillStatus(counts),
	})
}

// -----------------------------------------
// Rekap status (GET /absensi/stats) — semua status selalu muncul (zero-fill)
// -----------------------------------------
func (ctrl *AbsensiSantriController) Stats(c *fiber.Ctx) error {
	q, err := ctrl.absensiBaseQuery(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var counts []service.StatusCount
	if err := q.
		Select("absensi_santri_status AS status, COUNT(*) AS jumlah").
		Group("absensi_santri_status").
		Scan(&counts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "", service.ZeroFillStatus(counts))
}

// -----------------------------------------
// Tren bulanan (GET /absensi/stats/bulanan) — bucket "YYYY-MM" ascending
// -----------------------------------------
func (ctrl *AbsensiSantriController) StatsBulanan(c *fiber.Ctx) error {
	q, err := ctrl.absensiBaseQuery(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var rows []service.TanggalStatus
	if err := q.
		Select("absensi_santri_tanggal AS tanggal, absensi_santri_status AS status").
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "", service.RekapBulanan(rows))
}

// -----------------------------------------
// Distribusi harian (GET /absensi/stats/harian)
// Rumus rata-rata lama dipertahankan (lihat service.RekapPerHari).
// -----------------------------------------
func (ctrl *AbsensiSantriController) StatsHarian(c *fiber.Ctx) error {
	q, err := ctrl.absensiBaseQuery(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var rows []service.TanggalStatus
	if err := q.
		Select("absensi_santri_tanggal AS tanggal, absensi_santri_status AS status").
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var totalAktif int64
	if err := ctrl.DB.Model(&santrimodel.Santri{}).
		Where("santri_status = ?", santrimodel.SantriStatusAktif).
		Count(&totalAktif).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "", service.RekapPerHari(rows, totalAktif))
}
