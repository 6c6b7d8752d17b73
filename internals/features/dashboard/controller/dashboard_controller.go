// file: internals/features/dashboard/controller/dashboard_controller.go
package controller

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/bytedance/sonic"

	absensimodel "pesantrenku_backend/internals/features/absensi/model"
	absensiservice "pesantrenku_backend/internals/features/absensi/service"
	gurumodel "pesantrenku_backend/internals/features/guru/model"
	koperasimodel "pesantrenku_backend/internals/features/koperasi/model"
	santrimodel "pesantrenku_backend/internals/features/santri/model"
	helper "pesantrenku_backend/internals/helpers"
)

const (
	cacheKey = "dashboard:ringkasan"
	cacheTTL = 60 * time.Second
)

type DashboardController struct {
	DB    *gorm.DB
	Redis *redis.Client // nil = cache nonaktif
}

func NewDashboardController(db *gorm.DB, rdb *redis.Client) *DashboardController {
	return &DashboardController{DB: db, Redis: rdb}
}

type ringkasanDashboard struct {
	TotalSantriAktif    int64                        `json:"total_santri_aktif"`
	TotalGuruAktif      int64                        `json:"total_guru_aktif"`
	TotalAnggota        int64                        `json:"total_anggota_koperasi"`
	AbsensiHariIni      []absensiservice.RekapStatus `json:"absensi_hari_ini"`
	PemasukanBulanIni   int64                        `json:"pemasukan_koperasi_bulan_ini"`
	PengeluaranBulanIni int64                        `json:"pengeluaran_koperasi_bulan_ini"`
	DibuatPada          time.Time                    `json:"dibuat_pada"`
}

// GET /api/a/dashboard — ringkasan beranda admin, cache Redis 60 detik.
func (ctrl *DashboardController) Ringkasan(c *fiber.Ctx) error {
	ctx := c.UserContext()

	if cached := ctrl.fromCache(ctx); cached != nil {
		return helper.JsonOK(c, "", cached)
	}

	out, err := ctrl.build(ctx)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	ctrl.toCache(ctx, out)
	return helper.JsonOK(c, "", out)
}

func (ctrl *DashboardController) fromCache(ctx context.Context) *ringkasanDashboard {
	if ctrl.Redis == nil {
		return nil
	}
	raw, err := ctrl.Redis.Get(ctx, cacheKey).Bytes()
	if err != nil {
		return nil // miss atau Redis bermasalah, hitung ulang saja
	}
	var out ringkasanDashboard
	if err := sonic.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return &out
}

func (ctrl *DashboardController) toCache(ctx context.Context, out *ringkasanDashboard) {
	if ctrl.Redis == nil {
		return
	}
	raw, err := sonic.Marshal(out)
	if err != nil {
		return
	}
	if err := ctrl.Redis.Set(ctx, cacheKey, raw, cacheTTL).Err(); err != nil {
		log.Println("[WARN] Gagal menyimpan cache dashboard:", err)
	}
}

func (ctrl *DashboardController) build(ctx context.Context) (*ringkasanDashboard, error) {
	db := ctrl.DB.WithContext(ctx)
	out := &ringkasanDashboard{DibuatPada: time.Now()}

	if err := db.Model(&santrimodel.Santri{}).
		Where("santri_status = ?", santrimodel.SantriStatusAktif).
		Count(&out.TotalSantriAktif).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&gurumodel.Guru{}).
		Where("guru_is_active = ?", true).
		Count(&out.TotalGuruAktif).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&koperasimodel.AnggotaKoperasi{}).
		Count(&out.TotalAnggota).Error; err != nil {
		return nil, err
	}

	// Absensi hari ini (semua kategori), zero-fill per status.
	today := time.Now().Format(helper.DateLayout)
	var absensiRows []absensiservice.StatusCount
	if err := db.Model(&absensimodel.AbsensiSantri{}).
		Select("absensi_santri_status AS status, COUNT(*) AS jumlah").
		Where("absensi_santri_tanggal = ?", today).
		Group("absensi_santri_status").
		Scan(&absensiRows).Error; err != nil {
		return nil, err
	}
	out.AbsensiHariIni = absensiservice.ZeroFillStatus(absensiRows)

	// Kas koperasi bulan berjalan.
	bulanIni := helper.MonthKey(time.Now())
	if err := db.Model(&koperasimodel.PemasukanKoperasi{}).
		Where("TO_CHAR(pemasukan_tanggal,'YYYY-MM') = ?", bulanIni).
		Select("COALESCE(SUM(pemasukan_jumlah),0)").
		Scan(&out.PemasukanBulanIni).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&koperasimodel.PengeluaranKoperasi{}).
		Where("TO_CHAR(pengeluaran_tanggal,'YYYY-MM') = ?", bulanIni).
		Select("COALESCE(SUM(pengeluaran_jumlah),0)").
		Scan(&out.PengeluaranBulanIni).Error; err != nil {
		return nil, err
	}

	return out, nil
}
