package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/absensi/controller"
)

// AbsensiAdminRoutes: absensi santri + guru (group /api/a)
func AbsensiAdminRoutes(admin fiber.Router, db *gorm.DB) {
	santri := controller.NewAbsensiSantriController(db)
	guru := controller.NewAbsensiGuruController(db)
	export := controller.NewAbsensiExportController(db)

	grp := admin.Group("/absensi")
	{
		grp.Post("/", santri.Upsert)
		grp.Post("/bulk", santri.BulkUpsert)
		grp.Get("/", santri.List)
		grp.Get("/export", export.Export)
		grp.Get("/stats", santri.Stats)
		grp.Get("/stats/bulanan", santri.StatsBulanan)
		grp.Get("/stats/harian", santri.StatsHarian)
		grp.Get("/santri/:id", santri.GetBySantri)
	}

	grpGuru := admin.Group("/absensi-guru")
	{
		grpGuru.Post("/", guru.Upsert)
		grpGuru.Get("/", guru.List)
		grpGuru.Get("/stats", guru.Stats)
	}
}
