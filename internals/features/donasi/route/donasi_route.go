package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/donasi/controller"
)

// DonasiPublicRoutes: donasi publik + webhook Midtrans (group /api/public)
func DonasiPublicRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDonasiController(db)

	grp := public.Group("/donasi")
	{
		grp.Post("/", ctrl.Create)
		grp.Post("/notification", ctrl.Notification)
	}
}

// DonasiAdminRoutes: daftar donasi + rekap (group /api/a)
func DonasiAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDonasiController(db)

	admin.Get("/donasi", ctrl.List)
}
