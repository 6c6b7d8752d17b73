package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/pembayaran/controller"
	"pesantrenku_backend/internals/helpers/oss"
)

// PembayaranAdminRoutes: tagihan & pembayaran santri (group /api/a)
func PembayaranAdminRoutes(admin fiber.Router, db *gorm.DB, ossSvc *oss.Service) {
	ctrl := controller.NewPembayaranController(db, ossSvc)

	grp := admin.Group("/pembayaran")
	{
		grp.Post("/", ctrl.Create)
		grp.Get("/", ctrl.List)
		grp.Get("/stats", ctrl.Stats)
		grp.Put("/:id", ctrl.Update)
		grp.Delete("/:id", ctrl.Delete)
	}
}
