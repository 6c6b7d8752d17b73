package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/pelanggaran/controller"
	"pesantrenku_backend/internals/helpers/oss"
)

// PelanggaranAdminRoutes: catatan pelanggaran santri (group /api/a)
func PelanggaranAdminRoutes(admin fiber.Router, db *gorm.DB, ossSvc *oss.Service) {
	ctrl := controller.NewPelanggaranController(db, ossSvc)

	grp := admin.Group("/pelanggaran")
	{
		grp.Post("/", ctrl.Create)
		grp.Get("/", ctrl.List)
		grp.Get("/:id", ctrl.GetByID)
		grp.Put("/:id", ctrl.Update)
		grp.Delete("/:id", ctrl.Delete)
	}
}
