package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/nilai/controller"
)

// NilaiAdminRoutes: nilai mapel + transkrip santri (group /api/a)
func NilaiAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewNilaiController(db)

	grp := admin.Group("/nilai")
	{
		grp.Post("/", ctrl.Create)
		grp.Get("/", ctrl.List)
		grp.Get("/transkrip/:santri_id", ctrl.Transkrip)
		grp.Put("/:id", ctrl.Update)
		grp.Delete("/:id", ctrl.Delete)
	}
}
