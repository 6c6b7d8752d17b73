package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/kesehatan/controller"
)

// KesehatanAdminRoutes: catatan kesehatan santri (group /api/a)
func KesehatanAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewKesehatanController(db)

	grp := admin.Group("/kesehatan")
	{
		grp.Post("/", ctrl.Create)
		grp.Get("/", ctrl.List)
		grp.Get("/:id", ctrl.GetByID)
		grp.Put("/:id", ctrl.Update)
		grp.Delete("/:id", ctrl.Delete)
	}
}
