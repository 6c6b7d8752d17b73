package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/santri/controller"
)

// SantriAdminRoutes: CRUD + search santri (group /api/a)
func SantriAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSantriController(db)

	grp := admin.Group("/santri")
	{
		grp.Post("/", ctrl.Create)
		grp.Get("/", ctrl.List)
		grp.Get("/search", ctrl.Search)
		grp.Get("/:id", ctrl.GetByID)
		grp.Put("/:id", ctrl.Update)
		grp.Delete("/:id", ctrl.Delete)
	}
}
