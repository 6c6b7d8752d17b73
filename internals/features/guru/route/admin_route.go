package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/guru/controller"
)

func GuruAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewGuruController(db)

	grp := admin.Group("/guru")
	{
		grp.Post("/", ctrl.Create)
		grp.Get("/", ctrl.List)
		grp.Get("/search", ctrl.Search)
		grp.Get("/:id", ctrl.GetByID)
		grp.Put("/:id", ctrl.Update)
		grp.Delete("/:id", ctrl.Delete)
	}
}
