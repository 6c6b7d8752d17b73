package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/pendaftaran/controller"
	"pesantrenku_backend/internals/middlewares"
)

// PendaftaranPublicRoutes: formulir pendaftaran publik (group /api/public)
func PendaftaranPublicRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPendaftaranController(db)

	public.Post("/pendaftaran", middlewares.PendaftaranRateLimiter(), ctrl.Create)
}

// PendaftaranAdminRoutes: verifikasi pendaftaran (group /api/a)
func PendaftaranAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPendaftaranController(db)

	grp := admin.Group("/pendaftaran")
	{
		grp.Get("/", ctrl.List)
		grp.Get("/:id", ctrl.GetByID)
		grp.Post("/:id/approve", ctrl.Approve)
		grp.Post("/:id/reject", ctrl.Reject)
	}
}
