package route

import (
	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/dashboard/controller"
)

// DashboardAdminRoutes: ringkasan beranda admin (group /api/a)
func DashboardAdminRoutes(admin fiber.Router, db *gorm.DB, rdb *redis.Client) {
	ctrl := controller.NewDashboardController(db, rdb)

	admin.Get("/dashboard", ctrl.Ringkasan)
}
