package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/users/controller"
	"pesantrenku_backend/internals/middlewares"
)

// AuthRoutes: register (owner only, dipasang middleware di index) & login.
func AuthRoutes(auth fiber.Router, db *gorm.DB, ownerGuard ...fiber.Handler) {
	ctrl := controller.NewAuthController(db)

	registerHandlers := append([]fiber.Handler{}, ownerGuard...)
	registerHandlers = append(registerHandlers, ctrl.Register)
	auth.Post("/register", registerHandlers...)

	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
}

// UserRoutes: profil user login (group /api/u)
func UserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	user.Get("/me", ctrl.Me)
}
