package middleware

import (
	"github.com/gofiber/fiber/v2"

	"pesantrenku_backend/internals/constants"
)

// RequireRoles menolak request kalau role di token tidak termasuk daftar.
// Dipasang setelah AuthJWT.
func RequireRoles(feature string, roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(LocUserRole).(string)
		if _, ok := allowed[role]; !ok {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorAdmin(feature))
		}
		return c.Next()
	}
}

// IsOwner khusus endpoint manajemen akun.
func IsOwner(feature string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(LocUserRole).(string)
		if role != constants.RoleOwner {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorOwner(feature))
		}
		return c.Next()
	}
}
