package middleware

import (
	"github.com/gofiber/fiber/v2"

	"chronosecure/models"
	"chronosecure/pkg/paseto"
)

// AdminMiddleware allows company admins (and the super admin) through.
// Must run after AuthMiddleware.
func AdminMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals("user").(*paseto.Claims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated or session data corrupted"})
		}

		if claims.Role != models.RoleCompanyAdmin && claims.Role != models.RoleSuperAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied. Admin privileges required"})
		}

		return c.Next()
	}
}
