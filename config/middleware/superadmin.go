package middleware

import (
	"github.com/gofiber/fiber/v2"

	"chronosecure/models"
	"chronosecure/pkg/paseto"
)

// SuperAdminMiddleware restricts a route to the tenant management console.
// Must run after AuthMiddleware.
func SuperAdminMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals("user").(*paseto.Claims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated or session data corrupted"})
		}

		if claims.Role != models.RoleSuperAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied. Super admin privileges required"})
		}

		return c.Next()
	}
}
