package auth

import (
	"github.com/gofiber/fiber/v2"

	"bimbelku_backend/internals/constants"
)

// RoleMiddlewareWithCustomError validasi role + custom error message
func RoleMiddlewareWithCustomError(allowedRoles []string, customForbiddenMessage string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("userRole").(string)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized: missing role information",
			})
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}

		if customForbiddenMessage == "" {
			customForbiddenMessage = "Forbidden: you are not authorized to access this resource"
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": customForbiddenMessage,
		})
	}
}

// Shortcut biar lebih clean pemakaian
func OnlyRoles(customMessage string, roles ...string) fiber.Handler {
	return RoleMiddlewareWithCustomError(roles, customMessage)
}

// OnlyStudents menolak admin dengan petunjuk redirect ke dashboard admin,
// bukan denial polos: admin yang nyasar ke area siswa diarahkan pulang.
func OnlyStudents(feature string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("userRole").(string)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized: missing role information",
			})
		}
		if role == constants.RoleStudent {
			return c.Next()
		}
		if role == constants.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message":  constants.RoleErrorStudent(feature),
				"redirect": "/api/a/dashboard",
			})
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": constants.RoleErrorStudent(feature),
		})
	}
}
