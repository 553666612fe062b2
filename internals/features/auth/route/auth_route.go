package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bimbelku_backend/internals/features/auth/controller"
	"bimbelku_backend/internals/middlewares"
)

// Public: login (rate limited) + logout.
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	authCtrl := controller.NewAuthController(db)

	api.Post("/login", middlewares.LoginRateLimiter(), authCtrl.Login)
	api.Post("/logout", authCtrl.Logout)
}

// Admin: ganti password sendiri.
func AuthAdminRoutes(admin fiber.Router, db *gorm.DB) {
	authCtrl := controller.NewAuthController(db)

	admin.Post("/change-password", authCtrl.ChangePassword)
}
