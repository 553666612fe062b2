package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bimbelku_backend/internals/features/dashboard/controller"
)

// === ADMIN ROUTES ===
func DashboardAdminRoutes(admin fiber.Router, db *gorm.DB) {
	dashboardCtrl := controller.NewDashboardController(db)

	admin.Get("/dashboard", dashboardCtrl.AdminDashboard)
}
