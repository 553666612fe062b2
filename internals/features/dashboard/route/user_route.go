package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bimbelku_backend/internals/features/dashboard/controller"
)

// === USER ROUTES (siswa) ===
func DashboardUserRoutes(user fiber.Router, db *gorm.DB) {
	dashboardCtrl := controller.NewDashboardController(db)

	user.Get("/dashboard", dashboardCtrl.StudentDashboard)
}
