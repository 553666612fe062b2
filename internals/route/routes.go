package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bimbelku_backend/internals/constants"
	attendanceRoute "bimbelku_backend/internals/features/attendances/route"
	authRoute "bimbelku_backend/internals/features/auth/route"
	classRoute "bimbelku_backend/internals/features/classes/route"
	dashboardRoute "bimbelku_backend/internals/features/dashboard/route"
	feedbackRoute "bimbelku_backend/internals/features/feedbacks/route"
	materialRoute "bimbelku_backend/internals/features/materials/route"
	scheduleRoute "bimbelku_backend/internals/features/schedules/route"
	settingRoute "bimbelku_backend/internals/features/settings/route"
	studentRoute "bimbelku_backend/internals/features/students/route"
	"bimbelku_backend/internals/middlewares/auth"
)

// SetupRoutes mendaftarkan seluruh route aplikasi.
// /api        : publik (login, logout)
// /api/a/...  : khusus admin
// /api/u/...  : khusus siswa
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	// 🌐 Public
	authRoute.AuthRoutes(api, db)

	// 🔐 Admin
	admin := api.Group("/a",
		auth.AuthMiddleware(),
		auth.OnlyRoles(constants.RoleErrorAdmin("panel admin"), constants.RoleAdmin),
	)
	authRoute.AuthAdminRoutes(admin, db)
	dashboardRoute.DashboardAdminRoutes(admin, db)
	studentRoute.StudentAdminRoutes(admin, db)
	classRoute.ClassAdminRoutes(admin, db)
	scheduleRoute.ScheduleAdminRoutes(admin, db)
	attendanceRoute.AttendanceAdminRoutes(admin, db)
	materialRoute.MaterialAdminRoutes(admin, db)
	feedbackRoute.FeedbackAdminRoutes(admin, db)
	settingRoute.SettingAdminRoutes(admin, db)

	// 🎓 Siswa
	user := api.Group("/u",
		auth.AuthMiddleware(),
		auth.OnlyStudents("halaman siswa"),
	)
	dashboardRoute.DashboardUserRoutes(user, db)
	feedbackRoute.FeedbackUserRoutes(user, db)
}
