package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bimbelku_backend/internals/features/attendances/controller"
)

// === ADMIN ROUTES ===
func AttendanceAdminRoutes(admin fiber.Router, db *gorm.DB) {
	attendanceCtrl := controller.NewAttendanceController(db)

	attendances := admin.Group("/attendances")
	attendances.Get("/", attendanceCtrl.GetAllAttendances)
	attendances.Post("/", attendanceCtrl.CreateAttendance)
	attendances.Put("/:id", attendanceCtrl.UpdateAttendance)
	attendances.Delete("/:id", attendanceCtrl.DeleteAttendance)
	attendances.Get("/export", attendanceCtrl.ExportAttendances)
	attendances.Post("/import", attendanceCtrl.ImportAttendances)
}
