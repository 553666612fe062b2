package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bimbelku_backend/internals/features/schedules/controller"
)

// === ADMIN ROUTES ===
func ScheduleAdminRoutes(admin fiber.Router, db *gorm.DB) {
	scheduleCtrl := controller.NewScheduleController(db)

	schedules := admin.Group("/schedules")
	schedules.Get("/", scheduleCtrl.GetAllSchedules)
	schedules.Post("/", scheduleCtrl.CreateSchedule)
	schedules.Put("/:id", scheduleCtrl.UpdateSchedule)
	schedules.Delete("/:id", scheduleCtrl.DeleteSchedule)
	schedules.Get("/export", scheduleCtrl.ExportSchedules)
	schedules.Post("/import", scheduleCtrl.ImportSchedules)
}
