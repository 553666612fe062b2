package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bimbelku_backend/internals/features/classes/controller"
)

// === ADMIN ROUTES ===
func ClassAdminRoutes(admin fiber.Router, db *gorm.DB) {
	classCtrl := controller.NewClassController(db)

	classes := admin.Group("/classes")
	classes.Get("/", classCtrl.GetAllClasses)
	classes.Post("/", classCtrl.CreateClass)
	classes.Put("/:id", classCtrl.UpdateClass)
	classes.Delete("/:id", classCtrl.DeleteClass)
	classes.Get("/export", classCtrl.ExportClasses)
	classes.Post("/import", classCtrl.ImportClasses)
}
