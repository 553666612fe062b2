package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bimbelku_backend/internals/features/students/controller"
)

// === ADMIN ROUTES ===
func StudentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	studentCtrl := controller.NewStudentController(db)

	students := admin.Group("/students")
	students.Get("/", studentCtrl.GetAllStudents)
	students.Post("/", studentCtrl.CreateStudent)
	students.Put("/:id", studentCtrl.UpdateStudent)
	students.Delete("/:id", studentCtrl.DeleteStudent)
	students.Get("/export", studentCtrl.ExportStudents)
	students.Post("/import", studentCtrl.ImportStudents)
}
