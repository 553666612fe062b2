package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bimbelku_backend/internals/features/feedbacks/controller"
)

// === ADMIN ROUTES ===
func FeedbackAdminRoutes(admin fiber.Router, db *gorm.DB) {
	feedbackCtrl := controller.NewFeedbackController(db)

	feedbacks := admin.Group("/feedbacks")
	feedbacks.Get("/", feedbackCtrl.GetAllFeedbacks)
	feedbacks.Delete("/:id", feedbackCtrl.DeleteFeedback)
	feedbacks.Get("/export", feedbackCtrl.ExportFeedbacks)
}
