package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bimbelku_backend/internals/features/feedbacks/controller"
)

// === USER ROUTES (siswa) ===
func FeedbackUserRoutes(user fiber.Router, db *gorm.DB) {
	feedbackCtrl := controller.NewFeedbackController(db)

	user.Post("/feedbacks", feedbackCtrl.CreateFeedback)
}
