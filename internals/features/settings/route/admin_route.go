package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bimbelku_backend/internals/features/settings/controller"
)

// === ADMIN ROUTES ===
func SettingAdminRoutes(admin fiber.Router, db *gorm.DB) {
	settingCtrl := controller.NewSettingController(db)

	settings := admin.Group("/settings")
	settings.Get("/", settingCtrl.GetAllSettings)
	settings.Get("/export", settingCtrl.ExportSettings)
	settings.Get("/:key", settingCtrl.GetSettingByKey)
	settings.Put("/", settingCtrl.UpsertSetting)
	settings.Delete("/:id", settingCtrl.DeleteSetting)
	settings.Post("/import", settingCtrl.ImportSettings)
}
