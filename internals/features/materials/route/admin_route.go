package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bimbelku_backend/internals/features/materials/controller"
)

// === ADMIN ROUTES ===
func MaterialAdminRoutes(admin fiber.Router, db *gorm.DB) {
	materialCtrl := controller.NewMaterialController(db)

	materials := admin.Group("/materials")
	materials.Get("/", materialCtrl.GetAllMaterials)
	materials.Post("/", materialCtrl.CreateMaterial)
	materials.Put("/:id", materialCtrl.UpdateMaterial)
	materials.Delete("/:id", materialCtrl.DeleteMaterial)
	materials.Get("/export", materialCtrl.ExportMaterials)
	materials.Post("/import", materialCtrl.ImportMaterials)
}
