package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bimbelku_backend/internals/features/materials/dto"
	"bimbelku_backend/internals/features/materials/model"
	helper "bimbelku_backend/internals/helpers"
)

var validateMaterial = validator.New()

type MaterialController struct {
	DB *gorm.DB
}

func NewMaterialController(db *gorm.DB) *MaterialController {
	return &MaterialController{DB: db}
}

// =======================
// 📄 List Materials (paginated)
// =======================
func (ctrl *MaterialController) GetAllMaterials(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.MaterialModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung materi")
	}

	var materials []model.MaterialModel
	if err := ctrl.DB.
		Order("material_id ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&materials).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data materi")
	}

	resp := make([]dto.MaterialDTO, 0, len(materials))
	for _, m := range materials {
		resp = append(resp, dto.ToMaterialDTO(m))
	}

	return helper.JsonList(c, "", resp, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// =======================
// ➕ Create Material
// =======================
func (ctrl *MaterialController) CreateMaterial(c *fiber.Ctx) error {
	var body dto.CreateMaterialRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateMaterial.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	material := model.MaterialModel{
		MaterialName:       body.MaterialName,
		MaterialCompletion: body.MaterialCompletion,
		MaterialExamScore:  body.MaterialExamScore,
		MaterialStudentID:  body.MaterialStudentID,
	}
	if err := ctrl.DB.Create(&material).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menambah materi")
	}

	return helper.JsonCreated(c, "Materi ditambahkan!", dto.ToMaterialDTO(material))
}

// =======================
// ✏️ Update Material
// =======================
func (ctrl *MaterialController) UpdateMaterial(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateMaterialRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateMaterial.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var material model.MaterialModel
	if err := ctrl.DB.First(&material, "material_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Materi tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil materi")
	}

	material.MaterialName = body.MaterialName
	material.MaterialCompletion = body.MaterialCompletion
	material.MaterialExamScore = body.MaterialExamScore
	material.MaterialStudentID = body.MaterialStudentID

	if err := ctrl.DB.Save(&material).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update materi")
	}

	return helper.JsonUpdated(c, "Materi diupdate!", dto.ToMaterialDTO(material))
}

// =======================
// 🗑️ Delete Material
// =======================
func (ctrl *MaterialController) DeleteMaterial(c *fiber.Ctx) error {
	id := c.Params("id")

	var material model.MaterialModel
	if err := ctrl.DB.First(&material, "material_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Materi tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil materi")
	}

	if err := ctrl.DB.Delete(&material).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus materi")
	}

	return helper.JsonDeleted(c, "Materi dihapus!", fiber.Map{"material_id": material.MaterialID})
}

// =======================
// 📤 Export CSV
// =======================
func (ctrl *MaterialController) ExportMaterials(c *fiber.Ctx) error {
	var materials []model.MaterialModel
	if err := ctrl.DB.Order("material_id ASC").Find(&materials).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data materi")
	}

	rows := make([][]string, 0, len(materials))
	for _, m := range materials {
		rows = append(rows, dto.MaterialToCSVRecord(m))
	}
	return helper.SendCSV(c, "materi.csv", dto.MaterialCSVHeader, rows)
}

// =======================
// 📥 Import CSV (best effort)
// =======================
func (ctrl *MaterialController) ImportMaterials(c *fiber.Ctx) error {
	header, records, err := helper.ReadCSVUpload(c, "file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	index := helper.NewCSVIndex(header)
	result := helper.ImportResult{}

	for i, record := range records {
		rowNum := i + 1
		body, err := dto.MaterialFromCSVRow(helper.NewCSVRow(index, record))
		if err != nil {
			result.Skip(rowNum, err.Error())
			continue
		}
		material := model.MaterialModel{
			MaterialName:       body.MaterialName,
			MaterialCompletion: body.MaterialCompletion,
			MaterialExamScore:  body.MaterialExamScore,
			MaterialStudentID:  body.MaterialStudentID,
		}
		if err := ctrl.DB.Create(&material).Error; err != nil {
			result.Skip(rowNum, "gagal menyimpan")
			continue
		}
		result.Imported++
	}

	return helper.JsonOK(c, "Import selesai (baris invalid dilewati)", result)
}
