package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bimbelku_backend/internals/features/classes/dto"
	"bimbelku_backend/internals/features/classes/model"
	helper "bimbelku_backend/internals/helpers"
)

var validateClass = validator.New()

type ClassController struct {
	DB *gorm.DB
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{DB: db}
}

// =======================
// 📄 List Classes (paginated)
// =======================
func (ctrl *ClassController) GetAllClasses(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.ClassModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung kelas")
	}

	var classes []model.ClassModel
	if err := ctrl.DB.
		Order("class_id ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&classes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data kelas")
	}

	resp := make([]dto.ClassDTO, 0, len(classes))
	for _, k := range classes {
		resp = append(resp, dto.ToClassDTO(k))
	}

	return helper.JsonList(c, "", resp, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// =======================
// ➕ Create Class
// =======================
func (ctrl *ClassController) CreateClass(c *fiber.Ctx) error {
	var body dto.CreateClassRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateClass.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	class := model.ClassModel{
		ClassName:            body.ClassName,
		ClassLevel:           body.ClassLevel,
		ClassFee:             body.ClassFee,
		ClassPromotionTarget: body.ClassPromotionTarget,
	}
	if err := ctrl.DB.Create(&class).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menambah kelas")
	}

	return helper.JsonCreated(c, "Kelas ditambahkan!", dto.ToClassDTO(class))
}

// =======================
// ✏️ Update Class
// =======================
func (ctrl *ClassController) UpdateClass(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateClassRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateClass.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var class model.ClassModel
	if err := ctrl.DB.First(&class, "class_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kelas")
	}

	class.ClassName = body.ClassName
	class.ClassLevel = body.ClassLevel
	class.ClassFee = body.ClassFee
	class.ClassPromotionTarget = body.ClassPromotionTarget

	if err := ctrl.DB.Save(&class).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update kelas")
	}

	return helper.JsonUpdated(c, "Kelas diupdate!", dto.ToClassDTO(class))
}

// =======================
// 🗑️ Delete Class
// =======================
func (ctrl *ClassController) DeleteClass(c *fiber.Ctx) error {
	id := c.Params("id")

	var class model.ClassModel
	if err := ctrl.DB.First(&class, "class_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kelas")
	}

	if err := ctrl.DB.Delete(&class).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus kelas")
	}

	return helper.JsonDeleted(c, "Kelas dihapus!", fiber.Map{"class_id": class.ClassID})
}

// =======================
// 📤 Export CSV
// =======================
func (ctrl *ClassController) ExportClasses(c *fiber.Ctx) error {
	var classes []model.ClassModel
	if err := ctrl.DB.Order("class_id ASC").Find(&classes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data kelas")
	}

	rows := make([][]string, 0, len(classes))
	for _, k := range classes {
		rows = append(rows, dto.ClassToCSVRecord(k))
	}
	return helper.SendCSV(c, "kelas.csv", dto.ClassCSVHeader, rows)
}

// =======================
// 📥 Import CSV (best effort)
// =======================
func (ctrl *ClassController) ImportClasses(c *fiber.Ctx) error {
	header, records, err := helper.ReadCSVUpload(c, "file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	index := helper.NewCSVIndex(header)
	result := helper.ImportResult{}

	for i, record := range records {
		rowNum := i + 1
		body, err := dto.ClassFromCSVRow(helper.NewCSVRow(index, record))
		if err != nil {
			result.Skip(rowNum, err.Error())
			continue
		}
		class := model.ClassModel{
			ClassName:            body.ClassName,
			ClassLevel:           body.ClassLevel,
			ClassFee:             body.ClassFee,
			ClassPromotionTarget: body.ClassPromotionTarget,
		}
		if err := ctrl.DB.Create(&class).Error; err != nil {
			result.Skip(rowNum, "gagal menyimpan")
			continue
		}
		result.Imported++
	}

	return helper.JsonOK(c, "Import selesai (baris invalid dilewati)", result)
}
