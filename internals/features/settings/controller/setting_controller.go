package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bimbelku_backend/internals/features/settings/dto"
	"bimbelku_backend/internals/features/settings/model"
	"bimbelku_backend/internals/features/settings/service"
	helper "bimbelku_backend/internals/helpers"
)

var validateSetting = validator.New()

type SettingController struct {
	DB    *gorm.DB
	Cache *service.SettingCache
}

func NewSettingController(db *gorm.DB) *SettingController {
	return &SettingController{DB: db, Cache: service.NewSettingCache()}
}

// =======================
// 📄 List Settings
// =======================
func (ctrl *SettingController) GetAllSettings(c *fiber.Ctx) error {
	var settings []model.SettingModel
	if err := ctrl.DB.Order("setting_key ASC").Find(&settings).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengaturan")
	}

	resp := make([]dto.SettingDTO, 0, len(settings))
	for _, s := range settings {
		resp = append(resp, dto.ToSettingDTO(s))
	}

	return helper.JsonOK(c, "", resp)
}

// =======================
// 🔑 Get Setting by key (dari cache)
// =======================
func (ctrl *SettingController) GetSettingByKey(c *fiber.Ctx) error {
	key := c.Params("key")

	value, ok, err := ctrl.Cache.Get(ctrl.DB, key)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengaturan")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "Pengaturan tidak ditemukan")
	}

	return helper.JsonOK(c, "", fiber.Map{"setting_key": key, "setting_value": value})
}

// =======================
// ✏️ Upsert Setting (keyed by setting_key)
// =======================
func (ctrl *SettingController) UpsertSetting(c *fiber.Ctx) error {
	var body dto.UpsertSettingRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSetting.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var setting model.SettingModel
	err := ctrl.DB.First(&setting, "setting_key = ?", body.SettingKey).Error
	switch {
	case err == nil:
		setting.SettingValue = body.SettingValue
		if err := ctrl.DB.Save(&setting).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update pengaturan")
		}
		ctrl.Cache.Invalidate()
		return helper.JsonUpdated(c, "Pengaturan diupdate!", dto.ToSettingDTO(setting))
	case errors.Is(err, gorm.ErrRecordNotFound):
		setting = model.SettingModel{SettingKey: body.SettingKey, SettingValue: body.SettingValue}
		if err := ctrl.DB.Create(&setting).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menambah pengaturan")
		}
		ctrl.Cache.Invalidate()
		return helper.JsonCreated(c, "Pengaturan ditambahkan!", dto.ToSettingDTO(setting))
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengaturan")
	}
}

// =======================
// 🗑️ Delete Setting
// =======================
func (ctrl *SettingController) DeleteSetting(c *fiber.Ctx) error {
	id := c.Params("id")

	var setting model.SettingModel
	if err := ctrl.DB.First(&setting, "setting_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pengaturan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengaturan")
	}

	if err := ctrl.DB.Delete(&setting).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus pengaturan")
	}
	ctrl.Cache.Invalidate()

	return helper.JsonDeleted(c, "Pengaturan dihapus!", fiber.Map{"setting_id": setting.SettingID})
}

// =======================
// 📤 Export CSV
// =======================
func (ctrl *SettingController) ExportSettings(c *fiber.Ctx) error {
	var settings []model.SettingModel
	if err := ctrl.DB.Order("setting_id ASC").Find(&settings).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengaturan")
	}

	rows := make([][]string, 0, len(settings))
	for _, s := range settings {
		rows = append(rows, dto.SettingToCSVRecord(s))
	}
	return helper.SendCSV(c, "pengaturan.csv", dto.SettingCSVHeader, rows)
}

// =======================
// 📥 Import CSV (best effort, upsert per key)
// =======================
func (ctrl *SettingController) ImportSettings(c *fiber.Ctx) error {
	header, records, err := helper.ReadCSVUpload(c, "file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	index := helper.NewCSVIndex(header)
	result := helper.ImportResult{}

	for i, record := range records {
		rowNum := i + 1
		body, err := dto.SettingFromCSVRow(helper.NewCSVRow(index, record))
		if err != nil {
			result.Skip(rowNum, err.Error())
			continue
		}

		var setting model.SettingModel
		err = ctrl.DB.First(&setting, "setting_key = ?", body.SettingKey).Error
		switch {
		case err == nil:
			setting.SettingValue = body.SettingValue
			err = ctrl.DB.Save(&setting).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			setting = model.SettingModel{SettingKey: body.SettingKey, SettingValue: body.SettingValue}
			err = ctrl.DB.Create(&setting).Error
		}
		if err != nil {
			result.Skip(rowNum, "gagal menyimpan")
			continue
		}
		result.Imported++
	}
	ctrl.Cache.Invalidate()

	return helper.JsonOK(c, "Import selesai (baris invalid dilewati)", result)
}
