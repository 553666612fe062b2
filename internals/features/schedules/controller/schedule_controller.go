package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bimbelku_backend/internals/features/schedules/dto"
	"bimbelku_backend/internals/features/schedules/model"
	helper "bimbelku_backend/internals/helpers"
)

var validateSchedule = validator.New()

type ScheduleController struct {
	DB *gorm.DB
}

func NewScheduleController(db *gorm.DB) *ScheduleController {
	return &ScheduleController{DB: db}
}

// =======================
// 📄 List Schedules (paginated)
// =======================
func (ctrl *ScheduleController) GetAllSchedules(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.ScheduleModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung jadwal")
	}

	var schedules []model.ScheduleModel
	if err := ctrl.DB.
		Order("schedule_date ASC, schedule_id ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&schedules).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data jadwal")
	}

	resp := make([]dto.ScheduleDTO, 0, len(schedules))
	for _, j := range schedules {
		resp = append(resp, dto.ToScheduleDTO(j))
	}

	return helper.JsonList(c, "", resp, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// =======================
// ➕ Create Schedule
// =======================
func (ctrl *ScheduleController) CreateSchedule(c *fiber.Ctx) error {
	var body dto.CreateScheduleRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSchedule.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	date, err := dto.ParseDate(body.ScheduleDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	schedule := model.ScheduleModel{
		ScheduleDay:       body.ScheduleDay,
		ScheduleDate:      date,
		ScheduleClassID:   body.ScheduleClassID,
		ScheduleStudentID: body.ScheduleStudentID,
		ScheduleMaterial:  body.ScheduleMaterial,
	}
	if err := ctrl.DB.Create(&schedule).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menambah jadwal")
	}

	return helper.JsonCreated(c, "Jadwal ditambahkan!", dto.ToScheduleDTO(schedule))
}

// =======================
// ✏️ Update Schedule
// =======================
func (ctrl *ScheduleController) UpdateSchedule(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateScheduleRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSchedule.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	date, err := dto.ParseDate(body.ScheduleDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var schedule model.ScheduleModel
	if err := ctrl.DB.First(&schedule, "schedule_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Jadwal tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jadwal")
	}

	schedule.ScheduleDay = body.ScheduleDay
	schedule.ScheduleDate = date
	schedule.ScheduleClassID = body.ScheduleClassID
	schedule.ScheduleStudentID = body.ScheduleStudentID
	schedule.ScheduleMaterial = body.ScheduleMaterial

	if err := ctrl.DB.Save(&schedule).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update jadwal")
	}

	return helper.JsonUpdated(c, "Jadwal diupdate!", dto.ToScheduleDTO(schedule))
}

// =======================
// 🗑️ Delete Schedule
// =======================
func (ctrl *ScheduleController) DeleteSchedule(c *fiber.Ctx) error {
	id := c.Params("id")

	var schedule model.ScheduleModel
	if err := ctrl.DB.First(&schedule, "schedule_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Jadwal tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jadwal")
	}

	if err := ctrl.DB.Delete(&schedule).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus jadwal")
	}

	return helper.JsonDeleted(c, "Jadwal dihapus!", fiber.Map{"schedule_id": schedule.ScheduleID})
}

// =======================
// 📤 Export CSV
// =======================
func (ctrl *ScheduleController) ExportSchedules(c *fiber.Ctx) error {
	var schedules []model.ScheduleModel
	if err := ctrl.DB.Order("schedule_id ASC").Find(&schedules).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data jadwal")
	}

	rows := make([][]string, 0, len(schedules))
	for _, j := range schedules {
		rows = append(rows, dto.ScheduleToCSVRecord(j))
	}
	return helper.SendCSV(c, "jadwal.csv", dto.ScheduleCSVHeader, rows)
}

// =======================
// 📥 Import CSV (best effort: tanggal invalid dilewati)
// =======================
func (ctrl *ScheduleController) ImportSchedules(c *fiber.Ctx) error {
	header, records, err := helper.ReadCSVUpload(c, "file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	index := helper.NewCSVIndex(header)
	result := helper.ImportResult{}

	for i, record := range records {
		rowNum := i + 1
		body, err := dto.ScheduleFromCSVRow(helper.NewCSVRow(index, record))
		if err != nil {
			result.Skip(rowNum, err.Error())
			continue
		}
		date, _ := dto.ParseDate(body.ScheduleDate) // sudah tervalidasi di FromCSVRow
		schedule := model.ScheduleModel{
			ScheduleDay:       body.ScheduleDay,
			ScheduleDate:      date,
			ScheduleClassID:   body.ScheduleClassID,
			ScheduleStudentID: body.ScheduleStudentID,
			ScheduleMaterial:  body.ScheduleMaterial,
		}
		if err := ctrl.DB.Create(&schedule).Error; err != nil {
			result.Skip(rowNum, "gagal menyimpan")
			continue
		}
		result.Imported++
	}

	return helper.JsonOK(c, "Import selesai (baris invalid dilewati)", result)
}
