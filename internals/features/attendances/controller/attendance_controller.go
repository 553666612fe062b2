package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"bimbelku_backend/internals/features/attendances/dto"
	"bimbelku_backend/internals/features/attendances/model"
	statsService "bimbelku_backend/internals/features/dashboard/service"
	scheduleModel "bimbelku_backend/internals/features/schedules/model"
	helper "bimbelku_backend/internals/helpers"
)

var validateAttendance = validator.New()

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

// =======================
// 📄 List Attendances (paginated, ?search= substring nama siswa)
// =======================
func (ctrl *AttendanceController) GetAllAttendances(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)
	search := c.Query("search")

	base := ctrl.DB.Table("attendances").
		Joins("JOIN students ON students.student_id = attendances.attendance_student_id")
	if search != "" {
		base = base.Where("students.student_name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung kehadiran")
	}

	type attendanceRow struct {
		model.AttendanceModel
		StudentName string `gorm:"column:student_name"`
	}
	var rows []attendanceRow
	if err := base.
		Select("attendances.*, students.student_name").
		Order("attendances.attendance_id ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data kehadiran")
	}

	// Persentase per siswa dihitung sekali per siswa pada halaman ini.
	percentages := map[uint]float64{}
	resp := make([]dto.AttendanceListItem, 0, len(rows))
	for _, row := range rows {
		pct, ok := percentages[row.AttendanceStudentID]
		if !ok {
			var err error
			pct, err = ctrl.attendancePercentage(row.AttendanceStudentID)
			if err != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung persentase kehadiran")
			}
			percentages[row.AttendanceStudentID] = pct
		}
		resp = append(resp, dto.AttendanceListItem{
			AttendanceDTO:        dto.ToAttendanceDTO(row.AttendanceModel),
			StudentName:          row.StudentName,
			AttendancePercentage: pct,
		})
	}

	return helper.JsonList(c, "", resp, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctrl *AttendanceController) attendancePercentage(studentID uint) (float64, error) {
	var totalScheduled int64
	if err := ctrl.DB.Model(&scheduleModel.ScheduleModel{}).
		Where("schedule_student_id = ?", studentID).
		Count(&totalScheduled).Error; err != nil {
		return 0, err
	}
	var present int64
	if err := ctrl.DB.Model(&model.AttendanceModel{}).
		Where("attendance_student_id = ? AND attendance_present = ?", studentID, true).
		Count(&present).Error; err != nil {
		return 0, err
	}
	return statsService.AttendancePercentage(int(present), int(totalScheduled)), nil
}

// =======================
// ➕ Create Attendance (tanggal default hari ini)
// =======================
func (ctrl *AttendanceController) CreateAttendance(c *fiber.Ctx) error {
	var body dto.CreateAttendanceRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAttendance.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	attendance := model.AttendanceModel{
		AttendanceScheduleID: body.AttendanceScheduleID,
		AttendanceStudentID:  body.AttendanceStudentID,
		AttendancePresent:    body.AttendancePresent,
		AttendanceDate:       datatypes.Date(time.Now()),
	}
	if err := ctrl.DB.Create(&attendance).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menambah kehadiran")
	}

	return helper.JsonCreated(c, "Kehadiran ditambahkan!", dto.ToAttendanceDTO(attendance))
}

// =======================
// ✏️ Update Attendance (tandai hadir / ubah flag)
// =======================
func (ctrl *AttendanceController) UpdateAttendance(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateAttendanceRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	var attendance model.AttendanceModel
	if err := ctrl.DB.First(&attendance, "attendance_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kehadiran tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kehadiran")
	}

	attendance.AttendancePresent = body.AttendancePresent
	if err := ctrl.DB.Save(&attendance).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update kehadiran")
	}

	return helper.JsonUpdated(c, "Kehadiran diperbarui!", dto.ToAttendanceDTO(attendance))
}

// =======================
// 🗑️ Delete Attendance
// =======================
func (ctrl *AttendanceController) DeleteAttendance(c *fiber.Ctx) error {
	id := c.Params("id")

	var attendance model.AttendanceModel
	if err := ctrl.DB.First(&attendance, "attendance_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kehadiran tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kehadiran")
	}

	if err := ctrl.DB.Delete(&attendance).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus kehadiran")
	}

	return helper.JsonDeleted(c, "Kehadiran dihapus!", fiber.Map{"attendance_id": attendance.AttendanceID})
}

// =======================
// 📤 Export CSV
// =======================
func (ctrl *AttendanceController) ExportAttendances(c *fiber.Ctx) error {
	var attendances []model.AttendanceModel
	if err := ctrl.DB.Order("attendance_id ASC").Find(&attendances).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data kehadiran")
	}

	rows := make([][]string, 0, len(attendances))
	for _, a := range attendances {
		rows = append(rows, dto.AttendanceToCSVRecord(a))
	}
	return helper.SendCSV(c, "kehadiran.csv", dto.AttendanceCSVHeader, rows)
}

// =======================
// 📥 Import CSV (best effort)
// =======================
func (ctrl *AttendanceController) ImportAttendances(c *fiber.Ctx) error {
	header, records, err := helper.ReadCSVUpload(c, "file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	index := helper.NewCSVIndex(header)
	result := helper.ImportResult{}

	for i, record := range records {
		rowNum := i + 1
		attendance, err := dto.AttendanceFromCSVRow(helper.NewCSVRow(index, record))
		if err != nil {
			result.Skip(rowNum, err.Error())
			continue
		}
		if err := ctrl.DB.Create(&attendance).Error; err != nil {
			result.Skip(rowNum, "gagal menyimpan")
			continue
		}
		result.Imported++
	}

	return helper.JsonOK(c, "Import selesai (baris invalid dilewati)", result)
}
