package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceModel "bimbelku_backend/internals/features/attendances/model"
	classModel "bimbelku_backend/internals/features/classes/model"
	"bimbelku_backend/internals/features/dashboard/service"
	materialModel "bimbelku_backend/internals/features/materials/model"
	scheduleDto "bimbelku_backend/internals/features/schedules/dto"
	scheduleModel "bimbelku_backend/internals/features/schedules/model"
	studentModel "bimbelku_backend/internals/features/students/model"
	helper "bimbelku_backend/internals/helpers"
	"bimbelku_backend/internals/middlewares/auth"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// =======================
// 📊 Admin Dashboard
// =======================
func (ctrl *DashboardController) AdminDashboard(c *fiber.Ctx) error {
	now := time.Now()

	var totalStudents int64
	if err := ctrl.DB.Model(&studentModel.StudentModel{}).Count(&totalStudents).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung siswa")
	}

	weekStart, weekEnd := upcomingWeekRange(now)
	var weekSchedules int64
	if err := ctrl.DB.Model(&scheduleModel.ScheduleModel{}).
		Where("schedule_date >= ? AND schedule_date < ?", weekStart, weekEnd).
		Count(&weekSchedules).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung jadwal minggu ini")
	}

	revenue, err := ctrl.monthlyRevenue(now)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung pendapatan bulan ini")
	}

	attendancePct, err := ctrl.fleetAttendancePercentage()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung kehadiran")
	}

	avgCompletion, err := ctrl.averageCompletion(0)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung penyelesaian materi")
	}

	return helper.JsonOK(c, "", fiber.Map{
		"total_students":        totalStudents,
		"schedules_this_week":   weekSchedules,
		"monthly_revenue":       revenue,
		"attendance_percentage": attendancePct,
		"average_completion":    avgCompletion,
	})
}

// =======================
// 🎓 Student Dashboard (scoped ke akun sendiri)
// =======================
func (ctrl *DashboardController) StudentDashboard(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromCtx(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var student studentModel.StudentModel
	if err := ctrl.DB.First(&student, "student_id = ?", principal.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}

	var class classModel.ClassModel
	if err := ctrl.DB.First(&class, "class_id = ?", student.StudentClassID).Error; err != nil &&
		!errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data kelas")
	}

	today := time.Now().Format("2006-01-02")
	var schedules []scheduleModel.ScheduleModel
	if err := ctrl.DB.
		Where("schedule_student_id = ? AND schedule_date >= ?", student.StudentID, today).
		Order("schedule_date ASC").
		Limit(10).
		Find(&schedules).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jadwal")
	}
	upcoming := make([]scheduleDto.ScheduleDTO, 0, len(schedules))
	for _, s := range schedules {
		upcoming = append(upcoming, scheduleDto.ToScheduleDTO(s))
	}

	attendancePct, err := ctrl.attendancePercentage(student.StudentID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung kehadiran")
	}

	avgCompletion, err := ctrl.averageCompletion(student.StudentID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung penyelesaian materi")
	}

	return helper.JsonOK(c, "", fiber.Map{
		"student_name":          student.StudentName,
		"student_level":         student.StudentLevel,
		"class_name":            class.ClassName,
		"upcoming_schedules":    upcoming,
		"attendance_percentage": attendancePct,
		"average_completion":    avgCompletion,
	})
}

// monthlyRevenue memuat jadwal bulan berjalan beserta tarif kelas SISWA-nya
// (jadwal → siswa → kelas). Jadwal yang siswa atau kelasnya sudah dihapus
// dihitung tarif 0.
func (ctrl *DashboardController) monthlyRevenue(now time.Time) (float64, error) {
	type revenueRow struct {
		ScheduleDate time.Time `gorm:"column:schedule_date"`
		ClassFee     float64   `gorm:"column:class_fee"`
	}
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)

	var rows []revenueRow
	if err := ctrl.DB.Table("schedules").
		Select("schedules.schedule_date, COALESCE(classes.class_fee, 0) AS class_fee").
		Joins("LEFT JOIN students ON students.student_id = schedules.schedule_student_id").
		Joins("LEFT JOIN classes ON classes.class_id = students.student_class_id").
		Where("schedules.schedule_date >= ? AND schedules.schedule_date < ?",
			monthStart.Format("2006-01-02"), monthEnd.Format("2006-01-02")).
		Scan(&rows).Error; err != nil {
		return 0, err
	}

	items := make([]service.ScheduleRevenue, 0, len(rows))
	for _, r := range rows {
		items = append(items, service.ScheduleRevenue{Date: r.ScheduleDate, Fee: r.ClassFee})
	}
	return service.MonthlyRevenue(items, now.Month(), now.Year()), nil
}

// fleetAttendancePercentage merata-ratakan persentase kehadiran PER SISWA,
// bukan rasio total hadir / total jadwal. Siswa tanpa jadwal dihitung 0.
func (ctrl *DashboardController) fleetAttendancePercentage() (float64, error) {
	var studentIDs []uint
	if err := ctrl.DB.Model(&studentModel.StudentModel{}).
		Pluck("student_id", &studentIDs).Error; err != nil {
		return 0, err
	}
	if len(studentIDs) == 0 {
		return 0, nil
	}

	sum := 0.0
	for _, id := range studentIDs {
		pct, err := ctrl.attendancePercentage(id)
		if err != nil {
			return 0, err
		}
		sum += pct
	}
	return sum / float64(len(studentIDs)), nil
}

// attendancePercentage menghitung persen kehadiran satu siswa.
func (ctrl *DashboardController) attendancePercentage(studentID uint) (float64, error) {
	var totalScheduled int64
	if err := ctrl.DB.Model(&scheduleModel.ScheduleModel{}).
		Where("schedule_student_id = ?", studentID).
		Count(&totalScheduled).Error; err != nil {
		return 0, err
	}
	var present int64
	if err := ctrl.DB.Model(&attendanceModel.AttendanceModel{}).
		Where("attendance_student_id = ? AND attendance_present = ?", studentID, true).
		Count(&present).Error; err != nil {
		return 0, err
	}
	return service.AttendancePercentage(int(present), int(totalScheduled)), nil
}

// averageCompletion: studentID 0 berarti seluruh materi.
func (ctrl *DashboardController) averageCompletion(studentID uint) (float64, error) {
	q := ctrl.DB.Model(&materialModel.MaterialModel{})
	if studentID != 0 {
		q = q.Where("material_student_id = ?", studentID)
	}
	var values []float64
	if err := q.Pluck("material_completion", &values).Error; err != nil {
		return 0, err
	}
	return service.AverageCompletion(values), nil
}

// upcomingWeekRange: 7 hari ke depan mulai hari ini, [today, today+7).
func upcomingWeekRange(now time.Time) (string, string) {
	return now.Format("2006-01-02"), now.AddDate(0, 0, 7).Format("2006-01-02")
}
