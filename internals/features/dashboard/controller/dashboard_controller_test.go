package controller

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	attendanceModel "bimbelku_backend/internals/features/attendances/model"
	classModel "bimbelku_backend/internals/features/classes/model"
	materialModel "bimbelku_backend/internals/features/materials/model"
	scheduleModel "bimbelku_backend/internals/features/schedules/model"
	studentModel "bimbelku_backend/internals/features/students/model"
)

func openDashboardTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&classModel.ClassModel{},
		&studentModel.StudentModel{},
		&scheduleModel.ScheduleModel{},
		&attendanceModel.AttendanceModel{},
		&materialModel.MaterialModel{},
	))
	return db
}

func createStudent(t *testing.T, db *gorm.DB, name, username string, classID uint) studentModel.StudentModel {
	t.Helper()
	s := studentModel.StudentModel{
		StudentName:         name,
		StudentClassID:      classID,
		StudentLevel:        "SMA",
		StudentUsername:     username,
		StudentPasswordHash: "hash",
	}
	require.NoError(t, db.Create(&s).Error)
	return s
}

func createSchedule(t *testing.T, db *gorm.DB, date time.Time, classID, studentID uint) scheduleModel.ScheduleModel {
	t.Helper()
	j := scheduleModel.ScheduleModel{
		ScheduleDay:       "Senin",
		ScheduleDate:      datatypes.Date(date),
		ScheduleClassID:   classID,
		ScheduleStudentID: studentID,
		ScheduleMaterial:  "Aljabar",
	}
	require.NoError(t, db.Create(&j).Error)
	return j
}

// Pendapatan bulanan mengikuti tarif kelas SISWA (jadwal → siswa → kelas),
// bukan kelas yang tertulis di jadwal.
func TestMonthlyRevenueUsesStudentClassFee(t *testing.T) {
	db := openDashboardTestDB(t)
	ctrl := NewDashboardController(db)
	now := time.Now()

	classA := classModel.ClassModel{ClassName: "Matematika SMA", ClassLevel: "SMA", ClassFee: 100000}
	classB := classModel.ClassModel{ClassName: "Fisika SMA", ClassLevel: "SMA", ClassFee: 999999}
	require.NoError(t, db.Create(&classA).Error)
	require.NoError(t, db.Create(&classB).Error)

	student := createStudent(t, db, "Ayu Lestari", "ayu_lestari", classA.ClassID)
	// Jadwal menunjuk kelas B, tapi siswa terdaftar di kelas A.
	createSchedule(t, db, now, classB.ClassID, student.StudentID)

	revenue, err := ctrl.monthlyRevenue(now)
	require.NoError(t, err)
	assert.Equal(t, 100000.0, revenue)
}

// Jadwal yang siswanya sudah dihapus tidak menyumbang pendapatan.
func TestMonthlyRevenueDeletedStudentCountsZero(t *testing.T) {
	db := openDashboardTestDB(t)
	ctrl := NewDashboardController(db)
	now := time.Now()

	class := classModel.ClassModel{ClassName: "Matematika SMA", ClassLevel: "SMA", ClassFee: 100000}
	require.NoError(t, db.Create(&class).Error)
	student := createStudent(t, db, "Ayu Lestari", "ayu_lestari", class.ClassID)
	createSchedule(t, db, now, class.ClassID, student.StudentID)

	require.NoError(t, db.Delete(&student).Error)

	revenue, err := ctrl.monthlyRevenue(now)
	require.NoError(t, err)
	assert.Equal(t, 0.0, revenue)
}

// Kehadiran armada = rata-rata persentase per siswa, bukan rasio total.
// Siswa 1: 1/1 hadir (100%), siswa 2: 0/9 (0%) → 50, bukan 10.
func TestFleetAttendanceAveragesPerStudent(t *testing.T) {
	db := openDashboardTestDB(t)
	ctrl := NewDashboardController(db)
	now := time.Now()

	class := classModel.ClassModel{ClassName: "Matematika SMA", ClassLevel: "SMA", ClassFee: 100000}
	require.NoError(t, db.Create(&class).Error)
	rajin := createStudent(t, db, "Ayu Lestari", "ayu_lestari", class.ClassID)
	bolos := createStudent(t, db, "Budi Santoso", "budi_santoso", class.ClassID)

	sched := createSchedule(t, db, now, class.ClassID, rajin.StudentID)
	require.NoError(t, db.Create(&attendanceModel.AttendanceModel{
		AttendanceScheduleID: sched.ScheduleID,
		AttendanceStudentID:  rajin.StudentID,
		AttendancePresent:    true,
		AttendanceDate:       datatypes.Date(now),
	}).Error)

	for i := 0; i < 9; i++ {
		createSchedule(t, db, now.AddDate(0, 0, i), class.ClassID, bolos.StudentID)
	}

	pct, err := ctrl.fleetAttendancePercentage()
	require.NoError(t, err)
	assert.Equal(t, 50.0, pct)
}

func TestFleetAttendanceNoStudents(t *testing.T) {
	db := openDashboardTestDB(t)
	ctrl := NewDashboardController(db)

	pct, err := ctrl.fleetAttendancePercentage()
	require.NoError(t, err)
	assert.Equal(t, 0.0, pct)
}

// "Jadwal minggu ini" = 7 hari ke depan mulai hari ini, [today, today+7).
func TestAdminDashboardCountsNextSevenDays(t *testing.T) {
	db := openDashboardTestDB(t)
	now := time.Now()

	class := classModel.ClassModel{ClassName: "Matematika SMA", ClassLevel: "SMA", ClassFee: 100000}
	require.NoError(t, db.Create(&class).Error)
	student := createStudent(t, db, "Ayu Lestari", "ayu_lestari", class.ClassID)

	createSchedule(t, db, now, class.ClassID, student.StudentID)                  // hari ini: ikut
	createSchedule(t, db, now.AddDate(0, 0, 6), class.ClassID, student.StudentID) // hari ke-6: ikut
	createSchedule(t, db, now.AddDate(0, 0, 7), class.ClassID, student.StudentID) // hari ke-7: tidak
	createSchedule(t, db, now.AddDate(0, 0, -1), class.ClassID, student.StudentID) // kemarin: tidak

	app := fiber.New()
	app.Get("/a/dashboard", NewDashboardController(db).AdminDashboard)

	resp, err := app.Test(httptest.NewRequest("GET", "/a/dashboard", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body struct {
		Data struct {
			SchedulesThisWeek int64 `json:"schedules_this_week"`
		} `json:"data"`
	}
	require.NoError(t, sonic.Unmarshal(raw, &body))
	assert.Equal(t, int64(2), body.Data.SchedulesThisWeek)
}

func TestUpcomingWeekRange(t *testing.T) {
	now := time.Date(2026, time.August, 31, 15, 0, 0, 0, time.UTC)
	start, end := upcomingWeekRange(now)
	assert.Equal(t, "2026-08-31", start)
	assert.Equal(t, "2026-09-07", end)
}
