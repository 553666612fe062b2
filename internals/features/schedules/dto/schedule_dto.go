package dto

import (
	"fmt"
	"strconv"
	"time"

	"gorm.io/datatypes"

	"bimbelku_backend/internals/features/schedules/model"
	helper "bimbelku_backend/internals/helpers"
)

const dateLayout = "2006-01-02"

// ============================
// Response DTO
// ============================

type ScheduleDTO struct {
	ScheduleID        uint   `json:"schedule_id"`
	ScheduleDay       string `json:"schedule_day"`
	ScheduleDate      string `json:"schedule_date"`
	ScheduleClassID   uint   `json:"schedule_class_id"`
	ScheduleStudentID uint   `json:"schedule_student_id"`
	ScheduleMaterial  string `json:"schedule_material"`
}

// ============================
// Request DTO
// ============================

type CreateScheduleRequest struct {
	ScheduleDay       string `json:"schedule_day" validate:"required"`
	ScheduleDate      string `json:"schedule_date" validate:"required"` // YYYY-MM-DD
	ScheduleClassID   uint   `json:"schedule_class_id" validate:"required,gt=0"`
	ScheduleStudentID uint   `json:"schedule_student_id" validate:"required,gt=0"`
	ScheduleMaterial  string `json:"schedule_material" validate:"required"`
}

type UpdateScheduleRequest = CreateScheduleRequest

// ParseDate memvalidasi format tanggal request (YYYY-MM-DD).
func ParseDate(s string) (datatypes.Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return datatypes.Date{}, fmt.Errorf("format tanggal invalid, pakai YYYY-MM-DD")
	}
	return datatypes.Date(t), nil
}

func FormatDate(d datatypes.Date) string {
	return time.Time(d).Format(dateLayout)
}

// ============================
// Converter
// ============================

func ToScheduleDTO(m model.ScheduleModel) ScheduleDTO {
	return ScheduleDTO{
		ScheduleID:        m.ScheduleID,
		ScheduleDay:       m.ScheduleDay,
		ScheduleDate:      FormatDate(m.ScheduleDate),
		ScheduleClassID:   m.ScheduleClassID,
		ScheduleStudentID: m.ScheduleStudentID,
		ScheduleMaterial:  m.ScheduleMaterial,
	}
}

// ============================
// CSV codec
// ============================

var ScheduleCSVHeader = []string{"schedule_id", "schedule_day", "schedule_date", "schedule_class_id", "schedule_student_id", "schedule_material"}

func ScheduleToCSVRecord(m model.ScheduleModel) []string {
	return []string{
		strconv.FormatUint(uint64(m.ScheduleID), 10),
		m.ScheduleDay,
		FormatDate(m.ScheduleDate),
		strconv.FormatUint(uint64(m.ScheduleClassID), 10),
		strconv.FormatUint(uint64(m.ScheduleStudentID), 10),
		m.ScheduleMaterial,
	}
}

func ScheduleFromCSVRow(row helper.CSVRow) (CreateScheduleRequest, error) {
	day := row.Get("schedule_day")
	if day == "" {
		return CreateScheduleRequest{}, fmt.Errorf("schedule_day wajib diisi")
	}
	date := row.Get("schedule_date")
	if _, err := ParseDate(date); err != nil {
		return CreateScheduleRequest{}, err
	}
	classID, err := strconv.ParseUint(row.Get("schedule_class_id"), 10, 64)
	if err != nil || classID == 0 {
		return CreateScheduleRequest{}, fmt.Errorf("schedule_class_id invalid")
	}
	studentID, err := strconv.ParseUint(row.Get("schedule_student_id"), 10, 64)
	if err != nil || studentID == 0 {
		return CreateScheduleRequest{}, fmt.Errorf("schedule_student_id invalid")
	}
	material := row.Get("schedule_material")
	if material == "" {
		return CreateScheduleRequest{}, fmt.Errorf("schedule_material wajib diisi")
	}
	return CreateScheduleRequest{
		ScheduleDay:       day,
		ScheduleDate:      date,
		ScheduleClassID:   uint(classID),
		ScheduleStudentID: uint(studentID),
		ScheduleMaterial:  material,
	}, nil
}
