package dto

import (
	"fmt"
	"strconv"
	"time"

	"gorm.io/datatypes"

	"bimbelku_backend/internals/features/attendances/model"
	helper "bimbelku_backend/internals/helpers"
)

const dateLayout = "2006-01-02"

// ============================
// Response DTO
// ============================

type AttendanceDTO struct {
	AttendanceID         uint   `json:"attendance_id"`
	AttendanceScheduleID uint   `json:"attendance_schedule_id"`
	AttendanceStudentID  uint   `json:"attendance_student_id"`
	AttendancePresent    bool   `json:"attendance_present"`
	AttendanceDate       string `json:"attendance_date"`
}

// AttendanceListItem: baris list admin, diperkaya nama siswa + persentase kehadirannya.
type AttendanceListItem struct {
	AttendanceDTO
	StudentName          string  `json:"student_name"`
	AttendancePercentage float64 `json:"attendance_percentage"`
}

// ============================
// Request DTO
// ============================

type CreateAttendanceRequest struct {
	AttendanceScheduleID uint `json:"attendance_schedule_id" validate:"required,gt=0"`
	AttendanceStudentID  uint `json:"attendance_student_id" validate:"required,gt=0"`
	AttendancePresent    bool `json:"attendance_present"`
}

type UpdateAttendanceRequest struct {
	AttendancePresent bool `json:"attendance_present"`
}

// ============================
// Converter
// ============================

func FormatDate(d datatypes.Date) string {
	return time.Time(d).Format(dateLayout)
}

func ToAttendanceDTO(m model.AttendanceModel) AttendanceDTO {
	return AttendanceDTO{
		AttendanceID:         m.AttendanceID,
		AttendanceScheduleID: m.AttendanceScheduleID,
		AttendanceStudentID:  m.AttendanceStudentID,
		AttendancePresent:    m.AttendancePresent,
		AttendanceDate:       FormatDate(m.AttendanceDate),
	}
}

// ============================
// CSV codec
// ============================

var AttendanceCSVHeader = []string{"attendance_id", "attendance_schedule_id", "attendance_student_id", "attendance_present", "attendance_date"}

func AttendanceToCSVRecord(m model.AttendanceModel) []string {
	return []string{
		strconv.FormatUint(uint64(m.AttendanceID), 10),
		strconv.FormatUint(uint64(m.AttendanceScheduleID), 10),
		strconv.FormatUint(uint64(m.AttendanceStudentID), 10),
		strconv.FormatBool(m.AttendancePresent),
		FormatDate(m.AttendanceDate),
	}
}

// AttendanceFromCSVRow: kolom present & date opsional (default false / hari ini).
func AttendanceFromCSVRow(row helper.CSVRow) (model.AttendanceModel, error) {
	scheduleID, err := strconv.ParseUint(row.Get("attendance_schedule_id"), 10, 64)
	if err != nil || scheduleID == 0 {
		return model.AttendanceModel{}, fmt.Errorf("attendance_schedule_id invalid")
	}
	studentID, err := strconv.ParseUint(row.Get("attendance_student_id"), 10, 64)
	if err != nil || studentID == 0 {
		return model.AttendanceModel{}, fmt.Errorf("attendance_student_id invalid")
	}

	present := false
	if v := row.Get("attendance_present"); v != "" {
		present, err = strconv.ParseBool(v)
		if err != nil {
			return model.AttendanceModel{}, fmt.Errorf("attendance_present invalid")
		}
	}

	date := datatypes.Date(time.Now())
	if v := row.Get("attendance_date"); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return model.AttendanceModel{}, fmt.Errorf("format tanggal invalid, pakai YYYY-MM-DD")
		}
		date = datatypes.Date(t)
	}

	return model.AttendanceModel{
		AttendanceScheduleID: uint(scheduleID),
		AttendanceStudentID:  uint(studentID),
		AttendancePresent:    present,
		AttendanceDate:       date,
	}, nil
}
