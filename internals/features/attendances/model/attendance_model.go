package model

import "gorm.io/datatypes"

type AttendanceModel struct {
	AttendanceID         uint           `gorm:"column:attendance_id;primaryKey;autoIncrement" json:"attendance_id"`
	AttendanceScheduleID uint           `gorm:"column:attendance_schedule_id;not null" json:"attendance_schedule_id"`
	AttendanceStudentID  uint           `gorm:"column:attendance_student_id;not null" json:"attendance_student_id"`
	AttendancePresent    bool           `gorm:"column:attendance_present;not null;default:false" json:"attendance_present"`
	AttendanceDate       datatypes.Date `gorm:"column:attendance_date" json:"attendance_date"`
}

// TableName sets the name of the table
func (AttendanceModel) TableName() string {
	return "attendances"
}
