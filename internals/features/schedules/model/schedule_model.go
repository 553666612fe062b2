package model

import "gorm.io/datatypes"

type ScheduleModel struct {
	ScheduleID        uint           `gorm:"column:schedule_id;primaryKey;autoIncrement" json:"schedule_id"`
	ScheduleDay       string         `gorm:"column:schedule_day;type:varchar(20);not null" json:"schedule_day"`
	ScheduleDate      datatypes.Date `gorm:"column:schedule_date;not null" json:"schedule_date"`
	ScheduleClassID   uint           `gorm:"column:schedule_class_id;not null" json:"schedule_class_id"`
	ScheduleStudentID uint           `gorm:"column:schedule_student_id;not null" json:"schedule_student_id"`
	ScheduleMaterial  string         `gorm:"column:schedule_material;type:varchar(200);not null" json:"schedule_material"`
}

// TableName sets the name of the table
func (ScheduleModel) TableName() string {
	return "schedules"
}
