package model

type StudentModel struct {
	StudentID           uint   `gorm:"column:student_id;primaryKey;autoIncrement" json:"student_id"`
	StudentName         string `gorm:"column:student_name;type:varchar(100);not null" json:"student_name"`
	StudentClassID      uint   `gorm:"column:student_class_id;not null" json:"student_class_id"`
	StudentLevel        string `gorm:"column:student_level;type:varchar(20);not null" json:"student_level"`
	StudentUsername     string `gorm:"column:student_username;type:varchar(100);uniqueIndex" json:"student_username"`
	StudentPasswordHash string `gorm:"column:student_password_hash;type:varchar(120)" json:"-"`
}

// TableName sets the name of the table
func (StudentModel) TableName() string {
	return "students"
}
