package model

type MaterialModel struct {
	MaterialID         uint    `gorm:"column:material_id;primaryKey;autoIncrement" json:"material_id"`
	MaterialName       string  `gorm:"column:material_name;type:varchar(200);not null" json:"material_name"`
	MaterialCompletion float64 `gorm:"column:material_completion;not null;default:0" json:"material_completion"` // persentase
	MaterialExamScore  float64 `gorm:"column:material_exam_score;not null;default:0" json:"material_exam_score"`
	MaterialStudentID  uint    `gorm:"column:material_student_id;not null" json:"material_student_id"`
}

// TableName sets the name of the table
func (MaterialModel) TableName() string {
	return "materials"
}
