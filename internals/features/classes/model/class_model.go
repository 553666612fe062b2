package model

type ClassModel struct {
	ClassID              uint    `gorm:"column:class_id;primaryKey;autoIncrement" json:"class_id"`
	ClassName            string  `gorm:"column:class_name;type:varchar(50);not null" json:"class_name"`
	ClassLevel           string  `gorm:"column:class_level;type:varchar(20);not null" json:"class_level"`
	ClassFee             float64 `gorm:"column:class_fee;not null" json:"class_fee"`
	ClassPromotionTarget string  `gorm:"column:class_promotion_target;type:varchar(50)" json:"class_promotion_target"`
}

// TableName sets the name of the table
func (ClassModel) TableName() string {
	return "classes"
}
