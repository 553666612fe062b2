package model

import "gorm.io/datatypes"

// Kotak saran: append-only, tidak ada route update.
type FeedbackModel struct {
	FeedbackID      uint           `gorm:"column:feedback_id;primaryKey;autoIncrement" json:"feedback_id"`
	FeedbackName    string         `gorm:"column:feedback_name;type:varchar(100);not null" json:"feedback_name"`
	FeedbackMessage string         `gorm:"column:feedback_message;type:text;not null" json:"feedback_message"`
	FeedbackDate    datatypes.Date `gorm:"column:feedback_date" json:"feedback_date"`
}

// TableName sets the name of the table
func (FeedbackModel) TableName() string {
	return "feedbacks"
}
