package dto

import (
	"strconv"
	"time"

	"bimbelku_backend/internals/features/feedbacks/model"
)

const dateLayout = "2006-01-02"

// ============================
// Response DTO
// ============================

type FeedbackDTO struct {
	FeedbackID      uint   `json:"feedback_id"`
	FeedbackName    string `json:"feedback_name"`
	FeedbackMessage string `json:"feedback_message"`
	FeedbackDate    string `json:"feedback_date"`
}

// ============================
// Request DTO
// ============================

type CreateFeedbackRequest struct {
	FeedbackName    string `json:"feedback_name" validate:"omitempty,max=100"`
	FeedbackMessage string `json:"feedback_message" validate:"required,min=2"`
}

// ============================
// Converter
// ============================

func ToFeedbackDTO(f model.FeedbackModel) FeedbackDTO {
	return FeedbackDTO{
		FeedbackID:      f.FeedbackID,
		FeedbackName:    f.FeedbackName,
		FeedbackMessage: f.FeedbackMessage,
		FeedbackDate:    time.Time(f.FeedbackDate).Format(dateLayout),
	}
}

// ============================
// CSV codec
// ============================

var FeedbackCSVHeader = []string{"feedback_id", "feedback_name", "feedback_message", "feedback_date"}

func FeedbackToCSVRecord(f model.FeedbackModel) []string {
	d := ToFeedbackDTO(f)
	return []string{
		strconv.FormatUint(uint64(d.FeedbackID), 10),
		d.FeedbackName,
		d.FeedbackMessage,
		d.FeedbackDate,
	}
}
