package dto

import (
	"fmt"
	"strconv"

	"bimbelku_backend/internals/features/classes/model"
	helper "bimbelku_backend/internals/helpers"
)

// ============================
// Response DTO
// ============================

type ClassDTO struct {
	ClassID              uint    `json:"class_id"`
	ClassName            string  `json:"class_name"`
	ClassLevel           string  `json:"class_level"`
	ClassFee             float64 `json:"class_fee"`
	ClassPromotionTarget string  `json:"class_promotion_target"`
}

// ============================
// Request DTO
// ============================

type CreateClassRequest struct {
	ClassName            string  `json:"class_name" validate:"required,min=2"`
	ClassLevel           string  `json:"class_level" validate:"required"`
	ClassFee             float64 `json:"class_fee" validate:"gte=0"`
	ClassPromotionTarget string  `json:"class_promotion_target"`
}

type UpdateClassRequest = CreateClassRequest

// ============================
// Converter
// ============================

func ToClassDTO(m model.ClassModel) ClassDTO {
	return ClassDTO{
		ClassID:              m.ClassID,
		ClassName:            m.ClassName,
		ClassLevel:           m.ClassLevel,
		ClassFee:             m.ClassFee,
		ClassPromotionTarget: m.ClassPromotionTarget,
	}
}

// ============================
// CSV codec
// ============================

var ClassCSVHeader = []string{"class_id", "class_name", "class_level", "class_fee", "class_promotion_target"}

func ClassToCSVRecord(m model.ClassModel) []string {
	return []string{
		strconv.FormatUint(uint64(m.ClassID), 10),
		m.ClassName,
		m.ClassLevel,
		strconv.FormatFloat(m.ClassFee, 'f', -1, 64),
		m.ClassPromotionTarget,
	}
}

func ClassFromCSVRow(row helper.CSVRow) (CreateClassRequest, error) {
	name := row.Get("class_name")
	if name == "" {
		return CreateClassRequest{}, fmt.Errorf("class_name wajib diisi")
	}
	level := row.Get("class_level")
	if level == "" {
		return CreateClassRequest{}, fmt.Errorf("class_level wajib diisi")
	}
	fee, err := strconv.ParseFloat(row.Get("class_fee"), 64)
	if err != nil || fee < 0 {
		return CreateClassRequest{}, fmt.Errorf("class_fee invalid")
	}
	return CreateClassRequest{
		ClassName:            name,
		ClassLevel:           level,
		ClassFee:             fee,
		ClassPromotionTarget: row.Get("class_promotion_target"), // opsional
	}, nil
}
