package dto

import (
	"fmt"
	"strconv"

	"bimbelku_backend/internals/features/materials/model"
	helper "bimbelku_backend/internals/helpers"
)

// ============================
// Response DTO
// ============================

type MaterialDTO struct {
	MaterialID         uint    `json:"material_id"`
	MaterialName       string  `json:"material_name"`
	MaterialCompletion float64 `json:"material_completion"`
	MaterialExamScore  float64 `json:"material_exam_score"`
	MaterialStudentID  uint    `json:"material_student_id"`
}

// ============================
// Request DTO
// ============================

type CreateMaterialRequest struct {
	MaterialName       string  `json:"material_name" validate:"required,min=2"`
	MaterialCompletion float64 `json:"material_completion" validate:"gte=0,lte=100"`
	MaterialExamScore  float64 `json:"material_exam_score" validate:"gte=0"`
	MaterialStudentID  uint    `json:"material_student_id" validate:"required,gt=0"`
}

type UpdateMaterialRequest = CreateMaterialRequest

// ============================
// Converter
// ============================

func ToMaterialDTO(m model.MaterialModel) MaterialDTO {
	return MaterialDTO{
		MaterialID:         m.MaterialID,
		MaterialName:       m.MaterialName,
		MaterialCompletion: m.MaterialCompletion,
		MaterialExamScore:  m.MaterialExamScore,
		MaterialStudentID:  m.MaterialStudentID,
	}
}

// ============================
// CSV codec
// ============================

var MaterialCSVHeader = []string{"material_id", "material_name", "material_completion", "material_exam_score", "material_student_id"}

func MaterialToCSVRecord(m model.MaterialModel) []string {
	return []string{
		strconv.FormatUint(uint64(m.MaterialID), 10),
		m.MaterialName,
		strconv.FormatFloat(m.MaterialCompletion, 'f', -1, 64),
		strconv.FormatFloat(m.MaterialExamScore, 'f', -1, 64),
		strconv.FormatUint(uint64(m.MaterialStudentID), 10),
	}
}

// MaterialFromCSVRow: completion & exam score opsional, default 0.
func MaterialFromCSVRow(row helper.CSVRow) (CreateMaterialRequest, error) {
	name := row.Get("material_name")
	if name == "" {
		return CreateMaterialRequest{}, fmt.Errorf("material_name wajib diisi")
	}
	studentID, err := strconv.ParseUint(row.Get("material_student_id"), 10, 64)
	if err != nil || studentID == 0 {
		return CreateMaterialRequest{}, fmt.Errorf("material_student_id invalid")
	}

	completion := 0.0
	if v := row.Get("material_completion"); v != "" {
		completion, err = strconv.ParseFloat(v, 64)
		if err != nil {
			return CreateMaterialRequest{}, fmt.Errorf("material_completion invalid")
		}
	}
	examScore := 0.0
	if v := row.Get("material_exam_score"); v != "" {
		examScore, err = strconv.ParseFloat(v, 64)
		if err != nil {
			return CreateMaterialRequest{}, fmt.Errorf("material_exam_score invalid")
		}
	}

	return CreateMaterialRequest{
		MaterialName:       name,
		MaterialCompletion: completion,
		MaterialExamScore:  examScore,
		MaterialStudentID:  uint(studentID),
	}, nil
}
