package dto

import (
	"fmt"
	"strconv"

	"bimbelku_backend/internals/features/students/model"
	helper "bimbelku_backend/internals/helpers"
)

// ============================
// Response DTO
// ============================

type StudentDTO struct {
	StudentID       uint   `json:"student_id"`
	StudentName     string `json:"student_name"`
	StudentClassID  uint   `json:"student_class_id"`
	StudentLevel    string `json:"student_level"`
	StudentUsername string `json:"student_username"`
}

// CreateStudentResponse membawa password plaintext sekali saja, tidak bisa diambil lagi.
type CreateStudentResponse struct {
	StudentDTO
	GeneratedPassword string `json:"generated_password"`
}

// ============================
// Request DTO
// ============================

type CreateStudentRequest struct {
	StudentName    string `json:"student_name" validate:"required,min=2"`
	StudentClassID uint   `json:"student_class_id" validate:"required,gt=0"`
	StudentLevel   string `json:"student_level" validate:"required"`
}

type UpdateStudentRequest struct {
	StudentName    string `json:"student_name" validate:"required,min=2"`
	StudentClassID uint   `json:"student_class_id" validate:"required,gt=0"`
	StudentLevel   string `json:"student_level" validate:"required"`
}

// ============================
// Converter
// ============================

func ToStudentDTO(m model.StudentModel) StudentDTO {
	return StudentDTO{
		StudentID:       m.StudentID,
		StudentName:     m.StudentName,
		StudentClassID:  m.StudentClassID,
		StudentLevel:    m.StudentLevel,
		StudentUsername: m.StudentUsername,
	}
}

// ============================
// CSV codec
// ============================

var StudentCSVHeader = []string{"student_id", "student_name", "student_class_id", "student_level", "student_username"}

func StudentToCSVRecord(m model.StudentModel) []string {
	return []string{
		strconv.FormatUint(uint64(m.StudentID), 10),
		m.StudentName,
		strconv.FormatUint(uint64(m.StudentClassID), 10),
		m.StudentLevel,
		m.StudentUsername,
	}
}

// StudentFromCSVRow membangun request create dari satu baris import.
func StudentFromCSVRow(row helper.CSVRow) (CreateStudentRequest, error) {
	name := row.Get("student_name")
	if name == "" {
		return CreateStudentRequest{}, fmt.Errorf("student_name wajib diisi")
	}
	classID, err := strconv.ParseUint(row.Get("student_class_id"), 10, 64)
	if err != nil || classID == 0 {
		return CreateStudentRequest{}, fmt.Errorf("student_class_id invalid")
	}
	level := row.Get("student_level")
	if level == "" {
		return CreateStudentRequest{}, fmt.Errorf("student_level wajib diisi")
	}
	return CreateStudentRequest{
		StudentName:    name,
		StudentClassID: uint(classID),
		StudentLevel:   level,
	}, nil
}
