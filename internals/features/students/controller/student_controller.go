package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classModel "bimbelku_backend/internals/features/classes/model"
	"bimbelku_backend/internals/features/students/dto"
	"bimbelku_backend/internals/features/students/model"
	"bimbelku_backend/internals/features/students/service"
	authHelper "bimbelku_backend/internals/features/auth/helper"
	helper "bimbelku_backend/internals/helpers"
)

var validateStudent = validator.New()

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

// =======================
// 📄 List Students (paginated)
// =======================
func (ctrl *StudentController) GetAllStudents(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.StudentModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung siswa")
	}

	var students []model.StudentModel
	if err := ctrl.DB.
		Order("student_id ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}

	resp := make([]dto.StudentDTO, 0, len(students))
	for _, s := range students {
		resp = append(resp, dto.ToStudentDTO(s))
	}

	return helper.JsonList(c, "", resp, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// =======================
// ➕ Create Student (+ kredensial sekali tampil)
// =======================
func (ctrl *StudentController) CreateStudent(c *fiber.Ctx) error {
	var body dto.CreateStudentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateStudent.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	student, plain, err := ctrl.insertStudent(body)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "Username siswa sudah dipakai")
		}
		if errors.Is(err, errClassNotFound) {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Kelas tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menambah siswa")
	}

	resp := dto.CreateStudentResponse{
		StudentDTO:        dto.ToStudentDTO(student),
		GeneratedPassword: plain,
	}
	return helper.JsonCreated(c, "Siswa ditambahkan! Catat password sekarang, tidak bisa dilihat lagi.", resp)
}

var errClassNotFound = errors.New("class not found")

// insertStudent: validasi FK kelas, derive username, generate + hash password.
func (ctrl *StudentController) insertStudent(body dto.CreateStudentRequest) (model.StudentModel, string, error) {
	var count int64
	if err := ctrl.DB.Model(&classModel.ClassModel{}).
		Where("class_id = ?", body.StudentClassID).
		Count(&count).Error; err != nil {
		return model.StudentModel{}, "", err
	}
	if count == 0 {
		return model.StudentModel{}, "", errClassNotFound
	}

	plain, err := service.GeneratePassword()
	if err != nil {
		return model.StudentModel{}, "", err
	}
	hash, err := authHelper.HashPassword(plain)
	if err != nil {
		return model.StudentModel{}, "", err
	}

	student := model.StudentModel{
		StudentName:         body.StudentName,
		StudentClassID:      body.StudentClassID,
		StudentLevel:        body.StudentLevel,
		StudentUsername:     service.DeriveUsername(body.StudentName),
		StudentPasswordHash: hash,
	}
	if err := ctrl.DB.Create(&student).Error; err != nil {
		return model.StudentModel{}, "", err
	}
	return student, plain, nil
}

// =======================
// ✏️ Update Student (username tidak di-regenerate)
// =======================
func (ctrl *StudentController) UpdateStudent(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateStudentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateStudent.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var student model.StudentModel
	if err := ctrl.DB.First(&student, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil siswa")
	}

	student.StudentName = body.StudentName
	student.StudentClassID = body.StudentClassID
	student.StudentLevel = body.StudentLevel

	if err := ctrl.DB.Save(&student).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update siswa")
	}

	return helper.JsonUpdated(c, "Siswa diupdate!", dto.ToStudentDTO(student))
}

// =======================
// 🗑️ Delete Student
// =======================
func (ctrl *StudentController) DeleteStudent(c *fiber.Ctx) error {
	id := c.Params("id")

	var student model.StudentModel
	if err := ctrl.DB.First(&student, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil siswa")
	}

	if err := ctrl.DB.Delete(&student).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus siswa")
	}

	return helper.JsonDeleted(c, "Siswa dihapus!", fiber.Map{"student_id": student.StudentID})
}

// =======================
// 📤 Export CSV
// =======================
func (ctrl *StudentController) ExportStudents(c *fiber.Ctx) error {
	var students []model.StudentModel
	if err := ctrl.DB.Order("student_id ASC").Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}

	rows := make([][]string, 0, len(students))
	for _, s := range students {
		rows = append(rows, dto.StudentToCSVRecord(s))
	}
	return helper.SendCSV(c, "siswa.csv", dto.StudentCSVHeader, rows)
}

// =======================
// 📥 Import CSV (best effort: baris invalid dilewati)
// =======================
func (ctrl *StudentController) ImportStudents(c *fiber.Ctx) error {
	header, records, err := helper.ReadCSVUpload(c, "file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	index := helper.NewCSVIndex(header)
	result := helper.ImportResult{}
	credentials := make([]fiber.Map, 0)

	for i, record := range records {
		rowNum := i + 1
		body, err := dto.StudentFromCSVRow(helper.NewCSVRow(index, record))
		if err != nil {
			result.Skip(rowNum, err.Error())
			continue
		}
		if err := validateStudent.Struct(&body); err != nil {
			result.Skip(rowNum, "validasi gagal")
			continue
		}

		student, plain, err := ctrl.insertStudent(body)
		if err != nil {
			switch {
			case errors.Is(err, gorm.ErrDuplicatedKey):
				result.Skip(rowNum, "username sudah dipakai")
			case errors.Is(err, errClassNotFound):
				result.Skip(rowNum, "kelas tidak ditemukan")
			default:
				result.Skip(rowNum, "gagal menyimpan")
			}
			continue
		}

		result.Imported++
		credentials = append(credentials, fiber.Map{
			"student_id": student.StudentID,
			"username":   student.StudentUsername,
			"password":   plain, // sekali tampil, tidak disimpan plaintext
		})
	}

	return helper.JsonOK(c, "Import selesai (baris invalid dilewati)", fiber.Map{
		"result":      result,
		"credentials": credentials,
	})
}
