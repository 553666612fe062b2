package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"bimbelku_backend/internals/features/feedbacks/dto"
	"bimbelku_backend/internals/features/feedbacks/model"
	helper "bimbelku_backend/internals/helpers"
	"bimbelku_backend/internals/middlewares/auth"
)

var validateFeedback = validator.New()

type FeedbackController struct {
	DB *gorm.DB
}

func NewFeedbackController(db *gorm.DB) *FeedbackController {
	return &FeedbackController{DB: db}
}

// =======================
// ✉️ Submit Feedback (siswa)
// =======================
// Nama pengirim bebas diisi; kosong berarti pakai username akun yang login.
func (ctrl *FeedbackController) CreateFeedback(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromCtx(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var body dto.CreateFeedbackRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateFeedback.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	name := strings.TrimSpace(body.FeedbackName)
	if name == "" {
		name = principal.Username
	}

	feedback := model.FeedbackModel{
		FeedbackName:    name,
		FeedbackMessage: body.FeedbackMessage,
		FeedbackDate:    datatypes.Date(time.Now()),
	}
	if err := ctrl.DB.Create(&feedback).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengirim saran")
	}

	return helper.JsonCreated(c, "Terima kasih atas sarannya!", dto.ToFeedbackDTO(feedback))
}

// =======================
// 📄 List Feedbacks (admin, paginated)
// =======================
func (ctrl *FeedbackController) GetAllFeedbacks(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.FeedbackModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung saran")
	}

	var feedbacks []model.FeedbackModel
	if err := ctrl.DB.
		Order("feedback_id DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&feedbacks).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data saran")
	}

	resp := make([]dto.FeedbackDTO, 0, len(feedbacks))
	for _, f := range feedbacks {
		resp = append(resp, dto.ToFeedbackDTO(f))
	}

	return helper.JsonList(c, "", resp, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// =======================
// 🗑️ Delete Feedback (admin)
// =======================
func (ctrl *FeedbackController) DeleteFeedback(c *fiber.Ctx) error {
	id := c.Params("id")

	var feedback model.FeedbackModel
	if err := ctrl.DB.First(&feedback, "feedback_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Saran tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil saran")
	}

	if err := ctrl.DB.Delete(&feedback).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus saran")
	}

	return helper.JsonDeleted(c, "Saran dihapus!", fiber.Map{"feedback_id": feedback.FeedbackID})
}

// =======================
// 📤 Export CSV (admin)
// =======================
func (ctrl *FeedbackController) ExportFeedbacks(c *fiber.Ctx) error {
	var feedbacks []model.FeedbackModel
	if err := ctrl.DB.Order("feedback_id ASC").Find(&feedbacks).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data saran")
	}

	rows := make([][]string, 0, len(feedbacks))
	for _, f := range feedbacks {
		rows = append(rows, dto.FeedbackToCSVRecord(f))
	}
	return helper.SendCSV(c, "saran.csv", dto.FeedbackCSVHeader, rows)
}
