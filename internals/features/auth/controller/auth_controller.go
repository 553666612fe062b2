package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bimbelku_backend/internals/constants"
	"bimbelku_backend/internals/features/auth/dto"
	authHelper "bimbelku_backend/internals/features/auth/helper"
	"bimbelku_backend/internals/features/auth/model"
	"bimbelku_backend/internals/features/auth/service"
	studentModel "bimbelku_backend/internals/features/students/model"
	helper "bimbelku_backend/internals/helpers"
	authmw "bimbelku_backend/internals/middlewares/auth"
)

var validateAuth = validator.New()

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// =======================
// 🔑 Login (admin dulu, lalu siswa)
// =======================
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var admin model.AdminModel
	err := ctrl.DB.Where("admin_username = ?", body.Username).First(&admin).Error
	if err == nil {
		if authHelper.CheckPasswordHash(admin.AdminPasswordHash, body.Password) == nil {
			return ctrl.issueToken(c, admin.AdminID, admin.AdminUsername, constants.RoleAdmin)
		}
		return helper.JsonError(c, fiber.StatusUnauthorized, "Login gagal!")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa kredensial")
	}

	var student studentModel.StudentModel
	err = ctrl.DB.Where("student_username = ?", body.Username).First(&student).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Login gagal!")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa kredensial")
	}
	if authHelper.CheckPasswordHash(student.StudentPasswordHash, body.Password) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Login gagal!")
	}
	return ctrl.issueToken(c, student.StudentID, student.StudentUsername, constants.RoleStudent)
}

func (ctrl *AuthController) issueToken(c *fiber.Ctx, id uint, username, role string) error {
	token, err := service.CreateAccessToken(id, role, username)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}
	service.SetAccessCookie(c, token)
	return helper.JsonOK(c, "Login berhasil", dto.LoginResponse{
		AccessToken: token,
		UserID:      id,
		Username:    username,
		Role:        role,
	})
}

// =======================
// 🚪 Logout
// =======================
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	service.ClearAccessCookie(c)
	return helper.JsonOK(c, "Logout berhasil", nil)
}

// =======================
// 🔒 Change Password (admin)
// =======================
func (ctrl *AuthController) ChangePassword(c *fiber.Ctx) error {
	p, ok := authmw.PrincipalFromCtx(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var body dto.ChangePasswordRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var admin model.AdminModel
	if err := ctrl.DB.First(&admin, "admin_id = ?", p.ID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Admin tidak ditemukan")
	}

	if authHelper.CheckPasswordHash(admin.AdminPasswordHash, body.CurrentPassword) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Password lama salah")
	}

	newHash, err := authHelper.HashPassword(body.NewPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hash password baru")
	}

	if err := ctrl.DB.Model(&admin).Update("admin_password_hash", newHash).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan password")
	}

	return helper.JsonUpdated(c, "Password diubah!", nil)
}
