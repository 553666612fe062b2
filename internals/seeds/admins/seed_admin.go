package admins

import (
	"errors"
	"log"

	"gorm.io/gorm"

	authHelper "bimbelku_backend/internals/features/auth/helper"
	authModel "bimbelku_backend/internals/features/auth/model"
)

const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin123"
)

// SeedDefaultAdmin membuat akun admin awal kalau belum ada.
// Password default wajib diganti lewat /api/a/change-password.
func SeedDefaultAdmin(db *gorm.DB) {
	var existing authModel.AdminModel
	err := db.First(&existing, "admin_username = ?", defaultAdminUsername).Error
	if err == nil {
		log.Printf("ℹ️ Admin '%s' sudah ada, dilewati.", defaultAdminUsername)
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("❌ Gagal cek admin default: %v", err)
		return
	}

	hash, err := authHelper.HashPassword(defaultAdminPassword)
	if err != nil {
		log.Printf("❌ Gagal hash password admin default: %v", err)
		return
	}

	admin := authModel.AdminModel{
		AdminUsername:     defaultAdminUsername,
		AdminPasswordHash: hash,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("❌ Gagal membuat admin default: %v", err)
		return
	}
	log.Printf("✅ Admin default '%s' dibuat. Segera ganti password!", defaultAdminUsername)
}
