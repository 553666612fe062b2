package settings

import (
	"log"
	"os"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"

	settingModel "bimbelku_backend/internals/features/settings/model"
)

type SettingSeed struct {
	SettingKey   string `json:"setting_key"`
	SettingValue string `json:"setting_value"`
}

// SeedSettingsFromJSON mengisi setting default. Key yang sudah ada tidak
// ditimpa supaya nilai hasil edit admin tetap aman.
func SeedSettingsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("❌ Gagal membaca file JSON: %v", err)
		return
	}

	var seeds []SettingSeed
	if err := sonic.Unmarshal(file, &seeds); err != nil {
		log.Printf("❌ Gagal decode JSON: %v", err)
		return
	}

	var existingKeys []string
	if err := db.Model(&settingModel.SettingModel{}).
		Pluck("setting_key", &existingKeys).Error; err != nil {
		log.Printf("❌ Gagal ambil setting_key yang sudah ada: %v", err)
		return
	}
	existingMap := make(map[string]bool, len(existingKeys))
	for _, k := range existingKeys {
		existingMap[k] = true
	}

	var newSettings []settingModel.SettingModel
	for _, s := range seeds {
		if existingMap[s.SettingKey] {
			log.Printf("ℹ️ Setting '%s' sudah ada, dilewati.", s.SettingKey)
			continue
		}
		newSettings = append(newSettings, settingModel.SettingModel{
			SettingKey:   s.SettingKey,
			SettingValue: s.SettingValue,
		})
	}

	if len(newSettings) > 0 {
		if err := db.Create(&newSettings).Error; err != nil {
			log.Printf("❌ Gagal menyimpan setting default: %v", err)
			return
		}
	}
	log.Printf("✅ Seed settings selesai (%d baru).", len(newSettings))
}
