package seeds

import (
	"gorm.io/gorm"

	admins "bimbelku_backend/internals/seeds/admins"
	settings "bimbelku_backend/internals/seeds/settings"
)

func RunAllSeeds(db *gorm.DB) {

	//* Akun
	admins.SeedDefaultAdmin(db)

	//* Pengaturan
	settings.SeedSettingsFromJSON(db, "internals/seeds/settings/data_settings.json")
}
