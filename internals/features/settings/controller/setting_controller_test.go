package controller

import (
	"bytes"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"bimbelku_backend/internals/features/settings/model"
)

func openSettingTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.SettingModel{}))
	return db
}

func settingTestApp(db *gorm.DB) *fiber.App {
	ctrl := NewSettingController(db)
	app := fiber.New()
	app.Get("/a/settings/:key", ctrl.GetSettingByKey)
	app.Put("/a/settings", ctrl.UpsertSetting)
	return app
}

// Upsert dua kali dengan key sama: tetap satu baris, nilai terakhir menang,
// dan cache di-invalidate sehingga pembacaan berikutnya ikut berubah.
func TestUpsertSettingKeyedAndCacheInvalidated(t *testing.T) {
	db := openSettingTestDB(t)
	app := settingTestApp(db)

	upsert := func(value string) int {
		payload, err := sonic.Marshal(fiber.Map{"setting_key": "nama_bimbel", "setting_value": value})
		require.NoError(t, err)
		req := httptest.NewRequest("PUT", "/a/settings", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		return resp.StatusCode
	}
	readCached := func() string {
		resp, err := app.Test(httptest.NewRequest("GET", "/a/settings/nama_bimbel", nil))
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		var body struct {
			Data struct {
				SettingValue string `json:"setting_value"`
			} `json:"data"`
		}
		require.NoError(t, sonic.Unmarshal(raw, &body))
		return body.Data.SettingValue
	}

	assert.Equal(t, fiber.StatusCreated, upsert("Bimbelku"))
	// Baca lewat cache supaya cache terisi sebelum tulisan berikutnya.
	assert.Equal(t, "Bimbelku", readCached())

	assert.Equal(t, fiber.StatusOK, upsert("Bimbelku Pusat"))
	assert.Equal(t, "Bimbelku Pusat", readCached())

	var count int64
	require.NoError(t, db.Model(&model.SettingModel{}).
		Where("setting_key = ?", "nama_bimbel").
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestGetSettingByKeyNotFound(t *testing.T) {
	db := openSettingTestDB(t)
	app := settingTestApp(db)

	resp, err := app.Test(httptest.NewRequest("GET", "/a/settings/tidak_ada", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
