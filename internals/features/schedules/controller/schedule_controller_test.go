package controller

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"bimbelku_backend/internals/features/schedules/model"
)

func openScheduleTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.ScheduleModel{}))
	return db
}

// Impor best effort: satu baris rusak tidak membatalkan baris lain,
// nomor baris yang dilewati dilaporkan.
func TestImportSchedulesBestEffort(t *testing.T) {
	db := openScheduleTestDB(t)

	app := fiber.New()
	app.Post("/a/schedules/import", NewScheduleController(db).ImportSchedules)

	csvContent := "schedule_day,schedule_date,schedule_class_id,schedule_student_id,schedule_material\n" +
		"Senin,2026-09-01,1,1,Aljabar\n" +
		"Selasa,02/09/2026,1,1,Geometri\n" + // tanggal invalid → skip
		"Rabu,2026-09-03,1,2,Trigonometri\n"

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", "jadwal.csv")
	require.NoError(t, err)
	_, err = fw.Write([]byte(csvContent))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/a/schedules/import", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body struct {
		Data struct {
			Imported int `json:"imported"`
			Skipped  []struct {
				Row    int    `json:"row"`
				Reason string `json:"reason"`
			} `json:"skipped"`
		} `json:"data"`
	}
	require.NoError(t, sonic.Unmarshal(raw, &body))

	assert.Equal(t, 2, body.Data.Imported)
	require.Len(t, body.Data.Skipped, 1)
	assert.Equal(t, 2, body.Data.Skipped[0].Row)
	assert.Equal(t, "format tanggal invalid, pakai YYYY-MM-DD", body.Data.Skipped[0].Reason)

	var count int64
	require.NoError(t, db.Model(&model.ScheduleModel{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}
