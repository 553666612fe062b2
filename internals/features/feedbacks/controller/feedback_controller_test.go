package controller

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"bimbelku_backend/internals/constants"
	"bimbelku_backend/internals/features/feedbacks/model"
)

func feedbackTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.FeedbackModel{}))

	app := fiber.New()
	// Locals seolah-olah AuthMiddleware sudah lewat.
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", uint(7))
		c.Locals("userRole", constants.RoleStudent)
		c.Locals("user_name", "ayu_lestari")
		return c.Next()
	})
	app.Post("/u/feedbacks", NewFeedbackController(db).CreateFeedback)
	return app, db
}

func postFeedback(t *testing.T, app *fiber.App, payload fiber.Map) int {
	t.Helper()
	raw, err := sonic.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", "/u/feedbacks", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	return resp.StatusCode
}

// Nama pengirim bebas diisi dari form; kosong jatuh ke username akun.
func TestCreateFeedbackSenderName(t *testing.T) {
	app, db := feedbackTestApp(t)

	status := postFeedback(t, app, fiber.Map{
		"feedback_name":    "Bu Ani (wali murid)",
		"feedback_message": "Jam les tolong digeser sore.",
	})
	require.Equal(t, fiber.StatusCreated, status)

	status = postFeedback(t, app, fiber.Map{
		"feedback_message": "Materinya kecepetan.",
	})
	require.Equal(t, fiber.StatusCreated, status)

	var feedbacks []model.FeedbackModel
	require.NoError(t, db.Order("feedback_id ASC").Find(&feedbacks).Error)
	require.Len(t, feedbacks, 2)
	assert.Equal(t, "Bu Ani (wali murid)", feedbacks[0].FeedbackName)
	assert.Equal(t, "Materinya kecepetan.", feedbacks[1].FeedbackMessage)
	assert.Equal(t, "ayu_lestari", feedbacks[1].FeedbackName)
}

func TestCreateFeedbackRequiresMessage(t *testing.T) {
	app, db := feedbackTestApp(t)

	status := postFeedback(t, app, fiber.Map{"feedback_name": "Anon"})
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)

	var count int64
	require.NoError(t, db.Model(&model.FeedbackModel{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}
