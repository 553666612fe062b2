package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bimbelku_backend/internals/configs"
)

func signTestToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func authTestApp() *fiber.App {
	app := fiber.New()
	app.Get("/me", AuthMiddleware(), func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromCtx(c)
		if !ok {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.JSON(fiber.Map{
			"id":       principal.ID,
			"username": principal.Username,
			"is_admin": principal.IsAdmin(),
		})
	})
	return app
}

func TestAuthMiddleware(t *testing.T) {
	configs.JWTSecret = "test-secret"
	now := time.Now().UTC()

	validClaims := jwt.MapClaims{
		"id":       float64(7),
		"role":     "student",
		"username": "ayu_lestari",
		"iat":      now.Unix(),
		"exp":      now.Add(time.Hour).Unix(),
	}

	t.Run("token valid di header", func(t *testing.T) {
		app := authTestApp()
		req := httptest.NewRequest("GET", "/me", nil)
		req.Header.Set("Authorization", "Bearer "+signTestToken(t, "test-secret", validClaims))

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("token valid di cookie", func(t *testing.T) {
		app := authTestApp()
		req := httptest.NewRequest("GET", "/me", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: signTestToken(t, "test-secret", validClaims)})

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("tanpa token", func(t *testing.T) {
		app := authTestApp()
		resp, err := app.Test(httptest.NewRequest("GET", "/me", nil))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("token kedaluwarsa", func(t *testing.T) {
		expired := jwt.MapClaims{
			"id":       float64(7),
			"role":     "student",
			"username": "ayu_lestari",
			"iat":      now.Add(-2 * time.Hour).Unix(),
			"exp":      now.Add(-time.Hour).Unix(),
		}
		app := authTestApp()
		req := httptest.NewRequest("GET", "/me", nil)
		req.Header.Set("Authorization", "Bearer "+signTestToken(t, "test-secret", expired))

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("token dengan secret salah", func(t *testing.T) {
		app := authTestApp()
		req := httptest.NewRequest("GET", "/me", nil)
		req.Header.Set("Authorization", "Bearer "+signTestToken(t, "secret-lain", validClaims))

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}
