package auth

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bimbelku_backend/internals/constants"
)

// withRole memasang Locals seolah-olah AuthMiddleware sudah lewat.
func withRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if role != "" {
			c.Locals("userRole", role)
		}
		return c.Next()
	}
}

func okHandler(c *fiber.Ctx) error {
	return c.SendString("ok")
}

func TestOnlyRolesAdmin(t *testing.T) {
	tests := []struct {
		name       string
		role       string
		wantStatus int
	}{
		{"tanpa role", "", fiber.StatusUnauthorized},
		{"siswa ditolak", constants.RoleStudent, fiber.StatusForbidden},
		{"admin lolos", constants.RoleAdmin, fiber.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/a/students",
				withRole(tt.role),
				OnlyRoles(constants.RoleErrorAdmin("panel admin"), constants.RoleAdmin),
				okHandler,
			)

			resp, err := app.Test(httptest.NewRequest("GET", "/a/students", nil))
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestOnlyStudentsRedirectsAdminToOwnDashboard(t *testing.T) {
	app := fiber.New()
	app.Get("/u/dashboard",
		withRole(constants.RoleAdmin),
		OnlyStudents("halaman siswa"),
		okHandler,
	)

	resp, err := app.Test(httptest.NewRequest("GET", "/u/dashboard", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"redirect":"/api/a/dashboard"`)
}

func TestOnlyStudentsAllowsStudent(t *testing.T) {
	app := fiber.New()
	app.Get("/u/dashboard",
		withRole(constants.RoleStudent),
		OnlyStudents("halaman siswa"),
		okHandler,
	)

	resp, err := app.Test(httptest.NewRequest("GET", "/u/dashboard", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
