package auth

import (
	"github.com/gofiber/fiber/v2"

	"bimbelku_backend/internals/constants"
)

// Principal adalah aktor yang sudah terautentikasi (admin atau siswa).
type Principal struct {
	ID       uint
	Username string
	role     string
}

func (p Principal) Role() string    { return p.role }
func (p Principal) IsAdmin() bool   { return p.role == constants.RoleAdmin }
func (p Principal) IsStudent() bool { return p.role == constants.RoleStudent }

// PrincipalFromCtx membangun Principal dari Locals yang di-set AuthMiddleware.
func PrincipalFromCtx(c *fiber.Ctx) (Principal, bool) {
	id, okID := c.Locals("user_id").(uint)
	role, okRole := c.Locals("userRole").(string)
	if !okID || !okRole || id == 0 {
		return Principal{}, false
	}
	username, _ := c.Locals("user_name").(string)
	return Principal{ID: id, Username: username, role: role}, true
}
