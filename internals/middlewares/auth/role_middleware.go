package auth

import (
	"github.com/gofiber/fiber/v2"
)

const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// RequireRole gates a group to the given roles. Must run after AuthJWT.
func RequireRole(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(LocRole).(string)
		if _, ok := allowed[role]; !ok {
			return fiber.NewError(fiber.StatusForbidden, "Insufficient role")
		}
		return c.Next()
	}
}

// AdminOnly is the guard used by the dashboard group.
func AdminOnly() fiber.Handler {
	return RequireRole(RoleAdmin)
}
