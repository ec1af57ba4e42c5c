package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lgwakano/workflow-api/internals/constants"
)

// RequireRoles gates a route group to the given roles. Must run after
// AuthMiddleware so the role local is populated.
func RequireRoles(feature string, roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Missing role")
		}
		if _, ok := allowed[role]; !ok {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleError(joinRoles(roles), feature))
		}
		return c.Next()
	}
}

func joinRoles(roles []string) string {
	switch len(roles) {
	case 0:
		return "nobody"
	case 1:
		return roles[0]
	}
	out := roles[0]
	for _, r := range roles[1 : len(roles)-1] {
		out += ", " + r
	}
	return out + " or " + roles[len(roles)-1]
}
