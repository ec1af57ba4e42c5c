package constants

import "fmt"

// Closed role set, matching the users.role column.
const (
	RoleUser      = "user"
	RoleAdmin     = "admin"
	RoleModerator = "moderator"
)

const ErrOnlyRolesCanAccess = "Only %s may access %s."

func RoleError(roles string, feature string) string {
	return fmt.Sprintf(ErrOnlyRolesCanAccess, roles, feature)
}

// ==========================
// Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleUser,
		RoleAdmin,
		RoleModerator,
	}

	ModeratorAndAbove = []string{
		RoleModerator,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
