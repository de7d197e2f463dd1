package user

// Role is the closed set of principal roles resolved by the identity
// provider. The backend trusts the role claim and never authenticates.
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleHR          Role = "hr"
	RoleEmployee    Role = "employee"
	RoleCoordinator Role = "coordinator"
)

// ParseRole maps a role claim to a known Role. Unknown values are not
// coerced; callers must treat them as unauthorized.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleHR, RoleEmployee, RoleCoordinator:
		return Role(s), true
	}
	return "", false
}

// IsStaff reports whether the role can act on other employees' records.
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleHR
}
