package user

// Actor is the authenticated principal resolved from JWT claims by the
// HTTP layer. Services receive it explicitly instead of digging claims
// out of the context, which keeps them testable without token plumbing.
type Actor struct {
	UserID     string
	EmployeeID string
	Role       Role
}

// Can reports whether the actor holds a capability.
func (a Actor) Can(p Permission) bool {
	return HasPermission(a.Role, p)
}
