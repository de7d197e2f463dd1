package user

import "time"

// User is a login account. EmployeeID is set once the account is linked
// to an employee record; accounts created for accepted candidates start
// without one.
type User struct {
	ID           string
	Email        string
	PasswordHash *string
	Role         Role
	EmployeeID   *string

	// Forces a password change on first login for issued credentials.
	MustChangePassword bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
