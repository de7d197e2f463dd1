package user

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrEmailTaken           = errors.New("an account with this email already exists")
	ErrUnknownRole          = errors.New("unknown role")
	ErrPermissionRequired   = errors.New("insufficient permissions")
	ErrAdminAccessRequired  = errors.New("admin access required")
	ErrStaffAccessRequired  = errors.New("hr or admin access required")
	ErrEmployeeLinkRequired = errors.New("no employee record linked to this principal")
)
