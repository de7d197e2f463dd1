package employee

import "errors"

var (
	ErrEmployeeNotFound      = errors.New("employee not found")
	ErrEmailExists           = errors.New("email already registered")
	ErrBasicSalaryNotSet     = errors.New("employee has no basic salary configured")
	ErrScheduleNotConfigured = errors.New("employee has no expected attend time configured")
)
