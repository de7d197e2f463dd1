package salary

import "errors"

var (
	ErrSalaryRecordNotFound = errors.New("salary record not found")
	ErrInvalidPeriod        = errors.New("year and month must identify a valid period")
)
