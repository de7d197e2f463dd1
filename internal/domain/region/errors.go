package region

import "errors"

var (
	ErrRegionNotFound = errors.New("region not found")
)
