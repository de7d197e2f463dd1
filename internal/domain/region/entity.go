package region

import "time"

// Region is an office location used for geofenced attendance. Office
// coordinates are optional on purpose: a region without them blocks
// physical attendance (fail closed) until HR registers the office.
type Region struct {
	ID              string
	Name            string
	OfficeLatitude  *float64
	OfficeLongitude *float64
	RadiusMeters    float64
	Timezone        string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
