package schedule

import (
	"time"

	"github.com/staffhub/staffhub-backend-go/internal/domain/employee"
)

// DayKind is how a calendar date is treated for one employee.
type DayKind string

const (
	// DayHoliday disables check-in entirely.
	DayHoliday DayKind = "holiday"
	// DayOnline treats attendance as online, bypassing geofencing.
	DayOnline DayKind = "online"
	// DayPhysical requires on-site attendance with geofence validation.
	DayPhysical DayKind = "physical"
)

// Resolve evaluates an employee's schedule overrides for a calendar date.
// A holiday override always dominates an online override; there is no
// precedence ambiguity between rules matching the same date.
func Resolve(overrides employee.ScheduleOverrides, date time.Time) DayKind {
	if matches(overrides.HolidayWeekdays, overrides.HolidayYearDays, date) {
		return DayHoliday
	}
	if matches(overrides.OnlineWeekdays, overrides.OnlineYearDays, date) {
		return DayOnline
	}
	return DayPhysical
}

// IsWorkday reports whether the sweeper should expect attendance on date.
func IsWorkday(overrides employee.ScheduleOverrides, date time.Time) bool {
	return Resolve(overrides, date) != DayHoliday
}

func matches(weekdays []string, yearDays []employee.MonthDay, date time.Time) bool {
	weekdayName := date.Weekday().String()
	for _, wd := range weekdays {
		if wd == weekdayName {
			return true
		}
	}
	for _, yd := range yearDays {
		if yd.Month == int(date.Month()) && yd.Day == date.Day() {
			return true
		}
	}
	return false
}
