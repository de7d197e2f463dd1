package schedule

import (
	"testing"
	"time"

	"github.com/staffhub/staffhub-backend-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolve_DefaultIsPhysical(t *testing.T) {
	kind := Resolve(employee.ScheduleOverrides{}, date(2025, time.June, 2))
	assert.Equal(t, DayPhysical, kind)
}

func TestResolve_HolidayWeekday(t *testing.T) {
	overrides := employee.ScheduleOverrides{
		HolidayWeekdays: []string{"Saturday", "Sunday"},
	}

	// 2025-06-01 is a Sunday, 2025-06-02 a Monday.
	assert.Equal(t, DayHoliday, Resolve(overrides, date(2025, time.June, 1)))
	assert.Equal(t, DayPhysical, Resolve(overrides, date(2025, time.June, 2)))
}

func TestResolve_OnlineWeekday(t *testing.T) {
	overrides := employee.ScheduleOverrides{
		OnlineWeekdays: []string{"Friday"},
	}

	// 2025-06-06 is a Friday.
	assert.Equal(t, DayOnline, Resolve(overrides, date(2025, time.June, 6)))
	assert.Equal(t, DayPhysical, Resolve(overrides, date(2025, time.June, 5)))
}

func TestResolve_YearDayRecursAnnually(t *testing.T) {
	overrides := employee.ScheduleOverrides{
		HolidayYearDays: []employee.MonthDay{{Month: 8, Day: 17}},
	}

	assert.Equal(t, DayHoliday, Resolve(overrides, date(2025, time.August, 17)))
	assert.Equal(t, DayHoliday, Resolve(overrides, date(2026, time.August, 17)))
	assert.Equal(t, DayPhysical, Resolve(overrides, date(2025, time.August, 18)))
}

func TestResolve_HolidayDominatesOnline(t *testing.T) {
	// Same date configured both as online weekday and holiday year-day.
	overrides := employee.ScheduleOverrides{
		OnlineWeekdays:  []string{"Monday"},
		HolidayYearDays: []employee.MonthDay{{Month: 6, Day: 2}},
	}

	assert.Equal(t, DayHoliday, Resolve(overrides, date(2025, time.June, 2)))
}

func TestIsWorkday(t *testing.T) {
	overrides := employee.ScheduleOverrides{
		HolidayWeekdays: []string{"Sunday"},
		OnlineWeekdays:  []string{"Friday"},
	}

	assert.False(t, IsWorkday(overrides, date(2025, time.June, 1)))
	assert.True(t, IsWorkday(overrides, date(2025, time.June, 6)), "online days are still workdays")
	assert.True(t, IsWorkday(overrides, date(2025, time.June, 2)))
}
