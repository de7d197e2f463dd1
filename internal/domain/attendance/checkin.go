package attendance

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// GracePeriod is the window after expected attend time during which a
// check-in still counts as present.
const GracePeriod = 15 * time.Minute

// CombineClock places an "HH:MM" clock time onto a calendar date in loc.
func CombineClock(date time.Time, clock string, loc *time.Location) (time.Time, error) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return time.Time{}, fmt.Errorf("invalid clock time %q", clock)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid clock time %q", clock)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid clock time %q", clock)
	}
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, loc), nil
}

// EvaluateCheckIn applies the check-in time rules for one day.
//
//   - before expectedAttend: rejected, the workday has not started
//   - within [expectedAttend, expectedAttend+grace]: present
//   - within (expectedAttend+grace, expectedLeave): late, with lateness
//     hours measured from the end of the grace window
//   - at or past expectedLeave: rejected, the workday is over
//
// expectedLeave may be nil when the employee has no configured leave time;
// the workday-over rule then never fires.
func EvaluateCheckIn(now, expectedAttend time.Time, expectedLeave *time.Time) (Status, decimal.Decimal, error) {
	if now.Before(expectedAttend) {
		return "", decimal.Zero, ErrTooEarlyToCheckIn
	}
	if expectedLeave != nil && !now.Before(*expectedLeave) {
		return "", decimal.Zero, ErrWorkdayOver
	}

	graceLimit := expectedAttend.Add(GracePeriod)
	if !now.After(graceLimit) {
		return StatusPresent, decimal.Zero, nil
	}

	lateness := decimal.NewFromFloat(now.Sub(graceLimit).Hours()).Round(2)
	if lateness.IsNegative() {
		lateness = decimal.Zero
	}
	return StatusLate, lateness, nil
}
