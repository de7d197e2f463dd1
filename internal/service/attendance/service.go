package attendance

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/staffhub/staffhub-backend-go/internal/domain/attendance"
	"github.com/staffhub/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub/staffhub-backend-go/internal/domain/region"
	"github.com/staffhub/staffhub-backend-go/internal/domain/schedule"
	"github.com/staffhub/staffhub-backend-go/internal/domain/user"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/database"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/geo"
)

type AttendanceServiceImpl struct {
	tx database.TxManager
	attendance.AttendanceRepository
	employee.EmployeeRepository
	region.RegionRepository
	now func() time.Time
}

func NewAttendanceService(
	tx database.TxManager,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	regionRepo region.RegionRepository,
	now func() time.Time,
) attendance.AttendanceService {
	if now == nil {
		now = time.Now
	}
	return &AttendanceServiceImpl{
		tx:                   tx,
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		RegionRepository:     regionRepo,
		now:                  now,
	}
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, actor user.Actor, req attendance.CheckInRequest) (attendance.Response, error) {
	if err := req.Validate(); err != nil {
		return attendance.Response{}, err
	}

	emp, err := a.EmployeeRepository.GetByID(ctx, actor.EmployeeID)
	if err != nil {
		return attendance.Response{}, fmt.Errorf("failed to get employee: %w", err)
	}
	if emp.ExpectedAttendTime == nil {
		return attendance.Response{}, employee.ErrScheduleNotConfigured
	}

	reg, err := a.RegionRepository.GetByEmployeeID(ctx, emp.ID)
	if err != nil {
		return attendance.Response{}, fmt.Errorf("failed to get region: %w", err)
	}

	loc := loadLocation(reg.Timezone)
	nowUTC := a.now().UTC()
	nowLocal := nowUTC.In(loc)
	date := time.Date(nowLocal.Year(), nowLocal.Month(), nowLocal.Day(), 0, 0, 0, 0, loc)

	dayKind := schedule.Resolve(emp.ScheduleOverrides, nowLocal)
	if dayKind == schedule.DayHoliday {
		return attendance.Response{}, attendance.ErrHolidayToday
	}

	existing, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, emp.ID, date)
	if err != nil {
		return attendance.Response{}, fmt.Errorf("failed to check today's attendance: %w", err)
	}
	if existing != nil {
		return attendance.Response{}, attendance.ErrAlreadyCheckedIn
	}

	attType := attendance.TypePhysical
	var locationValidIn *bool
	if dayKind == schedule.DayOnline {
		attType = attendance.TypeOnline
	} else {
		valid, err := validateLocation(reg, req.Latitude, req.Longitude)
		if err != nil {
			return attendance.Response{}, err
		}
		locationValidIn = &valid
	}

	expectedAttend, err := attendance.CombineClock(date, *emp.ExpectedAttendTime, loc)
	if err != nil {
		return attendance.Response{}, fmt.Errorf("failed to parse expected attend time: %w", err)
	}
	var expectedLeave *time.Time
	if emp.ExpectedLeaveTime != nil {
		leaveAt, err := attendance.CombineClock(date, *emp.ExpectedLeaveTime, loc)
		if err != nil {
			return attendance.Response{}, fmt.Errorf("failed to parse expected leave time: %w", err)
		}
		expectedLeave = &leaveAt
	}

	status, lateness, err := attendance.EvaluateCheckIn(nowLocal, expectedAttend, expectedLeave)
	if err != nil {
		return attendance.Response{}, err
	}

	data := attendance.Attendance{
		EmployeeID:       emp.ID,
		Date:             date,
		Type:             attType,
		Status:           status,
		CheckInTime:      &nowUTC,
		CheckInLatitude:  req.Latitude,
		CheckInLongitude: req.Longitude,
		LocationValidIn:  locationValidIn,
		LatenessHours:    lateness,
	}

	var created attendance.Attendance
	err = a.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		created, err = a.AttendanceRepository.Create(ctx, data)
		if err != nil {
			return err
		}
		if status == attendance.StatusLate && lateness.IsPositive() {
			if err := a.EmployeeRepository.AddLatenessHours(ctx, emp.ID, lateness); err != nil {
				return fmt.Errorf("failed to accumulate lateness hours: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return attendance.Response{}, err
	}

	return mapAttendanceToResponse(created), nil
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, actor user.Actor, req attendance.CheckOutRequest) (attendance.Response, error) {
	if err := req.Validate(); err != nil {
		return attendance.Response{}, err
	}

	emp, err := a.EmployeeRepository.GetByID(ctx, actor.EmployeeID)
	if err != nil {
		return attendance.Response{}, fmt.Errorf("failed to get employee: %w", err)
	}

	reg, err := a.RegionRepository.GetByEmployeeID(ctx, emp.ID)
	if err != nil {
		return attendance.Response{}, fmt.Errorf("failed to get region: %w", err)
	}

	loc := loadLocation(reg.Timezone)
	nowUTC := a.now().UTC()
	nowLocal := nowUTC.In(loc)
	date := time.Date(nowLocal.Year(), nowLocal.Month(), nowLocal.Day(), 0, 0, 0, 0, loc)

	record, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, emp.ID, date)
	if err != nil {
		return attendance.Response{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if record == nil || record.CheckInTime == nil {
		return attendance.Response{}, attendance.ErrNotCheckedIn
	}
	if record.CheckedOut() {
		return attendance.Response{}, attendance.ErrAlreadyCheckedOut
	}

	var locationValidOut *bool
	if record.Type == attendance.TypePhysical {
		valid, err := validateLocation(reg, req.Latitude, req.Longitude)
		if err != nil {
			return attendance.Response{}, err
		}
		locationValidOut = &valid
	}

	record.CheckOutTime = &nowUTC
	record.CheckOutLatitude = req.Latitude
	record.CheckOutLongitude = req.Longitude
	record.LocationValidOut = locationValidOut

	if err := a.AttendanceRepository.Update(ctx, *record); err != nil {
		return attendance.Response{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	resp := mapAttendanceToResponse(*record)

	// Signal whether an overtime request will become possible: the
	// employee left after the scheduled leave time. The request itself is
	// gated again by the eligibility check once the threshold elapses.
	if emp.ExpectedLeaveTime != nil {
		expectedLeave, err := attendance.CombineClock(date, *emp.ExpectedLeaveTime, loc)
		if err == nil {
			eligible := nowLocal.After(expectedLeave)
			resp.OvertimeEligible = &eligible
		}
	}

	return resp, nil
}

// Get implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Get(ctx context.Context, id string) (attendance.Response, error) {
	att, err := a.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		return attendance.Response{}, err
	}
	return mapAttendanceToResponse(att), nil
}

// List implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) List(ctx context.Context, filter attendance.Filter) (attendance.ListResponse, error) {
	normalizeFilter(&filter)

	atts, total, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListResponse{}, fmt.Errorf("failed to list attendances: %w", err)
	}

	return buildListResponse(atts, total, filter), nil
}

// ListMy implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListMy(ctx context.Context, actor user.Actor, filter attendance.Filter) (attendance.ListResponse, error) {
	filter.EmployeeID = actor.EmployeeID
	return a.List(ctx, filter)
}

// Correct implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Correct(ctx context.Context, req attendance.CorrectRequest) (attendance.Response, error) {
	if err := req.Validate(); err != nil {
		return attendance.Response{}, err
	}

	att, err := a.AttendanceRepository.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.Response{}, err
	}

	if req.CheckInTime != nil && *req.CheckInTime != "" {
		parsed, err := time.Parse("2006-01-02 15:04:05", *req.CheckInTime)
		if err != nil {
			return attendance.Response{}, fmt.Errorf("invalid check_in_time: %w", err)
		}
		att.CheckInTime = &parsed
	}

	if req.CheckOutTime != nil && *req.CheckOutTime != "" {
		parsed, err := time.Parse("2006-01-02 15:04:05", *req.CheckOutTime)
		if err != nil {
			return attendance.Response{}, fmt.Errorf("invalid check_out_time: %w", err)
		}
		att.CheckOutTime = &parsed
	}

	if req.Status != nil {
		att.Status = attendance.Status(*req.Status)
	}

	if err := a.AttendanceRepository.Update(ctx, att); err != nil {
		return attendance.Response{}, fmt.Errorf("failed to correct attendance: %w", err)
	}

	return mapAttendanceToResponse(att), nil
}

// Delete implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Delete(ctx context.Context, id string) error {
	if err := a.AttendanceRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	return nil
}

func loadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

// validateLocation runs the geofence check for a physical-type record.
// A region without office coordinates blocks attendance outright.
func validateLocation(reg region.Region, lat, lon *float64) (bool, error) {
	var office *geo.Point
	if reg.OfficeLatitude != nil && reg.OfficeLongitude != nil {
		office = &geo.Point{Latitude: *reg.OfficeLatitude, Longitude: *reg.OfficeLongitude}
	}

	var reported *geo.Point
	if lat != nil && lon != nil {
		reported = &geo.Point{Latitude: *lat, Longitude: *lon}
	}

	within, _, err := geo.ValidateGeofence(reported, office, reg.RadiusMeters)
	if err != nil {
		return false, err
	}
	if !within {
		return false, attendance.ErrOutsideAllowedRadius
	}
	return true, nil
}

func normalizeFilter(filter *attendance.Filter) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}
}

func buildListResponse(atts []attendance.Attendance, total int64, filter attendance.Filter) attendance.ListResponse {
	responses := make([]attendance.Response, 0, len(atts))
	for _, att := range atts {
		responses = append(responses, mapAttendanceToResponse(att))
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))

	return attendance.ListResponse{
		TotalCount:  total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		TotalPages:  totalPages,
		Attendances: responses,
	}
}

// mapAttendanceToResponse converts an Attendance entity to Response.
func mapAttendanceToResponse(att attendance.Attendance) attendance.Response {
	var employeeName string
	if att.EmployeeName != nil {
		employeeName = *att.EmployeeName
	}

	return attendance.Response{
		ID:                att.ID,
		EmployeeID:        att.EmployeeID,
		EmployeeName:      employeeName,
		Date:              att.Date.Format("2006-01-02"),
		Type:              string(att.Type),
		Status:            string(att.Status),
		CheckInTime:       timePtrToString(att.CheckInTime),
		CheckOutTime:      timePtrToString(att.CheckOutTime),
		CheckInLatitude:   att.CheckInLatitude,
		CheckInLongitude:  att.CheckInLongitude,
		CheckOutLatitude:  att.CheckOutLatitude,
		CheckOutLongitude: att.CheckOutLongitude,
		LocationValidIn:   att.LocationValidIn,
		LocationValidOut:  att.LocationValidOut,
		LatenessHours:     att.LatenessHours.StringFixed(2),
		OvertimeHours:     att.OvertimeHours.StringFixed(2),
		OvertimeApproved:  att.OvertimeApproved,
	}
}
