package overtime

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/staffhub/staffhub-backend-go/internal/domain/attendance"
	"github.com/staffhub/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub/staffhub-backend-go/internal/domain/overtime"
	"github.com/staffhub/staffhub-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTxManager struct{}

func (fakeTxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeOvertimeRepo struct {
	overtime.OvertimeRequestRepository
	byID         map[string]overtime.OvertimeRequest
	byAttendance map[string]*overtime.OvertimeRequest
	created      []overtime.OvertimeRequest
	updated      []overtime.OvertimeRequest
}

func (f *fakeOvertimeRepo) Create(ctx context.Context, req overtime.OvertimeRequest) (overtime.OvertimeRequest, error) {
	req.ID = "ot-1"
	f.created = append(f.created, req)
	return req, nil
}

func (f *fakeOvertimeRepo) GetByID(ctx context.Context, id string) (overtime.OvertimeRequest, error) {
	req, ok := f.byID[id]
	if !ok {
		return overtime.OvertimeRequest{}, overtime.ErrRequestNotFound
	}
	return req, nil
}

func (f *fakeOvertimeRepo) GetByAttendanceID(ctx context.Context, attendanceID string) (*overtime.OvertimeRequest, error) {
	return f.byAttendance[attendanceID], nil
}

func (f *fakeOvertimeRepo) Update(ctx context.Context, req overtime.OvertimeRequest) error {
	f.updated = append(f.updated, req)
	if f.byID == nil {
		f.byID = map[string]overtime.OvertimeRequest{}
	}
	f.byID[req.ID] = req
	return nil
}

type fakeAttendanceRepo struct {
	attendance.AttendanceRepository
	byID    map[string]attendance.Attendance
	updated []attendance.Attendance
}

func (f *fakeAttendanceRepo) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	att, ok := f.byID[id]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return att, nil
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, att attendance.Attendance) error {
	f.updated = append(f.updated, att)
	return nil
}

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	emp           employee.Employee
	overtimeAdded decimal.Decimal
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return f.emp, nil
}

func (f *fakeEmployeeRepo) AddOvertimeHours(ctx context.Context, id string, hours decimal.Decimal) error {
	f.overtimeAdded = f.overtimeAdded.Add(hours)
	return nil
}

func checkedOutAttendance(now time.Time, checkedOutAgo time.Duration) attendance.Attendance {
	checkOut := now.Add(-checkedOutAgo)
	checkIn := checkOut.Add(-8 * time.Hour)
	return attendance.Attendance{
		ID:           "att-1",
		EmployeeID:   "emp-1",
		Date:         time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		Type:         attendance.TypePhysical,
		Status:       attendance.StatusPresent,
		CheckInTime:  &checkIn,
		CheckOutTime: &checkOut,
	}
}

func TestCreate_ThresholdNotElapsed(t *testing.T) {
	now := time.Date(2026, 3, 2, 17, 10, 0, 0, time.UTC)
	attRepo := &fakeAttendanceRepo{byID: map[string]attendance.Attendance{
		"att-1": checkedOutAttendance(now, 10*time.Minute),
	}}
	otRepo := &fakeOvertimeRepo{byAttendance: map[string]*overtime.OvertimeRequest{}}
	empRepo := &fakeEmployeeRepo{emp: employee.Employee{ID: "emp-1"}}

	svc := NewOvertimeService(fakeTxManager{}, otRepo, attRepo, empRepo, func() time.Time { return now })

	_, err := svc.Create(context.Background(), user.Actor{EmployeeID: "emp-1", Role: user.RoleEmployee}, overtime.CreateRequest{
		AttendanceID:   "att-1",
		RequestedHours: decimal.NewFromFloat(1.5),
	})
	assert.ErrorIs(t, err, overtime.ErrThresholdNotElapsed)
	assert.Empty(t, otRepo.created)
}

func TestCreate_PendingRequestAfterThreshold(t *testing.T) {
	now := time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC)
	attRepo := &fakeAttendanceRepo{byID: map[string]attendance.Attendance{
		"att-1": checkedOutAttendance(now, 45*time.Minute),
	}}
	otRepo := &fakeOvertimeRepo{byAttendance: map[string]*overtime.OvertimeRequest{}}
	empRepo := &fakeEmployeeRepo{emp: employee.Employee{ID: "emp-1"}}

	svc := NewOvertimeService(fakeTxManager{}, otRepo, attRepo, empRepo, func() time.Time { return now })

	resp, err := svc.Create(context.Background(), user.Actor{EmployeeID: "emp-1", Role: user.RoleEmployee}, overtime.CreateRequest{
		AttendanceID:   "att-1",
		RequestedHours: decimal.NewFromFloat(1.5),
	})
	require.NoError(t, err)

	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "1.50", resp.RequestedHours)
	require.Len(t, otRepo.created, 1)
	assert.Equal(t, "emp-1", otRepo.created[0].EmployeeID)
}

func TestCreate_NotRecordOwner(t *testing.T) {
	now := time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC)
	attRepo := &fakeAttendanceRepo{byID: map[string]attendance.Attendance{
		"att-1": checkedOutAttendance(now, 45*time.Minute),
	}}
	otRepo := &fakeOvertimeRepo{byAttendance: map[string]*overtime.OvertimeRequest{}}
	empRepo := &fakeEmployeeRepo{emp: employee.Employee{ID: "emp-2"}}

	svc := NewOvertimeService(fakeTxManager{}, otRepo, attRepo, empRepo, func() time.Time { return now })

	_, err := svc.Create(context.Background(), user.Actor{EmployeeID: "emp-2", Role: user.RoleEmployee}, overtime.CreateRequest{
		AttendanceID:   "att-1",
		RequestedHours: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, overtime.ErrNotRecordOwner)
}

func TestCreate_DuplicateRequest(t *testing.T) {
	now := time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC)
	attRepo := &fakeAttendanceRepo{byID: map[string]attendance.Attendance{
		"att-1": checkedOutAttendance(now, 45*time.Minute),
	}}
	otRepo := &fakeOvertimeRepo{byAttendance: map[string]*overtime.OvertimeRequest{
		"att-1": {ID: "ot-0", AttendanceID: "att-1", Status: overtime.StatusPending},
	}}
	empRepo := &fakeEmployeeRepo{emp: employee.Employee{ID: "emp-1"}}

	svc := NewOvertimeService(fakeTxManager{}, otRepo, attRepo, empRepo, func() time.Time { return now })

	_, err := svc.Create(context.Background(), user.Actor{EmployeeID: "emp-1", Role: user.RoleEmployee}, overtime.CreateRequest{
		AttendanceID:   "att-1",
		RequestedHours: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, overtime.ErrAlreadyRequested)
}

func TestCheckEligibility_AlreadyRequestedReason(t *testing.T) {
	now := time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC)
	attRepo := &fakeAttendanceRepo{byID: map[string]attendance.Attendance{
		"att-1": checkedOutAttendance(now, 45*time.Minute),
	}}
	otRepo := &fakeOvertimeRepo{byAttendance: map[string]*overtime.OvertimeRequest{
		"att-1": {ID: "ot-0", AttendanceID: "att-1", Status: overtime.StatusPending},
	}}
	empRepo := &fakeEmployeeRepo{emp: employee.Employee{ID: "emp-1"}}

	svc := NewOvertimeService(fakeTxManager{}, otRepo, attRepo, empRepo, func() time.Time { return now })

	resp, err := svc.CheckEligibility(context.Background(), user.Actor{EmployeeID: "emp-1", Role: user.RoleEmployee}, "att-1")
	require.NoError(t, err)

	assert.False(t, resp.Eligible)
	assert.Equal(t, overtime.ErrAlreadyRequested.Error(), resp.Reason)
}

func TestCheckEligibility_Eligible(t *testing.T) {
	now := time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC)
	attRepo := &fakeAttendanceRepo{byID: map[string]attendance.Attendance{
		"att-1": checkedOutAttendance(now, 45*time.Minute),
	}}
	otRepo := &fakeOvertimeRepo{byAttendance: map[string]*overtime.OvertimeRequest{}}
	empRepo := &fakeEmployeeRepo{emp: employee.Employee{ID: "emp-1"}}

	svc := NewOvertimeService(fakeTxManager{}, otRepo, attRepo, empRepo, func() time.Time { return now })

	resp, err := svc.CheckEligibility(context.Background(), user.Actor{EmployeeID: "emp-1", Role: user.RoleEmployee}, "att-1")
	require.NoError(t, err)

	assert.True(t, resp.Eligible)
	assert.Empty(t, resp.Reason)
}

func TestApprove_WritesHoursOntoAttendance(t *testing.T) {
	now := time.Date(2026, 3, 3, 10, 0, 0, 0, time.UTC)
	hours := decimal.NewFromFloat(2.5)

	attRepo := &fakeAttendanceRepo{byID: map[string]attendance.Attendance{
		"att-1": {ID: "att-1", EmployeeID: "emp-1"},
	}}
	otRepo := &fakeOvertimeRepo{byID: map[string]overtime.OvertimeRequest{
		"ot-1": {ID: "ot-1", AttendanceID: "att-1", EmployeeID: "emp-1", RequestedHours: hours, Status: overtime.StatusPending},
	}}
	empRepo := &fakeEmployeeRepo{emp: employee.Employee{ID: "emp-1"}}

	svc := NewOvertimeService(fakeTxManager{}, otRepo, attRepo, empRepo, func() time.Time { return now })

	resp, err := svc.Approve(context.Background(), user.Actor{UserID: "hr-1", Role: user.RoleHR}, overtime.ReviewRequest{ID: "ot-1"})
	require.NoError(t, err)

	assert.Equal(t, "approved", resp.Status)
	require.NotNil(t, resp.ReviewedBy)
	assert.Equal(t, "hr-1", *resp.ReviewedBy)

	require.Len(t, attRepo.updated, 1)
	assert.True(t, attRepo.updated[0].OvertimeApproved)
	assert.True(t, attRepo.updated[0].OvertimeHours.Equal(hours))
	assert.True(t, empRepo.overtimeAdded.Equal(hours))
}

func TestApprove_ThenRejectFails(t *testing.T) {
	now := time.Date(2026, 3, 3, 10, 0, 0, 0, time.UTC)

	attRepo := &fakeAttendanceRepo{byID: map[string]attendance.Attendance{
		"att-1": {ID: "att-1", EmployeeID: "emp-1"},
	}}
	otRepo := &fakeOvertimeRepo{byID: map[string]overtime.OvertimeRequest{
		"ot-1": {ID: "ot-1", AttendanceID: "att-1", EmployeeID: "emp-1", RequestedHours: decimal.NewFromInt(2), Status: overtime.StatusPending},
	}}
	empRepo := &fakeEmployeeRepo{emp: employee.Employee{ID: "emp-1"}}

	svc := NewOvertimeService(fakeTxManager{}, otRepo, attRepo, empRepo, func() time.Time { return now })

	actor := user.Actor{UserID: "hr-1", Role: user.RoleHR}
	_, err := svc.Approve(context.Background(), actor, overtime.ReviewRequest{ID: "ot-1"})
	require.NoError(t, err)

	_, err = svc.Reject(context.Background(), actor, overtime.ReviewRequest{ID: "ot-1"})
	assert.ErrorIs(t, err, overtime.ErrAlreadyProcessed)
}

func TestReject_ZeroesAttendanceOvertime(t *testing.T) {
	now := time.Date(2026, 3, 3, 10, 0, 0, 0, time.UTC)
	comment := "not justified"

	attRepo := &fakeAttendanceRepo{byID: map[string]attendance.Attendance{
		"att-1": {ID: "att-1", EmployeeID: "emp-1", OvertimeHours: decimal.NewFromInt(2), OvertimeApproved: true},
	}}
	otRepo := &fakeOvertimeRepo{byID: map[string]overtime.OvertimeRequest{
		"ot-1": {ID: "ot-1", AttendanceID: "att-1", EmployeeID: "emp-1", RequestedHours: decimal.NewFromInt(2), Status: overtime.StatusPending},
	}}
	empRepo := &fakeEmployeeRepo{emp: employee.Employee{ID: "emp-1"}}

	svc := NewOvertimeService(fakeTxManager{}, otRepo, attRepo, empRepo, func() time.Time { return now })

	resp, err := svc.Reject(context.Background(), user.Actor{UserID: "hr-1", Role: user.RoleHR}, overtime.ReviewRequest{ID: "ot-1", HRComment: &comment})
	require.NoError(t, err)

	assert.Equal(t, "rejected", resp.Status)
	require.NotNil(t, resp.HRComment)
	assert.Equal(t, comment, *resp.HRComment)

	require.Len(t, attRepo.updated, 1)
	assert.False(t, attRepo.updated[0].OvertimeApproved)
	assert.True(t, attRepo.updated[0].OvertimeHours.IsZero())
	assert.True(t, empRepo.overtimeAdded.IsZero())
}
