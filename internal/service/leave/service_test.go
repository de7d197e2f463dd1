package leave

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/staffhub/staffhub-backend-go/internal/domain/attendance"
	"github.com/staffhub/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub/staffhub-backend-go/internal/domain/leave"
	"github.com/staffhub/staffhub-backend-go/internal/domain/salary"
	"github.com/staffhub/staffhub-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTxManager struct{}

func (fakeTxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeLeaveRepo struct {
	leave.CasualLeaveRepository
	byID       map[string]leave.CasualLeave
	covering   bool
	usedDays   int
	yearsAsked []int
	created    []leave.CasualLeave
	updated    []leave.CasualLeave
}

func (f *fakeLeaveRepo) Create(ctx context.Context, cl leave.CasualLeave) (leave.CasualLeave, error) {
	cl.ID = fmt.Sprintf("leave-%d", len(f.created)+1)
	f.created = append(f.created, cl)
	if f.byID == nil {
		f.byID = map[string]leave.CasualLeave{}
	}
	f.byID[cl.ID] = cl
	return cl, nil
}

func (f *fakeLeaveRepo) GetByID(ctx context.Context, id string) (leave.CasualLeave, error) {
	cl, ok := f.byID[id]
	if !ok {
		return leave.CasualLeave{}, leave.ErrLeaveNotFound
	}
	return cl, nil
}

func (f *fakeLeaveRepo) Update(ctx context.Context, cl leave.CasualLeave) error {
	f.updated = append(f.updated, cl)
	if f.byID == nil {
		f.byID = map[string]leave.CasualLeave{}
	}
	f.byID[cl.ID] = cl
	return nil
}

// ApprovedDaysInYear sums usedDays plus the approved requests this fake
// has stored, so status transitions show up in subsequent quota checks.
func (f *fakeLeaveRepo) ApprovedDaysInYear(ctx context.Context, employeeID string, year int) (int, error) {
	f.yearsAsked = append(f.yearsAsked, year)
	used := f.usedDays
	for _, cl := range f.byID {
		if cl.Status == leave.StatusApproved {
			used += cl.Duration
		}
	}
	return used, nil
}

func (f *fakeLeaveRepo) HasLeaveCovering(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
	return f.covering, nil
}

type fakePolicyRepo struct {
	leave.LeavePolicyRepository
}

func (f *fakePolicyRepo) GetOrCreate(ctx context.Context, employeeID string) (leave.EmployeeLeavePolicy, error) {
	return leave.EmployeeLeavePolicy{
		ID:                "policy-1",
		EmployeeID:        employeeID,
		YearlyQuota:       leave.DefaultYearlyQuota,
		MaxDaysPerRequest: leave.DefaultMaxDaysPerRequest,
	}, nil
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
	emp          employee.Employee
	absenceDelta int
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return f.emp, nil
}

func (f *fakeEmployeeRepo) AddAbsenceDays(ctx context.Context, id string, days int) error {
	f.absenceDelta += days
	return nil
}

type fakeSalaryRepo struct {
	salary.SalaryRepository
	record  *salary.SalaryRecord
	updated []salary.SalaryRecord
}

func (f *fakeSalaryRepo) GetByPeriod(ctx context.Context, employeeID string, year, month int) (*salary.SalaryRecord, error) {
	return f.record, nil
}

func (f *fakeSalaryRepo) Update(ctx context.Context, rec salary.SalaryRecord) error {
	f.updated = append(f.updated, rec)
	return nil
}

func newTestService(leaveRepo *fakeLeaveRepo, attRepo *fakeAttendanceRepo, empRepo *fakeEmployeeRepo, salaryRepo *fakeSalaryRepo, now time.Time) leave.LeaveService {
	return NewLeaveService(fakeTxManager{}, leaveRepo, &fakePolicyRepo{}, attRepo, empRepo, salaryRepo, func() time.Time { return now })
}

func TestCreate_InclusiveDuration(t *testing.T) {
	leaveRepo := &fakeLeaveRepo{}
	svc := newTestService(leaveRepo, &fakeAttendanceRepo{}, &fakeEmployeeRepo{}, &fakeSalaryRepo{}, time.Now())

	resp, err := svc.Create(context.Background(), user.Actor{EmployeeID: "emp-1"}, leave.CreateRequest{
		StartDate: "2026-04-06",
		EndDate:   "2026-04-10",
	})
	require.NoError(t, err)

	assert.Equal(t, 5, resp.Duration)
	assert.Equal(t, "pending", resp.Status)
	require.Len(t, leaveRepo.created, 1)
	assert.Equal(t, "emp-1", leaveRepo.created[0].EmployeeID)
}

func TestCreate_InvalidDateRange(t *testing.T) {
	svc := newTestService(&fakeLeaveRepo{}, &fakeAttendanceRepo{}, &fakeEmployeeRepo{}, &fakeSalaryRepo{}, time.Now())

	_, err := svc.Create(context.Background(), user.Actor{EmployeeID: "emp-1"}, leave.CreateRequest{
		StartDate: "2026-04-10",
		EndDate:   "2026-04-06",
	})
	assert.ErrorIs(t, err, leave.ErrInvalidDateRange)
}

func TestCreate_ExceedsMaxDaysPerRequest(t *testing.T) {
	svc := newTestService(&fakeLeaveRepo{}, &fakeAttendanceRepo{}, &fakeEmployeeRepo{}, &fakeSalaryRepo{}, time.Now())

	// 15 inclusive days against a 14-day cap.
	_, err := svc.Create(context.Background(), user.Actor{EmployeeID: "emp-1"}, leave.CreateRequest{
		StartDate: "2026-04-01",
		EndDate:   "2026-04-15",
	})
	assert.ErrorIs(t, err, leave.ErrExceedsMaxDays)
}

func TestCreate_QuotaExceeded(t *testing.T) {
	// 18 days already approved; a 5-day request pushes past the 21-day quota.
	leaveRepo := &fakeLeaveRepo{usedDays: 18}
	svc := newTestService(leaveRepo, &fakeAttendanceRepo{}, &fakeEmployeeRepo{}, &fakeSalaryRepo{}, time.Now())

	_, err := svc.Create(context.Background(), user.Actor{EmployeeID: "emp-1"}, leave.CreateRequest{
		StartDate: "2026-04-06",
		EndDate:   "2026-04-10",
	})
	assert.ErrorIs(t, err, leave.ErrQuotaExceeded)
}

func TestCreate_OverlappingLeave(t *testing.T) {
	leaveRepo := &fakeLeaveRepo{covering: true}
	svc := newTestService(leaveRepo, &fakeAttendanceRepo{}, &fakeEmployeeRepo{}, &fakeSalaryRepo{}, time.Now())

	_, err := svc.Create(context.Background(), user.Actor{EmployeeID: "emp-1"}, leave.CreateRequest{
		StartDate: "2026-04-06",
		EndDate:   "2026-04-10",
	})
	assert.ErrorIs(t, err, leave.ErrOverlappingLeave)
}

func TestApprove_PendingOnly(t *testing.T) {
	now := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	leaveRepo := &fakeLeaveRepo{byID: map[string]leave.CasualLeave{
		"leave-1": {ID: "leave-1", EmployeeID: "emp-1", Status: leave.StatusPending},
	}}
	svc := newTestService(leaveRepo, &fakeAttendanceRepo{}, &fakeEmployeeRepo{}, &fakeSalaryRepo{}, now)

	actor := user.Actor{UserID: "hr-1", Role: user.RoleHR}
	resp, err := svc.Approve(context.Background(), actor, "leave-1")
	require.NoError(t, err)
	assert.Equal(t, "approved", resp.Status)

	_, err = svc.Approve(context.Background(), actor, "leave-1")
	assert.ErrorIs(t, err, leave.ErrAlreadyProcessed)
}

func TestApprove_QuotaEnforcedAtApproval(t *testing.T) {
	leaveRepo := &fakeLeaveRepo{}
	svc := newTestService(leaveRepo, &fakeAttendanceRepo{}, &fakeEmployeeRepo{}, &fakeSalaryRepo{}, time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC))

	// Two 12-day requests, each within the 21-day quota on its own.
	actor := user.Actor{EmployeeID: "emp-1", Role: user.RoleEmployee}
	first, err := svc.Create(context.Background(), actor, leave.CreateRequest{
		StartDate: "2026-05-04",
		EndDate:   "2026-05-15",
	})
	require.NoError(t, err)
	second, err := svc.Create(context.Background(), actor, leave.CreateRequest{
		StartDate: "2026-06-01",
		EndDate:   "2026-06-12",
	})
	require.NoError(t, err)

	reviewer := user.Actor{UserID: "hr-1", Role: user.RoleHR}
	_, err = svc.Approve(context.Background(), reviewer, first.ID)
	require.NoError(t, err)

	// Approving both would put 24 approved days against a 21-day quota.
	_, err = svc.Approve(context.Background(), reviewer, second.ID)
	assert.ErrorIs(t, err, leave.ErrQuotaExceeded)

	stored := leaveRepo.byID[second.ID]
	assert.Equal(t, leave.StatusPending, stored.Status)
}

func TestCreate_YearBoundaryCountsAgainstStartYear(t *testing.T) {
	leaveRepo := &fakeLeaveRepo{}
	svc := newTestService(leaveRepo, &fakeAttendanceRepo{}, &fakeEmployeeRepo{}, &fakeSalaryRepo{}, time.Now())

	resp, err := svc.Create(context.Background(), user.Actor{EmployeeID: "emp-1"}, leave.CreateRequest{
		StartDate: "2026-12-30",
		EndDate:   "2027-01-02",
	})
	require.NoError(t, err)

	assert.Equal(t, 4, resp.Duration)
	require.Len(t, leaveRepo.yearsAsked, 1)
	assert.Equal(t, 2026, leaveRepo.yearsAsked[0])
}

func TestReject_RequiresReason(t *testing.T) {
	leaveRepo := &fakeLeaveRepo{byID: map[string]leave.CasualLeave{
		"leave-1": {ID: "leave-1", EmployeeID: "emp-1", Status: leave.StatusPending},
	}}
	svc := newTestService(leaveRepo, &fakeAttendanceRepo{}, &fakeEmployeeRepo{}, &fakeSalaryRepo{}, time.Now())

	_, err := svc.Reject(context.Background(), user.Actor{UserID: "hr-1"}, leave.RejectRequest{ID: "leave-1"})
	assert.Error(t, err)

	resp, err := svc.Reject(context.Background(), user.Actor{UserID: "hr-1"}, leave.RejectRequest{
		ID:              "leave-1",
		RejectionReason: "coverage gap that week",
	})
	require.NoError(t, err)
	assert.Equal(t, "rejected", resp.Status)
	require.NotNil(t, resp.RejectionReason)
	assert.Equal(t, "coverage gap that week", *resp.RejectionReason)
}

func TestConvertAbsence_PatchesCachedSalary(t *testing.T) {
	now := time.Date(2026, 4, 20, 10, 0, 0, 0, time.UTC)
	absentDate := time.Date(2026, 4, 13, 0, 0, 0, 0, time.UTC)

	attRepo := &fakeAttendanceRepo{byID: map[string]attendance.Attendance{
		"att-1": {ID: "att-1", EmployeeID: "emp-1", Date: absentDate, Status: attendance.StatusAbsent},
	}}
	empRepo := &fakeEmployeeRepo{emp: employee.Employee{
		ID:                   "emp-1",
		AbsencePenalty:       decimal.NewFromInt(100),
		ShorttimeHourPenalty: decimal.NewFromInt(20),
		OvertimeHourSalary:   decimal.NewFromInt(50),
	}}

	base := decimal.NewFromInt(3000)
	salaryRepo := &fakeSalaryRepo{record: &salary.SalaryRecord{
		ID:         "sal-1",
		EmployeeID: "emp-1",
		Year:       2026,
		Month:      4,
		BaseSalary: base,
		Details: salary.Compute(salary.ComputeInput{
			BaseSalary:     base,
			AbsentDays:     2,
			AbsencePenalty: decimal.NewFromInt(100),
		}),
		FinalSalary: decimal.NewFromInt(2800),
	}}
	leaveRepo := &fakeLeaveRepo{}

	svc := newTestService(leaveRepo, attRepo, empRepo, salaryRepo, now)

	resp, err := svc.ConvertAbsence(context.Background(), user.Actor{UserID: "hr-1", Role: user.RoleHR}, "att-1")
	require.NoError(t, err)

	assert.Equal(t, "approved", resp.Status)
	assert.Equal(t, 1, resp.Duration)
	assert.Equal(t, "2026-04-13", resp.StartDate)
	assert.Equal(t, "2026-04-13", resp.EndDate)

	require.Len(t, attRepo.updated, 1)
	assert.Equal(t, attendance.StatusPresent, attRepo.updated[0].Status)
	assert.Equal(t, -1, empRepo.absenceDelta)

	// One absence removed: 3000 - 1*100 = 2900.
	require.Len(t, salaryRepo.updated, 1)
	patched := salaryRepo.updated[0]
	assert.Equal(t, 1, patched.Details.AbsentDays)
	assert.True(t, patched.FinalSalary.Equal(decimal.NewFromInt(2900)), "got %s", patched.FinalSalary)
}

func TestConvertAbsence_NoCachedSalaryIsFine(t *testing.T) {
	now := time.Date(2026, 4, 20, 10, 0, 0, 0, time.UTC)
	absentDate := time.Date(2026, 4, 13, 0, 0, 0, 0, time.UTC)

	attRepo := &fakeAttendanceRepo{byID: map[string]attendance.Attendance{
		"att-1": {ID: "att-1", EmployeeID: "emp-1", Date: absentDate, Status: attendance.StatusAbsent},
	}}
	salaryRepo := &fakeSalaryRepo{}

	svc := newTestService(&fakeLeaveRepo{}, attRepo, &fakeEmployeeRepo{emp: employee.Employee{ID: "emp-1"}}, salaryRepo, now)

	_, err := svc.ConvertAbsence(context.Background(), user.Actor{UserID: "hr-1"}, "att-1")
	require.NoError(t, err)
	assert.Empty(t, salaryRepo.updated)
}

func TestConvertAbsence_NotAbsent(t *testing.T) {
	attRepo := &fakeAttendanceRepo{byID: map[string]attendance.Attendance{
		"att-1": {ID: "att-1", EmployeeID: "emp-1", Status: attendance.StatusPresent},
	}}
	svc := newTestService(&fakeLeaveRepo{}, attRepo, &fakeEmployeeRepo{}, &fakeSalaryRepo{}, time.Now())

	_, err := svc.ConvertAbsence(context.Background(), user.Actor{UserID: "hr-1"}, "att-1")
	assert.ErrorIs(t, err, leave.ErrNotAbsent)
}

func TestConvertAbsence_LeaveAlreadyCoversDate(t *testing.T) {
	absentDate := time.Date(2026, 4, 13, 0, 0, 0, 0, time.UTC)
	attRepo := &fakeAttendanceRepo{byID: map[string]attendance.Attendance{
		"att-1": {ID: "att-1", EmployeeID: "emp-1", Date: absentDate, Status: attendance.StatusAbsent},
	}}
	leaveRepo := &fakeLeaveRepo{covering: true}

	svc := newTestService(leaveRepo, attRepo, &fakeEmployeeRepo{emp: employee.Employee{ID: "emp-1"}}, &fakeSalaryRepo{}, time.Now())

	_, err := svc.ConvertAbsence(context.Background(), user.Actor{UserID: "hr-1"}, "att-1")
	assert.ErrorIs(t, err, leave.ErrLeaveCoversDate)
}

func TestConvertAbsence_NoQuotaRemaining(t *testing.T) {
	absentDate := time.Date(2026, 4, 13, 0, 0, 0, 0, time.UTC)
	attRepo := &fakeAttendanceRepo{byID: map[string]attendance.Attendance{
		"att-1": {ID: "att-1", EmployeeID: "emp-1", Date: absentDate, Status: attendance.StatusAbsent},
	}}
	leaveRepo := &fakeLeaveRepo{usedDays: leave.DefaultYearlyQuota}

	svc := newTestService(leaveRepo, attRepo, &fakeEmployeeRepo{emp: employee.Employee{ID: "emp-1"}}, &fakeSalaryRepo{}, time.Now())

	_, err := svc.ConvertAbsence(context.Background(), user.Actor{UserID: "hr-1"}, "att-1")
	assert.ErrorIs(t, err, leave.ErrNoQuotaRemaining)
}

func TestQuota_RemainingNeverNegative(t *testing.T) {
	leaveRepo := &fakeLeaveRepo{usedDays: 25}
	svc := newTestService(leaveRepo, &fakeAttendanceRepo{}, &fakeEmployeeRepo{}, &fakeSalaryRepo{}, time.Now())

	resp, err := svc.Quota(context.Background(), "emp-1", 2026)
	require.NoError(t, err)

	assert.Equal(t, leave.DefaultYearlyQuota, resp.YearlyQuota)
	assert.Equal(t, 25, resp.UsedDays)
	assert.Equal(t, 0, resp.RemainingDays)
}
