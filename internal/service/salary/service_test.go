package salary

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/staffhub/staffhub-backend-go/internal/domain/attendance"
	"github.com/staffhub/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub/staffhub-backend-go/internal/domain/salary"
	"github.com/staffhub/staffhub-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSalaryRepo struct {
	salary.SalaryRepository
	replaced []salary.SalaryRecord
	byPeriod map[string]*salary.SalaryRecord
}

func periodKey(employeeID string, year, month int) string {
	return employeeID + "|" + time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}

func (f *fakeSalaryRepo) Replace(ctx context.Context, rec salary.SalaryRecord) (salary.SalaryRecord, error) {
	rec.ID = "sal-1"
	f.replaced = append(f.replaced, rec)
	return rec, nil
}

func (f *fakeSalaryRepo) GetByPeriod(ctx context.Context, employeeID string, year, month int) (*salary.SalaryRecord, error) {
	return f.byPeriod[periodKey(employeeID, year, month)], nil
}

type fakeAttendanceRepo struct {
	attendance.AttendanceRepository
	byMonth map[string][]attendance.Attendance
	err     error
}

func (f *fakeAttendanceRepo) ListByEmployeeMonth(ctx context.Context, employeeID string, year int, month time.Month) ([]attendance.Attendance, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byMonth[periodKey(employeeID, year, int(month))], nil
}

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	byID   map[string]employee.Employee
	active []employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := f.byID[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) GetActive(ctx context.Context) ([]employee.Employee, error) {
	return f.active, nil
}

func decPtr(d decimal.Decimal) *decimal.Decimal { return &d }

func compensatedEmployee(id string) employee.Employee {
	return employee.Employee{
		ID:                   id,
		BasicSalary:          decPtr(decimal.NewFromInt(3000)),
		AbsencePenalty:       decimal.NewFromInt(100),
		ShorttimeHourPenalty: decimal.NewFromInt(20),
		OvertimeHourSalary:   decimal.NewFromInt(50),
	}
}

func TestCompile_AggregatesMonth(t *testing.T) {
	emp := compensatedEmployee("emp-1")
	month := []attendance.Attendance{
		{Status: attendance.StatusAbsent},
		{Status: attendance.StatusLate, LatenessHours: decimal.NewFromFloat(0.75)},
		{Status: attendance.StatusPresent, OvertimeHours: decimal.NewFromInt(2), OvertimeApproved: true},
		// Requested but never approved: must not count.
		{Status: attendance.StatusPresent, OvertimeHours: decimal.NewFromInt(3)},
	}

	salaryRepo := &fakeSalaryRepo{}
	attRepo := &fakeAttendanceRepo{byMonth: map[string][]attendance.Attendance{
		periodKey("emp-1", 2026, 4): month,
	}}
	empRepo := &fakeEmployeeRepo{byID: map[string]employee.Employee{"emp-1": emp}}

	svc := NewSalaryService(salaryRepo, attRepo, empRepo)

	resp, err := svc.Compile(context.Background(), salary.CompileRequest{EmployeeID: "emp-1", Year: 2026, Month: 4})
	require.NoError(t, err)

	require.Len(t, salaryRepo.replaced, 1)
	rec := salaryRepo.replaced[0]
	assert.Equal(t, 1, rec.Details.AbsentDays)
	assert.Equal(t, 1, rec.Details.LateDays)
	assert.True(t, rec.Details.LatenessHours.Equal(decimal.NewFromFloat(0.75)))
	assert.True(t, rec.Details.OvertimeHours.Equal(decimal.NewFromInt(2)))

	// 3000 - 100 (absence) - 0.75*20 (lateness) + 2*50 (overtime) = 2985.
	assert.Equal(t, "2985.00", resp.FinalSalary)
	assert.Equal(t, "100.00", resp.Details.AbsentPenaltyTotal)
	assert.Equal(t, "15.00", resp.Details.LatePenaltyTotal)
	assert.Equal(t, "100.00", resp.Details.OvertimeBonusTotal)
}

func TestCompile_EmptyMonthPaysBase(t *testing.T) {
	salaryRepo := &fakeSalaryRepo{}
	attRepo := &fakeAttendanceRepo{byMonth: map[string][]attendance.Attendance{}}
	empRepo := &fakeEmployeeRepo{byID: map[string]employee.Employee{"emp-1": compensatedEmployee("emp-1")}}

	svc := NewSalaryService(salaryRepo, attRepo, empRepo)

	resp, err := svc.Compile(context.Background(), salary.CompileRequest{EmployeeID: "emp-1", Year: 2026, Month: 4})
	require.NoError(t, err)

	assert.Equal(t, "3000.00", resp.FinalSalary)
	assert.Equal(t, 0, resp.Details.AbsentDays)
}

func TestCompile_BasicSalaryNotSet(t *testing.T) {
	emp := compensatedEmployee("emp-1")
	emp.BasicSalary = nil

	svc := NewSalaryService(&fakeSalaryRepo{}, &fakeAttendanceRepo{}, &fakeEmployeeRepo{byID: map[string]employee.Employee{"emp-1": emp}})

	_, err := svc.Compile(context.Background(), salary.CompileRequest{EmployeeID: "emp-1", Year: 2026, Month: 4})
	assert.ErrorIs(t, err, employee.ErrBasicSalaryNotSet)
}

func TestCompileAll_SkipsUnconfiguredAndContinuesPastFailures(t *testing.T) {
	ok1 := compensatedEmployee("emp-1")
	noSalary := compensatedEmployee("emp-2")
	noSalary.BasicSalary = nil
	failing := compensatedEmployee("emp-3")
	ok2 := compensatedEmployee("emp-4")

	salaryRepo := &fakeSalaryRepo{}
	empRepo := &fakeEmployeeRepo{
		byID: map[string]employee.Employee{
			"emp-1": ok1,
			"emp-3": failing,
			"emp-4": ok2,
		},
		active: []employee.Employee{ok1, noSalary, failing, ok2},
	}

	// emp-3's month load fails; the batch must carry on.
	svc := NewSalaryService(salaryRepo, &selectiveFailRepo{failFor: "emp-3", err: errors.New("storage unavailable")}, empRepo)

	compiled, err := svc.CompileAll(context.Background(), 2026, 4)
	require.NoError(t, err)

	assert.Equal(t, 2, compiled)
	assert.Len(t, salaryRepo.replaced, 2)
}

type selectiveFailRepo struct {
	attendance.AttendanceRepository
	failFor string
	err     error
}

func (f *selectiveFailRepo) ListByEmployeeMonth(ctx context.Context, employeeID string, year int, month time.Month) ([]attendance.Attendance, error) {
	if employeeID == f.failFor {
		return nil, f.err
	}
	return nil, nil
}

func TestGetMy_NoRecordForPeriod(t *testing.T) {
	svc := NewSalaryService(&fakeSalaryRepo{}, &fakeAttendanceRepo{}, &fakeEmployeeRepo{})

	_, err := svc.GetMy(context.Background(), user.Actor{EmployeeID: "emp-1"}, 2026, 4)
	assert.ErrorIs(t, err, salary.ErrSalaryRecordNotFound)
}

func TestGetMy_ReturnsRecord(t *testing.T) {
	rec := &salary.SalaryRecord{
		ID:          "sal-1",
		EmployeeID:  "emp-1",
		Year:        2026,
		Month:       4,
		BaseSalary:  decimal.NewFromInt(3000),
		FinalSalary: decimal.NewFromInt(2985),
	}
	salaryRepo := &fakeSalaryRepo{byPeriod: map[string]*salary.SalaryRecord{
		periodKey("emp-1", 2026, 4): rec,
	}}

	svc := NewSalaryService(salaryRepo, &fakeAttendanceRepo{}, &fakeEmployeeRepo{})

	resp, err := svc.GetMy(context.Background(), user.Actor{EmployeeID: "emp-1"}, 2026, 4)
	require.NoError(t, err)

	assert.Equal(t, "sal-1", resp.ID)
	assert.Equal(t, "2985.00", resp.FinalSalary)
}
