package salary

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCompute_MonthlyBreakdown(t *testing.T) {
	// basic_salary=5000, absence_penalty=50, shorttime_hour_penalty=20,
	// overtime_hour_salary=30; 2 absent days, 3 lateness hours, 4 approved
	// overtime hours.
	in := ComputeInput{
		BaseSalary:           dec("5000"),
		AbsentDays:           2,
		LateDays:             2,
		LatenessHours:        dec("3"),
		OvertimeHours:        dec("4"),
		AbsencePenalty:       dec("50"),
		ShorttimeHourPenalty: dec("20"),
		OvertimeHourSalary:   dec("30"),
	}

	b := Compute(in)

	assert.Equal(t, "100.00", b.AbsentPenaltyTotal.StringFixed(2))
	assert.Equal(t, "60.00", b.LatePenaltyTotal.StringFixed(2))
	assert.Equal(t, "160.00", b.TotalDeductions.StringFixed(2))
	assert.Equal(t, "120.00", b.OvertimeBonusTotal.StringFixed(2))
	assert.Equal(t, "4960.00", b.FinalSalary.StringFixed(2))
}

func TestCompute_Deterministic(t *testing.T) {
	in := ComputeInput{
		BaseSalary:           dec("3500.75"),
		AbsentDays:           1,
		LateDays:             3,
		LatenessHours:        dec("2.33"),
		OvertimeHours:        dec("1.5"),
		AbsencePenalty:       dec("40"),
		ShorttimeHourPenalty: dec("15.5"),
		OvertimeHourSalary:   dec("25"),
	}

	first := Compute(in)
	second := Compute(in)

	assert.True(t, first.FinalSalary.Equal(second.FinalSalary),
		"recomputing with unchanged inputs must yield an identical final salary")
	assert.Equal(t, first, second)
}

func TestCompute_NoActivity(t *testing.T) {
	in := ComputeInput{
		BaseSalary:           dec("4200"),
		AbsencePenalty:       dec("50"),
		ShorttimeHourPenalty: dec("20"),
		OvertimeHourSalary:   dec("30"),
		LatenessHours:        decimal.Zero,
		OvertimeHours:        decimal.Zero,
	}

	b := Compute(in)

	assert.True(t, b.TotalDeductions.IsZero())
	assert.True(t, b.OvertimeBonusTotal.IsZero())
	assert.Equal(t, "4200.00", b.FinalSalary.StringFixed(2))
}

func TestCompute_RoundsToTwoDecimals(t *testing.T) {
	in := ComputeInput{
		BaseSalary:           dec("1000"),
		LateDays:             1,
		LatenessHours:        dec("0.33"),
		AbsencePenalty:       dec("50"),
		ShorttimeHourPenalty: dec("19.99"),
		OvertimeHourSalary:   dec("30"),
		OvertimeHours:        decimal.Zero,
	}

	b := Compute(in)

	// 0.33 × 19.99 = 6.5967 → 6.60
	assert.Equal(t, "6.60", b.LatePenaltyTotal.StringFixed(2))
	assert.Equal(t, "993.40", b.FinalSalary.StringFixed(2))
}

func TestRemoveAbsence_MatchesFullRecompute(t *testing.T) {
	params := ComputeInput{
		AbsencePenalty:       dec("50"),
		ShorttimeHourPenalty: dec("20"),
		OvertimeHourSalary:   dec("30"),
	}
	base := dec("5000")

	full := params
	full.BaseSalary = base
	full.AbsentDays = 2
	full.LateDays = 1
	full.LatenessHours = dec("1.5")
	full.OvertimeHours = dec("2")
	compiled := Compute(full)

	// Patch path: remove one absence from the compiled breakdown.
	patched := RemoveAbsence(compiled, base, params)

	// Reference path: full recompute with one fewer absent day.
	fewer := full
	fewer.AbsentDays = 1
	reference := Compute(fewer)

	assert.Equal(t, reference, patched,
		"single-absence patch must be arithmetically identical to a full recompute")
	assert.Equal(t, compiled.AbsentPenaltyTotal.Sub(patched.AbsentPenaltyTotal).StringFixed(2), "50.00")
}

func TestRemoveAbsence_FloorsAtZero(t *testing.T) {
	params := ComputeInput{
		AbsencePenalty:       dec("50"),
		ShorttimeHourPenalty: dec("20"),
		OvertimeHourSalary:   dec("30"),
	}
	base := dec("5000")

	full := params
	full.BaseSalary = base
	full.LatenessHours = decimal.Zero
	full.OvertimeHours = decimal.Zero
	compiled := Compute(full) // zero absent days

	patched := RemoveAbsence(compiled, base, params)
	assert.Equal(t, 0, patched.AbsentDays)
	assert.True(t, patched.FinalSalary.Equal(compiled.FinalSalary))
}
