package salary

import "github.com/shopspring/decimal"

// ComputeInput is everything the compiler's arithmetic needs: the month's
// attendance aggregates plus the employee's compensation parameters.
type ComputeInput struct {
	BaseSalary    decimal.Decimal
	AbsentDays    int
	LateDays      int
	LatenessHours decimal.Decimal
	OvertimeHours decimal.Decimal

	AbsencePenalty       decimal.Decimal
	ShorttimeHourPenalty decimal.Decimal
	OvertimeHourSalary   decimal.Decimal
}

// Compute is the single arithmetic path for salary derivation. Both the
// monthly compiler and the leave-conversion patch call it, so the two can
// never drift. Monetary results are rounded to 2 decimal places.
func Compute(in ComputeInput) Breakdown {
	absentPenalty := decimal.NewFromInt(int64(in.AbsentDays)).Mul(in.AbsencePenalty).Round(2)
	latePenalty := in.LatenessHours.Mul(in.ShorttimeHourPenalty).Round(2)
	overtimeBonus := in.OvertimeHours.Mul(in.OvertimeHourSalary).Round(2)
	totalDeductions := absentPenalty.Add(latePenalty)
	finalSalary := in.BaseSalary.Sub(totalDeductions).Add(overtimeBonus).Round(2)

	return Breakdown{
		AbsentDays:         in.AbsentDays,
		LateDays:           in.LateDays,
		LatenessHours:      in.LatenessHours,
		OvertimeHours:      in.OvertimeHours,
		AbsentPenaltyTotal: absentPenalty,
		LatePenaltyTotal:   latePenalty,
		OvertimeBonusTotal: overtimeBonus,
		TotalDeductions:    totalDeductions,
		FinalSalary:        finalSalary,
	}
}

// RemoveAbsence recomputes a stored breakdown with one fewer absent day,
// using the same arithmetic as a full compile. Used by leave conversion
// to patch a cached record.
func RemoveAbsence(b Breakdown, base decimal.Decimal, in ComputeInput) Breakdown {
	in.BaseSalary = base
	in.AbsentDays = b.AbsentDays - 1
	if in.AbsentDays < 0 {
		in.AbsentDays = 0
	}
	in.LateDays = b.LateDays
	in.LatenessHours = b.LatenessHours
	in.OvertimeHours = b.OvertimeHours
	return Compute(in)
}
