package payroll

// Policy constants for derived-value computation.
const (
	ExtraHourMultiplier      = 1.25
	LatePenaltyRatePerMinute = 0.01
	StandardMonthlyHours     = 160.0
)

// ComputeInputs are the raw fields a payslip's derived values depend on.
type ComputeInputs struct {
	BaseSalary         float64
	ExtraHours         float64
	LateMinutes        float64
	TransportAllowance float64
	VacationPay        float64
	Deductions         float64
	Contributions      float64
}

// DerivedValues carries the four computed totals plus the two raw
// pass-through values, so callers can persist a complete record.
type DerivedValues struct {
	ExtraHours      float64
	ExtraPay        float64
	LateMinutes     float64
	LatePenalty     float64
	TotalIncome     float64
	TotalDeductions float64
	NetTotal        float64
}

// ComputeDerivedValues is pure. Negative results are not rejected; the
// caller decides what a negative net means.
func ComputeDerivedValues(in ComputeInputs) DerivedValues {
	hourlyRate := in.BaseSalary / StandardMonthlyHours
	extraPay := hourlyRate * ExtraHourMultiplier * in.ExtraHours

	perMinuteRate := hourlyRate / 60
	latePenalty := perMinuteRate * LatePenaltyRatePerMinute * in.LateMinutes

	totalIncome := in.BaseSalary + extraPay + in.TransportAllowance + in.VacationPay
	totalDeductions := latePenalty + in.Deductions
	netTotal := totalIncome - totalDeductions + in.Contributions

	return DerivedValues{
		ExtraHours:      in.ExtraHours,
		ExtraPay:        extraPay,
		LateMinutes:     in.LateMinutes,
		LatePenalty:     latePenalty,
		TotalIncome:     totalIncome,
		TotalDeductions: totalDeductions,
		NetTotal:        netTotal,
	}
}

// computeInputsFromPayslip extracts the stored computation inputs, used as
// the base view when an update patch only touches some of them.
func computeInputsFromPayslip(p *Payslip) ComputeInputs {
	return ComputeInputs{
		BaseSalary:         p.BaseSalary,
		ExtraHours:         p.ExtraHours,
		LateMinutes:        p.LateMinutes,
		TransportAllowance: p.TransportAllowance,
		VacationPay:        p.VacationPay,
		Deductions:         p.Deductions,
		Contributions:      p.Contributions,
	}
}
