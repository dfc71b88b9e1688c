package payroll

import "time"

type CreatePayslipRequest struct {
	ContractType string  `json:"contract_type" binding:"required,oneof=obra_labor prestacion_servicios fijo indefinido aprendiz"`
	Period       string  `json:"period" binding:"required"`
	EmployeeID   string  `json:"employee_id" binding:"required"`
	EmployeeName string  `json:"employee_name" binding:"required"`
	Email        string  `json:"email" binding:"required,email"`
	Cargo        *string `json:"cargo"`

	BaseSalary         float64 `json:"salario_base" binding:"required,gt=0"`
	TransportAllowance float64 `json:"transporte" binding:"gte=0"`
	VacationPay        float64 `json:"vacaciones" binding:"gte=0"`
	Deductions         float64 `json:"deductions" binding:"gte=0"`
	Contributions      float64 `json:"contributions" binding:"gte=0"`

	HealthContribution    float64 `json:"health_contribution" binding:"gte=0"`
	PensionContribution   float64 `json:"pension_contribution" binding:"gte=0"`
	SolidarityPensionFund float64 `json:"solidarity_pension_fund" binding:"gte=0"`

	DaysWorked      float64 `json:"days_worked" binding:"required,gte=0"`
	NightHours      float64 `json:"night_hours" binding:"gte=0"`
	ExtraDayHours   float64 `json:"extra_day_hours" binding:"gte=0"`
	ExtraNightHours float64 `json:"extra_night_hours" binding:"gte=0"`
	SundayHours     float64 `json:"sunday_hours" binding:"gte=0"`
	HolidayHours    float64 `json:"holiday_hours" binding:"gte=0"`
	ExtraHours      float64 `json:"horas_extras" binding:"gte=0"`
	LateMinutes     float64 `json:"retrasos" binding:"gte=0"`
}

// UpdatePayslipRequest is an enumerated patch: only non-nil fields are
// applied. JSON keys outside this set are ignored by construction, which is
// the documented contract (not an error).
type UpdatePayslipRequest struct {
	ContractType *string `json:"contract_type" binding:"omitempty,oneof=obra_labor prestacion_servicios fijo indefinido aprendiz"`
	EmployeeName *string `json:"employee_name"`
	Email        *string `json:"email" binding:"omitempty,email"`
	Cargo        *string `json:"cargo"`

	BaseSalary         *float64 `json:"salario_base" binding:"omitempty,gt=0"`
	TransportAllowance *float64 `json:"transporte" binding:"omitempty,gte=0"`
	VacationPay        *float64 `json:"vacaciones" binding:"omitempty,gte=0"`
	Deductions         *float64 `json:"deductions" binding:"omitempty,gte=0"`
	Contributions      *float64 `json:"contributions" binding:"omitempty,gte=0"`

	HealthContribution    *float64 `json:"health_contribution" binding:"omitempty,gte=0"`
	PensionContribution   *float64 `json:"pension_contribution" binding:"omitempty,gte=0"`
	SolidarityPensionFund *float64 `json:"solidarity_pension_fund" binding:"omitempty,gte=0"`

	DaysWorked      *float64 `json:"days_worked" binding:"omitempty,gte=0"`
	NightHours      *float64 `json:"night_hours" binding:"omitempty,gte=0"`
	ExtraDayHours   *float64 `json:"extra_day_hours" binding:"omitempty,gte=0"`
	ExtraNightHours *float64 `json:"extra_night_hours" binding:"omitempty,gte=0"`
	SundayHours     *float64 `json:"sunday_hours" binding:"omitempty,gte=0"`
	HolidayHours    *float64 `json:"holiday_hours" binding:"omitempty,gte=0"`
	ExtraHours      *float64 `json:"horas_extras" binding:"omitempty,gte=0"`
	LateMinutes     *float64 `json:"retrasos" binding:"omitempty,gte=0"`
}

// touchesComputation reports whether the patch changes any derived-value
// input, in which case all four totals must be recomputed.
func (r UpdatePayslipRequest) touchesComputation() bool {
	return r.BaseSalary != nil ||
		r.ExtraHours != nil ||
		r.LateMinutes != nil ||
		r.TransportAllowance != nil ||
		r.VacationPay != nil ||
		r.Deductions != nil ||
		r.Contributions != nil
}

type PayslipResponse struct {
	ID           string  `json:"id"`
	IDUser       string  `json:"id_user"`
	ContractType string  `json:"contract_type"`
	Period       string  `json:"period"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	Email        string  `json:"email"`
	Cargo        *string `json:"cargo,omitempty"`

	BaseSalary         float64 `json:"salario_base"`
	TransportAllowance float64 `json:"transporte"`
	VacationPay        float64 `json:"vacaciones"`
	Deductions         float64 `json:"deductions"`
	Contributions      float64 `json:"contributions"`

	HealthContribution    float64 `json:"health_contribution"`
	PensionContribution   float64 `json:"pension_contribution"`
	SolidarityPensionFund float64 `json:"solidarity_pension_fund"`

	DaysWorked      float64 `json:"days_worked"`
	NightHours      float64 `json:"night_hours"`
	ExtraDayHours   float64 `json:"extra_day_hours"`
	ExtraNightHours float64 `json:"extra_night_hours"`
	SundayHours     float64 `json:"sunday_hours"`
	HolidayHours    float64 `json:"holiday_hours"`
	ExtraHours      float64 `json:"horas_extras"`
	LateMinutes     float64 `json:"retrasos"`

	ExtraPay        float64 `json:"extra_pay"`
	LatePenalty     float64 `json:"late_penalty"`
	TotalIncome     float64 `json:"total_ingresos"`
	TotalDeductions float64 `json:"total_deducciones"`
	NetTotal        float64 `json:"total_neto"`

	IsPaid         bool    `json:"is_paid"`
	PaymentDate    *string `json:"payment_date,omitempty"`
	PDFURL         *string `json:"pdf_url,omitempty"`
	PDFGeneratedAt *string `json:"pdf_generated_at,omitempty"`

	CreatedAt string `json:"created_at"`
}

type ListPayslipsFilterRequest struct {
	Months int `form:"months"`
}

func mapToResponse(p Payslip) PayslipResponse {
	resp := PayslipResponse{
		ID:           p.ID.String(),
		IDUser:       p.IDUser.String(),
		ContractType: p.ContractType,
		Period:       p.Period,
		EmployeeID:   p.EmployeeID,
		EmployeeName: p.EmployeeName,
		Email:        p.Email,
		Cargo:        p.Cargo,

		BaseSalary:         p.BaseSalary,
		TransportAllowance: p.TransportAllowance,
		VacationPay:        p.VacationPay,
		Deductions:         p.Deductions,
		Contributions:      p.Contributions,

		HealthContribution:    p.HealthContribution,
		PensionContribution:   p.PensionContribution,
		SolidarityPensionFund: p.SolidarityPensionFund,

		DaysWorked:      p.DaysWorked,
		NightHours:      p.NightHours,
		ExtraDayHours:   p.ExtraDayHours,
		ExtraNightHours: p.ExtraNightHours,
		SundayHours:     p.SundayHours,
		HolidayHours:    p.HolidayHours,
		ExtraHours:      p.ExtraHours,
		LateMinutes:     p.LateMinutes,

		ExtraPay:        p.ExtraPay,
		LatePenalty:     p.LatePenalty,
		TotalIncome:     p.TotalIncome,
		TotalDeductions: p.TotalDeductions,
		NetTotal:        p.NetTotal,

		IsPaid:    p.IsPaid,
		PDFURL:    p.PDFURL,
		CreatedAt: p.CreatedAt.Format(timeLayout),
	}

	if p.PaymentDate != nil {
		v := p.PaymentDate.Format(timeLayout)
		resp.PaymentDate = &v
	}
	if p.PDFGeneratedAt != nil {
		v := p.PDFGeneratedAt.Format(timeLayout)
		resp.PDFGeneratedAt = &v
	}

	return resp
}

const timeLayout = time.RFC3339

func mapToListResponse(payslips []Payslip) []PayslipResponse {
	resp := make([]PayslipResponse, len(payslips))
	for i, p := range payslips {
		resp[i] = mapToResponse(p)
	}
	return resp
}
