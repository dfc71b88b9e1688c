package payroll

import (
	"time"

	"github.com/google/uuid"
)

// Contract types recognized by Colombian labour law, stored as-is.
const (
	ContractObraLabor           = "obra_labor"
	ContractPrestacionServicios = "prestacion_servicios"
	ContractFijo                = "fijo"
	ContractIndefinido          = "indefinido"
	ContractAprendiz            = "aprendiz"
)

// Payslip is one nómina record for one employee for one period. The
// (employee_id, period) pair is unique; the composite index backs the
// application-level duplicate check.
type Payslip struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	IDUser uuid.UUID `gorm:"column:id_user;type:uuid;not null;index"`

	// Employee
	EmployeeID   string  `gorm:"size:20;not null;index:idx_employee_period,unique"`
	EmployeeName string  `gorm:"size:255;not null"`
	Email        string  `gorm:"size:255;not null"`
	Cargo        *string `gorm:"size:255"`

	// Contract and period
	ContractType string `gorm:"size:30;not null"`
	Period       string `gorm:"size:7;not null;index:idx_employee_period,unique"` // YYYY-MM

	// Monetary inputs
	BaseSalary         float64 `gorm:"type:numeric(12,2);not null"`
	TransportAllowance float64 `gorm:"type:numeric(12,2);not null;default:0"`
	VacationPay        float64 `gorm:"type:numeric(12,2);not null;default:0"`
	Deductions         float64 `gorm:"type:numeric(12,2);not null;default:0"`
	Contributions      float64 `gorm:"type:numeric(12,2);not null;default:0"`

	HealthContribution    float64 `gorm:"type:numeric(12,2);not null"`
	PensionContribution   float64 `gorm:"type:numeric(12,2);not null"`
	SolidarityPensionFund float64 `gorm:"type:numeric(12,2);not null;default:0"`

	// Time worked
	DaysWorked      float64 `gorm:"type:numeric(5,2);not null"`
	NightHours      float64 `gorm:"type:numeric(5,2);not null;default:0"`
	ExtraDayHours   float64 `gorm:"type:numeric(5,2);not null;default:0"`
	ExtraNightHours float64 `gorm:"type:numeric(5,2);not null;default:0"`
	SundayHours     float64 `gorm:"type:numeric(5,2);not null;default:0"`
	HolidayHours    float64 `gorm:"type:numeric(5,2);not null;default:0"`
	ExtraHours      float64 `gorm:"type:numeric(12,2);not null;default:0"`
	LateMinutes     float64 `gorm:"type:numeric(12,2);not null;default:0"`

	// Derived, recomputed whenever a computation input changes
	ExtraPay        float64 `gorm:"type:numeric(12,2);not null;default:0"`
	LatePenalty     float64 `gorm:"type:numeric(12,2);not null;default:0"`
	TotalIncome     float64 `gorm:"type:numeric(12,2);not null;default:0"`
	TotalDeductions float64 `gorm:"type:numeric(12,2);not null;default:0"`
	NetTotal        float64 `gorm:"type:numeric(12,2);not null"`

	// Lifecycle
	IsPaid         bool       `gorm:"not null;default:false"`
	PaymentDate    *time.Time `gorm:"index"`
	PDFURL         *string    `gorm:"column:pdf_url"`
	PDFGeneratedAt *time.Time `gorm:"column:pdf_generated_at"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Payslip) TableName() string {
	return "nominas"
}

func ValidContractType(v string) bool {
	switch v {
	case ContractObraLabor, ContractPrestacionServicios, ContractFijo, ContractIndefinido, ContractAprendiz:
		return true
	default:
		return false
	}
}
