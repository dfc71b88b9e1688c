package events

import "time"

const PayslipGeneratedTopic = "conta.nomina.payslip.generated.v1"

type PayslipGeneratedEvent struct {
	EventType     string    `json:"event_type"`
	PayslipID     string    `json:"payslip_id"`
	EmployeeEmail string    `json:"employee_email"`
	EmployeeName  string    `json:"employee_name"`
	Period        string    `json:"period"`
	PDFURL        string    `json:"pdf_url"`
	OccurredAt    time.Time `json:"occurred_at"`
}
