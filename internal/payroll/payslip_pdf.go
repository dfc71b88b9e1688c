package payroll

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"
)

// Renderer produces the payslip document and returns a public locator for
// it. Implementations must not mutate the payslip.
type Renderer interface {
	Render(p *Payslip) (string, error)
}

type pdfRenderer struct {
	storageDir    string
	publicBaseURL string
}

func NewPDFRenderer(storageDir, publicBaseURL string) Renderer {
	return &pdfRenderer{
		storageDir:    storageDir,
		publicBaseURL: publicBaseURL,
	}
}

func (r *pdfRenderer) Render(p *Payslip) (string, error) {
	if err := os.MkdirAll(r.storageDir, 0o755); err != nil {
		return "", err
	}

	fileName := fmt.Sprintf("nomina_%s_%s.pdf", p.EmployeeID, p.Period)
	filePath := filepath.Join(r.storageDir, fileName)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Comprobante de Nomina")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Empleado: %s (%s)", p.EmployeeName, p.EmployeeID))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Periodo: %s", p.Period))
	pdf.Ln(7)
	if p.Cargo != nil {
		pdf.Cell(0, 8, fmt.Sprintf("Cargo: %s", *p.Cargo))
		pdf.Ln(7)
	}
	pdf.Cell(0, 8, fmt.Sprintf("Tipo de contrato: %s", p.ContractType))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Ingresos")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Salario base: %.2f", p.BaseSalary))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Horas extras (%.2f h): %.2f", p.ExtraHours, p.ExtraPay))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Auxilio de transporte: %.2f", p.TransportAllowance))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Vacaciones: %.2f", p.VacationPay))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Total ingresos: %.2f", p.TotalIncome))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Deducciones")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Descuento por retrasos (%.0f min): %.2f", p.LateMinutes, p.LatePenalty))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Otras deducciones: %.2f", p.Deductions))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Total deducciones: %.2f", p.TotalDeductions))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, fmt.Sprintf("Neto a pagar: %.2f", p.NetTotal))

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", err
	}

	return r.publicBaseURL + "/" + fileName, nil
}
