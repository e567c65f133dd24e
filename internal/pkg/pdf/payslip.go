package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

// PayslipLine is a single labelled amount on the payslip.
type PayslipLine struct {
	Label  string
	Amount decimal.Decimal
}

// PayslipData carries everything the renderer needs.
type PayslipData struct {
	EmployeeName string
	EmployeeID   string
	Position     string
	Department   string
	Period       string // e.g. "March 2024"

	Earnings      []PayslipLine
	GrossEarnings decimal.Decimal
	Deductions    []PayslipLine
	NetSalary     decimal.Decimal
}

// RenderPayslip produces a single-page A4 payslip PDF.
func RenderPayslip(data PayslipData) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()

	doc.SetFont("Arial", "B", 16)
	doc.Cell(0, 10, "Payslip")
	doc.Ln(8)

	doc.SetFont("Arial", "", 11)
	doc.Cell(0, 8, fmt.Sprintf("Period: %s", data.Period))
	doc.Ln(6)
	doc.Cell(0, 8, fmt.Sprintf("Employee: %s (%s)", data.EmployeeName, data.EmployeeID))
	doc.Ln(6)
	if data.Position != "" || data.Department != "" {
		doc.Cell(0, 8, fmt.Sprintf("%s, %s", data.Position, data.Department))
		doc.Ln(6)
	}
	doc.Ln(4)

	writeSection := func(title string, lines []PayslipLine) {
		doc.SetFont("Arial", "B", 12)
		doc.Cell(0, 8, title)
		doc.Ln(7)
		doc.SetFont("Arial", "", 11)
		for _, line := range lines {
			doc.Cell(120, 7, line.Label)
			doc.CellFormat(50, 7, line.Amount.StringFixed(2), "", 0, "R", false, 0, "")
			doc.Ln(6)
		}
		doc.Ln(3)
	}

	writeSection("Earnings", data.Earnings)

	doc.SetFont("Arial", "B", 11)
	doc.Cell(120, 7, "Gross Earnings")
	doc.CellFormat(50, 7, data.GrossEarnings.StringFixed(2), "T", 0, "R", false, 0, "")
	doc.Ln(9)

	writeSection("Deductions", data.Deductions)

	doc.SetFont("Arial", "B", 12)
	doc.Cell(120, 8, "Net Salary")
	doc.CellFormat(50, 8, data.NetSalary.StringFixed(2), "T", 0, "R", false, 0, "")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render payslip: %w", err)
	}
	return buf.Bytes(), nil
}
