package payroll

import (
	"context"
)

// PayrollService derives pay figures from the employee directory.
type PayrollService interface {
	// GetMySalary returns the caller's annual and monthly figures
	GetMySalary(ctx context.Context) (SalaryResponse, error)

	// GetBreakdown returns the caller's itemized monthly breakdown
	GetBreakdown(ctx context.Context, req PeriodRequest) (BreakdownResponse, error)

	// GeneratePayslip renders and stores the caller's payslip PDF,
	// returning its URL
	GeneratePayslip(ctx context.Context, req PeriodRequest) (PayslipResponse, error)
}
