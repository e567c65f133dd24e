package payroll

import (
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type SalaryResponse struct {
	EmployeeID        string          `json:"employee_id"`
	BasicAnnual       decimal.Decimal `json:"basic_annual"`
	AllowancesAnnual  decimal.Decimal `json:"allowances_annual"`
	DeductionsAnnual  decimal.Decimal `json:"deductions_annual"`
	BasicMonthly      decimal.Decimal `json:"basic_monthly"`
	AllowancesMonthly decimal.Decimal `json:"allowances_monthly"`
	DeductionsMonthly decimal.Decimal `json:"deductions_monthly"`
	NetMonthly        decimal.Decimal `json:"net_monthly"`
}

type BreakdownResponse struct {
	EmployeeID string `json:"employee_id"`
	Month      int    `json:"month"`
	Year       int    `json:"year"`

	BasicMonthly decimal.Decimal `json:"basic_monthly"`

	Allowances map[string]decimal.Decimal `json:"allowances"`
	Deductions map[string]decimal.Decimal `json:"deductions"`

	TotalAllowances decimal.Decimal `json:"total_allowances"`
	GrossEarnings   decimal.Decimal `json:"gross_earnings"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	NetSalary       decimal.Decimal `json:"net_salary"`
}

type PayslipResponse struct {
	EmployeeID string `json:"employee_id"`
	Month      int    `json:"month"`
	Year       int    `json:"year"`
	URL        string `json:"url"`
}

// PeriodRequest selects a payroll month.
type PeriodRequest struct {
	Month int
	Year  int
}

func (r *PeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be a valid year"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
