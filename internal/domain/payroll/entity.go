package payroll

import (
	"github.com/shopspring/decimal"
)

// SalaryBreakdown - monthly figures derived from annual directory values
type SalaryBreakdown struct {
	BasicMonthly      decimal.Decimal
	AllowancesMonthly decimal.Decimal
	DeductionsMonthly decimal.Decimal

	// Monthly basic + monthly allowances
	GrossEarnings decimal.Decimal

	// Allowance itemization
	HRA              decimal.Decimal
	Conveyance       decimal.Decimal
	SpecialAllowance decimal.Decimal

	// Deduction itemization
	ProvidentFund   decimal.Decimal
	IncomeTax       decimal.Decimal
	ESI             decimal.Decimal
	ProfessionalTax decimal.Decimal

	NetSalary decimal.Decimal
}
