package payroll

import (
	"github.com/shopspring/decimal"
)

var (
	twelve = decimal.NewFromInt(12)

	// Allowance split
	hraRatio        = decimal.NewFromFloat(0.5)
	conveyanceRatio = decimal.NewFromFloat(0.3)
	specialRatio    = decimal.NewFromFloat(0.2)

	// Deduction split
	pfRatio        = decimal.NewFromFloat(0.4)
	incomeTaxRatio = decimal.NewFromFloat(0.5)
	esiRatio       = decimal.NewFromFloat(0.1)

	// Flat monthly professional tax. Itemization only: the net formula
	// works from the monthly deduction total.
	professionalTax = decimal.NewFromInt(200)
)

// ComputeMonthlyBreakdown derives one month of pay from annual basic,
// allowances and deductions. Net = monthly basic + monthly allowances
// - monthly deductions; the itemized components only explain where the
// totals go.
func ComputeMonthlyBreakdown(basic, allowances, deductions decimal.Decimal) SalaryBreakdown {
	basicMonthly := basic.Div(twelve)
	allowancesMonthly := allowances.Div(twelve)
	deductionsMonthly := deductions.Div(twelve)
	grossEarnings := basicMonthly.Add(allowancesMonthly)

	return SalaryBreakdown{
		BasicMonthly:      basicMonthly,
		AllowancesMonthly: allowancesMonthly,
		DeductionsMonthly: deductionsMonthly,
		GrossEarnings:     grossEarnings,

		HRA:              allowancesMonthly.Mul(hraRatio),
		Conveyance:       allowancesMonthly.Mul(conveyanceRatio),
		SpecialAllowance: allowancesMonthly.Mul(specialRatio),

		ProvidentFund:   deductionsMonthly.Mul(pfRatio),
		IncomeTax:       deductionsMonthly.Mul(incomeTaxRatio),
		ESI:             deductionsMonthly.Mul(esiRatio),
		ProfessionalTax: professionalTax,

		NetSalary: grossEarnings.Sub(deductionsMonthly),
	}
}
