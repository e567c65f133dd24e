package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeMonthlyBreakdown(t *testing.T) {
	t.Parallel()

	b := ComputeMonthlyBreakdown(
		decimal.NewFromInt(1_200_000),
		decimal.NewFromInt(240_000),
		decimal.NewFromInt(120_000),
	)

	assert.True(t, decimal.NewFromInt(100_000).Equal(b.BasicMonthly), "basic: %s", b.BasicMonthly)
	assert.True(t, decimal.NewFromInt(20_000).Equal(b.AllowancesMonthly), "allowances: %s", b.AllowancesMonthly)
	assert.True(t, decimal.NewFromInt(10_000).Equal(b.DeductionsMonthly), "deductions: %s", b.DeductionsMonthly)
	assert.True(t, decimal.NewFromInt(120_000).Equal(b.GrossEarnings), "gross: %s", b.GrossEarnings)

	assert.True(t, decimal.NewFromInt(10_000).Equal(b.HRA), "hra: %s", b.HRA)
	assert.True(t, decimal.NewFromInt(6_000).Equal(b.Conveyance), "conveyance: %s", b.Conveyance)
	assert.True(t, decimal.NewFromInt(4_000).Equal(b.SpecialAllowance), "special: %s", b.SpecialAllowance)

	assert.True(t, decimal.NewFromInt(4_000).Equal(b.ProvidentFund), "pf: %s", b.ProvidentFund)
	assert.True(t, decimal.NewFromInt(5_000).Equal(b.IncomeTax), "income tax: %s", b.IncomeTax)
	assert.True(t, decimal.NewFromInt(1_000).Equal(b.ESI), "esi: %s", b.ESI)
	assert.True(t, decimal.NewFromInt(200).Equal(b.ProfessionalTax), "prof tax: %s", b.ProfessionalTax)

	assert.True(t, decimal.NewFromInt(110_000).Equal(b.NetSalary), "net: %s", b.NetSalary)
}

func TestComputeMonthlyBreakdown_AllowanceSplitSumsToTotal(t *testing.T) {
	t.Parallel()

	b := ComputeMonthlyBreakdown(
		decimal.NewFromInt(900_000),
		decimal.NewFromInt(180_000),
		decimal.NewFromInt(60_000),
	)

	split := b.HRA.Add(b.Conveyance).Add(b.SpecialAllowance)
	assert.True(t, b.AllowancesMonthly.Equal(split), "split %s != total %s", split, b.AllowancesMonthly)
}

func TestComputeMonthlyBreakdown_ZeroSalary(t *testing.T) {
	t.Parallel()

	b := ComputeMonthlyBreakdown(decimal.Zero, decimal.Zero, decimal.Zero)

	assert.True(t, b.NetSalary.IsZero())
	assert.True(t, b.HRA.IsZero())
	assert.True(t, b.ProvidentFund.IsZero())
	// Flat itemization stays flat regardless of salary
	assert.True(t, decimal.NewFromInt(200).Equal(b.ProfessionalTax))
}
