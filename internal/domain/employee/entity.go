package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is a directory row. Rows are provisioned externally; this
// service only reads them.
type Employee struct {
	ID         string
	FullName   string
	Email      string
	Position   *string
	Department *string
	IsAdmin    bool

	// Annual salary figures the payroll derivation works from
	BasicSalary decimal.Decimal
	Allowances  decimal.Decimal
	Deductions  decimal.Decimal

	JoinedAt  time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
