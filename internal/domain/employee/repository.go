package employee

import (
	"context"
)

// EmployeeRepository defines read access to the employee directory.
type EmployeeRepository interface {
	// GetByID retrieves an employee by ID
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByEmail retrieves an employee by email
	GetByEmail(ctx context.Context, email string) (Employee, error)

	// List retrieves all employees
	List(ctx context.Context) ([]Employee, error)
}
