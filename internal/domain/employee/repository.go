package employee

import "context"

// EmployeeRepository is a read-only view of the staff directory. Employee
// records are created and edited elsewhere; payroll only consumes them.
type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	GetActive(ctx context.Context) ([]Employee, error)
}
