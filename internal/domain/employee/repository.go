package employee

import "context"

type EmployeeRepository interface {
	// List returns every employee in storage order
	List(ctx context.Context) ([]Employee, error)

	// GetByID returns nil when no employee has the id
	GetByID(ctx context.Context, id string) (*Employee, error)

	// Upsert replaces the employee with the same id in place, or appends it
	Upsert(ctx context.Context, employee Employee) error
}
