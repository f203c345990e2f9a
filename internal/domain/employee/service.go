package employee

import "context"

type EmployeeService interface {
	ListEmployees(ctx context.Context) ([]Employee, error)

	// RegisterEmployee validates the request and stores a new employee
	RegisterEmployee(ctx context.Context, req RegisterEmployeeRequest) (Employee, error)

	// SeedSampleDataIfEmpty writes one sample employee when none exist and
	// reports whether it did
	SeedSampleDataIfEmpty(ctx context.Context) (bool, error)
}
