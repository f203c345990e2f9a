package keyvalue

import (
	"context"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/kvstore"
)

type employeeRepository struct {
	employees *collection[employee.Employee]
}

func NewEmployeeRepository(store kvstore.Store, prefix string) employee.EmployeeRepository {
	return &employeeRepository{
		employees: newCollection(store, prefix, EmployeesKey, func(e employee.Employee) string { return e.ID }),
	}
}

// List implements employee.EmployeeRepository.
func (r *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	return r.employees.list(ctx)
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (*employee.Employee, error) {
	return r.employees.getByID(ctx, id)
}

// Upsert implements employee.EmployeeRepository.
func (r *employeeRepository) Upsert(ctx context.Context, e employee.Employee) error {
	return r.employees.upsert(ctx, e)
}
