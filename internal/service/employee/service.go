package employee

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/google/uuid"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepo,
	}
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.Employee, error) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

// RegisterEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) RegisterEmployee(ctx context.Context, req employee.RegisterEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	newEmployee := employee.Employee{
		ID:           uuid.Must(uuid.NewV7()).String(),
		Name:         req.Name,
		Position:     req.Position,
		Department:   req.Department,
		Email:        req.Email,
		Phone:        req.Phone,
		HireDate:     req.HireDate,
		WorkingHours: req.WorkingHours,
	}

	if err := s.EmployeeRepository.Upsert(ctx, newEmployee); err != nil {
		return employee.Employee{}, fmt.Errorf("failed to save employee: %w", err)
	}

	slog.Info("Employee registered", "employee_id", newEmployee.ID, "department", newEmployee.Department)
	return newEmployee, nil
}

// SeedSampleDataIfEmpty implements employee.EmployeeService.
func (s *EmployeeServiceImpl) SeedSampleDataIfEmpty(ctx context.Context) (bool, error) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to list employees: %w", err)
	}
	if len(employees) > 0 {
		return false, nil
	}

	sample := employee.SampleEmployee(uuid.Must(uuid.NewV7()).String())
	if err := s.EmployeeRepository.Upsert(ctx, sample); err != nil {
		return false, fmt.Errorf("failed to seed sample employee: %w", err)
	}

	slog.Info("Sample employee created", "employee_id", sample.ID)
	return true, nil
}
