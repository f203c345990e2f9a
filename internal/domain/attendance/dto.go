package attendance

import (
	"strings"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

type CheckInRequest struct {
	EmployeeID   string `json:"employeeId"`
	EmployeeName string `json:"employeeName"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	r.EmployeeID = strings.TrimSpace(r.EmployeeID)
	if validator.IsEmpty(r.EmployeeID) {
		errs.Add("employeeId", "employeeId is required")
	}

	return errs.Err()
}

type CheckOutRequest struct {
	EmployeeID string `json:"employeeId"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	r.EmployeeID = strings.TrimSpace(r.EmployeeID)
	if validator.IsEmpty(r.EmployeeID) {
		errs.Add("employeeId", "employeeId is required")
	}

	return errs.Err()
}

// RecordFilter narrows the attendance history. Zero values match everything.
type RecordFilter struct {
	Search string // case-insensitive substring of the employee name
	Status Status
	Date   string // YYYY-MM-DD
}

func (f *RecordFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != "" && !f.Status.Valid() {
		errs.Add("status", "status must be one of present, absent, late, leave")
	}
	if f.Date != "" {
		if _, ok := validator.IsValidDate(f.Date); !ok {
			errs.Add("date", "date must be in YYYY-MM-DD format")
		}
	}

	return errs.Err()
}

// Match reports whether r passes the filter.
func (f RecordFilter) Match(r AttendanceRecord) bool {
	if f.Search != "" && !strings.Contains(strings.ToLower(r.EmployeeName), strings.ToLower(f.Search)) {
		return false
	}
	if f.Status != "" && r.Status != f.Status {
		return false
	}
	if f.Date != "" && r.Date != f.Date {
		return false
	}
	return true
}
