package employee

import (
	"strings"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

type RegisterEmployeeRequest struct {
	Name         string       `json:"name"`
	Position     string       `json:"position"`
	Department   string       `json:"department"`
	Email        string       `json:"email"`
	Phone        string       `json:"phone"`
	HireDate     string       `json:"hireDate"`
	WorkingHours WorkingHours `json:"workingHours"`
}

func (r *RegisterEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)

	if validator.IsEmpty(r.Name) {
		errs.Add("name", "name is required")
	}

	if validator.IsEmpty(r.Email) {
		errs.Add("email", "email is required")
	} else if !validator.IsValidEmail(r.Email) {
		errs.Add("email", "invalid email format")
	}

	if validator.IsEmpty(r.HireDate) {
		errs.Add("hireDate", "hireDate is required")
	} else if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs.Add("hireDate", "hireDate must be in YYYY-MM-DD format")
	}

	// Default to the standard office window when none is given
	if r.WorkingHours.Start == "" && r.WorkingHours.End == "" {
		r.WorkingHours = WorkingHours{Start: "09:00", End: "18:00"}
	}
	startOK := validator.IsValidClock(r.WorkingHours.Start)
	endOK := validator.IsValidClock(r.WorkingHours.End)
	if !startOK {
		errs.Add("workingHours.start", "start must be in HH:MM format")
	}
	if !endOK {
		errs.Add("workingHours.end", "end must be in HH:MM format")
	}
	if startOK && endOK && r.WorkingHours.Start >= r.WorkingHours.End {
		errs.Add("workingHours.end", "end must be after start")
	}

	return errs.Err()
}
