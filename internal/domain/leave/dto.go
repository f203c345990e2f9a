package leave

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

type SubmitLeaveRequest struct {
	EmployeeID   string    `json:"employeeId"`
	EmployeeName string    `json:"employeeName"`
	Type         LeaveType `json:"type"`
	StartDate    string    `json:"startDate"`
	EndDate      string    `json:"endDate"`
	Reason       string    `json:"reason"`

	// Parsed by Validate
	Start time.Time `json:"-"`
	End   time.Time `json:"-"`
}

func (r *SubmitLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	r.EmployeeID = strings.TrimSpace(r.EmployeeID)
	r.EmployeeName = strings.TrimSpace(r.EmployeeName)
	r.Reason = strings.TrimSpace(r.Reason)

	if validator.IsEmpty(r.EmployeeID) {
		errs.Add("employeeId", "employeeId is required")
	}

	if r.Type == "" {
		r.Type = LeaveTypeSick
	} else if !r.Type.Valid() {
		errs.Add("type", "type must be one of sick, vacation, personal, emergency")
	}

	var startOK, endOK bool
	if validator.IsEmpty(r.StartDate) {
		errs.Add("startDate", "startDate is required")
	} else if r.Start, startOK = validator.IsValidDate(r.StartDate); !startOK {
		errs.Add("startDate", "startDate must be in YYYY-MM-DD format")
	}

	if validator.IsEmpty(r.EndDate) {
		errs.Add("endDate", "endDate is required")
	} else if r.End, endOK = validator.IsValidDate(r.EndDate); !endOK {
		errs.Add("endDate", "endDate must be in YYYY-MM-DD format")
	}

	if startOK && endOK && r.Start.After(r.End) {
		errs.Add("endDate", "startDate must not be after endDate")
	}

	if validator.IsEmpty(r.Reason) {
		errs.Add("reason", "reason is required")
	}

	return errs.Err()
}
