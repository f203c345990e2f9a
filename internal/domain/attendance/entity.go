package attendance

import (
	"time"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLate    Status = "late"
	StatusLeave   Status = "leave"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLate, StatusLeave:
		return true
	}
	return false
}

// AttendanceRecord is one row per (EmployeeID, Date).
//
// EmployeeName is copied from the employee at check-in and is never
// re-synced if the employee is renamed later.
type AttendanceRecord struct {
	ID            string     `json:"id"`
	EmployeeID    string     `json:"employeeId"`
	EmployeeName  string     `json:"employeeName"`
	Date          string     `json:"date"` // YYYY-MM-DD, local calendar date
	CheckIn       *time.Time `json:"checkIn,omitempty"`
	CheckOut      *time.Time `json:"checkOut,omitempty"`
	Status        Status     `json:"status"`
	WorkingHours  *float64   `json:"workingHours,omitempty"`
	OvertimeHours *float64   `json:"overtimeHours,omitempty"`
	Notes         *string    `json:"notes,omitempty"`
}
