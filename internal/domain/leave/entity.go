package leave

import (
	"time"
)

type LeaveType string

const (
	LeaveTypeSick      LeaveType = "sick"
	LeaveTypeVacation  LeaveType = "vacation"
	LeaveTypePersonal  LeaveType = "personal"
	LeaveTypeEmergency LeaveType = "emergency"
)

func (t LeaveType) Valid() bool {
	switch t {
	case LeaveTypeSick, LeaveTypeVacation, LeaveTypePersonal, LeaveTypeEmergency:
		return true
	}
	return false
}

type LeaveRequestStatus string

const (
	LeaveRequestStatusPending  LeaveRequestStatus = "pending"
	LeaveRequestStatusApproved LeaveRequestStatus = "approved"
	LeaveRequestStatusRejected LeaveRequestStatus = "rejected"
)

// ApproverLabel is recorded as ApprovedBy on every approval or rejection.
const ApproverLabel = "Manager"

// LeaveRequest entity
//
// Status moves from pending to approved or rejected. A processed request
// may be processed again; the last decision wins.
type LeaveRequest struct {
	ID           string             `json:"id"`
	EmployeeID   string             `json:"employeeId"`
	EmployeeName string             `json:"employeeName"`
	Type         LeaveType          `json:"type"`
	StartDate    string             `json:"startDate"` // YYYY-MM-DD
	EndDate      string             `json:"endDate"`   // YYYY-MM-DD
	Days         int                `json:"days"`
	Reason       string             `json:"reason"`
	Status       LeaveRequestStatus `json:"status"`
	SubmittedAt  time.Time          `json:"submittedAt"`
	ApprovedBy   *string            `json:"approvedBy,omitempty"`
	ApprovedAt   *time.Time         `json:"approvedAt,omitempty"`
}

// InclusiveDays counts calendar days from start to end, both included.
func InclusiveDays(start, end time.Time) int {
	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	end = time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	// Unix seconds rather than end.Sub, which saturates past ~292 years
	return int((end.Unix()-start.Unix())/86400) + 1
}
