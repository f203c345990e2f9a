package leave

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/clock"
	"github.com/google/uuid"
)

type LeaveServiceImpl struct {
	leave.LeaveRequestRepository
	employee.EmployeeRepository
	clock clock.Clock
}

func NewLeaveService(
	leaveRequestRepo leave.LeaveRequestRepository,
	employeeRepo employee.EmployeeRepository,
	clk clock.Clock,
) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRequestRepository: leaveRequestRepo,
		EmployeeRepository:     employeeRepo,
		clock:                  clk,
	}
}

// ListLeaves implements leave.LeaveService.
func (l *LeaveServiceImpl) ListLeaves(ctx context.Context) ([]leave.LeaveRequest, error) {
	leaves, err := l.LeaveRequestRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return leaves, nil
}

// SubmitLeave implements leave.LeaveService.
func (l *LeaveServiceImpl) SubmitLeave(ctx context.Context, req leave.SubmitLeaveRequest) (leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	employeeName, err := l.resolveEmployeeName(ctx, req)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	request := leave.LeaveRequest{
		ID:           uuid.Must(uuid.NewV7()).String(),
		EmployeeID:   req.EmployeeID,
		EmployeeName: employeeName,
		Type:         req.Type,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Days:         leave.InclusiveDays(req.Start, req.End),
		Reason:       req.Reason,
		Status:       leave.LeaveRequestStatusPending,
		SubmittedAt:  l.clock.Now(),
	}

	if err := l.LeaveRequestRepository.Upsert(ctx, request); err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to save leave request: %w", err)
	}

	slog.Info("Leave request submitted",
		"leave_id", request.ID,
		"employee_id", request.EmployeeID,
		"type", request.Type,
		"days", request.Days,
	)
	return request, nil
}

// UpdateLeave implements leave.LeaveService.
func (l *LeaveServiceImpl) UpdateLeave(ctx context.Context, id string, req leave.SubmitLeaveRequest) (*leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	employeeName, err := l.resolveEmployeeName(ctx, req)
	if err != nil {
		return nil, err
	}

	request, err := l.LeaveRequestRepository.Update(ctx, id, func(request *leave.LeaveRequest) error {
		request.EmployeeID = req.EmployeeID
		request.EmployeeName = employeeName
		request.Type = req.Type
		request.StartDate = req.StartDate
		request.EndDate = req.EndDate
		request.Days = leave.InclusiveDays(req.Start, req.End)
		request.Reason = req.Reason
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save leave request: %w", err)
	}
	if request == nil {
		return nil, nil
	}

	slog.Info("Leave request updated", "leave_id", request.ID, "employee_id", request.EmployeeID)
	return request, nil
}

// ApproveLeave implements leave.LeaveService.
func (l *LeaveServiceImpl) ApproveLeave(ctx context.Context, id string) (*leave.LeaveRequest, error) {
	return l.decide(ctx, id, leave.LeaveRequestStatusApproved)
}

// RejectLeave implements leave.LeaveService.
func (l *LeaveServiceImpl) RejectLeave(ctx context.Context, id string) (*leave.LeaveRequest, error) {
	return l.decide(ctx, id, leave.LeaveRequestStatusRejected)
}

// decide records an approval or rejection. Already processed requests are
// processed again without complaint.
func (l *LeaveServiceImpl) decide(ctx context.Context, id string, status leave.LeaveRequestStatus) (*leave.LeaveRequest, error) {
	now := l.clock.Now()
	approver := leave.ApproverLabel
	var previous leave.LeaveRequestStatus

	request, err := l.LeaveRequestRepository.Update(ctx, id, func(request *leave.LeaveRequest) error {
		previous = request.Status
		request.Status = status
		request.ApprovedAt = &now
		request.ApprovedBy = &approver
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save leave request: %w", err)
	}
	if request == nil {
		slog.Debug("Leave decision ignored, unknown request", "leave_id", id, "status", status)
		return nil, nil
	}

	slog.Info("Leave request processed", "leave_id", request.ID, "from", previous, "to", status)
	return request, nil
}

// resolveEmployeeName uses the name from the request, falling back to the
// employee record when the caller left it blank.
func (l *LeaveServiceImpl) resolveEmployeeName(ctx context.Context, req leave.SubmitLeaveRequest) (string, error) {
	if req.EmployeeName != "" {
		return req.EmployeeName, nil
	}

	emp, err := l.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return "", fmt.Errorf("failed to get employee: %w", err)
	}
	if emp == nil {
		return "", nil
	}
	return emp.Name, nil
}
