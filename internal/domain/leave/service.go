package leave

import "context"

type LeaveService interface {
	ListLeaves(ctx context.Context) ([]LeaveRequest, error)

	// SubmitLeave stores a new pending request
	SubmitLeave(ctx context.Context, req SubmitLeaveRequest) (LeaveRequest, error)

	// UpdateLeave edits an existing request, keeping its id, status and
	// submission time. Returns nil when the id is unknown.
	UpdateLeave(ctx context.Context, id string, req SubmitLeaveRequest) (*LeaveRequest, error)

	// ApproveLeave returns nil when the id is unknown
	ApproveLeave(ctx context.Context, id string) (*LeaveRequest, error)

	// RejectLeave returns nil when the id is unknown
	RejectLeave(ctx context.Context, id string) (*LeaveRequest, error)
}
