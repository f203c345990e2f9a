package leave

import "context"

type LeaveRequestRepository interface {
	// List returns every leave request in storage order
	List(ctx context.Context) ([]LeaveRequest, error)

	// GetByID returns nil when no request has the id
	GetByID(ctx context.Context, id string) (*LeaveRequest, error)

	// Update applies fn to the request with id and stores it, atomically with
	// respect to other writers. Returns nil without writing when id is unknown.
	Update(ctx context.Context, id string, fn func(request *LeaveRequest) error) (*LeaveRequest, error)

	// Upsert replaces the request with the same id in place, or appends it
	Upsert(ctx context.Context, request LeaveRequest) error
}
