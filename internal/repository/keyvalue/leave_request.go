package keyvalue

import (
	"context"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/kvstore"
)

type leaveRequestRepository struct {
	leaves *collection[leave.LeaveRequest]
}

func NewLeaveRequestRepository(store kvstore.Store, prefix string) leave.LeaveRequestRepository {
	return &leaveRequestRepository{
		leaves: newCollection(store, prefix, LeavesKey, func(l leave.LeaveRequest) string { return l.ID }),
	}
}

// List implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) List(ctx context.Context) ([]leave.LeaveRequest, error) {
	return r.leaves.list(ctx)
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) GetByID(ctx context.Context, id string) (*leave.LeaveRequest, error) {
	return r.leaves.getByID(ctx, id)
}

// Update implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) Update(ctx context.Context, id string, fn func(request *leave.LeaveRequest) error) (*leave.LeaveRequest, error) {
	return r.leaves.mutate(ctx, func(l leave.LeaveRequest) bool { return l.ID == id }, func(existing *leave.LeaveRequest) (*leave.LeaveRequest, error) {
		if existing == nil {
			return nil, nil
		}
		if err := fn(existing); err != nil {
			return nil, err
		}
		existing.ID = id
		return existing, nil
	})
}

// Upsert implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) Upsert(ctx context.Context, request leave.LeaveRequest) error {
	return r.leaves.upsert(ctx, request)
}
