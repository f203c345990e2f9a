package keyvalue

import (
	"context"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/kvstore"
)

type attendanceRepository struct {
	records *collection[attendance.AttendanceRecord]
}

func NewAttendanceRepository(store kvstore.Store, prefix string) attendance.AttendanceRepository {
	return &attendanceRepository{
		records: newCollection(store, prefix, RecordsKey, func(r attendance.AttendanceRecord) string { return r.ID }),
	}
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context) ([]attendance.AttendanceRecord, error) {
	return a.records.list(ctx)
}

// FindByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) FindByEmployeeAndDate(ctx context.Context, employeeID string, date string) (*attendance.AttendanceRecord, error) {
	return a.records.find(ctx, func(r attendance.AttendanceRecord) bool {
		return r.EmployeeID == employeeID && r.Date == date
	})
}

// UpsertByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) UpsertByEmployeeAndDate(
	ctx context.Context,
	employeeID string,
	date string,
	fn func(existing *attendance.AttendanceRecord) (*attendance.AttendanceRecord, error),
) (*attendance.AttendanceRecord, error) {
	return a.records.mutate(ctx, func(r attendance.AttendanceRecord) bool {
		return r.EmployeeID == employeeID && r.Date == date
	}, fn)
}

// Upsert implements attendance.AttendanceRepository.
func (a *attendanceRepository) Upsert(ctx context.Context, record attendance.AttendanceRecord) error {
	return a.records.upsert(ctx, record)
}
