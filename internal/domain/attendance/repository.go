package attendance

import (
	"context"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// List returns every record in storage order
	List(ctx context.Context) ([]AttendanceRecord, error)

	// FindByEmployeeAndDate returns nil when the employee has no record on date
	FindByEmployeeAndDate(ctx context.Context, employeeID string, date string) (*AttendanceRecord, error)

	// UpsertByEmployeeAndDate hands the employee's record on date (nil when
	// none) to fn and stores the record fn returns, atomically with respect to
	// other writers. A nil record from fn writes nothing and is returned as nil.
	UpsertByEmployeeAndDate(
		ctx context.Context,
		employeeID string,
		date string,
		fn func(existing *AttendanceRecord) (*AttendanceRecord, error),
	) (*AttendanceRecord, error)

	// Upsert replaces the record with the same id in place, or appends it
	Upsert(ctx context.Context, record AttendanceRecord) error
}
