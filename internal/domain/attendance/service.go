package attendance

import (
	"context"
	"io"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// CheckIn creates or overwrites today's record for the employee
	CheckIn(ctx context.Context, req CheckInRequest) (AttendanceRecord, error)

	// CheckOut stamps today's record. Returns nil when there is no record
	// for today or it has no check-in.
	CheckOut(ctx context.Context, req CheckOutRequest) (*AttendanceRecord, error)

	// ListRecords returns the history sorted by date, newest first
	ListRecords(ctx context.Context, filter RecordFilter) ([]AttendanceRecord, error)

	// ExportRecords writes the filtered history as an XLSX workbook
	ExportRecords(ctx context.Context, filter RecordFilter, w io.Writer) error
}
