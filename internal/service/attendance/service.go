package attendance

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/clock"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/export"
	"github.com/google/uuid"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	clock clock.Clock
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository, clk clock.Clock) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		clock:                clk,
	}
}

// CheckIn implements attendance.AttendanceService.
//
// A second check-in on the same day reuses the record but overwrites its
// check-in time and resets the status to present.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.AttendanceRecord, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceRecord{}, err
	}

	now := a.clock.Now()
	today := now.Format(clock.DateLayout)

	repeat := false
	record, err := a.AttendanceRepository.UpsertByEmployeeAndDate(ctx, req.EmployeeID, today,
		func(existing *attendance.AttendanceRecord) (*attendance.AttendanceRecord, error) {
			if existing != nil {
				repeat = true
				existing.CheckIn = &now
				existing.Status = attendance.StatusPresent
				return existing, nil
			}
			return &attendance.AttendanceRecord{
				ID:           uuid.Must(uuid.NewV7()).String(),
				EmployeeID:   req.EmployeeID,
				EmployeeName: req.EmployeeName,
				Date:         today,
				CheckIn:      &now,
				Status:       attendance.StatusPresent,
			}, nil
		})
	if err != nil {
		return attendance.AttendanceRecord{}, fmt.Errorf("failed to save attendance: %w", err)
	}

	slog.Info("Employee checked in",
		"employee_id", record.EmployeeID,
		"record_id", record.ID,
		"date", record.Date,
		"repeat", repeat,
	)
	return *record, nil
}

// CheckOut implements attendance.AttendanceService.
//
// Working and overtime hours are left untouched; see attendance.CalculateWorkingHours.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (*attendance.AttendanceRecord, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := a.clock.Now()
	today := now.Format(clock.DateLayout)

	record, err := a.AttendanceRepository.UpsertByEmployeeAndDate(ctx, req.EmployeeID, today,
		func(existing *attendance.AttendanceRecord) (*attendance.AttendanceRecord, error) {
			if existing == nil || existing.CheckIn == nil {
				return nil, nil
			}
			checkOut := now
			// checkOut never precedes checkIn on the same record
			if checkOut.Before(*existing.CheckIn) {
				checkOut = *existing.CheckIn
			}
			existing.CheckOut = &checkOut
			return existing, nil
		})
	if err != nil {
		return nil, fmt.Errorf("failed to save attendance: %w", err)
	}
	if record == nil {
		slog.Debug("Check-out ignored, no check-in today", "employee_id", req.EmployeeID, "date", today)
		return nil, nil
	}

	slog.Info("Employee checked out", "employee_id", record.EmployeeID, "record_id", record.ID, "date", record.Date)
	return record, nil
}

// ListRecords implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListRecords(ctx context.Context, filter attendance.RecordFilter) ([]attendance.AttendanceRecord, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	records, err := a.AttendanceRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	filtered := make([]attendance.AttendanceRecord, 0, len(records))
	for _, r := range records {
		if filter.Match(r) {
			filtered = append(filtered, r)
		}
	}
	SortByDateDesc(filtered)
	return filtered, nil
}

// ExportRecords implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ExportRecords(ctx context.Context, filter attendance.RecordFilter, w io.Writer) error {
	records, err := a.ListRecords(ctx, filter)
	if err != nil {
		return err
	}

	table := export.Table{
		Sheet:  "Attendance",
		Header: []string{"Date", "Employee", "Check In", "Check Out", "Status", "Working Hours", "Notes"},
		Rows:   make([][]any, 0, len(records)),
	}
	for _, r := range records {
		table.Rows = append(table.Rows, []any{
			r.Date,
			r.EmployeeName,
			clockOrDash(r.CheckIn),
			clockOrDash(r.CheckOut),
			string(r.Status),
			hoursOrDash(r.WorkingHours),
			valueOrDash(r.Notes),
		})
	}

	if err := export.WriteXLSX(w, table); err != nil {
		return fmt.Errorf("failed to export attendance: %w", err)
	}
	return nil
}

// SortByDateDesc orders records newest date first, keeping storage order
// among records of the same date.
func SortByDateDesc(records []attendance.AttendanceRecord) {
	slices.SortStableFunc(records, func(x, y attendance.AttendanceRecord) int {
		return cmp.Compare(y.Date, x.Date)
	})
}

func clockOrDash(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format("15:04")
}

func hoursOrDash(h *float64) string {
	if h == nil {
		return "-"
	}
	return strconv.FormatFloat(*h, 'f', -1, 64)
}

func valueOrDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}
