package dashboard

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/clock"
	attendanceService "github.com/cmlabs-hris/attendance-backend-go/internal/service/attendance"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	attendance.AttendanceRepository
	leave.LeaveRequestRepository
	clock clock.Clock
}

func NewDashboardService(
	attendanceRepo attendance.AttendanceRepository,
	leaveRequestRepo leave.LeaveRequestRepository,
	clk clock.Clock,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		AttendanceRepository:   attendanceRepo,
		LeaveRequestRepository: leaveRequestRepo,
		clock:                  clk,
	}
}

// GetDashboard implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context) (*dashboard.DashboardData, error) {
	var (
		records []attendance.AttendanceRecord
		leaves  []leave.LeaveRequest
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		data, err := s.AttendanceRepository.List(gCtx)
		if err != nil {
			return fmt.Errorf("failed to list attendance records: %w", err)
		}
		records = data
		return nil
	})

	g.Go(func() error {
		data, err := s.LeaveRequestRepository.List(gCtx)
		if err != nil {
			return fmt.Errorf("failed to list leave requests: %w", err)
		}
		leaves = data
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	today := now.Format(clock.DateLayout)
	month := now.Format("2006-01")

	todayAttendance := make([]attendance.AttendanceRecord, 0)
	monthly := make([]attendance.AttendanceRecord, 0)
	for _, r := range records {
		if r.Date == today {
			todayAttendance = append(todayAttendance, r)
		}
		if strings.HasPrefix(r.Date, month) {
			monthly = append(monthly, r)
		}
	}

	recent := slices.Clone(records)
	attendanceService.SortByDateDesc(recent)
	if len(recent) > dashboard.RecentRecordsLimit {
		recent = recent[:dashboard.RecentRecordsLimit]
	}
	if recent == nil {
		recent = make([]attendance.AttendanceRecord, 0)
	}

	pending := make([]leave.LeaveRequest, 0)
	for _, l := range leaves {
		if l.Status == leave.LeaveRequestStatusPending {
			pending = append(pending, l)
		}
	}
	slices.SortStableFunc(pending, func(x, y leave.LeaveRequest) int {
		return cmp.Compare(y.SubmittedAt.UnixNano(), x.SubmittedAt.UnixNano())
	})

	return &dashboard.DashboardData{
		TodayAttendance: todayAttendance,
		RecentRecords:   recent,
		PendingLeaves:   pending,
		MonthlyStats:    attendance.ComputeStats(monthly),
	}, nil
}
