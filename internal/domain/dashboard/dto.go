package dashboard

import (
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/leave"
)

// RecentRecordsLimit caps DashboardData.RecentRecords.
const RecentRecordsLimit = 10

// DashboardData is a read-model rebuilt on every request.
type DashboardData struct {
	TodayAttendance []attendance.AttendanceRecord `json:"todayAttendance"`
	RecentRecords   []attendance.AttendanceRecord `json:"recentRecords"` // newest date first
	PendingLeaves   []leave.LeaveRequest          `json:"pendingLeaves"` // newest submission first
	MonthlyStats    attendance.AttendanceStats    `json:"monthlyStats"`  // current local month
}
