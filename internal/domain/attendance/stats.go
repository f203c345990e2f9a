package attendance

// AttendanceStats is derived from a set of records and never stored.
type AttendanceStats struct {
	TotalDays           int     `json:"totalDays"`
	PresentDays         int     `json:"presentDays"`
	AbsentDays          int     `json:"absentDays"`
	LateDays            int     `json:"lateDays"`
	LeaveDays           int     `json:"leaveDays"`
	TotalWorkingHours   float64 `json:"totalWorkingHours"`
	AverageWorkingHours float64 `json:"averageWorkingHours"`
	OvertimeHours       float64 `json:"overtimeHours"`
}

// ComputeStats aggregates records. Records without hours count toward
// TotalDays but add nothing to the hour sums.
func ComputeStats(records []AttendanceRecord) AttendanceStats {
	var stats AttendanceStats
	stats.TotalDays = len(records)

	for _, r := range records {
		switch r.Status {
		case StatusPresent:
			stats.PresentDays++
		case StatusAbsent:
			stats.AbsentDays++
		case StatusLate:
			stats.LateDays++
		case StatusLeave:
			stats.LeaveDays++
		}
		if r.WorkingHours != nil {
			stats.TotalWorkingHours += *r.WorkingHours
		}
		if r.OvertimeHours != nil {
			stats.OvertimeHours += *r.OvertimeHours
		}
	}

	if stats.TotalDays > 0 {
		stats.AverageWorkingHours = stats.TotalWorkingHours / float64(stats.TotalDays)
	}

	return stats
}
