package attendance

import (
	"math"
	"time"
)

const (
	// StandardWorkingHours is the daily hours beyond which time counts as overtime.
	StandardWorkingHours = 8.0
	// DefaultStartTime is the start of the working day when none is configured.
	DefaultStartTime = "09:00"
)

// CalculateWorkingHours returns the hours between checkIn and checkOut,
// rounded to two decimals.
//
// Check-out does not call this; records only carry hours when a caller
// sets them explicitly.
func CalculateWorkingHours(checkIn, checkOut time.Time) float64 {
	hours := checkOut.Sub(checkIn).Hours()
	return math.Round(hours*100) / 100
}

// CalculateOvertimeHours returns the hours worked beyond standardHours, never negative.
func CalculateOvertimeHours(workingHours, standardHours float64) float64 {
	return math.Max(0, workingHours-standardHours)
}

// IsLate reports whether checkIn's wall-clock time, in its own location,
// is after startTime ("HH:MM").
func IsLate(checkIn time.Time, startTime string) bool {
	if startTime == "" {
		startTime = DefaultStartTime
	}
	return checkIn.Format("15:04") > startTime
}
