package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalculateWorkingHours(t *testing.T) {
	in := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, 8.0, CalculateWorkingHours(in, in.Add(8*time.Hour)))
	assert.Equal(t, 8.5, CalculateWorkingHours(in, in.Add(8*time.Hour+30*time.Minute)))
	// 20 minutes is 0.333... hours
	assert.Equal(t, 0.33, CalculateWorkingHours(in, in.Add(20*time.Minute)))
	assert.Equal(t, 0.0, CalculateWorkingHours(in, in))
}

func TestCalculateOvertimeHours(t *testing.T) {
	assert.Equal(t, 1.5, CalculateOvertimeHours(9.5, StandardWorkingHours))
	assert.Equal(t, 0.0, CalculateOvertimeHours(7, StandardWorkingHours))
	assert.Equal(t, 0.0, CalculateOvertimeHours(8, StandardWorkingHours))
	assert.Equal(t, 2.0, CalculateOvertimeHours(8, 6))
}

func TestIsLate(t *testing.T) {
	at := func(h, m int) time.Time { return time.Date(2024, 3, 1, h, m, 0, 0, time.UTC) }

	assert.False(t, IsLate(at(8, 59), ""))
	assert.False(t, IsLate(at(9, 0), DefaultStartTime))
	assert.True(t, IsLate(at(9, 1), DefaultStartTime))
	assert.True(t, IsLate(at(8, 31), "08:30"))
}
