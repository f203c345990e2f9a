package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFakeClock(t *testing.T) {
	start := time.Date(2024, 3, 31, 23, 30, 0, 0, time.Local)
	c := Fake(start)

	assert.Equal(t, start, c.Now())
	assert.Equal(t, "2024-03-31", c.Now().Format(DateLayout))

	c.Advance(time.Hour)
	assert.Equal(t, "2024-04-01", c.Now().Format(DateLayout))

	c.Set(start)
	assert.Equal(t, start, c.Now())
}

func TestRealClock(t *testing.T) {
	before := time.Now()
	got := Real().Now()
	assert.False(t, got.Before(before))
}
