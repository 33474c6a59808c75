package apod_test

import (
	"testing"
	"time"

	"github.com/jonesrussell/mars-explorer/internal/apod"
	"github.com/stretchr/testify/assert"
)

func TestTargetDate_NoonCutover(t *testing.T) {
	t.Parallel()

	for hour := range 24 {
		now := time.Date(2026, time.October, 19, hour, 30, 0, 0, time.Local)
		want := "2026-10-19"
		if hour < 12 {
			want = "2026-10-18"
		}
		assert.Equal(t, want, apod.TargetDate(now), "hour %d", hour)
	}
}

func TestTargetDate_CrossesMonthAndYear(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2026-09-30", apod.TargetDate(time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2025-12-31", apod.TargetDate(time.Date(2026, time.January, 1, 11, 59, 59, 0, time.UTC)))
	assert.Equal(t, "2024-02-29", apod.TargetDate(time.Date(2024, time.March, 1, 6, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2026-01-01", apod.TargetDate(time.Date(2026, time.January, 1, 12, 0, 0, 0, time.UTC)))
}

func TestTargetDate_DSTDayIsNeverSkipped(t *testing.T) {
	t.Parallel()

	loc, err := time.LoadLocation("America/Toronto")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	// 2026-03-08 is 23 hours long in Toronto.
	now := time.Date(2026, time.March, 9, 0, 30, 0, 0, loc)
	assert.Equal(t, "2026-03-08", apod.TargetDate(now))
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.October, 19, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		in   string
		want bool
	}{
		{"2026-10-18", true},
		{"2026-10-19", false},
		{"1995-06-16", true},
		{"1995-06-15", false},
		{"2026-13-01", false},
		{"yesterday", false},
		{"", false},
	}

	for _, tt := range tests {
		_, ok := apod.ParseDate(tt.in, now)
		assert.Equal(t, tt.want, ok, tt.in)
	}
}
