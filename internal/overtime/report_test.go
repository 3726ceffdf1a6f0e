package overtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{0, "00:00:00"},
		{8 * time.Hour, "08:00:00"},
		{2*time.Hour + 30*time.Minute, "02:30:00"},
		{17 * time.Hour, "17:00:00"},
		{120 * time.Hour, "120:00:00"},
		{-30 * time.Minute, "-00:30:00"},
		{-(time.Hour + time.Minute + time.Second), "-01:01:01"},
		{59 * time.Second, "00:00:59"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, formatDuration(tc.in), "input %v", tc.in)
	}
}

func TestFormatReport(t *testing.T) {
	days := []ValidRecord{
		{Date: at(2024, 6, 3, 0, 0), Worked: 10 * time.Hour, Overtime: 2 * time.Hour},
		{Date: at(2024, 6, 4, 0, 0), Worked: 7 * time.Hour, Overtime: 0},
	}
	weeks := []WeeklyBucket{
		{Year: 2024, Week: 23, TotalWorked: 17 * time.Hour, Remaining: 23 * time.Hour},
	}

	t.Run("full report without exclusions", func(t *testing.T) {
		want := "=== Daily Overtime ===\n" +
			"[2024-06-03] daily overtime: 02:00:00 | daily worked: 10:00:00\n" +
			"[2024-06-04] daily overtime: 00:00:00 | daily worked: 07:00:00\n" +
			"\n\n=== Weekly Overtime ===\n\n" +
			"[2024-W23] total worked: 17:00:00 | remaining weekly allowance: 23:00:00\n"
		assert.Equal(t, want, formatReport(days, weeks, 0))
	})

	t.Run("exclusion note comes before the daily listing", func(t *testing.T) {
		got := formatReport(days, weeks, 2)
		want := "=== Daily Overtime ===\n" +
			"(note: 2 invalid records excluded)\n\n" +
			"[2024-06-03] daily overtime: 02:00:00 | daily worked: 10:00:00\n" +
			"[2024-06-04] daily overtime: 00:00:00 | daily worked: 07:00:00\n" +
			"\n\n=== Weekly Overtime ===\n\n" +
			"[2024-W23] total worked: 17:00:00 | remaining weekly allowance: 23:00:00\n"
		assert.Equal(t, want, got)
	})

	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, formatReport(days, weeks, 1), formatReport(days, weeks, 1))
	})

	t.Run("no valid records", func(t *testing.T) {
		assert.Equal(t, "no valid attendance records to compute\n", formatReport(nil, nil, 0))
		assert.Equal(t,
			"(note: 3 invalid records excluded)\n\nno valid attendance records to compute\n",
			formatReport(nil, nil, 3))
	})
}
