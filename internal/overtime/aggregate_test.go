package overtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.Local)
}

func TestDailyStats(t *testing.T) {
	cases := []struct {
		name       string
		start, end time.Time
		worked     time.Duration
		overtime   time.Duration
	}{
		{"exact threshold", at(2024, 6, 3, 9, 0), at(2024, 6, 3, 18, 0), 8 * time.Hour, 0},
		{"two hours over", at(2024, 6, 3, 9, 0), at(2024, 6, 3, 20, 0), 10 * time.Hour, 2 * time.Hour},
		{"sub break interval goes negative", at(2024, 6, 3, 9, 0), at(2024, 6, 3, 9, 30), -30 * time.Minute, 0},
		{"half day", at(2024, 6, 3, 9, 0), at(2024, 6, 3, 13, 0), 3 * time.Hour, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			worked, ot := dailyStats(tc.start, tc.end)
			assert.Equal(t, tc.worked, worked)
			assert.Equal(t, tc.overtime, ot)
		})
	}
}

func rec(date time.Time, worked time.Duration) ValidRecord {
	return ValidRecord{Date: date, Worked: worked}
}

func TestWeeklyStats(t *testing.T) {
	t.Run("empty input yields empty output", func(t *testing.T) {
		assert.Empty(t, weeklyStats(nil))
	})

	t.Run("same iso week sums", func(t *testing.T) {
		buckets := weeklyStats([]ValidRecord{
			rec(at(2024, 6, 3, 0, 0), 8*time.Hour),
			rec(at(2024, 6, 4, 0, 0), 9*time.Hour),
		})
		require.Len(t, buckets, 1)
		assert.Equal(t, 2024, buckets[0].Year)
		assert.Equal(t, 23, buckets[0].Week)
		assert.Equal(t, 17*time.Hour, buckets[0].TotalWorked)
		assert.Equal(t, 23*time.Hour, buckets[0].Remaining)
	})

	t.Run("allowance floors at zero", func(t *testing.T) {
		buckets := weeklyStats([]ValidRecord{
			rec(at(2024, 6, 3, 0, 0), 45*time.Hour),
		})
		require.Len(t, buckets, 1)
		assert.Equal(t, time.Duration(0), buckets[0].Remaining)
	})

	t.Run("week spanning new year stays one bucket", func(t *testing.T) {
		// 2024-12-31 も 2025-01-02 も ISO では 2025 年第1週
		buckets := weeklyStats([]ValidRecord{
			rec(at(2024, 12, 31, 0, 0), 8*time.Hour),
			rec(at(2025, 1, 2, 0, 0), 8*time.Hour),
		})
		require.Len(t, buckets, 1)
		assert.Equal(t, 2025, buckets[0].Year)
		assert.Equal(t, 1, buckets[0].Week)
		assert.Equal(t, 16*time.Hour, buckets[0].TotalWorked)
	})

	t.Run("same week number in different years stays apart", func(t *testing.T) {
		buckets := weeklyStats([]ValidRecord{
			rec(at(2025, 6, 2, 0, 0), 9*time.Hour),
			rec(at(2024, 6, 3, 0, 0), 8*time.Hour),
		})
		require.Len(t, buckets, 2)
		assert.Equal(t, 2024, buckets[0].Year)
		assert.Equal(t, 2025, buckets[1].Year)
		assert.Equal(t, 23, buckets[0].Week)
		assert.Equal(t, 23, buckets[1].Week)
	})

	t.Run("negative worked reduces the weekly total", func(t *testing.T) {
		buckets := weeklyStats([]ValidRecord{
			rec(at(2024, 6, 3, 0, 0), 8*time.Hour),
			rec(at(2024, 6, 4, 0, 0), -30*time.Minute),
		})
		require.Len(t, buckets, 1)
		assert.Equal(t, 7*time.Hour+30*time.Minute, buckets[0].TotalWorked)
		assert.Equal(t, 32*time.Hour+30*time.Minute, buckets[0].Remaining)
	})

	t.Run("negative total raises remaining above the allowance", func(t *testing.T) {
		buckets := weeklyStats([]ValidRecord{
			rec(at(2024, 6, 3, 0, 0), -10*time.Hour),
		})
		require.Len(t, buckets, 1)
		assert.Equal(t, -10*time.Hour, buckets[0].TotalWorked)
		assert.Equal(t, 50*time.Hour, buckets[0].Remaining)
	})
}
