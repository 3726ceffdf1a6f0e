package overtime

import (
	"sort"
	"time"
)

// dailyStats は実働時間と日次超過を返す。
// 実働 = (退勤 - 出勤) - 休憩控除。控除は無条件なので負になり得る。
// 超過は負をゼロに丸めるが、実働の方はそのまま返す（週次合算の扱いはポリシー側）
func dailyStats(start, end time.Time) (worked, overtime time.Duration) {
	worked = end.Sub(start) - BreakDeduction
	overtime = worked - DailyThreshold
	if overtime < 0 {
		overtime = 0
	}
	return worked, overtime
}

// weeklyStats は有効レコードを ISO週年+週番号で束ねて合算する。
// 入力が空なら空スライス。週の昇順（年→週）で返す
func weeklyStats(valid []ValidRecord) []WeeklyBucket {
	totals := map[WeekKey]time.Duration{}
	for _, v := range valid {
		year, week := v.Date.ISOWeek()
		totals[WeekKey{Year: year, Week: week}] += v.Worked
	}

	buckets := make([]WeeklyBucket, 0, len(totals))
	for key, total := range totals {
		remaining := WeeklyAllowance - total
		if remaining < 0 {
			remaining = 0
		}
		buckets = append(buckets, WeeklyBucket{
			Year:        key.Year,
			Week:        key.Week,
			TotalWorked: total,
			Remaining:   remaining,
		})
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].Year != buckets[j].Year {
			return buckets[i].Year < buckets[j].Year
		}
		return buckets[i].Week < buckets[j].Week
	})
	return buckets
}
