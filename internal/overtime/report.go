package overtime

import (
	"fmt"
	"strings"
	"time"
)

// formatDuration は HH:MM:SS（各2桁ゼロ埋め、100時間以上は桁が伸びる）。
// 負の値は符号を先頭に付けて絶対値を分解する
func formatDuration(d time.Duration) string {
	total := int64(d / time.Second)
	sign := ""
	if total < 0 {
		sign = "-"
		total = -total
	}
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%s%02d:%02d:%02d", sign, h, m, s)
}

// formatReport は日次・週次の集計を決定的なテキストに整形する。
// 除外件数の注記は日次一覧の前に一度だけ出す
func formatReport(days []ValidRecord, weeks []WeeklyBucket, excluded int) string {
	var b strings.Builder

	if len(days) == 0 {
		if excluded > 0 {
			fmt.Fprintf(&b, "(note: %d invalid records excluded)\n\n", excluded)
		}
		b.WriteString("no valid attendance records to compute\n")
		return b.String()
	}

	b.WriteString("=== Daily Overtime ===\n")
	if excluded > 0 {
		fmt.Fprintf(&b, "(note: %d invalid records excluded)\n\n", excluded)
	}
	for _, d := range days {
		fmt.Fprintf(&b, "[%s] daily overtime: %s | daily worked: %s\n",
			d.Date.Format(DateLayout), formatDuration(d.Overtime), formatDuration(d.Worked))
	}

	b.WriteString("\n\n=== Weekly Overtime ===\n\n")
	for _, w := range weeks {
		fmt.Fprintf(&b, "[%04d-W%02d] total worked: %s | remaining weekly allowance: %s\n",
			w.Year, w.Week, formatDuration(w.TotalWorked), formatDuration(w.Remaining))
	}
	return b.String()
}
