package overtime

import "time"

// 上流レスポンス内の1日分のレコード（キー名は設定依存）
type RawRecord map[string]any

// 出退勤コードを HH:MM に正規化したレコード
// 正規化できなかったコードは nil
type NormalizedRecord struct {
	Date     time.Time
	ClockIn  *string
	ClockOut *string
}

// 出勤・退勤とも復元できたレコードだけが集計対象になる
type ValidRecord struct {
	Date     time.Time
	Start    time.Time
	End      time.Time
	Worked   time.Duration // (End - Start) - 休憩控除。負もあり得る
	Overtime time.Duration // max(Worked - 8h, 0)
}

// ISO週年+週番号。年跨ぎの週が混ざらないようにペアで持つ
type WeekKey struct {
	Year int
	Week int
}

type WeeklyBucket struct {
	Year        int
	Week        int
	TotalWorked time.Duration
	Remaining   time.Duration // max(40h - TotalWorked, 0)
}

// 1回の計算結果。呼び出し側はこれを表示するだけで、状態は持たない
type Report struct {
	ReportID string
	Days     []ValidRecord
	Weeks    []WeeklyBucket
	Excluded int
	Text     string
}

func (v ValidRecord) toDTO() DayStatResponse {
	return DayStatResponse{
		Date:            v.Date.Format(DateLayout),
		Worked:          formatDuration(v.Worked),
		Overtime:        formatDuration(v.Overtime),
		WorkedSeconds:   int64(v.Worked / time.Second),
		OvertimeSeconds: int64(v.Overtime / time.Second),
	}
}

func (w WeeklyBucket) toDTO() WeekStatResponse {
	return WeekStatResponse{
		Year:             w.Year,
		Week:             w.Week,
		TotalWorked:      formatDuration(w.TotalWorked),
		Remaining:        formatDuration(w.Remaining),
		TotalSeconds:     int64(w.TotalWorked / time.Second),
		RemainingSeconds: int64(w.Remaining / time.Second),
	}
}

func (r *Report) toDTO() ReportResponse {
	days := make([]DayStatResponse, 0, len(r.Days))
	for _, d := range r.Days {
		days = append(days, d.toDTO())
	}
	weeks := make([]WeekStatResponse, 0, len(r.Weeks))
	for _, w := range r.Weeks {
		weeks = append(weeks, w.toDTO())
	}
	return ReportResponse{
		ReportID: r.ReportID,
		Excluded: r.Excluded,
		Days:     days,
		Weeks:    weeks,
		Text:     r.Text,
	}
}
