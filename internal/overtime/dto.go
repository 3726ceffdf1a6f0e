package overtime

import "time"

const (
	DateLayout        = "2006-01-02"
	CompactDateLayout = "20060102"
	SlashDateLayout   = "2006/01/02"
	stampLayout       = "2006-01-02 15:04"

	// 労務の固定値。上流も就業規則もこれ前提
	BreakDeduction  = 1 * time.Hour  // 無給休憩（無条件控除）
	DailyThreshold  = 8 * time.Hour  // 日次の所定労働時間
	WeeklyAllowance = 40 * time.Hour // 週次の上限
)

// POST /overtime/reports のレスポンス

type DayStatResponse struct {
	Date            string `json:"date"` // YYYY-MM-DD
	Worked          string `json:"worked"`
	Overtime        string `json:"overtime"`
	WorkedSeconds   int64  `json:"worked_seconds"`
	OvertimeSeconds int64  `json:"overtime_seconds"`
}

type WeekStatResponse struct {
	Year             int    `json:"year"` // ISO週年
	Week             int    `json:"week"`
	TotalWorked      string `json:"total_worked"`
	Remaining        string `json:"remaining"`
	TotalSeconds     int64  `json:"total_seconds"`
	RemainingSeconds int64  `json:"remaining_seconds"`
}

type ReportResponse struct {
	ReportID string             `json:"report_id"`
	Excluded int                `json:"excluded"`
	Days     []DayStatResponse  `json:"days"`
	Weeks    []WeekStatResponse `json:"weeks"`
	Text     string             `json:"text"`
}
