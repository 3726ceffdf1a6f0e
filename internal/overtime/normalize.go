package overtime

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// normalizeTimeCode は上流の出退勤コード（"930", "0930", 930.0 など表記ゆれあり）を
// "HH:MM" に正規化する。正規化できない値は nil。
//   - 数値として解釈できれば整数へ切り捨てて4桁ゼロ埋め
//   - 解釈できなければ文字列表現をそのまま使う（ゼロ埋めなし）
//   - 結果が4文字未満なら時・分が揃わないので nil
//
// 時分の値域チェックはここでは行わない（復元段で弾かれる）
func normalizeTimeCode(v any) *string {
	if v == nil {
		return nil
	}

	var digits string
	switch t := v.(type) {
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return nil
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			digits = zfill(strconv.Itoa(int(f)), 4)
		} else {
			digits = s
		}
	case float64:
		digits = zfill(strconv.Itoa(int(t)), 4)
	case int:
		digits = zfill(strconv.Itoa(t), 4)
	default:
		digits = fmt.Sprint(v)
	}

	if len(digits) < 4 {
		return nil
	}
	hhmm := digits[0:2] + ":" + digits[2:4]
	return &hhmm
}

func zfill(s string, width int) string {
	for len(s) < width {
		s = "0" + s
	}
	return s
}

// parseRecordDate は日付フィールドを解釈する。失敗はバッチ全体のエラー
// （日付は構造上必須で、欠落はスキーマ不一致として表面化させる）
func parseRecordDate(v any) (time.Time, error) {
	var s string
	switch t := v.(type) {
	case nil:
		return time.Time{}, fmt.Errorf("date is missing")
	case string:
		s = strings.TrimSpace(t)
	case float64:
		s = strconv.FormatInt(int64(t), 10) // 20240603 のような数値表現
	default:
		s = fmt.Sprint(v)
	}
	if s == "" {
		return time.Time{}, fmt.Errorf("date is empty")
	}
	for _, layout := range []string{DateLayout, CompactDateLayout, SlashDateLayout} {
		if d, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return d, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse date %q", s)
}

// reconstruct は日付と HH:MM を秒精度のタイムスタンプに組み立てる。
// どちらかのコードが欠けている、または時分として成立しない場合は除外扱い（ok=false）
func reconstruct(n NormalizedRecord) (ValidRecord, bool) {
	if n.ClockIn == nil || n.ClockOut == nil {
		return ValidRecord{}, false
	}
	day := n.Date.Format(DateLayout)
	start, err := time.ParseInLocation(stampLayout, day+" "+*n.ClockIn, time.Local)
	if err != nil {
		return ValidRecord{}, false
	}
	end, err := time.ParseInLocation(stampLayout, day+" "+*n.ClockOut, time.Local)
	if err != nil {
		return ValidRecord{}, false
	}

	worked, ot := dailyStats(start, end)
	return ValidRecord{
		Date:     n.Date,
		Start:    start,
		End:      end,
		Worked:   worked,
		Overtime: ot,
	}, true
}
