package overtime

import (
	"errors"
	"fmt"
	"sort"

	"github.com/oklog/ulid/v2"

	"OVT-backend/internal/platform/config"
)

// ===== Error model (platform/auth 側と同型) =====

type Code string

const (
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeNoData          Code = "NO_DATA"
	CodeSchemaMismatch  Code = "SCHEMA_MISMATCH"
	CodeInternal        Code = "INTERNAL"
)

type APIError struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string      { return fmt.Sprintf("%s: %s", e.Code, e.Message) }
func ErrInvalid(msg string) *APIError  { return &APIError{Code: CodeInvalidArgument, Message: msg} }
func ErrNoData(msg string) *APIError   { return &APIError{Code: CodeNoData, Message: msg} }
func ErrSchema(msg string) *APIError   { return &APIError{Code: CodeSchemaMismatch, Message: msg} }
func ErrInternal(msg string) *APIError { return &APIError{Code: CodeInternal, Message: msg} }

func toHTTPStatus(err error) int {
	var api *APIError
	if errors.As(err, &api) {
		switch api.Code {
		case CodeInvalidArgument:
			return 400
		case CodeNoData, CodeSchemaMismatch:
			return 422
		default:
			return 500
		}
	}
	return 500
}

// ===== Service =====

type Service struct {
	schema   config.SchemaConfig
	negative string
}

func NewService(schema config.SchemaConfig, policy config.PolicyConfig) *Service {
	return &Service{schema: schema, negative: policy.NegativeDurations}
}

// ExtractRecords は上流ペイロードから設定済みリストキーでレコード列を取り出す
func (s *Service) ExtractRecords(payload map[string]any) ([]RawRecord, error) {
	raw, ok := payload[s.schema.ListField]
	if !ok {
		return nil, ErrSchema(fmt.Sprintf(
			"list field %q not found in payload; check the upstream field-name configuration", s.schema.ListField))
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, ErrSchema(fmt.Sprintf("field %q is not a record list", s.schema.ListField))
	}
	records := make([]RawRecord, 0, len(list))
	for i, item := range list {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, ErrInvalid(fmt.Sprintf("record %d is not an object", i))
		}
		records = append(records, RawRecord(m))
	}
	return records, nil
}

// BuildReport は生レコード列から日次・週次の超過勤務レポートを組み立てる。
// 出退勤コードの欠落・不正は件数だけ数えて除外し、計算は続行する。
// 空入力と全レコードでのフィールド欠落はバッチ全体のエラー
func (s *Service) BuildReport(records []RawRecord) (*Report, error) {
	if len(records) == 0 {
		return nil, ErrNoData("no data")
	}
	if err := s.checkSchema(records); err != nil {
		return nil, err
	}

	valid := make([]ValidRecord, 0, len(records))
	excluded := 0
	for _, raw := range records {
		date, err := parseRecordDate(raw[s.schema.DateField])
		if err != nil {
			return nil, ErrInvalid(fmt.Sprintf("field %q: %v", s.schema.DateField, err))
		}
		n := NormalizedRecord{
			Date:     date,
			ClockIn:  normalizeTimeCode(raw[s.schema.ClockInField]),
			ClockOut: normalizeTimeCode(raw[s.schema.ClockOutField]),
		}
		v, ok := reconstruct(n)
		if !ok {
			excluded++
			continue
		}
		if v.Worked < 0 {
			switch s.negative {
			case config.NegativeExclude:
				excluded++
				continue
			case config.NegativeClamp:
				v.Worked = 0
			}
			// propagate: そのまま週次合算へ
		}
		valid = append(valid, v)
	}

	// 入力順に依存しないよう日付昇順に揃える
	sort.SliceStable(valid, func(i, j int) bool { return valid[i].Start.Before(valid[j].Start) })

	weeks := weeklyStats(valid)
	return &Report{
		ReportID: ulid.Make().String(),
		Days:     valid,
		Weeks:    weeks,
		Excluded: excluded,
		Text:     formatReport(valid, weeks, excluded),
	}, nil
}

// checkSchema は設定されたフィールド名が全レコードで欠けていないかを一度だけ確認する。
// 全件欠落は個別除外ではなく設定不一致として扱う
func (s *Service) checkSchema(records []RawRecord) error {
	for _, field := range []string{s.schema.DateField, s.schema.ClockInField, s.schema.ClockOutField} {
		found := false
		for _, r := range records {
			if _, ok := r[field]; ok {
				found = true
				break
			}
		}
		if !found {
			return ErrSchema(fmt.Sprintf(
				"field %q not found in any record; check the upstream field-name configuration", field))
		}
	}
	return nil
}
