// Copyright: This file is part of otlp-data-analyzer, released under https://github.com/weltenwort/otlp-data-analyzer/blob/main/LICENSE

// Package check classifies OTLP log record timestamps against an inclusive
// time range and accumulates summary counts over a JSONL stream.
package check

import (
	"errors"
	"fmt"

	"github.com/weltenwort/otlp-data-analyzer/pkg/otlp"
	"github.com/weltenwort/otlp-data-analyzer/pkg/timestamp"
)

// Outcome of classifying one log record.
type Outcome int

const (
	InRange Outcome = iota
	TooEarly
	TooLate
	Error
)

func (o Outcome) String() string {
	switch o {
	case InRange:
		return "in_range"
	case TooEarly:
		return "too_early"
	case TooLate:
		return "too_late"
	case Error:
		return "error"
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// Range is an inclusive [Start, End] time range in nanosecond Unix time.
type Range struct {
	Start int64
	End   int64
}

// Validate requires Start to be strictly before End.
func (r Range) Validate() error {
	if r.Start >= r.End {
		return errors.New("start time must be before end time")
	}
	return nil
}

func (r Range) String() string {
	return fmt.Sprintf("%v - %v", timestamp.Format(r.Start), timestamp.Format(r.End))
}

// Result of classifying a single log record, or of a failed line.
// Record is nil for line-level failures.
type Result struct {
	Line    int
	Record  *otlp.LogRecord
	Outcome Outcome
	Message string // Detail for Outcome == Error.
}

// Classify is a pure function of the record's resolved timestamp and the
// range. Both range boundaries are inclusive, a record without a timestamp
// is an Error.
func Classify(record otlp.LogRecord, r Range) Result {
	result := Result{Line: record.Line, Record: &record}
	switch ns := record.TimeUnixNano; {
	case ns == nil:
		result.Outcome = Error
		result.Message = "missing or invalid timeUnixNano field"
	case *ns < r.Start:
		result.Outcome = TooEarly
	case *ns > r.End:
		result.Outcome = TooLate
	default:
		result.Outcome = InRange
	}
	return result
}

// Summary counts every classified record and failed line of a run.
type Summary struct {
	Lines    int `json:"totalLines"`
	Records  int `json:"totalRecords"`
	InRange  int `json:"inRange"`
	TooEarly int `json:"tooEarly"`
	TooLate  int `json:"tooLate"`
	Errors   int `json:"errors"`
}

// Issues reports whether any record was out of range or errored.
func (s Summary) Issues() bool { return s.TooEarly+s.TooLate+s.Errors > 0 }

func (s *Summary) count(o Outcome) {
	switch o {
	case InRange:
		s.InRange++
	case TooEarly:
		s.TooEarly++
	case TooLate:
		s.TooLate++
	case Error:
		s.Errors++
	}
}
