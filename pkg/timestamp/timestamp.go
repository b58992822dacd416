// Copyright: This file is part of otlp-data-analyzer, released under https://github.com/weltenwort/otlp-data-analyzer/blob/main/LICENSE

// Package timestamp converts user-supplied timestamp strings to nanosecond Unix time.
//
// Two input families are accepted: bare numeric Unix epochs, whose unit
// (seconds, milliseconds or nanoseconds) is inferred from magnitude, and
// ISO 8601 dates and date-times. All results are int64 nanoseconds since
// 1970-01-01T00:00:00Z.
package timestamp

import (
	"fmt"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Magnitude thresholds for unit inference. Epoch values for years up to
// ~2300 are below 10^10 in seconds and below 10^13 in milliseconds, so the
// three units never overlap for plausible inputs.
const (
	maxSeconds      = 10_000_000_000     // below this: seconds
	maxMilliseconds = 10_000_000_000_000 // below this: milliseconds
)

// ParseError is returned when a string is neither a numeric epoch nor a
// recognized ISO 8601 form, or when the result does not fit in int64
// nanoseconds.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse timestamp %q: %v", e.Input, e.Reason)
}

// Parse converts a timestamp string to nanoseconds since the Unix epoch.
//
// Numeric input without a decimal point is parsed as an exact integer so
// that nanosecond-scale values keep their low-order digits. Input with a
// decimal point is parsed as a float and rounded after unit conversion.
// Non-numeric input falls through to ISO 8601 parsing.
func Parse(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, ".") {
		if n, ok := new(big.Int).SetString(s, 10); ok {
			return fromEpochInt(s, n)
		}
	} else if f, err := strconv.ParseFloat(s, 64); err == nil {
		return fromEpochFloat(s, f)
	}
	return parseISO8601(s)
}

// fromEpochInt converts an exact integer epoch value, inferring its unit
// from magnitude. Results outside int64 are rejected rather than wrapped.
func fromEpochInt(s string, v *big.Int) (int64, error) {
	factor := int64(1) // nanoseconds
	switch abs := new(big.Int).Abs(v); {
	case abs.Cmp(big.NewInt(maxSeconds)) < 0:
		factor = 1_000_000_000 // seconds
	case abs.Cmp(big.NewInt(maxMilliseconds)) < 0:
		factor = 1_000_000 // milliseconds
	}
	ns := new(big.Int).Mul(v, big.NewInt(factor))
	if !ns.IsInt64() {
		return 0, &ParseError{Input: s, Reason: "overflows int64 nanoseconds"}
	}
	return ns.Int64(), nil
}

// fromEpochFloat converts a fractional epoch value, rounding to the nearest
// nanosecond after unit conversion.
func fromEpochFloat(s string, v float64) (int64, error) {
	var ns float64
	switch abs := math.Abs(v); {
	case abs < maxSeconds:
		ns = v * 1e9
	case abs < maxMilliseconds:
		ns = v * 1e6
	default:
		ns = v
	}
	ns = math.Round(ns)
	if math.IsNaN(ns) || ns >= math.MaxInt64 || ns <= math.MinInt64 {
		return 0, &ParseError{Input: s, Reason: "overflows int64 nanoseconds"}
	}
	return int64(ns), nil
}

var (
	dateOnly = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

	// Go accepts fractional seconds after the seconds element even when the
	// layout omits them, so two date-time layouts cover all accepted forms.
	layouts = []string{
		time.RFC3339,          // Z or numeric offset
		"2006-01-02T15:04:05", // no timezone marker, taken as UTC
	}
)

// parseISO8601 handles bare dates (midnight UTC), date-times with Z or a
// numeric offset, and naive date-times which are taken as UTC.
func parseISO8601(s string) (int64, error) {
	if dateOnly.MatchString(s) {
		s += "T00:00:00Z"
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UnixNano(), nil
		}
	}
	return 0, &ParseError{Input: s, Reason: "not a numeric epoch or ISO 8601 timestamp"}
}
