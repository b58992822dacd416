// Copyright: This file is part of otlp-data-analyzer, released under https://github.com/weltenwort/otlp-data-analyzer/blob/main/LICENSE

package timestamp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_integerEpoch(t *testing.T) {
	for _, x := range []struct {
		in   string
		want int64
	}{
		{in: "1577836800", want: 1577836800000000000},          // seconds
		{in: "1577836800123", want: 1577836800123000000},       // milliseconds
		{in: "1577836800123456789", want: 1577836800123456789}, // nanoseconds
		{in: "  1577836800\t", want: 1577836800000000000},      // surrounding whitespace
		{in: "0", want: 0},
		{in: "9223372036", want: 9223372036000000000}, // near the top of the int64 seconds range
		{in: "10000000000", want: 10000000000000000},  // first milliseconds value
		{in: "10000000000000", want: 10000000000000},  // first nanoseconds value
		{in: "-1000", want: -1000000000000},           // negative, magnitude says seconds
	} {
		t.Run(x.in, func(t *testing.T) {
			got, err := Parse(x.in)
			if assert.NoError(t, err) {
				assert.Equal(t, x.want, got)
			}
		})
	}
}

func TestParse_floatEpoch(t *testing.T) {
	for _, x := range []struct {
		in   string
		want int64
	}{
		{in: "1577836800.5", want: 1577836800500000000},
		{in: "1577836800.0", want: 1577836800000000000}, // still the float branch
		{in: "1577836800123.25", want: 1577836800123250000},
		{in: "-0.5", want: -500000000},
	} {
		t.Run(x.in, func(t *testing.T) {
			got, err := Parse(x.in)
			require.NoError(t, err)
			// Rounded after a float multiply, allow sub-microsecond slack.
			assert.InDelta(t, x.want, got, 1000)
		})
	}
}

func TestParse_iso8601(t *testing.T) {
	for _, x := range []struct {
		in   string
		want int64
	}{
		{in: "2020-01-01", want: 1577836800000000000},                       // bare date, midnight UTC
		{in: "2020-06-15T12:30:45Z", want: 1592224245000000000},
		{in: "2020-06-15T12:30:45.123Z", want: 1592224245123000000},
		{in: "2020-06-15T12:30:45.123456789Z", want: 1592224245123456789},
		{in: "2020-06-15T12:30:45", want: 1592224245000000000},              // no timezone, assumed UTC
		{in: "2020-06-15T12:30:45.123", want: 1592224245123000000},
		{in: "2020-06-15T12:30:45+00:00", want: 1592224245000000000},
		{in: "2020-06-15T14:30:45+02:00", want: 1592224245000000000},
		{in: "2020-06-15T10:30:45-02:00", want: 1592224245000000000},
	} {
		t.Run(x.in, func(t *testing.T) {
			got, err := Parse(x.in)
			if assert.NoError(t, err) {
				assert.Equal(t, x.want, got)
			}
		})
	}
}

func TestParse_errors(t *testing.T) {
	for _, in := range []string{
		"",
		"   ",
		"not-a-timestamp",
		"12:30:45",            // time of day without a date
		"2020-13-45",          // impossible date
		"2020-06-15 12:30:45", // space separator is not accepted
		"1.2.3",
		"0x10",
	} {
		t.Run(in, func(t *testing.T) {
			_, err := Parse(in)
			require.Error(t, err)
			var parseErr *ParseError
			assert.ErrorAs(t, err, &parseErr)
		})
	}
}

// Numeric values whose nanosecond result does not fit in int64 are rejected
// rather than wrapped.
func TestParse_overflow(t *testing.T) {
	for _, in := range []string{
		"9999999999",              // seconds, just under the unit threshold
		"9999999999999",           // milliseconds, just under the unit threshold
		"9999999999999999999",     // nanoseconds just past int64
		"99999999999999999999999", // far past int64
		"-9999999999999999999",
		"9223372036854775808", // int64 max + 1, already nanoseconds
		"9999999999.5",        // float branch, seconds scale
	} {
		t.Run(in, func(t *testing.T) {
			_, err := Parse(in)
			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Contains(t, parseErr.Reason, "overflow")
		})
	}
}
