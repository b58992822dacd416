// Copyright: This file is part of otlp-data-analyzer, released under https://github.com/weltenwort/otlp-data-analyzer/blob/main/LICENSE

package check

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/weltenwort/otlp-data-analyzer/pkg/otlp"
)

var testRange = Range{Start: 1577836800000000000, End: 1609372800000000000} // 2020-01-01 - 2020-12-31

func TestClassify(t *testing.T) {
	for _, x := range []struct {
		ns   *int64
		want Outcome
	}{
		{ns: nil, want: Error},
		{ns: ptr(testRange.Start - 1), want: TooEarly},
		{ns: ptr(testRange.Start), want: InRange}, // inclusive lower bound
		{ns: ptr(testRange.Start + 1), want: InRange},
		{ns: ptr(testRange.End - 1), want: InRange},
		{ns: ptr(testRange.End), want: InRange}, // inclusive upper bound
		{ns: ptr(testRange.End + 1), want: TooLate},
	} {
		t.Run(x.want.String(), func(t *testing.T) {
			result := Classify(otlp.LogRecord{TimeUnixNano: x.ns, Line: 1}, testRange)
			assert.Equal(t, x.want, result.Outcome)
			if x.want == Error {
				assert.Equal(t, "missing or invalid timeUnixNano field", result.Message)
			}
		})
	}
}

func TestRange_Validate(t *testing.T) {
	assert.NoError(t, Range{Start: 1, End: 2}.Validate())
	assert.Error(t, Range{Start: 2, End: 2}.Validate())
	assert.Error(t, Range{Start: 3, End: 2}.Validate())
}

func TestRange_String(t *testing.T) {
	assert.Equal(t, "2020-01-01T00:00:00.000Z - 2020-12-31T00:00:00.000Z", testRange.String())
}

func TestOutcome_String(t *testing.T) {
	for o, want := range map[Outcome]string{InRange: "in_range", TooEarly: "too_early", TooLate: "too_late", Error: "error"} {
		assert.Equal(t, want, o.String())
	}
	assert.Equal(t, fmt.Sprintf("outcome(%d)", 99), Outcome(99).String())
}

func TestSummary_Issues(t *testing.T) {
	assert.False(t, Summary{Lines: 5, Records: 5, InRange: 5}.Issues())
	assert.True(t, Summary{TooEarly: 1}.Issues())
	assert.True(t, Summary{TooLate: 1}.Issues())
	assert.True(t, Summary{Errors: 1}.Issues())
}

func ptr[T any](v T) *T { return &v }
