// Copyright: This file is part of otlp-data-analyzer, released under https://github.com/weltenwort/otlp-data-analyzer/blob/main/LICENSE

package timestamp

import (
	"fmt"
	"strings"
	"time"
)

// Format renders nanosecond Unix time as UTC ISO 8601 with millisecond
// precision, e.g. "2020-01-01T00:00:00.000Z".
func Format(ns int64) string {
	return time.Unix(0, ns).UTC().Format("2006-01-02T15:04:05.000Z")
}

// FormatDelta renders a nanosecond difference as "[D day(s), ]HH:MM:SS.mmm",
// optionally suffixed with a reference phrase such as "before start".
// The sign of ns is ignored.
func FormatDelta(ns int64, reference string) string {
	if ns < 0 {
		ns = -ns
	}
	// Round to the nearest millisecond before splitting so a carry can
	// propagate into the seconds and day components.
	ms := (ns + 500_000) / 1_000_000
	days := ms / 86_400_000
	ms -= days * 86_400_000
	hours := ms / 3_600_000
	ms -= hours * 3_600_000
	minutes := ms / 60_000
	ms -= minutes * 60_000
	seconds := ms / 1000
	ms -= seconds * 1000

	w := &strings.Builder{}
	switch {
	case days == 1:
		fmt.Fprintf(w, "%d day, ", days)
	case days > 1:
		fmt.Fprintf(w, "%d days, ", days)
	}
	fmt.Fprintf(w, "%02d:%02d:%02d.%03d", hours, minutes, seconds, ms)
	if reference != "" {
		fmt.Fprintf(w, " %s", reference)
	}
	return w.String()
}
