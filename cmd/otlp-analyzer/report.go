// Copyright: This file is part of otlp-data-analyzer, released under https://github.com/weltenwort/otlp-data-analyzer/blob/main/LICENSE

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/weltenwort/otlp-data-analyzer/internal/pkg/must"
	"github.com/weltenwort/otlp-data-analyzer/pkg/check"
	"github.com/weltenwort/otlp-data-analyzer/pkg/otlp"
	"github.com/weltenwort/otlp-data-analyzer/pkg/timestamp"
	"sigs.k8s.io/yaml"
)

// reporter renders per-record results as they stream in.
type reporter struct {
	w       io.Writer
	r       check.Range
	showAll bool
	quiet   bool
}

func (p *reporter) result(res check.Result) {
	if p.quiet || (res.Outcome == check.InRange && !p.showAll) {
		return
	}
	fmt.Fprintln(p.w, p.render(res))
	if res.Record != nil {
		fmt.Fprintln(p.w) // Blank line between records.
	}
}

func (p *reporter) render(res check.Result) string {
	if res.Record == nil {
		return fmt.Sprintf("Line %d: ERROR - %s", res.Line, res.Message)
	}
	record := res.Record
	header := fmt.Sprintf("Line %d, Record %d", record.Line, record.Index)
	switch res.Outcome {
	case check.InRange:
		return header + ": IN RANGE"
	case check.Error:
		return fmt.Sprintf("%s: ERROR - %s", header, res.Message)
	case check.TooEarly:
		return p.renderOutOfRange(header+": OUT OF RANGE (too early)", record,
			p.r.Start-*record.TimeUnixNano, "before start")
	case check.TooLate:
		return p.renderOutOfRange(header+": OUT OF RANGE (too late)", record,
			*record.TimeUnixNano-p.r.End, "after end")
	}
	return header
}

func (p *reporter) renderOutOfRange(header string, record *otlp.LogRecord, diff int64, reference string) string {
	lines := []string{
		header,
		fmt.Sprintf("  timeUnixNano:    %s (%d)", timestamp.Format(*record.TimeUnixNano), *record.TimeUnixNano),
		fmt.Sprintf("  expected range:  %s", p.r),
		fmt.Sprintf("  difference:      %s", timestamp.FormatDelta(diff, reference)),
	}
	if severity := record.SeverityText(); severity != "" {
		lines = append(lines, fmt.Sprintf("  severityText:    %s", severity))
	}
	if body, ok := record.Body(); ok {
		lines = append(lines, fmt.Sprintf("  body:            %v", body))
	}
	return strings.Join(lines, "\n")
}

type printer interface {
	Print(any) // Print a single item.
}

type jsonPrinter struct{ *json.Encoder }

func (p jsonPrinter) Print(v any) { _ = p.Encode(v) }

type yamlPrinter struct{ io.Writer }

func (p yamlPrinter) Print(v any) { b, _ := yaml.Marshal(v); _, _ = p.Write(b) }

func newPrinter(w io.Writer, format string) printer {
	switch format {
	case "json":
		return jsonPrinter{json.NewEncoder(w)}
	case "yaml":
		return yamlPrinter{w}
	default:
		must.Must(fmt.Errorf("invalid output type: %v", format))
		return nil
	}
}
