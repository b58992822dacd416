// Copyright: This file is part of otlp-data-analyzer, released under https://github.com/weltenwort/otlp-data-analyzer/blob/main/LICENSE

package check

import (
	"bufio"
	"io"

	"github.com/weltenwort/otlp-data-analyzer/internal/pkg/logging"
	"github.com/weltenwort/otlp-data-analyzer/pkg/otlp"
)

var log = logging.Log()

// maxLineBytes bounds a single JSONL line.
const maxLineBytes = 16 * 1024 * 1024

// Checker drives a single pass over a JSONL stream.
type Checker struct {
	Range Range
}

// Run reads OTLP JSONL from r line by line, classifies every extracted
// record against the checker's range and calls report for each result,
// including line-level structure failures, in input order. Lines that fail
// to parse count one error and do not stop the run. The returned error is
// only for read failures of the stream itself.
func (c *Checker) Run(r io.Reader, report func(Result)) (Summary, error) {
	var summary Summary
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	line := 0
	for scanner.Scan() {
		line++
		summary.Lines++
		records, err := otlp.ParseLine(scanner.Bytes(), line)
		if err != nil {
			log.V(2).Info("line failed to parse", "line", line, "error", err)
			summary.Errors++
			report(Result{Line: line, Outcome: Error, Message: err.Error()})
			continue
		}
		for _, record := range records {
			summary.Records++
			result := Classify(record, c.Range)
			summary.count(result.Outcome)
			report(result)
		}
	}
	log.V(1).Info("run complete", "summary", logging.JSON(summary))
	return summary, scanner.Err()
}
