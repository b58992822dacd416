// Copyright: This file is part of otlp-data-analyzer, released under https://github.com/weltenwort/otlp-data-analyzer/blob/main/LICENSE

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/weltenwort/otlp-data-analyzer/internal/pkg/must"
	"github.com/weltenwort/otlp-data-analyzer/pkg/check"
	"github.com/weltenwort/otlp-data-analyzer/pkg/timestamp"
)

var (
	checkCmd = &cobra.Command{
		Use:   "check-timestamp [FILE]",
		Short: "Check that OTLP log record timestamps fall within a time range",
		Long: `Check that OTLP log record timestamps fall within a time range.

Reads OTLP JSONL from stdin, or from FILE if given, and validates that every
timeUnixNano value lies within the inclusive [start, end] range. Start and
end accept ISO 8601 dates and date-times as well as numeric Unix epochs in
seconds, milliseconds or nanoseconds, detected by magnitude.

With "-o json" or "-o yaml" only the summary is printed, as a structured
document. Exit status is 2 for an unusable time range, 1 if any record was
out of range or in error, 0 otherwise.`,
		Example: `  cat logs.jsonl | otlp-analyzer check-timestamp --start 2020-01-01 --end 2020-12-31
  otlp-analyzer check-timestamp --start 1577836800 --end 1609459199 logs.jsonl`,
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			opts := checkOptions{
				Range:   parseRange(),
				ShowAll: *showAllFlag,
				Quiet:   *quietFlag,
				Format:  outputFlag.String(),
			}
			in := io.Reader(os.Stdin)
			if len(args) == 1 {
				f := must.Must1(os.Open(args[0]))
				defer f.Close()
				in = f
			}
			summary := must.Must1(opts.run(in, os.Stdout))
			if summary.Issues() {
				must.Exit(1, nil)
			}
		},
	}
	startFlag   *string
	endFlag     *string
	showAllFlag *bool
	quietFlag   *bool
)

func init() {
	startFlag = checkCmd.Flags().String("start", "", "Start of time range (ISO 8601 or Unix timestamp)")
	endFlag = checkCmd.Flags().String("end", "", "End of time range (ISO 8601 or Unix timestamp)")
	must.Must(checkCmd.MarkFlagRequired("start"))
	must.Must(checkCmd.MarkFlagRequired("end"))
	showAllFlag = checkCmd.Flags().Bool("show-all", false, "Show all log records, in range and out of range")
	quietFlag = checkCmd.Flags().BoolP("quiet", "q", false, "Only show summary counts")
	rootCmd.AddCommand(checkCmd)
}

// parseRange normalizes the boundary flags. Failures are fatal to the whole
// run with exit status 2, before any input is read.
func parseRange() check.Range {
	start, err := timestamp.Parse(*startFlag)
	if err != nil {
		must.Exit(2, fmt.Errorf("error parsing time range: %w", err))
	}
	end, err := timestamp.Parse(*endFlag)
	if err != nil {
		must.Exit(2, fmt.Errorf("error parsing time range: %w", err))
	}
	r := check.Range{Start: start, End: end}
	if err := r.Validate(); err != nil {
		must.Exit(2, err)
	}
	log.V(1).Info("checking time range", "range", r.String())
	return r
}

type checkOptions struct {
	Range   check.Range
	ShowAll bool
	Quiet   bool
	Format  string
}

// run drives one pass over the input and writes the report to out.
func (o checkOptions) run(in io.Reader, out io.Writer) (check.Summary, error) {
	report := &reporter{
		w:       out,
		r:       o.Range,
		showAll: o.ShowAll,
		quiet:   o.Quiet || o.Format != "text", // structured formats are summary-only
	}
	checker := &check.Checker{Range: o.Range}
	summary, err := checker.Run(in, report.result)
	if err != nil {
		return summary, err
	}
	o.printSummary(out, summary)
	return summary, nil
}

func (o checkOptions) printSummary(out io.Writer, summary check.Summary) {
	if o.Format != "text" {
		newPrinter(out, o.Format).Print(summary)
		return
	}
	if o.Quiet {
		fmt.Fprintf(out, "In range: %d, Out of range: %d, Errors: %d\n",
			summary.InRange, summary.TooEarly+summary.TooLate, summary.Errors)
		return
	}
	fmt.Fprintln(out, "---")
	fmt.Fprintln(out, "Summary:")
	fmt.Fprintf(out, "  Total lines processed: %d\n", summary.Lines)
	fmt.Fprintf(out, "  Total log records: %d\n", summary.Records)
	fmt.Fprintf(out, "  In range: %d\n", summary.InRange)
	fmt.Fprintf(out, "  Out of range (too early): %d\n", summary.TooEarly)
	fmt.Fprintf(out, "  Out of range (too late): %d\n", summary.TooLate)
	fmt.Fprintf(out, "  Errors: %d\n", summary.Errors)
}
