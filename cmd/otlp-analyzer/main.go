// Copyright: This file is part of otlp-data-analyzer, released under https://github.com/weltenwort/otlp-data-analyzer/blob/main/LICENSE

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/weltenwort/otlp-data-analyzer/internal/pkg/enumflag"
	"github.com/weltenwort/otlp-data-analyzer/internal/pkg/logging"
	"github.com/weltenwort/otlp-data-analyzer/internal/pkg/must"
)

var (
	rootCmd = &cobra.Command{
		Use:     "otlp-analyzer",
		Short:   "Command line inspection tools for OTLP JSONL log data",
		Version: "0.1.0",
	}
	log = logging.Log()

	// Global flags
	outputFlag = enumflag.New("text", "text", "json", "yaml")
	verbose    *int
	panicOnErr *bool
)

func init() {
	panicOnErr = rootCmd.PersistentFlags().Bool("panic", false, "panic on error instead of exit code 1")
	rootCmd.PersistentFlags().VarP(outputFlag, "output", "o", outputFlag.DocString("Output format"))
	verbose = rootCmd.PersistentFlags().IntP("verbose", "v", 0, "Verbosity for logging")
	cobra.OnInitialize(func() { logging.Init(*verbose) }) // After flags are parsed
}

func main() {
	// Code in this package panics to exit, main maps the panic value to an
	// exit status: must.ExitError carries its own code, anything else is 1.
	defer func() {
		r := recover()
		if r == nil {
			os.Exit(0)
		}
		if *panicOnErr {
			panic(r)
		}
		if e, ok := r.(must.ExitError); ok {
			if e.Err != nil {
				fmt.Fprintln(os.Stderr, e.Err)
			}
			os.Exit(e.Code)
		}
		fmt.Fprintln(os.Stderr, r)
		os.Exit(1)
	}()
	defer StartProfile().Stop()
	must.Must(rootCmd.Execute())
}
