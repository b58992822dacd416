// Copyright: This file is part of otlp-data-analyzer, released under https://github.com/weltenwort/otlp-data-analyzer/blob/main/LICENSE

// package must contains functions to handle errors via panic.
// The command shell panics to unwind, main recovers and maps the panic
// value to a process exit status.
package must

import "fmt"

// ExitError carries an explicit process exit status out of a command.
type ExitError struct {
	Code int
	Err  error
}

func (e ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return ""
}

// Exit panics with an ExitError. A nil err exits silently with the code.
func Exit(code int, err error) { panic(ExitError{Code: code, Err: err}) }

// Must panics if err != nil.
// If format is provided, panic contains fmt.Errorf(format...) else it contains err.
func Must(err error, format ...any) {
	if err != nil && len(format) > 0 {
		err = fmt.Errorf(format[0].(string), format[1:]...)
	}
	if err != nil {
		panic(err)
	}
}

// Must1 calls Must(err), then returns v.
func Must1[T any](v T, err error) T { Must(err); return v }
