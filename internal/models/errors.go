package models

import "fmt"

// FormatError reports persisted or user-entered text that cannot be turned
// into an Exercise or Routine.
type FormatError struct {
	Line   int    // 1-based line in the source file, 0 when not from a file
	Input  string // offending text
	Reason string
	Err    error // underlying strconv error, if any
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Input)
	}
	return fmt.Sprintf("%s: %q", e.Reason, e.Input)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
