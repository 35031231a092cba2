package str

import "fmt"

// PatternError reports a regular expression that could not be compiled.
//
// Err is one of the regexp package sentinels (wrapped) or the compile error
// of the engine the pattern was routed to.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("str: invalid pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}
