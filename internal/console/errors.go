package console

import (
	"errors"
	"fmt"
)

var (
	// ErrEndOfInput reports that the input stream is exhausted.
	ErrEndOfInput = errors.New("end of input")

	// ErrAborted reports that identifier collection stopped on a malformed
	// line. The chain also holds the *InputParseError.
	ErrAborted = errors.New("input aborted")
)

// InputParseError describes user text that is not a valid identifier.
type InputParseError struct {
	Input string
	Err   error
}

func (e *InputParseError) Error() string {
	return fmt.Sprintf("invalid identifier %q: %v", e.Input, e.Err)
}

func (e *InputParseError) Unwrap() error {
	return e.Err
}
