package gridfile

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed indicates input that does not follow the text format.
	ErrMalformed = errors.New("gridfile: malformed input")

	// ErrDimensions indicates a frame whose shape disagrees with its set.
	ErrDimensions = errors.New("gridfile: frame dimensions mismatch")
)

// ParseError locates a format violation in the input.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("gridfile: line %d: %s", e.Line, e.Msg)
}

func (e *ParseError) Unwrap() error {
	return ErrMalformed
}

func parseErr(line int, format string, args ...any) error {
	return &ParseError{Line: line, Msg: fmt.Sprintf(format, args...)}
}
