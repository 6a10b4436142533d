package signalplot

import (
	"fmt"

	"gitlab.com/tozd/go/errors"
)

var (
	// ErrUsage is returned when the command line does not name exactly an input
	// and an output directory.
	ErrUsage = errors.New("usage: signalplot <dataDir> <outputDir>")

	// ErrParse marks a data file that does not follow the two-column numeric
	// layout.
	ErrParse = errors.New("malformed data file")

	// ErrTooFewRows is returned when a data file does not reach the row that is
	// inspected to decide the x-axis kind.
	ErrTooFewRows = errors.New("not enough data rows")

	// ErrIO wraps failures to enumerate, read or write files.
	ErrIO = errors.New("i/o failure")
)

// ParseError reports where in a data file parsing stopped.
type ParseError struct {
	Path   string
	Line   int
	Column int // 0 when the whole row is at fault
	Err    error
}

func (e *ParseError) Error() string {
	if e.Column > 0 {
		return fmt.Sprintf("%s:%d: column %d: %v", e.Path, e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}

func parseError(path string, line int, column int, err error) error {
	return errors.WithStack(&ParseError{Path: path, Line: line, Column: column, Err: err})
}

// IOError is a filesystem failure on a given path.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() []error {
	return []error{ErrIO, e.Err}
}

func ioError(op, path string, err error) error {
	return errors.WithStack(&IOError{Op: op, Path: path, Err: err})
}
