package mnvplot

import (
	"fmt"

	"github.com/pkg/errors"
)

// MissingError reports a named record that is not in a file.
type MissingError struct {
	Name string
	File string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("failed to find %q in %s", e.Name, e.File)
}

// TypeError reports a record that exists but holds the wrong kind of object.
type TypeError struct {
	Name string
	File string
	Want Kind
	Got  Kind
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("found %q in %s, but it is a %v instead of a %v", e.Name, e.File, e.Got, e.Want)
}

type codedError struct {
	err  error
	code int
}

func (e *codedError) Error() string { return e.err.Error() }
func (e *codedError) Cause() error  { return e.err }
func (e *codedError) Unwrap() error { return e.err }
func (e *codedError) ExitCode() int { return e.code }

// WithCode attaches a process exit code to err.
func WithCode(err error, code int) error {
	if err == nil {
		return nil
	}
	return &codedError{err: err, code: code}
}

// ExitCode returns the process exit code for err: 0 for nil, the code attached
// with WithCode if any, and 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var coded interface{ ExitCode() int }
	if errors.As(err, &coded) {
		return coded.ExitCode()
	}
	return 1
}
