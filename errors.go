package inlinetest

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrTestsFailed is returned by the run command when at least one test failed.
var ErrTestsFailed = errors.New("some tests failed")

// An AssertionError reports an explicit check that did not hold.
type AssertionError struct {
	Message  string
	Expected string
	Actual   string
}

// Fail returns an AssertionError with the given message.
func Fail(message string) error {
	return &AssertionError{Message: message}
}

// Failf returns an AssertionError with the formatted message.
func Failf(format string, args ...interface{}) error {
	return &AssertionError{Message: fmt.Sprintf(format, args...)}
}

func (e *AssertionError) Error() string {

	if e.Expected == "" && e.Actual == "" {
		return e.Message
	}

	return fmt.Sprintf("%s: expected: '%s', actual: '%s'", e.Message, e.Expected, e.Actual)
}

// asAssertion returns the AssertionError in the chain of err, if any.
func asAssertion(err error) (*AssertionError, bool) {

	var ae *AssertionError
	if errors.As(err, &ae) {
		return ae, true
	}

	return nil, false
}

// errLoadFailed is returned by the list command when a file could not be loaded.
var errLoadFailed = errors.New("some files could not be loaded")
