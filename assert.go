package inlinetest

import (
	"encoding/json"
)

// failureView is the JSON failure produced by goconvey assertions
// when running in goconvey mode.
type failureView struct {
	Message  string
	Expected string
	Actual   string
}

// Assert can use goconvey function to perform an assertion.
// When the assertion does not hold, Assert panics with an *AssertionError
// that is reported as an assertion failure of the running test.
//
//	inlinetest.Assert("sum is correct", add(1, 2), convey.ShouldEqual, 3)
func Assert(message string, actual interface{}, f func(interface{}, ...interface{}) string, expected ...interface{}) {

	if msg := f(actual, expected...); msg != "" {
		panic(newAssertionError(message, msg))
	}
}

// Check is like Assert but returns the *AssertionError instead of panicking.
// It returns nil if the assertion holds.
func Check(message string, actual interface{}, f func(interface{}, ...interface{}) string, expected ...interface{}) error {

	if msg := f(actual, expected...); msg != "" {
		return newAssertionError(message, msg)
	}

	return nil
}

func newAssertionError(message string, result string) *AssertionError {

	e := &AssertionError{Message: message}

	var v failureView
	if err := json.Unmarshal([]byte(result), &v); err != nil {
		// Plain text failure, outside of goconvey mode.
		e.Message = result
		if message != "" {
			e.Message = message + ": " + result
		}
		return e
	}

	e.Expected = v.Expected
	e.Actual = v.Actual
	if e.Message == "" {
		e.Message = v.Message
	}

	return e
}
