package inlinetest

// A TestFunction is the type of a function that is run as a test or as a hook.
// Returning a nil error means the function succeeded. An *AssertionError,
// returned or raised with panic, is reported as an assertion failure;
// anything else is reported as an unexpected error.
type TestFunction func() error

// A DeclareFunction is the entry point of a test file. It is called once
// per load and declares the tests and hooks of the file on the given Unit.
type DeclareFunction func(*Unit) error
