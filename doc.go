// Package inlinetest is a small in-process test harness.
//
// A test file declares its tests and hooks from an explicit entry point,
// registered from the init function of the file:
//
//	func init() { inlinetest.Register(declare) }
//
//	func declare(u *inlinetest.Unit) error {
//
//		u.BeforeEach("reset", reset)
//		u.Test("addition", testAddition, inlinetest.Tag("smoke"))
//		u.Test("division", testDivision)
//
//		return nil
//	}
//
// A binary importing the test files and running NewCommand can then run
// them by path:
//
//	harness run --tag smoke arith/arith_tests.go
//
// Loading a file calls its entry point on a fresh Unit. Every selected test
// runs exactly once, in declaration order, bracketed by the before each and
// after each hooks. The after each hook runs on every path, including when
// the test or the before each hook fails. Failures are collected and never
// stop the run. The process exits with 1 if any test failed.
package inlinetest
