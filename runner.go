package inlinetest

import (
	"fmt"
	"io"
	"runtime/debug"

	"go.uber.org/zap"
)

// A Selection holds the functions of a Unit selected for a run.
type Selection struct {
	BeforeEach *Declaration
	AfterEach  *Declaration
	Tests      []Declaration
}

// A Runner discovers and runs the tests of a Unit.
type Runner struct {
	printer *Printer
}

// NewRunner returns a new Runner reporting to the given Printer.
// If p is nil, nothing is printed.
func NewRunner(p *Printer) *Runner {

	if p == nil {
		p = NewPrinter(io.Discard, false, false)
	}

	return &Runner{printer: p}
}

// Discover returns the hooks of the unit and its tests selected by the
// given tag, in declaration order. An empty tag selects all tests.
func (r *Runner) Discover(u *Unit, tag string) Selection {

	s := Selection{}

	if d, ok := u.Hook(RoleBeforeEach); ok {
		s.BeforeEach = &d
	}

	if d, ok := u.Hook(RoleAfterEach); ok {
		s.AfterEach = &d
	}

	for _, d := range u.decls {
		if d.Role == RoleTest && d.MatchTag(tag) {
			s.Tests = append(s.Tests, d)
		}
	}

	return s
}

// Run runs every test of the unit selected by the given tag, one after
// the other, and returns the aggregated result. A failing test never
// stops the run.
func (r *Runner) Run(u *Unit, tag string) RunResult {

	s := r.Discover(u, tag)

	zap.L().Debug("Running unit",
		zap.String("path", u.Path),
		zap.String("tag", tag),
		zap.Int("tests", len(s.Tests)),
		zap.Bool("before-each", s.BeforeEach != nil),
		zap.Bool("after-each", s.AfterEach != nil),
	)

	result := RunResult{}

	for _, t := range s.Tests {

		o := r.runTest(s, t)

		zap.L().Debug("Test completed",
			zap.String("test", t.Name),
			zap.Stringer("outcome", o.Kind),
		)

		r.printer.Outcome(t.Name, o)
		result.record(u.Path, t.Name, o)
	}

	return result
}

// runTest runs one test bracketed by the hooks. The after each hook runs
// on every path, including when the before each hook fails. The first
// failure is the one reported.
func (r *Runner) runTest(s Selection, t Declaration) (o Outcome) {

	if s.AfterEach != nil {
		defer func() {
			if after := invoke(s.AfterEach.Function); after.Failed() && !o.Failed() {
				after.Message = fmt.Sprintf("after each: %s", after.Message)
				o = after
			}
		}()
	}

	if s.BeforeEach != nil {
		if before := invoke(s.BeforeEach.Function); before.Failed() {
			before.Message = fmt.Sprintf("before each: %s", before.Message)
			return before
		}
	}

	return invoke(t.Function)
}

// invoke calls f and converts its error or panic into an Outcome.
func invoke(f TestFunction) (o Outcome) {

	defer func() {
		if rec := recover(); rec != nil {
			o = classifyPanic(rec)
		}
	}()

	return classify(f())
}

func classify(err error) Outcome {

	if err == nil {
		return Outcome{Kind: Passed}
	}

	if _, ok := asAssertion(err); ok {
		return Outcome{Kind: AssertionFailed, Message: err.Error()}
	}

	return Outcome{Kind: UnexpectedError, Message: err.Error()}
}

func classifyPanic(rec interface{}) Outcome {

	if err, ok := rec.(error); ok {
		if _, ok := asAssertion(err); ok {
			return classify(err)
		}
		return Outcome{Kind: UnexpectedError, Message: err.Error(), Stack: debug.Stack()}
	}

	return Outcome{Kind: UnexpectedError, Message: fmt.Sprint(rec), Stack: debug.Stack()}
}
