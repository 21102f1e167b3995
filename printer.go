package inlinetest

import (
	"fmt"
	"io"
	"strings"

	"github.com/buger/goterm"
	wordwrap "github.com/mitchellh/go-wordwrap"
)

const (
	ruleWidth = 40
	wrapWidth = 100
)

// A Printer writes the console output of a run.
type Printer struct {
	w       io.Writer
	color   bool
	verbose bool
}

// NewPrinter returns a Printer writing to w. When color is true the
// output is decorated with terminal colors. When verbose is true the
// stack of recovered panics is printed under failures.
func NewPrinter(w io.Writer, color bool, verbose bool) *Printer {

	return &Printer{
		w:       w,
		color:   color,
		verbose: verbose,
	}
}

func (p *Printer) colorize(s string, color int) string {

	if !p.color {
		return s
	}

	return goterm.Color(s, color)
}

func (p *Printer) bold(s string) string {

	if !p.color {
		return s
	}

	return goterm.Bold(s)
}

func (p *Printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, format, args...) // nolint
}

// Header prints the header of a test file.
func (p *Printer) Header(path string) {
	p.printf("\n%s\n%s\n", p.bold(fmt.Sprintf("Running tests in %s", path)), strings.Repeat("=", ruleWidth))
}

// NotFound prints the notice for a missing test file.
func (p *Printer) NotFound(path string) {
	p.printf("%s\n", p.colorize(fmt.Sprintf("File not found: %s", path), goterm.YELLOW))
}

// LoadFailed prints the notice for a file that could not be loaded.
func (p *Printer) LoadFailed(err error) {
	p.printf("%s\n", p.colorize(fmt.Sprintf("Error: %s", err), goterm.RED))
}

// Outcome prints the notice for one test.
func (p *Printer) Outcome(name string, o Outcome) {

	switch o.Kind {

	case Passed:
		p.printf("%s\n", p.colorize(fmt.Sprintf("✅ %s passed", name), goterm.GREEN))

	case AssertionFailed:
		p.printf("%s\n", p.colorize(fmt.Sprintf("❌ %s failed: %s", name, o.Message), goterm.RED))

	default:
		p.printf("%s\n", p.colorize(fmt.Sprintf("❌ %s failed with exception: %s", name, o.Message), goterm.RED))
	}

	if p.verbose && len(o.Stack) > 0 {
		p.printf("    Test panic:\n\n%s\n", string(o.Stack))
	}
}

// Summary prints the summary of a whole run.
func (p *Printer) Summary(r RunResult) {

	p.printf("\n%s\n%s\n", p.bold("Test Summary"), strings.Repeat("=", ruleWidth))
	p.printf("Total: %d\n", r.Total())
	p.printf("Passed: %s\n", p.colorize(fmt.Sprintf("%d", r.Passed), goterm.GREEN))

	failed := fmt.Sprintf("%d", r.Failed)
	if r.Failed > 0 {
		failed = p.colorize(failed, goterm.RED)
	}
	p.printf("Failed: %s\n", failed)

	if len(r.Failures) == 0 {
		return
	}

	p.printf("\n%s\n", p.colorize("Failed Tests:", goterm.RED))
	for _, f := range r.Failures {
		msg := wordwrap.WrapString(f.Message, wrapWidth)
		p.printf("  %s: %s\n", f.Name, strings.Replace(msg, "\n", "\n    ", -1))
	}
}

// Unit prints the tests and hooks of a unit selected by the given tag.
func (p *Printer) Unit(u *Unit, s Selection) {

	p.printf("%s\n", p.colorize(u.Path, goterm.CYAN))

	if s.BeforeEach != nil {
		p.printf("  before each: %s\n", s.BeforeEach.Name)
	}

	if s.AfterEach != nil {
		p.printf("  after each: %s\n", s.AfterEach.Name)
	}

	if len(s.Tests) == 0 {
		p.printf("  %s\n", p.colorize("(no tests selected)", goterm.YELLOW))
		return
	}

	for _, t := range s.Tests {
		if t.Tagged {
			p.printf("  - %s %s\n", t.Name, p.colorize(fmt.Sprintf("[%s]", t.Tag), goterm.BLUE))
			continue
		}
		p.printf("  - %s\n", t.Name)
	}
}
