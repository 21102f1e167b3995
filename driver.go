package inlinetest

import (
	"os"

	"go.uber.org/zap"
)

// A Driver runs a list of test files one after the other and
// accumulates their results.
type Driver struct {
	loader  *Loader
	runner  *Runner
	printer *Printer
}

// NewDriver returns a new Driver.
func NewDriver(loader *Loader, printer *Printer) *Driver {

	return &Driver{
		loader:  loader,
		runner:  NewRunner(printer),
		printer: printer,
	}
}

// Run loads and runs the given files with the given tag filter, then
// prints the summary and returns the total result. Missing files and
// files that cannot be loaded are reported and skipped.
func (d *Driver) Run(paths []string, tag string) RunResult {

	total := RunResult{}

	for _, path := range paths {

		if _, err := os.Stat(path); os.IsNotExist(err) {
			d.printer.NotFound(path)
			continue
		}

		d.printer.Header(path)

		u, err := d.loader.Load(path)
		if err != nil {
			zap.L().Debug("Unable to load test file", zap.String("path", path), zap.Error(err))
			d.printer.LoadFailed(err)
			continue
		}

		total.Add(d.runner.Run(u, tag))
	}

	d.printer.Summary(total)

	return total
}

// ExitCode returns the process exit code for the given total result.
func ExitCode(total RunResult) int {

	if total.Failed > 0 {
		return 1
	}

	return 0
}
