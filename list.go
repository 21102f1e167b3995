package inlinetest

import (
	"os"
)

// listTests loads the given files and prints the tests selected by the tag,
// without running them.
func listTests(d *Driver, paths []string, tag string) error {

	var failed bool

	for _, path := range paths {

		if _, err := os.Stat(path); os.IsNotExist(err) {
			d.printer.NotFound(path)
			continue
		}

		u, err := d.loader.Load(path)
		if err != nil {
			d.printer.LoadFailed(err)
			failed = true
			continue
		}

		d.printer.Unit(u, d.runner.Discover(u, tag))
	}

	if failed {
		return errLoadFailed
	}

	return nil
}
