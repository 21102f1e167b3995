package inlinetest

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/tools/txtar"
)

// extractFixtures writes the files of testdata/<name>.txtar in a temporary
// directory and returns the directory.
func extractFixtures(t *testing.T, name string) string {

	t.Helper()

	archive, err := txtar.ParseFile(filepath.Join("testdata", name+".txtar"))
	if err != nil {
		t.Fatalf("unable to parse fixtures: %s", err)
	}

	dir := t.TempDir()

	for _, f := range archive.Files {
		path := filepath.Join(dir, filepath.FromSlash(f.Name))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("unable to create fixture dir: %s", err)
		}
		if err := os.WriteFile(path, f.Data, 0644); err != nil {
			t.Fatalf("unable to write fixture %s: %s", f.Name, err)
		}
	}

	return dir
}

func noop() error { return nil }
