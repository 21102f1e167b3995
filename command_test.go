package inlinetest

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCommand(args ...string) (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {

	cmd := NewCommand("inlinetest", "Runs inline tests", "1.2.3")

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)

	return cmd, out, errOut
}

// registerCommandFixtures registers the fixtures in the main registry and
// returns the path of a file with one passing smoke test and one failing
// untagged test, and the path of a file with one passing test.
func registerCommandFixtures(t *testing.T) (string, string) {

	dir := extractFixtures(t, "loader")
	mixed := filepath.Join(dir, "sample_tests.go")
	passing := filepath.Join(dir, "nested", "deep_tests.go")

	RegisterFile(mixed, func(u *Unit) error {
		u.Test("test_a", noop, Tag("smoke"))
		u.Test("test_b", func() error { return Fail("x != y") })
		return nil
	})

	RegisterFile(passing, func(u *Unit) error {
		u.Test("test_greeting", func() error {
			if g := os.Getenv("INLINETEST_GREETING"); g != "" && g != "hello" {
				return Failf("unexpected greeting %q", g)
			}
			return nil
		})
		return nil
	})

	return mixed, passing
}

func TestCommand_Version(t *testing.T) {

	cmd, out, _ := newTestCommand("version")

	assert.Equal(t, 0, Execute(cmd))
	assert.Equal(t, "1.2.3\n", out.String())
}

func TestCommand_Run(t *testing.T) {

	mixed, passing := registerCommandFixtures(t)

	t.Run("failing tests", func(t *testing.T) {
		a := assert.New(t)

		cmd, out, errOut := newTestCommand("run", "--no-color", mixed)

		a.Equal(1, Execute(cmd))
		a.Contains(out.String(), "✅ test_a passed\n")
		a.Contains(out.String(), "❌ test_b failed: x != y\n")
		a.Contains(out.String(), "Total: 2\nPassed: 1\nFailed: 1\n")
		a.Empty(errOut.String())
	})

	t.Run("test alias and tag filter", func(t *testing.T) {
		a := assert.New(t)

		cmd, out, _ := newTestCommand("test", "--no-color", "--tag", "smoke", mixed)

		a.Equal(0, Execute(cmd))
		a.Contains(out.String(), "Total: 1\nPassed: 1\nFailed: 0\n")
		a.NotContains(out.String(), "test_b")
	})

	t.Run("tag from environment", func(t *testing.T) {
		a := assert.New(t)
		t.Setenv("INLINETEST_TAG", "smoke")

		cmd, out, _ := newTestCommand("run", "--no-color", mixed)

		a.Equal(0, Execute(cmd))
		a.Contains(out.String(), "Total: 1\n")
	})

	t.Run("missing file", func(t *testing.T) {
		a := assert.New(t)
		missing := filepath.Join(filepath.Dir(mixed), "nope_tests.go")

		cmd, out, _ := newTestCommand("run", "--no-color", missing, passing)

		a.Equal(0, Execute(cmd))
		a.Contains(out.String(), "File not found: "+missing+"\n")
		a.Contains(out.String(), "Total: 1\nPassed: 1\nFailed: 0\n")
	})

	t.Run("report", func(t *testing.T) {
		a := assert.New(t)
		path := filepath.Join(t.TempDir(), "report.json")

		cmd, _, _ := newTestCommand("run", "--no-color", "--report", path, mixed, passing)

		a.Equal(1, Execute(cmd))

		data, err := os.ReadFile(path)
		require.NoError(t, err)

		var r struct {
			Meta struct {
				Total  int `json:"total"`
				Passed int `json:"passed"`
				Failed int `json:"failed"`
			} `json:"meta"`
			Failures []struct {
				Name    string `json:"name"`
				Message string `json:"message"`
			} `json:"failures"`
		}
		require.NoError(t, json.Unmarshal(data, &r))

		a.Equal(3, r.Meta.Total)
		a.Equal(2, r.Meta.Passed)
		a.Equal(1, r.Meta.Failed)
		require.Len(t, r.Failures, 1)
		a.Equal("test_b", r.Failures[0].Name)
		a.Equal("x != y", r.Failures[0].Message)
	})

	t.Run("env file", func(t *testing.T) {
		a := assert.New(t)

		envFile := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(envFile, []byte("INLINETEST_GREETING=bonjour\n"), 0644))
		t.Cleanup(func() { os.Unsetenv("INLINETEST_GREETING") }) // nolint

		cmd, out, _ := newTestCommand("run", "--no-color", "--env-file", envFile, passing)

		a.Equal(1, Execute(cmd))
		a.Contains(out.String(), `❌ test_greeting failed: unexpected greeting "bonjour"`)
	})

	t.Run("missing env file", func(t *testing.T) {
		a := assert.New(t)

		cmd, _, errOut := newTestCommand("run", "--env-file", "/does/not/exist.env", passing)

		a.Equal(1, Execute(cmd))
		a.Contains(errOut.String(), "Error: unable to load env file '/does/not/exist.env'")
	})

	t.Run("invalid log level", func(t *testing.T) {
		a := assert.New(t)

		cmd, _, errOut := newTestCommand("run", "--log-level", "loud", passing)

		a.Equal(1, Execute(cmd))
		a.Contains(errOut.String(), "Error: invalid log level 'loud'")
	})

	t.Run("no file", func(t *testing.T) {
		a := assert.New(t)

		cmd, _, errOut := newTestCommand("run")

		a.Equal(1, Execute(cmd))
		a.Contains(errOut.String(), "Error: requires at least 1 arg(s)")
	})
}

func TestCommand_List(t *testing.T) {

	a := assert.New(t)
	mixed, _ := registerCommandFixtures(t)

	cmd, out, _ := newTestCommand("list", "--no-color", "--tag", "smoke", mixed)

	a.Equal(0, Execute(cmd))
	a.Equal(mixed+"\n  - test_a [smoke]\n", out.String())
}
