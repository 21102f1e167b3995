package inlinetest

import (
	"fmt"
	"go/parser"
	"go/token"
	"path/filepath"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// A LoadError is returned when a test file cannot be loaded.
// It only aborts the processing of that file.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("unable to load %s: %s", e.Path, e.Err)
}

// Cause returns the underlying error.
func (e *LoadError) Cause() error { return e.Err }

// Unwrap returns the underlying error.
func (e *LoadError) Unwrap() error { return e.Err }

// A Loader loads test files into Units.
type Loader struct {
	registry *Registry
}

// NewLoader returns a Loader using the entry points registered
// with Register and RegisterFile.
func NewLoader() *Loader { return NewLoaderWithRegistry(mainRegistry) }

// NewLoaderWithRegistry returns a Loader using the given Registry.
func NewLoaderWithRegistry(r *Registry) *Loader {
	return &Loader{registry: r}
}

// Load parses the file at path, then calls its registered entry point on a
// fresh Unit. Every call runs the entry point again: a file must be loaded
// once per run.
func (l *Loader) Load(path string) (*Unit, error) {

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: errors.Wrap(err, "unable to resolve path")}
	}

	file, err := parser.ParseFile(token.NewFileSet(), abs, nil, parser.SkipObjectResolution)
	if err != nil {
		return nil, &LoadError{Path: path, Err: errors.Wrap(err, "unable to parse file")}
	}

	key, declare, err := l.registry.lookup(abs, path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	zap.L().Debug("Loading test file",
		zap.String("path", path),
		zap.String("entry", key),
		zap.String("package", file.Name.Name),
	)

	u := newUnit(abs, file.Name.Name)

	if err := callDeclare(declare, u); err != nil {
		return nil, &LoadError{Path: path, Err: errors.Wrap(err, "entry point failed")}
	}

	if err := u.Err(); err != nil {
		return nil, &LoadError{Path: path, Err: errors.Wrap(err, "invalid declaration")}
	}

	zap.L().Debug("Test file loaded",
		zap.String("path", path),
		zap.Int("declarations", len(u.decls)),
	)

	return u, nil
}

func callDeclare(declare DeclareFunction, u *Unit) (err error) {

	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("panic: %v", r)
		}
	}()

	return declare(u)
}
