package inlinetest

import (
	"fmt"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

var mainRegistry = NewRegistry()

// Register registers the entry point of the calling source file in the main
// registry. It is meant to be called from the init function of a test file:
//
//	func init() { inlinetest.Register(declare) }
//
// Register does not call the entry point. It is called by the Loader when
// the file is loaded.
func Register(f DeclareFunction) {

	_, file, _, ok := runtime.Caller(1)
	if !ok {
		panic("inlinetest: unable to find the caller of Register")
	}

	mainRegistry.Register(file, f)
}

// RegisterFile registers the entry point of the given file in the main registry.
func RegisterFile(path string, f DeclareFunction) { mainRegistry.Register(path, f) }

// A Registry maps test files to their entry points.
type Registry struct {
	entries map[string]DeclareFunction
	lock    sync.RWMutex
}

// NewRegistry returns a new empty Registry.
func NewRegistry() *Registry {

	return &Registry{
		entries: map[string]DeclareFunction{},
	}
}

// Register registers the entry point of the given file.
// It panics if the file is already registered or if f is nil.
func (r *Registry) Register(path string, f DeclareFunction) {

	if f == nil {
		panic(fmt.Sprintf("inlinetest: nil entry point for %s", path))
	}

	key := registryKey(path)

	r.lock.Lock()
	defer r.lock.Unlock()

	if _, ok := r.entries[key]; ok {
		panic(fmt.Sprintf("inlinetest: %s registered twice", path))
	}

	r.entries[key] = f
}

// Files returns the registered files, sorted.
func (r *Registry) Files() (out []string) {

	r.lock.RLock()
	defer r.lock.RUnlock()

	for k := range r.entries {
		out = append(out, k)
	}

	sort.Strings(out)
	return out
}

// lookup finds the entry point for the file given on the command line as arg
// and resolved to the absolute path abs. An exact match wins. Otherwise, a
// registered path ending with arg is accepted if it is the only one, which
// covers binaries built with -trimpath.
func (r *Registry) lookup(abs string, arg string) (string, DeclareFunction, error) {

	r.lock.RLock()
	defer r.lock.RUnlock()

	if f, ok := r.entries[registryKey(abs)]; ok {
		return abs, f, nil
	}

	rel := filepath.ToSlash(filepath.Clean(arg))
	if filepath.IsAbs(arg) || strings.HasPrefix(rel, "../") {
		return "", nil, errors.New("no entry point registered for this file")
	}

	var matches []string
	for k := range r.entries {
		if k == rel || strings.HasSuffix(k, "/"+rel) {
			matches = append(matches, k)
		}
	}

	switch len(matches) {
	case 0:
		return "", nil, errors.New("no entry point registered for this file")
	case 1:
		return matches[0], r.entries[matches[0]], nil
	default:
		sort.Strings(matches)
		return "", nil, errors.Errorf("ambiguous file: matches %s", strings.Join(matches, ", "))
	}
}

func registryKey(path string) string {
	return filepath.ToSlash(filepath.Clean(path))
}
