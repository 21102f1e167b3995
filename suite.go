package inlinetest

import (
	"github.com/pkg/errors"
)

// A Unit holds the declarations of one loaded test file.
//
// A Unit is built by a Loader and only lives for the run of that file.
type Unit struct {
	Path    string
	Package string

	decls []Declaration
	names map[string]struct{}
	err   error
}

func newUnit(path string, pkg string) *Unit {

	return &Unit{
		Path:    path,
		Package: pkg,
		names:   map[string]struct{}{},
	}
}

// Test declares a test function.
func (u *Unit) Test(name string, f TestFunction, options ...Option) {

	d := Declaration{
		Name:     name,
		Role:     RoleTest,
		Function: f,
	}

	for _, opt := range options {
		opt(&d)
	}

	u.declare(d)
}

// BeforeEach declares the hook run before every test of the unit.
func (u *Unit) BeforeEach(name string, f TestFunction) {
	u.declare(Declaration{Name: name, Role: RoleBeforeEach, Function: f})
}

// AfterEach declares the hook run after every test of the unit,
// whatever the outcome of the test.
func (u *Unit) AfterEach(name string, f TestFunction) {
	u.declare(Declaration{Name: name, Role: RoleAfterEach, Function: f})
}

// Declarations returns the declarations in declaration order.
func (u *Unit) Declarations() []Declaration {

	out := make([]Declaration, len(u.decls))
	copy(out, u.decls)

	return out
}

// Hook returns the hook declared with the given role, if any.
func (u *Unit) Hook(role Role) (Declaration, bool) {

	for _, d := range u.decls {
		if d.Role == role {
			return d, true
		}
	}

	return Declaration{}, false
}

// Err returns the first declaration error, if any.
func (u *Unit) Err() error { return u.err }

func (u *Unit) declare(d Declaration) {

	// Only the first declaration error is kept. Everything
	// declared after it is ignored as the unit will not run.
	if u.err != nil {
		return
	}

	switch {

	case d.Name == "":
		u.err = errors.Errorf("%s declared without a name", d.Role)
		return

	case d.Function == nil:
		u.err = errors.Errorf("%s '%s' declared without a function", d.Role, d.Name)
		return

	case d.Role != RoleTest && d.Tagged:
		u.err = errors.Errorf("%s '%s' cannot carry a tag", d.Role, d.Name)
		return
	}

	if _, ok := u.names[d.Name]; ok {
		u.err = errors.Errorf("'%s' declared more than once", d.Name)
		return
	}

	if d.Role != RoleTest {
		if prev, ok := u.Hook(d.Role); ok {
			u.err = errors.Errorf("%s '%s' conflicts with '%s': only one %s hook is allowed", d.Role, d.Name, prev.Name, d.Role)
			return
		}
	}

	u.names[d.Name] = struct{}{}
	u.decls = append(u.decls, d)
}
