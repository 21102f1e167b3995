package inlinetest

import (
	"fmt"
)

// A Role is the marker attached to a declared function.
type Role int

// Various values for Role.
const (
	RoleTest Role = iota
	RoleBeforeEach
	RoleAfterEach
)

func (r Role) String() string {

	switch r {
	case RoleTest:
		return "test"
	case RoleBeforeEach:
		return "before each"
	case RoleAfterEach:
		return "after each"
	default:
		return fmt.Sprintf("role(%d)", int(r))
	}
}

// A Declaration is a function declared in a Unit along with its marker.
type Declaration struct {
	Name     string
	Role     Role
	Tag      string
	Tagged   bool
	Function TestFunction
}

// An Option configures a test declaration.
type Option func(*Declaration)

// Tag attaches the given tag to a test.
func Tag(tag string) Option {

	return func(d *Declaration) {
		d.Tag = tag
		d.Tagged = true
	}
}

// MatchTag returns true if the declaration is selected by the given
// tag filter. An empty filter selects every test. A non empty filter
// only selects tests carrying exactly that tag.
func (d Declaration) MatchTag(filter string) bool {

	if filter == "" {
		return true
	}

	return d.Tagged && d.Tag == filter
}

func (d Declaration) String() string {

	if d.Tagged {
		return fmt.Sprintf("%s (%s, tag: %s)", d.Name, d.Role, d.Tag)
	}

	return fmt.Sprintf("%s (%s)", d.Name, d.Role)
}
