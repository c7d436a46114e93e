// Package env is the binding table scripts resolve names against. Names are
// interned, so lookups compare handles rather than strings.
package env

import (
	"slices"
	"unique"

	"github.com/goweiwen/kantera/value"
)

// Name is an interned binding name.
type Name = unique.Handle[string]

// Intern returns the handle for s.
func Intern(s string) Name { return unique.Make(s) }

// Env maps interned names to values. It is not safe for concurrent use;
// evaluation is single threaded.
type Env struct {
	bindings map[Name]value.Value
}

// New returns an empty binding table.
func New() *Env {
	return &Env{bindings: make(map[Name]value.Value)}
}

// Insert binds name to v, replacing any previous binding.
func (e *Env) Insert(name string, v value.Value) {
	e.bindings[Intern(name)] = v
}

// Get returns the value bound to name.
func (e *Env) Get(name string) (value.Value, bool) {
	v, ok := e.bindings[Intern(name)]
	return v, ok
}

// Lookup is Get for an already interned name.
func (e *Env) Lookup(name Name) (value.Value, bool) {
	v, ok := e.bindings[name]
	return v, ok
}

// Len returns the number of bindings.
func (e *Env) Len() int { return len(e.bindings) }

// Names returns every bound name, sorted.
func (e *Env) Names() []string {
	names := make([]string, 0, len(e.bindings))
	for n := range e.bindings {
		names = append(names, n.Value())
	}
	slices.Sort(names)
	return names
}

// Each calls fn for every binding in name order.
func (e *Env) Each(fn func(name string, v value.Value)) {
	for _, n := range e.Names() {
		fn(n, e.bindings[Intern(n)])
	}
}
