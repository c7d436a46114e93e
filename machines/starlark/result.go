package starlark

import (
	"fmt"
	"time"

	starlarkLib "go.starlark.net/starlark"

	"github.com/goweiwen/kantera/value"
)

// Form is the outcome of one top-level statement.
type Form struct {
	Index  int
	Source string
	// Value is the result of an expression statement. It is the zero value
	// for other statements and for failed forms.
	Value value.Value
	// Err is a *FormError when the form failed.
	Err error
}

// Result holds every form of a script and the globals it left behind.
type Result struct {
	Forms    []Form
	ExecTime time.Duration

	globals starlarkLib.StringDict
	bridge  *bridge
}

// Last returns the value of the last expression form that succeeded with a
// value.
func (r *Result) Last() (value.Value, bool) {
	for i := len(r.Forms) - 1; i >= 0; i-- {
		f := r.Forms[i]
		if f.Err == nil && f.Value.IsValid() {
			return f.Value, true
		}
	}
	return value.Value{}, false
}

// Global converts a global the script bound.
func (r *Result) Global(name string) (value.Value, error) {
	v, ok := r.globals[name]
	if !ok {
		return value.Value{}, fmt.Errorf("global %q is not defined", name)
	}
	return r.bridge.fromStarlark(v)
}

// Failed returns the errors of the forms that failed, in order.
func (r *Result) Failed() []*FormError {
	var out []*FormError
	for _, f := range r.Forms {
		if ferr, ok := f.Err.(*FormError); ok {
			out = append(out, ferr)
		}
	}
	return out
}

func (r *Result) String() string {
	return fmt.Sprintf("Result{Forms: %d, Failed: %d, ExecTime: %s}", len(r.Forms), len(r.Failed()), r.ExecTime)
}
