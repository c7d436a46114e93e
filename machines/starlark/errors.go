package starlark

import (
	"errors"
	"fmt"

	"go.starlark.net/syntax"
)

var (
	ErrParseFailed = errors.New("starlark parse error")
	ErrConversion  = errors.New("starlark conversion error")
)

// FormError reports one failed top-level statement. Later statements still
// run.
type FormError struct {
	// Index is the zero-based position of the statement in the script.
	Index  int
	Pos    syntax.Position
	Source string
	Err    error
}

func (e *FormError) Error() string {
	return fmt.Sprintf("form %d at %s: %v", e.Index+1, e.Pos, e.Err)
}

// Unwrap exposes the form's failure to errors.Is and errors.As.
func (e *FormError) Unwrap() error { return e.Err }
