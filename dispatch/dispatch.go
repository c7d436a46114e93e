// Package dispatch routes dynamically typed arguments to a statically typed
// operation. Candidates are tried in a fixed priority order and the first one
// that every argument extracts to wins.
package dispatch

import (
	"fmt"
	"strings"

	"github.com/goweiwen/kantera/value"
)

// Candidate is one concrete type an operation can be specialized to.
type Candidate struct {
	kind  value.Kind
	apply func(args []value.Value) (value.Value, bool, error)
}

// Kind is the value kind this candidate extracts.
func (c Candidate) Kind() value.Kind { return c.kind }

// For builds a candidate for type T. apply runs only when every argument
// extracted successfully.
func For[T any](
	kind value.Kind,
	extract func(value.Value) (T, error),
	apply func(xs []T) (value.Value, error),
) Candidate {
	return Candidate{
		kind: kind,
		apply: func(args []value.Value) (value.Value, bool, error) {
			xs := make([]T, len(args))
			for i, a := range args {
				x, err := extract(a)
				if err != nil {
					return value.Value{}, false, nil
				}
				xs[i] = x
			}
			out, err := apply(xs)
			return out, true, err
		},
	}
}

// Dispatch applies the first candidate all of args extract to. An error from
// the chosen operation is returned as is; later candidates are not tried.
// With no arguments the first candidate matches.
func Dispatch(args []value.Value, candidates ...Candidate) (value.Value, error) {
	for _, c := range candidates {
		out, ok, err := c.apply(args)
		if !ok {
			continue
		}
		return out, err
	}
	return value.Value{}, unsupported(args, candidates)
}

// Kinds returns the candidate kinds in priority order.
func Kinds(candidates ...Candidate) []value.Kind {
	kinds := make([]value.Kind, len(candidates))
	for i, c := range candidates {
		kinds[i] = c.kind
	}
	return kinds
}

func unsupported(args []value.Value, candidates []Candidate) error {
	return fmt.Errorf("%w: arguments (%s) match none of [%s]",
		value.ErrUnsupportedType, joinKinds(argKinds(args)), joinKinds(Kinds(candidates...)))
}

func argKinds(args []value.Value) []value.Kind {
	kinds := make([]value.Kind, len(args))
	for i, a := range args {
		kinds[i] = a.Kind()
	}
	return kinds
}

func joinKinds(kinds []value.Kind) string {
	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = k.String()
	}
	return strings.Join(parts, ", ")
}
