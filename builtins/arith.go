package builtins

import (
	"fmt"

	"github.com/goweiwen/kantera/dispatch"
	"github.com/goweiwen/kantera/geom"
	"github.com/goweiwen/kantera/value"
)

// fold names how an operator combines its arguments.
type fold int

const (
	sum fold = iota
	difference
	product
	quotient
)

func (f fold) String() string {
	return [...]string{"+", "-", "*", "/"}[f]
}

// arithmetic is the algebra a numeric candidate type provides.
type arithmetic[T any] struct {
	kind    value.Kind
	extract func(value.Value) (T, error)
	wrap    func(T) value.Value
	zero    T
	one     T
	add     func(a, b T) T
	sub     func(a, b T) T
	mul     func(a, b T) T
	div     func(a, b T) (T, error)
}

var (
	floatArith = arithmetic[float64]{
		kind:    value.Float,
		extract: value.AsFloat,
		wrap:    value.NewFloat,
		zero:    0,
		one:     1,
		add:     func(a, b float64) float64 { return a + b },
		sub:     func(a, b float64) float64 { return a - b },
		mul:     func(a, b float64) float64 { return a * b },
		div:     func(a, b float64) (float64, error) { return a / b, nil },
	}
	intArith = arithmetic[int32]{
		kind:    value.Int,
		extract: value.AsInt,
		wrap:    value.NewInt,
		zero:    0,
		one:     1,
		add:     func(a, b int32) int32 { return a + b },
		sub:     func(a, b int32) int32 { return a - b },
		mul:     func(a, b int32) int32 { return a * b },
		div: func(a, b int32) (int32, error) {
			if b == 0 {
				return 0, fmt.Errorf("%w: %d / 0", value.ErrDivisionByZero, a)
			}
			return a / b, nil
		},
	}
	vec2Arith = arithmetic[geom.Vec2]{
		kind:    value.Vec2,
		extract: value.AsVec2,
		wrap:    value.NewVec2,
		zero:    geom.Vec2{},
		one:     geom.Vec2{X: 1, Y: 1},
		add:     geom.Vec2.Add,
		sub:     geom.Vec2.Sub,
		mul:     geom.Vec2.Mul,
		div:     func(a, b geom.Vec2) (geom.Vec2, error) { return a.Div(b), nil },
	}
	vec3Arith = arithmetic[geom.Vec3]{
		kind:    value.Vec3,
		extract: value.AsVec3,
		wrap:    value.NewVec3,
		zero:    geom.Vec3{},
		one:     geom.Vec3{X: 1, Y: 1, Z: 1},
		add:     geom.Vec3.Add,
		sub:     geom.Vec3.Sub,
		mul:     geom.Vec3.Mul,
		div:     func(a, b geom.Vec3) (geom.Vec3, error) { return a.Div(b), nil },
	}
)

// foldAll combines xs. + and * start from the identity; - and / start from
// the first argument and fold the rest in left to right.
func foldAll[T any](ar arithmetic[T], op fold, xs []T) (T, error) {
	switch op {
	case sum:
		acc := ar.zero
		for _, x := range xs {
			acc = ar.add(acc, x)
		}
		return acc, nil
	case product:
		acc := ar.one
		for _, x := range xs {
			acc = ar.mul(acc, x)
		}
		return acc, nil
	}

	if len(xs) == 0 {
		return ar.zero, fmt.Errorf("%w: %s needs at least one argument", value.ErrMissingArgument, op)
	}
	acc := xs[0]
	for _, x := range xs[1:] {
		if op == difference {
			acc = ar.sub(acc, x)
			continue
		}
		var err error
		if acc, err = ar.div(acc, x); err != nil {
			return ar.zero, err
		}
	}
	return acc, nil
}

func foldCandidate[T any](ar arithmetic[T], op fold) dispatch.Candidate {
	return dispatch.For(ar.kind, ar.extract, func(xs []T) (value.Value, error) {
		acc, err := foldAll(ar, op, xs)
		if err != nil {
			return value.Value{}, err
		}
		return ar.wrap(acc), nil
	})
}

// numeric returns the operator for op, dispatching over float64, int32, Vec2
// and Vec3 in that order.
func numeric(op fold) value.NativeFunc {
	candidates := []dispatch.Candidate{
		foldCandidate(floatArith, op),
		foldCandidate(intArith, op),
		foldCandidate(vec2Arith, op),
		foldCandidate(vec3Arith, op),
	}
	return func(args []value.Value) (value.Value, error) {
		out, err := dispatch.Dispatch(args, candidates...)
		if err != nil {
			return value.Value{}, fmt.Errorf("%s: %w", op, err)
		}
		return out, nil
	}
}
