package builtins

import (
	"fmt"

	"github.com/goweiwen/kantera/geom"
	"github.com/goweiwen/kantera/value"
)

func first(args []value.Value) (value.Value, error) {
	return value.Arg(args, 0)
}

func vec(args []value.Value) (value.Value, error) {
	return value.NewList(args...), nil
}

func vec2(args []value.Value) (value.Value, error) {
	v, err := vec2Of(value.NewList(args...))
	if err != nil {
		return value.Value{}, err
	}
	return value.NewVec2(v), nil
}

func vec3(args []value.Value) (value.Value, error) {
	v, err := vec3Of(value.NewList(args...))
	if err != nil {
		return value.Value{}, err
	}
	return value.NewVec3(v), nil
}

func sym(args []value.Value) (value.Value, error) {
	name, err := value.ArgAs(args, 0, value.AsString)
	if err != nil {
		return value.Value{}, err
	}
	return value.NewSymbol(name), nil
}

// floats extracts exactly n Float64 items from a list value.
func floats(v value.Value, n int) ([]float64, error) {
	items, err := value.AsList(v)
	if err != nil {
		return nil, err
	}
	out := make([]float64, n)
	for i := range n {
		if out[i], err = value.ArgAs(items, i, value.AsFloat); err != nil {
			return nil, err
		}
	}
	if len(items) > n {
		return nil, typeMismatch(fmt.Sprintf("%d-element list of float64", n), fmt.Sprintf("%d elements", len(items)))
	}
	return out, nil
}

// vec2Of accepts a Vec2 or a two element list of floats.
func vec2Of(v value.Value) (geom.Vec2, error) {
	if p, err := value.AsVec2(v); err == nil {
		return p, nil
	}
	f, err := floats(v, 2)
	if err != nil {
		return geom.Vec2{}, err
	}
	return geom.Vec2{X: f[0], Y: f[1]}, nil
}

// vec3Of accepts a Vec3 or a three element list of floats.
func vec3Of(v value.Value) (geom.Vec3, error) {
	if p, err := value.AsVec3(v); err == nil {
		return p, nil
	}
	f, err := floats(v, 3)
	if err != nil {
		return geom.Vec3{}, err
	}
	return geom.Vec3{X: f[0], Y: f[1], Z: f[2]}, nil
}
