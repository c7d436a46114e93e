package starlark

import (
	"fmt"
	"slices"

	starlarkLib "go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/goweiwen/kantera/value"
)

// hostValue exposes a kantera value with no Starlark counterpart: symbols,
// vectors, colors, timelines and the render, audio and image handles.
type hostValue struct {
	v      value.Value
	bridge *bridge
}

var (
	_ starlarkLib.HasBinary  = (*hostValue)(nil)
	_ starlarkLib.HasAttrs   = (*hostValue)(nil)
	_ starlarkLib.Comparable = (*hostValue)(nil)
)

func (h *hostValue) String() string { return h.v.String() }
func (h *hostValue) Type() string { return h.v.Kind().String() }
func (h *hostValue) Freeze() {}
func (h *hostValue) Truth() starlarkLib.Bool { return starlarkLib.True }

// Hash supports symbols as dict keys. Other host values are unhashable.
func (h *hostValue) Hash() (uint32, error) {
	if name, err := value.AsSymbol(h.v); err == nil {
		return starlarkLib.String(name).Hash()
	}
	return 0, fmt.Errorf("unhashable type: %s", h.Type())
}

func (h *hostValue) CompareSameType(op syntax.Token, y starlarkLib.Value, _ int) (bool, error) {
	other := y.(*hostValue)
	switch op {
	case syntax.EQL:
		return value.Equal(h.v, other.v), nil
	case syntax.NEQ:
		return !value.Equal(h.v, other.v), nil
	}
	return false, fmt.Errorf("%s %s %s not supported", h.Type(), op, y.Type())
}

var binaryBuiltins = map[syntax.Token]string{
	syntax.PLUS:  "+",
	syntax.MINUS: "-",
	syntax.STAR:  "*",
	syntax.SLASH: "/",
}

// Binary routes the arithmetic operators to the arithmetic builtins, so
// vec2(1.0, 2.0) + vec2(3.0, 4.0) behaves like add(...).
func (h *hostValue) Binary(op syntax.Token, y starlarkLib.Value, side starlarkLib.Side) (starlarkLib.Value, error) {
	name, ok := binaryBuiltins[op]
	if !ok {
		return nil, nil
	}
	fnValue, ok := h.bridge.env.Get(name)
	if !ok {
		return nil, nil
	}
	fn, err := value.AsNative(fnValue)
	if err != nil {
		return nil, err
	}

	other, err := h.bridge.fromStarlark(y)
	if err != nil {
		return nil, err
	}
	args := []value.Value{h.v, other}
	if side == starlarkLib.Right {
		args[0], args[1] = other, h.v
	}
	out, err := fn(args)
	if err != nil {
		return nil, err
	}
	return h.bridge.toStarlark(out)
}

func (h *hostValue) attrs() map[string]func() (starlarkLib.Value, error) {
	float := func(x float64) func() (starlarkLib.Value, error) {
		return func() (starlarkLib.Value, error) { return starlarkLib.Float(x), nil }
	}
	switch h.v.Kind() {
	case value.Vec2:
		p, _ := value.AsVec2(h.v)
		return map[string]func() (starlarkLib.Value, error){"x": float(p.X), "y": float(p.Y)}
	case value.Vec3:
		p, _ := value.AsVec3(h.v)
		return map[string]func() (starlarkLib.Value, error){"x": float(p.X), "y": float(p.Y), "z": float(p.Z)}
	case value.Color:
		c, _ := value.AsColor(h.v)
		return map[string]func() (starlarkLib.Value, error){"r": float(c.R), "g": float(c.G), "b": float(c.B), "a": float(c.A)}
	case value.Symbol:
		name, _ := value.AsSymbol(h.v)
		return map[string]func() (starlarkLib.Value, error){
			"name": func() (starlarkLib.Value, error) { return starlarkLib.String(name), nil },
		}
	case value.Audio:
		a, _ := value.AsAudio(h.v)
		return map[string]func() (starlarkLib.Value, error){"duration": float(a.Duration())}
	case value.Image:
		img, _ := value.AsImage(h.v)
		return map[string]func() (starlarkLib.Value, error){
			"width":  func() (starlarkLib.Value, error) { return starlarkLib.MakeInt(img.Width), nil },
			"height": func() (starlarkLib.Value, error) { return starlarkLib.MakeInt(img.Height), nil },
		}
	case value.FloatTimeline, value.Vec2Timeline, value.Vec3Timeline, value.ColorTimeline:
		return map[string]func() (starlarkLib.Value, error){
			"at": func() (starlarkLib.Value, error) { return starlarkLib.NewBuiltin("at", h.at), nil },
		}
	}
	return nil
}

func (h *hostValue) Attr(name string) (starlarkLib.Value, error) {
	get, ok := h.attrs()[name]
	if !ok {
		return nil, nil
	}
	return get()
}

func (h *hostValue) AttrNames() []string {
	attrs := h.attrs()
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// at evaluates a timeline: p.at(t).
func (h *hostValue) at(_ *starlarkLib.Thread, b *starlarkLib.Builtin, args starlarkLib.Tuple, kwargs []starlarkLib.Tuple) (starlarkLib.Value, error) {
	var t starlarkLib.Value
	if err := starlarkLib.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &t); err != nil {
		return nil, err
	}
	at, ok := starlarkLib.AsFloat(t)
	if !ok {
		return nil, fmt.Errorf("%s: want a number, got %s", b.Name(), t.Type())
	}
	out, err := evaluate(h.v, at)
	if err != nil {
		return nil, err
	}
	return h.bridge.toStarlark(out)
}

func evaluate(v value.Value, t float64) (value.Value, error) {
	switch v.Kind() {
	case value.FloatTimeline:
		tl, _ := value.AsFloatTimeline(v)
		return value.NewFloat(tl.At(t)), nil
	case value.Vec2Timeline:
		tl, _ := value.AsVec2Timeline(v)
		return value.NewVec2(tl.At(t)), nil
	case value.Vec3Timeline:
		tl, _ := value.AsVec3Timeline(v)
		return value.NewVec3(tl.At(t)), nil
	case value.ColorTimeline:
		tl, _ := value.AsColorTimeline(v)
		return value.NewColor(tl.At(t)), nil
	}
	return value.Value{}, fmt.Errorf("%w: %s is not a timeline", value.ErrTypeMismatch, v.Kind())
}
