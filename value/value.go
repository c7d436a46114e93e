// Package value is the dynamic value exchanged between scene scripts and
// builtins: a closed tagged union over the types the builtins understand.
//
// Values are immutable once built and are shared by reference. Extracting a
// payload with the wrong accessor fails with ErrTypeMismatch; there is no
// numeric coercion, so an Int never satisfies AsFloat.
package value

import (
	"github.com/goweiwen/kantera/audio"
	"github.com/goweiwen/kantera/geom"
	"github.com/goweiwen/kantera/raster"
	"github.com/goweiwen/kantera/render"
	"github.com/goweiwen/kantera/timeline"
)

// NativeFunc is a builtin callable from scripts.
type NativeFunc func(args []Value) (Value, error)

// Value holds exactly one payload, identified by its Kind. The zero Value is
// Invalid.
type Value struct {
	kind    Kind
	payload any
}

// Sym is an interned-by-name identifier, distinct from a String.
type Sym string

// Kind returns the runtime tag.
func (v Value) Kind() Kind { return v.kind }

// IsValid reports whether v holds a payload.
func (v Value) IsValid() bool { return v.kind != Invalid }

// NewBool wraps b.
func NewBool(b bool) Value { return Value{Bool, b} }
// NewInt wraps a 32-bit integer.
func NewInt(i int32) Value { return Value{Int, i} }
// NewFloat wraps a float.
func NewFloat(f float64) Value { return Value{Float, f} }
// NewString wraps a string literal.
func NewString(s string) Value { return Value{String, s} }
// NewSymbol returns the symbol called name.
func NewSymbol(name string) Value { return Value{Symbol, Sym(name)} }
// NewVec2 wraps a two component vector.
func NewVec2(v geom.Vec2) Value { return Value{Vec2, v} }
// NewVec3 wraps a three component vector.
func NewVec3(v geom.Vec3) Value { return Value{Vec3, v} }
// NewColor wraps an RGBA color.
func NewColor(c geom.Rgba) Value { return Value{Color, c} }
// NewNative wraps a builtin function.
func NewNative(f NativeFunc) Value { return Value{Native, f} }
// NewRender wraps a scene-graph handle.
func NewRender(r render.Render) Value { return Value{Render, r} }
// NewAudio wraps an audio handle.
func NewAudio(a audio.Render) Value { return Value{Audio, a} }
// NewImage wraps a decoded or rasterized image.
func NewImage(m *raster.Image) Value { return Value{Image, m} }

// NewList copies items into a new list value.
func NewList(items ...Value) Value {
	out := make([]Value, len(items))
	copy(out, items)
	return Value{List, out}
}

// NewFloatTimeline wraps a scalar timeline.
func NewFloatTimeline(t timeline.Timeline[float64]) Value {
	return Value{FloatTimeline, t}
}

// NewColorTimeline wraps a color timeline.
func NewColorTimeline(t timeline.Timeline[geom.Rgba]) Value {
	return Value{ColorTimeline, t}
}

// NewVec2Timeline wraps a Vec2 timeline.
func NewVec2Timeline(t timeline.Timeline[geom.Vec2]) Value {
	return Value{Vec2Timeline, t}
}

// NewVec3Timeline wraps a Vec3 timeline.
func NewVec3Timeline(t timeline.Timeline[geom.Vec3]) Value {
	return Value{Vec3Timeline, t}
}

// Payload returns the untyped payload. Callers switch on Kind first.
func (v Value) Payload() any { return v.payload }
