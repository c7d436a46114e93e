package value

import (
	"fmt"

	"github.com/goweiwen/kantera/audio"
	"github.com/goweiwen/kantera/geom"
	"github.com/goweiwen/kantera/raster"
	"github.com/goweiwen/kantera/render"
	"github.com/goweiwen/kantera/timeline"
)

// extract returns the payload of v when it carries the want tag, and
// ErrTypeMismatch otherwise.
func extract[T any](v Value, want Kind) (T, error) {
	if v.kind == want {
		if p, ok := v.payload.(T); ok {
			return p, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%w: want %s, got %s", ErrTypeMismatch, want, v.kind)
}

// AsBool returns the boolean payload of v.
func AsBool(v Value) (bool, error) { return extract[bool](v, Bool) }
// AsInt returns the integer payload of v.
func AsInt(v Value) (int32, error) { return extract[int32](v, Int) }
// AsFloat returns the float payload of v. Integers are not promoted.
func AsFloat(v Value) (float64, error) { return extract[float64](v, Float) }
// AsString returns the string payload of v. Symbols do not match.
func AsString(v Value) (string, error) { return extract[string](v, String) }
// AsVec2 returns the Vec2 payload of v.
func AsVec2(v Value) (geom.Vec2, error) { return extract[geom.Vec2](v, Vec2) }
// AsVec3 returns the Vec3 payload of v.
func AsVec3(v Value) (geom.Vec3, error) { return extract[geom.Vec3](v, Vec3) }
// AsColor returns the color payload of v.
func AsColor(v Value) (geom.Rgba, error) { return extract[geom.Rgba](v, Color) }
// AsNative returns the builtin function held by v.
func AsNative(v Value) (NativeFunc, error) { return extract[NativeFunc](v, Native) }
// AsRender returns the scene-graph handle held by v.
func AsRender(v Value) (render.Render, error) { return extract[render.Render](v, Render) }
// AsAudio returns the audio handle held by v.
func AsAudio(v Value) (audio.Render, error) { return extract[audio.Render](v, Audio) }
// AsImage returns the image held by v.
func AsImage(v Value) (*raster.Image, error) { return extract[*raster.Image](v, Image) }

// AsSymbol returns the symbol's name.
func AsSymbol(v Value) (string, error) {
	s, err := extract[Sym](v, Symbol)
	return string(s), err
}

// AsList returns the list items. The slice is shared and must not be modified.
func AsList(v Value) ([]Value, error) { return extract[[]Value](v, List) }

// AsFloatTimeline returns the scalar timeline held by v.
func AsFloatTimeline(v Value) (timeline.Timeline[float64], error) {
	return extract[timeline.Timeline[float64]](v, FloatTimeline)
}

// AsColorTimeline returns the color timeline held by v.
func AsColorTimeline(v Value) (timeline.Timeline[geom.Rgba], error) {
	return extract[timeline.Timeline[geom.Rgba]](v, ColorTimeline)
}

// AsVec2Timeline returns the Vec2 timeline held by v.
func AsVec2Timeline(v Value) (timeline.Timeline[geom.Vec2], error) {
	return extract[timeline.Timeline[geom.Vec2]](v, Vec2Timeline)
}

// AsVec3Timeline returns the Vec3 timeline held by v.
func AsVec3Timeline(v Value) (timeline.Timeline[geom.Vec3], error) {
	return extract[timeline.Timeline[geom.Vec3]](v, Vec3Timeline)
}

// Arg returns args[i], failing with ErrMissingArgument when the list is too
// short.
func Arg(args []Value, i int) (Value, error) {
	if i < 0 || i >= len(args) {
		return Value{}, fmt.Errorf("%w: need argument %d, have %d", ErrMissingArgument, i+1, len(args))
	}
	return args[i], nil
}

// ArgAs is Arg followed by extraction. Errors name the argument position.
func ArgAs[T any](args []Value, i int, as func(Value) (T, error)) (T, error) {
	v, err := Arg(args, i)
	if err != nil {
		var zero T
		return zero, err
	}
	out, err := as(v)
	if err != nil {
		return out, fmt.Errorf("argument %d: %w", i+1, err)
	}
	return out, nil
}
