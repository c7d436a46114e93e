package builtins

import (
	"fmt"

	"github.com/goweiwen/kantera/geom"
	"github.com/goweiwen/kantera/timeline"
	"github.com/goweiwen/kantera/value"
)

// buildPath constructs a timeline. The first argument fixes the element type
// by its shape: a float, a color, or a two or three element vector. Every
// other argument is a segment (delta_time value [mode [control1 control2]]).
func buildPath(args []value.Value) (value.Value, error) {
	first, err := value.Arg(args, 0)
	if err != nil {
		return value.Value{}, fmt.Errorf("path: %w", err)
	}
	segments := args[1:]

	switch first.Kind() {
	case value.Float:
		initial, _ := value.AsFloat(first)
		return pathOf(initial, timeline.Float, segments, value.AsFloat, value.NewFloatTimeline)
	case value.Color:
		initial, _ := value.AsColor(first)
		return pathOf(initial, timeline.Color, segments, value.AsColor, value.NewColorTimeline)
	case value.Vec2:
		initial, _ := value.AsVec2(first)
		return pathOf(initial, timeline.Vec2, segments, vec2Of, value.NewVec2Timeline)
	case value.Vec3:
		initial, _ := value.AsVec3(first)
		return pathOf(initial, timeline.Vec3, segments, vec3Of, value.NewVec3Timeline)
	case value.List:
		items, _ := value.AsList(first)
		switch len(items) {
		case 2:
			initial, err := vec2Of(first)
			if err != nil {
				return value.Value{}, fmt.Errorf("path: initial value: %w: %w", value.ErrUnsupportedType, err)
			}
			return pathOf(initial, timeline.Vec2, segments, vec2Of, value.NewVec2Timeline)
		case 3:
			initial, err := vec3Of(first)
			if err != nil {
				return value.Value{}, fmt.Errorf("path: initial value: %w: %w", value.ErrUnsupportedType, err)
			}
			return pathOf(initial, timeline.Vec3, segments, vec3Of, value.NewVec3Timeline)
		}
		return value.Value{}, fmt.Errorf("path: %w: %d-element list", value.ErrUnsupportedType, len(items))
	}
	return value.Value{}, fmt.Errorf("path: %w: %s", value.ErrUnsupportedType, first.Kind())
}

func pathOf[T any](
	initial T,
	lerp timeline.LerpFunc[T],
	segments []value.Value,
	conv func(value.Value) (T, error),
	wrap func(timeline.Timeline[T]) value.Value,
) (value.Value, error) {
	p := timeline.NewPath(initial, lerp)
	for i, seg := range segments {
		var err error
		if p, err = appendSegment(p, seg, conv); err != nil {
			return value.Value{}, fmt.Errorf("path: segment %d: %w", i+1, err)
		}
	}
	return wrap(p), nil
}

func appendSegment[T any](p *timeline.Path[T], seg value.Value, conv func(value.Value) (T, error)) (*timeline.Path[T], error) {
	fields, err := value.AsList(seg)
	if err != nil {
		return nil, err
	}

	dt, err := value.ArgAs(fields, 0, value.AsFloat)
	if err != nil {
		return nil, err
	}
	if !(dt >= 0) {
		return nil, fmt.Errorf("%w: delta time must be non-negative, got %s", value.ErrInvalidDuration, geom.FormatFloat(dt))
	}

	v, err := value.ArgAs(fields, 1, conv)
	if err != nil {
		return nil, err
	}

	interp := timeline.LinearStep[T]()
	if len(fields) > 2 {
		name, err := value.ArgAs(fields, 2, value.AsSymbol)
		if err != nil {
			return nil, err
		}
		mode, ok := timeline.ParseMode(name)
		if !ok {
			return nil, invalidEnum("interpolation", name)
		}
		switch mode {
		case timeline.Constant:
			interp = timeline.ConstantStep[T]()
		case timeline.Bezier:
			c1, err := value.ArgAs(fields, 3, conv)
			if err != nil {
				return nil, fmt.Errorf("bezier control point: %w", err)
			}
			c2, err := value.ArgAs(fields, 4, conv)
			if err != nil {
				return nil, fmt.Errorf("bezier control point: %w", err)
			}
			interp = timeline.BezierStep(c1, c2)
		}
	}

	return p.Append(dt, v, interp), nil
}
