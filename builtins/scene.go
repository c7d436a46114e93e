package builtins

import (
	"fmt"

	"github.com/goweiwen/kantera/dispatch"
	"github.com/goweiwen/kantera/geom"
	"github.com/goweiwen/kantera/render"
	"github.com/goweiwen/kantera/timeline"
	"github.com/goweiwen/kantera/value"
)

var plainCandidates = []dispatch.Candidate{
	dispatch.For(value.Color, value.AsColor, func(xs []geom.Rgba) (value.Value, error) {
		return value.NewRender(render.NewPlain(timeline.Const[geom.Rgba]{Value: xs[0]})), nil
	}),
	dispatch.For(value.ColorTimeline, value.AsColorTimeline, func(xs []timeline.Timeline[geom.Rgba]) (value.Value, error) {
		return value.NewRender(render.NewPlain(xs[0])), nil
	}),
}

// plain fills the frame with a color or a color path.
func plain(args []value.Value) (value.Value, error) {
	if _, err := value.Arg(args, 0); err != nil {
		return value.Value{}, fmt.Errorf("plain: %w", err)
	}
	out, err := dispatch.Dispatch(args[:1], plainCandidates...)
	if err != nil {
		return value.Value{}, fmt.Errorf("plain: %w", err)
	}
	return out, nil
}

// frame applies an edge policy: (render type [fill]). The constant policy
// needs a fill color.
func frame(args []value.Value) (value.Value, error) {
	source, err := value.ArgAs(args, 0, value.AsRender)
	if err != nil {
		return value.Value{}, fmt.Errorf("frame: %w", err)
	}
	name, err := value.ArgAs(args, 1, value.AsSymbol)
	if err != nil {
		return value.Value{}, fmt.Errorf("frame: %w", err)
	}
	frameType, ok := render.ParseFrameType(name)
	if !ok {
		return value.Value{}, fmt.Errorf("frame: %w", invalidEnum("frame type", name))
	}

	var fill geom.Rgba
	if frameType == render.FrameConstant {
		if fill, err = value.ArgAs(args, 2, value.AsColor); err != nil {
			return value.Value{}, fmt.Errorf("frame: constant fill: %w", err)
		}
	}
	return value.NewRender(render.NewFrame(source, frameType, fill)), nil
}

// entries accepts entry lists either as separate arguments or as a single
// list of lists. A single empty list means no entries.
func entries(args []value.Value) []value.Value {
	if len(args) != 1 {
		return args
	}
	items, err := value.AsList(args[0])
	if err != nil {
		return args
	}
	if len(items) == 0 || items[0].Kind() == value.List {
		return items
	}
	return args
}

// sequence builds a playlist of (start_time restart render) entries in the
// order given.
func sequence(args []value.Value) (value.Value, error) {
	seq := render.NewSequence()
	for i, entry := range entries(args) {
		fields, err := value.AsList(entry)
		if err != nil {
			return value.Value{}, fmt.Errorf("sequence: entry %d: %w", i+1, err)
		}
		start, err := value.ArgAs(fields, 0, value.AsFloat)
		if err != nil {
			return value.Value{}, fmt.Errorf("sequence: entry %d: %w", i+1, err)
		}
		restart, err := value.ArgAs(fields, 1, value.AsBool)
		if err != nil {
			return value.Value{}, fmt.Errorf("sequence: entry %d: %w", i+1, err)
		}
		r, err := value.ArgAs(fields, 2, value.AsRender)
		if err != nil {
			return value.Value{}, fmt.Errorf("sequence: entry %d: %w", i+1, err)
		}
		seq = seq.Append(start, restart, r)
	}
	return value.NewRender(seq), nil
}

// composite stacks (render mode) layers; the first layer is painted first.
func composite(args []value.Value) (value.Value, error) {
	layerArgs := entries(args)
	layers := make([]render.Layer, 0, len(layerArgs))
	for i, entry := range layerArgs {
		fields, err := value.AsList(entry)
		if err != nil {
			return value.Value{}, fmt.Errorf("composite: layer %d: %w", i+1, err)
		}
		r, err := value.ArgAs(fields, 0, value.AsRender)
		if err != nil {
			return value.Value{}, fmt.Errorf("composite: layer %d: %w", i+1, err)
		}
		name, err := value.ArgAs(fields, 1, value.AsSymbol)
		if err != nil {
			return value.Value{}, fmt.Errorf("composite: layer %d: %w", i+1, err)
		}
		blend, ok := render.ParseBlendMode(name)
		if !ok {
			return value.Value{}, fmt.Errorf("composite: layer %d: %w", i+1, invalidEnum("composite mode", name))
		}

		mode := render.CompositeMode{Blend: render.BlendNone}
		if blend == render.BlendNormal {
			mode = render.Normal()
		}
		layers = append(layers, render.Layer{Render: r, Mode: mode})
	}
	return value.NewRender(render.NewComposite(layers)), nil
}

var vec2Candidates = []dispatch.Candidate{
	dispatch.For(value.Vec2Timeline, value.AsVec2Timeline, func(xs []timeline.Timeline[geom.Vec2]) (value.Value, error) {
		return value.NewVec2Timeline(xs[0]), nil
	}),
	dispatch.For(value.Vec2, vec2Of, func(xs []geom.Vec2) (value.Value, error) {
		return value.NewVec2Timeline(timeline.Const[geom.Vec2]{Value: xs[0]}), nil
	}),
}

// vec2Source resolves a Vec2 timeline, a Vec2 or a two element list.
func vec2Source(v value.Value) (timeline.Timeline[geom.Vec2], error) {
	out, err := dispatch.Dispatch([]value.Value{v}, vec2Candidates...)
	if err != nil {
		return nil, err
	}
	return value.AsVec2Timeline(out)
}

// transform is (render translation scale rotation); each of the last three
// is a literal or a timeline.
func transform(args []value.Value) (value.Value, error) {
	source, err := value.ArgAs(args, 0, value.AsRender)
	if err != nil {
		return value.Value{}, fmt.Errorf("transform: %w", err)
	}
	translation, err := value.ArgAs(args, 1, vec2Source)
	if err != nil {
		return value.Value{}, fmt.Errorf("transform: translation: %w", err)
	}
	scale, err := value.ArgAs(args, 2, vec2Source)
	if err != nil {
		return value.Value{}, fmt.Errorf("transform: scale: %w", err)
	}
	rotation, err := value.ArgAs(args, 3, scalarSource)
	if err != nil {
		return value.Value{}, fmt.Errorf("transform: rotation: %w", err)
	}
	return value.NewRender(render.NewTransform(source, translation, scale, rotation)), nil
}

// imageRender draws an image with a default color outside it.
func imageRender(args []value.Value) (value.Value, error) {
	img, err := value.ArgAs(args, 0, value.AsImage)
	if err != nil {
		return value.Value{}, fmt.Errorf("image_render: %w", err)
	}
	def, err := value.ArgAs(args, 1, value.AsColor)
	if err != nil {
		return value.Value{}, fmt.Errorf("image_render: %w", err)
	}
	return value.NewRender(render.NewImageRender(img, def)), nil
}
