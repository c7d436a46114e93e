package builtins

import (
	"fmt"

	"github.com/goweiwen/kantera/dispatch"
	"github.com/goweiwen/kantera/geom"
	"github.com/goweiwen/kantera/timeline"
	"github.com/goweiwen/kantera/value"
)

func cycleCandidate[T any](
	kind value.Kind,
	extract func(value.Value) (timeline.Timeline[T], error),
	wrap func(timeline.Timeline[T]) value.Value,
	duration float64,
) dispatch.Candidate {
	return dispatch.For(kind, extract, func(xs []timeline.Timeline[T]) (value.Value, error) {
		return wrap(timeline.NewCycle(xs[0], duration)), nil
	})
}

// cycle repeats a timeline with the given period.
func cycle(args []value.Value) (value.Value, error) {
	duration, err := value.ArgAs(args, 1, value.AsFloat)
	if err != nil {
		return value.Value{}, fmt.Errorf("cycle: %w", err)
	}
	if !(duration > 0) {
		return value.Value{}, fmt.Errorf("cycle: %w: period must be positive, got %s",
			value.ErrInvalidDuration, geom.FormatFloat(duration))
	}

	out, err := dispatch.Dispatch(args[:1],
		cycleCandidate(value.FloatTimeline, value.AsFloatTimeline, value.NewFloatTimeline, duration),
		cycleCandidate(value.Vec2Timeline, value.AsVec2Timeline, value.NewVec2Timeline, duration),
		cycleCandidate(value.Vec3Timeline, value.AsVec3Timeline, value.NewVec3Timeline, duration),
		cycleCandidate(value.ColorTimeline, value.AsColorTimeline, value.NewColorTimeline, duration),
	)
	if err != nil {
		return value.Value{}, fmt.Errorf("cycle: %w", err)
	}
	return out, nil
}

// scalarCandidates resolve a float literal or a float timeline to a timeline.
var scalarCandidates = []dispatch.Candidate{
	dispatch.For(value.Float, value.AsFloat, func(xs []float64) (value.Value, error) {
		return value.NewFloatTimeline(timeline.Const[float64]{Value: xs[0]}), nil
	}),
	dispatch.For(value.FloatTimeline, value.AsFloatTimeline, func(xs []timeline.Timeline[float64]) (value.Value, error) {
		return value.NewFloatTimeline(xs[0]), nil
	}),
}

// scalarSource resolves v to a float timeline.
func scalarSource(v value.Value) (timeline.Timeline[float64], error) {
	out, err := dispatch.Dispatch([]value.Value{v}, scalarCandidates...)
	if err != nil {
		return nil, err
	}
	return value.AsFloatTimeline(out)
}

// sine builds a sinusoidal timeline. The amplitude may be a literal or a
// float timeline; the result is a float timeline either way.
func sine(args []value.Value) (value.Value, error) {
	phase, err := value.ArgAs(args, 0, value.AsFloat)
	if err != nil {
		return value.Value{}, fmt.Errorf("sin: %w", err)
	}
	frequency, err := value.ArgAs(args, 1, value.AsFloat)
	if err != nil {
		return value.Value{}, fmt.Errorf("sin: %w", err)
	}
	amplitude, err := value.ArgAs(args, 2, scalarSource)
	if err != nil {
		return value.Value{}, fmt.Errorf("sin: amplitude: %w", err)
	}
	return value.NewFloatTimeline(timeline.NewSine(phase, frequency, amplitude)), nil
}
