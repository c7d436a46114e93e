package builtins

import (
	"strconv"

	"github.com/goweiwen/kantera/dispatch"
	"github.com/goweiwen/kantera/geom"
	"github.com/goweiwen/kantera/value"
)

func debugCandidate[T any](
	kind value.Kind,
	extract func(value.Value) (T, error),
	format func(T) string,
) dispatch.Candidate {
	return dispatch.For(kind, extract, func(xs []T) (value.Value, error) {
		return value.NewString(format(xs[0])), nil
	})
}

var stringifyCandidates = []dispatch.Candidate{
	debugCandidate(value.String, value.AsString, value.DebugString),
	debugCandidate(value.Symbol, value.AsSymbol, value.DebugSymbol),
	debugCandidate(value.Float, value.AsFloat, geom.FormatFloat),
	debugCandidate(value.Int, value.AsInt, func(i int32) string { return strconv.FormatInt(int64(i), 10) }),
	debugCandidate(value.Vec2, value.AsVec2, geom.Vec2.String),
	debugCandidate(value.Vec3, value.AsVec3, geom.Vec3.String),
	debugCandidate(value.Color, value.AsColor, geom.Rgba.String),
}

// stringify renders its first argument in debug style. Later arguments are
// ignored.
func stringify(args []value.Value) (value.Value, error) {
	if _, err := value.Arg(args, 0); err != nil {
		return value.Value{}, err
	}
	return dispatch.Dispatch(args[:1], stringifyCandidates...)
}
