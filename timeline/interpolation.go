package timeline

import "fmt"

// Mode names the rule used to move from the previous point to a segment's value.
type Mode int

const (
	Constant Mode = iota
	Linear
	Bezier
)

func (m Mode) String() string {
	switch m {
	case Constant:
		return "constant"
	case Linear:
		return "linear"
	case Bezier:
		return "bezier"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps a script symbol to a Mode.
func ParseMode(name string) (Mode, bool) {
	switch name {
	case "constant":
		return Constant, true
	case "linear":
		return Linear, true
	case "bezier":
		return Bezier, true
	}
	return 0, false
}

// Interpolation is a segment's interpolation kind. Control points are only
// meaningful when Mode is Bezier.
type Interpolation[T any] struct {
	Mode     Mode
	Control1 T
	Control2 T
}

// ConstantStep holds the previous value until the segment ends.
func ConstantStep[T any]() Interpolation[T] { return Interpolation[T]{Mode: Constant} }

// LinearStep moves at constant speed to the segment value.
func LinearStep[T any]() Interpolation[T] { return Interpolation[T]{Mode: Linear} }

// BezierStep follows a cubic Bezier curve through the two control points.
func BezierStep[T any](c1, c2 T) Interpolation[T] {
	return Interpolation[T]{Mode: Bezier, Control1: c1, Control2: c2}
}

// cubic evaluates the cubic Bezier p0, c1, c2, p3 at u with de Casteljau's
// construction, so any type with a lerp can be curved.
func cubic[T any](lerp LerpFunc[T], p0, c1, c2, p3 T, u float64) T {
	a := lerp(p0, c1, u)
	b := lerp(c1, c2, u)
	c := lerp(c2, p3, u)
	d := lerp(a, b, u)
	e := lerp(b, c, u)
	return lerp(d, e, u)
}
