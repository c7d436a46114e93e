// Package timeline models values that vary over time. A Timeline yields a value
// for any time; Path, Cycle, Sine and Const are the implementations.
package timeline

import "github.com/goweiwen/kantera/geom"

// Timeline produces a value of type T for a time in seconds.
type Timeline[T any] interface {
	At(t float64) T
}

// LerpFunc interpolates from a to b by the fraction t.
type LerpFunc[T any] func(a, b T, t float64) T

// Const is a literal lifted to a timeline; it ignores time.
type Const[T any] struct {
	Value T
}

// At returns c.Value for every t.
func (c Const[T]) At(float64) T { return c.Value }

// Func adapts a plain function to a Timeline.
type Func[T any] func(t float64) T

func (f Func[T]) At(t float64) T { return f(t) }

// Lerp functions for the element types paths are built over.
var (
	Float LerpFunc[float64]   = geom.LerpFloat
	Vec2  LerpFunc[geom.Vec2] = geom.LerpVec2
	Vec3  LerpFunc[geom.Vec3] = geom.LerpVec3
	Color LerpFunc[geom.Rgba] = geom.LerpRgba
)
