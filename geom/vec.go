// Package geom holds the small value types scene scripts compute with: two and
// three component vectors and RGBA colors.
package geom

import "fmt"

// Vec2 is a two component vector.
type Vec2 struct {
	X, Y float64
}

// Add returns the componentwise sum.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns the componentwise difference.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Mul returns the componentwise product.
func (v Vec2) Mul(o Vec2) Vec2 { return Vec2{v.X * o.X, v.Y * o.Y} }

// Div returns the componentwise quotient. Division by a zero component follows
// IEEE 754 and yields an infinity or NaN.
func (v Vec2) Div(o Vec2) Vec2 { return Vec2{v.X / o.X, v.Y / o.Y} }

// Scale multiplies both components by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

func (v Vec2) String() string {
	return fmt.Sprintf("Vec2(%s, %s)", FormatFloat(v.X), FormatFloat(v.Y))
}

// Vec3 is a three component vector.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns the componentwise sum.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
// Sub returns the componentwise difference.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
// Mul returns the componentwise product.
func (v Vec3) Mul(o Vec3) Vec3 { return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }
// Div returns the componentwise quotient, with IEEE 754 results for zero
// components.
func (v Vec3) Div(o Vec3) Vec3 { return Vec3{v.X / o.X, v.Y / o.Y, v.Z / o.Z} }

// Scale multiplies every component by s.
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

func (v Vec3) String() string {
	return fmt.Sprintf("Vec3(%s, %s, %s)", FormatFloat(v.X), FormatFloat(v.Y), FormatFloat(v.Z))
}
