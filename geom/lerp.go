package geom

import (
	"math"
	"strconv"
	"strings"
)

// LerpFloat interpolates between a and b; t=0 yields a and t=1 yields b.
func LerpFloat(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpVec2 interpolates each component with LerpFloat.
func LerpVec2(a, b Vec2, t float64) Vec2 {
	return Vec2{LerpFloat(a.X, b.X, t), LerpFloat(a.Y, b.Y, t)}
}

// LerpVec3 interpolates each component with LerpFloat.
func LerpVec3(a, b Vec3, t float64) Vec3 {
	return Vec3{LerpFloat(a.X, b.X, t), LerpFloat(a.Y, b.Y, t), LerpFloat(a.Z, b.Z, t)}
}

// LerpRgba interpolates every channel, alpha included, independently.
func LerpRgba(a, b Rgba, t float64) Rgba {
	return Rgba{
		LerpFloat(a.R, b.R, t),
		LerpFloat(a.G, b.G, t),
		LerpFloat(a.B, b.B, t),
		LerpFloat(a.A, b.A, t),
	}
}

// FormatFloat renders f so that it always reads back as a float: integral values
// keep a trailing ".0".
func FormatFloat(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
