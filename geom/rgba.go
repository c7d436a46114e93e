package geom

import "fmt"

// Rgba is a straight-alpha color with channels nominally in [0, 1]. Channels are
// never clamped; out of range values are carried as given.
type Rgba struct {
	R, G, B, A float64
}

// Opaque returns the color with alpha forced to 1.
func (c Rgba) Opaque() Rgba {
	c.A = 1
	return c
}

func (c Rgba) String() string {
	return fmt.Sprintf("Rgba(%s, %s, %s, %s)",
		FormatFloat(c.R), FormatFloat(c.G), FormatFloat(c.B), FormatFloat(c.A))
}
