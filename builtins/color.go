package builtins

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/goweiwen/kantera/geom"
	"github.com/goweiwen/kantera/value"
)

var (
	rgbPattern  = regexp.MustCompile(`^#([0-9a-fA-F]{2})([0-9a-fA-F]{2})([0-9a-fA-F]{2})$`)
	rgbaPattern = regexp.MustCompile(`^#([0-9a-fA-F]{2})([0-9a-fA-F]{2})([0-9a-fA-F]{2})([0-9a-fA-F]{2})$`)
)

// rgb builds an opaque color from "#RRGGBB" or three float channels.
func rgb(args []value.Value) (value.Value, error) {
	c, err := parseColor(args, rgbPattern, 3)
	if err != nil {
		return value.Value{}, fmt.Errorf("rgb: %w", err)
	}
	return value.NewColor(c.Opaque()), nil
}

// rgba builds a color from "#RRGGBBAA" or four float channels.
func rgba(args []value.Value) (value.Value, error) {
	c, err := parseColor(args, rgbaPattern, 4)
	if err != nil {
		return value.Value{}, fmt.Errorf("rgba: %w", err)
	}
	return value.NewColor(c), nil
}

// parseColor reads channels either from a hex string in args[0] or from the
// first n float arguments. Channels are not clamped.
func parseColor(args []value.Value, pattern *regexp.Regexp, n int) (geom.Rgba, error) {
	first, err := value.Arg(args, 0)
	if err != nil {
		return geom.Rgba{}, err
	}

	ch := []float64{0, 0, 0, 1}
	if s, err := value.AsString(first); err == nil {
		m := pattern.FindStringSubmatch(s)
		if m == nil {
			return geom.Rgba{}, fmt.Errorf("%w: %q", value.ErrInvalidColorFormat, s)
		}
		for i, group := range m[1:] {
			b, err := strconv.ParseUint(group, 16, 8)
			if err != nil {
				return geom.Rgba{}, fmt.Errorf("%w: %q: %w", value.ErrInvalidColorFormat, s, err)
			}
			ch[i] = float64(b) / 255
		}
		return geom.Rgba{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, nil
	}

	for i := range n {
		if ch[i], err = value.ArgAs(args, i, value.AsFloat); err != nil {
			return geom.Rgba{}, err
		}
	}
	return geom.Rgba{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, nil
}
