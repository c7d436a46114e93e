package raster

import (
	"fmt"
	"image"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/goweiwen/kantera/geom"
)

// Font is a parsed TrueType or OpenType font.
type Font struct {
	face *opentype.Font
}

// ParseFont parses font file bytes.
func ParseFont(b []byte) (*Font, error) {
	f, err := opentype.Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFontFailed, err)
	}
	return &Font{face: f}, nil
}

// LoadFont reads and parses the font file at path.
func LoadFont(path string) (*Font, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFontFailed, err)
	}
	return ParseFont(b)
}

// Text rasterizes s in black at the given pixel size. Coverage becomes the
// alpha channel.
func Text(f *Font, scale float64, s string) (*Image, error) {
	face, err := opentype.NewFace(f.face, &opentype.FaceOptions{
		Size:    scale,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFontFailed, err)
	}
	defer face.Close()

	metrics := face.Metrics()
	width := font.MeasureString(face, s).Ceil()
	height := (metrics.Ascent + metrics.Descent).Ceil()
	mask := image.NewAlpha(image.Rect(0, 0, width, height))

	d := font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.P(0, metrics.Ascent.Ceil()),
	}
	d.DrawString(s)

	out := NewImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			a := mask.AlphaAt(x, y).A
			out.Set(x, y, geom.Rgba{A: float64(a) / 0xff})
		}
	}
	return out, nil
}
