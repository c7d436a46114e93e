// Package raster holds decoded still images and the text rasterizer that
// produces them.
package raster

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/goweiwen/kantera/geom"
)

// Image is a straight-alpha float image stored row-major.
type Image struct {
	Width  int
	Height int
	Pixels []geom.Rgba
}

// NewImage allocates a transparent black image.
func NewImage(width, height int) *Image {
	return &Image{Width: width, Height: height, Pixels: make([]geom.Rgba, width*height)}
}

// At returns the pixel at (x, y), or transparent black outside the bounds.
func (m *Image) At(x, y int) geom.Rgba {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return geom.Rgba{}
	}
	return m.Pixels[y*m.Width+x]
}

// Set writes the pixel at (x, y); writes outside the bounds are dropped.
func (m *Image) Set(x, y int, c geom.Rgba) {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return
	}
	m.Pixels[y*m.Width+x] = c
}

// Map returns a new image with f applied to every pixel.
func (m *Image) Map(f func(geom.Rgba) geom.Rgba) *Image {
	out := NewImage(m.Width, m.Height)
	for i, p := range m.Pixels {
		out.Pixels[i] = f(p)
	}
	return out
}

// FromImage converts any decoded image to an Image.
func FromImage(src image.Image) *Image {
	b := src.Bounds()
	out := NewImage(b.Dx(), b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBA64Model.Convert(src.At(x, y)).(color.NRGBA64)
			out.Set(x-b.Min.X, y-b.Min.Y, geom.Rgba{
				R: float64(c.R) / 0xffff,
				G: float64(c.G) / 0xffff,
				B: float64(c.B) / 0xffff,
				A: float64(c.A) / 0xffff,
			})
		}
	}
	return out
}

// Import decodes a PNG, JPEG or GIF file.
func Import(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrImportFailed, err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %w", ErrImportFailed, path, err)
	}
	return FromImage(src), nil
}
