// Package render defines the handles scene scripts build: immutable descriptions
// of image-producing combinators. Rasterizing them is the job of a renderer
// outside this module.
package render

import (
	"github.com/goweiwen/kantera/geom"
	"github.com/goweiwen/kantera/raster"
	"github.com/goweiwen/kantera/timeline"
)

// Render is a handle to an image-producing combinator.
type Render interface {
	// Name identifies the combinator kind in diagnostics.
	Name() string
}

// Plain fills the whole frame with a color that may vary over time.
type Plain struct {
	Color timeline.Timeline[geom.Rgba]
}

// NewPlain returns a plain fill. A fixed color is passed as timeline.Const.
func NewPlain(color timeline.Timeline[geom.Rgba]) *Plain {
	return &Plain{Color: color}
}

func (*Plain) Name() string { return "plain" }

// Transform applies a time-varying affine transform to Source. Rotation is in
// radians.
type Transform struct {
	Source      Render
	Translation timeline.Timeline[geom.Vec2]
	Scale       timeline.Timeline[geom.Vec2]
	Rotation    timeline.Timeline[float64]
}

// NewTransform wraps source with time-varying translation, scale and
// rotation.
func NewTransform(
	source Render,
	translation, scale timeline.Timeline[geom.Vec2],
	rotation timeline.Timeline[float64],
) *Transform {
	return &Transform{Source: source, Translation: translation, Scale: scale, Rotation: rotation}
}

func (*Transform) Name() string { return "transform" }

// Sizing selects how an image is fitted to the frame.
type Sizing int

const (
	Contain Sizing = iota
	Cover
	Stretch
)

// Sampling selects the pixel interpolation used when an image is resampled.
type Sampling int

const (
	Bilinear Sampling = iota
	NearestNeighbor
)

// ImageRender draws a still image, using Default outside the image bounds.
type ImageRender struct {
	Image    *raster.Image
	Sizing   Sizing
	Default  geom.Rgba
	Sampling Sampling
}

// NewImageRender fits image with Contain sizing and bilinear sampling.
func NewImageRender(image *raster.Image, def geom.Rgba) *ImageRender {
	return &ImageRender{Image: image, Sizing: Contain, Default: def, Sampling: Bilinear}
}

func (*ImageRender) Name() string { return "image_render" }
