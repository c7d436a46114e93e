package render

import (
	"fmt"

	"github.com/goweiwen/kantera/timeline"
)

// BlendMode is the paint rule of a composite layer.
type BlendMode int

const (
	// BlendNone paints the layer as is.
	BlendNone BlendMode = iota
	// BlendNormal alpha-blends the layer over what is below it.
	BlendNormal
)

func (m BlendMode) String() string {
	switch m {
	case BlendNone:
		return "none"
	case BlendNormal:
		return "normal"
	default:
		return fmt.Sprintf("BlendMode(%d)", int(m))
	}
}

// ParseBlendMode maps a script symbol to a BlendMode.
func ParseBlendMode(name string) (BlendMode, bool) {
	switch name {
	case "none":
		return BlendNone, true
	case "normal":
		return BlendNormal, true
	}
	return 0, false
}

// CompositeMode pairs a blend rule with its opacity. Opacity is nil for
// BlendNone.
type CompositeMode struct {
	Blend   BlendMode
	Opacity timeline.Timeline[float64]
}

// Normal returns normal blending at full opacity.
func Normal() CompositeMode {
	return CompositeMode{Blend: BlendNormal, Opacity: timeline.Const[float64]{Value: 1}}
}

// Layer is one entry of a Composite.
type Layer struct {
	Render Render
	Mode   CompositeMode
}

// Composite stacks layers; earlier layers are painted first.
type Composite struct {
	Layers []Layer
}

// NewComposite stacks a copy of layers; later changes to the slice are not
// seen.
func NewComposite(layers []Layer) *Composite {
	out := make([]Layer, len(layers))
	copy(out, layers)
	return &Composite{Layers: out}
}

func (*Composite) Name() string { return "composite" }
