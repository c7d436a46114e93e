package render

import (
	"fmt"

	"github.com/goweiwen/kantera/geom"
)

// FrameType is the policy for coordinates outside the source's frame.
type FrameType int

const (
	// FrameConstant paints the fill color outside the frame.
	FrameConstant FrameType = iota
	FrameExtend
	FrameRepeat
	FrameReflect
)

var frameTypeNames = map[FrameType]string{
	FrameConstant: "constant",
	FrameExtend:   "extend",
	FrameRepeat:   "repeat",
	FrameReflect:  "reflect",
}

func (f FrameType) String() string {
	if name, ok := frameTypeNames[f]; ok {
		return name
	}
	return fmt.Sprintf("FrameType(%d)", int(f))
}

// ParseFrameType maps a script symbol to a FrameType.
func ParseFrameType(name string) (FrameType, bool) {
	for ft, n := range frameTypeNames {
		if n == name {
			return ft, true
		}
	}
	return 0, false
}

// Frame applies an edge policy to Source. Fill is only used by FrameConstant.
type Frame struct {
	Source Render
	Type   FrameType
	Fill   geom.Rgba
}

// NewFrame wraps source with an edge policy. fill only matters for
// FrameConstant.
func NewFrame(source Render, frameType FrameType, fill geom.Rgba) *Frame {
	return &Frame{Source: source, Type: frameType, Fill: fill}
}

func (*Frame) Name() string { return "frame" }
