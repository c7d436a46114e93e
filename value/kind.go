package value

import "fmt"

// Kind is the runtime tag of a Value.
type Kind int

const (
	Invalid Kind = iota
	Bool
	Int
	Float
	String
	Symbol
	Vec2
	Vec3
	Color
	List
	Native
	FloatTimeline
	ColorTimeline
	Vec2Timeline
	Vec3Timeline
	Render
	Audio
	Image
)

var kindNames = [...]string{
	Invalid:       "invalid",
	Bool:          "bool",
	Int:           "int32",
	Float:         "float64",
	String:        "string",
	Symbol:        "symbol",
	Vec2:          "vec2",
	Vec3:          "vec3",
	Color:         "color",
	List:          "list",
	Native:        "native_function",
	FloatTimeline: "timeline<float64>",
	ColorTimeline: "timeline<color>",
	Vec2Timeline:  "timeline<vec2>",
	Vec3Timeline:  "timeline<vec3>",
	Render:        "render",
	Audio:         "audio",
	Image:         "image",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}
