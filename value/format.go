package value

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goweiwen/kantera/geom"
)

// DebugString renders a string quoted.
func DebugString(s string) string { return strconv.Quote(s) }

// DebugSymbol renders a symbol with a leading quote mark.
func DebugSymbol(name string) string { return "'" + name }

// String renders v in the debug style used by stringify. Handles render as
// their kind in angle brackets.
func (v Value) String() string {
	switch v.kind {
	case Bool:
		return strconv.FormatBool(v.payload.(bool))
	case Int:
		return strconv.FormatInt(int64(v.payload.(int32)), 10)
	case Float:
		return geom.FormatFloat(v.payload.(float64))
	case String:
		return DebugString(v.payload.(string))
	case Symbol:
		return DebugSymbol(string(v.payload.(Sym)))
	case Vec2, Vec3, Color:
		return fmt.Sprint(v.payload)
	case List:
		items := v.payload.([]Value)
		parts := make([]string, len(items))
		for i, item := range items {
			parts[i] = item.String()
		}
		return "(" + strings.Join(parts, " ") + ")"
	case Invalid:
		return "<invalid>"
	default:
		return "<" + v.kind.String() + ">"
	}
}
