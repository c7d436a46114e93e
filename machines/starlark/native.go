package starlark

import (
	"fmt"

	starlarkLib "go.starlark.net/starlark"

	"github.com/goweiwen/kantera/value"
)

// nativeCallable exposes a builtin to scripts. Arguments are positional only.
type nativeCallable struct {
	name   string
	fn     value.NativeFunc
	bridge *bridge
}

var _ starlarkLib.Callable = (*nativeCallable)(nil)

func (n *nativeCallable) Name() string { return n.name }
func (n *nativeCallable) String() string { return fmt.Sprintf("<builtin %s>", n.name) }
func (n *nativeCallable) Type() string { return "builtin" }
func (n *nativeCallable) Freeze() {}
func (n *nativeCallable) Truth() starlarkLib.Bool { return starlarkLib.True }

func (n *nativeCallable) Hash() (uint32, error) {
	return starlarkLib.String(n.name).Hash()
}

func (n *nativeCallable) CallInternal(
	_ *starlarkLib.Thread,
	args starlarkLib.Tuple,
	kwargs []starlarkLib.Tuple,
) (starlarkLib.Value, error) {
	if len(kwargs) > 0 {
		return nil, fmt.Errorf("%s: unexpected keyword argument %s", n.name, kwargs[0][0])
	}

	in := make([]value.Value, len(args))
	for i, arg := range args {
		v, err := n.bridge.fromStarlark(arg)
		if err != nil {
			return nil, fmt.Errorf("%s: argument %d: %w", n.name, i, err)
		}
		in[i] = v
	}

	out, err := n.fn(in)
	if err != nil {
		return nil, err
	}
	return n.bridge.toStarlark(out)
}
