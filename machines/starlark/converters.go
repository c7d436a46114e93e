package starlark

import (
	"errors"
	"fmt"
	"math"

	starlarkLib "go.starlark.net/starlark"

	"github.com/goweiwen/kantera/env"
	"github.com/goweiwen/kantera/value"
)

// bridge converts between kantera values and Starlark values. Host values
// keep a pointer back to it so operators can reach the arithmetic builtins.
type bridge struct {
	env *env.Env
}

// toStarlark converts v for use in a script. Lists become tuples, since
// values are immutable; natives become callables; every other kind without a
// Starlark counterpart is wrapped as a host value.
func (b *bridge) toStarlark(v value.Value) (starlarkLib.Value, error) {
	switch v.Kind() {
	case value.Invalid:
		return starlarkLib.None, nil
	case value.Bool:
		x, _ := value.AsBool(v)
		return starlarkLib.Bool(x), nil
	case value.Int:
		x, _ := value.AsInt(v)
		return starlarkLib.MakeInt(int(x)), nil
	case value.Float:
		x, _ := value.AsFloat(v)
		return starlarkLib.Float(x), nil
	case value.String:
		x, _ := value.AsString(v)
		return starlarkLib.String(x), nil
	case value.List:
		items, _ := value.AsList(v)
		tuple := make(starlarkLib.Tuple, len(items))
		for i, item := range items {
			var err error
			if tuple[i], err = b.toStarlark(item); err != nil {
				return nil, err
			}
		}
		return tuple, nil
	case value.Native:
		fn, _ := value.AsNative(v)
		return &nativeCallable{name: "native", fn: fn, bridge: b}, nil
	}
	return &hostValue{v: v, bridge: b}, nil
}

// fromStarlark converts a script value back. None becomes the invalid zero
// value, which every builtin rejects.
func (b *bridge) fromStarlark(v starlarkLib.Value) (value.Value, error) {
	switch x := v.(type) {
	case nil, starlarkLib.NoneType:
		return value.Value{}, nil
	case starlarkLib.Bool:
		return value.NewBool(bool(x)), nil
	case starlarkLib.Int:
		i, ok := x.Int64()
		if !ok || i < math.MinInt32 || i > math.MaxInt32 {
			return value.Value{}, fmt.Errorf("%w: %w: int %s does not fit in int32", ErrConversion, value.ErrUnsupportedType, x)
		}
		return value.NewInt(int32(i)), nil
	case starlarkLib.Float:
		return value.NewFloat(float64(x)), nil
	case starlarkLib.String:
		return value.NewString(string(x)), nil
	case starlarkLib.Tuple:
		return b.fromSequence(x)
	case *starlarkLib.List:
		return b.fromSequence(x)
	case *hostValue:
		return x.v, nil
	case *nativeCallable:
		return value.NewNative(x.fn), nil
	}
	return value.Value{}, fmt.Errorf("%w: %w: %s", ErrConversion, value.ErrUnsupportedType, v.Type())
}

func (b *bridge) fromSequence(seq starlarkLib.Indexable) (value.Value, error) {
	items := make([]value.Value, seq.Len())
	for i := range items {
		var err error
		if items[i], err = b.fromStarlark(seq.Index(i)); err != nil {
			return value.Value{}, fmt.Errorf("element %d: %w", i, err)
		}
	}
	return value.NewList(items...), nil
}

// globals converts every binding of the environment. Operator builtins are
// bound under their identifier aliases.
func (b *bridge) globals() (starlarkLib.StringDict, error) {
	out := make(starlarkLib.StringDict, b.env.Len())
	var errz []error
	b.env.Each(func(name string, v value.Value) {
		if alias, ok := operatorAliases[name]; ok {
			name = alias
		}
		sv, err := b.toStarlark(v)
		if err != nil {
			errz = append(errz, fmt.Errorf("binding %q: %w", name, err))
			return
		}
		if n, ok := sv.(*nativeCallable); ok {
			n.name = name
		}
		out[name] = sv
	})
	return out, errors.Join(errz...)
}

// convertToStarlarkValue converts Go input data for the ctx global.
func convertToStarlarkValue(v any) (starlarkLib.Value, error) {
	if v == nil {
		return starlarkLib.None, nil
	}

	switch val := v.(type) {
	case bool:
		return starlarkLib.Bool(val), nil
	case int:
		return starlarkLib.MakeInt(val), nil
	case int64:
		return starlarkLib.MakeInt64(val), nil
	case float64:
		return starlarkLib.Float(val), nil
	case string:
		return starlarkLib.String(val), nil
	case []any:
		elements := make([]starlarkLib.Value, len(val))
		for i, elem := range val {
			var err error
			if elements[i], err = convertToStarlarkValue(elem); err != nil {
				return nil, fmt.Errorf("failed to convert list element: %w", err)
			}
		}
		return starlarkLib.NewList(elements), nil
	case map[string]any:
		dict := starlarkLib.NewDict(len(val))
		for k, v := range val {
			starlarkVal, err := convertToStarlarkValue(v)
			if err != nil {
				return nil, fmt.Errorf("failed to convert dict value: %w", err)
			}
			if err := dict.SetKey(starlarkLib.String(k), starlarkVal); err != nil {
				return nil, fmt.Errorf("failed to set dict key: %w", err)
			}
		}
		return dict, nil
	default:
		return nil, fmt.Errorf("%w: unsupported input type %T", ErrConversion, v)
	}
}

// convertInputData builds the frozen ctx dict from provider data.
func convertInputData(inputData map[string]any) (*starlarkLib.Dict, error) {
	ctxDict := starlarkLib.NewDict(len(inputData))
	errz := make([]error, 0)
	for k, v := range inputData {
		starlarkVal, err := convertToStarlarkValue(v)
		if err != nil {
			errz = append(errz, fmt.Errorf("failed to convert input value for key %q: %w", k, err))
			continue
		}
		if err := ctxDict.SetKey(starlarkLib.String(k), starlarkVal); err != nil {
			errz = append(errz, fmt.Errorf("failed to set ctx dict key %q: %w", k, err))
		}
	}
	if len(errz) > 0 {
		return nil, errors.Join(errz...)
	}
	ctxDict.Freeze()
	return ctxDict, nil
}
