package value

import "errors"

// Error kinds raised by builtins. All are fatal for the form being evaluated.
var (
	ErrTypeMismatch       = errors.New("type mismatch")
	ErrUnsupportedType    = errors.New("unsupported type")
	ErrInvalidColorFormat = errors.New("invalid color format")
	ErrInvalidEnum        = errors.New("invalid enum")
	ErrMissingArgument    = errors.New("missing argument")
	ErrInvalidDuration    = errors.New("invalid duration")
	ErrDivisionByZero     = errors.New("division by zero")
)
