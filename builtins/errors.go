package builtins

import (
	"fmt"

	"github.com/goweiwen/kantera/value"
)

func typeMismatch(want, got string) error {
	return fmt.Errorf("%w: want %s, got %s", value.ErrTypeMismatch, want, got)
}

func invalidEnum(what, name string) error {
	return fmt.Errorf("%w: unknown %s %q", value.ErrInvalidEnum, what, name)
}
