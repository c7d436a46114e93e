package builtins

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goweiwen/kantera/geom"
	"github.com/goweiwen/kantera/value"
)

func TestColor(t *testing.T) {
	t.Parallel()
	e := newEnv(t, nil)

	color := func(t *testing.T, v value.Value, err error) geom.Rgba {
		t.Helper()
		require.NoError(t, err)
		c, err := value.AsColor(v)
		require.NoError(t, err)
		return c
	}

	t.Run("rgb hex", func(t *testing.T) {
		got, err := call(t, e, "rgb", strv("#FF8000"))
		c := color(t, got, err)
		assert.InDelta(t, 1.0, c.R, 1.0/255)
		assert.InDelta(t, 0.5019, c.G, 1.0/255)
		assert.InDelta(t, 0.0, c.B, 1.0/255)
		assert.Equal(t, 1.0, c.A)
	})

	t.Run("rgb hex is case insensitive", func(t *testing.T) {
		upper, err := call(t, e, "rgb", strv("#ABCDEF"))
		require.NoError(t, err)
		lower, err := call(t, e, "rgb", strv("#abcdef"))
		require.NoError(t, err)
		assert.True(t, value.Equal(upper, lower))
	})

	t.Run("rgba hex", func(t *testing.T) {
		got, err := call(t, e, "rgba", strv("#00000080"))
		c := color(t, got, err)
		assert.InDelta(t, 128.0/255, c.A, 1e-9)
	})

	t.Run("channels", func(t *testing.T) {
		got, err := call(t, e, "rgb", fv(0.1), fv(0.2), fv(0.3))
		assert.Equal(t, geom.Rgba{R: 0.1, G: 0.2, B: 0.3, A: 1}, color(t, got, err))

		got, err = call(t, e, "rgba", fv(2), fv(-1), fv(0), fv(0.5))
		assert.Equal(t, geom.Rgba{R: 2, G: -1, B: 0, A: 0.5}, color(t, got, err), "channels are not clamped")
	})

	t.Run("malformed strings", func(t *testing.T) {
		cases := []struct {
			op  string
			arg string
		}{
			{"rgb", "#GG0000"},
			{"rgb", "FF8000"},
			{"rgb", "#FF80"},
			{"rgb", "#FF800000"},
			{"rgba", "#FF8000"},
			{"rgba", "#FF80000"},
		}
		for _, tc := range cases {
			t.Run(tc.op+" "+tc.arg, func(t *testing.T) {
				_, err := call(t, e, tc.op, strv(tc.arg))
				require.ErrorIs(t, err, value.ErrInvalidColorFormat)
			})
		}
	})

	t.Run("argument errors", func(t *testing.T) {
		_, err := call(t, e, "rgb")
		require.ErrorIs(t, err, value.ErrMissingArgument)

		_, err = call(t, e, "rgba", fv(1), fv(1), fv(1))
		require.ErrorIs(t, err, value.ErrMissingArgument)

		_, err = call(t, e, "rgb", iv(1), iv(1), iv(1))
		require.ErrorIs(t, err, value.ErrTypeMismatch)
	})
}
