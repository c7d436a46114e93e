package dispatch

import (
	"errors"
	"testing"

	"github.com/goweiwen/kantera/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countOf builds candidates that report which type won and how many
// arguments it saw.
func countOf[T any](kind value.Kind, extract func(value.Value) (T, error)) Candidate {
	return For(kind, extract, func(xs []T) (value.Value, error) {
		return value.NewList(value.NewString(kind.String()), value.NewInt(int32(len(xs)))), nil
	})
}

func winner(t *testing.T, v value.Value) string {
	t.Helper()
	items, err := value.AsList(v)
	require.NoError(t, err)
	s, err := value.AsString(items[0])
	require.NoError(t, err)
	return s
}

func TestDispatch(t *testing.T) {
	t.Parallel()

	candidates := []Candidate{
		countOf(value.Float, value.AsFloat),
		countOf(value.Int, value.AsInt),
		countOf(value.String, value.AsString),
	}

	t.Run("uniform arguments pick their type", func(t *testing.T) {
		cases := []struct {
			name string
			args []value.Value
			want string
		}{
			{name: "floats", args: []value.Value{value.NewFloat(1), value.NewFloat(2)}, want: "float64"},
			{name: "ints", args: []value.Value{value.NewInt(1), value.NewInt(2)}, want: "int32"},
			{name: "strings", args: []value.Value{value.NewString("a")}, want: "string"},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				out, err := Dispatch(tc.args, candidates...)
				require.NoError(t, err)
				assert.Equal(t, tc.want, winner(t, out))
			})
		}
	})

	t.Run("empty arguments pick the first candidate", func(t *testing.T) {
		out, err := Dispatch(nil, candidates...)
		require.NoError(t, err)
		assert.Equal(t, "float64", winner(t, out))
	})

	t.Run("mixed arguments are unsupported", func(t *testing.T) {
		_, err := Dispatch([]value.Value{value.NewFloat(1), value.NewInt(1)}, candidates...)
		require.ErrorIs(t, err, value.ErrUnsupportedType)
		assert.Contains(t, err.Error(), "float64, int32")
	})

	t.Run("no candidates", func(t *testing.T) {
		_, err := Dispatch([]value.Value{value.NewFloat(1)})
		require.ErrorIs(t, err, value.ErrUnsupportedType)
	})

	t.Run("operation errors do not fall through", func(t *testing.T) {
		boom := errors.New("boom")
		var tried []value.Kind
		failing := For(value.Float, value.AsFloat, func([]float64) (value.Value, error) {
			tried = append(tried, value.Float)
			return value.Value{}, boom
		})
		fallback := For(value.Float, value.AsFloat, func([]float64) (value.Value, error) {
			tried = append(tried, value.Int)
			return value.NewFloat(0), nil
		})

		_, err := Dispatch([]value.Value{value.NewFloat(1)}, failing, fallback)
		require.ErrorIs(t, err, boom)
		assert.Equal(t, []value.Kind{value.Float}, tried)
	})
}

func TestKinds(t *testing.T) {
	t.Parallel()

	got := Kinds(countOf(value.Vec2, value.AsVec2), countOf(value.Color, value.AsColor))
	assert.Equal(t, []value.Kind{value.Vec2, value.Color}, got)
}
