package builtins

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goweiwen/kantera/geom"
	"github.com/goweiwen/kantera/raster"
	"github.com/goweiwen/kantera/render"
	"github.com/goweiwen/kantera/value"
)

var red = value.NewColor(geom.Rgba{R: 1, A: 1})

func renderOf[T render.Render](t *testing.T, v value.Value, err error) T {
	t.Helper()
	require.NoError(t, err)
	r, err := value.AsRender(v)
	require.NoError(t, err)
	out, ok := r.(T)
	require.True(t, ok, "unexpected render %T", r)
	return out
}

func TestPlain(t *testing.T) {
	t.Parallel()
	e := newEnv(t, nil)

	t.Run("color", func(t *testing.T) {
		got, err := call(t, e, "plain", red)
		p := renderOf[*render.Plain](t, got, err)
		assert.Equal(t, geom.Rgba{R: 1, A: 1}, p.Color.At(42))
	})

	t.Run("color path", func(t *testing.T) {
		fade, err := call(t, e, "path", value.NewColor(geom.Rgba{A: 1}), lv(fv(1), red, sv("linear")))
		require.NoError(t, err)
		got, err := call(t, e, "plain", fade)
		p := renderOf[*render.Plain](t, got, err)
		assert.InDelta(t, 0.5, p.Color.At(0.5).R, 1e-9)
	})

	t.Run("errors", func(t *testing.T) {
		_, err := call(t, e, "plain")
		require.ErrorIs(t, err, value.ErrMissingArgument)

		_, err = call(t, e, "plain", fv(1))
		require.ErrorIs(t, err, value.ErrUnsupportedType)
	})
}

func TestFrame(t *testing.T) {
	t.Parallel()
	e := newEnv(t, nil)
	source, err := call(t, e, "plain", red)
	require.NoError(t, err)

	t.Run("types", func(t *testing.T) {
		cases := []struct {
			name string
			want render.FrameType
		}{
			{"extend", render.FrameExtend},
			{"repeat", render.FrameRepeat},
			{"reflect", render.FrameReflect},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				got, err := call(t, e, "frame", source, sv(tc.name))
				f := renderOf[*render.Frame](t, got, err)
				assert.Equal(t, tc.want, f.Type)
			})
		}
	})

	t.Run("constant with fill", func(t *testing.T) {
		got, err := call(t, e, "frame", source, sv("constant"), value.NewColor(geom.Rgba{B: 1, A: 1}))
		f := renderOf[*render.Frame](t, got, err)
		assert.Equal(t, render.FrameConstant, f.Type)
		assert.Equal(t, geom.Rgba{B: 1, A: 1}, f.Fill)
	})

	t.Run("errors", func(t *testing.T) {
		_, err := call(t, e, "frame", source, sv("constant"))
		require.ErrorIs(t, err, value.ErrMissingArgument)

		_, err = call(t, e, "frame", source, sv("mirror"))
		require.ErrorIs(t, err, value.ErrInvalidEnum)

		_, err = call(t, e, "frame", red, sv("extend"))
		require.ErrorIs(t, err, value.ErrTypeMismatch)
	})
}

func TestSequence(t *testing.T) {
	t.Parallel()
	e := newEnv(t, nil)
	a, err := call(t, e, "plain", red)
	require.NoError(t, err)
	b, err := call(t, e, "plain", value.NewColor(geom.Rgba{G: 1, A: 1}))
	require.NoError(t, err)

	t.Run("keeps argument order", func(t *testing.T) {
		got, err := call(t, e, "sequence",
			lv(fv(2), value.NewBool(true), b),
			lv(fv(0), value.NewBool(false), a),
		)
		seq := renderOf[*render.Sequence](t, got, err)
		entries := seq.Entries()
		require.Len(t, entries, 2)
		assert.Equal(t, 2.0, entries[0].Time)
		assert.True(t, entries[0].Restart)
		assert.Equal(t, 0.0, entries[1].Time)
	})

	t.Run("single list of entries", func(t *testing.T) {
		got, err := call(t, e, "sequence", lv(lv(fv(0), value.NewBool(false), a), lv(fv(1), value.NewBool(false), b)))
		seq := renderOf[*render.Sequence](t, got, err)
		assert.Len(t, seq.Entries(), 2)
	})

	t.Run("empty", func(t *testing.T) {
		got, err := call(t, e, "sequence")
		seq := renderOf[*render.Sequence](t, got, err)
		assert.Empty(t, seq.Entries())

		got, err = call(t, e, "sequence", lv())
		seq = renderOf[*render.Sequence](t, got, err)
		assert.Empty(t, seq.Entries())
	})

	t.Run("errors", func(t *testing.T) {
		_, err := call(t, e, "sequence", lv(fv(0), iv(1), a))
		require.ErrorIs(t, err, value.ErrTypeMismatch)

		_, err = call(t, e, "sequence", lv(fv(0), value.NewBool(true)))
		require.ErrorIs(t, err, value.ErrMissingArgument)
	})
}

func TestComposite(t *testing.T) {
	t.Parallel()
	e := newEnv(t, nil)
	bottom, err := call(t, e, "plain", red)
	require.NoError(t, err)
	top, err := call(t, e, "plain", value.NewColor(geom.Rgba{B: 1, A: 0.5}))
	require.NoError(t, err)

	t.Run("layers", func(t *testing.T) {
		got, err := call(t, e, "composite", lv(bottom, sv("none")), lv(top, sv("normal")))
		c := renderOf[*render.Composite](t, got, err)
		require.Len(t, c.Layers, 2)

		assert.Equal(t, render.BlendNone, c.Layers[0].Mode.Blend)
		assert.Nil(t, c.Layers[0].Mode.Opacity)
		assert.Equal(t, render.BlendNormal, c.Layers[1].Mode.Blend)
		require.NotNil(t, c.Layers[1].Mode.Opacity)
		assert.Equal(t, 1.0, c.Layers[1].Mode.Opacity.At(3))
	})

	t.Run("unknown mode", func(t *testing.T) {
		_, err := call(t, e, "composite", lv(bottom, sv("bogus")))
		require.ErrorIs(t, err, value.ErrInvalidEnum)
	})

	t.Run("mode must be a symbol", func(t *testing.T) {
		_, err := call(t, e, "composite", lv(bottom, strv("normal")))
		require.ErrorIs(t, err, value.ErrTypeMismatch)
	})
}

func TestTransform(t *testing.T) {
	t.Parallel()
	e := newEnv(t, nil)
	source, err := call(t, e, "plain", red)
	require.NoError(t, err)

	t.Run("literals", func(t *testing.T) {
		got, err := call(t, e, "transform", source, lv(fv(10), fv(20)), v2(2, 2), fv(0.5))
		tr := renderOf[*render.Transform](t, got, err)
		assert.Equal(t, geom.Vec2{X: 10, Y: 20}, tr.Translation.At(1))
		assert.Equal(t, geom.Vec2{X: 2, Y: 2}, tr.Scale.At(1))
		assert.Equal(t, 0.5, tr.Rotation.At(1))
	})

	t.Run("timelines", func(t *testing.T) {
		move, err := call(t, e, "path", lv(fv(0), fv(0)), lv(fv(1), lv(fv(100), fv(0)), sv("linear")))
		require.NoError(t, err)
		spin, err := call(t, e, "sin", fv(0), fv(1), fv(1))
		require.NoError(t, err)

		got, err := call(t, e, "transform", source, move, lv(fv(1), fv(1)), spin)
		tr := renderOf[*render.Transform](t, got, err)
		assert.InDelta(t, 50.0, tr.Translation.At(0.5).X, 1e-9)
		assert.InDelta(t, 1.0, tr.Rotation.At(0.25), 1e-9)
	})

	t.Run("errors", func(t *testing.T) {
		_, err := call(t, e, "transform", source, fv(1), v2(1, 1), fv(0))
		require.ErrorIs(t, err, value.ErrUnsupportedType)

		_, err = call(t, e, "transform", source, v2(0, 0), v2(1, 1))
		require.ErrorIs(t, err, value.ErrMissingArgument)
	})
}

func TestImageRender(t *testing.T) {
	t.Parallel()
	e := newEnv(t, nil)
	img := raster.NewImage(2, 2)

	got, err := call(t, e, "image_render", value.NewImage(img), red)
	ir := renderOf[*render.ImageRender](t, got, err)
	assert.Same(t, img, ir.Image)
	assert.Equal(t, render.Contain, ir.Sizing)
	assert.Equal(t, render.Bilinear, ir.Sampling)
	assert.Equal(t, geom.Rgba{R: 1, A: 1}, ir.Default)

	_, err = call(t, e, "image_render", red, red)
	require.ErrorIs(t, err, value.ErrTypeMismatch)
}
