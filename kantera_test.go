package kantera_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/goweiwen/kantera"
	"github.com/goweiwen/kantera/loader"
	"github.com/goweiwen/kantera/options"
	"github.com/goweiwen/kantera/render"
	"github.com/goweiwen/kantera/value"
)

func newRuntime(t *testing.T, opts ...options.Option) *kantera.Runtime {
	t.Helper()
	rt, err := kantera.New(append([]options.Option{options.WithLogHandler(slog.DiscardHandler)}, opts...)...)
	require.NoError(t, err)
	return rt
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("registers the builtins", func(t *testing.T) {
		rt := newRuntime(t)
		for _, name := range []string{"true", "false", "+", "path", "cycle", "sin", "composite", "stringify"} {
			_, ok := rt.Get(name)
			assert.True(t, ok, name)
		}
		assert.IsIncreasing(t, rt.Names())
		assert.NotEmpty(t, rt.ID())
		assert.Contains(t, rt.String(), rt.ID())
	})

	t.Run("sessions are distinct", func(t *testing.T) {
		assert.NotEqual(t, newRuntime(t).ID(), newRuntime(t).ID())
	})

	t.Run("invalid options", func(t *testing.T) {
		_, err := kantera.New(options.WithAssetDir(filepath.Join(t.TempDir(), "missing")))
		require.ErrorIs(t, err, options.ErrInvalidConfig)
	})

	t.Run("logs carry the session id", func(t *testing.T) {
		var buf bytes.Buffer
		handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
		rt, err := kantera.New(options.WithLogHandler(handler))
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "session="+rt.ID())
	})
}

func TestEvalString(t *testing.T) {
	t.Parallel()
	rt := newRuntime(t)

	result, err := rt.EvalString(t.Context(), `
background = plain(rgb("#102030"))
sequence((0.0, False, background), (2.5, True, frame(background, sym("repeat"))))
`)
	require.NoError(t, err)
	v, ok := result.Last()
	require.True(t, ok)
	r, err := value.AsRender(v)
	require.NoError(t, err)
	seq, ok := r.(*render.Sequence)
	require.True(t, ok)
	require.Len(t, seq.Entries(), 2)
	assert.True(t, seq.Entries()[1].Restart)

	_, err = rt.EvalString(t.Context(), "   ")
	require.ErrorIs(t, err, loader.ErrScriptNotAvailable)
}

func TestInsert(t *testing.T) {
	t.Parallel()
	rt := newRuntime(t)

	accent, err := rt.Call("rgb", value.NewString("#FF8000"))
	require.NoError(t, err)
	rt.Insert("accent", accent)

	result, err := rt.EvalString(t.Context(), "plain(accent)")
	require.NoError(t, err)
	v, ok := result.Last()
	require.True(t, ok)
	assert.Equal(t, value.Render, v.Kind())
}

func TestCall(t *testing.T) {
	t.Parallel()
	rt := newRuntime(t)

	got, err := rt.Call("+", value.NewFloat(1.5), value.NewFloat(2))
	require.NoError(t, err)
	assert.True(t, value.Equal(value.NewFloat(3.5), got))

	_, err = rt.Call("nope")
	require.ErrorIs(t, err, kantera.ErrUnbound)

	_, err = rt.Call("true")
	require.ErrorIs(t, err, value.ErrTypeMismatch)
}

func TestAssetsFromOptions(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	fontPath := filepath.Join(dir, "font.ttf")
	require.NoError(t, os.WriteFile(fontPath, goregular.TTF, 0o600))

	rt := newRuntime(t, options.WithAssetDir(dir), options.WithFontPath(fontPath))
	result, err := rt.EvalString(t.Context(), `image_render(text_to_image("Kantera", 24.0), rgba(0.0, 0.0, 0.0, 0.0))`)
	require.NoError(t, err)
	v, ok := result.Last()
	require.True(t, ok)
	assert.Equal(t, value.Render, v.Kind())

	_, err = rt.EvalString(t.Context(), `import_image("missing.png")`)
	require.Error(t, err)
}

func TestInputData(t *testing.T) {
	t.Parallel()
	rt := newRuntime(t, options.WithInputData(map[string]any{"hue": "#00FF00"}))

	result, err := rt.EvalString(t.Context(), `stringify(rgb(ctx["hue"]))`)
	require.NoError(t, err)
	v, ok := result.Last()
	require.True(t, ok)
	assert.True(t, value.Equal(value.NewString("Rgba(0.0, 1.0, 0.0, 1.0)"), v))
}
