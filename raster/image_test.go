package raster

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/goweiwen/kantera/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, dir string) string {
	t.Helper()

	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	src.SetNRGBA(1, 0, color.NRGBA{B: 255, A: 0})

	path := filepath.Join(dir, "tiny.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, src))
	require.NoError(t, f.Close())
	return path
}

func TestImport(t *testing.T) {
	t.Parallel()

	t.Run("png", func(t *testing.T) {
		path := writePNG(t, t.TempDir())

		img, err := Import(path)
		require.NoError(t, err)
		require.Equal(t, 2, img.Width)
		require.Equal(t, 1, img.Height)
		assert.Equal(t, geom.Rgba{R: 1, A: 1}, img.At(0, 0))
		assert.Equal(t, 0.0, img.At(1, 0).A)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Import(filepath.Join(t.TempDir(), "nope.png"))
		require.ErrorIs(t, err, ErrImportFailed)
	})

	t.Run("not an image", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "text.png")
		require.NoError(t, os.WriteFile(path, []byte("hello"), 0o600))
		_, err := Import(path)
		require.ErrorIs(t, err, ErrImportFailed)
	})
}

func TestImage_Bounds(t *testing.T) {
	t.Parallel()

	img := NewImage(1, 1)
	img.Set(5, 5, geom.Rgba{R: 1})
	img.Set(0, 0, geom.Rgba{G: 1, A: 1})
	assert.Equal(t, geom.Rgba{}, img.At(-1, 0))
	assert.Equal(t, geom.Rgba{G: 1, A: 1}, img.At(0, 0))

	tinted := img.Map(func(c geom.Rgba) geom.Rgba { return c.Opaque() })
	assert.Equal(t, 1.0, tinted.At(0, 0).A)
}

func TestFont_Errors(t *testing.T) {
	t.Parallel()

	_, err := ParseFont([]byte("not a font"))
	require.ErrorIs(t, err, ErrFontFailed)

	_, err = LoadFont(filepath.Join(t.TempDir(), "missing.ttf"))
	require.ErrorIs(t, err, ErrFontFailed)
}
