package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromDisk(t *testing.T) {
	t.Parallel()

	t.Run("absolute path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scene.star")
		require.NoError(t, os.WriteFile(path, []byte("x = 1\n"), 0o600))

		l, err := NewFromDisk(path)
		require.NoError(t, err)
		assert.Equal(t, "file", l.GetSourceURL().Scheme)
		assert.Equal(t, path, SourceName(l))

		b, err := ReadAll(l)
		require.NoError(t, err)
		assert.Equal(t, "x = 1\n", string(b))
		assert.Contains(t, l.String(), "SHA256: ")
	})

	t.Run("file url", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scene.star")
		require.NoError(t, os.WriteFile(path, []byte("x = 1"), 0o600))

		l, err := NewFromDisk("file://" + path)
		require.NoError(t, err)
		assert.Equal(t, path, l.path)
	})

	t.Run("relative path is resolved", func(t *testing.T) {
		l, err := NewFromDisk("scene.star")
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(l.path))
	})

	t.Run("invalid", func(t *testing.T) {
		cases := []struct {
			name string
			path string
			want error
		}{
			{name: "http", path: "http://example.com/scene.star", want: ErrSchemeUnsupported},
			{name: "https", path: "https://example.com/scene.star", want: ErrSchemeUnsupported},
			{name: "empty", path: "", want: ErrScriptNotAvailable},
			{name: "root", path: "/", want: ErrScriptNotAvailable},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := NewFromDisk(tc.path)
				require.ErrorIs(t, err, tc.want)
			})
		}
	})

	t.Run("missing file", func(t *testing.T) {
		l, err := NewFromDisk(filepath.Join(t.TempDir(), "missing.star"))
		require.NoError(t, err)

		_, err = ReadAll(l)
		require.ErrorIs(t, err, ErrScriptNotAvailable)
		assert.NotContains(t, l.String(), "SHA256")
	})
}
