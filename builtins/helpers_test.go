package builtins

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/goweiwen/kantera/env"
	"github.com/goweiwen/kantera/geom"
	"github.com/goweiwen/kantera/raster"
	"github.com/goweiwen/kantera/value"
)

// mockAssets is a testify mock of Assets.
type mockAssets struct {
	mock.Mock
}

func (m *mockAssets) ImportImage(path string) (*raster.Image, error) {
	args := m.Called(path)
	img, _ := args.Get(0).(*raster.Image)
	return img, args.Error(1)
}

func (m *mockAssets) Font() (*raster.Font, error) {
	args := m.Called()
	f, _ := args.Get(0).(*raster.Font)
	return f, args.Error(1)
}

func fv(x float64) value.Value { return value.NewFloat(x) }

func iv(x int32) value.Value { return value.NewInt(x) }

func sv(name string) value.Value { return value.NewSymbol(name) }

func strv(x string) value.Value { return value.NewString(x) }

func lv(items ...value.Value) value.Value { return value.NewList(items...) }

func v2(x, y float64) value.Value { return value.NewVec2(geom.Vec2{X: x, Y: y}) }

func v3(x, y, z float64) value.Value { return value.NewVec3(geom.Vec3{X: x, Y: y, Z: z}) }

// newEnv registers every builtin with a discarding logger.
func newEnv(t *testing.T, assets Assets) *env.Env {
	t.Helper()
	e := env.New()
	New(slog.DiscardHandler, assets).Register(e)
	return e
}

// call invokes a registered builtin by name.
func call(t *testing.T, e *env.Env, name string, args ...value.Value) (value.Value, error) {
	t.Helper()
	fn, ok := e.Get(name)
	require.True(t, ok, "builtin %q is not registered", name)
	native, err := value.AsNative(fn)
	require.NoError(t, err)
	return native(args)
}
