package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goweiwen/kantera/geom"
	"github.com/goweiwen/kantera/timeline"
)

func red() *Plain {
	return NewPlain(timeline.Const[geom.Rgba]{Value: geom.Rgba{R: 1, A: 1}})
}

func TestNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		r    Render
		want string
	}{
		{red(), "plain"},
		{NewFrame(red(), FrameRepeat, geom.Rgba{}), "frame"},
		{NewSequence(), "sequence"},
		{NewComposite(nil), "composite"},
		{NewTransform(red(), nil, nil, nil), "transform"},
		{NewImageRender(nil, geom.Rgba{}), "image_render"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.r.Name())
		})
	}
}

func TestParseFrameType(t *testing.T) {
	t.Parallel()

	for _, ft := range []FrameType{FrameConstant, FrameExtend, FrameRepeat, FrameReflect} {
		got, ok := ParseFrameType(ft.String())
		require.True(t, ok, ft.String())
		assert.Equal(t, ft, got)
	}
	_, ok := ParseFrameType("wrap")
	assert.False(t, ok)
	assert.Equal(t, "FrameType(9)", FrameType(9).String())
}

func TestParseBlendMode(t *testing.T) {
	t.Parallel()

	got, ok := ParseBlendMode("normal")
	require.True(t, ok)
	assert.Equal(t, BlendNormal, got)

	got, ok = ParseBlendMode("none")
	require.True(t, ok)
	assert.Equal(t, BlendNone, got)

	_, ok = ParseBlendMode("multiply")
	assert.False(t, ok)
	assert.Equal(t, "BlendMode(7)", BlendMode(7).String())
}

func TestNormal(t *testing.T) {
	t.Parallel()

	m := Normal()
	assert.Equal(t, BlendNormal, m.Blend)
	require.NotNil(t, m.Opacity)
	assert.Equal(t, 1.0, m.Opacity.At(3))
}

func TestSequenceAppend(t *testing.T) {
	t.Parallel()

	empty := NewSequence()
	one := empty.Append(0, true, red())
	two := one.Append(2.5, false, red())

	assert.Empty(t, empty.Entries(), "append does not modify the receiver")
	require.Len(t, one.Entries(), 1)
	require.Len(t, two.Entries(), 2)
	assert.Equal(t, 2.5, two.Entries()[1].Time)
	assert.False(t, two.Entries()[1].Restart)

	entries := two.Entries()
	entries[0].Time = 99
	assert.Equal(t, 0.0, two.Entries()[0].Time, "Entries returns a copy")
}

func TestCompositeCopiesLayers(t *testing.T) {
	t.Parallel()

	layers := []Layer{{Render: red(), Mode: Normal()}}
	c := NewComposite(layers)
	layers[0].Mode = CompositeMode{Blend: BlendNone}
	assert.Equal(t, BlendNormal, c.Layers[0].Mode.Blend)
}

func TestImageRenderDefaults(t *testing.T) {
	t.Parallel()

	r := NewImageRender(nil, geom.Rgba{A: 1})
	assert.Equal(t, Contain, r.Sizing)
	assert.Equal(t, Bilinear, r.Sampling)
	assert.Equal(t, geom.Rgba{A: 1}, r.Default)
}
