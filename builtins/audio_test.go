package builtins

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goweiwen/kantera/audio"
	"github.com/goweiwen/kantera/value"
)

func TestNote(t *testing.T) {
	t.Parallel()
	e := newEnv(t, nil)

	got, err := call(t, e, "note", fv(0.5), iv(69), fv(0.8), fv(-1))
	require.NoError(t, err)
	a, err := value.AsAudio(got)
	require.NoError(t, err)
	n, ok := a.(*audio.Note)
	require.True(t, ok)
	assert.InDelta(t, 440.0, n.Frequency, 1e-9)
	assert.Equal(t, 0.5, n.Duration())
	assert.Equal(t, 0.8, n.Gain)
	assert.Equal(t, -1.0, n.Pan)

	_, err = call(t, e, "note", fv(0.5), fv(69), fv(0.8), fv(0))
	require.ErrorIs(t, err, value.ErrTypeMismatch)
}

func TestSequencer(t *testing.T) {
	t.Parallel()
	e := newEnv(t, nil)
	n, err := call(t, e, "note", fv(1), iv(60), fv(0.2), fv(0))
	require.NoError(t, err)

	got, err := call(t, e, "sequencer", lv(fv(0), n), lv(fv(3), n))
	require.NoError(t, err)
	a, err := value.AsAudio(got)
	require.NoError(t, err)
	assert.Equal(t, 4.0, a.Duration())

	_, err = call(t, e, "sequencer", lv(fv(0), fv(1)))
	require.ErrorIs(t, err, value.ErrTypeMismatch)
}

func TestTestAudio(t *testing.T) {
	t.Parallel()
	e := newEnv(t, nil)

	got, err := call(t, e, "test_audio", strv("ignored"))
	require.NoError(t, err)
	a, err := value.AsAudio(got)
	require.NoError(t, err)
	seq, ok := a.(*audio.Sequencer)
	require.True(t, ok)
	assert.Len(t, seq.Entries(), len(demoScore))
	assert.Equal(t, 8.0, seq.Duration())
}
