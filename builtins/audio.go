package builtins

import (
	"fmt"

	"github.com/goweiwen/kantera/audio"
	"github.com/goweiwen/kantera/value"
)

// note is (duration note_number velocity pan).
func note(args []value.Value) (value.Value, error) {
	duration, err := value.ArgAs(args, 0, value.AsFloat)
	if err != nil {
		return value.Value{}, fmt.Errorf("note: %w", err)
	}
	number, err := value.ArgAs(args, 1, value.AsInt)
	if err != nil {
		return value.Value{}, fmt.Errorf("note: %w", err)
	}
	velocity, err := value.ArgAs(args, 2, value.AsFloat)
	if err != nil {
		return value.Value{}, fmt.Errorf("note: %w", err)
	}
	pan, err := value.ArgAs(args, 3, value.AsFloat)
	if err != nil {
		return value.Value{}, fmt.Errorf("note: %w", err)
	}
	return value.NewAudio(audio.NewNote(duration, number, velocity, pan)), nil
}

// sequencer schedules (start_time audio) entries in the order given.
func sequencer(args []value.Value) (value.Value, error) {
	seq := audio.NewSequencer()
	for i, entry := range entries(args) {
		fields, err := value.AsList(entry)
		if err != nil {
			return value.Value{}, fmt.Errorf("sequencer: entry %d: %w", i+1, err)
		}
		start, err := value.ArgAs(fields, 0, value.AsFloat)
		if err != nil {
			return value.Value{}, fmt.Errorf("sequencer: entry %d: %w", i+1, err)
		}
		a, err := value.ArgAs(fields, 1, value.AsAudio)
		if err != nil {
			return value.Value{}, fmt.Errorf("sequencer: entry %d: %w", i+1, err)
		}
		seq = seq.Append(start, a)
	}
	return value.NewAudio(seq), nil
}

type demoNote struct {
	start, length float64
	number        int32
	velocity, pan float64
}

// demoScore is a two bar arpeggio panned left then right over an eighth note
// pulse.
var demoScore = []demoNote{
	{0.0, 1.0, 60, 0.2, -1}, {1.0, 1.0, 64, 0.2, -1}, {2.0, 1.0, 62, 0.2, -1}, {3.0, 1.0, 67, 0.2, -1},
	{4.0, 1.0, 60, 0.2, 1}, {5.0, 1.0, 64, 0.2, 1}, {6.0, 1.0, 62, 0.2, 1}, {7.0, 1.0, 67, 0.2, 1},
	{0.0, 0.25, 72, 0.1, 0}, {0.5, 0.25, 72, 0.1, 0}, {1.0, 0.25, 72, 0.1, 0}, {1.5, 0.25, 72, 0.1, 0},
	{2.0, 0.25, 72, 0.1, 0}, {2.5, 0.25, 72, 0.1, 0}, {2.0, 0.25, 72, 0.1, 0}, {2.5, 0.25, 72, 0.1, 0},
	{3.0, 0.25, 72, 0.1, 0}, {3.5, 0.5, 74, 0.1, 0}, {4.0, 0.25, 72, 0.1, 0}, {4.5, 0.25, 72, 0.1, 0},
	{5.0, 0.25, 72, 0.1, 0}, {5.5, 0.25, 72, 0.1, 0}, {6.0, 0.25, 72, 0.1, 0}, {6.5, 0.25, 72, 0.1, 0},
	{7.0, 0.25, 72, 0.1, 0}, {7.5, 0.5, 74, 0.1, 0},
}

// testAudio returns the demo score as a sequencer. Arguments are ignored.
func testAudio([]value.Value) (value.Value, error) {
	seq := audio.NewSequencer()
	for _, n := range demoScore {
		seq = seq.Append(n.start, audio.NewNote(n.length, n.number, n.velocity, n.pan))
	}
	return value.NewAudio(seq), nil
}
