// Package audio defines the audio handles scene scripts build: notes and a
// sequencer that schedules them.
package audio

import "math"

// Render is a handle to a sound-producing combinator.
type Render interface {
	// Duration is the length of the sound in seconds.
	Duration() float64
}

// Note is a single sine tone. Pan runs from -1 (left) to 1 (right).
type Note struct {
	Frequency float64
	Length    float64
	Gain      float64
	Pan       float64
}

// NoteFrequency converts a MIDI note number to Hz, with A4 (69) at 440 Hz.
func NoteFrequency(noteNumber int32) float64 {
	return 440 * math.Pow(2, float64(noteNumber-69)/12)
}

// NewNote builds a note from a MIDI note number and velocity.
func NewNote(length float64, noteNumber int32, velocity, pan float64) *Note {
	return &Note{
		Frequency: NoteFrequency(noteNumber),
		Length:    length,
		Gain:      velocity,
		Pan:       pan,
	}
}

// Duration is the note length in seconds.
func (n *Note) Duration() float64 { return n.Length }

// Entry schedules Render at Start seconds.
type Entry struct {
	Start  float64
	Render Render
}

// Sequencer mixes renders started at fixed times. Entries keep append order.
type Sequencer struct {
	entries []Entry
}

// NewSequencer returns a sequencer with no notes.
func NewSequencer() *Sequencer { return &Sequencer{} }

// Append returns a new sequencer with r scheduled at start.
func (s *Sequencer) Append(start float64, r Render) *Sequencer {
	entries := make([]Entry, len(s.entries), len(s.entries)+1)
	copy(entries, s.entries)
	entries = append(entries, Entry{Start: start, Render: r})
	return &Sequencer{entries: entries}
}

// Entries returns a copy of the schedule.
func (s *Sequencer) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Duration is the latest end time over all entries.
func (s *Sequencer) Duration() float64 {
	var end float64
	for _, e := range s.entries {
		end = max(end, e.Start+e.Render.Duration())
	}
	return end
}
