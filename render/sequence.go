package render

// SequenceEntry starts Render at Time. With Restart set the entry's local clock
// starts at zero when it begins, otherwise it sees the global time.
type SequenceEntry struct {
	Time    float64
	Restart bool
	Render  Render
}

// Sequence is a playlist of renders. Entries keep the order they were
// appended in; callers supply them in ascending time.
type Sequence struct {
	entries []SequenceEntry
}

// NewSequence returns an empty playlist.
func NewSequence() *Sequence { return &Sequence{} }

// Append returns a new sequence with the entry added at the end.
func (s *Sequence) Append(time float64, restart bool, r Render) *Sequence {
	entries := make([]SequenceEntry, len(s.entries), len(s.entries)+1)
	copy(entries, s.entries)
	entries = append(entries, SequenceEntry{Time: time, Restart: restart, Render: r})
	return &Sequence{entries: entries}
}

// Entries returns a copy of the playlist.
func (s *Sequence) Entries() []SequenceEntry {
	out := make([]SequenceEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (*Sequence) Name() string { return "sequence" }
