package timeline

// Segment is one step of a Path. DeltaTime is measured from the end of the
// previous segment.
type Segment[T any] struct {
	DeltaTime     float64
	Value         T
	Interpolation Interpolation[T]
}

// Path is an initial value followed by segments in time order. Append order is
// time order; segments are never sorted.
type Path[T any] struct {
	initial  T
	segments []Segment[T]
	lerp     LerpFunc[T]
}

// NewPath starts a path at initial.
func NewPath[T any](initial T, lerp LerpFunc[T]) *Path[T] {
	return &Path[T]{initial: initial, lerp: lerp}
}

// Append returns a new path with one more segment. The receiver is unchanged.
func (p *Path[T]) Append(deltaTime float64, v T, interp Interpolation[T]) *Path[T] {
	segments := make([]Segment[T], len(p.segments), len(p.segments)+1)
	copy(segments, p.segments)
	segments = append(segments, Segment[T]{DeltaTime: deltaTime, Value: v, Interpolation: interp})
	return &Path[T]{initial: p.initial, segments: segments, lerp: p.lerp}
}

// Initial returns the value the path starts from.
func (p *Path[T]) Initial() T { return p.initial }

// Segments returns a copy of the segments in append order.
func (p *Path[T]) Segments() []Segment[T] {
	out := make([]Segment[T], len(p.segments))
	copy(out, p.segments)
	return out
}

// Len returns the number of segments.
func (p *Path[T]) Len() int { return len(p.segments) }

// Duration is the cumulative time of the last segment.
func (p *Path[T]) Duration() float64 {
	var total float64
	for _, s := range p.segments {
		total += s.DeltaTime
	}
	return total
}

// At evaluates the path at time t. Times before the first segment give the
// initial value, times at or past the end give the last segment's value.
func (p *Path[T]) At(t float64) T {
	prev := p.initial
	start := 0.0
	for _, s := range p.segments {
		end := start + s.DeltaTime
		if t < end {
			u := (t - start) / s.DeltaTime
			if u < 0 {
				return prev
			}
			switch s.Interpolation.Mode {
			case Linear:
				return p.lerp(prev, s.Value, u)
			case Bezier:
				return cubic(p.lerp, prev, s.Interpolation.Control1, s.Interpolation.Control2, s.Value, u)
			default:
				return prev
			}
		}
		prev = s.Value
		start = end
	}
	return prev
}
