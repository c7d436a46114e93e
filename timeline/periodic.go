package timeline

import "math"

// Cycle repeats Source every Duration seconds.
type Cycle[T any] struct {
	Source   Timeline[T]
	Duration float64
}

// NewCycle wraps source with the given period. Callers validate that duration
// is positive.
func NewCycle[T any](source Timeline[T], duration float64) *Cycle[T] {
	return &Cycle[T]{Source: source, Duration: duration}
}

// At evaluates the source at t modulo the period, always in [0, Duration).
func (c *Cycle[T]) At(t float64) T {
	m := math.Mod(t, c.Duration)
	if m < 0 {
		m += c.Duration
	}
	return c.Source.At(m)
}

// Sine is a sinusoidal oscillator whose amplitude may itself vary with time.
type Sine struct {
	InitialPhase float64
	Frequency    float64
	Amplitude    Timeline[float64]
}

// NewSine builds an oscillator. A fixed amplitude is passed as Const.
func NewSine(initialPhase, frequency float64, amplitude Timeline[float64]) *Sine {
	return &Sine{InitialPhase: initialPhase, Frequency: frequency, Amplitude: amplitude}
}

// At returns amplitude(t) * sin(phase + 2π·frequency·t).
func (s *Sine) At(t float64) float64 {
	return s.Amplitude.At(t) * math.Sin(s.InitialPhase+2*math.Pi*s.Frequency*t)
}
