package osc

import (
	"fmt"
	"math"
)

// DefaultSampleRate is the CD-quality rate used when callers have no preference.
const DefaultSampleRate = 44100

// Shape supplies the waveform formula for an Oscillator. GenerateWaveform
// must return exactly one amplitude per entry of x.
type Shape interface {
	GenerateWaveform(x []float64, freq, amp float64) []float64
}

// Oscillator samples a Shape at a fixed rate.
type Oscillator struct {
	sampleRate int
	shape      Shape
}

// New returns an oscillator for shape at the given sample rate.
func New(sampleRate int, shape Shape) (*Oscillator, error) {
	if shape == nil {
		return nil, fmt.Errorf("%w: nil shape", ErrUnknownShape)
	}
	o := &Oscillator{shape: shape}
	if _, err := o.SetSampleRate(sampleRate); err != nil {
		return nil, err
	}
	return o, nil
}

// NewSine returns a sine oscillator.
func NewSine(sampleRate int) (*Oscillator, error) {
	return New(sampleRate, Sine{})
}

// NewTriangle returns a triangle oscillator.
func NewTriangle(sampleRate int) (*Oscillator, error) {
	return New(sampleRate, Triangle{})
}

// SetSampleRate validates and stores sr, returning the stored value.
func (o *Oscillator) SetSampleRate(sr int) (int, error) {
	if sr < 1 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidSampleRate, sr)
	}
	o.sampleRate = sr
	return o.sampleRate, nil
}

// SampleRate returns the current sample rate in samples per second.
func (o *Oscillator) SampleRate() int { return o.sampleRate }

// Shape returns the waveform formula the oscillator samples.
func (o *Oscillator) Shape() Shape { return o.shape }

// SamplingIndex returns the time axis 0, 1/sr, 2/sr, ... covering duration
// seconds. The length is floor(sr * duration).
func (o *Oscillator) SamplingIndex(duration float64) []float64 {
	n := int(math.Floor(float64(o.sampleRate) * duration))
	if n < 0 {
		n = 0
	}
	idx := make([]float64, n)
	sr := float64(o.sampleRate)
	for i := range idx {
		idx[i] = float64(i) / sr
	}
	return idx
}

// MakePoints pairs x with y, rounding each y to 5 decimal places.
func (o *Oscillator) MakePoints(x, y []float64) []Point {
	n := min(len(x), len(y))
	points := make([]Point, n)
	for i := 0; i < n; i++ {
		points[i] = NewPoint(x[i], round5(y[i]))
	}
	return points
}

// Calc synthesizes dur seconds of the shape at freq Hz with amplitude amp.
//
// Negative inputs are treated as magnitudes. When amp > 1 or any generated
// amplitude leaves [-1, 1], the x axis of the result is replaced by the
// amplitudes rescaled into [-1, 1] while y keeps the raw amplitudes.
func (o *Oscillator) Calc(freq, dur, amp float64) []Point {
	pos := AssurePositive(freq, dur, amp)
	posFreq, posDur, posAmp := pos[0], pos[1], pos[2]

	x := o.SamplingIndex(posDur)
	y := o.shape.GenerateWaveform(x, posFreq, posAmp)

	// NOTE: rescaling replaces x, not y. Consumers rely on this layout.
	if amp > 1 || outOfBounds(y) {
		// The bounds are fixed with lower < upper, so Normalize cannot fail.
		// A constant y yields NaN; Waveform.Finite lets callers detect it.
		x, _ = Normalize(y, -1.0, 1.0)
	}
	return o.MakePoints(x, y)
}

func outOfBounds(y []float64) bool {
	for _, v := range y {
		if math.Abs(v) > 1 {
			return true
		}
	}
	return false
}

func round5(v float64) float64 {
	return math.Round(v*1e5) / 1e5
}
