package osc

import (
	"fmt"
	"math"
)

// ExportType selects the representation returned by Waveform.Points.
type ExportType string

const (
	ExportObjects ExportType = "objects"
	ExportTuples  ExportType = "tuples"
	ExportRecords ExportType = "records"
)

// Waveform is an ordered, time-ascending collection of points.
type Waveform struct {
	points []Point
}

// NewWaveform wraps a copy of points.
func NewWaveform(points []Point) *Waveform {
	return &Waveform{points: append([]Point(nil), points...)}
}

// Len returns the number of points.
func (w *Waveform) Len() int { return len(w.points) }

// Finite reports whether every coordinate is a finite number.
func (w *Waveform) Finite() bool {
	for _, p := range w.points {
		if math.IsNaN(p.x) || math.IsInf(p.x, 0) || math.IsNaN(p.y) || math.IsInf(p.y, 0) {
			return false
		}
	}
	return true
}

// Points returns a copy of the waveform as []Point, [][2]float64 or
// []map[string]float64 depending on asType. An empty asType means objects.
func (w *Waveform) Points(asType ExportType) (any, error) {
	switch asType {
	case ExportObjects, "":
		return w.Objects(), nil
	case ExportTuples:
		return w.Tuples(), nil
	case ExportRecords:
		return w.Records(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidExportType, asType)
	}
}

// Objects returns a copy of the points.
func (w *Waveform) Objects() []Point {
	out := make([]Point, len(w.points))
	copy(out, w.points)
	return out
}

// Tuples returns the points as (x, y) pairs.
func (w *Waveform) Tuples() [][2]float64 {
	out := make([][2]float64, len(w.points))
	for i, p := range w.points {
		out[i] = p.AsPair()
	}
	return out
}

// Records returns the points as maps keyed by "x" and "y".
func (w *Waveform) Records() []map[string]float64 {
	out := make([]map[string]float64, len(w.points))
	for i, p := range w.points {
		out[i] = p.AsMapping()
	}
	return out
}
