package osc

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Sine is y = amp * sin(2*pi*freq*x).
type Sine struct{}

func (Sine) GenerateWaveform(x []float64, freq, amp float64) []float64 {
	y := make([]float64, len(x))
	for i, t := range x {
		y[i] = amp * math.Sin(2*math.Pi*freq*t)
	}
	return y
}

// Triangle is y = (2*amp/pi) * asin(sin(2*pi*freq*x)).
type Triangle struct{}

func (Triangle) GenerateWaveform(x []float64, freq, amp float64) []float64 {
	y := make([]float64, len(x))
	for i, t := range x {
		y[i] = (2 * amp / math.Pi) * math.Asin(math.Sin((2*math.Pi*freq)*t))
	}
	return y
}

var shapes = map[string]Shape{
	"sine":     Sine{},
	"triangle": Triangle{},
}

// ShapeByName looks up a built-in shape. Matching ignores case and
// surrounding whitespace.
func ShapeByName(name string) (Shape, error) {
	s, ok := shapes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, name)
	}
	return s, nil
}

// ShapeNames lists the built-in shape names in sorted order.
func ShapeNames() []string {
	names := make([]string, 0, len(shapes))
	for name := range shapes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
