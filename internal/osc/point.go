package osc

import "fmt"

// Point is an immutable time/amplitude coordinate.
type Point struct {
	x, y float64
}

// NewPoint returns the point (x, y).
func NewPoint(x, y float64) Point {
	return Point{x: x, y: y}
}

// X returns the time coordinate, or the rescaled amplitude after Calc rescales.
func (p Point) X() float64 { return p.x }

// Y returns the amplitude.
func (p Point) Y() float64 { return p.y }

// AsPair returns the point as an (x, y) pair.
func (p Point) AsPair() [2]float64 {
	return [2]float64{p.x, p.y}
}

// AsMapping returns the point as a record with keys "x" and "y".
func (p Point) AsMapping() map[string]float64 {
	return map[string]float64{"x": p.x, "y": p.y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.x, p.y)
}
