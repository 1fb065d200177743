package models

import "github.com/RMahshie/wavegen/internal/osc"

// PointObject is the JSON form of an osc.Point when exported as objects
type PointObject struct {
	X float64 `json:"x" doc:"Time in seconds, or rescaled amplitude when normalized"`
	Y float64 `json:"y" doc:"Amplitude"`
}

// PointObjects converts points to their JSON form
func PointObjects(points []osc.Point) []PointObject {
	out := make([]PointObject, len(points))
	for i, p := range points {
		out[i] = PointObject{X: p.X(), Y: p.Y()}
	}
	return out
}
