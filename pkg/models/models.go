package models

import (
	"time"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Body struct {
		Status  string    `json:"status" example:"healthy" doc:"Service health status"`
		Version string    `json:"version" example:"1.0.0" doc:"API version"`
		Time    time.Time `json:"time" doc:"Current server time"`
	}
}

// OscillatorInfo describes one available waveform shape
type OscillatorInfo struct {
	Name    string `json:"name" doc:"Oscillator identifier"`
	Formula string `json:"formula" doc:"Waveform formula"`
}

// ListOscillatorsResponse lists the available oscillators
type ListOscillatorsResponse struct {
	Body struct {
		Oscillators       []OscillatorInfo `json:"oscillators" doc:"Available oscillator shapes"`
		DefaultSampleRate int              `json:"default_sample_rate" doc:"Sample rate used when none is given"`
	}
}

// WaveformParams are the synthesis parameters shared by generate and render requests.
// Frequency, Duration and Amplitude are pointers so an explicit 0 is kept; nil means 1.
type WaveformParams struct {
	Oscillator string   `json:"oscillator" required:"false" enum:"sine,triangle" default:"sine" doc:"Oscillator shape"`
	SampleRate int      `json:"sample_rate,omitempty" minimum:"1" maximum:"192000" doc:"Samples per second (defaults to server setting)"`
	Frequency  *float64 `json:"frequency,omitempty" required:"false" doc:"Frequency in Hz, default 1; negative values are treated as magnitudes"`
	Duration   *float64 `json:"duration,omitempty" required:"false" minimum:"-60" maximum:"60" doc:"Duration in seconds, default 1; negative values are treated as magnitudes"`
	Amplitude  *float64 `json:"amplitude,omitempty" required:"false" doc:"Peak amplitude, default 1; values above 1 trigger rescaling"`
}

// GenerateWaveformRequest represents a synchronous synthesis request
type GenerateWaveformRequest struct {
	Body struct {
		WaveformParams
		AsType string `json:"as_type,omitempty" enum:"objects,tuples,records" default:"objects" doc:"Point representation"`
	}
}

// GenerateWaveformResponseBody is the body of the synthesis response
type GenerateWaveformResponseBody struct {
	Oscillator string `json:"oscillator" doc:"Oscillator shape"`
	SampleRate int    `json:"sample_rate" doc:"Samples per second used"`
	AsType     string `json:"as_type" doc:"Point representation"`
	Count      int    `json:"count" doc:"Number of points"`
	Points     any    `json:"points" doc:"Waveform points"`
}

// GenerateWaveformResponse represents the synthesized waveform
type GenerateWaveformResponse struct {
	Body GenerateWaveformResponseBody
}
