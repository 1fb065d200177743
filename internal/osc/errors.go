package osc

import "errors"

var (
	// ErrInvalidSampleRate is returned when a sample rate below 1 is requested.
	ErrInvalidSampleRate = errors.New("osc: sample rate must be at least 1")

	// ErrInvalidExportType is returned by Waveform.Points for an unknown selector.
	ErrInvalidExportType = errors.New("osc: invalid export type")

	// ErrInvalidRange is returned by Normalize when lower >= upper.
	ErrInvalidRange = errors.New("osc: lower bound must be less than upper bound")

	// ErrUnknownShape is returned by ShapeByName for an unregistered name.
	ErrUnknownShape = errors.New("osc: unknown oscillator shape")

	// ErrNilSynthesizer is returned by Factory.Create when no synthesizer is given.
	ErrNilSynthesizer = errors.New("osc: synthesizer is required")

	// ErrDegenerateWaveform reports a waveform with non-finite coordinates,
	// which is what rescaling a constant amplitude series produces.
	ErrDegenerateWaveform = errors.New("osc: waveform has non-finite coordinates")
)
