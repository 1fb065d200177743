// Package osc synthesizes periodic waveforms as sequences of time/amplitude
// points.
//
// An Oscillator owns a sample rate and delegates the waveform formula to a
// Shape. Calc builds the time axis, asks the Shape for amplitudes, rescales
// out-of-range results and packages everything as Points. A Waveform wraps
// the resulting points and exports copies as objects, tuples or records.
// Factory ties the steps together for any Synthesizer.
//
// Oscillators are not safe for concurrent reconfiguration; build one per
// goroutine.
package osc
