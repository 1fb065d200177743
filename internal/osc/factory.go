package osc

// Synthesizer is anything that can be configured with a sample rate and
// asked for points. *Oscillator implements it.
type Synthesizer interface {
	SetSampleRate(sr int) (int, error)
	Calc(freq, dur, amp float64) []Point
}

// Factory builds waveforms from a caller-supplied synthesizer. It holds no
// state; the zero value is ready to use.
type Factory struct{}

// Create configures synth with sampleRate, synthesizes the waveform and
// wraps the result.
func (Factory) Create(sampleRate int, freq, dur, amp float64, synth Synthesizer) (*Waveform, error) {
	if synth == nil {
		return nil, ErrNilSynthesizer
	}
	if _, err := synth.SetSampleRate(sampleRate); err != nil {
		return nil, err
	}
	return NewWaveform(synth.Calc(freq, dur, amp)), nil
}
