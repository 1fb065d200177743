package osc

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func samplePoints() []Point {
	return []Point{
		NewPoint(1.0, 1.0),
		NewPoint(2.0, 2.0),
		NewPoint(3.0, 3.0),
	}
}

func TestWaveform_Points(t *testing.T) {
	points := samplePoints()
	wf := NewWaveform(points)

	objects, err := wf.Points(ExportObjects)
	require.NoError(t, err)
	assert.Equal(t, points, objects)

	def, err := wf.Points("")
	require.NoError(t, err)
	assert.Equal(t, points, def)

	tuples, err := wf.Points(ExportTuples)
	require.NoError(t, err)
	assert.Equal(t, [][2]float64{{1.0, 1.0}, {2.0, 2.0}, {3.0, 3.0}}, tuples)

	records, err := wf.Points(ExportRecords)
	require.NoError(t, err)
	assert.Equal(t, []map[string]float64{
		{"x": 1.0, "y": 1.0},
		{"x": 2.0, "y": 2.0},
		{"x": 3.0, "y": 3.0},
	}, records)
}

func TestWaveform_ExportsAreCopies(t *testing.T) {
	points := samplePoints()
	wf := NewWaveform(points)

	points[0] = NewPoint(99, 99)
	objects := wf.Objects()
	assert.Equal(t, NewPoint(1, 1), objects[0], "constructor must copy its input")

	objects[1] = NewPoint(42, 42)
	tuples := wf.Tuples()
	tuples[2][1] = 42
	records := wf.Records()
	records[0]["y"] = 42

	assert.Equal(t, samplePoints(), wf.Objects())
	assert.Equal(t, 3, wf.Len())
}

func TestWaveform_InvalidExportType(t *testing.T) {
	wf := NewWaveform(nil)

	_, err := wf.Points("something")
	assert.ErrorIs(t, err, ErrInvalidExportType)
}

func TestWaveform_Finite(t *testing.T) {
	tests := []struct {
		name   string
		points []Point
		want   bool
	}{
		{name: "empty", points: nil, want: true},
		{name: "regular", points: samplePoints(), want: true},
		{name: "nan x", points: []Point{NewPoint(math.NaN(), 0)}, want: false},
		{name: "infinite y", points: []Point{NewPoint(0, 1), NewPoint(1, math.Inf(-1))}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewWaveform(tt.points).Finite())
		})
	}
}

// MockSynthesizer implements Synthesizer for testing
type MockSynthesizer struct {
	mock.Mock
}

func (m *MockSynthesizer) SetSampleRate(sr int) (int, error) {
	args := m.Called(sr)
	return args.Int(0), args.Error(1)
}

func (m *MockSynthesizer) Calc(freq, dur, amp float64) []Point {
	args := m.Called(freq, dur, amp)
	return args.Get(0).([]Point)
}

func TestFactory_Create(t *testing.T) {
	synth := &MockSynthesizer{}
	synth.On("SetSampleRate", 42).Return(42, nil).Once()
	synth.On("Calc", 1.0, 2.0, 3.0).Return(samplePoints()).Once()

	wf, err := Factory{}.Create(42, 1, 2, 3, synth)

	require.NoError(t, err)
	require.NotNil(t, wf)
	assert.Equal(t, samplePoints(), wf.Objects())
	synth.AssertExpectations(t)
	synth.AssertNumberOfCalls(t, "SetSampleRate", 1)
	synth.AssertNumberOfCalls(t, "Calc", 1)
}

func TestFactory_CreateStopsOnSampleRateError(t *testing.T) {
	rateErr := errors.New("bad rate")
	synth := &MockSynthesizer{}
	synth.On("SetSampleRate", 0).Return(0, rateErr).Once()

	wf, err := Factory{}.Create(0, 1, 1, 1, synth)

	assert.ErrorIs(t, err, rateErr)
	assert.Nil(t, wf)
	synth.AssertNotCalled(t, "Calc", mock.Anything, mock.Anything, mock.Anything)
}

func TestFactory_CreateWithOscillators(t *testing.T) {
	for _, name := range ShapeNames() {
		t.Run(name, func(t *testing.T) {
			shape, err := ShapeByName(name)
			require.NoError(t, err)
			o, err := New(DefaultSampleRate, shape)
			require.NoError(t, err)

			wf, err := Factory{}.Create(100, 1, 2, 1, o)
			require.NoError(t, err)
			assert.Equal(t, 200, wf.Len())
			assert.Equal(t, 100, o.SampleRate())
		})
	}

	o, err := NewSine(10)
	require.NoError(t, err)
	_, err = Factory{}.Create(0, 1, 1, 1, o)
	assert.ErrorIs(t, err, ErrInvalidSampleRate)
}

func TestFactory_NilSynthesizer(t *testing.T) {
	_, err := Factory{}.Create(10, 1, 1, 1, nil)
	assert.ErrorIs(t, err, ErrNilSynthesizer)
}
