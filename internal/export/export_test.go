package export

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/RMahshie/wavegen/internal/osc"
)

func testWaveform() *osc.Waveform {
	return osc.NewWaveform([]osc.Point{
		osc.NewPoint(0, 0),
		osc.NewPoint(0.25, 1),
		osc.NewPoint(0.5, -0.5),
		osc.NewPoint(0.75, -2),
	})
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "json", want: FormatJSON},
		{in: "YAML", want: FormatYAML},
		{in: " csv ", want: FormatCSV},
		{in: "wav", want: FormatWAV},
		{in: "mp3", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "application/json", ContentType(FormatJSON))
	assert.Equal(t, "application/yaml", ContentType(FormatYAML))
	assert.Equal(t, "text/csv", ContentType(FormatCSV))
	assert.Equal(t, "audio/wav", ContentType(FormatWAV))
	assert.Equal(t, "wav", Extension(FormatWAV))
}

func TestEncode_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, testWaveform(), FormatJSON, Options{}))

	var got []map[string]float64
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, testWaveform().Records(), got)
}

func TestEncode_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, testWaveform(), FormatYAML, Options{}))

	var got []map[string]float64
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, testWaveform().Records(), got)
}

func TestEncode_CSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, testWaveform(), FormatCSV, Options{}))

	assert.Equal(t, "x,y\n0,0\n0.25,1\n0.5,-0.5\n0.75,-2\n", buf.String())
}

func TestEncode_WAV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, testWaveform(), FormatWAV, Options{SampleRate: 4}))

	data := buf.Bytes()
	require.Len(t, data, wavHeaderSize+4*2)
	assert.Equal(t, "RIFF", string(data[0:4]))
	assert.Equal(t, "WAVE", string(data[8:12]))
	assert.Equal(t, uint32(4), binary.LittleEndian.Uint32(data[24:28]))
	assert.Equal(t, uint32(8), binary.LittleEndian.Uint32(data[40:44]))

	samples := make([]int16, 4)
	require.NoError(t, binary.Read(bytes.NewReader(data[wavHeaderSize:]), binary.LittleEndian, samples))
	assert.Equal(t, []int16{0, 32767, -16384, -32767}, samples)
}

func TestEncode_WAVNeedsSampleRate(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, testWaveform(), FormatWAV, Options{})
	assert.ErrorIs(t, err, osc.ErrInvalidSampleRate)
}

func TestEncode_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, testWaveform(), Format("flac"), Options{})
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
