// Package export encodes waveforms for download and storage.
package export

import (
	"bufio"
	"encoding/binary"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/RMahshie/wavegen/internal/osc"
)

// Format is a serialization format for a waveform.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCSV  Format = "csv"
	FormatWAV  Format = "wav"
)

// ErrUnknownFormat is returned for formats other than json, yaml, csv and wav.
var ErrUnknownFormat = errors.New("export: unknown format")

// Options tune encoding. SampleRate is only used by FormatWAV.
type Options struct {
	SampleRate int
}

// ParseFormat maps a user-supplied name onto a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatYAML, FormatCSV, FormatWAV:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Formats lists every supported format.
func Formats() []Format {
	return []Format{FormatJSON, FormatYAML, FormatCSV, FormatWAV}
}

// ContentType returns the MIME type used when storing f.
func ContentType(f Format) string {
	switch f {
	case FormatJSON:
		return "application/json"
	case FormatYAML:
		return "application/yaml"
	case FormatCSV:
		return "text/csv"
	case FormatWAV:
		return "audio/wav"
	default:
		return "application/octet-stream"
	}
}

// Extension returns the file extension for f, without the dot.
func Extension(f Format) string {
	return string(f)
}

type record struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

func records(wf *osc.Waveform) []record {
	points := wf.Objects()
	out := make([]record, len(points))
	for i, p := range points {
		out[i] = record{X: p.X(), Y: p.Y()}
	}
	return out
}

// Encode writes wf to w in format f.
func Encode(w io.Writer, wf *osc.Waveform, f Format, opts Options) error {
	switch f {
	case FormatJSON:
		return json.NewEncoder(w).Encode(records(wf))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(records(wf)); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	case FormatCSV:
		return encodeCSV(w, wf)
	case FormatWAV:
		return encodeWAV(w, wf, opts.SampleRate)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

func encodeCSV(w io.Writer, wf *osc.Waveform) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"x", "y"}); err != nil {
		return err
	}
	for _, p := range wf.Tuples() {
		row := []string{
			strconv.FormatFloat(p[0], 'g', -1, 64),
			strconv.FormatFloat(p[1], 'g', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

const (
	wavHeaderSize    = 44
	wavBitsPerSample = 16
	wavChannels      = 1
)

// encodeWAV writes the y values as mono 16-bit PCM, clamped to [-1, 1].
func encodeWAV(w io.Writer, wf *osc.Waveform, sampleRate int) error {
	if sampleRate < 1 {
		return fmt.Errorf("%w: wav needs a sample rate, got %d", osc.ErrInvalidSampleRate, sampleRate)
	}

	points := wf.Objects()
	blockAlign := wavChannels * wavBitsPerSample / 8
	dataSize := uint32(len(points) * blockAlign)

	bw := bufio.NewWriter(w)
	header := []any{
		[4]byte{'R', 'I', 'F', 'F'},
		uint32(wavHeaderSize - 8 + dataSize),
		[4]byte{'W', 'A', 'V', 'E'},
		[4]byte{'f', 'm', 't', ' '},
		uint32(16),
		uint16(1), // PCM
		uint16(wavChannels),
		uint32(sampleRate),
		uint32(sampleRate * blockAlign),
		uint16(blockAlign),
		uint16(wavBitsPerSample),
		[4]byte{'d', 'a', 't', 'a'},
		dataSize,
	}
	for _, field := range header {
		if err := binary.Write(bw, binary.LittleEndian, field); err != nil {
			return fmt.Errorf("failed to write wav header: %w", err)
		}
	}

	for _, p := range points {
		v := math.Max(-1, math.Min(1, p.Y()))
		if err := binary.Write(bw, binary.LittleEndian, int16(math.Round(v*math.MaxInt16))); err != nil {
			return fmt.Errorf("failed to write wav samples: %w", err)
		}
	}
	return bw.Flush()
}
