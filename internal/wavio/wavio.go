// Package wavio writes and reads mono 16-bit linear PCM WAV files.
package wavio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// PCM format constants
const (
	BitDepth    = 16
	NumChannels = 1

	// MaxInt16 scales [-1, 1] floats to 16-bit integers.
	MaxInt16 = 32767.0

	// wavFormatPCM is the RIFF fmt tag for uncompressed integer PCM.
	wavFormatPCM = 1
)

// ErrInvalidWAV is returned when a file is not a readable 16-bit mono PCM WAV.
var ErrInvalidWAV = errors.New("invalid WAV file")

// Quantize scales each sample by MaxInt16 and truncates toward zero.
// Samples are expected to be clipped already; no range check is made.
func Quantize(signal []float64) []int {
	out := make([]int, len(signal))
	for i, s := range signal {
		out[i] = int(s * MaxInt16)
	}
	return out
}

// Encode writes signal as a 16-bit mono PCM WAV stream to w.
func Encode(w io.WriteSeeker, signal []float64, sampleRate int) error {
	enc := wav.NewEncoder(w, sampleRate, BitDepth, NumChannels, wavFormatPCM)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: NumChannels,
			SampleRate:  sampleRate,
		},
		Data:           Quantize(signal),
		SourceBitDepth: BitDepth,
	}

	if err := enc.Write(buf); err != nil {
		_ = enc.Close()
		return fmt.Errorf("failed to write audio data: %w", err)
	}
	// Close patches the RIFF and data chunk sizes.
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finalize WAV header: %w", err)
	}
	return nil
}

// Write creates (or truncates) path and encodes signal into it.
func Write(path string, signal []float64, sampleRate int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	// Capture close errors on the success path.
	defer func() {
		if closeErr := f.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("failed to close output file: %w", closeErr)
		}
	}()

	return Encode(f, signal, sampleRate)
}

// Info describes a decoded WAV stream.
type Info struct {
	SampleRate int
	Channels   int
	BitDepth   int
	Samples    int
}

// Decode reads a 16-bit mono PCM WAV stream and rescales it to floats by
// 1/MaxInt16.
func Decode(r io.ReadSeeker) ([]float64, Info, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, Info{}, ErrInvalidWAV
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, Info{}, fmt.Errorf("failed to read audio data: %w", err)
	}

	info := Info{
		SampleRate: int(dec.SampleRate),
		Channels:   int(dec.NumChans),
		BitDepth:   int(dec.BitDepth),
		Samples:    len(buf.Data),
	}
	if info.Channels != NumChannels || info.BitDepth != BitDepth {
		return nil, info, fmt.Errorf("%w: want %d-bit mono, got %d-bit %d channels",
			ErrInvalidWAV, BitDepth, info.BitDepth, info.Channels)
	}

	const invMax = 1.0 / MaxInt16
	out := make([]float64, len(buf.Data))
	for i, v := range buf.Data {
		out[i] = float64(v) * invMax
	}
	return out, info, nil
}

// Read opens path and decodes it with Decode.
func Read(path string) ([]float64, Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Info{}, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	samples, info, err := Decode(f)
	if err != nil {
		return nil, info, fmt.Errorf("%s: %w", path, err)
	}
	return samples, info, nil
}
