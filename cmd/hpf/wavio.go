package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// pcmFormat identifies integer PCM in a WAV fmt chunk.
const pcmFormat = 1

var errNotPCM16 = errors.New("input must be a 16-bit PCM WAV file")

// readMono returns the first channel of a 16-bit WAV file and its sample
// rate.
func readMono(path string) ([]int16, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, 0, fmt.Errorf("%s: %w", path, errNotPCM16)
	}

	if dec.BitDepth != 16 || dec.WavAudioFormat != pcmFormat {
		return nil, 0, fmt.Errorf("%s: %d-bit format %d: %w", path, dec.BitDepth, dec.WavAudioFormat, errNotPCM16)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("decode %s: %w", path, err)
	}

	channels := int(dec.NumChans)
	if channels < 1 {
		channels = 1
	}

	frames := len(buf.Data) / channels
	out := make([]int16, frames)

	for i := range out {
		out[i] = int16(buf.Data[i*channels])
	}

	return out, int(dec.SampleRate), nil
}

// writeStereo interleaves left and right into a 16-bit two-channel WAV file.
func writeStereo(path string, sampleRate int, left, right []int16) (err error) {
	if len(left) != len(right) {
		return fmt.Errorf("channel lengths differ: %d != %d", len(left), len(right))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
	}()

	data := make([]int, 2*len(left))
	for i := range left {
		data[2*i] = int(left[i])
		data[2*i+1] = int(right[i])
	}

	enc := wav.NewEncoder(f, sampleRate, 16, 2, pcmFormat)

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 2, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalize %s: %w", path, err)
	}

	return nil
}
