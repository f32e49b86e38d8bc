// Package render produces deterministic offline tone mixes.
//
// Rendering is never routed to a live output: a fresh voice per channel
// is run from zero phase for a fixed number of frames, so the same
// parameters always produce byte-identical results on every platform.
package render

import (
	"fmt"
	"math"
	"time"

	"github.com/tphakala/simd/f64"

	"github.com/tphakala/go-tone-mixer/internal/synth"
)

// Params describes one offline stereo render: oscillator 1 on the left
// channel, oscillator 2 on the right, each scaled by its own volume.
// The oscillators are not summed; export keeps one tone per channel.
type Params struct {
	SampleRate int
	Duration   time.Duration

	Freq1, Freq2     float64
	Volume1, Volume2 float64
	Wave1, Wave2     synth.Waveform
}

// Validate checks the parameter set before rendering.
func (p Params) Validate() error {
	if p.SampleRate <= 0 {
		return fmt.Errorf("render: sample rate must be positive, got %d", p.SampleRate)
	}
	if p.Duration <= 0 {
		return fmt.Errorf("render: duration must be positive, got %v", p.Duration)
	}
	for i, f := range []float64{p.Freq1, p.Freq2} {
		if !(f > 0) || math.IsInf(f, 0) {
			return fmt.Errorf("render: frequency %d must be positive and finite, got %v", i+1, f)
		}
	}
	for i, v := range []float64{p.Volume1, p.Volume2} {
		if math.IsNaN(v) || v < 0 || v > 1 {
			return fmt.Errorf("render: volume %d must be in [0, 1], got %v", i+1, v)
		}
	}
	if !p.Wave1.Valid() || !p.Wave2.Valid() {
		return fmt.Errorf("render: unknown waveform")
	}
	return nil
}

// Frames returns the number of sample frames the render will produce.
func (p Params) Frames() int {
	return int(float64(p.SampleRate) * p.Duration.Seconds())
}

// Stereo renders the mix and returns the two planar channels as float64
// samples, already scaled by their volumes. Samples are nominally in
// [-1, 1]; quantization clamps again before packing.
func Stereo(p Params) (left, right []float64, err error) {
	if err := p.Validate(); err != nil {
		return nil, nil, err
	}

	frames := p.Frames()
	left = make([]float64, frames)
	right = make([]float64, frames)

	synth.NewVoice(p.SampleRate, p.Freq1, p.Wave1).Fill(left)
	synth.NewVoice(p.SampleRate, p.Freq2, p.Wave2).Fill(right)

	f64.Scale(left, left, p.Volume1)
	f64.Scale(right, right, p.Volume2)

	return left, right, nil
}

// Interleaved renders the mix as a single frame-interleaved buffer
// (left sample first in every frame), ready for PCM packing.
func Interleaved(p Params) ([]float64, error) {
	left, right, err := Stereo(p)
	if err != nil {
		return nil, err
	}
	out := make([]float64, 2*len(left))
	f64.Interleave2(out, left, right)
	return out, nil
}
