// Package synth implements phase-accumulator oscillator voices.
//
// A voice generates one periodic waveform at a mutable frequency. The
// frequency update path is lock-free so a control goroutine can retune a
// voice while an audio goroutine is pulling samples from it: retuning
// swaps the phase increment without touching the accumulated phase, so
// the output stays phase-continuous (no click, no restart).
package synth

import (
	"math"
	"sync/atomic"
)

// Waveform enumerates the supported periodic wave shapes.
type Waveform int

const (
	Sine Waveform = iota
	Square
	Triangle
	Sawtooth
)

// waveformNames is indexed by Waveform.
var waveformNames = [...]string{"sine", "square", "triangle", "sawtooth"}

// String returns the lowercase waveform name used by the share codec
// and the CLI.
func (w Waveform) String() string {
	if w < Sine || w > Sawtooth {
		return "unknown"
	}
	return waveformNames[w]
}

// Valid reports whether w is one of the four supported shapes.
func (w Waveform) Valid() bool {
	return w >= Sine && w <= Sawtooth
}

// ParseWaveform maps a waveform name to its Waveform value.
func ParseWaveform(name string) (Waveform, bool) {
	for i, n := range waveformNames {
		if n == name {
			return Waveform(i), true
		}
	}
	return Sine, false
}

// Sample returns the waveform amplitude in [-1, 1] at normalized phase
// p in [0, 1). Every shape starts at a zero crossing at p = 0.
func (w Waveform) Sample(p float64) float64 {
	switch w {
	case Square:
		if p < halfPhase {
			return 1
		}
		return -1

	case Triangle:
		switch {
		case p < quarterPhase:
			return triangleSlope * p
		case p < threeQuarterPhase:
			return 2 - triangleSlope*p
		default:
			return triangleSlope*p - 4
		}

	case Sawtooth:
		if p < halfPhase {
			return sawtoothSlope * p
		}
		return sawtoothSlope*p - 2

	default:
		return math.Sin(2 * math.Pi * p)
	}
}

// Voice is a single oscillator voice. The phase accumulator is owned by
// the goroutine calling Next or Fill; the frequency may be changed from
// any goroutine at any time.
type Voice struct {
	sampleRate float64
	wave       Waveform
	phase      float64

	// phaseInc holds math.Float64bits of the per-sample phase increment.
	phaseInc atomic.Uint64
}

// NewVoice creates a voice at the given sample rate, frequency and wave
// shape, starting at zero phase. The waveform is fixed for the lifetime
// of the voice; retune with SetFrequency instead of recreating it.
func NewVoice(sampleRate int, freq float64, wave Waveform) *Voice {
	v := &Voice{
		sampleRate: float64(sampleRate),
		wave:       wave,
	}
	v.SetFrequency(freq)
	return v
}

// SetFrequency retunes the voice in place. Takes effect on the next
// generated sample without resetting the phase.
func (v *Voice) SetFrequency(freq float64) {
	v.phaseInc.Store(math.Float64bits(freq / v.sampleRate))
}

// Frequency returns the current frequency in Hz.
func (v *Voice) Frequency() float64 {
	return math.Float64frombits(v.phaseInc.Load()) * v.sampleRate
}

// Wave returns the fixed wave shape of this voice.
func (v *Voice) Wave() Waveform {
	return v.wave
}

// Next generates one sample and advances the phase.
func (v *Voice) Next() float64 {
	s := v.wave.Sample(v.phase)
	v.advance(math.Float64frombits(v.phaseInc.Load()))
	return s
}

// Fill generates len(dst) consecutive samples. The phase increment is
// loaded once per call, which is fine at typical buffer sizes: a retune
// lands at worst one buffer late.
func (v *Voice) Fill(dst []float64) {
	inc := math.Float64frombits(v.phaseInc.Load())
	for i := range dst {
		dst[i] = v.wave.Sample(v.phase)
		v.advance(inc)
	}
}

func (v *Voice) advance(inc float64) {
	v.phase += inc
	if v.phase >= 1 {
		v.phase -= math.Floor(v.phase)
	}
}
