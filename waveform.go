package tonemix

import "github.com/tphakala/go-tone-mixer/internal/synth"

// Waveform enumerates the supported oscillator wave shapes. It is a
// closed set: share decoding and preset application only ever produce
// one of the four values below.
type Waveform = synth.Waveform

const (
	WaveSine     = synth.Sine
	WaveSquare   = synth.Square
	WaveTriangle = synth.Triangle
	WaveSawtooth = synth.Sawtooth
)

// ParseWaveform maps a lowercase waveform name ("sine", "square",
// "triangle", "sawtooth") to its Waveform value. The boolean is false
// for any other input.
func ParseWaveform(name string) (Waveform, bool) {
	return synth.ParseWaveform(name)
}

// Waveforms returns the four supported wave shapes in display order.
func Waveforms() []Waveform {
	return []Waveform{WaveSine, WaveSquare, WaveTriangle, WaveSawtooth}
}
