package tonemix

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Common errors returned by the library.
var (
	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid tone mixer configuration")

	// ErrInvalidNote indicates note text that does not match the note grammar.
	ErrInvalidNote = errors.New("invalid note name")

	// ErrExportInFlight indicates an export was requested while another
	// export is still running.
	ErrExportInFlight = errors.New("export already in progress")

	// ErrExportFailed indicates the offline render or WAV encoding failed.
	ErrExportFailed = errors.New("export failed")
)

// chromaticNames is the fixed 12-note chromatic table starting at C.
var chromaticNames = [semitonesPerOctave]string{
	"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B",
}

// semitonesFromA4 returns the signed distance in equal-tempered semitones
// from A4 to the note nearest freq.
func semitonesFromA4(freq float64) int {
	return int(math.Round(semitonesPerOctave * math.Log2(freq/referenceFrequency)))
}

// NoteName returns the name of the equal-tempered note nearest freq,
// e.g. "A4" for 440 Hz. Any positive finite frequency yields a name.
func NoteName(freq float64) string {
	semis := semitonesFromA4(freq)

	// Octave boundaries fall on C, so shift the A-relative distance by the
	// A-to-C offset before splitting into octave and note index. The index
	// is reduced with a double modulo so negative distances land in [0, 12).
	octave := int(math.Floor(float64(semis+semitonesAtoC)/semitonesPerOctave)) + referenceOctave
	index := ((semis+semitonesAtoC)%semitonesPerOctave + semitonesPerOctave) % semitonesPerOctave

	return chromaticNames[index] + strconv.Itoa(octave)
}

// NearestNoteFrequency returns the exact equal-tempered frequency of the
// note nearest freq.
func NearestNoteFrequency(freq float64) float64 {
	semis := semitonesFromA4(freq)
	return referenceFrequency * math.Pow(2, float64(semis)/semitonesPerOctave)
}

// CentsOffset returns the signed deviation of freq from the nearest
// equal-tempered note, in cents. Zero means exactly in tune. The result
// is always in (-50, 50] since it is measured from the nearest note.
func CentsOffset(freq float64) int {
	return int(math.Round(centsPerOctave * math.Log2(freq/NearestNoteFrequency(freq))))
}

// Range is a frequency range in Hz with logarithmic slider mapping.
// A uniformly stepped control position in [0, 1] maps to perceptually
// uniform frequency steps across the range.
type Range struct {
	// Min is the lowest frequency in Hz. Must be positive.
	Min float64

	// Max is the highest frequency in Hz. Must be greater than Min.
	Max float64
}

// Predeclared ranges. FullRange spans the audible spectrum; NarrowRange is
// the reduced variant used by simpler front ends.
var (
	FullRange   = Range{Min: MinFrequency, Max: MaxFrequency}
	NarrowRange = Range{Min: MinFrequency, Max: MaxFrequencyNarrow}
)

// Validate checks that the range is usable for logarithmic mapping.
func (r Range) Validate() error {
	if !(r.Min > 0) || math.IsInf(r.Min, 0) {
		return fmt.Errorf("%w: range minimum must be positive and finite", ErrInvalidConfig)
	}
	if !(r.Max > r.Min) || math.IsInf(r.Max, 0) {
		return fmt.Errorf("%w: range maximum must exceed minimum", ErrInvalidConfig)
	}
	return nil
}

// Clamp forces freq into the range. NaN clamps to the range minimum.
func (r Range) Clamp(freq float64) float64 {
	if math.IsNaN(freq) || freq < r.Min {
		return r.Min
	}
	if freq > r.Max {
		return r.Max
	}
	return freq
}

// Position maps freq to a slider position in [0, 1] on a logarithmic
// scale. Frequencies outside the range clamp to the nearest endpoint.
func (r Range) Position(freq float64) float64 {
	freq = r.Clamp(freq)
	return math.Log(freq/r.Min) / math.Log(r.Max/r.Min)
}

// Frequency is the inverse of Position: it maps a slider position in
// [0, 1] back to a frequency in Hz. Positions outside [0, 1] clamp.
func (r Range) Frequency(t float64) float64 {
	if math.IsNaN(t) || t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return r.Min * math.Pow(r.Max/r.Min, t)
}

// FormatFrequency renders freq for display: kilohertz with one decimal
// at or above 1000 Hz, hertz with one decimal below.
func FormatFrequency(freq float64) string {
	if freq >= 1000 {
		return fmt.Sprintf("%.1f kHz", freq/1000)
	}
	return fmt.Sprintf("%.1f Hz", freq)
}

// BeatFrequency returns the perceived amplitude-modulation rate produced
// by summing two close frequencies: their absolute difference in Hz.
func BeatFrequency(f1, f2 float64) float64 {
	return math.Abs(f1 - f2)
}
