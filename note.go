package tonemix

import (
	"fmt"
	"math"
	"strings"
)

// letterSemitones maps a note letter to its semitone distance from C.
var letterSemitones = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// ParseNote converts a typed note name into a frequency in Hz, clamped
// into rng. The grammar is a case-insensitive letter A-G, an optional
// accidental ("#" sharp, "b" flat), and a one or two digit octave 0-10.
// Anything else, including trailing characters, returns ErrInvalidNote;
// callers are expected to discard the input and keep their current value.
//
// Notes whose tempered frequency falls outside rng are clamped rather
// than rejected: "C0" is a valid note name even though 16.4 Hz is below
// the audible floor.
func ParseNote(text string, rng Range) (float64, error) {
	s := strings.ToUpper(strings.TrimSpace(text))
	if len(s) < 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNote, text)
	}

	semitone, ok := letterSemitones[s[0]]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNote, text)
	}

	i := 1
	switch s[i] {
	case '#':
		semitone++
		i++
	case 'B':
		// Already uppercased, so both "b" and "B" read as a flat here.
		// A bare letter B ("B4") never reaches this branch because the
		// octave digit follows immediately.
		semitone--
		i++
	}

	octaveText := s[i:]
	if len(octaveText) < 1 || len(octaveText) > 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNote, text)
	}
	octave := 0
	for j := 0; j < len(octaveText); j++ {
		if octaveText[j] < '0' || octaveText[j] > '9' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidNote, text)
		}
		octave = octave*10 + int(octaveText[j]-'0')
	}
	if octave < minOctave || octave > maxOctave {
		return 0, fmt.Errorf("%w: octave out of range in %q", ErrInvalidNote, text)
	}

	semisFromA4 := (octave-referenceOctave)*semitonesPerOctave + (semitone - semitonesAtoC)
	freq := referenceFrequency * math.Pow(2, float64(semisFromA4)/semitonesPerOctave)

	return rng.Clamp(freq), nil
}
