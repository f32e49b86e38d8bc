package tonemix

// Preset is an immutable named parameter set for both channels.
type Preset struct {
	Name        string
	Description string

	Freq1, Freq2     float64
	Volume1, Volume2 float64
	Waveform1        Waveform
	Waveform2        Waveform
}

// Params returns the preset's parameter set.
func (p Preset) Params() ExportParams {
	return ExportParams{
		Freq1:     p.Freq1,
		Freq2:     p.Freq2,
		Volume1:   p.Volume1,
		Volume2:   p.Volume2,
		Waveform1: p.Waveform1,
		Waveform2: p.Waveform2,
	}
}

// presetTable is the fixed preset list. Values are pre-validated
// constants within FullRange, so applying a preset is a pure overwrite.
var presetTable = []Preset{
	{
		Name:        "default",
		Description: "A4 and A5 sine tones",
		Freq1:       440, Freq2: 880,
		Volume1: 0.5, Volume2: 0.5,
		Waveform1: WaveSine, Waveform2: WaveSine,
	},
	{
		Name:        "octave",
		Description: "A3 against A4",
		Freq1:       220, Freq2: 440,
		Volume1: 0.5, Volume2: 0.5,
		Waveform1: WaveSine, Waveform2: WaveSine,
	},
	{
		Name:        "fifth",
		Description: "a just perfect fifth above A4",
		Freq1:       440, Freq2: 660,
		Volume1: 0.5, Volume2: 0.5,
		Waveform1: WaveSine, Waveform2: WaveSine,
	},
	{
		Name:        "major-third",
		Description: "a just major third above A4",
		Freq1:       440, Freq2: 550,
		Volume1: 0.5, Volume2: 0.5,
		Waveform1: WaveSine, Waveform2: WaveSine,
	},
	{
		Name:        "beat",
		Description: "4 Hz beat around A4",
		Freq1:       440, Freq2: 444,
		Volume1: 0.5, Volume2: 0.5,
		Waveform1: WaveSine, Waveform2: WaveSine,
	},
	{
		Name:        "rumble",
		Description: "low triangle pair",
		Freq1:       40, Freq2: 60,
		Volume1: 0.7, Volume2: 0.7,
		Waveform1: WaveTriangle, Waveform2: WaveTriangle,
	},
	{
		Name:        "buzz",
		Description: "detuned sawtooth pair",
		Freq1:       110, Freq2: 111,
		Volume1: 0.4, Volume2: 0.4,
		Waveform1: WaveSawtooth, Waveform2: WaveSawtooth,
	},
}

// Presets returns the preset table in display order. The returned slice
// is a copy; the table itself is immutable.
func Presets() []Preset {
	out := make([]Preset, len(presetTable))
	copy(out, presetTable)
	return out
}

// LookupPreset finds a preset by name.
func LookupPreset(name string) (Preset, bool) {
	for _, p := range presetTable {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}
