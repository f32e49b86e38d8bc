package synth

// Normalized phase landmarks for the piecewise waveform generators.
// Phase is kept in [0, 1) and all shapes start at a zero crossing so a
// freshly started voice does not click.
const (
	quarterPhase      = 0.25
	halfPhase         = 0.5
	threeQuarterPhase = 0.75
)

// Waveform slopes expressed against normalized phase.
const (
	triangleSlope = 4.0 // rises 0 -> 1 over a quarter period
	sawtoothSlope = 2.0 // rises 0 -> 1 over a half period
)
