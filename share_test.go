package tonemix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeShare(t *testing.T) {
	p := ExportParams{
		Freq1: 440, Freq2: 660,
		Volume1: 0.5, Volume2: 0.25,
		Waveform1: WaveSine, Waveform2: WaveSawtooth,
	}

	got := EncodeShare(p)
	assert.Equal(t, "f1=440.0&f2=660.0&v1=50&v2=25&w1=sine&w2=sawtooth", got)
}

func TestShareRoundTrip(t *testing.T) {
	tests := []ExportParams{
		DefaultParams(),
		{Freq1: 20, Freq2: 20000, Volume1: 0, Volume2: 1, Waveform1: WaveSquare, Waveform2: WaveTriangle},
		{Freq1: 261.6, Freq2: 329.6, Volume1: 0.37, Volume2: 0.92, Waveform1: WaveSawtooth, Waveform2: WaveSine},
	}

	for _, p := range tests {
		got := DecodeShare(EncodeShare(p), FullRange)

		// One-decimal Hz and integer-percent volumes bound the loss.
		assert.InDelta(t, p.Freq1, got.Freq1, 0.05)
		assert.InDelta(t, p.Freq2, got.Freq2, 0.05)
		assert.InDelta(t, p.Volume1, got.Volume1, 0.005)
		assert.InDelta(t, p.Volume2, got.Volume2, 0.005)
		assert.Equal(t, p.Waveform1, got.Waveform1)
		assert.Equal(t, p.Waveform2, got.Waveform2)
	}
}

func TestDecodeShareDefaults(t *testing.T) {
	got := DecodeShare("", FullRange)
	assert.Equal(t, DefaultParams(), got)

	got = DecodeShare("unrelated=1", FullRange)
	assert.Equal(t, DefaultParams(), got)
}

func TestDecodeShareDropsInvalidFields(t *testing.T) {
	tests := []struct {
		name  string
		share string
		check func(t *testing.T, p ExportParams)
	}{
		{
			name:  "volume above 100 percent",
			share: "v1=150&v2=30",
			check: func(t *testing.T, p ExportParams) {
				assert.Equal(t, DefaultVolume, p.Volume1, "out-of-range volume keeps default")
				assert.Equal(t, 0.3, p.Volume2, "valid sibling field still applies")
			},
		},
		{
			name:  "negative volume",
			share: "v1=-10",
			check: func(t *testing.T, p ExportParams) {
				assert.Equal(t, DefaultVolume, p.Volume1)
			},
		},
		{
			name:  "frequency below range",
			share: "f1=5.0&f2=750.0",
			check: func(t *testing.T, p ExportParams) {
				assert.Equal(t, DefaultFrequency1, p.Freq1)
				assert.Equal(t, 750.0, p.Freq2)
			},
		},
		{
			name:  "frequency not a number",
			share: "f1=loud",
			check: func(t *testing.T, p ExportParams) {
				assert.Equal(t, DefaultFrequency1, p.Freq1)
			},
		},
		{
			name:  "unknown waveform",
			share: "w1=noise&w2=triangle",
			check: func(t *testing.T, p ExportParams) {
				assert.Equal(t, WaveSine, p.Waveform1)
				assert.Equal(t, WaveTriangle, p.Waveform2)
			},
		},
		{
			name:  "fractional volume",
			share: "v1=0.5",
			check: func(t *testing.T, p ExportParams) {
				assert.Equal(t, DefaultVolume, p.Volume1, "percent field must be an integer")
			},
		},
		{
			name:  "malformed query string",
			share: "%zz;&&=",
			check: func(t *testing.T, p ExportParams) {
				assert.Equal(t, DefaultParams(), p)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, DecodeShare(tt.share, FullRange))
		})
	}
}

func TestDecodeShareRespectsRange(t *testing.T) {
	// 5 kHz is valid in the full range but out of range for the narrow
	// variant, where the field is dropped rather than clamped.
	got := DecodeShare("f1=5000.0", FullRange)
	assert.Equal(t, 5000.0, got.Freq1)

	got = DecodeShare("f1=5000.0", NarrowRange)
	assert.Equal(t, DefaultFrequency1, got.Freq1)
}

func TestEncodeShareDeterministic(t *testing.T) {
	p := DefaultParams()
	first := EncodeShare(p)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, EncodeShare(p))
	}
}
