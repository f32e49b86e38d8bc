package tonemix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-tone-mixer/internal/testutil"
)

func TestNoteName(t *testing.T) {
	tests := []struct {
		freq float64
		want string
	}{
		{440, "A4"},
		{880, "A5"},
		{220, "A3"},
		{261.63, "C4"},
		{261.0, "C4"}, // nearest semitone, slightly flat
		{27.5, "A0"},  // negative semitone offset, double modulo path
		{16.35, "C0"},
		{523.25, "C5"},
		{466.16, "A#4"},
		{12543.85, "G9"},
		{445, "A4"}, // off by ~20 cents, still nearest A4
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, NoteName(tt.freq), "NoteName(%v)", tt.freq)
		})
	}
}

func TestNearestNoteFrequency(t *testing.T) {
	tests := []struct {
		freq float64
		want float64
	}{
		{440, 440},
		{445, 440},
		{870, 880},
		{262, 261.6255653005986}, // C4
	}

	for _, tt := range tests {
		testutil.AssertRelativeError(t, tt.want, NearestNoteFrequency(tt.freq), 1e-12,
			"NearestNoteFrequency(%v)", tt.freq)
	}
}

func TestCentsOffset(t *testing.T) {
	assert.Equal(t, 0, CentsOffset(440), "A4 is exactly in tune")
	assert.Equal(t, 0, CentsOffset(880))

	cents := CentsOffset(445)
	assert.Greater(t, cents, 0, "445 Hz is sharp of A4")
	assert.Less(t, cents, 50, "deviation from the nearest note is below a quarter tone")
}

func TestCentsOffsetRangeInvariant(t *testing.T) {
	// Deviation is measured from the nearest note, so it can never reach
	// half a semitone in magnitude.
	for f := 20.0; f <= 20000; f *= 1.0137 {
		cents := CentsOffset(f)
		assert.Greater(t, cents, -50, "freq %v", f)
		assert.LessOrEqual(t, cents, 50, "freq %v", f)
	}
}

func TestRangeValidate(t *testing.T) {
	require.NoError(t, FullRange.Validate())
	require.NoError(t, NarrowRange.Validate())

	assert.ErrorIs(t, Range{Min: 0, Max: 100}.Validate(), ErrInvalidConfig)
	assert.ErrorIs(t, Range{Min: -5, Max: 100}.Validate(), ErrInvalidConfig)
	assert.ErrorIs(t, Range{Min: 100, Max: 100}.Validate(), ErrInvalidConfig)
	assert.ErrorIs(t, Range{Min: 200, Max: 100}.Validate(), ErrInvalidConfig)
}

func TestRangeClamp(t *testing.T) {
	r := FullRange
	assert.Equal(t, 20.0, r.Clamp(5))
	assert.Equal(t, 20000.0, r.Clamp(30000))
	assert.Equal(t, 440.0, r.Clamp(440))
	assert.Equal(t, 20.0, r.Clamp(-1))
}

func TestRangePositionEndpoints(t *testing.T) {
	for _, r := range []Range{FullRange, NarrowRange} {
		assert.InDelta(t, 0.0, r.Position(r.Min), 1e-12)
		assert.InDelta(t, 1.0, r.Position(r.Max), 1e-12)
		assert.InDelta(t, r.Min, r.Frequency(0), 1e-9)
		assert.InDelta(t, r.Max, r.Frequency(1), 1e-6)
	}
}

func TestRangeRoundTrip(t *testing.T) {
	// Logarithmic slider mapping must round-trip across the whole range.
	for _, r := range []Range{FullRange, NarrowRange} {
		for f := r.Min; f <= r.Max; f *= 1.013 {
			got := r.Frequency(r.Position(f))
			testutil.AssertRelativeError(t, f, got, testutil.RoundTripTolerance,
				"round trip of %v in %+v", f, r)
		}
	}
}

func TestRangePositionIsMonotonic(t *testing.T) {
	prev := -1.0
	for f := 20.0; f <= 20000; f *= 1.1 {
		pos := FullRange.Position(f)
		assert.Greater(t, pos, prev, "position at %v Hz", f)
		prev = pos
	}
}

func TestFormatFrequency(t *testing.T) {
	tests := []struct {
		freq float64
		want string
	}{
		{440, "440.0 Hz"},
		{999.94, "999.9 Hz"},
		{1000, "1.0 kHz"},
		{2500, "2.5 kHz"},
		{20000, "20.0 kHz"},
		{20, "20.0 Hz"},
		{27.53, "27.5 Hz"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatFrequency(tt.freq), "FormatFrequency(%v)", tt.freq)
	}
}

func TestBeatFrequency(t *testing.T) {
	assert.InDelta(t, 4.0, BeatFrequency(440, 444), 1e-12)
	assert.InDelta(t, 4.0, BeatFrequency(444, 440), 1e-12)
	assert.InDelta(t, 0.0, BeatFrequency(440, 440), 1e-12)
}
