package tonemix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupPreset(t *testing.T) {
	p, ok := LookupPreset("fifth")
	require.True(t, ok)
	assert.Equal(t, 440.0, p.Freq1)
	assert.Equal(t, 660.0, p.Freq2)

	_, ok = LookupPreset("nonexistent")
	assert.False(t, ok)
}

func TestPresetsAreValid(t *testing.T) {
	presets := Presets()
	require.NotEmpty(t, presets)

	seen := map[string]bool{}
	for _, p := range presets {
		t.Run(p.Name, func(t *testing.T) {
			assert.False(t, seen[p.Name], "duplicate preset name")
			seen[p.Name] = true

			assert.NotEmpty(t, p.Name)
			assert.GreaterOrEqual(t, p.Freq1, FullRange.Min)
			assert.LessOrEqual(t, p.Freq1, FullRange.Max)
			assert.GreaterOrEqual(t, p.Freq2, FullRange.Min)
			assert.LessOrEqual(t, p.Freq2, FullRange.Max)
			assert.GreaterOrEqual(t, p.Volume1, 0.0)
			assert.LessOrEqual(t, p.Volume1, 1.0)
			assert.GreaterOrEqual(t, p.Volume2, 0.0)
			assert.LessOrEqual(t, p.Volume2, 1.0)
			assert.True(t, p.Waveform1.Valid())
			assert.True(t, p.Waveform2.Valid())
		})
	}
}

func TestPresetsReturnsCopy(t *testing.T) {
	first := Presets()
	first[0].Freq1 = 12345

	again := Presets()
	assert.NotEqual(t, 12345.0, again[0].Freq1, "mutating the returned slice must not touch the table")
}

func TestPresetParams(t *testing.T) {
	p, ok := LookupPreset("beat")
	require.True(t, ok)

	params := p.Params()
	assert.Equal(t, p.Freq1, params.Freq1)
	assert.Equal(t, p.Freq2, params.Freq2)
	assert.InDelta(t, 4.0, BeatFrequency(params.Freq1, params.Freq2), 1e-9)
}
