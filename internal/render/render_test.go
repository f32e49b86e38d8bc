package render

import (
	"math/cmplx"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/tphakala/go-tone-mixer/internal/synth"
	"github.com/tphakala/go-tone-mixer/internal/testutil"
)

func testParams() Params {
	return Params{
		SampleRate: 44100,
		Duration:   time.Second,
		Freq1:      440,
		Freq2:      660,
		Volume1:    0.5,
		Volume2:    0.5,
		Wave1:      synth.Sine,
		Wave2:      synth.Sine,
	}
}

func TestStereoLengthAndBounds(t *testing.T) {
	p := testParams()
	left, right, err := Stereo(p)
	require.NoError(t, err)

	require.Len(t, left, p.Frames())
	require.Len(t, right, p.Frames())

	testutil.AssertNoNaNOrInf(t, left)
	testutil.AssertNoNaNOrInf(t, right)
	testutil.AssertAllInRange(t, left, -p.Volume1, p.Volume1)
	testutil.AssertAllInRange(t, right, -p.Volume2, p.Volume2)
}

func TestStereoIsDeterministic(t *testing.T) {
	l1, r1, err := Stereo(testParams())
	require.NoError(t, err)
	l2, r2, err := Stereo(testParams())
	require.NoError(t, err)

	assert.Equal(t, l1, l2)
	assert.Equal(t, r1, r2)
}

func TestStereoVolumeScaling(t *testing.T) {
	p := testParams()
	p.Volume1 = 1.0
	p.Volume2 = 0.1

	left, right, err := Stereo(p)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, testutil.PeakAmplitude(left), 1e-3)
	assert.InDelta(t, 0.1, testutil.PeakAmplitude(right), 1e-3)
}

// TestStereoSpectralPeaks verifies each channel carries its own tone at
// the requested frequency. One second of audio puts one FFT bin per Hz,
// and both test frequencies are whole numbers of cycles, so the peak
// must land exactly on its bin.
func TestStereoSpectralPeaks(t *testing.T) {
	p := testParams()
	left, right, err := Stereo(p)
	require.NoError(t, err)

	fft := fourier.NewFFT(p.Frames())

	assert.Equal(t, 440, dominantBin(fft, left), "left channel peak")
	assert.Equal(t, 660, dominantBin(fft, right), "right channel peak")
}

func dominantBin(fft *fourier.FFT, seq []float64) int {
	coeffs := fft.Coefficients(nil, seq)
	peakBin := 0
	peakMag := 0.0
	for i, c := range coeffs {
		if mag := cmplx.Abs(c); mag > peakMag {
			peakMag = mag
			peakBin = i
		}
	}
	return peakBin
}

func TestInterleaved(t *testing.T) {
	p := testParams()
	p.Duration = 10 * time.Millisecond

	left, right, err := Stereo(p)
	require.NoError(t, err)

	interleaved, err := Interleaved(p)
	require.NoError(t, err)
	require.Len(t, interleaved, 2*len(left))

	for i := range left {
		require.Equal(t, left[i], interleaved[2*i], "frame %d left", i)
		require.Equal(t, right[i], interleaved[2*i+1], "frame %d right", i)
	}
}

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
	}{
		{"zero sample rate", func(p *Params) { p.SampleRate = 0 }},
		{"negative duration", func(p *Params) { p.Duration = -time.Second }},
		{"zero frequency", func(p *Params) { p.Freq1 = 0 }},
		{"negative frequency", func(p *Params) { p.Freq2 = -440 }},
		{"volume above one", func(p *Params) { p.Volume1 = 1.01 }},
		{"negative volume", func(p *Params) { p.Volume2 = -0.01 }},
		{"unknown waveform", func(p *Params) { p.Wave1 = synth.Waveform(9) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testParams()
			tt.mutate(&p)
			assert.Error(t, p.Validate())

			_, _, err := Stereo(p)
			assert.Error(t, err)
		})
	}

	assert.NoError(t, testParams().Validate())
}

func TestAllWaveformsRender(t *testing.T) {
	for _, w := range []synth.Waveform{synth.Sine, synth.Square, synth.Triangle, synth.Sawtooth} {
		t.Run(w.String(), func(t *testing.T) {
			p := testParams()
			p.Duration = 50 * time.Millisecond
			p.Wave1 = w
			p.Wave2 = w

			left, right, err := Stereo(p)
			require.NoError(t, err)
			testutil.AssertAllInRange(t, left, -1, 1)
			testutil.AssertAllInRange(t, right, -1, 1)
			assert.Greater(t, testutil.PeakAmplitude(left), 0.4,
				"half-volume tone should approach half amplitude")
		})
	}
}
