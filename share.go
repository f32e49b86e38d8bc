package tonemix

import (
	"math"
	"net/url"
	"strconv"
)

// EncodeShare encodes a parameter set as a flat query string suitable
// for a share URL: one-decimal frequencies (f1, f2), integer-percent
// volumes (v1, v2) and waveform names (w1, w2). The key order is
// deterministic, so equal parameter sets encode to equal strings.
func EncodeShare(p ExportParams) string {
	v := url.Values{}
	v.Set(shareKeyFreq1, strconv.FormatFloat(p.Freq1, 'f', shareFreqDigits, 64))
	v.Set(shareKeyFreq2, strconv.FormatFloat(p.Freq2, 'f', shareFreqDigits, 64))
	v.Set(shareKeyVolume1, strconv.Itoa(volumeToPercent(p.Volume1)))
	v.Set(shareKeyVolume2, strconv.Itoa(volumeToPercent(p.Volume2)))
	v.Set(shareKeyWave1, p.Waveform1.String())
	v.Set(shareKeyWave2, p.Waveform2.String())
	return v.Encode()
}

// DecodeShare parses a share string back into a parameter set. Every
// field is validated independently: missing, malformed or out-of-range
// fields are silently dropped and keep their default (440 Hz / 880 Hz,
// half volume, sine). Decoding never fails.
func DecodeShare(share string, rng Range) ExportParams {
	p := DefaultParams()

	values, err := url.ParseQuery(share)
	if err != nil {
		return p
	}

	if f, ok := parseShareFrequency(values.Get(shareKeyFreq1), rng); ok {
		p.Freq1 = f
	}
	if f, ok := parseShareFrequency(values.Get(shareKeyFreq2), rng); ok {
		p.Freq2 = f
	}
	if v, ok := parseSharePercent(values.Get(shareKeyVolume1)); ok {
		p.Volume1 = v
	}
	if v, ok := parseSharePercent(values.Get(shareKeyVolume2)); ok {
		p.Volume2 = v
	}
	if w, ok := ParseWaveform(values.Get(shareKeyWave1)); ok {
		p.Waveform1 = w
	}
	if w, ok := ParseWaveform(values.Get(shareKeyWave2)); ok {
		p.Waveform2 = w
	}

	return p
}

// parseShareFrequency accepts a decimal frequency within rng.
func parseShareFrequency(s string, rng Range) (float64, bool) {
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	if f < rng.Min || f > rng.Max {
		return 0, false
	}
	return f, true
}

// parseSharePercent accepts an integer percent 0-100 and returns it as
// linear gain.
func parseSharePercent(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < sharePercentMin || n > sharePercentMax {
		return 0, false
	}
	return float64(n) / sharePercentMax, true
}

// volumeToPercent converts linear gain to the integer percent used on
// the wire.
func volumeToPercent(v float64) int {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return sharePercentMax
	}
	return int(math.Round(v * sharePercentMax))
}
