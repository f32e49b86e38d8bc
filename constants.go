package tonemix

import "time"

// Equal temperament reference values.
const (
	// referenceFrequency is the tuning reference: A4 in Hz.
	referenceFrequency = 440.0

	// semitonesPerOctave is the number of equal-tempered steps per octave.
	semitonesPerOctave = 12

	// centsPerOctave is the number of cents per octave (100 per semitone).
	centsPerOctave = 1200

	// semitonesAtoC is the offset from A to the C above it within an octave.
	// Used when converting a semitone distance from A4 into a note letter
	// and octave number (octave boundaries fall on C, not A).
	semitonesAtoC = 9

	// referenceOctave is the octave number of the tuning reference (A4).
	referenceOctave = 4
)

// Frequency bounds.
const (
	// MinFrequency is the lower audible bound in Hz.
	MinFrequency = 20.0

	// MaxFrequency is the upper audible bound in Hz.
	MaxFrequency = 20000.0

	// MaxFrequencyNarrow is the upper bound of the narrow-range variant in Hz.
	MaxFrequencyNarrow = 2000.0
)

// Note grammar limits.
const (
	minOctave = 0
	maxOctave = 10
)

// Channel defaults.
const (
	// DefaultFrequency1 is the default frequency of the first channel in Hz.
	DefaultFrequency1 = 440.0

	// DefaultFrequency2 is the default frequency of the second channel in Hz.
	DefaultFrequency2 = 880.0

	// DefaultVolume is the default linear gain for both channels.
	DefaultVolume = 0.5
)

// Live playback constants.
const (
	// PlaybackSampleRate is the sample rate of the live audio backend in Hz.
	PlaybackSampleRate = 44100

	// bytesPerFloat32 is the wire size of one float32 sample.
	bytesPerFloat32 = 4

	// streamChunkSamples is the preallocated sample buffer size for the
	// voice stream reader.
	streamChunkSamples = 4096
)

// Offline export format. The export is intentionally fixed: a stereo
// 16-bit PCM snapshot of the current mix, one oscillator per channel.
const (
	// ExportSampleRate is the sample rate of exported WAV files in Hz.
	ExportSampleRate = 44100

	// ExportDuration is the fixed length of exported WAV files.
	ExportDuration = 10 * time.Second

	// ExportBitDepth is the PCM bit depth of exported WAV files.
	ExportBitDepth = 16

	// exportChannels is the channel count of exported WAV files.
	exportChannels = 2
)

// Share codec keys and limits.
const (
	shareKeyFreq1   = "f1"
	shareKeyFreq2   = "f2"
	shareKeyVolume1 = "v1"
	shareKeyVolume2 = "v2"
	shareKeyWave1   = "w1"
	shareKeyWave2   = "w2"
	sharePercentMax = 100
	sharePercentMin = 0
	shareFreqDigits = 1 // one decimal place for frequencies
)

// DefaultQuietPeriod is the coalescing window for debounced writes,
// such as persisting the share string after a burst of control changes.
const DefaultQuietPeriod = time.Second
