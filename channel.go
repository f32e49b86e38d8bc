package tonemix

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"sync"
	"sync/atomic"

	"github.com/tphakala/go-tone-mixer/internal/synth"
)

// gainStage is the persistent amplitude scaler between a voice and the
// output. It outlives individual voices: volume changes land here and are
// heard immediately whether or not a voice is currently sounding.
type gainStage struct {
	bits atomic.Uint64
}

func newGainStage(level float64) *gainStage {
	g := &gainStage{}
	g.Set(level)
	return g
}

// Set updates the gain, clamped to [0, 1].
func (g *gainStage) Set(level float64) {
	if math.IsNaN(level) || level < 0 {
		level = 0
	} else if level > 1 {
		level = 1
	}
	g.bits.Store(math.Float64bits(level))
}

// Level returns the current gain.
func (g *gainStage) Level() float64 {
	return math.Float64frombits(g.bits.Load())
}

// voiceStream adapts a voice and its gain stage into the little-endian
// float32 byte stream an Output pulls from. Read runs on the backend's
// audio goroutine; the voice and gain are mutated from the control side
// through their atomic paths only.
type voiceStream struct {
	voice *synth.Voice
	gain  *gainStage
	buf   []float64
}

func newVoiceStream(voice *synth.Voice, gain *gainStage) *voiceStream {
	return &voiceStream{
		voice: voice,
		gain:  gain,
		buf:   make([]float64, streamChunkSamples),
	}
}

func (s *voiceStream) Read(p []byte) (int, error) {
	n := len(p) / bytesPerFloat32
	if n == 0 {
		return 0, io.ErrShortBuffer
	}
	if len(s.buf) < n {
		s.buf = make([]float64, n)
	}
	chunk := s.buf[:n]
	s.voice.Fill(chunk)

	gain := s.gain.Level()
	for i, v := range chunk {
		bits := math.Float32bits(float32(v * gain))
		binary.LittleEndian.PutUint32(p[i*bytesPerFloat32:], bits)
	}
	return n * bytesPerFloat32, nil
}

// OscillatorChannel owns one tone-generating voice with a start/stop
// lifecycle. Frequency and volume are live parameters: changing them
// while the channel is playing retunes or regains the sounding voice in
// place. The waveform is captured when a voice starts; changing it while
// playing only affects the next start.
type OscillatorChannel struct {
	mu sync.Mutex

	out Output
	rng Range

	freq float64
	wave Waveform
	gain *gainStage

	voice  *synth.Voice
	line   Line
	closed bool
}

// NewChannel creates an idle channel on out with frequencies clamped to
// rng. The channel starts at 440 Hz, sine, half volume.
func NewChannel(out Output, rng Range) (*OscillatorChannel, error) {
	if out == nil {
		return nil, fmt.Errorf("%w: output is nil", ErrInvalidConfig)
	}
	if err := rng.Validate(); err != nil {
		return nil, err
	}
	return &OscillatorChannel{
		out:  out,
		rng:  rng,
		freq: rng.Clamp(DefaultFrequency1),
		wave: WaveSine,
		gain: newGainStage(DefaultVolume),
	}, nil
}

// Start allocates a voice at the channel's current frequency and
// waveform and begins emission through the persistent gain stage.
// Starting an already playing channel is a no-op.
func (c *OscillatorChannel) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return fmt.Errorf("%w: channel is closed", ErrInvalidConfig)
	}
	if c.voice != nil {
		return nil
	}

	voice := synth.NewVoice(PlaybackSampleRate, c.freq, c.wave)
	line, err := c.out.Play(newVoiceStream(voice, c.gain))
	if err != nil {
		return fmt.Errorf("start voice: %w", err)
	}
	c.voice = voice
	c.line = line
	return nil
}

// Stop halts and releases the voice. Safe to call when idle.
func (c *OscillatorChannel) Stop() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stopLocked()
}

func (c *OscillatorChannel) stopLocked() error {
	if c.voice == nil {
		return nil
	}
	err := c.line.Stop()
	c.voice = nil
	c.line = nil
	return err
}

// SetFrequency stores a new frequency, clamped into the channel's range,
// and retunes a live voice in place without restarting it.
func (c *OscillatorChannel) SetFrequency(freq float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.freq = c.rng.Clamp(freq)
	if c.voice != nil {
		c.voice.SetFrequency(c.freq)
	}
}

// Frequency returns the stored frequency in Hz.
func (c *OscillatorChannel) Frequency() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.freq
}

// SetVolume updates the persistent gain stage, clamped to [0, 1]. The
// change is live regardless of play state.
func (c *OscillatorChannel) SetVolume(level float64) {
	c.gain.Set(level)
}

// Volume returns the current gain in [0, 1].
func (c *OscillatorChannel) Volume() float64 {
	return c.gain.Level()
}

// SetWaveform stores a new wave shape. A sounding voice keeps the shape
// it was started with; the new shape takes effect on the next Start.
func (c *OscillatorChannel) SetWaveform(w Waveform) {
	if !w.Valid() {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.wave = w
}

// Waveform returns the stored wave shape.
func (c *OscillatorChannel) Waveform() Waveform {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.wave
}

// IsPlaying reports whether a voice is currently sounding.
func (c *OscillatorChannel) IsPlaying() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.voice != nil
}

// FrequencyRange returns the channel's clamping range.
func (c *OscillatorChannel) FrequencyRange() Range {
	return c.rng
}

// Close stops any sounding voice and releases the channel. Safe to call
// more than once.
func (c *OscillatorChannel) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	err := c.stopLocked()
	c.closed = true
	return err
}
