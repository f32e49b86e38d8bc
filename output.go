package tonemix

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"sync"

	"github.com/ebitengine/oto/v3"
)

// Output is a live audio backend. Play begins asynchronous playback of a
// mono stream of little-endian float32 samples at PlaybackSampleRate and
// returns a handle to stop it. Implementations pull from src on their own
// schedule; src must tolerate being read from a different goroutine.
type Output interface {
	Play(src io.Reader) (Line, error)
	Close() error
}

// Line is one playing stream on an Output.
type Line interface {
	// Stop halts playback and releases the line. Safe to call more
	// than once.
	Stop() error
}

// The process-wide audio context. The underlying backend allows a single
// context per process, so it is initialized once on first use and shared
// by every OtoOutput.
var (
	audioCtxOnce sync.Once
	audioCtx     *oto.Context
	audioCtxErr  error
)

// EnsureAudioReady initializes the process-wide audio context if it has
// not been initialized yet and blocks until the device is ready to play.
// It is idempotent; every play-triggering entry point may call it freely.
func EnsureAudioReady() error {
	audioCtxOnce.Do(func() {
		ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
			SampleRate:   PlaybackSampleRate,
			ChannelCount: 1,
			Format:       oto.FormatFloat32LE,
		})
		if err != nil {
			audioCtxErr = fmt.Errorf("audio context: %w", err)
			return
		}
		<-ready
		audioCtx = ctx
	})
	return audioCtxErr
}

// OtoOutput plays streams through the system audio device. The zero
// value is ready to use; the device context is acquired on first Play.
type OtoOutput struct{}

// NewOtoOutput returns an Output backed by the system audio device.
func NewOtoOutput() *OtoOutput {
	return &OtoOutput{}
}

// Play starts playback of src on the shared audio context.
func (o *OtoOutput) Play(src io.Reader) (Line, error) {
	if err := EnsureAudioReady(); err != nil {
		return nil, err
	}
	p := audioCtx.NewPlayer(src)
	p.Play()
	return &otoLine{player: p}, nil
}

// Close releases the output. The shared context itself stays alive for
// the rest of the process; only per-line players are owned here.
func (o *OtoOutput) Close() error {
	return nil
}

type otoLine struct {
	mu     sync.Mutex
	player *oto.Player
}

func (l *otoLine) Stop() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.player == nil {
		return nil
	}
	err := l.player.Close()
	l.player = nil
	return err
}

// NullOutput is a silent backend for tests and machines without audio
// devices. Nothing is played; instead each line exposes Pull so callers
// can drive the sample stream by hand and observe what would have been
// heard.
type NullOutput struct {
	mu    sync.Mutex
	lines []*NullLine
}

// NewNullOutput returns a silent Output.
func NewNullOutput() *NullOutput {
	return &NullOutput{}
}

// Play records a new line around src without starting any playback.
func (o *NullOutput) Play(src io.Reader) (Line, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	l := &NullLine{src: src}
	o.lines = append(o.lines, l)
	return l, nil
}

// Close releases the output.
func (o *NullOutput) Close() error {
	return nil
}

// LineCount returns the number of lines ever created on this output,
// stopped lines included. A channel that retunes or regains without
// restarting its voice leaves this count unchanged.
func (o *NullOutput) LineCount() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.lines)
}

// LastLine returns the most recently created line, or nil.
func (o *NullOutput) LastLine() *NullLine {
	o.mu.Lock()
	defer o.mu.Unlock()
	if len(o.lines) == 0 {
		return nil
	}
	return o.lines[len(o.lines)-1]
}

// NullLine is a line on a NullOutput.
type NullLine struct {
	mu      sync.Mutex
	src     io.Reader
	stopped bool
}

// Stop marks the line stopped.
func (l *NullLine) Stop() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stopped = true
	return nil
}

// Stopped reports whether Stop has been called.
func (l *NullLine) Stopped() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.stopped
}

// Pull reads n samples from the line's source, standing in for the
// device pulling the stream. Stopped lines return no samples.
func (l *NullLine) Pull(n int) ([]float32, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.stopped {
		return nil, nil
	}

	buf := make([]byte, n*bytesPerFloat32)
	if _, err := io.ReadFull(l.src, buf); err != nil {
		return nil, err
	}
	samples := make([]float32, n)
	for i := range samples {
		bits := binary.LittleEndian.Uint32(buf[i*bytesPerFloat32:])
		samples[i] = math.Float32frombits(bits)
	}
	return samples, nil
}
