package tonemix

import (
	"fmt"
	"sync"
)

// Snapshot is the full observable state of a mixer, emitted to the
// observer on every change. MixPlaying is always the conjunction of the
// two channel flags; it is never tracked separately.
type Snapshot struct {
	Freq1      float64
	Freq2      float64
	Volume1    float64
	Volume2    float64
	Playing1   bool
	Playing2   bool
	MixPlaying bool
}

// Mixer coordinates exactly two oscillator channels. Each channel is
// independently toggleable; the mix as a whole plays when both do.
type Mixer struct {
	mu sync.Mutex

	ch1, ch2 *OscillatorChannel

	observer func(Snapshot)
	persist  *Debouncer
}

// NewMixer creates a mixer with two idle channels on out, clamped to
// rng, at the default parameter set (440 Hz / 880 Hz, half volume, sine).
func NewMixer(out Output, rng Range) (*Mixer, error) {
	ch1, err := NewChannel(out, rng)
	if err != nil {
		return nil, fmt.Errorf("channel 1: %w", err)
	}
	ch2, err := NewChannel(out, rng)
	if err != nil {
		return nil, fmt.Errorf("channel 2: %w", err)
	}
	ch1.SetFrequency(DefaultFrequency1)
	ch2.SetFrequency(DefaultFrequency2)
	return &Mixer{ch1: ch1, ch2: ch2}, nil
}

// channel returns the n-th channel (1 or 2).
func (m *Mixer) channel(n int) (*OscillatorChannel, error) {
	switch n {
	case 1:
		return m.ch1, nil
	case 2:
		return m.ch2, nil
	default:
		return nil, fmt.Errorf("%w: channel %d (want 1 or 2)", ErrInvalidConfig, n)
	}
}

// SetObserver registers the single external observer. It receives a full
// snapshot after every state change. A nil observer disables emission.
func (m *Mixer) SetObserver(fn func(Snapshot)) {
	m.mu.Lock()
	m.observer = fn
	m.mu.Unlock()
}

// SetShareSink routes the encoded share string of the current parameter
// set to sink after every change, coalesced so that only the last value
// of a rapid burst is written once the quiet period has passed.
func (m *Mixer) SetShareSink(sink func(string)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.persist != nil {
		m.persist.Close()
		m.persist = nil
	}
	if sink != nil {
		m.persist = NewDebouncer(DefaultQuietPeriod, sink)
	}
}

// notify emits a snapshot and schedules share persistence. Callers must
// not hold m.mu.
func (m *Mixer) notify() {
	m.mu.Lock()
	observer := m.observer
	persist := m.persist
	m.mu.Unlock()

	if observer != nil {
		observer(m.State())
	}
	if persist != nil {
		persist.Set(EncodeShare(m.Params()))
	}
}

// State returns the current snapshot.
func (m *Mixer) State() Snapshot {
	p1 := m.ch1.IsPlaying()
	p2 := m.ch2.IsPlaying()
	return Snapshot{
		Freq1:      m.ch1.Frequency(),
		Freq2:      m.ch2.Frequency(),
		Volume1:    m.ch1.Volume(),
		Volume2:    m.ch2.Volume(),
		Playing1:   p1,
		Playing2:   p2,
		MixPlaying: p1 && p2,
	}
}

// Params returns the six mix parameters as an export parameter set.
func (m *Mixer) Params() ExportParams {
	return ExportParams{
		Freq1:     m.ch1.Frequency(),
		Freq2:     m.ch2.Frequency(),
		Volume1:   m.ch1.Volume(),
		Volume2:   m.ch2.Volume(),
		Waveform1: m.ch1.Waveform(),
		Waveform2: m.ch2.Waveform(),
	}
}

// SetFrequency sets channel n's frequency, retuning it live if sounding.
func (m *Mixer) SetFrequency(n int, freq float64) error {
	ch, err := m.channel(n)
	if err != nil {
		return err
	}
	ch.SetFrequency(freq)
	m.notify()
	return nil
}

// SetVolume sets channel n's gain.
func (m *Mixer) SetVolume(n int, level float64) error {
	ch, err := m.channel(n)
	if err != nil {
		return err
	}
	ch.SetVolume(level)
	m.notify()
	return nil
}

// SetWaveform sets channel n's wave shape for its next start.
func (m *Mixer) SetWaveform(n int, w Waveform) error {
	ch, err := m.channel(n)
	if err != nil {
		return err
	}
	ch.SetWaveform(w)
	m.notify()
	return nil
}

// SetNote sets channel n's frequency from a typed note name. Invalid
// note text leaves the channel untouched and returns ErrInvalidNote so
// the caller can revert its display to the canonical name.
func (m *Mixer) SetNote(n int, text string) error {
	ch, err := m.channel(n)
	if err != nil {
		return err
	}
	freq, err := ParseNote(text, ch.FrequencyRange())
	if err != nil {
		return err
	}
	ch.SetFrequency(freq)
	m.notify()
	return nil
}

// Toggle starts channel n if it is idle and stops it if it is sounding.
func (m *Mixer) Toggle(n int) error {
	ch, err := m.channel(n)
	if err != nil {
		return err
	}
	if ch.IsPlaying() {
		err = ch.Stop()
	} else {
		err = ch.Start()
	}
	if err != nil {
		return err
	}
	m.notify()
	return nil
}

// ToggleMix starts every idle channel unless both are already sounding,
// in which case it stops both. Starting is idempotent-additive: a channel
// that is already sounding is left alone, not restarted.
func (m *Mixer) ToggleMix() error {
	if m.ch1.IsPlaying() && m.ch2.IsPlaying() {
		err1 := m.ch1.Stop()
		err2 := m.ch2.Stop()
		m.notify()
		if err1 != nil {
			return err1
		}
		return err2
	}

	startedCh1 := !m.ch1.IsPlaying()
	if err := m.ch1.Start(); err != nil {
		return err
	}
	if err := m.ch2.Start(); err != nil {
		// Leave no half-started mix behind, but keep a channel that was
		// already sounding before the toggle.
		if startedCh1 {
			_ = m.ch1.Stop()
		}
		return err
	}
	m.notify()
	return nil
}

// StopAll unconditionally stops both channels.
func (m *Mixer) StopAll() error {
	err1 := m.ch1.Stop()
	err2 := m.ch2.Stop()
	m.notify()
	if err1 != nil {
		return err1
	}
	return err2
}

// MixPlaying reports whether both channels are sounding.
func (m *Mixer) MixPlaying() bool {
	return m.ch1.IsPlaying() && m.ch2.IsPlaying()
}

// ApplyPreset overwrites both channels' frequency, volume and waveform
// with the preset's values in one step and emits a single snapshot.
// Preset values are pre-validated constants, so there is no partial
// application path.
func (m *Mixer) ApplyPreset(p Preset) {
	m.ch1.SetFrequency(p.Freq1)
	m.ch2.SetFrequency(p.Freq2)
	m.ch1.SetVolume(p.Volume1)
	m.ch2.SetVolume(p.Volume2)
	m.ch1.SetWaveform(p.Waveform1)
	m.ch2.SetWaveform(p.Waveform2)
	m.notify()
}

// ApplyShare decodes a share string and applies the resulting parameter
// set. Invalid or missing fields keep their defaults; decoding never
// fails.
func (m *Mixer) ApplyShare(share string) {
	p := DecodeShare(share, m.ch1.FrequencyRange())
	m.ch1.SetFrequency(p.Freq1)
	m.ch2.SetFrequency(p.Freq2)
	m.ch1.SetVolume(p.Volume1)
	m.ch2.SetVolume(p.Volume2)
	m.ch1.SetWaveform(p.Waveform1)
	m.ch2.SetWaveform(p.Waveform2)
	m.notify()
}

// Close stops both channels and releases the mixer.
func (m *Mixer) Close() error {
	m.mu.Lock()
	if m.persist != nil {
		m.persist.Close()
		m.persist = nil
	}
	m.mu.Unlock()

	err1 := m.ch1.Close()
	err2 := m.ch2.Close()
	if err1 != nil {
		return err1
	}
	return err2
}
