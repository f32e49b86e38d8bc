package tonemix

import "fmt"

// NewDefaultMixer creates a mixer on the system audio device with the
// full audible range and the default parameter set.
func NewDefaultMixer() (*Mixer, error) {
	return NewMixer(NewOtoOutput(), FullRange)
}

// NewMixerFromPreset creates a mixer and applies the named preset.
func NewMixerFromPreset(out Output, rng Range, name string) (*Mixer, error) {
	preset, ok := LookupPreset(name)
	if !ok {
		return nil, fmt.Errorf("%w: unknown preset %q", ErrInvalidConfig, name)
	}
	m, err := NewMixer(out, rng)
	if err != nil {
		return nil, err
	}
	m.ApplyPreset(preset)
	return m, nil
}

// NewMixerFromShare creates a mixer and applies a decoded share string.
// Invalid share fields fall back to defaults; the constructor only fails
// if the mixer itself cannot be built.
func NewMixerFromShare(out Output, rng Range, share string) (*Mixer, error) {
	m, err := NewMixer(out, rng)
	if err != nil {
		return nil, err
	}
	m.ApplyShare(share)
	return m, nil
}
