// Package tonemix provides a dual-oscillator tone generator with
// musical-note awareness, logarithmic frequency control, and offline
// WAV export.
//
// The package centers on a small cluster of numerically precise audio
// algorithms: frequency/note conversion with cents deviation, the
// logarithmic slider mapping used by frequency controls, live oscillator
// parameter mutation while a tone is sounding, and deterministic offline
// rendering of the mix to a 16-bit PCM WAV container.
//
// # Features
//
//   - Two independent oscillator channels with live retune and regain
//   - Equal-tempered pitch math referenced to A4 = 440 Hz
//   - Note name parsing ("A4", "c#3", "Bb2") with range clamping
//   - Mix coordination: independent toggles plus an all-or-nothing mix
//   - Deterministic 10-second stereo WAV export, one tone per channel
//   - Named presets and a URL-query share codec for the parameter set
//   - Live playback through github.com/ebitengine/oto/v3, with a silent
//     null backend for tests and headless machines
//
// # Quick Start
//
// Play the default 440/880 Hz mix and export it:
//
//	m, err := tonemix.NewDefaultMixer()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer m.Close()
//
//	if err := m.ToggleMix(); err != nil {
//	    log.Fatal(err)
//	}
//
//	var e tonemix.Exporter
//	params := m.Params()
//	if err := e.ExportFile(tonemix.ExportFilename(params), params); err != nil {
//	    log.Fatal(err)
//	}
//
// # Pitch Math
//
// [NoteName], [NearestNoteFrequency] and [CentsOffset] relate arbitrary
// frequencies to the equal-tempered scale. [Range.Position] and
// [Range.Frequency] implement the logarithmic slider mapping, with the
// round-trip exact to floating-point tolerance across the range.
//
// # State Observation
//
// A mixer emits a full [Snapshot] of its observable state to a single
// observer on every change; visualization front ends consume that
// snapshot rather than polling individual fields. Share persistence is
// debounced: after a burst of control changes, only the final parameter
// set is written once a quiet period has passed.
//
// # Concurrency
//
// Control operations are designed for a single event-driven caller. The
// live audio backend pulls samples on its own goroutine; retune and
// regain reach it through lock-free parameter updates, never by
// restarting a voice. Offline export refuses to run concurrently with
// itself and fails atomically.
package tonemix
