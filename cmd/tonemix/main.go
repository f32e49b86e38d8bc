// Command tonemix plays and exports dual-oscillator tone mixes.
//
// Usage:
//
//	tonemix -f1 440 -f2 660 -export mix.wav
//	tonemix -note1 A4 -note2 E5 -play -dur 5
//	tonemix -preset beat -play
//	tonemix -share "f1=440.0&f2=880.0&v1=50&v2=50&w1=sine&w2=sine" -export ""
//	tonemix -list-presets
//
// Export writes a 10-second stereo 16-bit 44.1 kHz WAV file with one
// oscillator per channel. With -export "" the output file name is
// derived from the two frequencies.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	tonemix "github.com/tphakala/go-tone-mixer"
)

// CLI defaults.
const (
	defaultVolumePercent = 50
	defaultPlaySeconds   = 3.0
	percentScale         = 100
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	f1 := flag.Float64("f1", tonemix.DefaultFrequency1, "Oscillator 1 frequency in Hz")
	f2 := flag.Float64("f2", tonemix.DefaultFrequency2, "Oscillator 2 frequency in Hz")
	note1 := flag.String("note1", "", "Oscillator 1 note name (e.g. A4, c#3, Bb2); overrides -f1")
	note2 := flag.String("note2", "", "Oscillator 2 note name; overrides -f2")
	v1 := flag.Int("v1", defaultVolumePercent, "Oscillator 1 volume in percent (0-100)")
	v2 := flag.Int("v2", defaultVolumePercent, "Oscillator 2 volume in percent (0-100)")
	w1 := flag.String("w1", "sine", "Oscillator 1 waveform: sine, square, triangle, sawtooth")
	w2 := flag.String("w2", "sine", "Oscillator 2 waveform")
	preset := flag.String("preset", "", "Apply a named preset (see -list-presets)")
	share := flag.String("share", "", "Apply a share string (overrides individual flags)")
	narrow := flag.Bool("narrow", false, "Use the narrow 20-2000 Hz range instead of 20-20000 Hz")
	listPresets := flag.Bool("list-presets", false, "List available presets and exit")
	play := flag.Bool("play", false, "Play the mix on the system audio device")
	dur := flag.Float64("dur", defaultPlaySeconds, "Play duration in seconds")
	export := flag.String("export", "", "Export the mix to a WAV file (empty string with -export derives the name)")
	copyShare := flag.Bool("copy", false, "Copy the share string for the mix to the clipboard")
	printShare := flag.Bool("print-share", false, "Print the share string for the mix")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	exportSet := flagWasSet("export")

	if *listPresets {
		for _, p := range tonemix.Presets() {
			fmt.Printf("%-12s %s (%s + %s)\n", p.Name, p.Description,
				tonemix.FormatFrequency(p.Freq1), tonemix.FormatFrequency(p.Freq2))
		}
		return nil
	}

	rng := tonemix.FullRange
	if *narrow {
		rng = tonemix.NarrowRange
	}

	params, err := resolveParams(rng, paramFlags{
		f1: *f1, f2: *f2,
		note1: *note1, note2: *note2,
		v1: *v1, v2: *v2,
		w1: *w1, w2: *w2,
		preset: *preset,
		share:  *share,
	})
	if err != nil {
		return err
	}

	if *verbose {
		log.Printf("Oscillator 1: %s %s (%s%+d cents)", params.Waveform1,
			tonemix.FormatFrequency(params.Freq1), tonemix.NoteName(params.Freq1),
			tonemix.CentsOffset(params.Freq1))
		log.Printf("Oscillator 2: %s %s (%s%+d cents)", params.Waveform2,
			tonemix.FormatFrequency(params.Freq2), tonemix.NoteName(params.Freq2),
			tonemix.CentsOffset(params.Freq2))
		log.Printf("Beat frequency: %.1f Hz", tonemix.BeatFrequency(params.Freq1, params.Freq2))
	}

	if *printShare {
		fmt.Println(tonemix.EncodeShare(params))
	}

	if *copyShare {
		// Clipboard failures are reported but never abort the run.
		if err := copyToClipboard(tonemix.EncodeShare(params)); err != nil {
			log.Printf("clipboard: %v", err)
		} else if *verbose {
			log.Printf("share string copied to clipboard")
		}
	}

	if exportSet {
		path := *export
		if path == "" {
			path = tonemix.ExportFilename(params)
		}
		var e tonemix.Exporter
		start := time.Now()
		if err := e.ExportFile(path, params); err != nil {
			return err
		}
		fmt.Printf("Exported %s (%.2fs)\n", path, time.Since(start).Seconds())
	}

	if *play {
		if err := playMix(params, rng, time.Duration(*dur*float64(time.Second)), *verbose); err != nil {
			return err
		}
	}

	if !*play && !exportSet && !*printShare && !*copyShare {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\nOptions:\n", os.Args[0])
		flag.PrintDefaults()
		return fmt.Errorf("nothing to do: pass -play, -export, -print-share or -copy")
	}

	return nil
}

// flagWasSet reports whether a flag was given explicitly on the command
// line, so that -export "" can mean "export with a derived name".
func flagWasSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

// playMix plays the parameter set on the system audio device for dur.
func playMix(params tonemix.ExportParams, rng tonemix.Range, dur time.Duration, verbose bool) error {
	m, err := tonemix.NewMixer(tonemix.NewOtoOutput(), rng)
	if err != nil {
		return err
	}
	defer func() { _ = m.Close() }()

	applyParams(m, params)

	if verbose {
		m.SetObserver(func(s tonemix.Snapshot) {
			log.Printf("state: f1=%.1f f2=%.1f v1=%.0f%% v2=%.0f%% mix=%v",
				s.Freq1, s.Freq2, s.Volume1*percentScale, s.Volume2*percentScale, s.MixPlaying)
		})
	}

	if err := m.ToggleMix(); err != nil {
		return fmt.Errorf("start playback: %w", err)
	}
	time.Sleep(dur)
	return m.StopAll()
}

// applyParams pushes a parameter set onto a mixer.
func applyParams(m *tonemix.Mixer, p tonemix.ExportParams) {
	_ = m.SetFrequency(1, p.Freq1)
	_ = m.SetFrequency(2, p.Freq2)
	_ = m.SetVolume(1, p.Volume1)
	_ = m.SetVolume(2, p.Volume2)
	_ = m.SetWaveform(1, p.Waveform1)
	_ = m.SetWaveform(2, p.Waveform2)
}

// paramFlags carries the raw flag values that determine the mix.
type paramFlags struct {
	f1, f2        float64
	note1, note2  string
	v1, v2        int
	w1, w2        string
	preset, share string
}

// resolveParams turns flag values into a parameter set. Precedence:
// -share wins over -preset, which wins over individual flags.
func resolveParams(rng tonemix.Range, f paramFlags) (tonemix.ExportParams, error) {
	if f.share != "" {
		return tonemix.DecodeShare(f.share, rng), nil
	}

	if f.preset != "" {
		p, ok := tonemix.LookupPreset(f.preset)
		if !ok {
			return tonemix.ExportParams{}, fmt.Errorf("unknown preset %q (see -list-presets)", f.preset)
		}
		return p.Params(), nil
	}

	params := tonemix.DefaultParams()
	params.Freq1 = rng.Clamp(f.f1)
	params.Freq2 = rng.Clamp(f.f2)

	if f.note1 != "" {
		freq, err := tonemix.ParseNote(f.note1, rng)
		if err != nil {
			return tonemix.ExportParams{}, err
		}
		params.Freq1 = freq
	}
	if f.note2 != "" {
		freq, err := tonemix.ParseNote(f.note2, rng)
		if err != nil {
			return tonemix.ExportParams{}, err
		}
		params.Freq2 = freq
	}

	var err error
	if params.Volume1, err = percentToVolume(f.v1); err != nil {
		return tonemix.ExportParams{}, fmt.Errorf("-v1: %w", err)
	}
	if params.Volume2, err = percentToVolume(f.v2); err != nil {
		return tonemix.ExportParams{}, fmt.Errorf("-v2: %w", err)
	}

	if params.Waveform1, err = parseWaveformFlag(f.w1); err != nil {
		return tonemix.ExportParams{}, fmt.Errorf("-w1: %w", err)
	}
	if params.Waveform2, err = parseWaveformFlag(f.w2); err != nil {
		return tonemix.ExportParams{}, fmt.Errorf("-w2: %w", err)
	}

	return params, nil
}

// percentToVolume converts an integer percent flag to linear gain.
func percentToVolume(p int) (float64, error) {
	if p < 0 || p > percentScale {
		return 0, fmt.Errorf("volume %d%% out of range 0-100", p)
	}
	return float64(p) / percentScale, nil
}

// parseWaveformFlag maps a waveform flag value, case-insensitively.
func parseWaveformFlag(s string) (tonemix.Waveform, error) {
	w, ok := tonemix.ParseWaveform(strings.ToLower(strings.TrimSpace(s)))
	if !ok {
		return w, fmt.Errorf("unknown waveform %q (want sine, square, triangle or sawtooth)", s)
	}
	return w, nil
}
