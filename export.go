package tonemix

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"github.com/tphakala/go-tone-mixer/internal/render"
	"github.com/tphakala/go-tone-mixer/internal/wavenc"
)

// ExportParams is the full six-value parameter set of a mix: two
// frequencies in Hz, two linear volumes in [0, 1], two wave shapes.
type ExportParams struct {
	Freq1, Freq2     float64
	Volume1, Volume2 float64
	Waveform1        Waveform
	Waveform2        Waveform
}

// DefaultParams returns the default parameter set: 440 Hz and 880 Hz
// sine tones at half volume.
func DefaultParams() ExportParams {
	return ExportParams{
		Freq1:     DefaultFrequency1,
		Freq2:     DefaultFrequency2,
		Volume1:   DefaultVolume,
		Volume2:   DefaultVolume,
		Waveform1: WaveSine,
		Waveform2: WaveSine,
	}
}

// ExportFilename derives the file name for an exported mix, encoding
// both frequencies to one decimal place.
func ExportFilename(p ExportParams) string {
	return fmt.Sprintf("tone-mix-%.1fHz-%.1fHz.wav", p.Freq1, p.Freq2)
}

// Exporter renders mixes to 10-second stereo 16-bit 44.1 kHz WAV files.
// An exporter rejects overlapping exports: a second request while one is
// in flight returns ErrExportInFlight instead of double-allocating the
// render buffers.
type Exporter struct {
	inFlight atomic.Bool
}

// WriteWAV renders the mix described by p and writes the complete WAV
// file to w. Channel A carries oscillator 1, channel B oscillator 2.
// Any rendering failure, including a panic in the render path, surfaces
// as a single error wrapping ErrExportFailed.
func (e *Exporter) WriteWAV(w io.Writer, p ExportParams) error {
	if !e.inFlight.CompareAndSwap(false, true) {
		return ErrExportInFlight
	}
	defer e.inFlight.Store(false)
	return e.writeWAV(w, p)
}

// writeWAV renders and encodes with the in-flight flag already held.
func (e *Exporter) writeWAV(w io.Writer, p ExportParams) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrExportFailed, r)
		}
	}()

	interleaved, err := render.Interleaved(render.Params{
		SampleRate: ExportSampleRate,
		Duration:   ExportDuration,
		Freq1:      p.Freq1,
		Freq2:      p.Freq2,
		Volume1:    p.Volume1,
		Volume2:    p.Volume2,
		Wave1:      p.Waveform1,
		Wave2:      p.Waveform2,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrExportFailed, err)
	}

	if err := wavenc.EncodeInterleaved(w, ExportSampleRate, exportChannels, interleaved); err != nil {
		return fmt.Errorf("%w: %v", ErrExportFailed, err)
	}
	return nil
}

// ExportFile renders the mix to the file at path. The file is written to
// a temporary sibling first and renamed into place on success, so a
// failed export never clobbers a previous successful one. A rejected
// call leaves the filesystem untouched: the in-flight check runs before
// the temporary file is created, so a concurrent request cannot disturb
// the export already in progress.
func (e *Exporter) ExportFile(path string, p ExportParams) error {
	if !e.inFlight.CompareAndSwap(false, true) {
		return ErrExportInFlight
	}
	defer e.inFlight.Store(false)

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrExportFailed, err)
	}

	if err := e.writeWAV(f, p); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: %v", ErrExportFailed, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: %v", ErrExportFailed, err)
	}
	return nil
}
