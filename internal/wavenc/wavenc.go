// Package wavenc serializes PCM sample buffers into canonical WAV files.
//
// Only the layout this project exports is supported: a 44-byte header
// (RIFF chunk, 16-byte PCM fmt subchunk, data subchunk) followed by
// frame-interleaved little-endian signed 16-bit samples. Because the
// frame count is known up front, the header is written with final sizes
// and no seeking is required; the encoder works against any io.Writer.
package wavenc

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// WAV container constants.
const (
	// HeaderSize is the total header size in bytes.
	HeaderSize = 44

	// riffSizeBase is what the RIFF chunk size field counts besides the
	// data payload (everything after the 8-byte RIFF chunk preamble).
	riffSizeBase = 36

	// fmtSubchunkSize is the fmt subchunk size for plain PCM.
	fmtSubchunkSize = 16

	// formatPCM is the fmt tag for linear PCM.
	formatPCM = 1

	// BitsPerSample is the fixed sample depth.
	BitsPerSample = 16

	bytesPerSample = BitsPerSample / 8
	writerBufSize  = 64 * 1024

	// maxInt16 is the quantization scale for 16-bit samples.
	maxInt16 = 32767.0
)

// EncodeInterleaved writes a complete WAV file to w: header first, then
// the given frame-interleaved samples quantized to int16. Each sample is
// clamped to [-1, 1] and rounded, not truncated, so quantization error
// is symmetric. len(samples) must be a whole number of frames.
func EncodeInterleaved(w io.Writer, sampleRate, channels int, samples []float64) error {
	if sampleRate <= 0 || channels < 1 {
		return fmt.Errorf("wavenc: bad format %d Hz / %d channels", sampleRate, channels)
	}
	if len(samples)%channels != 0 {
		return fmt.Errorf("wavenc: %d samples is not a whole number of %d-channel frames", len(samples), channels)
	}

	bw := bufio.NewWriterSize(w, writerBufSize)

	dataSize := len(samples) * bytesPerSample
	if err := writeHeader(bw, sampleRate, channels, dataSize); err != nil {
		return err
	}

	var sampleBytes [bytesPerSample]byte
	for _, s := range samples {
		binary.LittleEndian.PutUint16(sampleBytes[:], uint16(quantize(s)))
		if _, err := bw.Write(sampleBytes[:]); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// writeHeader emits the 44-byte canonical header with final sizes.
func writeHeader(w io.Writer, sampleRate, channels, dataSize int) error {
	blockAlign := channels * bytesPerSample
	byteRate := sampleRate * blockAlign

	header := make([]byte, HeaderSize)

	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], uint32(riffSizeBase+dataSize))
	copy(header[8:12], "WAVE")

	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], fmtSubchunkSize)
	binary.LittleEndian.PutUint16(header[20:22], formatPCM)
	binary.LittleEndian.PutUint16(header[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(byteRate))
	binary.LittleEndian.PutUint16(header[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(header[34:36], BitsPerSample)

	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], uint32(dataSize))

	_, err := w.Write(header)
	return err
}

// quantize clamps s to [-1, 1] and rounds to a signed 16-bit value.
func quantize(s float64) int16 {
	if s > 1 {
		s = 1
	} else if s < -1 {
		s = -1
	}
	return int16(math.Round(s * maxInt16))
}
