// This file is part of tk2000sim.
//
// tk2000sim is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// tk2000sim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with tk2000sim.  If not, see <https://www.gnu.org/licenses/>.

package wavwriter

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/theypsilon-test/TK2000-MiSTer/logger"
)

const (
	bitDepth    = 16
	numChannels = 2

	// audio format value for uncompressed PCM in a WAV file
	pcmFormat = 1
)

// WavWriter implements the audio.Sink interface.
type WavWriter struct {
	filename   string
	sampleRate int
	buffer     []int
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string, sampleRate int) (*WavWriter, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("wavwriter: bad sample rate (%d)", sampleRate)
	}

	aw := &WavWriter{
		filename:   filename,
		sampleRate: sampleRate,
		buffer:     make([]int, 0, sampleRate*numChannels),
	}

	return aw, nil
}

func (aw *WavWriter) String() string {
	return fmt.Sprintf("%s (%d samples)", aw.filename, aw.Len())
}

// Len returns the number of stereo samples in the buffer.
func (aw *WavWriter) Len() int {
	return len(aw.buffer) / numChannels
}

// Sample implements the audio.Sink interface.
func (aw *WavWriter) Sample(left int16, right int16) {
	aw.buffer = append(aw.buffer, int(left), int(right))
}

// Reset discards the buffered audio.
func (aw *WavWriter) Reset() {
	aw.buffer = aw.buffer[:0]
}

// EndMixing writes the buffered audio to the file.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = fmt.Errorf("wavwriter: %w", err)
		}
	}()

	enc := wav.NewEncoder(f, aw.sampleRate, bitDepth, numChannels, pcmFormat)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: numChannels,
			SampleRate:  aw.sampleRate,
		},
		Data:           aw.buffer,
		SourceBitDepth: bitDepth,
	}

	logger.Logf(logger.Allow, "wavwriter", "writing audio to %s", aw.filename)

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}

	// closing the encoder finalises the headers of the WAV file
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}

	return nil
}
