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

package digest

import (
	"crypto/sha1"
	"fmt"
)

// the number of stereo samples in each block of the digest
const audioBlockLength = 1024

// each block starts with the digest of the previous block
const audioBufferStart = sha1.Size

const audioBufferLength = audioBufferStart + audioBlockLength*4

// Audio computes a digest of the audio samples. The digest is updated every
// time a block of samples is complete, or when Flush() is called.
type Audio struct {
	digest   [sha1.Size]byte
	buffer   []uint8
	bufferCt int
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	return &Audio{
		buffer:   make([]uint8, audioBufferLength),
		bufferCt: audioBufferStart,
	}
}

// Hash implements the Digest interface.
func (dig *Audio) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface. Pending samples are discarded.
func (dig *Audio) ResetDigest() {
	clear(dig.digest[:])
	dig.bufferCt = audioBufferStart
}

// Sample implements the audio.Sink interface.
func (dig *Audio) Sample(left int16, right int16) {
	dig.buffer[dig.bufferCt] = uint8(left)
	dig.buffer[dig.bufferCt+1] = uint8(left >> 8)
	dig.buffer[dig.bufferCt+2] = uint8(right)
	dig.buffer[dig.bufferCt+3] = uint8(right >> 8)
	dig.bufferCt += 4

	if dig.bufferCt >= audioBufferLength {
		dig.Flush()
	}
}

// Flush adds any pending samples to the digest.
func (dig *Audio) Flush() {
	if dig.bufferCt == audioBufferStart {
		return
	}
	dig.digest = sha1.Sum(dig.buffer[:dig.bufferCt])
	copy(dig.buffer, dig.digest[:])
	dig.bufferCt = audioBufferStart
}
