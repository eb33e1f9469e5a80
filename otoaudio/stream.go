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

package otoaudio

import (
	"encoding/binary"
	"sync"
)

// the number of bytes in one stereo sample
const frameSize = 4

// Stream is a ring of signed 16bit stereo samples. It implements both the
// audio.Sink and io.Reader interfaces and is safe to use from different
// goroutines.
//
// If the ring is full when a sample arrives then the oldest sample is
// discarded. If the ring is empty when the audio device reads from the Stream
// then silence is played.
type Stream struct {
	crit sync.Mutex

	ring  [][2]int16
	read  int
	write int
	used  int

	// number of samples discarded because the ring was full and the number
	// of samples of silence inserted because the ring was empty
	overflow  int
	underflow int
}

// NewStream is the preferred method of initialisation for the Stream type.
// The capacity is the number of stereo samples held by the ring.
func NewStream(capacity int) *Stream {
	return &Stream{
		ring: make([][2]int16, max(capacity, 1)),
	}
}

// Sample implements the audio.Sink interface.
func (s *Stream) Sample(left int16, right int16) {
	s.crit.Lock()
	defer s.crit.Unlock()

	if s.used == len(s.ring) {
		s.read = (s.read + 1) % len(s.ring)
		s.used--
		s.overflow++
	}

	s.ring[s.write] = [2]int16{left, right}
	s.write = (s.write + 1) % len(s.ring)
	s.used++
}

// Read implements the io.Reader interface. The samples are written to p as
// little-endian signed 16bit values, left channel first. Read never fails.
func (s *Stream) Read(p []byte) (int, error) {
	s.crit.Lock()
	defer s.crit.Unlock()

	n := len(p) / frameSize
	for i := range n {
		var v [2]int16
		if s.used > 0 {
			v = s.ring[s.read]
			s.read = (s.read + 1) % len(s.ring)
			s.used--
		} else {
			s.underflow++
		}
		binary.LittleEndian.PutUint16(p[i*frameSize:], uint16(v[0]))
		binary.LittleEndian.PutUint16(p[i*frameSize+2:], uint16(v[1]))
	}

	return n * frameSize, nil
}

// Buffered returns the number of samples waiting to be played.
func (s *Stream) Buffered() int {
	s.crit.Lock()
	defer s.crit.Unlock()
	return s.used
}

// Stats returns the number of samples lost to overflow and the number of
// samples of silence played because of underflow.
func (s *Stream) Stats() (overflow int, underflow int) {
	s.crit.Lock()
	defer s.crit.Unlock()
	return s.overflow, s.underflow
}
