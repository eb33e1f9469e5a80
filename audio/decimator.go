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

package audio

import (
	"fmt"
)

// Sink receives the decimated audio samples.
type Sink interface {
	Sample(left int16, right int16)
}

// Decimator picks samples from the audio outputs of the model at the sample
// rate. No filtering is performed.
type Decimator struct {
	clockFreq  int
	sampleRate int

	// accumulates the sample rate on every clock. a sample is taken when the
	// accumulator reaches the clock frequency
	acc int

	sinks []Sink

	// number of samples taken
	samples int

	// the most recent samples, for display in the debugger
	recent    [RecentLength][2]int16
	recentIdx int
}

// RecentLength is the number of recent samples kept by the decimator.
const RecentLength = 1024

// NewDecimator is the preferred method of initialisation for the Decimator
// type. The clock frequency is the frequency at which Clock() is called.
func NewDecimator(clockFreq int, sampleRate int) (*Decimator, error) {
	if clockFreq <= 0 {
		return nil, fmt.Errorf("audio: clock frequency must be positive (%d)", clockFreq)
	}
	if sampleRate <= 0 || sampleRate > clockFreq {
		return nil, fmt.Errorf("audio: sample rate must be between 1 and the clock frequency (%d)", sampleRate)
	}
	return &Decimator{
		clockFreq:  clockFreq,
		sampleRate: sampleRate,
	}, nil
}

func (d *Decimator) String() string {
	return fmt.Sprintf("%dHz -> %dHz (%d samples)", d.clockFreq, d.sampleRate, d.samples)
}

// SampleRate returns the rate of the output samples.
func (d *Decimator) SampleRate() int {
	return d.sampleRate
}

// AddSink adds a destination for the samples.
func (d *Decimator) AddSink(s Sink) {
	d.sinks = append(d.sinks, s)
}

// Samples returns the number of samples taken.
func (d *Decimator) Samples() int {
	return d.samples
}

// Clock implements the hardware.AudioSink interface. The values of the model's
// audio outputs are two's complement.
func (d *Decimator) Clock(left uint16, right uint16) {
	d.acc += d.sampleRate
	if d.acc < d.clockFreq {
		return
	}
	d.acc -= d.clockFreq

	l := int16(left)
	r := int16(right)

	d.recent[d.recentIdx] = [2]int16{l, r}
	d.recentIdx = (d.recentIdx + 1) % RecentLength
	d.samples++

	for _, s := range d.sinks {
		s.Sample(l, r)
	}
}

// Recent returns up to the n most recent samples, oldest first.
func (d *Decimator) Recent(n int) [][2]int16 {
	n = min(n, d.samples, RecentLength)
	r := make([][2]int16, n)
	for i := range n {
		r[i] = d.recent[(d.recentIdx-n+i+RecentLength)%RecentLength]
	}
	return r
}
