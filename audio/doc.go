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

// Package audio converts the audio outputs of the model, which are presented
// on every rising edge of the primary clock, into a stream of samples at a
// conventional sample rate.
//
// The Decimator type implements the hardware.AudioSink interface and forwards
// the samples it produces to any number of Sink implementations. The
// wavwriter, otoaudio and digest packages all provide sinks.
package audio
