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

// Package otoaudio plays the decimated audio of the simulation through the
// host's audio device.
//
// The Stream type is the audio.Sink that the simulation writes samples to.
// The Player reads from the Stream from the audio device's own goroutine.
//
// Building with the headless tag removes the dependency on the host's audio
// libraries. In that case NewPlayer() always returns an error.
package otoaudio
