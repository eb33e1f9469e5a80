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

// Package video assembles the pixel outputs of the model into frames.
//
// The Assembler implements the hardware.VideoSink interface. Pixels are
// placed on the frame while neither blanking signal is asserted. The start of
// horizontal blanking moves to the next line and the start of vertical
// blanking completes the frame.
//
// Completed frames can be saved as PNG files with Screenshot() or encoded to a
// video file with the Recorder, which requires the ffmpeg program to be
// installed.
package video
