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

// Package replay is a hardware model that plays back a recording of the
// model's output pins. The recording is a CSV file with a header row naming
// the columns. Each subsequent row is the state of the pins for one cycle of
// the primary clock. Columns can be in any order and missing columns are
// zero. Lines beginning with # are comments.
//
// The recognised columns are:
//
//	enable clk vpa vda mcycle pc di addr dbr a x y
//	audio_l audio_r
//	ce_pixel r g b hb vb hs vs
//
// Numbers can be decimal or, with the 0x prefix, hexadecimal. Boolean columns
// accept 0, 1, true and false.
//
// A new row is presented on every rising edge of the clock input while the
// reset input is not asserted. The model finishes once the last row has been
// presented and the clock rises again.
package replay
