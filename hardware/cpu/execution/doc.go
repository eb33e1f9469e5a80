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

// Package execution holds the per-cycle observations of the CPU bus and the
// capture of the bus cycles that make up a single instruction.
//
// The CPU is not emulated. Instead its behaviour is reconstructed from what
// can be seen on the bus: the valid program address (VPA) and valid data
// address (VDA) signals, the cycle state, the program counter, the data on
// the bus and the 24-bit address. A Capture accumulates the program cycles of
// an instruction and is handed to the disassembly package once the next opcode
// fetch is observed.
package execution
