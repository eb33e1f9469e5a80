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

// Package disassembly turns the captured bus cycles of a single instruction
// into a line of assembly language.
//
// Decoding is a pure function of the capture and the static instruction
// table. The opcode is the data byte of the first slot and the operand bytes
// are the data bytes of the following slots, in little-endian order. How the
// operand is presented depends on the addressing mode of the opcode.
//
// Some operand forms can not be known from the opcode alone. The width of an
// immediate operand depends on the state of the CPU and is decided from the
// number of cycles in the capture. Similarly, the high byte of a long address
// comes from the data bank register when the capture is too short to contain
// the third operand byte.
package disassembly
