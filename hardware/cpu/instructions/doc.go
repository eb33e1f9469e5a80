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

// Package instructions defines the instruction set of the 65C816 class CPU as
// seen by the disassembler. Each of the 256 opcode values has an entry in the
// Definitions table, indexed by opcode. Opcodes without a mnemonic are not
// defined and are reported as unknown by the disassembler.
//
// The table is a static array and is never altered at runtime.
package instructions
