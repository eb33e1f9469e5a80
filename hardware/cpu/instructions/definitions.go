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

package instructions

import "fmt"

// Definition defines each instruction in the instruction set; one per opcode.
type Definition struct {
	OpCode   uint8
	Mnemonic string

	// number of bytes in the instruction including the opcode. for immediate
	// mode instructions this is the eight bit form
	Bytes int

	AddressingMode AddressingMode
}

// Defined returns false if the opcode has no entry in the table.
func (defn Definition) Defined() bool {
	return defn.Mnemonic != ""
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	if !defn.Defined() {
		return fmt.Sprintf("%02x undefined instruction", defn.OpCode)
	}
	return fmt.Sprintf("%02x %s +%dbytes [%s]", defn.OpCode, defn.Mnemonic, defn.Bytes, defn.AddressingMode)
}

// Lookup returns the Definition for the opcode. The OpCode field of the
// returned Definition is always set, even for undefined opcodes.
func Lookup(opcode uint8) Definition {
	defn := Definitions[opcode]
	defn.OpCode = opcode
	return defn
}

// Definitions is the table of instructions indexed by opcode.
var Definitions = [256]Definition{
	0x00: {OpCode: 0x00, Mnemonic: "brk", Bytes: 2, AddressingMode: Implied},
	0x01: {OpCode: 0x01, Mnemonic: "ora", Bytes: 2, AddressingMode: IndirectX},
	0x03: {OpCode: 0x03, Mnemonic: "ora", Bytes: 2, AddressingMode: Stack},
	0x05: {OpCode: 0x05, Mnemonic: "ora", Bytes: 2, AddressingMode: ZeroPage},
	0x06: {OpCode: 0x06, Mnemonic: "asl", Bytes: 2, AddressingMode: ZeroPage},
	0x07: {OpCode: 0x07, Mnemonic: "ora", Bytes: 2, AddressingMode: Direct24},
	0x08: {OpCode: 0x08, Mnemonic: "php", Bytes: 1, AddressingMode: Implied},
	0x09: {OpCode: 0x09, Mnemonic: "ora", Bytes: 2, AddressingMode: Immediate},
	0x0A: {OpCode: 0x0A, Mnemonic: "asl", Bytes: 1, AddressingMode: Accumulator},
	0x0B: {OpCode: 0x0B, Mnemonic: "phd", Bytes: 1, AddressingMode: Implied},
	0x0C: {OpCode: 0x0C, Mnemonic: "tsb", Bytes: 3, AddressingMode: Absolute},
	0x0D: {OpCode: 0x0D, Mnemonic: "ora", Bytes: 3, AddressingMode: Absolute},
	0x0E: {OpCode: 0x0E, Mnemonic: "asl", Bytes: 3, AddressingMode: Absolute},
	0x0F: {OpCode: 0x0F, Mnemonic: "ora", Bytes: 4, AddressingMode: Long},
	0x10: {OpCode: 0x10, Mnemonic: "bpl", Bytes: 2, AddressingMode: Relative},
	0x11: {OpCode: 0x11, Mnemonic: "ora", Bytes: 2, AddressingMode: IndirectY},
	0x15: {OpCode: 0x15, Mnemonic: "ora", Bytes: 2, AddressingMode: ZeroPageX},
	0x16: {OpCode: 0x16, Mnemonic: "asl", Bytes: 2, AddressingMode: ZeroPageX},
	0x17: {OpCode: 0x17, Mnemonic: "ora", Bytes: 2, AddressingMode: Direct24Y},
	0x18: {OpCode: 0x18, Mnemonic: "clc", Bytes: 1, AddressingMode: Implied},
	0x19: {OpCode: 0x19, Mnemonic: "ora", Bytes: 3, AddressingMode: AbsoluteY},
	0x1A: {OpCode: 0x1A, Mnemonic: "ina", Bytes: 1, AddressingMode: Implied},
	0x1B: {OpCode: 0x1B, Mnemonic: "tcs", Bytes: 1, AddressingMode: Implied},
	0x1C: {OpCode: 0x1C, Mnemonic: "trb", Bytes: 3, AddressingMode: Absolute},
	0x1D: {OpCode: 0x1D, Mnemonic: "ora", Bytes: 3, AddressingMode: AbsoluteX},
	0x1E: {OpCode: 0x1E, Mnemonic: "asl", Bytes: 3, AddressingMode: AbsoluteX},
	0x1F: {OpCode: 0x1F, Mnemonic: "ora", Bytes: 4, AddressingMode: LongX},
	0x20: {OpCode: 0x20, Mnemonic: "jsr", Bytes: 3, AddressingMode: Absolute},
	0x22: {OpCode: 0x22, Mnemonic: "jsl", Bytes: 4, AddressingMode: Long},
	0x23: {OpCode: 0x23, Mnemonic: "and", Bytes: 2, AddressingMode: Stack},
	0x24: {OpCode: 0x24, Mnemonic: "bit", Bytes: 2, AddressingMode: ZeroPage},
	0x25: {OpCode: 0x25, Mnemonic: "and", Bytes: 2, AddressingMode: ZeroPage},
	0x26: {OpCode: 0x26, Mnemonic: "rol", Bytes: 2, AddressingMode: ZeroPage},
	0x27: {OpCode: 0x27, Mnemonic: "and", Bytes: 2, AddressingMode: Direct24},
	0x28: {OpCode: 0x28, Mnemonic: "plp", Bytes: 1, AddressingMode: Implied},
	0x29: {OpCode: 0x29, Mnemonic: "and", Bytes: 2, AddressingMode: Immediate},
	0x2A: {OpCode: 0x2A, Mnemonic: "rol", Bytes: 1, AddressingMode: Accumulator},
	0x2B: {OpCode: 0x2B, Mnemonic: "pld", Bytes: 1, AddressingMode: Implied},
	0x2C: {OpCode: 0x2C, Mnemonic: "bit", Bytes: 3, AddressingMode: Absolute},
	0x2D: {OpCode: 0x2D, Mnemonic: "and", Bytes: 3, AddressingMode: Absolute},
	0x2E: {OpCode: 0x2E, Mnemonic: "rol", Bytes: 3, AddressingMode: Absolute},
	0x30: {OpCode: 0x30, Mnemonic: "bmi", Bytes: 2, AddressingMode: RelativeLong},
	0x35: {OpCode: 0x35, Mnemonic: "and", Bytes: 2, AddressingMode: ZeroPageX},
	0x37: {OpCode: 0x37, Mnemonic: "and", Bytes: 2, AddressingMode: Direct24Y},
	0x38: {OpCode: 0x38, Mnemonic: "sec", Bytes: 1, AddressingMode: Implied},
	0x39: {OpCode: 0x39, Mnemonic: "and", Bytes: 3, AddressingMode: AbsoluteY},
	0x3A: {OpCode: 0x3A, Mnemonic: "dea", Bytes: 1, AddressingMode: Implied},
	0x3B: {OpCode: 0x3B, Mnemonic: "tsc", Bytes: 1, AddressingMode: Implied},
	0x3C: {OpCode: 0x3C, Mnemonic: "bit", Bytes: 3, AddressingMode: AbsoluteX},
	0x3D: {OpCode: 0x3D, Mnemonic: "and", Bytes: 3, AddressingMode: AbsoluteX},
	0x3E: {OpCode: 0x3E, Mnemonic: "rol", Bytes: 3, AddressingMode: AbsoluteX},
	0x40: {OpCode: 0x40, Mnemonic: "rti", Bytes: 1, AddressingMode: Implied},
	0x41: {OpCode: 0x41, Mnemonic: "eor", Bytes: 2, AddressingMode: IndirectX},
	0x43: {OpCode: 0x43, Mnemonic: "eor", Bytes: 2, AddressingMode: Stack},
	0x44: {OpCode: 0x44, Mnemonic: "mvp", Bytes: 3, AddressingMode: SourceDestination},
	0x45: {OpCode: 0x45, Mnemonic: "eor", Bytes: 2, AddressingMode: ZeroPage},
	0x46: {OpCode: 0x46, Mnemonic: "lsr", Bytes: 2, AddressingMode: ZeroPage},
	0x47: {OpCode: 0x47, Mnemonic: "eor", Bytes: 2, AddressingMode: Direct24},
	0x48: {OpCode: 0x48, Mnemonic: "pha", Bytes: 1, AddressingMode: Implied},
	0x49: {OpCode: 0x49, Mnemonic: "eor", Bytes: 2, AddressingMode: Immediate},
	0x4A: {OpCode: 0x4A, Mnemonic: "lsr", Bytes: 1, AddressingMode: Accumulator},
	0x4B: {OpCode: 0x4B, Mnemonic: "phk", Bytes: 1, AddressingMode: Implied},
	0x4C: {OpCode: 0x4C, Mnemonic: "jmp", Bytes: 3, AddressingMode: Absolute},
	0x4D: {OpCode: 0x4D, Mnemonic: "eor", Bytes: 3, AddressingMode: Absolute},
	0x4E: {OpCode: 0x4E, Mnemonic: "lsr", Bytes: 3, AddressingMode: Absolute},
	0x50: {OpCode: 0x50, Mnemonic: "bvc", Bytes: 2, AddressingMode: Relative},
	0x51: {OpCode: 0x51, Mnemonic: "eor", Bytes: 2, AddressingMode: IndirectY},
	0x54: {OpCode: 0x54, Mnemonic: "mvn", Bytes: 3, AddressingMode: SourceDestination},
	0x55: {OpCode: 0x55, Mnemonic: "eor", Bytes: 2, AddressingMode: ZeroPageX},
	0x57: {OpCode: 0x57, Mnemonic: "eor", Bytes: 2, AddressingMode: Direct24Y},
	0x58: {OpCode: 0x58, Mnemonic: "cli", Bytes: 1, AddressingMode: Implied},
	0x59: {OpCode: 0x59, Mnemonic: "eor", Bytes: 3, AddressingMode: AbsoluteY},
	0x5A: {OpCode: 0x5A, Mnemonic: "phy", Bytes: 1, AddressingMode: Implied},
	0x5B: {OpCode: 0x5B, Mnemonic: "tcd", Bytes: 1, AddressingMode: Implied},
	0x5C: {OpCode: 0x5C, Mnemonic: "jmp", Bytes: 4, AddressingMode: Long},
	0x5D: {OpCode: 0x5D, Mnemonic: "eor", Bytes: 3, AddressingMode: AbsoluteX},
	0x5E: {OpCode: 0x5E, Mnemonic: "lsr", Bytes: 3, AddressingMode: AbsoluteX},
	0x60: {OpCode: 0x60, Mnemonic: "rts", Bytes: 1, AddressingMode: Implied},
	0x62: {OpCode: 0x62, Mnemonic: "per", Bytes: 3, AddressingMode: RelativeLong},
	0x63: {OpCode: 0x63, Mnemonic: "adc", Bytes: 2, AddressingMode: Stack},
	0x64: {OpCode: 0x64, Mnemonic: "stz", Bytes: 2, AddressingMode: ZeroPage},
	0x65: {OpCode: 0x65, Mnemonic: "adc", Bytes: 2, AddressingMode: ZeroPage},
	0x66: {OpCode: 0x66, Mnemonic: "ror", Bytes: 2, AddressingMode: ZeroPage},
	0x67: {OpCode: 0x67, Mnemonic: "adc", Bytes: 2, AddressingMode: Direct24},
	0x68: {OpCode: 0x68, Mnemonic: "pla", Bytes: 1, AddressingMode: Implied},
	0x69: {OpCode: 0x69, Mnemonic: "adc", Bytes: 2, AddressingMode: Immediate},
	0x6A: {OpCode: 0x6A, Mnemonic: "ror", Bytes: 1, AddressingMode: Accumulator},
	0x6B: {OpCode: 0x6B, Mnemonic: "rtl", Bytes: 1, AddressingMode: Implied},
	0x6C: {OpCode: 0x6C, Mnemonic: "jmp", Bytes: 3, AddressingMode: Indirect},
	0x6D: {OpCode: 0x6D, Mnemonic: "adc", Bytes: 3, AddressingMode: Absolute},
	0x6E: {OpCode: 0x6E, Mnemonic: "ror", Bytes: 3, AddressingMode: Absolute},
	0x70: {OpCode: 0x70, Mnemonic: "bvs", Bytes: 2, AddressingMode: RelativeLong},
	0x75: {OpCode: 0x75, Mnemonic: "adc", Bytes: 2, AddressingMode: ZeroPageX},
	0x77: {OpCode: 0x77, Mnemonic: "adc", Bytes: 2, AddressingMode: Direct24Y},
	0x78: {OpCode: 0x78, Mnemonic: "sei", Bytes: 1, AddressingMode: Implied},
	0x79: {OpCode: 0x79, Mnemonic: "adc", Bytes: 3, AddressingMode: AbsoluteY},
	0x7A: {OpCode: 0x7A, Mnemonic: "ply", Bytes: 1, AddressingMode: Implied},
	0x7B: {OpCode: 0x7B, Mnemonic: "tdc", Bytes: 1, AddressingMode: Implied},
	0x7C: {OpCode: 0x7C, Mnemonic: "jmp", Bytes: 3, AddressingMode: AbsoluteX},
	0x7D: {OpCode: 0x7D, Mnemonic: "adc", Bytes: 3, AddressingMode: AbsoluteX},
	0x7E: {OpCode: 0x7E, Mnemonic: "ror", Bytes: 3, AddressingMode: AbsoluteX},
	0x80: {OpCode: 0x80, Mnemonic: "bra", Bytes: 2, AddressingMode: RelativeLong},
	0x81: {OpCode: 0x81, Mnemonic: "sta", Bytes: 2, AddressingMode: IndirectX},
	0x83: {OpCode: 0x83, Mnemonic: "sta", Bytes: 2, AddressingMode: Stack},
	0x84: {OpCode: 0x84, Mnemonic: "sty", Bytes: 2, AddressingMode: ZeroPage},
	0x85: {OpCode: 0x85, Mnemonic: "sta", Bytes: 2, AddressingMode: ZeroPage},
	0x86: {OpCode: 0x86, Mnemonic: "stx", Bytes: 2, AddressingMode: ZeroPage},
	0x87: {OpCode: 0x87, Mnemonic: "sta", Bytes: 2, AddressingMode: Direct24},
	0x88: {OpCode: 0x88, Mnemonic: "dey", Bytes: 1, AddressingMode: Implied},
	0x89: {OpCode: 0x89, Mnemonic: "bit", Bytes: 2, AddressingMode: Immediate},
	0x8A: {OpCode: 0x8A, Mnemonic: "txa", Bytes: 1, AddressingMode: Implied},
	0x8B: {OpCode: 0x8B, Mnemonic: "phb", Bytes: 1, AddressingMode: Implied},
	0x8C: {OpCode: 0x8C, Mnemonic: "sty", Bytes: 3, AddressingMode: Absolute},
	0x8D: {OpCode: 0x8D, Mnemonic: "sta", Bytes: 3, AddressingMode: Absolute},
	0x8E: {OpCode: 0x8E, Mnemonic: "stx", Bytes: 3, AddressingMode: Absolute},
	0x8F: {OpCode: 0x8F, Mnemonic: "sta", Bytes: 4, AddressingMode: Long},
	0x90: {OpCode: 0x90, Mnemonic: "bcc", Bytes: 2, AddressingMode: Relative},
	0x91: {OpCode: 0x91, Mnemonic: "sta", Bytes: 2, AddressingMode: IndirectY},
	0x94: {OpCode: 0x94, Mnemonic: "sty", Bytes: 2, AddressingMode: ZeroPageX},
	0x95: {OpCode: 0x95, Mnemonic: "sta", Bytes: 2, AddressingMode: ZeroPageX},
	0x96: {OpCode: 0x96, Mnemonic: "stx", Bytes: 2, AddressingMode: ZeroPageY},
	0x97: {OpCode: 0x97, Mnemonic: "sta", Bytes: 2, AddressingMode: Direct24Y},
	0x98: {OpCode: 0x98, Mnemonic: "tya", Bytes: 1, AddressingMode: Implied},
	0x99: {OpCode: 0x99, Mnemonic: "sta", Bytes: 3, AddressingMode: AbsoluteY},
	0x9A: {OpCode: 0x9A, Mnemonic: "txs", Bytes: 1, AddressingMode: Implied},
	0x9B: {OpCode: 0x9B, Mnemonic: "txy", Bytes: 1, AddressingMode: Implied},
	0x9C: {OpCode: 0x9C, Mnemonic: "stz", Bytes: 3, AddressingMode: Absolute},
	0x9D: {OpCode: 0x9D, Mnemonic: "sta", Bytes: 3, AddressingMode: AbsoluteX},
	0x9E: {OpCode: 0x9E, Mnemonic: "stz", Bytes: 3, AddressingMode: AbsoluteX},
	0x9F: {OpCode: 0x9F, Mnemonic: "sta", Bytes: 4, AddressingMode: LongX},
	0xA0: {OpCode: 0xA0, Mnemonic: "ldy", Bytes: 2, AddressingMode: Immediate},
	0xA1: {OpCode: 0xA1, Mnemonic: "lda", Bytes: 2, AddressingMode: IndirectX},
	0xA2: {OpCode: 0xA2, Mnemonic: "ldx", Bytes: 2, AddressingMode: Immediate},
	0xA3: {OpCode: 0xA3, Mnemonic: "lda", Bytes: 2, AddressingMode: Stack},
	0xA4: {OpCode: 0xA4, Mnemonic: "ldy", Bytes: 2, AddressingMode: ZeroPage},
	0xA5: {OpCode: 0xA5, Mnemonic: "lda", Bytes: 2, AddressingMode: ZeroPage},
	0xA6: {OpCode: 0xA6, Mnemonic: "ldx", Bytes: 2, AddressingMode: ZeroPage},
	0xA7: {OpCode: 0xA7, Mnemonic: "lda", Bytes: 2, AddressingMode: Direct24},
	0xA8: {OpCode: 0xA8, Mnemonic: "tay", Bytes: 1, AddressingMode: Implied},
	0xA9: {OpCode: 0xA9, Mnemonic: "lda", Bytes: 2, AddressingMode: Immediate},
	0xAA: {OpCode: 0xAA, Mnemonic: "tax", Bytes: 1, AddressingMode: Implied},
	0xAB: {OpCode: 0xAB, Mnemonic: "plb", Bytes: 1, AddressingMode: Implied},
	0xAC: {OpCode: 0xAC, Mnemonic: "ldy", Bytes: 3, AddressingMode: Absolute},
	0xAD: {OpCode: 0xAD, Mnemonic: "lda", Bytes: 3, AddressingMode: Absolute},
	0xAE: {OpCode: 0xAE, Mnemonic: "ldx", Bytes: 3, AddressingMode: Absolute},
	0xAF: {OpCode: 0xAF, Mnemonic: "lda", Bytes: 4, AddressingMode: Long},
	0xB0: {OpCode: 0xB0, Mnemonic: "bcs", Bytes: 2, AddressingMode: Relative},
	0xB1: {OpCode: 0xB1, Mnemonic: "lda", Bytes: 2, AddressingMode: IndirectY},
	0xB2: {OpCode: 0xB2, Mnemonic: "lda", Bytes: 2, AddressingMode: Indirect},
	0xB4: {OpCode: 0xB4, Mnemonic: "ldy", Bytes: 2, AddressingMode: ZeroPageX},
	0xB5: {OpCode: 0xB5, Mnemonic: "lda", Bytes: 2, AddressingMode: ZeroPageX},
	0xB6: {OpCode: 0xB6, Mnemonic: "ldx", Bytes: 2, AddressingMode: ZeroPageY},
	0xB7: {OpCode: 0xB7, Mnemonic: "lda", Bytes: 2, AddressingMode: Direct24Y},
	0xB8: {OpCode: 0xB8, Mnemonic: "clv", Bytes: 1, AddressingMode: Implied},
	0xB9: {OpCode: 0xB9, Mnemonic: "lda", Bytes: 3, AddressingMode: AbsoluteY},
	0xBA: {OpCode: 0xBA, Mnemonic: "tsx", Bytes: 1, AddressingMode: Implied},
	0xBB: {OpCode: 0xBB, Mnemonic: "tyx", Bytes: 1, AddressingMode: Implied},
	0xBC: {OpCode: 0xBC, Mnemonic: "ldy", Bytes: 3, AddressingMode: AbsoluteX},
	0xBD: {OpCode: 0xBD, Mnemonic: "lda", Bytes: 3, AddressingMode: AbsoluteX},
	0xBE: {OpCode: 0xBE, Mnemonic: "ldx", Bytes: 3, AddressingMode: AbsoluteY},
	0xBF: {OpCode: 0xBF, Mnemonic: "lda", Bytes: 4, AddressingMode: LongX},
	0xC0: {OpCode: 0xC0, Mnemonic: "cpy", Bytes: 2, AddressingMode: Immediate},
	0xC2: {OpCode: 0xC2, Mnemonic: "rep", Bytes: 2, AddressingMode: Immediate},
	0xC3: {OpCode: 0xC3, Mnemonic: "cmp", Bytes: 2, AddressingMode: Stack},
	0xC4: {OpCode: 0xC4, Mnemonic: "cpy", Bytes: 2, AddressingMode: ZeroPage},
	0xC5: {OpCode: 0xC5, Mnemonic: "cmp", Bytes: 2, AddressingMode: ZeroPage},
	0xC6: {OpCode: 0xC6, Mnemonic: "dec", Bytes: 2, AddressingMode: ZeroPage},
	0xC7: {OpCode: 0xC7, Mnemonic: "cmp", Bytes: 2, AddressingMode: Direct24},
	0xC8: {OpCode: 0xC8, Mnemonic: "iny", Bytes: 1, AddressingMode: Implied},
	0xC9: {OpCode: 0xC9, Mnemonic: "cmp", Bytes: 2, AddressingMode: Immediate},
	0xCA: {OpCode: 0xCA, Mnemonic: "dex", Bytes: 1, AddressingMode: Implied},
	0xCC: {OpCode: 0xCC, Mnemonic: "cpy", Bytes: 3, AddressingMode: Absolute},
	0xCD: {OpCode: 0xCD, Mnemonic: "cmp", Bytes: 3, AddressingMode: Absolute},
	0xCE: {OpCode: 0xCE, Mnemonic: "dec", Bytes: 3, AddressingMode: Absolute},
	0xCF: {OpCode: 0xCF, Mnemonic: "cmp", Bytes: 4, AddressingMode: Long},
	0xD0: {OpCode: 0xD0, Mnemonic: "bne", Bytes: 2, AddressingMode: Relative},
	0xD1: {OpCode: 0xD1, Mnemonic: "cmp", Bytes: 2, AddressingMode: IndirectY},
	0xD4: {OpCode: 0xD4, Mnemonic: "pei", Bytes: 2, AddressingMode: ZeroPage},
	0xD5: {OpCode: 0xD5, Mnemonic: "cmp", Bytes: 2, AddressingMode: ZeroPageX},
	0xD6: {OpCode: 0xD6, Mnemonic: "dec", Bytes: 2, AddressingMode: ZeroPageX},
	0xD7: {OpCode: 0xD7, Mnemonic: "cmp", Bytes: 2, AddressingMode: Direct24Y},
	0xD8: {OpCode: 0xD8, Mnemonic: "cld", Bytes: 1, AddressingMode: Implied},
	0xD9: {OpCode: 0xD9, Mnemonic: "cmp", Bytes: 3, AddressingMode: AbsoluteY},
	0xDA: {OpCode: 0xDA, Mnemonic: "phx", Bytes: 1, AddressingMode: Implied},
	0xDD: {OpCode: 0xDD, Mnemonic: "cmp", Bytes: 3, AddressingMode: AbsoluteX},
	0xDE: {OpCode: 0xDE, Mnemonic: "dec", Bytes: 3, AddressingMode: AbsoluteX},
	0xDF: {OpCode: 0xDF, Mnemonic: "cmp", Bytes: 4, AddressingMode: LongX},
	0xE0: {OpCode: 0xE0, Mnemonic: "cpx", Bytes: 2, AddressingMode: Immediate},
	0xE1: {OpCode: 0xE1, Mnemonic: "sbc", Bytes: 2, AddressingMode: IndirectX},
	0xE2: {OpCode: 0xE2, Mnemonic: "sep", Bytes: 2, AddressingMode: Immediate},
	0xE3: {OpCode: 0xE3, Mnemonic: "sbc", Bytes: 2, AddressingMode: Stack},
	0xE4: {OpCode: 0xE4, Mnemonic: "cpx", Bytes: 2, AddressingMode: ZeroPage},
	0xE5: {OpCode: 0xE5, Mnemonic: "sbc", Bytes: 2, AddressingMode: ZeroPage},
	0xE6: {OpCode: 0xE6, Mnemonic: "inc", Bytes: 2, AddressingMode: ZeroPage},
	0xE7: {OpCode: 0xE7, Mnemonic: "sbc", Bytes: 2, AddressingMode: Direct24},
	0xE8: {OpCode: 0xE8, Mnemonic: "inx", Bytes: 1, AddressingMode: Implied},
	0xE9: {OpCode: 0xE9, Mnemonic: "sbc", Bytes: 2, AddressingMode: Immediate},
	0xEA: {OpCode: 0xEA, Mnemonic: "nop", Bytes: 1, AddressingMode: Implied},
	0xEB: {OpCode: 0xEB, Mnemonic: "xba", Bytes: 1, AddressingMode: Implied},
	0xEC: {OpCode: 0xEC, Mnemonic: "cpx", Bytes: 3, AddressingMode: Absolute},
	0xED: {OpCode: 0xED, Mnemonic: "sbc", Bytes: 3, AddressingMode: Absolute},
	0xEE: {OpCode: 0xEE, Mnemonic: "inc", Bytes: 3, AddressingMode: Absolute},
	0xF0: {OpCode: 0xF0, Mnemonic: "beq", Bytes: 2, AddressingMode: Relative},
	0xF1: {OpCode: 0xF1, Mnemonic: "sbc", Bytes: 2, AddressingMode: IndirectY},
	0xF4: {OpCode: 0xF4, Mnemonic: "pea", Bytes: 3, AddressingMode: Absolute},
	0xF5: {OpCode: 0xF5, Mnemonic: "sbc", Bytes: 2, AddressingMode: ZeroPageX},
	0xF6: {OpCode: 0xF6, Mnemonic: "inc", Bytes: 2, AddressingMode: ZeroPageX},
	0xF7: {OpCode: 0xF7, Mnemonic: "sbc", Bytes: 2, AddressingMode: Direct24Y},
	0xF8: {OpCode: 0xF8, Mnemonic: "sed", Bytes: 1, AddressingMode: Implied},
	0xF9: {OpCode: 0xF9, Mnemonic: "sbc", Bytes: 3, AddressingMode: AbsoluteY},
	0xFA: {OpCode: 0xFA, Mnemonic: "plx", Bytes: 1, AddressingMode: Implied},
	0xFB: {OpCode: 0xFB, Mnemonic: "xce", Bytes: 1, AddressingMode: Implied},
	0xFC: {OpCode: 0xFC, Mnemonic: "jsr", Bytes: 3, AddressingMode: AbsoluteX},
	0xFD: {OpCode: 0xFD, Mnemonic: "sbc", Bytes: 3, AddressingMode: AbsoluteX},
	0xFE: {OpCode: 0xFE, Mnemonic: "inc", Bytes: 3, AddressingMode: AbsoluteX},
}
