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

package disassembly

import (
	"fmt"

	"github.com/theypsilon-test/TK2000-MiSTer/hardware/cpu/instructions"
)

// UnknownMnemonic is used in place of a mnemonic for opcodes that are not in
// the instruction table.
const UnknownMnemonic = "???"

// Entry is a decoded instruction.
type Entry struct {
	// the bank and program counter of the opcode fetch
	Bank uint8
	PC   uint16

	Mnemonic string

	// operand text including any leading space. empty for implied
	// instructions
	Operand string

	Defn instructions.Definition
}

// String returns the entry as a line of the trace log.
func (e Entry) String() string {
	return fmt.Sprintf("%02X:%04X: %s%s", e.Bank, e.PC, e.Mnemonic, e.Operand)
}

// IsUnknown returns true if the opcode of the entry is not defined.
func (e Entry) IsUnknown() bool {
	return !e.Defn.Defined()
}
