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
	"strings"

	"github.com/theypsilon-test/TK2000-MiSTer/hardware/cpu/execution"
	"github.com/theypsilon-test/TK2000-MiSTer/hardware/cpu/instructions"
)

// Decode the instruction in the capture. Slot zero of the capture must be the
// opcode fetch.
func Decode(c *execution.Capture) Entry {
	opcode := c.Slot(0)

	e := Entry{
		Bank: uint8(opcode.Address >> 16),
		PC:   opcode.PC,
		Defn: instructions.Lookup(opcode.Data),
	}

	if !e.Defn.Defined() {
		e.Mnemonic = UnknownMnemonic
		e.Operand = unknownOperand(c)
		return e
	}

	e.Mnemonic = e.Defn.Mnemonic
	e.Operand = formatters[e.Defn.AddressingMode](operands{c: c, defn: e.Defn})

	return e
}

// unknownOperand lists the raw bus values of the first five slots of the
// capture.
func unknownOperand(c *execution.Capture) string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf(" PC=%x", c.Slot(0).PC))
	for i := range 5 {
		s.WriteString(fmt.Sprintf(" IN%d=%x", i, c.Slot(i).Data))
	}
	for i := range 5 {
		s.WriteString(fmt.Sprintf(" MA%d=%x", i, c.Slot(i).Address))
	}
	return s.String()
}
