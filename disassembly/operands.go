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

	"github.com/theypsilon-test/TK2000-MiSTer/hardware/cpu/execution"
	"github.com/theypsilon-test/TK2000-MiSTer/hardware/cpu/instructions"
)

// operands gives the formatting functions access to the operand bytes
type operands struct {
	c    *execution.Capture
	defn instructions.Definition
}

// in returns the data byte of the operand slot i.
func (o operands) in(i int) uint8 {
	return o.c.Slot(i).Data
}

// word returns the first two operand bytes as a 16-bit value.
func (o operands) word() uint16 {
	return uint16(o.in(1)) | uint16(o.in(2))<<8
}

// long returns the first three operand bytes as a 24-bit value. if the capture
// does not contain the third operand byte the high byte is taken from the data
// bank register recorded in slot one.
func (o operands) long() uint32 {
	hi := o.in(3)
	if o.c.Len() <= 3 {
		hi = o.c.Slot(1).Bank
	}
	return uint32(o.in(1)) | uint32(o.in(2))<<8 | uint32(hi)<<16
}

type formatter func(o operands) string

// one formatter for each addressing mode, indexed by mode
var formatters = [instructions.NumAddressingModes]formatter{
	instructions.Implied: func(_ operands) string {
		return ""
	},
	instructions.Formatted: func(o operands) string {
		return " " + o.c.Slot(1).Formatted
	},
	instructions.Immediate: func(o operands) string {
		// sixteen bit immediate values are recognised by the length of the
		// capture
		if o.c.Len() == 3 {
			return fmt.Sprintf(" #$%02x%02x", o.in(2), o.in(1))
		}
		return fmt.Sprintf(" #$%02x", o.in(1))
	},
	instructions.Accumulator: func(_ operands) string {
		return " a"
	},
	instructions.Absolute: func(o operands) string {
		return fmt.Sprintf(" $%02x%02x", o.in(2), o.in(1))
	},
	instructions.AbsoluteX: func(o operands) string {
		return fmt.Sprintf(" $%02x%02x,x", o.in(2), o.in(1))
	},
	instructions.AbsoluteY: func(o operands) string {
		return fmt.Sprintf(" $%02x%02x,y", o.in(2), o.in(1))
	},
	instructions.ZeroPage: func(o operands) string {
		return fmt.Sprintf(" $%02x", o.in(1))
	},
	instructions.ZeroPageX: func(o operands) string {
		return fmt.Sprintf(" $%02x,x", o.in(1))
	},
	instructions.ZeroPageY: func(o operands) string {
		return fmt.Sprintf(" $%02x,y", o.in(1))
	},
	instructions.Relative:     relative,
	instructions.RelativeLong: relative,
	instructions.Direct24: func(o operands) string {
		return fmt.Sprintf(" [$%02x]", o.in(1))
	},
	instructions.Direct24X: func(o operands) string {
		return fmt.Sprintf(" [$%02x],x", o.in(1))
	},
	instructions.Direct24Y: func(o operands) string {
		return fmt.Sprintf(" [$%02x],y", o.in(1))
	},
	instructions.Indirect: func(o operands) string {
		if o.c.Len() > 2 {
			return fmt.Sprintf(" ($%04x)", o.word())
		}
		return fmt.Sprintf(" ($%04x)", o.in(1))
	},
	instructions.IndirectX: func(o operands) string {
		return fmt.Sprintf(" ($%02x),x", o.in(1))
	},
	instructions.IndirectY: func(o operands) string {
		return fmt.Sprintf(" ($%02x),y", o.in(1))
	},
	instructions.Long: func(o operands) string {
		return fmt.Sprintf(" $%06x", o.long())
	},
	instructions.LongX: func(o operands) string {
		return fmt.Sprintf(" $%06x,x", o.long())
	},
	instructions.LongY: func(o operands) string {
		return fmt.Sprintf(" $%06x,y", o.long())
	},
	instructions.Stack: func(o operands) string {
		return fmt.Sprintf(" $%x,s", o.in(1))
	},
	instructions.SourceDestination: func(o operands) string {
		return fmt.Sprintf(" $%02x, $%02x", o.in(2), o.in(1))
	},
}

func relative(o operands) string {
	target := RelativeTarget(o.c.Slot(0).Address, o.in(1), o.defn.Mnemonic == "per")
	return fmt.Sprintf(" %06x (%s)", target, Displacement(o.in(1)))
}
