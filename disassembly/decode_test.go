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

package disassembly_test

import (
	"fmt"
	"testing"

	"github.com/theypsilon-test/TK2000-MiSTer/disassembly"
	"github.com/theypsilon-test/TK2000-MiSTer/hardware/cpu/execution"
	"github.com/theypsilon-test/TK2000-MiSTer/hardware/cpu/instructions"
	"github.com/theypsilon-test/TK2000-MiSTer/test"
)

// capture creates a Capture with one slot for each byte. the first byte is
// fetched from address and each subsequent byte from the following address
func capture(address uint32, bytes ...uint8) *execution.Capture {
	c := &execution.Capture{}
	for i, b := range bytes {
		a := address + uint32(i)
		c.Append(execution.Slot{PC: uint16(a), Data: b, Address: a})
	}
	return c
}

func TestAllOpcodes(t *testing.T) {
	for op := range 256 {
		e := disassembly.Decode(capture(0x001000, uint8(op), 0x01, 0x02, 0x03))
		test.ExpectEquality(t, e.String(), allOpcodes[op], fmt.Sprintf("%02x", op))

		defn := instructions.Lookup(uint8(op))
		if defn.Defined() {
			test.ExpectEquality(t, e.Mnemonic, defn.Mnemonic)
			test.ExpectFailure(t, e.IsUnknown())
		} else {
			test.ExpectEquality(t, e.Mnemonic, disassembly.UnknownMnemonic)
			test.ExpectSuccess(t, e.IsUnknown())
		}
	}
}

func TestImmediate(t *testing.T) {
	e := disassembly.Decode(capture(0x001000, 0xa9, 0x42))
	test.ExpectEquality(t, e.Mnemonic, "lda")
	test.ExpectEquality(t, e.Operand, " #$42")
	test.ExpectEquality(t, e.PC, uint16(0x1000))
	test.ExpectEquality(t, e.String(), "00:1000: lda #$42")

	// a capture of three slots is a sixteen bit immediate value
	e = disassembly.Decode(capture(0x001000, 0xa9, 0x34, 0x12))
	test.ExpectEquality(t, e.String(), "00:1000: lda #$1234")

	e = disassembly.Decode(capture(0x001000, 0xc2, 0x30))
	test.ExpectEquality(t, e.String(), "00:1000: rep #$30")
}

func TestAbsolute(t *testing.T) {
	e := disassembly.Decode(capture(0x001000, 0x4c, 0x00, 0x20))
	test.ExpectEquality(t, e.String(), "00:1000: jmp $2000")

	e = disassembly.Decode(capture(0x001000, 0xbd, 0x00, 0x20))
	test.ExpectEquality(t, e.String(), "00:1000: lda $2000,x")

	e = disassembly.Decode(capture(0x001000, 0xb9, 0x00, 0x20))
	test.ExpectEquality(t, e.String(), "00:1000: lda $2000,y")
}

func TestBank(t *testing.T) {
	e := disassembly.Decode(capture(0x7e1000, 0xea))
	test.ExpectEquality(t, e.Bank, uint8(0x7e))
	test.ExpectEquality(t, e.String(), "7E:1000: nop")
}

func TestBranch(t *testing.T) {
	// branch to self
	e := disassembly.Decode(capture(0x001000, 0x90, 0xfe))
	test.ExpectEquality(t, e.String(), "00:1000: bcc 001000 (-$2)")

	e = disassembly.Decode(capture(0x001000, 0xd0, 0x10))
	test.ExpectEquality(t, e.String(), "00:1000: bne 001012 ($10)")

	e = disassembly.Decode(capture(0x001000, 0x80, 0x80))
	test.ExpectEquality(t, e.String(), "00:1000: bra 000f82 (-$80)")

	// per is one byte further than the other relative instructions
	e = disassembly.Decode(capture(0x001000, 0x62, 0x10, 0x00))
	test.ExpectEquality(t, e.String(), "00:1000: per 001013 ($10)")
}

func TestRelativeTarget(t *testing.T) {
	for d := range 256 {
		offset := uint8(d)
		expected := uint32(0x8000 + int(int8(offset)) + 2)

		test.ExpectEquality(t, disassembly.RelativeTarget(0x8000, offset, false), expected)
		test.ExpectEquality(t, disassembly.RelativeTarget(0x8000, offset, true), expected+1)

		var disp string
		if int8(offset) < 0 {
			disp = fmt.Sprintf("-$%x", -int(int8(offset)))
		} else {
			disp = fmt.Sprintf("$%x", offset)
		}
		test.ExpectEquality(t, disassembly.Displacement(offset), disp)

		for op := range 256 {
			defn := instructions.Lookup(uint8(op))
			if !defn.Defined() || !defn.AddressingMode.IsBranch() {
				continue
			}
			target := expected
			if defn.Mnemonic == "per" {
				target++
			}
			e := disassembly.Decode(capture(0x008000, uint8(op), offset))
			test.ExpectEquality(t, e.Operand, fmt.Sprintf(" %06x (%s)", target, disp), fmt.Sprintf("%02x %02x", op, offset))
		}
	}

	// per is the only relative instruction that is not a branch
	e := disassembly.Decode(capture(0x008000, 0x62, 0xfe))
	test.ExpectEquality(t, e.String(), "00:8000: per 008001 (-$2)")

	// target wraps at 24 bits
	test.ExpectEquality(t, disassembly.RelativeTarget(0xffffff, 0x01, false), uint32(0x000002))
	test.ExpectEquality(t, disassembly.RelativeTarget(0x000000, 0xfc, false), uint32(0xfffffe))
}

func TestLong(t *testing.T) {
	e := disassembly.Decode(capture(0x001000, 0xaf, 0x56, 0x34, 0x12))
	test.ExpectEquality(t, e.String(), "00:1000: lda $123456")

	e = disassembly.Decode(capture(0x001000, 0x22, 0x56, 0x34, 0x12))
	test.ExpectEquality(t, e.String(), "00:1000: jsl $123456")

	e = disassembly.Decode(capture(0x001000, 0xbf, 0x56, 0x34, 0x12))
	test.ExpectEquality(t, e.String(), "00:1000: lda $123456,x")
}

func TestLongFallback(t *testing.T) {
	// with a capture of three slots the high byte of the address comes from
	// the data bank register recorded in slot one
	c := &execution.Capture{}
	c.Append(execution.Slot{PC: 0x1000, Data: 0x5c, Address: 0x001000, Bank: 0x01})
	c.Append(execution.Slot{PC: 0x1001, Data: 0x56, Address: 0x001001, Bank: 0x7e})
	c.Append(execution.Slot{PC: 0x1002, Data: 0x34, Address: 0x001002, Bank: 0x02})

	e := disassembly.Decode(c)
	test.ExpectEquality(t, e.String(), "00:1000: jmp $7e3456")

	// the fourth slot is used once it is present
	c.Append(execution.Slot{PC: 0x1003, Data: 0x12, Address: 0x001003, Bank: 0x03})
	e = disassembly.Decode(c)
	test.ExpectEquality(t, e.String(), "00:1000: jmp $123456")
}

func TestOperandForms(t *testing.T) {
	tests := []struct {
		bytes    []uint8
		expected string
	}{
		{[]uint8{0x0a}, "asl a"},
		{[]uint8{0x54, 0x01, 0x02}, "mvn $02, $01"},
		{[]uint8{0x44, 0x7e, 0x7f}, "mvp $7f, $7e"},
		{[]uint8{0x03, 0x0a}, "ora $a,s"},
		{[]uint8{0xb2, 0x12}, "lda ($0012)"},
		{[]uint8{0x6c, 0x34, 0x12}, "jmp ($1234)"},
		{[]uint8{0xa1, 0x20}, "lda ($20),x"},
		{[]uint8{0xb1, 0x20}, "lda ($20),y"},
		{[]uint8{0xa7, 0x20}, "lda [$20]"},
		{[]uint8{0xb7, 0x20}, "lda [$20],y"},
		{[]uint8{0xb5, 0x20}, "lda $20,x"},
		{[]uint8{0xb6, 0x20}, "ldx $20,y"},
		{[]uint8{0x85, 0x20}, "sta $20"},
		{[]uint8{0x60}, "rts"},
	}

	for _, tt := range tests {
		e := disassembly.Decode(capture(0x001000, tt.bytes...))
		test.ExpectEquality(t, e.String(), "00:1000: "+tt.expected)
	}
}

func TestUnknown(t *testing.T) {
	e := disassembly.Decode(capture(0x001000, 0x02, 0x11))
	test.ExpectEquality(t, e.String(), "00:1000: ??? PC=1000 IN0=2 IN1=11 IN2=0 IN3=0 IN4=0 MA0=1000 MA1=1001 MA2=0 MA3=0 MA4=0")
}

func TestIdempotence(t *testing.T) {
	for op := range 256 {
		c := capture(0x021000, uint8(op), 0xfe, 0x34, 0x12)
		a := disassembly.Decode(c)
		b := disassembly.Decode(c)
		test.ExpectEquality(t, a, b)

		// the capture is not altered by decoding
		test.ExpectEquality(t, c.Len(), 4)
		test.ExpectEquality(t, c.Slot(0).Data, uint8(op))
	}
}
