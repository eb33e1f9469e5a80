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

package execution

import (
	"fmt"
	"strings"
)

// CaptureCapacity is the number of slots in a Capture.
const CaptureCapacity = 48

// Slot is a single bus cycle in the Capture.
type Slot struct {
	PC      uint16
	Data    uint8
	Address uint32
	Bank    uint8

	// pre-formatted operand text. only used by instructions with the
	// Formatted addressing mode
	Formatted string
}

// Capture is the list of bus cycles for a single instruction. Slot zero is the
// opcode fetch and the following slots are the operand bytes.
//
// The capture is a fixed size ring. An instruction can not legitimately need
// more than CaptureCapacity cycles but if it does the write index wraps and
// slot zero is overwritten.
type Capture struct {
	slots [CaptureCapacity]Slot

	// index of the next slot to be written. also the fill level
	index int
}

// Append a slot to the capture.
func (c *Capture) Append(s Slot) {
	c.slots[c.index] = s
	c.index++
	if c.index >= CaptureCapacity {
		c.index = 0
	}
}

// Clear all slots and reset the fill level.
func (c *Capture) Clear() {
	c.slots = [CaptureCapacity]Slot{}
	c.index = 0
}

// Len returns the fill level of the capture.
func (c *Capture) Len() int {
	return c.index
}

// Slot returns the slot at index i. The zero Slot is returned for an index
// outside of the capture.
func (c *Capture) Slot(i int) Slot {
	if i < 0 || i >= CaptureCapacity {
		return Slot{}
	}
	return c.slots[i]
}

func (c *Capture) String() string {
	s := strings.Builder{}
	for i := range c.index {
		if i > 0 {
			s.WriteString(" ")
		}
		fmt.Fprintf(&s, "%06x:%02x", c.slots[i].Address, c.slots[i].Data)
	}
	return s.String()
}
