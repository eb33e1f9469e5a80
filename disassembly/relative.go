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

import "fmt"

// RelativeTarget returns the destination of a relative branch. The address
// is that of the opcode fetch and the offset is the first operand byte. The
// per instruction is one byte longer than the branches and so its target is
// one further along.
//
// Addresses wrap at 24 bits.
func RelativeTarget(address uint32, offset uint8, per bool) uint32 {
	t := int64(address) + int64(int8(offset)) + 2
	if per {
		t++
	}
	return uint32(t) & 0xffffff
}

// Displacement returns the signed offset of a relative branch as a hex string.
func Displacement(offset uint8) string {
	d := int8(offset)
	if d < 0 {
		return fmt.Sprintf("-$%x", -int(d))
	}
	return fmt.Sprintf("$%x", d)
}
