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
	"strconv"
	"strings"

	"github.com/theypsilon-test/TK2000-MiSTer/hardware/cpu/execution"
)

// DecodeBytes decodes an instruction from a sequence of bytes as if they had
// been fetched in consecutive bus cycles from the 24-bit address. The data
// bank register is used for long operands that are not fully captured.
func DecodeBytes(address uint32, dbr uint8, data []byte) (Entry, error) {
	if len(data) == 0 {
		return Entry{}, fmt.Errorf("disassembly: no bytes to decode")
	}
	if len(data) > execution.CaptureCapacity {
		return Entry{}, fmt.Errorf("disassembly: too many bytes (%d)", len(data))
	}

	var c execution.Capture
	for i, d := range data {
		a := (address + uint32(i)) & 0xffffff
		c.Append(execution.Slot{
			PC:      uint16(a),
			Data:    d,
			Address: a,
			Bank:    dbr,
		})
	}

	return Decode(&c), nil
}

// ParseBytes parses a list of hex values. Values can be separated by spaces or
// commas and can have a "0x" or "$" prefix.
func ParseBytes(s ...string) ([]byte, error) {
	var data []byte
	for _, f := range s {
		for v := range strings.FieldsFuncSeq(f, func(r rune) bool { return r == ',' || r == ' ' }) {
			v = strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(v), "0x"), "$")
			n, err := strconv.ParseUint(v, 16, 8)
			if err != nil {
				return nil, fmt.Errorf("disassembly: %q is not a byte", v)
			}
			data = append(data, byte(n))
		}
	}
	return data, nil
}
