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

// AddressingMode describes how the operand of an instruction is formed.
type AddressingMode int

// List of supported addressing modes.
const (
	Implied AddressingMode = iota

	// the operand has been prepared ahead of time and is stored in the
	// capture alongside the first operand byte
	Formatted

	Immediate
	Accumulator

	Absolute  // abs
	AbsoluteX // abs,x
	AbsoluteY // abs,y

	ZeroPage  // dp
	ZeroPageX // dp,x
	ZeroPageY // dp,y

	Relative     // branches
	RelativeLong // brl/per and the long form branches

	Direct24  // [dp]
	Direct24X // [dp],x
	Direct24Y // [dp],y

	Indirect  // (dp) or (abs)
	IndirectX // (dp,x)
	IndirectY // (dp),y

	Long  // al
	LongX // al,x
	LongY // al,y

	Stack // sr,s

	SourceDestination // block move
)

// NumAddressingModes is the number of addressing modes in the list above.
const NumAddressingModes = 23

func (m AddressingMode) String() string {
	switch m {
	case Implied:
		return "Implied"
	case Formatted:
		return "Formatted"
	case Immediate:
		return "Immediate"
	case Accumulator:
		return "Accumulator"
	case Absolute:
		return "Absolute"
	case AbsoluteX:
		return "AbsoluteX"
	case AbsoluteY:
		return "AbsoluteY"
	case ZeroPage:
		return "ZeroPage"
	case ZeroPageX:
		return "ZeroPageX"
	case ZeroPageY:
		return "ZeroPageY"
	case Relative:
		return "Relative"
	case RelativeLong:
		return "RelativeLong"
	case Direct24:
		return "Direct24"
	case Direct24X:
		return "Direct24X"
	case Direct24Y:
		return "Direct24Y"
	case Indirect:
		return "Indirect"
	case IndirectX:
		return "IndirectX"
	case IndirectY:
		return "IndirectY"
	case Long:
		return "Long"
	case LongX:
		return "LongX"
	case LongY:
		return "LongY"
	case Stack:
		return "Stack"
	case SourceDestination:
		return "SourceDestination"
	}
	return "unknown addressing mode"
}

// IsBranch returns true if the addressing mode is one of the relative modes.
func (m AddressingMode) IsBranch() bool {
	return m == Relative || m == RelativeLong
}
