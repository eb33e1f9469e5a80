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

import "fmt"

// OpcodeFetch is the value of the cycle state signal for the cycle that
// fetches the first byte of an instruction.
const OpcodeFetch = 1

// BusObservation is the value of the CPU signals sampled at a single clock
// edge.
type BusObservation struct {
	// gating signals. an observation is only of interest on the rising edge of
	// Clock, with the CPU enabled and not in reset
	Enable bool
	Clock  bool
	Reset  bool

	VPA        bool
	VDA        bool
	CycleState uint8

	ProgramCounter uint16
	DataIn         uint8

	// the address is 24 bits wide
	Address  uint32
	DataBank uint8

	// register snapshot
	A uint16
	X uint16
	Y uint16
}

func (o BusObservation) String() string {
	return fmt.Sprintf("PC=%04x DI=%02x MA=%06x DBR=%02x VPA=%v VDA=%v MC=%d", o.ProgramCounter,
		o.DataIn, o.Address, o.DataBank, o.VPA, o.VDA, o.CycleState)
}

// IsOpcodeFetch returns true if the observation is of the first cycle of an
// instruction.
func (o BusObservation) IsOpcodeFetch() bool {
	return o.VPA && o.CycleState == OpcodeFetch
}

// IsProgramCycle returns true if the observation should be added to the
// capture of the current instruction. Cycles with a valid data address but
// without a valid program address are data-only cycles and are not part of
// the instruction stream.
func (o BusObservation) IsProgramCycle() bool {
	return (o.VPA || o.VDA) && !(!o.VPA && o.VDA)
}

// Slot returns the observation as a capture slot.
func (o BusObservation) Slot() Slot {
	return Slot{
		PC:      o.ProgramCounter,
		Data:    o.DataIn,
		Address: o.Address & 0xffffff,
		Bank:    o.DataBank,
	}
}
