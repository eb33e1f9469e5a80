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

package tracer

import (
	"fmt"

	"github.com/theypsilon-test/TK2000-MiSTer/disassembly"
	"github.com/theypsilon-test/TK2000-MiSTer/hardware/cpu/execution"
	"github.com/theypsilon-test/TK2000-MiSTer/logger"
)

// Comparator checks decoded lines against a reference. Compare is called once
// for every decoded instruction, in order. It returns the reference line and
// whether the decoded line matches it.
type Comparator interface {
	Compare(line string) (reference string, match bool)
}

// Tracer is the instruction retirement tracer.
type Tracer struct {
	sink       Sink
	comparator Comparator

	capture execution.Capture

	// number of instructions decoded
	counter int

	// prefix every line with the instruction counter
	prefix bool

	// value of the CPU clock in the previous observation
	lastClock bool

	mismatched bool
	mismatches int
}

// NewTracer is the preferred method of initialisation for the Tracer type.
func NewTracer(sink Sink, prefix bool) *Tracer {
	return &Tracer{
		sink:   sink,
		prefix: prefix,
	}
}

func (tr *Tracer) String() string {
	return fmt.Sprintf("%d instructions (%d mismatches)", tr.counter, tr.mismatches)
}

// SetComparator attaches a comparator to the tracer. A nil value removes the
// current comparator.
func (tr *Tracer) SetComparator(c Comparator) {
	tr.comparator = c
}

// Reset the instruction counter, the capture and the mismatch state.
func (tr *Tracer) Reset() {
	tr.counter = 0
	tr.capture.Clear()
	tr.lastClock = false
	tr.mismatched = false
	tr.mismatches = 0
}

// Count returns the number of instructions decoded.
func (tr *Tracer) Count() int {
	return tr.counter
}

// Mismatched returns true if a decoded line has differed from the reference
// since the last call to ClearMismatch().
func (tr *Tracer) Mismatched() bool {
	return tr.mismatched
}

// ClearMismatch clears the mismatch flag.
func (tr *Tracer) ClearMismatch() {
	tr.mismatched = false
}

// Mismatches returns the total number of mismatches.
func (tr *Tracer) Mismatches() int {
	return tr.mismatches
}

// Capture returns the capture of the instruction currently being executed.
func (tr *Tracer) Capture() *execution.Capture {
	return &tr.capture
}

// Sample implements the hardware.Sampler interface.
func (tr *Tracer) Sample(o execution.BusObservation) {
	rising := o.Clock && !tr.lastClock
	tr.lastClock = o.Clock

	if !rising || o.Reset || !o.Enable {
		return
	}

	if o.IsOpcodeFetch() {
		// the previous instruction is complete
		if tr.capture.Len() > 0 && tr.capture.Slot(0).PC > 0 {
			tr.retire()
		}
		tr.capture.Clear()

		regs := fmt.Sprintf("PC=%04x A=%04x X=%04x Y=%04x", o.ProgramCounter, o.A, o.X, o.Y)
		if tr.prefix {
			regs = fmt.Sprintf("%06d > %s", tr.counter, regs)
		}
		tr.sink.TraceLine(regs)
	}

	if o.IsProgramCycle() && o.ProgramCounter > 0 {
		tr.capture.Append(o.Slot())
	}
}

// retire decodes the captured instruction and writes it to the sink.
func (tr *Tracer) retire() {
	line := disassembly.Decode(&tr.capture).String()

	cpu := line
	if tr.prefix {
		cpu = fmt.Sprintf("%06d  CPU > %s", tr.counter, line)
	}

	if tr.comparator != nil {
		if ref, ok := tr.comparator.Compare(line); !ok {
			tr.mismatched = true
			tr.mismatches++
			logger.Logf(logger.Allow, "tracer", "trace mismatch at instruction %d", tr.counter)

			tr.sink.TraceLine(fmt.Sprintf("DIFF at %06d - %06x", tr.counter, tr.capture.Slot(0).PC))
			tr.sink.TraceLine(fmt.Sprintf("%06d  REF > %s", tr.counter, ref))
			tr.sink.TraceLine(fmt.Sprintf("%06d  CPU > %s", tr.counter, line))
			tr.counter++
			return
		}
	}

	tr.sink.TraceLine(cpu)
	tr.counter++
}
