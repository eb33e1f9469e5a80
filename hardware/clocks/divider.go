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

package clocks

import (
	"fmt"
	"strings"
)

// Divider is a ticked clock with a period of Ratio ticks. The clock is high
// for the first half of the period (rounded up) and low for the remainder.
type Divider struct {
	ratio int

	// position in the period. the first tick after a reset moves the phase to
	// zero, which is always a rising edge
	phase int

	level    bool
	previous bool
}

// NewDivider is the preferred method of initialisation for the Divider type.
// The ratio must be at least two.
func NewDivider(ratio int) (*Divider, error) {
	if ratio < 2 {
		return nil, fmt.Errorf("clocks: divider ratio must be at least 2 (%d)", ratio)
	}
	d := &Divider{ratio: ratio}
	d.Reset()
	return d, nil
}

// Reset puts the divider into its initial state. The clock is low and the next
// tick will be a rising edge.
func (d *Divider) Reset() {
	d.phase = d.ratio - 1
	d.level = false
	d.previous = false
}

// Tick advances the divider by one step.
func (d *Divider) Tick() {
	d.previous = d.level
	d.phase = (d.phase + 1) % d.ratio
	d.level = d.phase < d.ratio-d.ratio/2
}

// Level returns the current level of the clock.
func (d *Divider) Level() bool {
	return d.level
}

// Rising returns true if the most recent tick changed the clock from low to
// high.
func (d *Divider) Rising() bool {
	return d.level && !d.previous
}

// Falling returns true if the most recent tick changed the clock from high to
// low.
func (d *Divider) Falling() bool {
	return !d.level && d.previous
}

// Changed returns true if the most recent tick produced an edge.
func (d *Divider) Changed() bool {
	return d.level != d.previous
}

// Ratio returns the number of ticks in a full period.
func (d *Divider) Ratio() int {
	return d.ratio
}

// Phase returns the position of the divider within its period.
func (d *Divider) Phase() int {
	return d.phase
}

// String returns a representation of one period of the clock with the
// current position marked with an asterisk.
func (d *Divider) String() string {
	s := strings.Builder{}
	for i := range d.ratio {
		if i == d.phase {
			s.WriteRune('*')
		} else if i < d.ratio-d.ratio/2 {
			s.WriteRune('-')
		} else {
			s.WriteRune('_')
		}
	}
	return s.String()
}
