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

package hardware

import (
	"fmt"

	"github.com/theypsilon-test/TK2000-MiSTer/debugger/govern"
)

// Run the simulation as quickly as possible. The simulation is stepped in
// batches of the BatchSize preference and the continueCheck function is
// called between batches.
//
// Running continues while continueCheck returns govern.Running. A Paused
// state causes Run to call continueCheck again without stepping. Run returns
// when the model finishes or when continueCheck returns govern.Ending.
func (sim *Simulation) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	batch := sim.Prefs.BatchSize.Get().(int)
	if batch <= 0 {
		batch = 1
	}

	state := govern.Running
	for state != govern.Ending {
		switch state {
		case govern.Running:
			if _, s := sim.RunFor(batch); s == govern.Ending {
				return nil
			}
		case govern.Paused:
		default:
			return fmt.Errorf("hardware: unsupported state (%s) in Run() function", state)
		}

		var err error
		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunFor steps the simulation n times, stopping early if the model finishes.
// Returns the number of steps that returned govern.Running and the state of
// the final step.
func (sim *Simulation) RunFor(n int) (int, govern.State) {
	for i := range n {
		if sim.Step() == govern.Ending {
			return i, govern.Ending
		}
	}
	return n, govern.Running
}
