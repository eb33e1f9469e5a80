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

package govern

// State indicates the emulation's state.
type State int

// List of possible emulation states.
//
// Initialising is used when the simulation is being created and the model has
// not yet been stepped.
//
// Paused, Stepping and Running are the states of the run control. A Stepping
// simulation is being advanced by a fixed number of steps before pausing.
//
// Ending is returned by the simulation driver once the model has signalled
// that it has finished. It is never left.
const (
	Initialising State = iota
	Paused
	Stepping
	Running
	Ending
)

func (s State) String() string {
	switch s {
	case Initialising:
		return "Initialising"
	case Paused:
		return "Paused"
	case Stepping:
		return "Stepping"
	case Running:
		return "Running"
	case Ending:
		return "Ending"
	}

	return ""
}

// SubState adds detail to the Paused state.
type SubState int

// List of possible sub-states.
const (
	Normal SubState = iota
	PausedByUser
	PausedOnMismatch
)

func (s SubState) String() string {
	switch s {
	case PausedByUser:
		return "Paused by user"
	case PausedOnMismatch:
		return "Paused on trace mismatch"
	}
	return ""
}

// StateIntegrity checks that the combination of state and sub-state is valid.
func StateIntegrity(state State, subState SubState) bool {
	if subState == Normal {
		return true
	}
	return state == Paused
}
