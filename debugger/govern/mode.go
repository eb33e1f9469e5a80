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

// Mode specifies the way the simulation is being driven.
type Mode int

// List of possible modes.
const (
	ModeNone Mode = iota

	// the simulation is under interactive run control
	ModeDebugger

	// the simulation runs from start to finish without interaction
	ModeHeadless
)

func (m Mode) String() string {
	switch m {
	case ModeDebugger:
		return "Debugger"
	case ModeHeadless:
		return "Headless"
	}

	return ""
}
