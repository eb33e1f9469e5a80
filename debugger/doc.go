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

// Package debugger implements the run control of the simulation. The
// simulation can be free-running, in which case it is advanced in batches of
// steps with the terminal being checked for input between batches, or it can
// be paused and advanced a step, an instruction or a multi-step at a time.
//
// Input is read from a terminal.Terminal implementation in its own goroutine.
// All other work, including all access to the simulation, happens in the
// goroutine that called Start().
//
// The simulation is paused automatically when the instruction trace differs
// from the reference log, if the StopOnMismatch preference is set.
package debugger
