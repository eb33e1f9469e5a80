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

package debugger

import (
	"fmt"

	"github.com/theypsilon-test/TK2000-MiSTer/debugger/terminal"
)

var help = map[string]string{
	cmdRun:       "Free-run the simulation. The terminal is checked for input between batches of steps",
	cmdStop:      "Pause a free-running simulation",
	cmdStep:      "Advance the primary clock by one or more edges, or until the next instruction has been retired",
	cmdMulti:     "Advance the primary clock by the multi-step amount. A new amount can be given",
	cmdBatch:     "Set the number of steps between checks of the terminal when free-running",
	cmdReset:     "Reset the simulation time, the instruction counter and the trace",
	cmdSoftReset: "Assert the soft reset input of the model for the soft reset duration",
	cmdMismatch:  "Show or set whether the simulation pauses when the trace differs from the reference log",

	cmdPress:   "Press a button (RIGHT, LEFT, DOWN, UP, A, B, X, Y, L, R, SELECT, START, MENU)",
	cmdRelease: "Release a button",

	cmdStatus:     "Show the state of the simulation",
	cmdTail:       "Show the most recent lines of the instruction trace",
	cmdLog:        "Show the most recent log entries",
	cmdScreenshot: "Save the most recent frame as a PNG file",
	cmdMemviz:     "Save a graph of the current instruction capture in graphviz format",

	cmdHelp: "Show the list of commands or the help for a command",
	cmdQuit: "Leave the debugger",
}

func (dbg *Debugger) printHelp(cmd string) error {
	for _, t := range commandTemplate {
		if keyword(t) == cmd {
			dbg.printLine(terminal.StyleHelp, "%s", t)
			dbg.printLine(terminal.StyleHelp, "%s", help[cmd])
			return nil
		}
	}
	return fmt.Errorf("%s: no help for %s", cmdHelp, cmd)
}
