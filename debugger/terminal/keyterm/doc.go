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

// Package keyterm implements the Terminal interface for the tk2000sim
// debugger. The terminal is put into cbreak mode and single keypresses are
// mapped to debugger commands, which makes it possible to control a running
// simulation without pressing return.
//
// A full command can be entered by pressing the colon key. The command is
// completed with the return key.
//
// The KeyTerminal is not available on Windows.
package keyterm
