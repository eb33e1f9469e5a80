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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Arguments are given to the Modes type with NewArgs() and flags for the
// current mode are added with the Add*() functions, before calling Parse().
// Non-flag arguments are available after parsing with RemainingArgs() or
// GetArg():
//
//	md := &modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	verbose := md.AddBool("verbose", false, "print log messages")
//	md.AddSubModes("RUN", "DECODE")
//
//	switch r, err := md.Parse(); r {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
// A mode is a special argument that follows the flags and puts the program
// into a different mode of operation. The first sub-mode added is the default
// mode, which is chosen if the first remaining argument is not a sub-mode.
// Comparisons of sub-modes are case insensitive.
//
// After deciding on the mode, NewMode() prepares the Modes type for the flags
// of that mode. Parse() is then called again to process the remaining
// arguments:
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		batch := md.AddInt("batch", 0, "steps between checks of the terminal")
//		md.Parse()
//		run(md.RemainingArgs(), *batch)
//	}
//
// Modes can be chained as deeply as required. The Path() function returns
// every mode encountered, separated with a slash.
package modalflag
