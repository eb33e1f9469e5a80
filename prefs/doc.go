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

// Package prefs holds typed preference values and the means to load and save
// them. Preference values are grouped in a Disk instance, each value with a
// unique key. The file format is one "key :: value" pair per line.
//
// Values can also be overridden for a session with a preferences string given
// on the command line. The string is of the form:
//
//	key::value; key::value
//
// Command line groups form a stack. When a value is added to a Disk the top of
// the stack is consulted and any matching key is used in place of the default.
package prefs
