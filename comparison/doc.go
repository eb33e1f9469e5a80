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

// Package comparison checks the instruction trace of a simulation against a
// reference log. The reference can be a list of decoded lines, one per
// instruction, or the trace output of an earlier run of the simulation, in
// which case the counter prefixes and register lines are ignored.
//
// The Reference type satisfies the tracer.Comparator interface.
package comparison
