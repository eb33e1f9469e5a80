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

// Package tracer reconstructs the instruction stream of the CPU from the
// observations of the bus made by the simulation driver.
//
// The Tracer considers an observation only on the rising edge of the CPU
// clock, with the CPU enabled and out of reset. Program cycles are collected
// in a capture until the next opcode fetch is seen, at which point the
// captured instruction is decoded and written to the Sink. A summary of the
// registers is written at every opcode fetch.
//
// A Comparator can be attached to check the decoded lines against a
// reference. A mismatch is reported to the Sink and recorded but the trace
// continues. Whether the simulation should stop is a decision for the run
// control.
package tracer
