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

// Package hardware is the clock domain driver of the simulation. A Simulation
// advances the hardware model one edge of the primary clock at a time and
// keeps the peripheral hooks, the instruction tracer and the audio and video
// sinks phased against those edges.
//
// A single call to Step() performs, in order:
//
//	the soft reset sequence
//	the initial hard reset sequence
//	one tick of the primary clock divider
//	the hooks, the model evaluation and the tracer sample, if the clock changed
//	audio and video delivery on a rising edge
//	the advance of simulation time on a rising edge
//
// Simulation time counts rising edges of the primary clock. It is only reset
// by Reset().
//
// The Simulation is not safe for concurrent use. Run control from another
// goroutine should be arranged through the continueCheck function of Run().
package hardware
