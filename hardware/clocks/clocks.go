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

// Package clocks defines the speed of the main clock of the simulated machine
// and the Divider type, which derives clock domains from the steps of the
// simulation driver.
//
// Each step of the driver is one tick of every Divider. A Divider with a ratio
// of N produces one complete clock period (one rising edge and one falling
// edge) every N ticks. The primary clock of the simulation has a ratio of two,
// which means it toggles on every step.
package clocks

// ClockFreq is the nominal frequency of the primary clock in Hz.
const ClockFreq = 24000000

// PrimaryRatio is the ratio of the divider driving the primary clock.
const PrimaryRatio = 2
