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

// Package signals defines the interface between the simulation driver and the
// hardware model. The model is a compiled netlist (or anything behaving like
// one) with input pins that are set by the driver, an evaluation function
// that settles the logic, and output pins that are read after evaluation.
//
// The Model interface covers the pins that every model must have. Optional
// pins are described by the RTCPins and ControlPins interfaces, which the
// driver and input packing discover with a type assertion.
package signals
