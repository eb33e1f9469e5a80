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

// Package peripherals contains the collaborators that are driven alongside
// the hardware model by the simulation driver.
//
// The Storage, Input and Bus interfaces are hooks that are called around each
// evaluation of the model. Null implementations are provided for when there
// is nothing to attach.
//
// The package also contains the packing of the real time clock and of the
// joystick and mouse inputs into the words expected by the model's pins.
package peripherals
