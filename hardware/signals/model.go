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

package signals

// CPUProbe is the value of the debug outputs of the CPU core after an
// evaluation.
type CPUProbe struct {
	// the clock and enable signals of the CPU. the CPU clock is not
	// necessarily the same as the primary clock of the simulation
	Clock  bool
	Enable bool

	VPA    bool
	VDA    bool
	MCycle uint8

	PC      uint16
	DataIn  uint8
	Address uint32
	DBR     uint8

	A uint16
	X uint16
	Y uint16
}

// Audio is the value of the audio outputs after an evaluation.
type Audio struct {
	Left  uint16
	Right uint16
}

// Video is the value of the video outputs after an evaluation.
type Video struct {
	// pixel clock enable
	CE bool

	R uint8
	G uint8
	B uint8

	HBlank bool
	VBlank bool
	HSync  bool
	VSync  bool
}

// Model is the interface to the hardware model.
type Model interface {
	// input pins
	SetClock(bool)
	SetReset(bool)
	SetSoftReset(bool)

	// Eval settles the model logic after a change to the input pins
	Eval()

	// GotFinish returns true once the model has finished. Final should be
	// called once after GotFinish returns true
	GotFinish() bool
	Final()

	CPU() CPUProbe
	Audio() Audio
	Video() Video
}

// RTCPins is implemented by models with a real time clock input. The time is
// presented as two 32-bit words and the toggle pin is flipped to indicate
// that new values are on the pins.
type RTCPins interface {
	SetRTC(lo uint32, hi uint32)
	ToggleRTC()
}

// ControlPins is implemented by models with joystick, mouse and OSD menu
// inputs.
type ControlPins interface {
	SetJoystick(port int, value uint32)
	SetMouse(value uint32, ext uint32)
	SetMenu(bool)
}
