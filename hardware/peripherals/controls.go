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

package peripherals

import (
	"fmt"
	"strings"
	"sync"

	"github.com/theypsilon-test/TK2000-MiSTer/hardware/signals"
)

// Button is one of the digital inputs of the machine.
type Button int

// List of buttons. The value of each button is also its bit position in the
// joystick word.
const (
	Right Button = iota
	Left
	Down
	Up
	A
	B
	X
	Y
	L
	R
	Select
	Start
	Menu
)

// NumButtons is the number of values in the list of buttons.
const NumButtons = 13

var buttonNames = [NumButtons]string{"RIGHT", "LEFT", "DOWN", "UP", "A", "B", "X", "Y", "L", "R", "SELECT", "START", "MENU"}

func (b Button) String() string {
	if b < 0 || b >= NumButtons {
		return fmt.Sprintf("button %d", int(b))
	}
	return buttonNames[b]
}

// ParseButton returns the button with the given name. Case insensitive.
func ParseButton(s string) (Button, error) {
	for i, n := range buttonNames {
		if strings.EqualFold(s, n) {
			return Button(i), nil
		}
	}
	return 0, fmt.Errorf("peripherals: unknown button %q", s)
}

// the mouse moves two units per frame for each direction pressed
const mouseSpeed = 2

// Controls maps the buttons on to the joystick and mouse pins of the model.
// The directional buttons and the A and B buttons also drive the mouse.
//
// Buttons can be pressed from any goroutine. The state of the buttons is
// packed into the words sent to the model by Latch(), which should be called
// once per frame. The latched words are put on the model's pins in
// BeforeEval(), which satisfies the Input interface.
type Controls struct {
	crit    sync.Mutex
	pressed [NumButtons]bool

	pins signals.ControlPins

	joystick uint32
	mouse    uint32
	mouseExt uint32
	menu     bool

	// the mouse clock bit toggles on every latch
	mouseClock bool
}

// NewControls is the preferred method of initialisation for the Controls
// type. The pins argument can be nil, in which case the packed values are
// still available but are not sent anywhere.
func NewControls(pins signals.ControlPins) *Controls {
	return &Controls{pins: pins}
}

// Press sets the state of a button.
func (c *Controls) Press(b Button, pressed bool) {
	if b < 0 || b >= NumButtons {
		return
	}
	c.crit.Lock()
	defer c.crit.Unlock()
	c.pressed[b] = pressed
}

// Latch packs the current state of the buttons.
func (c *Controls) Latch() {
	c.crit.Lock()
	pressed := c.pressed
	c.crit.Unlock()

	c.joystick = 0
	for i, p := range pressed {
		if p {
			c.joystick |= 1 << i
		}
	}
	c.menu = pressed[Menu]

	var dx, dy int8
	if pressed[Left] {
		dx = -mouseSpeed
	}
	if pressed[Right] {
		dx = mouseSpeed
	}
	if pressed[Up] {
		dy = mouseSpeed
	}
	if pressed[Down] {
		dy = -mouseSpeed
	}

	var buttons uint32
	if pressed[A] {
		buttons |= 0x01
	}
	if pressed[B] {
		buttons |= 0x02
	}

	c.mouse = buttons | uint32(uint8(dx))<<8 | uint32(uint8(dy))<<16
	if c.mouseClock {
		c.mouse |= 1 << 24
	}
	c.mouseClock = !c.mouseClock

	c.mouseExt = uint32(uint8(dx)) + buttons<<8
}

// BeforeEval implements the Input interface.
func (c *Controls) BeforeEval() {
	if c.pins == nil {
		return
	}
	c.pins.SetMenu(c.menu)
	c.pins.SetJoystick(0, c.joystick)
	c.pins.SetJoystick(1, c.joystick)
	c.pins.SetMouse(c.mouse, c.mouseExt)
}

// Joystick returns the most recently latched joystick word. Both joystick
// ports receive the same value.
func (c *Controls) Joystick() uint32 {
	return c.joystick
}

// Mouse returns the most recently latched PS/2 mouse words.
func (c *Controls) Mouse() (uint32, uint32) {
	return c.mouse, c.mouseExt
}
