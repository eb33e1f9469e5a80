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

package replay

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/theypsilon-test/TK2000-MiSTer/hardware/signals"
	"github.com/theypsilon-test/TK2000-MiSTer/logger"
)

type row struct {
	cpu   signals.CPUProbe
	audio signals.Audio
	video signals.Video
}

// Replay implements the signals.Model interface. It also implements the
// optional RTCPins and ControlPins interfaces, recording the values it
// receives.
type Replay struct {
	rows []row

	// index of the row on the output pins. a value of -1 means that no row
	// has been presented yet
	idx int

	clk       bool
	lastClk   bool
	reset     bool
	softReset bool
	finished  bool

	// values received on the optional input pins
	RTC       [2]uint32
	RTCToggle bool
	Joystick  [2]uint32
	Mouse     [2]uint32
	Menu      bool
}

// NewReplay reads a recording from the io.Reader.
func NewReplay(r io.Reader) (*Replay, error) {
	rd := csv.NewReader(r)
	rd.Comment = '#'
	rd.TrimLeadingSpace = true

	header, err := rd.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("replay: no header row")
		}
		return nil, fmt.Errorf("replay: %w", err)
	}

	cols := make(map[string]int)
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(h))
		if _, ok := parsers[h]; !ok {
			return nil, fmt.Errorf("replay: unknown column %q", h)
		}
		cols[h] = i
	}

	m := &Replay{idx: -1}

	for {
		rec, err := rd.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("replay: %w", err)
		}

		var rw row
		for name, i := range cols {
			if err := parsers[name](&rw, strings.TrimSpace(rec[i])); err != nil {
				line, _ := rd.FieldPos(i)
				return nil, fmt.Errorf("replay: line %d: %s: %w", line, name, err)
			}
		}
		m.rows = append(m.rows, rw)
	}

	return m, nil
}

// Load a recording from the named file.
func Load(filename string) (*Replay, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	defer f.Close()

	m, err := NewReplay(f)
	if err != nil {
		return nil, err
	}

	logger.Logf(logger.Allow, "replay", "%d cycles from %s", len(m.rows), filename)

	return m, nil
}

func (m *Replay) String() string {
	return fmt.Sprintf("replay row %d of %d", m.idx+1, len(m.rows))
}

// Len returns the number of rows in the recording.
func (m *Replay) Len() int {
	return len(m.rows)
}

// SetClock implements the signals.Model interface.
func (m *Replay) SetClock(v bool) {
	m.clk = v
}

// SetReset implements the signals.Model interface. Rows are not presented
// while reset is asserted.
func (m *Replay) SetReset(v bool) {
	m.reset = v
}

// SetSoftReset implements the signals.Model interface. The current row is
// held while soft reset is asserted.
func (m *Replay) SetSoftReset(v bool) {
	m.softReset = v
}

// Eval implements the signals.Model interface.
func (m *Replay) Eval() {
	rising := m.clk && !m.lastClk
	m.lastClk = m.clk

	if !rising || m.reset || m.softReset || m.finished {
		return
	}

	if m.idx+1 >= len(m.rows) {
		m.finished = true
		return
	}
	m.idx++
}

// GotFinish implements the signals.Model interface.
func (m *Replay) GotFinish() bool {
	return m.finished
}

// Final implements the signals.Model interface.
func (m *Replay) Final() {
	logger.Logf(logger.Allow, "replay", "finished after %d cycles", len(m.rows))
}

func (m *Replay) current() row {
	if m.idx < 0 || m.idx >= len(m.rows) {
		return row{}
	}
	return m.rows[m.idx]
}

// CPU implements the signals.Model interface.
func (m *Replay) CPU() signals.CPUProbe {
	return m.current().cpu
}

// Audio implements the signals.Model interface.
func (m *Replay) Audio() signals.Audio {
	return m.current().audio
}

// Video implements the signals.Model interface.
func (m *Replay) Video() signals.Video {
	return m.current().video
}

// SetRTC implements the signals.RTCPins interface.
func (m *Replay) SetRTC(lo uint32, hi uint32) {
	m.RTC = [2]uint32{lo, hi}
}

// ToggleRTC implements the signals.RTCPins interface.
func (m *Replay) ToggleRTC() {
	m.RTCToggle = !m.RTCToggle
}

// SetJoystick implements the signals.ControlPins interface.
func (m *Replay) SetJoystick(port int, value uint32) {
	if port >= 0 && port < len(m.Joystick) {
		m.Joystick[port] = value
	}
}

// SetMouse implements the signals.ControlPins interface.
func (m *Replay) SetMouse(value uint32, ext uint32) {
	m.Mouse = [2]uint32{value, ext}
}

// SetMenu implements the signals.ControlPins interface.
func (m *Replay) SetMenu(v bool) {
	m.Menu = v
}
