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
	"fmt"
	"strconv"
	"strings"
)

func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "", "0", "false":
		return false, nil
	case "1", "true":
		return true, nil
	}
	return false, fmt.Errorf("not a boolean value (%s)", s)
}

func parseUint(s string, bits int) (uint64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseUint(s, 0, bits)
}

// the parsing function for each column
var parsers = map[string]func(rw *row, s string) error{
	"enable": func(rw *row, s string) (err error) {
		rw.cpu.Enable, err = parseBool(s)
		return err
	},
	"clk": func(rw *row, s string) (err error) {
		rw.cpu.Clock, err = parseBool(s)
		return err
	},
	"vpa": func(rw *row, s string) (err error) {
		rw.cpu.VPA, err = parseBool(s)
		return err
	},
	"vda": func(rw *row, s string) (err error) {
		rw.cpu.VDA, err = parseBool(s)
		return err
	},
	"mcycle": func(rw *row, s string) error {
		v, err := parseUint(s, 8)
		rw.cpu.MCycle = uint8(v)
		return err
	},
	"pc": func(rw *row, s string) error {
		v, err := parseUint(s, 16)
		rw.cpu.PC = uint16(v)
		return err
	},
	"di": func(rw *row, s string) error {
		v, err := parseUint(s, 8)
		rw.cpu.DataIn = uint8(v)
		return err
	},
	"addr": func(rw *row, s string) error {
		v, err := parseUint(s, 24)
		rw.cpu.Address = uint32(v)
		return err
	},
	"dbr": func(rw *row, s string) error {
		v, err := parseUint(s, 8)
		rw.cpu.DBR = uint8(v)
		return err
	},
	"a": func(rw *row, s string) error {
		v, err := parseUint(s, 16)
		rw.cpu.A = uint16(v)
		return err
	},
	"x": func(rw *row, s string) error {
		v, err := parseUint(s, 16)
		rw.cpu.X = uint16(v)
		return err
	},
	"y": func(rw *row, s string) error {
		v, err := parseUint(s, 16)
		rw.cpu.Y = uint16(v)
		return err
	},
	"audio_l": func(rw *row, s string) error {
		v, err := parseUint(s, 16)
		rw.audio.Left = uint16(v)
		return err
	},
	"audio_r": func(rw *row, s string) error {
		v, err := parseUint(s, 16)
		rw.audio.Right = uint16(v)
		return err
	},
	"ce_pixel": func(rw *row, s string) (err error) {
		rw.video.CE, err = parseBool(s)
		return err
	},
	"r": func(rw *row, s string) error {
		v, err := parseUint(s, 8)
		rw.video.R = uint8(v)
		return err
	},
	"g": func(rw *row, s string) error {
		v, err := parseUint(s, 8)
		rw.video.G = uint8(v)
		return err
	},
	"b": func(rw *row, s string) error {
		v, err := parseUint(s, 8)
		rw.video.B = uint8(v)
		return err
	},
	"hb": func(rw *row, s string) (err error) {
		rw.video.HBlank, err = parseBool(s)
		return err
	},
	"vb": func(rw *row, s string) (err error) {
		rw.video.VBlank, err = parseBool(s)
		return err
	},
	"hs": func(rw *row, s string) (err error) {
		rw.video.HSync, err = parseBool(s)
		return err
	},
	"vs": func(rw *row, s string) (err error) {
		rw.video.VSync, err = parseBool(s)
		return err
	},
}
