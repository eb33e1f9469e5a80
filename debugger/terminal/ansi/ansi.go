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

// Package ansi defines ANSI control codes for styles and colours.
package ansi

import (
	"fmt"
	"strings"
)

// ansi colours, by name.
var colours = map[string]int{
	"BLACK":   0,
	"RED":     1,
	"GREEN":   2,
	"YELLOW":  3,
	"BLUE":    4,
	"MAGENTA": 5,
	"CYAN":    6,
	"WHITE":   7,
	"NORMAL":  9,
}

// ansi attributes, by name. a value of zero means no attribute.
var attributes = map[string]int{
	"BOLD":      1,
	"UNDERLINE": 4,
	"INVERSE":   7,
	"STRIKE":    9,
	"NORMAL":    0,
}

// ansi target.
const (
	targetPen         = 3
	targetPaper       = 4
	targetBrightPen   = 9
	targetBrightPaper = 10
)

// Pens is the table of colours to be used for text.
var Pens = map[string]string{}

// DimPens is the table of pastel colours to be used for text.
var DimPens = map[string]string{}

// PenStyles is the table of styles to be used for text.
var PenStyles = map[string]string{}

// NormalPen is the CSI sequence for regular text.
var NormalPen = "\033[m"

func init() {
	for _, c := range []string{"red", "green", "yellow", "blue", "magenta", "cyan", "white"} {
		Pens[c], _ = ColorBuild(c, "", "", true, false)
		DimPens[c], _ = ColorBuild(c, "", "", false, false)
	}
	for _, a := range []string{"bold", "underline"} {
		PenStyles[a], _ = ColorBuild("", "", a, false, false)
	}
}

// ColorBuild creates the ANSI sequence to create the pen with the correct
// foreground/background colour and attribute.
func ColorBuild(pen, paper, attribute string, brightPen, brightPaper bool) (string, error) {
	var params []string

	if pen != "" {
		c, ok := colours[strings.ToUpper(pen)]
		if !ok {
			return "", fmt.Errorf("ansi: unknown pen (%s)", pen)
		}
		target := targetPen
		if brightPen {
			target = targetBrightPen
		}
		params = append(params, fmt.Sprintf("%d%d", target, c))
	}

	if paper != "" {
		c, ok := colours[strings.ToUpper(paper)]
		if !ok {
			return "", fmt.Errorf("ansi: unknown paper (%s)", paper)
		}
		target := targetPaper
		if brightPaper {
			target = targetBrightPaper
		}
		params = append(params, fmt.Sprintf("%d%d", target, c))
	}

	if attribute != "" {
		a, ok := attributes[strings.ToUpper(attribute)]
		if !ok {
			return "", fmt.Errorf("ansi: unknown attribute (%s)", attribute)
		}
		if a != 0 {
			params = append(params, fmt.Sprintf("%d", a))
		}
	}

	return fmt.Sprintf("\033[%sm", strings.Join(params, ";")), nil
}

// ClearLine is the CSI sequence to clear the entire of the current line.
const ClearLine = "\033[2K"
