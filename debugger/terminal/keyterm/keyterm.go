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

//go:build !windows

package keyterm

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/term"
	"github.com/theypsilon-test/TK2000-MiSTer/debugger/terminal"
	"github.com/theypsilon-test/TK2000-MiSTer/debugger/terminal/ansi"
)

// KeyTerminal implements the terminal.Terminal interface.
type KeyTerminal struct {
	tty    *term.Term
	output io.Writer

	silenced bool
}

// NewKeyTerminal is the preferred method of initialisation for the
// KeyTerminal type. The terminal is not changed until Initialise() is called.
func NewKeyTerminal() *KeyTerminal {
	return &KeyTerminal{
		output: os.Stdout,
	}
}

// Initialise implements the terminal.Terminal interface.
func (kt *KeyTerminal) Initialise() error {
	tty, err := term.Open("/dev/tty", term.CBreakMode)
	if err != nil {
		return fmt.Errorf("keyterm: %w", err)
	}
	kt.tty = tty
	return nil
}

// CleanUp implements the terminal.Terminal interface. The terminal is
// returned to the mode it was in before Initialise() was called.
func (kt *KeyTerminal) CleanUp() {
	if kt.tty == nil {
		return
	}
	io.WriteString(kt.output, ansi.NormalPen)
	_ = kt.tty.Restore()
	_ = kt.tty.Close()
	kt.tty = nil
}

// Silence implements the terminal.Terminal interface.
func (kt *KeyTerminal) Silence(silenced bool) {
	kt.silenced = silenced
}

// IsInteractive implements the terminal.Input interface.
func (kt *KeyTerminal) IsInteractive() bool {
	return true
}

// TermPrintLine implements the terminal.Output interface.
func (kt *KeyTerminal) TermPrintLine(style terminal.Style, s string) {
	if kt.silenced && style != terminal.StyleError {
		return
	}

	s = strings.TrimRight(s, "\n")

	switch style {
	case terminal.StyleEcho:
		s = ansi.PenStyles["bold"] + s
	case terminal.StyleHelp:
		s = ansi.DimPens["white"] + s
	case terminal.StyleError:
		s = ansi.Pens["red"] + "* " + s
	case terminal.StyleTrace:
		s = ansi.Pens["yellow"] + s
	case terminal.StyleLog:
		s = ansi.DimPens["cyan"] + s
	}

	io.WriteString(kt.output, "\r"+ansi.ClearLine+s+ansi.NormalPen+"\n")
}

// TermRead implements the terminal.Input interface.
func (kt *KeyTerminal) TermRead(prompt terminal.Prompt) (string, error) {
	if kt.tty == nil {
		return "", fmt.Errorf("keyterm: terminal not initialised")
	}

	if !kt.silenced {
		io.WriteString(kt.output, "\r"+ansi.ClearLine+ansi.PenStyles["bold"]+prompt.String()+ansi.NormalPen)
	}

	b := make([]byte, 1)
	for {
		if _, err := kt.tty.Read(b); err != nil {
			return "", fmt.Errorf("keyterm: %w", err)
		}

		switch b[0] {
		case keyInterrupt:
			return "", terminal.UserQuit
		case keyEOT:
			return "", io.EOF
		case keyCommandLine:
			return kt.readLine()
		}

		if cmd, ok := Keys[b[0]]; ok {
			return cmd, nil
		}
	}
}

// readLine reads a complete command. The characters are echoed to the
// terminal as they are typed.
func (kt *KeyTerminal) readLine() (string, error) {
	io.WriteString(kt.output, string(keyCommandLine))

	var line []byte
	b := make([]byte, 1)
	for {
		if _, err := kt.tty.Read(b); err != nil {
			return "", fmt.Errorf("keyterm: %w", err)
		}

		switch b[0] {
		case keyInterrupt:
			return "", terminal.UserQuit
		case keyCarriageReturn, keyLineFeed:
			io.WriteString(kt.output, "\n")
			return strings.TrimSpace(string(line)), nil
		case keyBackspace, keyDelete:
			if len(line) > 0 {
				line = line[:len(line)-1]
				io.WriteString(kt.output, "\b \b")
			}
		default:
			if b[0] >= ' ' {
				line = append(line, b[0])
				kt.output.Write(b)
			}
		}
	}
}
