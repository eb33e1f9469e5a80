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

//go:build windows

package keyterm

import (
	"fmt"

	"github.com/theypsilon-test/TK2000-MiSTer/debugger/terminal"
)

// KeyTerminal is not available on windows.
type KeyTerminal struct{}

// NewKeyTerminal returns a KeyTerminal that will fail to initialise.
func NewKeyTerminal() *KeyTerminal {
	return &KeyTerminal{}
}

// Initialise implements the terminal.Terminal interface.
func (kt *KeyTerminal) Initialise() error {
	return fmt.Errorf("keyterm: key terminal not available on windows")
}

// CleanUp implements the terminal.Terminal interface.
func (kt *KeyTerminal) CleanUp() {}

// Silence implements the terminal.Terminal interface.
func (kt *KeyTerminal) Silence(silenced bool) {}

// IsInteractive implements the terminal.Input interface.
func (kt *KeyTerminal) IsInteractive() bool {
	return false
}

// TermPrintLine implements the terminal.Output interface.
func (kt *KeyTerminal) TermPrintLine(style terminal.Style, s string) {}

// TermRead implements the terminal.Input interface.
func (kt *KeyTerminal) TermRead(prompt terminal.Prompt) (string, error) {
	return "", fmt.Errorf("keyterm: key terminal not available on windows")
}
