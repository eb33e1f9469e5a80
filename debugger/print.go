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

package debugger

import (
	"fmt"
	"strings"

	"github.com/theypsilon-test/TK2000-MiSTer/debugger/terminal"
)

// printLine is a wrapper for the terminal's TermPrintLine().
func (dbg *Debugger) printLine(sty terminal.Style, s string, a ...any) {
	dbg.term.TermPrintLine(sty, fmt.Sprintf(s, a...))
}

// styleWriter is an io.Writer that prints every complete line written to it
// to the terminal in the given style.
type styleWriter struct {
	dbg *Debugger
	sty terminal.Style
}

func (dbg *Debugger) writer(sty terminal.Style) styleWriter {
	return styleWriter{dbg: dbg, sty: sty}
}

func (w styleWriter) Write(p []byte) (int, error) {
	for _, l := range strings.Split(strings.TrimSuffix(string(p), "\n"), "\n") {
		w.dbg.term.TermPrintLine(w.sty, l)
	}
	return len(p), nil
}
