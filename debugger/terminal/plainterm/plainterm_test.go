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

package plainterm_test

import (
	"io"
	"strings"
	"testing"

	"github.com/theypsilon-test/TK2000-MiSTer/debugger/govern"
	"github.com/theypsilon-test/TK2000-MiSTer/debugger/terminal"
	"github.com/theypsilon-test/TK2000-MiSTer/debugger/terminal/plainterm"
	"github.com/theypsilon-test/TK2000-MiSTer/test"
)

func TestRead(t *testing.T) {
	pt := plainterm.NewPlainTerminal(strings.NewReader("run\n  step 10 \nquit"), io.Discard)
	test.ExpectFailure(t, pt.IsInteractive())

	p := terminal.Prompt{Content: "0", State: govern.Paused}

	s, err := pt.TermRead(p)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "run")

	s, err = pt.TermRead(p)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "step 10")

	s, err = pt.TermRead(p)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "quit")

	_, err = pt.TermRead(p)
	test.ExpectEquality(t, err, io.EOF)
}

func TestPrint(t *testing.T) {
	w := &test.CompareWriter{}
	pt := plainterm.NewPlainTerminal(strings.NewReader(""), w)

	pt.TermPrintLine(terminal.StyleFeedback, "hello")
	pt.TermPrintLine(terminal.StyleEcho, "RUN")
	pt.TermPrintLine(terminal.StyleError, "bad")
	test.ExpectSuccess(t, w.Compare("hello\n* bad\n"))

	w.Clear()
	pt.Silence(true)
	pt.TermPrintLine(terminal.StyleFeedback, "hello")
	pt.TermPrintLine(terminal.StyleError, "bad")
	test.ExpectSuccess(t, w.Compare("* bad\n"))
}

func TestPrompt(t *testing.T) {
	p := terminal.Prompt{Content: " 123 ", State: govern.Paused}
	test.ExpectEquality(t, p.String(), "[ 123 ] >> ")
	p.State = govern.Running
	test.ExpectEquality(t, p.String(), "[ 123 ] > ")
}
