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

package terminal

import (
	"strings"

	"github.com/theypsilon-test/TK2000-MiSTer/debugger/govern"
)

// Prompt specifies the prompt text and the state of the simulation at the
// time the prompt was created.
type Prompt struct {
	Content string
	State   govern.State
}

// String returns the prompt with "standard" decoration. Good for terminals
// with no graphical capabilities at all.
func (p Prompt) String() string {
	s := strings.Builder{}
	s.WriteString("[ ")
	s.WriteString(strings.TrimSpace(p.Content))
	s.WriteString(" ]")

	if p.State == govern.Running {
		s.WriteString(" > ")
	} else {
		s.WriteString(" >> ")
	}

	return s.String()
}
