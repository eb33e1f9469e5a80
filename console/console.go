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

// Package console is the debug console of the simulation. It keeps the most
// recent lines of the instruction trace in memory so that they can be
// reviewed when the simulation is paused. Lines can also be echoed to an
// io.Writer as they arrive.
package console

import (
	"fmt"
	"io"
	"sync"
)

// Console is a bounded list of trace lines. It satisfies the tracer.Sink
// interface.
type Console struct {
	crit sync.Mutex

	// ring of lines. oldest is the index of the oldest line and used is the
	// number of lines in the ring
	lines  []string
	oldest int
	used   int

	// total number of lines ever received. this is not reset by Clear()
	total int

	echo io.Writer

	// the first echo error. echoing stops once an error has occurred
	echoErr error
}

// NewConsole is the preferred method of initialisation for the Console type.
func NewConsole(maxLines int) (*Console, error) {
	if maxLines <= 0 {
		return nil, fmt.Errorf("console: maximum number of lines must be positive (%d)", maxLines)
	}
	return &Console{
		lines: make([]string, maxLines),
	}, nil
}

// TraceLine implements the tracer.Sink interface.
func (c *Console) TraceLine(line string) {
	c.crit.Lock()
	defer c.crit.Unlock()

	c.total++

	if c.used < len(c.lines) {
		c.lines[(c.oldest+c.used)%len(c.lines)] = line
		c.used++
	} else {
		c.lines[c.oldest] = line
		c.oldest = (c.oldest + 1) % len(c.lines)
	}

	if c.echo != nil && c.echoErr == nil {
		if _, err := io.WriteString(c.echo, line+"\n"); err != nil {
			c.echoErr = fmt.Errorf("console: %w", err)
		}
	}
}

// SetEcho prints new lines to the io.Writer as they arrive. A nil io.Writer
// turns echoing off. Any previous echo error is forgotten.
func (c *Console) SetEcho(w io.Writer) {
	c.crit.Lock()
	defer c.crit.Unlock()
	c.echo = w
	c.echoErr = nil
}

// Err returns the first error encountered when echoing.
func (c *Console) Err() error {
	c.crit.Lock()
	defer c.crit.Unlock()
	return c.echoErr
}

// Clear all lines from the console.
func (c *Console) Clear() {
	c.crit.Lock()
	defer c.crit.Unlock()
	clear(c.lines)
	c.oldest = 0
	c.used = 0
}

// Len returns the number of lines in the console.
func (c *Console) Len() int {
	c.crit.Lock()
	defer c.crit.Unlock()
	return c.used
}

// Total returns the number of lines received since the console was created.
func (c *Console) Total() int {
	c.crit.Lock()
	defer c.crit.Unlock()
	return c.total
}

// Write the contents of the console to the io.Writer.
func (c *Console) Write(w io.Writer) error {
	return c.Tail(w, len(c.lines))
}

// Tail writes the last N lines to the io.Writer. Writing stops at the first
// error.
func (c *Console) Tail(w io.Writer, number int) error {
	c.crit.Lock()
	defer c.crit.Unlock()

	number = max(0, min(number, c.used))
	for i := c.used - number; i < c.used; i++ {
		if _, err := io.WriteString(w, c.lines[(c.oldest+i)%len(c.lines)]+"\n"); err != nil {
			return fmt.Errorf("console: %w", err)
		}
	}
	return nil
}
