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

package tracer

import (
	"io"
)

// Sink receives the lines of the trace.
type Sink interface {
	TraceLine(string)
}

// WriterSink writes each line of the trace to an io.Writer. The first write
// error is retained and subsequent lines are dropped.
type WriterSink struct {
	w   io.Writer
	err error
}

// NewWriterSink is the preferred method of initialisation for the WriterSink
// type.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// TraceLine implements the Sink interface.
func (s *WriterSink) TraceLine(line string) {
	if s.err != nil {
		return
	}
	_, s.err = io.WriteString(s.w, line+"\n")
}

// Err returns the first error encountered when writing.
func (s *WriterSink) Err() error {
	return s.err
}

type multiSink []Sink

func (m multiSink) TraceLine(line string) {
	for _, s := range m {
		s.TraceLine(line)
	}
}

// Sinks returns a Sink that sends every line to all of the sinks. Nil
// sinks are ignored.
func Sinks(sinks ...Sink) Sink {
	m := make(multiSink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			m = append(m, s)
		}
	}
	if len(m) == 1 {
		return m[0]
	}
	return m
}
