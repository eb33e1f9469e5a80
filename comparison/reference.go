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

package comparison

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/theypsilon-test/TK2000-MiSTer/logger"
)

// prefixes used to label instruction lines in trace logs. the text following
// the prefix is the decoded instruction
var prefixes = []string{"CPU > ", "REF > ", "MAME > "}

// Reference is a list of decoded instruction lines.
type Reference struct {
	lines []string

	// index of the next line to be compared
	idx int
}

// NewReference reads the reference lines from the io.Reader.
func NewReference(r io.Reader) (*Reference, error) {
	ref := &Reference{}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if l, ok := instruction(scanner.Text()); ok {
			ref.lines = append(ref.lines, l)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("comparison: %w", err)
	}

	return ref, nil
}

// LoadReference reads the reference lines from the named file.
func LoadReference(filename string) (*Reference, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("comparison: %w", err)
	}
	defer f.Close()

	ref, err := NewReference(f)
	if err != nil {
		return nil, err
	}

	logger.Logf(logger.Allow, "comparison", "%d reference lines from %s", len(ref.lines), filename)

	return ref, nil
}

// instruction returns the decoded instruction part of a trace line. Returns
// false if the line does not contain an instruction.
func instruction(line string) (string, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "DIFF") {
		return "", false
	}

	for _, p := range prefixes {
		if _, after, ok := strings.Cut(line, p); ok {
			return after, true
		}
	}

	// register lines
	if strings.Contains(line, "PC=") && !strings.Contains(line, "???") {
		return "", false
	}

	return line, true
}

// Compare implements the tracer.Comparator interface. Lines beyond the end of
// the reference always match.
func (ref *Reference) Compare(line string) (string, bool) {
	if ref.idx >= len(ref.lines) {
		if ref.idx == len(ref.lines) {
			logger.Logf(logger.Allow, "comparison", "reference exhausted after %d lines", ref.idx)
			ref.idx++
		}
		return "", true
	}

	r := ref.lines[ref.idx]
	ref.idx++
	return r, r == line
}

// Len returns the number of lines in the reference.
func (ref *Reference) Len() int {
	return len(ref.lines)
}

// Rewind to the start of the reference.
func (ref *Reference) Rewind() {
	ref.idx = 0
}
