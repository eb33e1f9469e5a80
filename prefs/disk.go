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

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"maps"
	"os"
	"slices"
	"strings"
)

// DefaultPrefsFile is the name of the preferences file used by all packages
// unless there is a good reason not to.
const DefaultPrefsFile = "preferences"

// NoPrefsFile is returned by Load() when the preferences file does not exist.
var NoPrefsFile = errors.New("prefs: no preferences file")

// the separator between key and value in the preferences file
const separator = " :: "

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]Pref

	// keys whose value was taken from the command line
	overridden map[string]bool
}

// NewDisk is the preferred method of initialisation for the Disk type. The
// path argument can be empty, in which case the Disk is never saved or loaded.
func NewDisk(path string) *Disk {
	return &Disk{
		path:       path,
		entries:    make(map[string]Pref),
		overridden: make(map[string]bool),
	}
}

func (dsk *Disk) String() string {
	s := strings.Builder{}
	for _, k := range slices.Sorted(maps.Keys(dsk.entries)) {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, separator, dsk.entries[k]))
	}
	return s.String()
}

// Add preference value to the list of values to store/load. If the key is
// present in the top group of the command line stack then the value is set
// from there.
func (dsk *Disk) Add(key string, p Pref) error {
	if strings.Contains(key, separator) || strings.ContainsAny(key, " \n") {
		return fmt.Errorf("prefs: illegal key %q", key)
	}
	if _, ok := dsk.entries[key]; ok {
		return fmt.Errorf("prefs: key %q already added", key)
	}
	dsk.entries[key] = p

	if ok, v := GetCommandLinePref(key); ok {
		if err := p.Set(v); err != nil {
			return fmt.Errorf("prefs: %s: %w", key, err)
		}
		dsk.overridden[key] = true
	}

	return nil
}

// Reset all preference values to the zero value of their type.
func (dsk *Disk) Reset() error {
	for k, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return fmt.Errorf("prefs: %s: %w", k, err)
		}
	}
	return nil
}

// Save preference values to disk. Entries in the file that do not belong to
// this Disk instance are preserved.
func (dsk *Disk) Save() error {
	if dsk.path == "" {
		return nil
	}

	lines := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err == nil {
		err = parse(f, func(k, v string) {
			lines[k] = v
		})
		f.Close()
		if err != nil {
			return fmt.Errorf("prefs: %w", err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("prefs: %w", err)
	}

	for k, p := range dsk.entries {
		lines[k] = p.String()
	}

	f, err = os.Create(dsk.path)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, k := range slices.Sorted(maps.Keys(lines)) {
		fmt.Fprintf(w, "%s%s%s\n", k, separator, lines[k])
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	return nil
}

// Load preference values from disk. Returns NoPrefsFile if the file does not
// exist. Values set from the command line stack are not overwritten.
func (dsk *Disk) Load() error {
	if dsk.path == "" {
		return nil
	}

	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return NoPrefsFile
		}
		return fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	return dsk.read(f)
}

func (dsk *Disk) read(r io.Reader) error {
	var setErr error
	err := parse(r, func(k, v string) {
		if setErr != nil {
			return
		}
		if dsk.overridden[k] {
			return
		}
		if p, ok := dsk.entries[k]; ok {
			if err := p.Set(v); err != nil {
				setErr = fmt.Errorf("prefs: %s: %w", k, err)
			}
		}
	})
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}
	return setErr
}

// parse each line of the reader, calling the function with the key and value
// of every well formed line.
func parse(r io.Reader, f func(k, v string)) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		k, v, ok := strings.Cut(scanner.Text(), separator)
		if !ok {
			continue
		}
		f(k, v)
	}
	return scanner.Err()
}
