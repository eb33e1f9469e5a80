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

package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with the OS/build specific paths. The directory part is
// created if it does not exist.
//
// The subPth argument should not include the leading config directory and an
// empty file argument returns the directory only.
func ResourcePath(subPth string, file string) (string, error) {
	base, err := getBasePath(subPth)
	if err != nil {
		return "", fmt.Errorf("paths: %w", err)
	}
	return filepath.Join(base, file), nil
}

func mkdir(pth string) (string, error) {
	if _, err := os.Stat(pth); err == nil {
		return pth, nil
	}
	if err := os.MkdirAll(pth, 0700); err != nil {
		return "", err
	}
	return pth, nil
}

// UniqueFilename creates a filename that (assuming a functioning clock)
// should not collide with any existing file. The prepend string is the kind
// of file (eg. "screenshot") and label is an optional description, such as
// the name of the replay file being simulated.
//
// Note that the returned filename does not include an extension.
func UniqueFilename(prepend string, label string) string {
	n := time.Now()
	timestamp := fmt.Sprintf("%04d%02d%02d_%02d%02d%02d", n.Year(), n.Month(), n.Day(), n.Hour(), n.Minute(), n.Second())

	label = strings.TrimSuffix(filepath.Base(strings.TrimSpace(label)), filepath.Ext(label))
	if label == "" || label == "." {
		return fmt.Sprintf("%s_%s", prepend, timestamp)
	}
	return fmt.Sprintf("%s_%s_%s", prepend, label, timestamp)
}
