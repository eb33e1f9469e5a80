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
	"fmt"
	"maps"
	"slices"
	"strings"
)

var commandLineStack []map[string]string

// PushCommandLineStack parses a preferences string and adds it as a new group
// on the stack. Entries that are not of the form key::value are ignored.
func PushCommandLineStack(prefs string) {
	group := make(map[string]string)
	for p := range strings.SplitSeq(prefs, ";") {
		k, v, ok := strings.Cut(p, "::")
		if !ok || strings.Contains(v, "::") {
			continue
		}
		group[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	commandLineStack = append(commandLineStack, group)
}

// PopCommandLineStack forgets the most recent group added by
// PushCommandLineStack(). Returns the unused entries of the group as a
// preferences string, sorted by key.
func PopCommandLineStack() string {
	if len(commandLineStack) == 0 {
		return ""
	}

	popped := commandLineStack[len(commandLineStack)-1]
	commandLineStack = commandLineStack[:len(commandLineStack)-1]

	var s []string
	for _, k := range slices.Sorted(maps.Keys(popped)) {
		s = append(s, fmt.Sprintf("%s::%s", k, popped[k]))
	}
	return strings.Join(s, "; ")
}

// SizeCommandLineStack returns the number of groups on the stack.
func SizeCommandLineStack() int {
	return len(commandLineStack)
}

// GetCommandLinePref returns the value for the key in the top group of the
// stack. The entry is removed from the group once it has been returned.
func GetCommandLinePref(key string) (bool, string) {
	if len(commandLineStack) == 0 {
		return false, ""
	}

	top := commandLineStack[len(commandLineStack)-1]
	if v, ok := top[key]; ok {
		delete(top, key)
		return true, v
	}

	return false, ""
}
