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

// Package version reports the version and vcs revision of the program.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "tk2000sim"

// number is set by the linker for release builds:
//
//	go build -ldflags "-X github.com/theypsilon-test/TK2000-MiSTer/version.number=v0.1.0"
var number string

// set by init() from number and the build information.
var version string
var revision string

// the vcs settings of interest in the build information.
type vcsInfo struct {
	present  bool
	revision string
	modified bool
}

func readVCS(settings []debug.BuildSetting) vcsInfo {
	var inf vcsInfo
	for _, s := range settings {
		switch s.Key {
		case "vcs":
			inf.present = true
		case "vcs.revision":
			inf.revision = s.Value
		case "vcs.modified":
			inf.modified = s.Value == "true"
		}
	}
	return inf
}

// decide on the version and revision strings. if the version string is
// "unreleased" then the project has been built manually with vcs
// information. "local" means that there is no version number and no vcs
// information, which happens with "go run ."
func decide(number string, inf vcsInfo) (string, string) {
	rev := "no revision information"
	if inf.revision != "" {
		rev = inf.revision
		if inf.modified {
			rev = fmt.Sprintf("%s+dirty", rev)
		}
	}

	switch {
	case number != "":
		return number, rev
	case inf.present:
		return "unreleased", rev
	}
	return "local", rev
}

func init() {
	var inf vcsInfo
	if info, ok := debug.ReadBuildInfo(); ok {
		inf = readVCS(info.Settings)
	}
	version, revision = decide(number, inf)
}

// Version returns the version string, the revision string and whether this is
// a numbered release version. If release is true then the revision
// information should be used sparingly.
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// String returns a one line summary suitable for the VERSION mode.
func String() string {
	v, r, release := Version()
	if release {
		return fmt.Sprintf("%s %s", ApplicationName, v)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, v, r)
}
