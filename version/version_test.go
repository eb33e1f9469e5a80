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

package version

import (
	"runtime/debug"
	"strings"
	"testing"

	"github.com/theypsilon-test/TK2000-MiSTer/test"
)

func TestReadVCS(t *testing.T) {
	inf := readVCS([]debug.BuildSetting{
		{Key: "vcs", Value: "git"},
		{Key: "vcs.revision", Value: "abc123"},
		{Key: "vcs.modified", Value: "true"},
	})
	test.ExpectSuccess(t, inf.present)
	test.ExpectEquality(t, inf.revision, "abc123")
	test.ExpectSuccess(t, inf.modified)

	inf = readVCS(nil)
	test.ExpectFailure(t, inf.present)
}

func TestDecide(t *testing.T) {
	v, r := decide("", vcsInfo{})
	test.ExpectEquality(t, v, "local")
	test.ExpectEquality(t, r, "no revision information")

	v, r = decide("", vcsInfo{present: true, revision: "abc123", modified: true})
	test.ExpectEquality(t, v, "unreleased")
	test.ExpectEquality(t, r, "abc123+dirty")

	v, r = decide("v0.1.0", vcsInfo{present: true, revision: "abc123"})
	test.ExpectEquality(t, v, "v0.1.0")
	test.ExpectEquality(t, r, "abc123")
}

func TestString(t *testing.T) {
	test.ExpectSuccess(t, strings.HasPrefix(String(), ApplicationName+" "))
}
