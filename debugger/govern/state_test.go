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

package govern_test

import (
	"testing"

	"github.com/theypsilon-test/TK2000-MiSTer/debugger/govern"
	"github.com/theypsilon-test/TK2000-MiSTer/test"
)

func TestStateIntegrity(t *testing.T) {
	test.ExpectSuccess(t, govern.StateIntegrity(govern.Running, govern.Normal))
	test.ExpectSuccess(t, govern.StateIntegrity(govern.Paused, govern.PausedOnMismatch))
	test.ExpectSuccess(t, govern.StateIntegrity(govern.Paused, govern.PausedByUser))
	test.ExpectFailure(t, govern.StateIntegrity(govern.Running, govern.PausedByUser))
	test.ExpectFailure(t, govern.StateIntegrity(govern.Ending, govern.PausedOnMismatch))
}

func TestStrings(t *testing.T) {
	test.ExpectEquality(t, govern.Ending.String(), "Ending")
	test.ExpectEquality(t, govern.PausedOnMismatch.String(), "Paused on trace mismatch")
	test.ExpectEquality(t, govern.ModeHeadless.String(), "Headless")
}
