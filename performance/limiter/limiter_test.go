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

package limiter_test

import (
	"testing"
	"time"

	"github.com/theypsilon-test/TK2000-MiSTer/performance/limiter"
	"github.com/theypsilon-test/TK2000-MiSTer/test"
)

func TestBadRate(t *testing.T) {
	_, err := limiter.NewLimiter(0)
	test.ExpectFailure(t, err)
	_, err = limiter.NewLimiter(-1)
	test.ExpectFailure(t, err)
}

func TestWait(t *testing.T) {
	lim, err := limiter.NewLimiter(100)
	test.DemandSuccess(t, err)
	defer lim.Stop()
	test.ExpectEquality(t, lim.String(), "100/s")

	start := time.Now()
	for range 5 {
		lim.Wait()
	}

	// five triggers at 100 per second cannot happen in less than 50ms
	test.ExpectSuccess(t, time.Since(start) >= 45*time.Millisecond)
}

func TestHasWaited(t *testing.T) {
	lim, err := limiter.NewLimiter(1)
	test.DemandSuccess(t, err)
	defer lim.Stop()

	test.ExpectFailure(t, lim.HasWaited())

	lim.SetLimit(1000)
	lim.SetLimit(0)
	test.ExpectEquality(t, lim.String(), "1000/s")
	time.Sleep(20 * time.Millisecond)
	test.ExpectSuccess(t, lim.HasWaited())
}
