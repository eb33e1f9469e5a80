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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/theypsilon-test/TK2000-MiSTer/debugger/govern"
	"github.com/theypsilon-test/TK2000-MiSTer/hardware"
)

// sentinal error returned by Run() loop.
var timedOut = errors.New("performance timed out")

// the leadtime before measurement begins. a variable so that tests can shorten
// it.
var leadtime = 2 * time.Second

// Check the performance of the simulation.
//
// The simulation will run for the specified duration and will create a cpu,
// memory profile, a trace (or a combination of those) as defined by the
// Profile argument. The simulation may finish before the duration has elapsed,
// in which case the rate is calculated over the time actually taken.
func Check(output io.Writer, profile Profile, sim *hardware.Simulation, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	var startTime uint64
	var startWall time.Time

	runner := func() error {
		// timerChan signals false when the leadtime has elapsed and true when
		// the measurement period has finished
		timerChan := make(chan bool, 2)
		lead := time.AfterFunc(leadtime, func() {
			timerChan <- false
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		})
		defer lead.Stop()

		startWall = time.Now()

		return sim.Run(func() (govern.State, error) {
			select {
			case v := <-timerChan:
				if v {
					return govern.Ending, timedOut
				}

				// the leadtime has concluded. the measurement begins now
				startTime = sim.Time()
				startWall = time.Now()
			default:
			}
			return govern.Running, nil
		})
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return fmt.Errorf("performance: %w", err)
	}

	elapsed := time.Since(startWall).Seconds()
	numCycles := sim.Time() - startTime
	rate, accuracy := CalcRate(sim.Prefs.ClockFreq.Get().(int), numCycles, elapsed)

	fmt.Fprintf(output, "%.2f MHz (%d cycles in %.2f seconds) %.1f%%\n", rate/1000000, numCycles, elapsed, accuracy)
	if sim.Finished() {
		fmt.Fprintf(output, "simulation finished at time %d\n", sim.Time())
	}

	return nil
}
