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
	"strings"
	"testing"
	"time"

	"github.com/theypsilon-test/TK2000-MiSTer/hardware"
	"github.com/theypsilon-test/TK2000-MiSTer/hardware/model/replay"
	"github.com/theypsilon-test/TK2000-MiSTer/hardware/peripherals"
	"github.com/theypsilon-test/TK2000-MiSTer/hardware/preferences"
	"github.com/theypsilon-test/TK2000-MiSTer/test"
)

func TestParseProfile(t *testing.T) {
	p, err := ParseProfileString("")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, ProfileNone)

	p, err = ParseProfileString("cpu, Mem")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, ProfileCPU|ProfileMem)
	test.ExpectEquality(t, p.String(), "CPU,MEM")

	p, err = ParseProfileString("all")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p.String(), "ALL")

	_, err = ParseProfileString("cpu,gpu")
	test.ExpectFailure(t, err)
}

func TestCalcRate(t *testing.T) {
	rate, accuracy := CalcRate(24000000, 12000000, 1.0)
	test.ExpectEquality(t, rate, 12000000.0)
	test.ExpectEquality(t, accuracy, 50.0)

	rate, accuracy = CalcRate(24000000, 100, 0)
	test.ExpectEquality(t, rate, 0.0)
	test.ExpectEquality(t, accuracy, 0.0)
}

func TestRunProfilerError(t *testing.T) {
	err := RunProfiler(ProfileNone, "", func() error { return timedOut })
	test.ExpectEquality(t, err, timedOut)
}

func TestCheck(t *testing.T) {
	leadtime = time.Millisecond

	p, err := preferences.NewDefaultPreferences()
	test.DemandSuccess(t, err)
	p.BatchSize.Set(10)

	m, err := replay.NewReplay(strings.NewReader("pc\n0x1000\n0x1001\n"))
	test.DemandSuccess(t, err)

	sim, err := hardware.NewSimulation(p, m, peripherals.NullHooks(), nil)
	test.DemandSuccess(t, err)

	w := &test.CompareWriter{}
	test.ExpectSuccess(t, Check(w, ProfileNone, sim, "1s"))
	test.ExpectSuccess(t, sim.Finished())

	lines := w.Lines()
	test.DemandEquality(t, len(lines), 2)
	test.ExpectSuccess(t, strings.HasSuffix(lines[0], "%"), lines[0])
	test.ExpectEquality(t, lines[1], "simulation finished at time 51")

	test.ExpectFailure(t, Check(w, ProfileNone, sim, "soon"))
}
