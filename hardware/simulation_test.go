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

package hardware_test

import (
	"fmt"
	"testing"

	"github.com/theypsilon-test/TK2000-MiSTer/debugger/govern"
	"github.com/theypsilon-test/TK2000-MiSTer/hardware"
	"github.com/theypsilon-test/TK2000-MiSTer/hardware/cpu/execution"
	"github.com/theypsilon-test/TK2000-MiSTer/hardware/peripherals"
	"github.com/theypsilon-test/TK2000-MiSTer/hardware/preferences"
	"github.com/theypsilon-test/TK2000-MiSTer/hardware/signals"
	"github.com/theypsilon-test/TK2000-MiSTer/test"
)

// events records the calls made by the simulation to the model and hooks
type events struct {
	log []string
}

func (e *events) add(s string, args ...any) {
	e.log = append(e.log, fmt.Sprintf(s, args...))
}

func (e *events) take() []string {
	l := e.log
	e.log = nil
	return l
}

type model struct {
	ev *events

	clk       bool
	reset     bool
	softReset bool

	softResetCalls []bool

	evals int

	// GotFinish() returns true once the number of evaluations reaches
	// finishAt. a value of zero means never
	finishAt int
	finals   int

	cpu   signals.CPUProbe
	audio signals.Audio
	video signals.Video
}

func (m *model) SetClock(v bool) { m.clk = v }
func (m *model) SetReset(v bool) { m.reset = v }
func (m *model) SetSoftReset(v bool) {
	m.softReset = v
	m.softResetCalls = append(m.softResetCalls, v)
}
func (m *model) Eval() {
	m.evals++
	m.ev.add("eval")
}
func (m *model) GotFinish() bool       { return m.finishAt > 0 && m.evals >= m.finishAt }
func (m *model) Final()                { m.finals++ }
func (m *model) CPU() signals.CPUProbe { return m.cpu }
func (m *model) Audio() signals.Audio  { return m.audio }
func (m *model) Video() signals.Video  { return m.video }

type rtcModel struct {
	model
	lo, hi  uint32
	toggles int
}

func (m *rtcModel) SetRTC(lo uint32, hi uint32) {
	m.lo = lo
	m.hi = hi
}

func (m *rtcModel) ToggleRTC() { m.toggles++ }

type storage struct{ ev *events }

func (s storage) BeforeEval(time uint64) { s.ev.add("storage.before %d", time) }
func (s storage) AfterEval()             { s.ev.add("storage.after") }

type input struct{ ev *events }

func (i input) BeforeEval() { i.ev.add("input.before") }

type bus struct {
	ev          *events
	downloading bool
}

func (b *bus) BeforeEval()       { b.ev.add("bus.before") }
func (b *bus) AfterEval()        { b.ev.add("bus.after") }
func (b *bus) Downloading() bool { return b.downloading }

type sampler struct {
	ev  *events
	obs []execution.BusObservation
}

func (s *sampler) Sample(o execution.BusObservation) {
	s.ev.add("sample")
	s.obs = append(s.obs, o)
}

type audioSink struct {
	samples [][2]uint16
}

func (a *audioSink) Clock(l uint16, r uint16) {
	a.samples = append(a.samples, [2]uint16{l, r})
}

type videoSink struct {
	colours []uint32
	hblank  int
}

func (v *videoSink) Clock(hb bool, vb bool, hs bool, vs bool, colour uint32) {
	v.colours = append(v.colours, colour)
	if hb {
		v.hblank++
	}
}

type fixture struct {
	ev      *events
	model   *model
	bus     *bus
	sampler *sampler
	sim     *hardware.Simulation
}

func newFixture(t *testing.T, prefs func(p *preferences.Preferences)) fixture {
	t.Helper()

	p, err := preferences.NewDefaultPreferences()
	test.DemandSuccess(t, err)
	if prefs != nil {
		prefs(p)
	}

	ev := &events{}
	f := fixture{
		ev:      ev,
		model:   &model{ev: ev},
		bus:     &bus{ev: ev},
		sampler: &sampler{ev: ev},
	}

	hooks := peripherals.Hooks{
		Storage: storage{ev: ev},
		Input:   input{ev: ev},
		Bus:     f.bus,
	}

	f.sim, err = hardware.NewSimulation(p, f.model, hooks, f.sampler)
	test.DemandSuccess(t, err)

	return f
}

func expectEvents(t *testing.T, got []string, expected ...string) {
	t.Helper()
	if !test.ExpectEquality(t, len(got), len(expected)) {
		t.Logf("events: %v", got)
		return
	}
	for i := range got {
		test.ExpectEquality(t, got[i], expected[i], i)
	}
}

func TestNoModel(t *testing.T) {
	p, err := preferences.NewDefaultPreferences()
	test.DemandSuccess(t, err)
	_, err = hardware.NewSimulation(p, nil, peripherals.NullHooks(), nil)
	test.ExpectFailure(t, err)
}

func TestHookOrder(t *testing.T) {
	f := newFixture(t, nil)

	// rising edge
	test.ExpectEquality(t, f.sim.Step(), govern.Running)
	test.ExpectSuccess(t, f.model.clk)
	expectEvents(t, f.ev.take(),
		"storage.before 0",
		"input.before",
		"bus.before",
		"eval",
		"sample",
		"bus.after",
		"storage.after",
	)

	// falling edge
	test.ExpectEquality(t, f.sim.Step(), govern.Running)
	test.ExpectFailure(t, f.model.clk)
	expectEvents(t, f.ev.take(), "eval", "sample")

	// storage is given the simulation time
	f.sim.Step()
	expectEvents(t, f.ev.take(),
		"storage.before 1",
		"input.before",
		"bus.before",
		"eval",
		"sample",
		"bus.after",
		"storage.after",
	)
}

func TestDownloading(t *testing.T) {
	f := newFixture(t, nil)
	f.bus.downloading = true

	f.sim.Step()
	expectEvents(t, f.ev.take(),
		"input.before",
		"bus.before",
		"eval",
		"sample",
		"bus.after",
		"storage.after",
	)
}

func TestTime(t *testing.T) {
	f := newFixture(t, nil)

	n, state := f.sim.RunFor(100)
	test.ExpectEquality(t, n, 100)
	test.ExpectEquality(t, state, govern.Running)
	test.ExpectEquality(t, f.sim.Time(), uint64(50))

	// one evaluation per edge
	test.ExpectEquality(t, f.model.evals, 100)

	f.sim.Reset()
	test.ExpectEquality(t, f.sim.Time(), uint64(0))
	test.ExpectSuccess(t, f.model.reset)

	// the first step after a reset is a rising edge
	f.sim.Step()
	test.ExpectSuccess(t, f.model.clk)
	test.ExpectEquality(t, f.sim.Time(), uint64(1))
}

func TestInitialReset(t *testing.T) {
	f := newFixture(t, nil)
	test.ExpectSuccess(t, f.model.reset)

	for f.sim.Time() < 48 {
		f.sim.Step()
		test.ExpectSuccess(t, f.model.reset)
	}

	// reset is released on the first step at time 48
	f.sim.Step()
	test.ExpectFailure(t, f.model.reset)

	// the tracer is told about the reset
	test.ExpectSuccess(t, f.sampler.obs[0].Reset)
	test.ExpectFailure(t, f.sampler.obs[len(f.sampler.obs)-1].Reset)
}

func TestInitialResetPreference(t *testing.T) {
	f := newFixture(t, func(p *preferences.Preferences) {
		p.InitialReset.Set(4)
	})

	f.sim.RunFor(7)
	test.ExpectEquality(t, f.sim.Time(), uint64(4))
	test.ExpectSuccess(t, f.model.reset)
	f.sim.Step()
	test.ExpectFailure(t, f.model.reset)
}

func TestSoftReset(t *testing.T) {
	f := newFixture(t, nil)

	// an even number of steps means the last step was a falling edge
	f.sim.RunFor(200)
	test.ExpectFailure(t, f.model.softReset)

	f.sim.SoftReset()

	// nothing happens until the next step
	test.ExpectFailure(t, f.model.softReset)

	t0 := f.sim.Time()
	f.sim.Step()
	test.ExpectSuccess(t, f.model.softReset)

	for i := 0; f.model.softReset && i < 1000; i++ {
		f.sim.Step()
	}
	test.ExpectFailure(t, f.model.softReset)

	// soft reset is held for 48 rising edges
	test.ExpectEquality(t, f.sim.Time()-t0, uint64(48))

	test.ExpectEquality(t, len(f.model.softResetCalls), 2)
	test.ExpectSuccess(t, f.model.softResetCalls[0])
	test.ExpectFailure(t, f.model.softResetCalls[1])

	// soft reset does not affect simulation time or the hard reset pin
	test.ExpectFailure(t, f.model.reset)
}

func TestHaltOnce(t *testing.T) {
	f := newFixture(t, nil)
	f.model.finishAt = 10

	n, state := f.sim.RunFor(100)
	test.ExpectEquality(t, state, govern.Ending)
	test.ExpectEquality(t, n, 10)
	test.ExpectEquality(t, f.model.finals, 1)
	test.ExpectSuccess(t, f.sim.Finished())

	// the model is not touched after it has finished
	f.ev.take()
	for range 10 {
		test.ExpectEquality(t, f.sim.Step(), govern.Ending)
	}
	test.ExpectEquality(t, f.model.finals, 1)
	test.ExpectEquality(t, f.model.evals, 10)
	test.ExpectEquality(t, len(f.ev.take()), 0)
}

func TestAudioVideo(t *testing.T) {
	f := newFixture(t, nil)
	f.model.audio = signals.Audio{Left: 0x1234, Right: 0x5678}
	f.model.video = signals.Video{CE: true, R: 0x11, G: 0x22, B: 0x33, HBlank: true}

	var a audioSink
	var v videoSink
	f.sim.AddAudioSink(&a)
	f.sim.AddVideoSink(&v)

	f.sim.RunFor(10)
	test.ExpectEquality(t, len(a.samples), 5)
	test.ExpectEquality(t, a.samples[0], [2]uint16{0x1234, 0x5678})
	test.ExpectEquality(t, len(v.colours), 5)
	test.ExpectEquality(t, v.colours[0], uint32(0xff332211))
	test.ExpectEquality(t, v.hblank, 5)

	// no pixels when the pixel clock is disabled
	f.model.video.CE = false
	f.sim.RunFor(10)
	test.ExpectEquality(t, len(v.colours), 5)
	test.ExpectEquality(t, len(a.samples), 10)
}

func TestAudioCapturePreference(t *testing.T) {
	f := newFixture(t, func(p *preferences.Preferences) {
		p.AudioCapture.Set(false)
	})

	var a audioSink
	f.sim.AddAudioSink(&a)
	f.sim.RunFor(10)
	test.ExpectEquality(t, len(a.samples), 0)
}

func TestObservation(t *testing.T) {
	f := newFixture(t, nil)
	f.model.cpu = signals.CPUProbe{
		Clock:   true,
		Enable:  true,
		VPA:     true,
		MCycle:  execution.OpcodeFetch,
		PC:      0x1000,
		DataIn:  0xa9,
		Address: 0x021000,
		DBR:     0x02,
		A:       0x11,
		X:       0x22,
		Y:       0x33,
	}

	f.sim.Step()
	test.DemandEquality(t, len(f.sampler.obs), 1)

	o := f.sampler.obs[0]
	test.ExpectSuccess(t, o.IsOpcodeFetch())
	test.ExpectEquality(t, o.ProgramCounter, uint16(0x1000))
	test.ExpectEquality(t, o.DataIn, uint8(0xa9))
	test.ExpectEquality(t, o.Address, uint32(0x021000))
	test.ExpectEquality(t, o.DataBank, uint8(0x02))
	test.ExpectEquality(t, o.A, uint16(0x11))
	test.ExpectEquality(t, o.X, uint16(0x22))
	test.ExpectEquality(t, o.Y, uint16(0x33))
}

func TestRTC(t *testing.T) {
	p, err := preferences.NewDefaultPreferences()
	test.DemandSuccess(t, err)

	m := &rtcModel{model: model{ev: &events{}}}
	_, err = hardware.NewSimulation(p, m, peripherals.NullHooks(), nil)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, m.toggles, 1)
	test.ExpectEquality(t, m.hi>>24, uint32(0x40))
}

func TestRun(t *testing.T) {
	f := newFixture(t, func(p *preferences.Preferences) {
		p.BatchSize.Set(10)
	})

	var checks int
	err := f.sim.Run(func() (govern.State, error) {
		checks++
		if checks == 3 {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, checks, 3)
	test.ExpectEquality(t, f.sim.Time(), uint64(15))

	// run ends when the model finishes
	f.model.finishAt = f.model.evals + 25
	err = f.sim.Run(nil)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, f.sim.Finished())

	// unsupported state
	g := newFixture(t, func(p *preferences.Preferences) {
		p.BatchSize.Set(1)
	})
	err = g.sim.Run(func() (govern.State, error) {
		return govern.Stepping, nil
	})
	test.ExpectFailure(t, err)
}
