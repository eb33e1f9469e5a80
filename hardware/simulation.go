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

package hardware

import (
	"fmt"
	"time"

	"github.com/theypsilon-test/TK2000-MiSTer/hardware/clocks"
	"github.com/theypsilon-test/TK2000-MiSTer/hardware/cpu/execution"
	"github.com/theypsilon-test/TK2000-MiSTer/hardware/peripherals"
	"github.com/theypsilon-test/TK2000-MiSTer/hardware/preferences"
	"github.com/theypsilon-test/TK2000-MiSTer/hardware/signals"
	"github.com/theypsilon-test/TK2000-MiSTer/logger"
)

// Sampler receives an observation of the CPU after every evaluation of the
// model.
type Sampler interface {
	Sample(execution.BusObservation)
}

// AudioSink receives the audio outputs of the model on every rising edge of
// the primary clock.
type AudioSink interface {
	Clock(left uint16, right uint16)
}

// VideoSink receives the video outputs of the model on every rising edge of
// the primary clock on which the pixel clock is enabled. The colour is packed
// as 0xAABBGGRR.
type VideoSink interface {
	Clock(hblank bool, vblank bool, hsync bool, vsync bool, colour uint32)
}

// Simulation is the context of a running model.
type Simulation struct {
	Prefs *preferences.Preferences

	model  signals.Model
	hooks  peripherals.Hooks
	tracer Sampler

	clk *clocks.Divider

	// number of rising edges of the primary clock since the last Reset()
	time uint64

	// value of the reset pin
	reset bool

	// soft reset sequence
	softResetPending  bool
	softResetAsserted bool
	softResetCount    int

	// the model has finished and Final() has been called
	finished bool

	audio []AudioSink
	video []VideoSink

	// preference values are fixed for the lifetime of the simulation
	initialReset      uint64
	softResetDuration int
	audioCapture      bool
}

// NewSimulation is the preferred method of initialisation for the Simulation
// type. The tracer argument can be nil.
//
// If the model has RTC pins then the current time is sent to the model.
func NewSimulation(prefs *preferences.Preferences, model signals.Model, hooks peripherals.Hooks, tracer Sampler) (*Simulation, error) {
	if model == nil {
		return nil, fmt.Errorf("hardware: no model")
	}

	clk, err := clocks.NewDivider(clocks.PrimaryRatio)
	if err != nil {
		return nil, fmt.Errorf("hardware: %w", err)
	}

	sim := &Simulation{
		Prefs:             prefs,
		model:             model,
		hooks:             hooks.Normalise(),
		tracer:            tracer,
		clk:               clk,
		initialReset:      uint64(prefs.InitialReset.Get().(int)),
		softResetDuration: prefs.SoftResetDuration.Get().(int),
		audioCapture:      prefs.AudioCapture.Get().(bool),
	}

	sim.Reset()
	sim.SendClock(time.Now())

	return sim, nil
}

// AllowLogging implements the logger.Permission interface.
func (sim *Simulation) AllowLogging() bool {
	return true
}

func (sim *Simulation) String() string {
	return fmt.Sprintf("time=%d clk=%s reset=%v", sim.time, sim.clk, sim.reset)
}

// Time returns the number of rising edges of the primary clock since the last
// reset.
func (sim *Simulation) Time() uint64 {
	return sim.time
}

// Model returns the hardware model being simulated.
func (sim *Simulation) Model() signals.Model {
	return sim.model
}

// Finished returns true if the model has signalled that it has finished.
func (sim *Simulation) Finished() bool {
	return sim.finished
}

// Reset the simulation time and the primary clock. The reset pin is asserted
// and will be held for the initial reset period.
func (sim *Simulation) Reset() {
	sim.time = 0
	sim.setReset(true)
	sim.clk.Reset()
}

// SoftReset requests a soft reset. The soft reset pin is asserted at the start
// of the next step and held for the soft reset duration.
func (sim *Simulation) SoftReset() {
	sim.softResetPending = true
}

// SendClock sends the time to the real time clock of the model. Does nothing
// if the model has no RTC pins.
func (sim *Simulation) SendClock(t time.Time) {
	if pins, ok := sim.model.(signals.RTCPins); ok {
		peripherals.SendClock(pins, t)
		logger.Logf(sim, "sim", "rtc set to %s", t.Format(time.DateTime))
	}
}

// AddAudioSink adds a sink for the audio outputs of the model. Audio is only
// delivered if the audio capture preference was set when the simulation was
// created.
func (sim *Simulation) AddAudioSink(s AudioSink) {
	sim.audio = append(sim.audio, s)
}

// AddVideoSink adds a sink for the video outputs of the model.
func (sim *Simulation) AddVideoSink(s VideoSink) {
	sim.video = append(sim.video, s)
}

func (sim *Simulation) setReset(v bool) {
	sim.reset = v
	sim.model.SetReset(v)
}
