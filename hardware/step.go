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
	"github.com/theypsilon-test/TK2000-MiSTer/debugger/govern"
	"github.com/theypsilon-test/TK2000-MiSTer/hardware/cpu/execution"
	"github.com/theypsilon-test/TK2000-MiSTer/logger"
)

// Step advances the primary clock by one edge. Returns govern.Running or, once
// the model has finished, govern.Ending.
func (sim *Simulation) Step() govern.State {
	if sim.finished {
		return govern.Ending
	}

	if sim.model.GotFinish() {
		sim.model.Final()
		sim.finished = true
		logger.Logf(sim, "sim", "model finished at time %d", sim.time)
		return govern.Ending
	}

	sim.softResetSequence()

	// reset is held for the initial period of the simulation
	if sim.time < sim.initialReset {
		sim.setReset(true)
	} else if sim.time == sim.initialReset {
		sim.setReset(false)
	}

	sim.clk.Tick()
	sim.model.SetClock(sim.clk.Level())

	// the model is evaluated on both edges of the clock
	if sim.clk.Changed() {
		sim.evaluate()
	}

	if sim.clk.Rising() {
		if sim.audioCapture {
			a := sim.model.Audio()
			for _, s := range sim.audio {
				s.Clock(a.Left, a.Right)
			}
		}

		if len(sim.video) > 0 {
			v := sim.model.Video()
			if v.CE {
				colour := 0xff000000 | uint32(v.B)<<16 | uint32(v.G)<<8 | uint32(v.R)
				for _, s := range sim.video {
					s.Clock(v.HBlank, v.VBlank, v.HSync, v.VSync, colour)
				}
			}
		}

		sim.time++
	}

	return govern.Running
}

// softResetSequence asserts the soft reset pin if a soft reset has been
// requested and deasserts it once the duration has elapsed. The duration is
// counted in rising edges of the primary clock, as seen at the start of the
// step.
func (sim *Simulation) softResetSequence() {
	if sim.softResetPending {
		sim.softResetPending = false
		sim.softResetAsserted = true
		sim.softResetCount = 0
		sim.model.SetSoftReset(true)
		logger.Logf(sim, "sim", "soft reset at time %d", sim.time)
	}

	if !sim.softResetAsserted {
		return
	}

	if sim.clk.Rising() {
		sim.softResetCount++
	}

	if sim.softResetCount >= sim.softResetDuration {
		sim.softResetAsserted = false
		sim.model.SetSoftReset(false)
		logger.Logf(sim, "sim", "soft reset released at time %d", sim.time)
	}
}

// evaluate the model with the peripheral hooks either side.
func (sim *Simulation) evaluate() {
	high := sim.clk.Level()

	if sim.clk.Rising() && !sim.hooks.Bus.Downloading() {
		sim.hooks.Storage.BeforeEval(sim.time)
	}
	if high {
		sim.hooks.Input.BeforeEval()
		sim.hooks.Bus.BeforeEval()
	}

	sim.model.Eval()

	if sim.tracer != nil {
		sim.tracer.Sample(sim.observe())
	}

	if high {
		sim.hooks.Bus.AfterEval()
		sim.hooks.Storage.AfterEval()
	}
}

// observe the CPU signals of the model.
func (sim *Simulation) observe() execution.BusObservation {
	cpu := sim.model.CPU()
	return execution.BusObservation{
		Enable:         cpu.Enable,
		Clock:          cpu.Clock,
		Reset:          sim.reset,
		VPA:            cpu.VPA,
		VDA:            cpu.VDA,
		CycleState:     cpu.MCycle,
		ProgramCounter: cpu.PC,
		DataIn:         cpu.DataIn,
		Address:        cpu.Address,
		DataBank:       cpu.DBR,
		A:              cpu.A,
		X:              cpu.X,
		Y:              cpu.Y,
	}
}
