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

package debugger

import (
	"errors"
	"fmt"
	"image"
	"io"
	"sync/atomic"

	"github.com/theypsilon-test/TK2000-MiSTer/audio"
	"github.com/theypsilon-test/TK2000-MiSTer/comparison"
	"github.com/theypsilon-test/TK2000-MiSTer/console"
	"github.com/theypsilon-test/TK2000-MiSTer/debugger/govern"
	"github.com/theypsilon-test/TK2000-MiSTer/debugger/terminal"
	"github.com/theypsilon-test/TK2000-MiSTer/hardware"
	"github.com/theypsilon-test/TK2000-MiSTer/hardware/peripherals"
	"github.com/theypsilon-test/TK2000-MiSTer/logger"
	"github.com/theypsilon-test/TK2000-MiSTer/tracer"
	"github.com/theypsilon-test/TK2000-MiSTer/video"
)

// the maximum number of steps taken by STEP INSTRUCTION while waiting for an
// instruction to be retired
const maxInstructionSteps = 1 << 20

// the maximum number of trace lines printed after a step. more lines than this
// are summarised
const maxStepLines = 32

// Debugger is the run control for the simulation.
type Debugger struct {
	sim     *hardware.Simulation
	tracer  *tracer.Tracer
	console *console.Console
	term    terminal.Terminal

	// optional components. see the Attach*() functions
	reference *comparison.Reference
	controls  *peripherals.Controls
	video     *video.Assembler
	audio     *audio.Decimator

	// state is an atomic value because it is read by the input goroutine when
	// creating the prompt
	state    atomic.Value // govern.State
	subState atomic.Value // govern.SubState

	// label used when creating filenames for screenshots, etc.
	label string

	batchSize      int
	multiStep      int
	stopOnMismatch bool

	// input from the terminal goroutine. the goroutine waits on the ack
	// channel before reading the next command. the quit channel is closed when
	// the debugger ends
	input chan termInput
	ack   chan bool
	quit  chan bool

	// running is false once the user has quit or the simulation has ended
	running bool
}

type termInput struct {
	line string
	err  error
}

// NewDebugger is the preferred method of initialisation for the Debugger
// type. The console should be one of the sinks of the tracer.
func NewDebugger(term terminal.Terminal, sim *hardware.Simulation, tr *tracer.Tracer, con *console.Console) (*Debugger, error) {
	if term == nil {
		return nil, fmt.Errorf("debugger: no terminal")
	}
	if sim == nil || tr == nil || con == nil {
		return nil, fmt.Errorf("debugger: simulation, tracer and console are all required")
	}

	dbg := &Debugger{
		sim:            sim,
		tracer:         tr,
		console:        con,
		term:           term,
		batchSize:      max(sim.Prefs.BatchSize.Get().(int), 1),
		multiStep:      max(sim.Prefs.MultiStep.Get().(int), 1),
		stopOnMismatch: sim.Prefs.StopOnMismatch.Get().(bool),
		input:          make(chan termInput),
		ack:            make(chan bool),
		quit:           make(chan bool),
	}

	dbg.state.Store(govern.Initialising)
	dbg.subState.Store(govern.Normal)

	return dbg, nil
}

// AttachReference sets the reference log that the trace is compared against.
// The reference is rewound when the simulation is reset.
func (dbg *Debugger) AttachReference(ref *comparison.Reference) {
	dbg.reference = ref
	dbg.tracer.SetComparator(ref)
}

// AttachControls allows the PRESS and RELEASE commands to change the state of
// the controls. The controls are latched once per frame if video is attached,
// or once per batch otherwise.
func (dbg *Debugger) AttachControls(c *peripherals.Controls) {
	dbg.controls = c
}

// AttachVideo allows the SCREENSHOT command to save the most recent frame.
func (dbg *Debugger) AttachVideo(a *video.Assembler) {
	dbg.video = a
	a.OnFrame(func(_ *image.RGBA, _ int) {
		if dbg.controls != nil {
			dbg.controls.Latch()
		}
	})
}

// AttachAudio adds the decimator to the output of the STATUS command.
func (dbg *Debugger) AttachAudio(d *audio.Decimator) {
	dbg.audio = d
}

// SetLabel sets the label used when creating filenames.
func (dbg *Debugger) SetLabel(label string) {
	dbg.label = label
}

// State returns the current state of the run control.
func (dbg *Debugger) State() govern.State {
	return dbg.state.Load().(govern.State)
}

// SubState returns the current sub-state of the run control.
func (dbg *Debugger) SubState() govern.SubState {
	return dbg.subState.Load().(govern.SubState)
}

// set the run control state
func (dbg *Debugger) setState(state govern.State, subState govern.SubState) {
	// intentionally panic if state/sub-state combination is not allowed
	if !govern.StateIntegrity(state, subState) {
		panic(fmt.Sprintf("illegal sub-state (%s) for %s state (prev state: %s)",
			subState, state,
			dbg.state.Load().(govern.State),
		))
	}

	dbg.state.Store(state)
	dbg.subState.Store(subState)
}

func (dbg *Debugger) prompt() terminal.Prompt {
	return terminal.Prompt{
		Content: fmt.Sprintf("%d %s", dbg.sim.Time(), dbg.tracer),
		State:   dbg.State(),
	}
}

// Start the debugger. The simulation starts paused. Start returns when the
// user quits, when the terminal has no more input or when the model finishes.
func (dbg *Debugger) Start() error {
	if err := dbg.term.Initialise(); err != nil {
		return fmt.Errorf("debugger: %w", err)
	}
	defer dbg.end()

	dbg.running = true
	dbg.setState(govern.Paused, govern.Normal)

	go dbg.readInput()

	for dbg.running {
		switch dbg.State() {
		case govern.Paused:
			if err := dbg.handleInput(<-dbg.input); err != nil {
				return err
			}

		case govern.Running:
			select {
			case inp := <-dbg.input:
				if err := dbg.handleInput(inp); err != nil {
					return err
				}
				continue
			default:
			}

			if dbg.controls != nil && dbg.video == nil {
				dbg.controls.Latch()
			}

			_, state := dbg.sim.RunFor(dbg.batchSize)
			dbg.afterSteps(state)

		case govern.Ending:
			dbg.running = false

		default:
			return fmt.Errorf("debugger: unsupported state (%s)", dbg.State())
		}
	}

	return nil
}

// end cleans up any resources that may be dangling.
func (dbg *Debugger) end() {
	close(dbg.quit)
	dbg.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("%s after %d cycles", dbg.tracer, dbg.sim.Time()))
	dbg.term.CleanUp()
}

// readInput runs in its own goroutine and passes commands from the terminal
// to the debugger goroutine.
func (dbg *Debugger) readInput() {
	for {
		line, err := dbg.term.TermRead(dbg.prompt())

		select {
		case dbg.input <- termInput{line: line, err: err}:
		case <-dbg.quit:
			return
		}

		if err != nil {
			return
		}

		select {
		case <-dbg.ack:
		case <-dbg.quit:
			return
		}
	}
}

// handleInput processes a single input from the terminal. Only errors that
// should end the debugger are returned.
func (dbg *Debugger) handleInput(inp termInput) error {
	if inp.err != nil {
		dbg.running = false
		if errors.Is(inp.err, io.EOF) || errors.Is(inp.err, terminal.UserQuit) {
			return nil
		}
		return fmt.Errorf("debugger: %w", inp.err)
	}

	if err := dbg.parseInput(inp.line); err != nil {
		dbg.printLine(terminal.StyleError, "%v", err)
	}

	if dbg.running {
		dbg.ack <- true
	}

	return nil
}

// afterSteps checks the state returned by the simulation and the mismatch
// state of the tracer.
func (dbg *Debugger) afterSteps(state govern.State) {
	if state == govern.Ending {
		dbg.setState(govern.Ending, govern.Normal)
		dbg.printLine(terminal.StyleFeedback, "simulation finished at time %d", dbg.sim.Time())
		return
	}

	if dbg.tracer.Mismatched() {
		dbg.tracer.ClearMismatch()
		if dbg.stopOnMismatch {
			dbg.setState(govern.Paused, govern.PausedOnMismatch)
			dbg.printLine(terminal.StyleFeedback, "trace mismatch at instruction %d", dbg.tracer.Count()-1)
			logger.Logf(logger.Allow, "debugger", "paused on trace mismatch at time %d", dbg.sim.Time())
		}
	}
}

// step the simulation n times from the paused state and print the trace
// lines produced.
func (dbg *Debugger) step(n int) {
	dbg.setState(govern.Stepping, govern.Normal)

	total := dbg.console.Total()
	_, state := dbg.sim.RunFor(n)
	dbg.afterSteps(state)

	if dbg.State() == govern.Stepping {
		dbg.setState(govern.Paused, govern.Normal)
	}

	dbg.printNewTrace(total)
}

// stepInstruction steps the simulation until the next instruction has been
// retired.
func (dbg *Debugger) stepInstruction() {
	dbg.setState(govern.Stepping, govern.Normal)

	total := dbg.console.Total()
	count := dbg.tracer.Count()

	state := govern.Running
	var n int
	for n = 0; n < maxInstructionSteps && dbg.tracer.Count() == count && state != govern.Ending; n++ {
		state = dbg.sim.Step()
	}
	dbg.afterSteps(state)

	if dbg.State() == govern.Stepping {
		dbg.setState(govern.Paused, govern.Normal)
	}

	if dbg.tracer.Count() == count && state != govern.Ending {
		dbg.printLine(terminal.StyleFeedback, "no instruction retired in %d steps", n)
	}

	dbg.printNewTrace(total)
}

// printNewTrace prints the lines of the trace that have arrived in the
// console since the total was taken.
func (dbg *Debugger) printNewTrace(total int) {
	n := dbg.console.Total() - total
	if n == 0 {
		return
	}
	if n > maxStepLines {
		dbg.printLine(terminal.StyleFeedback, "%d trace lines (showing last %d)", n, maxStepLines)
		n = maxStepLines
	}
	if err := dbg.console.Tail(dbg.writer(terminal.StyleTrace), n); err != nil {
		dbg.printLine(terminal.StyleError, "%v", err)
	}
}
