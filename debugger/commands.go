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
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/theypsilon-test/TK2000-MiSTer/debugger/govern"
	"github.com/theypsilon-test/TK2000-MiSTer/debugger/terminal"
	"github.com/theypsilon-test/TK2000-MiSTer/hardware/peripherals"
	"github.com/theypsilon-test/TK2000-MiSTer/logger"
	"github.com/theypsilon-test/TK2000-MiSTer/paths"
	"github.com/theypsilon-test/TK2000-MiSTer/video"
)

// debugger keywords
const (
	cmdRun       = "RUN"
	cmdStop      = "STOP"
	cmdStep      = "STEP"
	cmdMulti     = "MULTI"
	cmdBatch     = "BATCH"
	cmdReset     = "RESET"
	cmdSoftReset = "SOFTRESET"
	cmdMismatch  = "MISMATCH"

	cmdPress   = "PRESS"
	cmdRelease = "RELEASE"

	cmdStatus     = "STATUS"
	cmdTail       = "TAIL"
	cmdLog        = "LOG"
	cmdScreenshot = "SCREENSHOT"
	cmdMemviz     = "MEMVIZ"

	cmdHelp = "HELP"
	cmdQuit = "QUIT"
)

// commandTemplate is the list of commands with their arguments. it is used
// for help output and to decide whether a command exists.
var commandTemplate = []string{
	cmdRun,
	cmdStop,
	cmdStep + " (INSTRUCTION|%<steps>N)",
	cmdMulti + " (%<steps>N)",
	cmdBatch + " (%<steps>N)",
	cmdReset,
	cmdSoftReset,
	cmdMismatch + " (ON|OFF)",

	cmdPress + " %<button>S",
	cmdRelease + " %<button>S",

	cmdStatus,
	cmdTail + " (%<lines>N)",
	cmdLog + " (%<lines>N)",
	cmdScreenshot + " (%<file>F)",
	cmdMemviz + " (%<file>F)",

	cmdHelp + " (%<command>S)",
	cmdQuit,
}

// number of lines printed by TAIL and LOG when no number is given
const defaultTailLines = 20

func keyword(template string) string {
	return strings.Fields(template)[0]
}

// argument returns the numeric argument at index i of the tokens, or the
// default value if there is no such argument.
func numericArgument(tokens []string, i int, def int) (int, error) {
	if len(tokens) <= i {
		return def, nil
	}
	n, err := strconv.Atoi(tokens[i])
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s: %s is not a positive number", tokens[0], tokens[i])
	}
	return n, nil
}

// parseInput normalises the input and runs the command.
func (dbg *Debugger) parseInput(input string) error {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return nil
	}
	tokens[0] = strings.ToUpper(tokens[0])

	dbg.term.TermPrintLine(terminal.StyleEcho, strings.Join(tokens, " "))

	switch tokens[0] {
	case cmdRun:
		dbg.setState(govern.Running, govern.Normal)

	case cmdStop:
		if dbg.State() == govern.Running {
			dbg.setState(govern.Paused, govern.PausedByUser)
		}

	case cmdStep:
		if len(tokens) > 1 && strings.EqualFold(tokens[1], "INSTRUCTION") {
			dbg.stepInstruction()
			return nil
		}
		n, err := numericArgument(tokens, 1, 1)
		if err != nil {
			return err
		}
		dbg.step(n)

	case cmdMulti:
		n, err := numericArgument(tokens, 1, dbg.multiStep)
		if err != nil {
			return err
		}
		dbg.multiStep = n
		dbg.step(n)

	case cmdBatch:
		n, err := numericArgument(tokens, 1, dbg.batchSize)
		if err != nil {
			return err
		}
		dbg.batchSize = n
		dbg.printLine(terminal.StyleFeedback, "batch size: %d", dbg.batchSize)

	case cmdReset:
		dbg.sim.Reset()
		dbg.tracer.Reset()
		dbg.console.Clear()
		if dbg.reference != nil {
			dbg.reference.Rewind()
		}
		dbg.setState(govern.Paused, govern.Normal)
		dbg.printLine(terminal.StyleFeedback, "simulation reset")

	case cmdSoftReset:
		dbg.sim.SoftReset()
		dbg.printLine(terminal.StyleFeedback, "soft reset requested")

	case cmdMismatch:
		if len(tokens) > 1 {
			switch strings.ToUpper(tokens[1]) {
			case "ON":
				dbg.stopOnMismatch = true
			case "OFF":
				dbg.stopOnMismatch = false
			default:
				return fmt.Errorf("%s: unknown argument (%s)", tokens[0], tokens[1])
			}
		}
		dbg.printLine(terminal.StyleFeedback, "stop on mismatch: %v (%d mismatches)", dbg.stopOnMismatch, dbg.tracer.Mismatches())

	case cmdPress, cmdRelease:
		if dbg.controls == nil {
			return fmt.Errorf("%s: no controls attached", tokens[0])
		}
		if len(tokens) < 2 {
			return fmt.Errorf("%s: button required", tokens[0])
		}
		b, err := peripherals.ParseButton(tokens[1])
		if err != nil {
			return err
		}
		dbg.controls.Press(b, tokens[0] == cmdPress)

	case cmdStatus:
		dbg.printLine(terminal.StyleFeedback, "%s %s", dbg.State(), dbg.SubState())
		dbg.printLine(terminal.StyleFeedback, "sim: %s", dbg.sim)
		dbg.printLine(terminal.StyleFeedback, "trace: %s", dbg.tracer)
		if dbg.video != nil {
			dbg.printLine(terminal.StyleFeedback, "video: %s", dbg.video)
		}
		if dbg.audio != nil {
			dbg.printLine(terminal.StyleFeedback, "audio: %s", dbg.audio)
		}

	case cmdTail:
		n, err := numericArgument(tokens, 1, defaultTailLines)
		if err != nil {
			return err
		}
		return dbg.console.Tail(dbg.writer(terminal.StyleTrace), n)

	case cmdLog:
		n, err := numericArgument(tokens, 1, defaultTailLines)
		if err != nil {
			return err
		}
		logger.Tail(dbg.writer(terminal.StyleLog), n)

	case cmdScreenshot:
		if dbg.video == nil {
			return fmt.Errorf("%s: no video attached", tokens[0])
		}
		fn := paths.UniqueFilename("screenshot", dbg.label) + ".png"
		if len(tokens) > 1 {
			fn = tokens[1]
		}
		caption := fmt.Sprintf("frame %d", dbg.video.FrameNum())
		if err := video.Screenshot(fn, dbg.video.LastFrame(), 2, caption); err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "screenshot saved to %s", fn)

	case cmdMemviz:
		fn := paths.UniqueFilename("memviz", dbg.label) + ".dot"
		if len(tokens) > 1 {
			fn = tokens[1]
		}
		if err := dbg.memviz(fn); err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "capture graph saved to %s", fn)

	case cmdHelp:
		if len(tokens) > 1 {
			return dbg.printHelp(strings.ToUpper(tokens[1]))
		}
		for _, t := range commandTemplate {
			dbg.printLine(terminal.StyleHelp, "%s", t)
		}

	case cmdQuit:
		dbg.running = false

	default:
		return fmt.Errorf("%s is not a debugging command", tokens[0])
	}

	return nil
}

// memviz writes a graph of the instruction capture to the named file in
// graphviz format.
func (dbg *Debugger) memviz(filename string) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("%s: %w", cmdMemviz, err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = fmt.Errorf("%s: %w", cmdMemviz, err)
		}
	}()

	memviz.Map(f, dbg.tracer.Capture())
	logger.Logf(logger.Allow, "debugger", "memviz of capture written to %s", filename)

	return nil
}
