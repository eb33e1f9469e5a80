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

package main

import (
	"fmt"
	"image"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/theypsilon-test/TK2000-MiSTer/debugger"
	"github.com/theypsilon-test/TK2000-MiSTer/debugger/govern"
	"github.com/theypsilon-test/TK2000-MiSTer/debugger/terminal"
	"github.com/theypsilon-test/TK2000-MiSTer/debugger/terminal/keyterm"
	"github.com/theypsilon-test/TK2000-MiSTer/debugger/terminal/plainterm"
	"github.com/theypsilon-test/TK2000-MiSTer/disassembly"
	"github.com/theypsilon-test/TK2000-MiSTer/hardware/clocks"
	"github.com/theypsilon-test/TK2000-MiSTer/logger"
	"github.com/theypsilon-test/TK2000-MiSTer/modalflag"
	"github.com/theypsilon-test/TK2000-MiSTer/paths"
	"github.com/theypsilon-test/TK2000-MiSTer/performance"
	"github.com/theypsilon-test/TK2000-MiSTer/performance/limiter"
	"github.com/theypsilon-test/TK2000-MiSTer/prefs"
	"github.com/theypsilon-test/TK2000-MiSTer/statsview"
	"github.com/theypsilon-test/TK2000-MiSTer/version"
	"github.com/theypsilon-test/TK2000-MiSTer/video"

	"golang.org/x/term"
)

// exit values.
const (
	exitParseError = 10
	exitModeError  = 20
	exitMismatch   = 30
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch the program with the supplied arguments. output is used for
// everything except the interactive terminal. returns the exit value.
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "DEBUG", "DECODE", "PERFORMANCE", "VERSION")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParseError
	}

	if stats != nil && *stats {
		statsview.Launch(output)
	}

	var exitVal int

	switch md.Mode() {
	case "RUN":
		exitVal, err = run(md)
	case "DEBUG":
		err = debug(md)
	case "DECODE":
		err = decode(md)
	case "PERFORMANCE":
		err = perform(md)
	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return exitModeError
	}

	return exitVal
}

// flags shared by the modes that create a session.
type sessionFlags struct {
	reference *string
	prefs     *string
	log       *bool
}

func addSessionFlags(md *modalflag.Modes) sessionFlags {
	return sessionFlags{
		reference: md.AddString("ref", "", "reference trace log to compare against"),
		prefs:     md.AddString("prefs", "", "preferences for this session (key::value; ...)"),
		log:       md.AddBool("log", false, "echo log to stdout"),
	}
}

// apply the flags that must take effect before the session is created. the
// returned function must be called when the session has ended.
func (sf sessionFlags) apply(output io.Writer) func() {
	if *sf.log {
		logger.SetEcho(output, false)
	} else {
		logger.SetEcho(nil, false)
	}

	prefs.PushCommandLineStack(*sf.prefs)
	return func() {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "prefs", "unused command line preferences: %s", unused)
		}
	}
}

func replayArgument(md *modalflag.Modes) (string, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return "", fmt.Errorf("replay file required for %s mode", md)
	case 1:
		return md.GetArg(0), nil
	}
	return "", fmt.Errorf("too many arguments for %s mode", md)
}

func run(md *modalflag.Modes) (int, error) {
	md.NewMode()

	sf := addSessionFlags(md)
	trace := md.AddString("trace", "", "write trace to file (default stdout)")
	quiet := md.AddBool("quiet", false, "do not output trace")
	wav := md.AddString("wav", "", "record audio to wav file")
	live := md.AddBool("audio", false, "play audio")
	realtime := md.AddBool("realtime", false, "limit simulation to the nominal clock rate (implied by -audio)")
	record := md.AddString("record", "", "record video to file (requires ffmpeg)")
	screenshot := md.AddBool("screenshot", false, "save the last frame as a PNG on exit")
	dgst := md.AddBool("digest", false, "print digest of video and audio on exit")
	profile := md.AddString("profile", "none", "run with profiling: CPU, MEM, TRACE, ALL (comma separated)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return 0, err
	}

	filename, err := replayArgument(md)
	if err != nil {
		return 0, err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return 0, err
	}

	defer sf.apply(md.Output)()

	opts := sessionOptions{
		replay:    filename,
		reference: *sf.reference,
		wav:       *wav,
		liveAudio: *live,
		record:    *record,
		digest:    *dgst,
	}

	switch {
	case *quiet:
	case *trace != "":
		f, err := os.Create(*trace)
		if err != nil {
			return 0, err
		}
		defer f.Close()
		opts.trace = f
	default:
		opts.trace = md.Output
	}

	ses, err := newSession(opts)
	if err != nil {
		return 0, err
	}

	// controls are latched once per frame
	ses.assembler.OnFrame(func(_ *image.RGBA, _ int) {
		ses.controls.Latch()
	})

	var lim *limiter.Limiter
	if *realtime || *live {
		// the number of batches per second that matches the nominal clock
		// rate. there are two steps for every clock cycle
		batch := max(ses.prefs.BatchSize.Get().(int), 1)
		rate := max(ses.prefs.ClockFreq.Get().(int)*clocks.PrimaryRatio/batch, 1)
		lim, err = limiter.NewLimiter(rate)
		if err != nil {
			ses.end()
			return 0, err
		}
		defer lim.Stop()
	}

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	stopOnMismatch := ses.prefs.StopOnMismatch.Get().(bool)

	err = performance.RunProfiler(prf, "run", func() error {
		return ses.sim.Run(func() (govern.State, error) {
			select {
			case <-intChan:
				return govern.Ending, nil
			default:
			}

			if stopOnMismatch && ses.tracer.Mismatched() {
				return govern.Ending, nil
			}

			if lim != nil {
				lim.Wait()
			}

			return govern.Running, nil
		})
	})
	if err != nil {
		ses.end()
		return 0, err
	}

	if *screenshot {
		if ses.assembler.FrameNum() > 0 {
			fn := paths.UniqueFilename("screenshot", ses.label) + ".png"
			caption := fmt.Sprintf("frame %d", ses.assembler.FrameNum())
			if err := video.Screenshot(fn, ses.assembler.LastFrame(), 2, caption); err != nil {
				ses.end()
				return 0, err
			}
			fmt.Fprintf(md.Output, "screenshot saved to %s\n", fn)
		}
	}

	if err := ses.end(); err != nil {
		return 0, err
	}

	ses.summary(md.Output)

	if ses.tracer.Mismatches() > 0 {
		return exitMismatch, nil
	}
	return 0, nil
}

func debug(md *modalflag.Modes) error {
	md.NewMode()

	sf := addSessionFlags(md)
	trace := md.AddString("trace", "", "also write trace to file")
	wav := md.AddString("wav", "", "record audio to wav file")
	live := md.AddBool("audio", false, "play audio")
	termType := md.AddString("term", "AUTO", "terminal type to use in debug mode: KEY, PLAIN, AUTO")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := replayArgument(md)
	if err != nil {
		return err
	}

	var trm terminal.Terminal
	switch strings.ToUpper(*termType) {
	case "KEY":
		trm = keyterm.NewKeyTerminal()
	case "PLAIN":
		trm = plainterm.NewPlainTerminal(nil, nil)
	case "AUTO":
		if term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())) {
			trm = keyterm.NewKeyTerminal()
		} else {
			trm = plainterm.NewPlainTerminal(nil, nil)
		}
	default:
		return fmt.Errorf("unknown terminal: %s", *termType)
	}

	defer sf.apply(md.Output)()

	opts := sessionOptions{
		replay:    filename,
		reference: *sf.reference,
		wav:       *wav,
		liveAudio: *live,
	}

	if *trace != "" {
		f, err := os.Create(*trace)
		if err != nil {
			return err
		}
		defer f.Close()
		opts.trace = f
	}

	ses, err := newSession(opts)
	if err != nil {
		return err
	}

	dbg, err := debugger.NewDebugger(trm, ses.sim, ses.tracer, ses.console)
	if err != nil {
		ses.end()
		return err
	}
	dbg.SetLabel(ses.label)
	dbg.AttachControls(ses.controls)
	dbg.AttachVideo(ses.assembler)
	if ses.ref != nil {
		dbg.AttachReference(ses.ref)
	}
	if ses.decimator != nil {
		dbg.AttachAudio(ses.decimator)
	}

	// the debugger handles ctrl-c through the terminal
	err = dbg.Start()
	if endErr := ses.end(); err == nil {
		err = endErr
	}
	return err
}

func decode(md *modalflag.Modes) error {
	md.NewMode()

	address := md.AddInt("address", 0, "24-bit address of the first byte")
	dbr := md.AddInt("dbr", 0, "value of the data bank register")
	md.AdditionalHelp("Bytes are hexadecimal and separated by spaces or commas. For example:\n\n  DECODE -address=0x1000 a9 42")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) == 0 {
		return fmt.Errorf("bytes required for %s mode", md)
	}
	if *address < 0 || *address > 0xffffff {
		return fmt.Errorf("address out of range: %#x", *address)
	}
	if *dbr < 0 || *dbr > 0xff {
		return fmt.Errorf("data bank out of range: %#x", *dbr)
	}

	data, err := disassembly.ParseBytes(md.RemainingArgs()...)
	if err != nil {
		return err
	}

	e, err := disassembly.DecodeBytes(uint32(*address), uint8(*dbr), data)
	if err != nil {
		return err
	}

	fmt.Fprintln(md.Output, e)
	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	sf := addSessionFlags(md)
	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "none", "run performance check with profiling: CPU, MEM, TRACE, ALL (comma separated)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := replayArgument(md)
	if err != nil {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	defer sf.apply(md.Output)()

	ses, err := newSession(sessionOptions{replay: filename, reference: *sf.reference})
	if err != nil {
		return err
	}

	err = performance.Check(md.Output, prf, ses.sim, *duration)
	if endErr := ses.end(); err == nil {
		err = endErr
	}
	return err
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("v", false, "display revision information (if available)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	if *revision {
		fmt.Fprintf(md.Output, "%s (%s)\n", v, r)
	} else {
		fmt.Fprintln(md.Output, version.String())
	}

	return nil
}
