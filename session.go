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
	"errors"
	"fmt"
	"io"

	"github.com/theypsilon-test/TK2000-MiSTer/audio"
	"github.com/theypsilon-test/TK2000-MiSTer/comparison"
	"github.com/theypsilon-test/TK2000-MiSTer/console"
	"github.com/theypsilon-test/TK2000-MiSTer/digest"
	"github.com/theypsilon-test/TK2000-MiSTer/hardware"
	"github.com/theypsilon-test/TK2000-MiSTer/hardware/model/replay"
	"github.com/theypsilon-test/TK2000-MiSTer/hardware/peripherals"
	"github.com/theypsilon-test/TK2000-MiSTer/hardware/preferences"
	"github.com/theypsilon-test/TK2000-MiSTer/logger"
	"github.com/theypsilon-test/TK2000-MiSTer/otoaudio"
	"github.com/theypsilon-test/TK2000-MiSTer/tracer"
	"github.com/theypsilon-test/TK2000-MiSTer/video"
	"github.com/theypsilon-test/TK2000-MiSTer/wavwriter"
)

// the number of trace lines kept by the console.
const consoleLines = 4096

// options for a new session. empty strings and false values mean that the
// component is not created.
type sessionOptions struct {
	replay    string
	reference string

	// trace output is written to the trace writer. can be nil
	trace io.Writer

	wav       string
	liveAudio bool
	record    string
	digest    bool
}

// session gathers the components of a simulation and the order in which they
// are shut down.
type session struct {
	label string

	prefs    *preferences.Preferences
	model    *replay.Replay
	sim      *hardware.Simulation
	tracer   *tracer.Tracer
	console  *console.Console
	controls *peripherals.Controls
	ref      *comparison.Reference

	traceOut *tracer.WriterSink

	decimator *audio.Decimator
	assembler *video.Assembler

	videoDigest *digest.Video
	audioDigest *digest.Audio

	// called in reverse order by end()
	enders []func() error
}

// AllowLogging implements the logger.Permission interface.
func (ses *session) AllowLogging() bool {
	return true
}

func newSession(opts sessionOptions) (*session, error) {
	ses := &session{label: opts.replay}

	var err error

	ses.prefs, err = preferences.NewPreferences()
	if err != nil {
		return nil, err
	}

	ses.model, err = replay.Load(opts.replay)
	if err != nil {
		return nil, err
	}
	logger.Logf(ses, "session", "%s: %d rows", opts.replay, ses.model.Len())

	ses.console, err = console.NewConsole(consoleLines)
	if err != nil {
		return nil, err
	}

	var sink tracer.Sink = ses.console
	if opts.trace != nil {
		ses.traceOut = tracer.NewWriterSink(opts.trace)
		sink = tracer.Sinks(ses.console, ses.traceOut)
	}
	ses.tracer = tracer.NewTracer(sink, ses.prefs.CounterPrefix.Get().(bool))

	if opts.reference != "" {
		ses.ref, err = comparison.LoadReference(opts.reference)
		if err != nil {
			return nil, err
		}
		ses.tracer.SetComparator(ses.ref)
		logger.Logf(ses, "session", "%s: %d reference instructions", opts.reference, ses.ref.Len())
	}

	ses.controls = peripherals.NewControls(ses.model)

	hooks := peripherals.NullHooks()
	hooks.Input = ses.controls

	ses.sim, err = hardware.NewSimulation(ses.prefs, ses.model, hooks, ses.tracer)
	if err != nil {
		return nil, err
	}

	if err := ses.attachAudio(opts); err != nil {
		ses.end()
		return nil, err
	}

	if err := ses.attachVideo(opts); err != nil {
		ses.end()
		return nil, err
	}

	return ses, nil
}

func (ses *session) attachAudio(opts sessionOptions) error {
	if opts.wav == "" && !opts.liveAudio && !opts.digest {
		return nil
	}

	var err error

	ses.decimator, err = audio.NewDecimator(ses.prefs.ClockFreq.Get().(int), ses.prefs.SampleRate.Get().(int))
	if err != nil {
		return err
	}
	ses.sim.AddAudioSink(ses.decimator)

	if opts.wav != "" {
		aw, err := wavwriter.New(opts.wav, ses.decimator.SampleRate())
		if err != nil {
			return err
		}
		ses.decimator.AddSink(aw)
		ses.enders = append(ses.enders, aw.EndMixing)
	}

	if opts.liveAudio {
		// a quarter of a second of buffering
		stream := otoaudio.NewStream(ses.decimator.SampleRate() / 4)
		player, err := otoaudio.NewPlayer(ses.decimator.SampleRate(), stream)
		if err != nil {
			return err
		}
		ses.decimator.AddSink(stream)
		player.Start()
		ses.enders = append(ses.enders, func() error {
			overflow, underflow := stream.Stats()
			logger.Logf(ses, "session", "audio stream: %d overflow, %d underflow", overflow, underflow)
			return player.Close()
		})
	}

	if opts.digest {
		ses.audioDigest = digest.NewAudio()
		ses.decimator.AddSink(ses.audioDigest)
	}

	return nil
}

func (ses *session) attachVideo(opts sessionOptions) error {
	var err error

	ses.assembler, err = video.NewAssembler(video.DefaultWidth, video.DefaultHeight)
	if err != nil {
		return err
	}
	ses.sim.AddVideoSink(ses.assembler)

	if opts.digest {
		ses.videoDigest = digest.NewVideo()
		ses.assembler.OnFrame(ses.videoDigest.Frame)
	}

	if opts.record != "" {
		// the frame rate of the recording is nominal. the model does not report
		// its refresh rate
		rec, err := video.NewRecorder(opts.record, video.DefaultWidth, video.DefaultHeight, 60)
		if err != nil {
			return err
		}
		ses.assembler.OnFrame(rec.Frame)
		ses.enders = append(ses.enders, rec.End)
	}

	return nil
}

// end the session, shutting down components in the reverse order in which they
// were created. all errors are returned.
func (ses *session) end() error {
	var errs []error
	for i := len(ses.enders) - 1; i >= 0; i-- {
		if err := ses.enders[i](); err != nil {
			errs = append(errs, err)
		}
	}
	ses.enders = ses.enders[:0]

	if ses.traceOut != nil {
		if err := ses.traceOut.Err(); err != nil {
			errs = append(errs, fmt.Errorf("trace: %w", err))
		}
	}

	return errors.Join(errs...)
}

// summary of the session written to output.
func (ses *session) summary(output io.Writer) {
	fmt.Fprintf(output, "%s after %d cycles\n", ses.tracer, ses.sim.Time())
	if ses.videoDigest != nil {
		fmt.Fprintf(output, "video digest: %s (%d frames)\n", ses.videoDigest.Hash(), ses.videoDigest.FrameNum())
	}
	if ses.audioDigest != nil {
		ses.audioDigest.Flush()
		fmt.Fprintf(output, "audio digest: %s\n", ses.audioDigest.Hash())
	}
}
