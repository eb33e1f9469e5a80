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

// Package preferences collates the preference values used by the simulation
// driver, the tracer and the run control. Values are loaded from the default
// preferences file and can be overridden for a session from the command line.
package preferences

import (
	"errors"
	"fmt"

	"github.com/theypsilon-test/TK2000-MiSTer/hardware/clocks"
	"github.com/theypsilon-test/TK2000-MiSTer/paths"
	"github.com/theypsilon-test/TK2000-MiSTer/prefs"
)

// Preferences defines and collates all the preference values used by the
// simulation.
type Preferences struct {
	dsk *prefs.Disk

	// number of primary clock rising edges for which the reset input is held
	// at the start of the simulation
	InitialReset prefs.Int

	// number of primary clock rising edges for which a soft reset is held
	SoftResetDuration prefs.Int

	// nominal frequency of the primary clock. used for reporting only
	ClockFreq prefs.Int

	// number of steps between polls of the run control when free running
	BatchSize prefs.Int

	// number of steps for a multi-step
	MultiStep prefs.Int

	// audio samples are only delivered to audio sinks if AudioCapture is true
	AudioCapture prefs.Bool

	// sample rate of recorded and played audio
	SampleRate prefs.Int

	// prefix every trace line with the instruction counter
	CounterPrefix prefs.Bool

	// pause a free running simulation when the trace differs from the
	// reference log
	StopOnMismatch prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// default values
const (
	defaultInitialReset      = 48
	defaultSoftResetDuration = 48
	defaultBatchSize         = 650000
	defaultMultiStep         = 1024
	defaultSampleRate        = 48000
)

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are set to their defaults and then loaded from the
// preferences file, if it exists.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, fmt.Errorf("preferences: %w", err)
	}

	p, err := newPreferences(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil && !errors.Is(err, prefs.NoPrefsFile) {
		return nil, fmt.Errorf("preferences: %w", err)
	}

	return p, nil
}

// NewDefaultPreferences returns a Preferences instance that is not connected
// to a preferences file. Command line overrides are still applied.
func NewDefaultPreferences() (*Preferences, error) {
	return newPreferences("")
}

func newPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	p.dsk = prefs.NewDisk(pth)

	for _, v := range []struct {
		key string
		p   prefs.Pref
	}{
		{"sim.initialreset", &p.InitialReset},
		{"sim.softresetduration", &p.SoftResetDuration},
		{"sim.clockfreq", &p.ClockFreq},
		{"sim.batchsize", &p.BatchSize},
		{"sim.multistep", &p.MultiStep},
		{"sim.audiocapture", &p.AudioCapture},
		{"sim.samplerate", &p.SampleRate},
		{"trace.counterprefix", &p.CounterPrefix},
		{"trace.stoponmismatch", &p.StopOnMismatch},
	} {
		if err := p.dsk.Add(v.key, v.p); err != nil {
			return nil, fmt.Errorf("preferences: %w", err)
		}
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	p.InitialReset.Set(defaultInitialReset)
	p.SoftResetDuration.Set(defaultSoftResetDuration)
	p.ClockFreq.Set(clocks.ClockFreq)
	p.BatchSize.Set(defaultBatchSize)
	p.MultiStep.Set(defaultMultiStep)
	p.AudioCapture.Set(true)
	p.SampleRate.Set(defaultSampleRate)
	p.CounterPrefix.Set(true)
	p.StopOnMismatch.Set(false)
}

// Load current preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
