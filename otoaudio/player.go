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

//go:build !headless

package otoaudio

import (
	"fmt"
	"sync"

	"github.com/ebitengine/oto/v3"
	"github.com/theypsilon-test/TK2000-MiSTer/logger"
)

// Player plays the samples in a Stream on the host's audio device.
type Player struct {
	ctx    *oto.Context
	player *oto.Player

	crit    sync.Mutex
	started bool
}

// NewPlayer is the preferred method of initialisation for the Player type.
// Only one Player can be created during the lifetime of the program.
func NewPlayer(sampleRate int, stream *Stream) (*Player, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("otoaudio: %w", err)
	}
	<-ready

	logger.Logf(logger.Allow, "otoaudio", "audio device opened at %dHz", sampleRate)

	return &Player{
		ctx:    ctx,
		player: ctx.NewPlayer(stream),
	}, nil
}

// Start playback.
func (pl *Player) Start() {
	pl.crit.Lock()
	defer pl.crit.Unlock()

	if !pl.started && pl.player != nil {
		pl.player.Play()
		pl.started = true
	}
}

// Pause playback. The samples in the stream are kept.
func (pl *Player) Pause() {
	pl.crit.Lock()
	defer pl.crit.Unlock()

	if pl.started && pl.player != nil {
		pl.player.Pause()
		pl.started = false
	}
}

// IsStarted returns true if the player is playing.
func (pl *Player) IsStarted() bool {
	pl.crit.Lock()
	defer pl.crit.Unlock()
	return pl.started
}

// Close the player. The Player cannot be used again.
func (pl *Player) Close() error {
	pl.crit.Lock()
	defer pl.crit.Unlock()

	if pl.player == nil {
		return nil
	}

	err := pl.player.Close()
	pl.player = nil
	pl.started = false
	if err != nil {
		return fmt.Errorf("otoaudio: %w", err)
	}
	return nil
}
