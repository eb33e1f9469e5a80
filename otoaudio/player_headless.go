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

//go:build headless

package otoaudio

import "fmt"

// Player is not available in headless builds.
type Player struct{}

// NewPlayer always returns an error in headless builds.
func NewPlayer(_ int, _ *Stream) (*Player, error) {
	return nil, fmt.Errorf("otoaudio: audio playback not available in headless build")
}

// Start does nothing in headless builds.
func (pl *Player) Start() {}

// Pause does nothing in headless builds.
func (pl *Player) Pause() {}

// IsStarted is always false in headless builds.
func (pl *Player) IsStarted() bool {
	return false
}

// Close does nothing in headless builds.
func (pl *Player) Close() error {
	return nil
}
