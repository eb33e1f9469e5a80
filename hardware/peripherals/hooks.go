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

package peripherals

// Storage is a block device attached to the model. BeforeEval is called on a
// rising edge of the primary clock, unless the bus is downloading, with the
// current simulation time. AfterEval is called after evaluation while the
// clock is high.
type Storage interface {
	BeforeEval(time uint64)
	AfterEval()
}

// Input is a source of user input. BeforeEval is called before evaluation
// while the primary clock is high.
type Input interface {
	BeforeEval()
}

// Bus is the download/IO bus of the model. BeforeEval and AfterEval are
// called either side of an evaluation while the primary clock is high.
type Bus interface {
	BeforeEval()
	AfterEval()

	// Downloading returns true while the bus is transferring data into the
	// model. Storage is not serviced while downloading
	Downloading() bool
}

// Hooks is the set of collaborators called by the simulation driver.
type Hooks struct {
	Storage Storage
	Input   Input
	Bus     Bus
}

// NullHooks returns a Hooks instance with nothing attached.
func NullHooks() Hooks {
	return Hooks{
		Storage: NullStorage{},
		Input:   NullInput{},
		Bus:     NullBus{},
	}
}

// Normalise replaces any nil field with the null implementation.
func (h Hooks) Normalise() Hooks {
	if h.Storage == nil {
		h.Storage = NullStorage{}
	}
	if h.Input == nil {
		h.Input = NullInput{}
	}
	if h.Bus == nil {
		h.Bus = NullBus{}
	}
	return h
}

// NullStorage is a Storage that does nothing.
type NullStorage struct{}

func (NullStorage) BeforeEval(uint64) {}
func (NullStorage) AfterEval()        {}

// NullInput is an Input that does nothing.
type NullInput struct{}

func (NullInput) BeforeEval() {}

// NullBus is a Bus that does nothing and is never downloading.
type NullBus struct{}

func (NullBus) BeforeEval()       {}
func (NullBus) AfterEval()        {}
func (NullBus) Downloading() bool { return false }
