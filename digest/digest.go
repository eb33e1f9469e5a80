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

// Package digest creates chained SHA-1 fingerprints of the video and audio
// output of the simulation. Two runs of the same recording with the same
// preferences produce the same digests, which makes the digests useful for
// detecting changes in the output of the model.
package digest

// Digest implementations compute a fingerprint of some output.
type Digest interface {
	Hash() string
	ResetDigest()
}
