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

package performance

// CalcRate takes the number of primary clock cycles and duration (in seconds)
// and returns the cycles-per-second and the accuracy of that value as a
// percentage of the nominal clock frequency.
func CalcRate(clockFreq int, numCycles uint64, duration float64) (rate float64, accuracy float64) {
	if duration <= 0 || clockFreq <= 0 {
		return 0, 0
	}
	rate = float64(numCycles) / duration
	accuracy = 100 * rate / float64(clockFreq)
	return rate, accuracy
}
