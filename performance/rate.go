// This file is part of GopherChip8.
//
// GopherChip8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherChip8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherChip8.  If not, see <https://www.gnu.org/licenses/>.

package performance

// CalcCycleRate takes the number of cycles and duration (in seconds)
// and returns the cycles-per-second and the accuracy of that value as a
// percentage of the requested frequency.
func CalcCycleRate(cycles int, duration float64, hz float32) (rate float64, accuracy float64) {
	rate = float64(cycles) / duration
	accuracy = 100 * rate / float64(hz)
	return rate, accuracy
}
