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

import (
	"time"

	"github.com/theypsilon-test/TK2000-MiSTer/hardware/signals"
)

// the last byte of the RTC words is a fixed flag value
const rtcFlags = 0x40

func bcd(v int) uint32 {
	return uint32(v%10) | uint32(v/10)<<4
}

// PackRTC returns the time in the layout of an MSM6242B real time clock, as
// two 32-bit words. Each byte of the words is a BCD value.
//
//	lo: seconds, minutes, hours, day of month (least significant byte first)
//	hi: month, year, weekday, flags
//
// The year is the number of years since 1900, modulo 100.
func PackRTC(t time.Time) (lo uint32, hi uint32) {
	year := t.Year() - 1900

	lo = bcd(t.Second()) | bcd(t.Minute())<<8 | bcd(t.Hour())<<16 | bcd(t.Day())<<24
	hi = bcd(int(t.Month())) |
		(uint32(year%10)|uint32((year/10)%10)<<4)<<8 |
		uint32(t.Weekday())<<16 |
		rtcFlags<<24

	return lo, hi
}

// SendClock puts the time on the RTC pins of the model and flips the toggle
// pin so that the model will latch the new value.
func SendClock(pins signals.RTCPins, t time.Time) {
	pins.SetRTC(PackRTC(t))
	pins.ToggleRTC()
}
