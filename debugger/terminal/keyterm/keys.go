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

package keyterm

// list of ASCII codes for non-alphanumeric characters
const (
	keyInterrupt      = 3 // end-of-text character
	keyEOT            = 4
	keyBackspace      = 8
	keyLineFeed       = 10
	keyCarriageReturn = 13
	keyDelete         = 127
)

// the key that starts a full command line
const keyCommandLine = ':'

// Keys maps single keypresses to debugger commands.
var Keys = map[byte]string{
	'r': "RUN",
	'p': "STOP",
	' ': "STOP",
	's': "STEP",
	'i': "STEP INSTRUCTION",
	'm': "MULTI",
	'x': "SOFTRESET",
	'R': "RESET",
	't': "TAIL",
	'l': "LOG",
	'g': "SCREENSHOT",
	'v': "STATUS",
	'h': "HELP",
	'?': "HELP",
	'q': "QUIT",
}
