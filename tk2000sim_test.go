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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/theypsilon-test/TK2000-MiSTer/test"
)

// lda #$42; jmp $2000; nop; nop
const recording = `enable,clk,vpa,mcycle,pc,di,addr
1,0,1,1,0x1000,0xa9,0x1000
1,1,1,1,0x1000,0xa9,0x1000
1,0,1,2,0x1001,0x42,0x1001
1,1,1,2,0x1001,0x42,0x1001
1,0,1,1,0x1002,0x4c,0x1002
1,1,1,1,0x1002,0x4c,0x1002
1,0,1,2,0x1003,0x00,0x1003
1,1,1,2,0x1003,0x00,0x1003
1,0,1,3,0x1004,0x20,0x1004
1,1,1,3,0x1004,0x20,0x1004
1,0,1,1,0x2000,0xea,0x2000
1,1,1,1,0x2000,0xea,0x2000
1,0,1,1,0x2001,0xea,0x2001
1,1,1,1,0x2001,0xea,0x2001
`

// prepare a working directory containing the recording. the preferences
// directory is created in the working directory in development builds
func workspace(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	fn := filepath.Join(dir, "recording.csv")
	test.DemandSuccess(t, os.WriteFile(fn, []byte(recording), 0600))
	return fn
}

func TestParseError(t *testing.T) {
	w := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"-nosuchflag"}, w), exitParseError)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "* error: "), w.String())
}

func TestHelp(t *testing.T) {
	w := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"-help"}, w), 0)
	test.ExpectSuccess(t, strings.Contains(w.String(), "available sub-modes: RUN, DEBUG, DECODE, PERFORMANCE, VERSION"), w.String())
}

func TestVersion(t *testing.T) {
	w := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"version"}, w), 0)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "tk2000sim "), w.String())
}

func TestDecode(t *testing.T) {
	w := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"decode", "-address=0x021000", "a9", "42"}, w), 0)
	test.ExpectSuccess(t, w.Compare("02:1000: lda #$42\n"), w.String())

	w.Clear()
	test.ExpectEquality(t, launch([]string{"decode", "4c,00,20"}, w), 0)
	test.ExpectSuccess(t, w.Compare("00:0000: jmp $2000\n"), w.String())

	w.Clear()
	test.ExpectEquality(t, launch([]string{"decode"}, w), exitModeError)
	test.ExpectSuccess(t, w.Compare("* error in DECODE mode: bytes required for DECODE mode\n"), w.String())

	w.Clear()
	test.ExpectEquality(t, launch([]string{"decode", "-address=0x1000000", "ea"}, w), exitModeError)
}

func TestRunMissingReplay(t *testing.T) {
	workspace(t)

	w := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"run"}, w), exitModeError)
	test.ExpectSuccess(t, w.Compare("* error in RUN mode: replay file required for RUN mode\n"), w.String())

	w.Clear()
	test.ExpectEquality(t, launch([]string{"run", "nosuchfile.csv"}, w), exitModeError)
}

func TestRun(t *testing.T) {
	fn := workspace(t)

	w := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"run", "-prefs", "sim.batchsize::100", fn}, w), 0)

	expected := `000000 > PC=1000 A=0000 X=0000 Y=0000
000000  CPU > 00:1000: lda #$42
000001 > PC=1002 A=0000 X=0000 Y=0000
000001  CPU > 00:1002: jmp $2000
000002 > PC=2000 A=0000 X=0000 Y=0000
000002  CPU > 00:2000: nop
000003 > PC=2001 A=0000 X=0000 Y=0000
3 instructions (0 mismatches) after 63 cycles
`
	test.ExpectSuccess(t, w.Compare(expected), w.String())
}

func TestRunQuietWithDigest(t *testing.T) {
	fn := workspace(t)

	w := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"run", "-quiet", "-digest", fn}, w), 0)

	lines := w.Lines()
	test.DemandEquality(t, len(lines), 3)
	test.ExpectEquality(t, lines[0], "3 instructions (0 mismatches) after 63 cycles")
	test.ExpectSuccess(t, strings.HasPrefix(lines[1], "video digest: "), lines[1])
	test.ExpectSuccess(t, strings.HasSuffix(lines[1], "(0 frames)"), lines[1])
	test.ExpectSuccess(t, strings.HasPrefix(lines[2], "audio digest: "), lines[2])
}

func TestRunTraceFileAndWav(t *testing.T) {
	fn := workspace(t)
	dir := filepath.Dir(fn)

	trace := filepath.Join(dir, "trace.log")
	wav := filepath.Join(dir, "audio.wav")

	w := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"run", "-trace", trace, "-wav", wav, fn}, w), 0)
	test.ExpectSuccess(t, w.Compare("3 instructions (0 mismatches) after 63 cycles\n"), w.String())

	b, err := os.ReadFile(trace)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, strings.Count(string(b), "CPU > "), 3)

	_, err = os.Stat(wav)
	test.ExpectSuccess(t, err)
}

func TestRunMismatch(t *testing.T) {
	fn := workspace(t)
	ref := filepath.Join(filepath.Dir(fn), "reference.log")
	test.DemandSuccess(t, os.WriteFile(ref, []byte("REF > 00:1000: lda #$42\nREF > 00:1002: jmp $3000\n"), 0600))

	w := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"run", "-quiet", "-ref", ref, fn}, w), exitMismatch)
	test.ExpectSuccess(t, w.Compare("3 instructions (1 mismatches) after 63 cycles\n"), w.String())
}
