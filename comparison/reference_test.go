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

package comparison_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/theypsilon-test/TK2000-MiSTer/comparison"
	"github.com/theypsilon-test/TK2000-MiSTer/test"
)

func TestPlainReference(t *testing.T) {
	ref, err := comparison.NewReference(strings.NewReader("00:1000: lda #$42\n\n00:1002: jmp $2000\n"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ref.Len(), 2)

	r, ok := ref.Compare("00:1000: lda #$42")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, r, "00:1000: lda #$42")

	r, ok = ref.Compare("00:1002: jmp $3000")
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, r, "00:1002: jmp $2000")

	// past the end of the reference everything matches
	_, ok = ref.Compare("00:2000: nop")
	test.ExpectSuccess(t, ok)
	_, ok = ref.Compare("00:2001: nop")
	test.ExpectSuccess(t, ok)

	ref.Rewind()
	_, ok = ref.Compare("00:1000: lda #$42")
	test.ExpectSuccess(t, ok)
}

func TestTraceReference(t *testing.T) {
	// the output of a previous trace can be used as a reference
	log := `000000 > PC=1000 A=0000 X=0000 Y=0000
000000  CPU > 00:1000: lda #$42
000001 > PC=1002 A=0000 X=0000 Y=0000
DIFF at 000001 - 001002
000001  REF > 00:1002: jmp $3000
000001  CPU > 00:1002: jmp $2000
000002 > PC=2000 A=0000 X=0000 Y=0000
00:2000: ??? PC=2000 IN0=2 IN1=0 IN2=0 IN3=0 IN4=0 MA0=2000 MA1=0 MA2=0 MA3=0 MA4=0
`
	ref, err := comparison.NewReference(strings.NewReader(log))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ref.Len(), 4)

	r, _ := ref.Compare("")
	test.ExpectEquality(t, r, "00:1000: lda #$42")
	r, _ = ref.Compare("")
	test.ExpectEquality(t, r, "00:1002: jmp $3000")
	r, _ = ref.Compare("")
	test.ExpectEquality(t, r, "00:1002: jmp $2000")
	r, _ = ref.Compare("")
	test.ExpectSuccess(t, strings.HasPrefix(r, "00:2000: ???"))
}

func TestLoadReference(t *testing.T) {
	_, err := comparison.LoadReference(filepath.Join(t.TempDir(), "missing"))
	test.ExpectFailure(t, err)

	pth := filepath.Join(t.TempDir(), "ref.log")
	test.DemandSuccess(t, os.WriteFile(pth, []byte("00:1000: nop\n"), 0600))

	ref, err := comparison.LoadReference(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ref.Len(), 1)
}
