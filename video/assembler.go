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

package video

import (
	"fmt"
	"image"
	"image/color"
)

// Default dimensions of the frame.
const (
	DefaultWidth  = 320
	DefaultHeight = 240
)

// FrameFunc is called when a frame is completed. The image must not be kept
// after the function returns.
type FrameFunc func(frame *image.RGBA, frameNum int)

// Assembler implements the hardware.VideoSink interface.
type Assembler struct {
	width  int
	height int

	// the frame being drawn and the most recently completed frame
	frame *image.RGBA
	last  *image.RGBA

	// position of the next pixel
	x, y int

	// value of the blanking signals at the previous pixel
	hblank bool
	vblank bool

	// number of completed frames
	frameNum int

	// the number of pixels that fell outside of the frame in the most
	// recently completed frame
	clipped     int
	lastClipped int

	onFrame []FrameFunc
}

// NewAssembler is the preferred method of initialisation for the Assembler
// type.
func NewAssembler(width int, height int) (*Assembler, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("video: bad frame dimensions (%dx%d)", width, height)
	}

	r := image.Rect(0, 0, width, height)
	return &Assembler{
		width:  width,
		height: height,
		frame:  image.NewRGBA(r),
		last:   image.NewRGBA(r),
	}, nil
}

func (a *Assembler) String() string {
	return fmt.Sprintf("frame %d (%d, %d)", a.frameNum, a.x, a.y)
}

// OnFrame adds a function to be called when a frame is completed.
func (a *Assembler) OnFrame(f FrameFunc) {
	a.onFrame = append(a.onFrame, f)
}

// FrameNum returns the number of completed frames.
func (a *Assembler) FrameNum() int {
	return a.frameNum
}

// Position returns the position of the next pixel.
func (a *Assembler) Position() (x int, y int) {
	return a.x, a.y
}

// Clipped returns the number of pixels in the last completed frame that did
// not fit the dimensions of the frame.
func (a *Assembler) Clipped() int {
	return a.lastClipped
}

// LastFrame returns a copy of the most recently completed frame.
func (a *Assembler) LastFrame() *image.RGBA {
	c := image.NewRGBA(a.last.Rect)
	copy(c.Pix, a.last.Pix)
	return c
}

// Clock implements the hardware.VideoSink interface. The colour is packed as
// 0xAABBGGRR. The sync signals are not used.
func (a *Assembler) Clock(hblank bool, vblank bool, _ bool, _ bool, colour uint32) {
	if !hblank && !vblank {
		if a.x < a.width && a.y < a.height {
			a.frame.SetRGBA(a.x, a.y, color.RGBA{
				R: uint8(colour),
				G: uint8(colour >> 8),
				B: uint8(colour >> 16),
				A: uint8(colour >> 24),
			})
		} else {
			a.clipped++
		}
		a.x++
	}

	if hblank && !a.hblank && a.x > 0 {
		a.x = 0
		a.y++
	}

	if vblank && !a.vblank {
		a.endFrame()
	}

	a.hblank = hblank
	a.vblank = vblank
}

func (a *Assembler) endFrame() {
	a.frame, a.last = a.last, a.frame
	a.frameNum++
	a.lastClipped = a.clipped
	a.clipped = 0
	a.x = 0
	a.y = 0

	for _, f := range a.onFrame {
		f(a.last, a.frameNum)
	}
}
