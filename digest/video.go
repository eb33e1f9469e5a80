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

package digest

import (
	"crypto/sha1"
	"fmt"
	"image"
)

// Video computes a digest of every completed frame. The digest of each frame
// includes the digest of the previous frame.
type Video struct {
	digest   [sha1.Size]byte
	pixels   []byte
	frameNum int
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{}
}

// Hash implements the Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Video) ResetDigest() {
	clear(dig.digest[:])
	dig.frameNum = 0
}

// FrameNum returns the number of the most recent frame included in the
// digest.
func (dig *Video) FrameNum() int {
	return dig.frameNum
}

// Frame adds a completed frame to the digest. It satisfies the video.FrameFunc
// type.
func (dig *Video) Frame(frame *image.RGBA, frameNum int) {
	// the previous digest is at the head of the pixel data
	l := len(dig.digest) + len(frame.Pix)
	if len(dig.pixels) != l {
		dig.pixels = make([]byte, l)
	}

	n := copy(dig.pixels, dig.digest[:])
	copy(dig.pixels[n:], frame.Pix)

	dig.digest = sha1.Sum(dig.pixels)
	dig.frameNum = frameNum
}
