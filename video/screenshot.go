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
	"image/png"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Scale returns a copy of the image enlarged by the scale factor. Pixels are
// not interpolated.
func Scale(img image.Image, scale int) *image.RGBA {
	scale = max(scale, 1)
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// Caption draws the text in the top left corner of the image.
func Caption(img draw.Image, text string) {
	face := basicfont.Face7x13
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.P(img.Bounds().Min.X+2, img.Bounds().Min.Y+face.Ascent+2),
	}

	// a dark background behind the text so that it is readable on any frame
	w := d.MeasureString(text).Ceil()
	bg := image.Rect(0, 0, w+4, face.Height+4).Add(img.Bounds().Min)
	draw.Draw(img, bg, image.NewUniform(color.RGBA{A: 0xff}), image.Point{}, draw.Src)

	d.DrawString(text)
}

// Screenshot saves the image to a PNG file, enlarged by the scale factor. The
// caption is omitted if it is empty.
func Screenshot(filename string, img image.Image, scale int, caption string) (rerr error) {
	dst := Scale(img, scale)
	if caption != "" {
		Caption(dst, caption)
	}

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("video: %w", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = fmt.Errorf("video: %w", err)
		}
	}()

	if err := png.Encode(f, dst); err != nil {
		return fmt.Errorf("video: %w", err)
	}

	return nil
}
