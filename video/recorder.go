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
	"io"
	"os/exec"
	"strconv"
	"time"

	"github.com/theypsilon-test/TK2000-MiSTer/logger"
)

// Recorder encodes completed frames to a video file using an ffmpeg process.
// The Frame() function satisfies the FrameFunc type.
type Recorder struct {
	filename string
	width    int
	height   int

	encoder *exec.Cmd
	pipe    io.WriteCloser

	// the time the recording started
	start time.Time

	frames int

	// the first write error. frames are not written once an error has
	// occurred
	err error
}

// NewRecorder starts an ffmpeg process that will encode frames of the given
// dimensions to the named file.
func NewRecorder(filename string, width int, height int, fps int) (*Recorder, error) {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return nil, fmt.Errorf("video: %w", err)
	}

	rec := &Recorder{
		filename: filename,
		width:    width,
		height:   height,
	}

	rec.encoder = exec.Command("ffmpeg",
		"-hide_banner", "-loglevel", "error",
		"-f", "rawvideo",
		"-pixel_format", "rgba",
		"-video_size", fmt.Sprintf("%dx%d", width, height),
		"-framerate", strconv.Itoa(fps),
		"-i", "-",
		"-pix_fmt", "yuv420p",
		"-y", filename)

	var err error
	rec.pipe, err = rec.encoder.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("video: %w", err)
	}

	if err := rec.encoder.Start(); err != nil {
		return nil, fmt.Errorf("video: %w", err)
	}

	rec.start = time.Now()
	logger.Logf(logger.Allow, "video", "recording to %s", filename)

	return rec, nil
}

func (rec *Recorder) String() string {
	return fmt.Sprintf("%s (%d frames)", rec.filename, rec.frames)
}

// Frame sends a completed frame to the encoder.
func (rec *Recorder) Frame(frame *image.RGBA, _ int) {
	if rec.err != nil || rec.pipe == nil {
		return
	}

	if frame.Rect.Dx() != rec.width || frame.Rect.Dy() != rec.height {
		rec.err = fmt.Errorf("video: frame size has changed")
		logger.Log(logger.Allow, "video", rec.err)
		return
	}

	if _, err := rec.pipe.Write(frame.Pix); err != nil {
		rec.err = fmt.Errorf("video: %w", err)
		logger.Log(logger.Allow, "video", rec.err)
		return
	}

	rec.frames++
}

// End the recording and wait for the encoder to finish.
func (rec *Recorder) End() error {
	if rec.pipe == nil {
		return rec.err
	}

	rec.pipe.Close()
	err := rec.encoder.Wait()
	rec.pipe = nil

	diff := time.Since(rec.start)
	logger.Logf(logger.Allow, "video", "%d frames recorded in %s", rec.frames, diff.Round(time.Second))

	if rec.err != nil {
		return rec.err
	}
	if err != nil {
		return fmt.Errorf("video: %w", err)
	}
	return nil
}
