package effects

import (
	"math"

	"github.com/srinathh/gifx/align"
	"github.com/srinathh/gifx/commands"
	"github.com/srinathh/gifx/frame"
	"github.com/srinathh/gifx/rng"
)

const channelCount = 4 // NRGBA

// Slide rotates every row of each frame horizontally, the shift growing
// frame over frame so the whole canvas appears to scroll. Forwards
// rotates rows to the right, Backwards to the left; either way the row's
// content wraps, so a full-width shift (shift == width) is equivalent to
// no shift at all.
func Slide(src *rng.Source, frames []*frame.Frame, speed float32, dir commands.SlideDirection) []*frame.Frame {
	if len(frames) == 0 {
		return frames
	}

	delayCS := float64(frames[0].Delay.Centiseconds())
	width := frames[0].Width()
	height := frames[0].Height()

	csPerSlide := (50.0 * float64(speed)) / 8.0
	shiftSize := float64(width) * delayCS / csPerSlide
	interval := int(math.Floor(float64(width) / shiftSize))

	frames = align.AlignSpeed(frames, 6.0)
	frames = align.Align(src, frames, interval)

	for i, f := range frames {
		shiftPx := int(math.Round(float64(i)*shiftSize)) % width
		if shiftPx < 0 {
			shiftPx += width
		}
		slideFrameRows(f, width, height, shiftPx, dir)
	}

	return frames
}

func slideFrameRows(f *frame.Frame, width, height, shiftPx int, dir commands.SlideDirection) {
	shiftBytes := shiftPx * channelCount
	rowBytes := width * channelCount

	row := make([]byte, rowBytes)
	for y := 0; y < height; y++ {
		off := f.Pix.PixOffset(0, y)
		src := f.Pix.Pix[off : off+rowBytes]
		copy(row, src)

		switch dir {
		case commands.SlideForwards:
			rotateRight(row, shiftBytes)
		case commands.SlideBackwards:
			rotateLeft(row, shiftBytes)
		}

		copy(src, row)
	}
}

// rotateRight rotates buf right by n bytes in place, wrapping.
func rotateRight(buf []byte, n int) {
	if len(buf) == 0 {
		return
	}
	n %= len(buf)
	if n == 0 {
		return
	}
	reverse(buf)
	reverse(buf[:n])
	reverse(buf[n:])
}

// rotateLeft rotates buf left by n bytes in place, wrapping.
func rotateLeft(buf []byte, n int) {
	if len(buf) == 0 {
		return
	}
	n %= len(buf)
	if n == 0 {
		return
	}
	reverse(buf[:n])
	reverse(buf[n:])
	reverse(buf)
}

func reverse(buf []byte) {
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
}
