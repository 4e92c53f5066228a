// Package effects holds the per-frame pixel operators (spec C7–C15) and
// the dispatcher (spec C16's inner loop) that maps a commands.Command to
// one of them.
package effects

import (
	"image"
	"math"

	"github.com/disintegration/imaging"

	"github.com/srinathh/gifx/commands"
	"github.com/srinathh/gifx/frame"
)

// Speed sets every frame's delay to value centiseconds, rounded.
func Speed(frames []*frame.Frame, value float32) {
	d := frame.NewDelayFromCentiseconds(int64(math.Round(float64(value))))
	for _, f := range frames {
		f.Delay = d
	}
}

// Hyperspeed halves the frame count (keeping even indices) and sets the
// survivors to a 2-centisecond delay, unless there are 4 or fewer frames
// to begin with, in which case it degrades to Speed(2).
func Hyperspeed(frames []*frame.Frame) []*frame.Frame {
	if len(frames) <= 4 {
		Speed(frames, 2)
		return frames
	}

	out := make([]*frame.Frame, 0, (len(frames)+1)/2)
	for i, f := range frames {
		if i%2 != 0 {
			continue
		}
		f.Delay = frame.NewDelayFromCentiseconds(2)
		out = append(out, f)
	}
	return out
}

// Reverse reverses frame order in place.
func Reverse(frames []*frame.Frame) {
	for i, j := 0, len(frames)-1; i < j; i, j = i+1, j-1 {
		frames[i], frames[j] = frames[j], frames[i]
	}
}

// Flip mirrors every frame horizontally or vertically in place.
func Flip(frames []*frame.Frame, dir commands.FlipDirection) {
	for _, f := range frames {
		switch dir {
		case commands.FlipHorizontal:
			copyInto(f.Pix, imaging.FlipH(f.Pix))
		case commands.FlipVertical:
			copyInto(f.Pix, imaging.FlipV(f.Pix))
		}
	}
}

// Rotate rotates every frame about its center by degrees, nearest
// neighbor, output dimensions unchanged (corners are cropped), with
// out-of-bounds pixels filled transparent black.
func Rotate(frames []*frame.Frame, degrees float32) {
	for _, f := range frames {
		f.Pix = rotateAboutCenter(f.Pix, float64(degrees))
	}
}

// RotateFrame rotates a single buffer the same way Rotate does; spin
// reuses this per-frame to assign each aligned frame its own phase angle.
func RotateFrame(f *frame.Frame, degrees float64) *frame.Frame {
	return &frame.Frame{
		Pix:   rotateAboutCenter(f.Pix, degrees),
		Left:  f.Left,
		Top:   f.Top,
		Delay: f.Delay,
	}
}

// rotateAboutCenter rotates src by angleDegrees (clockwise for positive
// values) around its own center, nearest-neighbor, writing into a buffer
// of the exact same size as src. Points that land outside src are
// transparent black. imaging.Rotate enlarges its output to fit the whole
// rotated image, which doesn't match spec's "crop the corners" behavior,
// so this walks destination pixels and inverse-maps them by hand — the
// same inverse-rotation approach imageproc's rotate_about_center uses.
func rotateAboutCenter(src *image.NRGBA, angleDegrees float64) *image.NRGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))

	theta := angleDegrees * math.Pi / 180
	sin, cos := math.Sin(theta), math.Cos(theta)
	cx, cy := float64(w)/2, float64(h)/2

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy

			// Inverse rotation maps destination back into source space.
			sx := cos*dx + sin*dy + cx
			sy := -sin*dx + cos*dy + cy

			sxi := int(math.Floor(sx))
			syi := int(math.Floor(sy))

			if sxi < 0 || sxi >= w || syi < 0 || syi >= h {
				continue // leaves dst pixel at its zero value: transparent black
			}
			copyPixel(dst, x, y, src, sxi+b.Min.X, syi+b.Min.Y)
		}
	}

	return dst
}

func copyPixel(dst *image.NRGBA, dx, dy int, src *image.NRGBA, sx, sy int) {
	di := dst.PixOffset(dx, dy)
	si := src.PixOffset(sx, sy)
	copy(dst.Pix[di:di+4], src.Pix[si:si+4])
}

func copyInto(dst *image.NRGBA, src *image.NRGBA) {
	copy(dst.Pix, src.Pix)
}
