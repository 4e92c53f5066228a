package effects

import (
	"image"
	"math"

	"github.com/disintegration/imaging"

	"github.com/srinathh/gifx/align"
	"github.com/srinathh/gifx/frame"
	"github.com/srinathh/gifx/rng"
)

var wiggleOffsets = [8]float64{0, -1, -2, -1, 0, 1, 2, 1}

// Wiggle splits each frame into horizontal stripes and shifts each
// stripe left/right by a phase-dependent amount, the phase advancing
// both across stripes within a frame and across frames, producing a
// sinusoidal-looking horizontal jitter. Two historical parameterizations
// of this effect exist; this one derives its interval from a fixed
// 32-frame cycle, which is the variant that produces stable loops.
//
// Like Spin, the stripe-phase step and the padding interval are derived
// from the source frames' delay before AlignSpeed(6.0) pads the sequence.
func Wiggle(src *rng.Source, frames []*frame.Frame, speed float32) []*frame.Frame {
	if len(frames) == 0 {
		return frames
	}

	delayCS := float64(frames[0].Delay.Centiseconds())
	width := frames[0].Width()
	height := frames[0].Height()

	const frameCycle = 32.0
	csPerWiggle := (64.0 * float64(speed)) / 8.0
	wiggleStep := frameCycle * delayCS / csPerWiggle
	intervalF := frameCycle / wiggleStep
	interval := int(math.Floor(intervalF))

	frames = align.AlignSpeed(frames, 6.0)
	frames = align.Align(src, frames, interval)

	stripeHeight := int(math.Floor(float64(height) / 48.0))
	if stripeHeight < 1 {
		stripeHeight = 1
	}
	shiftSize := math.Ceil(float64(width) * 0.02)
	if shiftSize < 1 {
		shiftSize = 1
	}

	for i, f := range frames {
		frames[i] = wiggleFrame(f, width, height, stripeHeight, shiftSize, i, interval)
	}

	return frames
}

func wiggleFrame(f *frame.Frame, width, height, stripeHeight int, shiftSize float64, frameIndex, interval int) *frame.Frame {
	out := frame.New(width, height, f.Left, f.Top, f.Delay)

	cycle := frameIndex
	if interval > 0 {
		cycle = frameIndex % interval
	}

	stripe := 0
	for y := 0; y < height; y += stripeHeight {
		bottom := y + stripeHeight
		if bottom > height {
			break
		}

		phase := 0
		if interval > 0 {
			phase = (int(8.0*float64(cycle)/float64(interval)) + stripe) % 8
		} else {
			phase = stripe % 8
		}
		offset := int(math.Round(wiggleOffsets[phase] * shiftSize))

		cropped := imaging.Crop(f.Pix, image.Rect(0, y, width, bottom))
		overlayAt(out.Pix, cropped, offset, y)

		stripe++
	}

	return out
}
