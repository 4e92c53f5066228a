package effects

import (
	"math"

	"github.com/srinathh/gifx/align"
	"github.com/srinathh/gifx/frame"
	"github.com/srinathh/gifx/rng"
)

// Shake overlays the original frame at one of four diagonal offsets in a
// fixed quadrant cycle, producing a camera-shake wobble whose amplitude
// is controlled by strength (lower strength, bigger shake).
func Shake(src *rng.Source, frames []*frame.Frame, strength float32) []*frame.Frame {
	if len(frames) == 0 {
		return frames
	}

	delayCS := float64(frames[0].Delay.Centiseconds())
	width := frames[0].Width()
	height := frames[0].Height()

	const csPerShake = 20.0
	divisor := (4.0 * delayCS) / csPerShake
	interval := int(math.Floor(4.0 / divisor))
	if interval < 4 {
		interval = 4
	}

	strengthBase := (10.0 - float64(strength)) / 2.0
	sw := int(math.Ceil(strengthBase * float64(width) / 48.0))
	sh := int(math.Ceil(strengthBase * float64(height) / 48.0))

	frames = align.Align(src, frames, interval)
	step := interval / 4

	for i, f := range frames {
		cycle := i % interval

		var dx, dy int
		switch {
		case cycle < step:
			dx, dy = -sw, -sh
		case cycle < 2*step:
			dx, dy = -sw, sh
		case cycle < 3*step:
			dx, dy = sw, sh
		default:
			dx, dy = sw, -sh
		}

		out := frame.New(width, height, f.Left, f.Top, f.Delay)
		overlayAt(out.Pix, f.Pix, dx, dy)
		frames[i] = out
	}

	return frames
}
