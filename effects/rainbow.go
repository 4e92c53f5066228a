package effects

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/srinathh/gifx/align"
	"github.com/srinathh/gifx/frame"
	"github.com/srinathh/gifx/rng"
)

const (
	rainbowBlackThreshold = 30.0
	rainbowWhiteThreshold = 220.0
)

// Rainbow cycles every pixel's hue frame over frame. Pure near-black and
// near-white pixels have an undefined hue in RGB space, so they're
// pinned to fixed HSL anchors before shifting — without that they'd
// never visibly cycle. The hue-shift fold below (+shift below 180,
// 180-shift above) is a deliberate zig-zag, not a sweep: don't
// linearize it.
func Rainbow(src *rng.Source, frames []*frame.Frame, speed float32) []*frame.Frame {
	if len(frames) == 0 {
		return frames
	}

	frames = align.AlignSpeed(frames, 8.0)

	delayCS := float64(frames[0].Delay.Centiseconds())
	csPerCycle := (120.0 * float64(speed)) / 8.0
	shiftStep := 360.0 * delayCS / csPerCycle
	interval := int(math.Floor(360.0 / shiftStep))

	frames = align.Align(src, frames, interval)

	for i, f := range frames {
		shift := math.Mod(float64(i)*shiftStep, 360)
		shiftFramePixels(f, shift)
	}

	return frames
}

func shiftFramePixels(f *frame.Frame, shift float64) {
	pix := f.Pix.Pix
	var hueAdjust float64
	if shift < 180 {
		hueAdjust = shift
	} else {
		hueAdjust = 180 - shift
	}

	for i := 0; i+3 < len(pix); i += 4 {
		if pix[i+3] == 0 {
			continue
		}

		r, g, b := float64(pix[i]), float64(pix[i+1]), float64(pix[i+2])

		var h, s, l float64
		switch {
		case r <= rainbowBlackThreshold && g <= rainbowBlackThreshold && b <= rainbowBlackThreshold:
			h, s, l = 90, 0.5, 0.2
		case r >= rainbowWhiteThreshold && g >= rainbowWhiteThreshold && b >= rainbowWhiteThreshold:
			h, s, l = 180, 0.5, 0.8
		default:
			h, s, l = colorful.Color{R: r / 255, G: g / 255, B: b / 255}.Hsl()
		}

		h += hueAdjust
		for h > 360 {
			h -= 360
		}
		for h < 0 {
			h += 360
		}

		out := colorful.Hsl(h, s, l).Clamped()
		nr, ng, nb := out.RGB255()

		pix[i] = nr
		pix[i+1] = ng
		pix[i+2] = nb
	}
}
