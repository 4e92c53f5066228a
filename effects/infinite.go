package effects

import (
	"math"

	"github.com/disintegration/imaging"

	"github.com/srinathh/gifx/align"
	"github.com/srinathh/gifx/frame"
	"github.com/srinathh/gifx/rng"
)

const (
	infiniteScalesAmount = 5
	infiniteScaleDiff    = 1.0
)

// Infinite stacks five nested, progressively-scaling copies of each
// frame onto a fresh transparent canvas, producing a self-similar
// recursive-zoom look. The fresh-canvas choice (rather than compositing
// onto the original buffer) is deliberate: it's what gives scales below 1
// a predictable transparent border instead of bleeding the unscaled
// original through.
//
// TODO: normalize speed the way Spin does (see spin.go).
func Infinite(src *rng.Source, frames []*frame.Frame, speed float32) []*frame.Frame {
	if len(frames) == 0 {
		return frames
	}

	frames = align.AlignSpeed(frames, 8.0)

	delayCS := float64(frames[0].Delay.Centiseconds())
	csPerInfinite := (100.0 * float64(speed)) / 8.0
	scaleStep := delayCS / csPerInfinite
	interval := int(math.Floor(infiniteScaleDiff / scaleStep))

	frames = align.Align(src, frames, interval)

	scales := initInfiniteScales(nil, infiniteScalesAmount, infiniteScaleDiff, scaleStep)

	for i, f := range frames {
		frames[i] = infiniteShiftFrame(f, scales)
		scales = advanceInfiniteScales(scales, infiniteScaleDiff, scaleStep)
	}

	return frames
}

func initInfiniteScales(scales []float64, amount int, scaleDiff, scaleStep float64) []float64 {
	scales = scales[:0]
	for depth := 0; depth < amount; depth++ {
		scales = append(scales, (float64(amount)-float64(depth)-1)*scaleDiff+scaleStep)
	}
	return scales
}

func advanceInfiniteScales(scales []float64, scaleDiff, scaleStep float64) []float64 {
	first := 0.0
	if len(scales) > 0 {
		first = scales[0]
	}

	if first >= float64(len(scales))*scaleDiff {
		return initInfiniteScales(scales, len(scales), scaleDiff, scaleStep)
	}

	for i := range scales {
		scales[i] += scaleStep
	}
	return scales
}

func infiniteShiftFrame(f *frame.Frame, scales []float64) *frame.Frame {
	width := f.Width()
	height := f.Height()
	out := frame.New(width, height, f.Left, f.Top, f.Delay)

	for _, s := range scales {
		scaledWidth := math.Round(float64(width) * s)
		scaledHeight := math.Round(float64(height) * s)

		scaled := imaging.Resize(f.Pix, int(scaledWidth), int(scaledHeight), imaging.NearestNeighbor)

		dx := math.Round((scaledWidth - float64(width)) / 2)
		dy := math.Round((scaledHeight - float64(height)) / 2)

		overlayAt(out.Pix, scaled, -int(dx), -int(dy))
	}

	return out
}
