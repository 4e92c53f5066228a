package effects

import (
	"math"

	"github.com/srinathh/gifx/align"
	"github.com/srinathh/gifx/commands"
	"github.com/srinathh/gifx/frame"
	"github.com/srinathh/gifx/rng"
)

type rainDrop struct {
	width, height int
	delayCS       float64

	x, y int

	speed, length, size int

	r, g, b uint8
}

func newRainDrop(src *rng.Source, width, height int, delayCS float64, kind commands.RainKind) *rainDrop {
	d := &rainDrop{
		width:   width,
		height:  height,
		delayCS: delayCS,
		x:       src.Intn(width),
		y:       src.Intn(height),
	}
	d.speed, d.length, d.size = resetDropStatic(src, delayCS)

	if kind == commands.RainGlitter {
		d.r = uint8(src.Intn(256))
		d.g = uint8(src.Intn(256))
		d.b = uint8(src.Intn(256))
	} else {
		d.r, d.g, d.b = 0, 120, 255
	}

	return d
}

// resetDropStatic draws a single random value and derives speed, length
// and size from it together, exactly as the original rain sprite does —
// all three share one draw rather than being independently random.
func resetDropStatic(src *rng.Source, delayCS float64) (speed, length, size int) {
	random := float64(src.Float32())
	speed = int(math.Floor(random*delayCS + delayCS))
	length = int(math.Floor(random*5 + 1))
	size = int(math.Floor(random*2 + 1))
	return
}

func (d *rainDrop) fall(src *rng.Source) {
	d.y += d.speed
	if d.y > d.height {
		d.y = 0
		d.speed, d.length, d.size = resetDropStatic(src, d.delayCS)
	}
}

func (d *rainDrop) paint(pix *frame.Frame) {
	for i := 0; i < d.length; i++ {
		for j := 0; j < d.size; j++ {
			x := d.x + j
			y := d.y + i
			if x >= d.width || y >= d.height {
				continue
			}
			off := pix.Pix.PixOffset(x, y)
			pix.Pix.Pix[off+0] = d.r
			pix.Pix.Pix[off+1] = d.g
			pix.Pix.Pix[off+2] = d.b
			pix.Pix.Pix[off+3] = 255
		}
	}
}

// Rain overlays a persistent set of falling drops across the whole
// animation: the same drops advance frame to frame so their motion reads
// as continuous rather than re-randomized noise.
func Rain(src *rng.Source, frames []*frame.Frame, kind commands.RainKind) []*frame.Frame {
	if len(frames) == 0 {
		return frames
	}

	width := frames[0].Width()
	height := frames[0].Height()
	delayCS := float64(frames[0].Delay.Centiseconds())

	if len(frames) < 12 {
		frames = align.Align(src, frames, 12)
	}

	count := (width + height) / 5
	drops := make([]*rainDrop, count)
	for i := range drops {
		drops[i] = newRainDrop(src, width, height, delayCS, kind)
	}

	for _, f := range frames {
		for _, d := range drops {
			d.paint(f)
			d.fall(src)
		}
	}

	return frames
}
