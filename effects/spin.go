package effects

import (
	"math"

	"github.com/srinathh/gifx/align"
	"github.com/srinathh/gifx/commands"
	"github.com/srinathh/gifx/frame"
	"github.com/srinathh/gifx/rng"
)

// Spin rotates the whole animation continuously: align_speed(8.0) gives
// enough temporal resolution, then align(interval) pads to a multiple of
// interval = floor(360/deg) frames, and each frame is assigned its own
// phase angle.
func Spin(src *rng.Source, frames []*frame.Frame, speed float32, dir commands.SpinDirection) []*frame.Frame {
	if len(frames) == 0 {
		return frames
	}

	cs := float64(frames[0].Delay.Centiseconds())
	csPerRotation := (200.0 * float64(speed)) / 8.0
	deg := (360.0 * cs) / csPerRotation
	interval := int(math.Floor(360.0 / deg))

	if dir == commands.SpinCounterClockwise {
		deg = -deg
	}

	frames = align.AlignSpeed(frames, 8.0)
	frames = align.Align(src, frames, interval)

	for i, f := range frames {
		phase := math.Mod(float64(i)*deg, 360)
		frames[i] = RotateFrame(f, phase)
	}

	return frames
}
