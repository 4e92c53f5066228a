package effects

import (
	"github.com/srinathh/gifx/commands"
	"github.com/srinathh/gifx/frame"
	"github.com/srinathh/gifx/rng"
)

// Dispatch applies a single parsed command to frames, returning the
// (possibly reallocated) sequence. This is the sum-type-plus-pattern-
// match dispatch spec §9 calls for — Go's switch over Command.Kind
// standing in for the original's enum match.
func Dispatch(src *rng.Source, frames []*frame.Frame, cmd commands.Command) []*frame.Frame {
	switch cmd.Kind {
	case commands.KindFlip:
		Flip(frames, cmd.FlipDirection)
		return frames
	case commands.KindHyperspeed:
		return Hyperspeed(frames)
	case commands.KindInfinite:
		return Infinite(src, frames, cmd.InfiniteSpeed)
	case commands.KindRain:
		return Rain(src, frames, cmd.RainKind)
	case commands.KindRainbow:
		return Rainbow(src, frames, cmd.RainbowSpeed)
	case commands.KindReverse:
		Reverse(frames)
		return frames
	case commands.KindRotate:
		Rotate(frames, cmd.RotateDegrees)
		return frames
	case commands.KindShake:
		return Shake(src, frames, cmd.ShakeStrength)
	case commands.KindSlide:
		return Slide(src, frames, cmd.SlideSpeed, cmd.SlideDirection)
	case commands.KindSpeed:
		Speed(frames, cmd.SpeedValue)
		return frames
	case commands.KindSpin:
		return Spin(src, frames, cmd.SpinSpeed, cmd.SpinDirection)
	case commands.KindWiggle:
		return Wiggle(src, frames, cmd.WiggleSpeed)
	default:
		return frames
	}
}
