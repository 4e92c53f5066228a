package align

import (
	"math"

	"github.com/srinathh/gifx/frame"
)

// Speed sets every frame's delay to the given number of centiseconds.
// It is the same primitive the Speed command (C7) dispatches to.
func Speed(frames []*frame.Frame, centiseconds float64) {
	d := frame.NewDelayFromCentiseconds(int64(math.Round(centiseconds)))
	for _, f := range frames {
		f.Delay = d
	}
}

// AlignSpeed pads frames with duplicates until their effective per-frame
// delay is at or below targetCentisecs (or down to the 2-centisecond
// floor GIF encoders honor), returning the (possibly unchanged) slice.
// Operators whose visual period is expressed in frame counts need a
// minimum temporal resolution; slow source GIFs get padded so the period
// math in spin/wiggle/rainbow/infinite stays meaningful.
//
// If the input is already at or under target, it is returned unchanged
// (frame count never decreases).
func AlignSpeed(frames []*frame.Frame, targetCentisecs float64) []*frame.Frame {
	if len(frames) == 0 {
		return frames
	}

	originalLen := len(frames)
	originalDelay := float64(frames[0].Delay.Centiseconds())
	if originalDelay <= targetCentisecs {
		return frames
	}

	current := append([]*frame.Frame(nil), frames...)
	newDelay := originalDelay

	for k := 0; ; k++ {
		next := append([]*frame.Frame(nil), current...)
		for i := 0; i < originalLen; i++ {
			pos := 2*i + k
			if pos > len(next) {
				pos = len(next)
			}
			dup := frames[i].Clone()
			next = append(next[:pos], append([]*frame.Frame{dup}, next[pos:]...)...)
		}
		current = next

		newDelay = originalDelay * float64(originalLen) / float64(len(current))
		if newDelay <= targetCentisecs || newDelay <= 2 {
			break
		}
	}

	Speed(current, math.Round(newDelay))
	return current
}
