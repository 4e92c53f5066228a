// Package align implements the frame-alignment engine (spec C4) and the
// delay-driven padding helper align_speed (spec C3) that every periodic
// effect operator composes with before it assigns per-frame phases.
package align

import (
	"github.com/srinathh/gifx/frame"
	"github.com/srinathh/gifx/rng"
)

// Align lengthens frames to a multiple of interval by duplicating the
// whole input as many times as needed and then randomly pruning the
// excess, spreading deletions round-robin across copies so no single
// copy loses a disproportionate share. Deletions per round are capped at
// 20% of the input length; more copies are appended first if that bound
// would be exceeded.
//
// Ported from the original alignment routine (align_gif in the Rust
// source): the index arithmetic below mirrors it exactly, including the
// shrinking delete-range (base-i) that accounts for frames already
// removed earlier in the same call.
func Align(src *rng.Source, frames []*frame.Frame, interval int) []*frame.Frame {
	base := len(frames)
	if base == 0 {
		return nil
	}
	if interval <= 0 {
		interval = 1
	}

	aligned := make([]*frame.Frame, 0, base)
	for len(aligned) < interval {
		aligned = append(aligned, frames...)
	}

	framesToDelete := len(aligned) % interval
	for float64(framesToDelete)/float64(base) > 0.2 {
		aligned = append(aligned, frames...)
		framesToDelete = len(aligned) % interval
	}

	amountCopies := len(aligned) / base
	currentCopy := 0
	for i := 0; i < framesToDelete; i++ {
		frameToDelete := src.Intn(base - i)
		index := frameToDelete + currentCopy*(base-i-1)
		aligned = append(aligned[:index], aligned[index+1:]...)
		currentCopy = (currentCopy + 1) % amountCopies
	}

	return aligned
}
