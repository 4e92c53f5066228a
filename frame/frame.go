// Package frame holds the in-memory representation of a single animation
// frame shared by every effect operator in gifx.
package frame

import "image"

// Delay is a frame delay stored as a (numerator, denominator) pair rather
// than a plain integer; operators read it only through Centiseconds.
type Delay struct {
	NumerMS int64
	Denom   int64
}

// NewDelayFromCentiseconds builds a Delay equivalent to c centiseconds by
// storing it as (10c, 1) milliseconds.
func NewDelayFromCentiseconds(c int64) Delay {
	return Delay{NumerMS: 10 * c, Denom: 1}
}

// Centiseconds returns NumerMS*Denom/10 in integer arithmetic, which is c
// for the (10c, 1) form NewDelayFromCentiseconds builds; a zero Denom
// yields 0. Operators must only ever read delays through this accessor.
func (d Delay) Centiseconds() int64 {
	if d.Denom == 0 {
		return 0
	}
	return (d.NumerMS * d.Denom) / 10
}

// Frame is a bitmap plus its logical canvas offset and inter-frame delay.
// All frames in a pipeline share Width/Height after decode; operators may
// assume this once the codec boundary hands them off.
type Frame struct {
	Pix        *image.NRGBA
	Left, Top  int
	Delay      Delay
}

// Bounds returns the pixel buffer's bounds for convenience.
func (f *Frame) Bounds() image.Rectangle {
	return f.Pix.Bounds()
}

// Width and Height return the buffer's size in pixels.
func (f *Frame) Width() int  { return f.Pix.Bounds().Dx() }
func (f *Frame) Height() int { return f.Pix.Bounds().Dy() }

// Clone returns a deep copy of the frame so operators that need to read
// the original while writing a new buffer never alias pixel memory.
func (f *Frame) Clone() *Frame {
	src := f.Pix
	dst := image.NewNRGBA(src.Bounds())
	copy(dst.Pix, src.Pix)
	return &Frame{Pix: dst, Left: f.Left, Top: f.Top, Delay: f.Delay}
}

// New allocates a fully transparent frame of the given size, inheriting
// the offset and delay of an existing frame. Several operators (shake,
// wiggle, infinite) build their output by compositing onto a fresh
// transparent canvas of this kind.
func New(width, height int, left, top int, delay Delay) *Frame {
	return &Frame{
		Pix:   image.NewNRGBA(image.Rect(0, 0, width, height)),
		Left:  left,
		Top:   top,
		Delay: delay,
	}
}

// CloneSeq deep-copies a slice of frame pointers.
func CloneSeq(frames []*Frame) []*Frame {
	out := make([]*Frame, len(frames))
	for i, f := range frames {
		out[i] = f.Clone()
	}
	return out
}
