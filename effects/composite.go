package effects

import (
	"image"

	"github.com/disintegration/imaging"
)

// overlayAt composites src onto dst at (x, y) with full opacity, in
// place. Several operators (shake, wiggle, infinite) build their output
// by overlaying pieces of the original frame onto a fresh transparent
// canvas; imaging.Overlay does the alpha compositing, this just folds
// the result back into dst's existing buffer instead of allocating a new
// top-level image every call.
func overlayAt(dst *image.NRGBA, src image.Image, x, y int) {
	result := imaging.Overlay(dst, src, image.Pt(x, y), 1.0)
	copy(dst.Pix, result.Pix)
}
