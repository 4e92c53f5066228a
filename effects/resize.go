package effects

import (
	"math"

	"github.com/disintegration/imaging"

	"github.com/srinathh/gifx/commands"
	"github.com/srinathh/gifx/frame"
)

// Resize resamples every frame to round(w*sx) x round(h*sy) with nearest
// neighbor. Called once by the pipeline driver: before the operator loop
// if resize.PreCommands(), after if resize.PostCommands(), skipped
// entirely if the overall scale is exactly 1.
func Resize(frames []*frame.Frame, resize commands.Resize) {
	if len(frames) == 0 {
		return
	}
	sx, sy := resize.Scale()

	w := frames[0].Width()
	h := frames[0].Height()
	targetW := int(math.Round(float64(w) * sx))
	targetH := int(math.Round(float64(h) * sy))
	if targetW < 1 {
		targetW = 1
	}
	if targetH < 1 {
		targetH = 1
	}

	for _, f := range frames {
		f.Pix = imaging.Resize(f.Pix, targetW, targetH, imaging.NearestNeighbor)
	}
}
