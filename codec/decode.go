// Package codec is the decode/encode boundary (spec C5): turning raw GIF
// or PNG bytes into a uniform sequence of frame.Frame buffers, and turning
// a processed sequence back into an infinite-loop GIF byte stream. It is
// the one place gifx leans on the standard library's own image codecs
// (image/gif, image/png) — exactly the "external collaborator" the
// teacher's own tool, goanigiffy, treats them as.
package codec

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/gif"
	"image/png"

	"github.com/srinathh/gifx/frame"
)

// Decode ingests bytes per extension ("gif" or "png") into a sequence of
// uniformly-sized frames. Any other extension is an error.
func Decode(data []byte, extension string) ([]*frame.Frame, error) {
	switch extension {
	case "gif":
		return decodeGIF(data)
	case "png":
		return decodePNG(data)
	default:
		return nil, fmt.Errorf("unsupported extension %q", extension)
	}
}

// decodeGIF composites every source frame onto a running canvas so
// partial-update GIFs (frames smaller than the logical screen, with their
// own left/top offset and disposal method) come out as full-size,
// self-contained NRGBA buffers — the uniformity every operator assumes.
func decodeGIF(data []byte) ([]*frame.Frame, error) {
	g, err := gif.DecodeAll(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if len(g.Image) == 0 {
		return nil, fmt.Errorf("gif has no frames")
	}

	width, height := g.Config.Width, g.Config.Height
	canvas := image.NewNRGBA(image.Rect(0, 0, width, height))

	var previous *image.NRGBA
	frames := make([]*frame.Frame, 0, len(g.Image))

	for i, paletted := range g.Image {
		disposal := byte(gif.DisposalNone)
		if i < len(g.Disposal) {
			disposal = g.Disposal[i]
		}

		if disposal == gif.DisposalPrevious {
			snap := image.NewNRGBA(canvas.Bounds())
			copy(snap.Pix, canvas.Pix)
			previous = snap
		}

		draw.Draw(canvas, paletted.Bounds(), paletted, paletted.Bounds().Min, draw.Over)

		out := image.NewNRGBA(canvas.Bounds())
		copy(out.Pix, canvas.Pix)

		delay := 0
		if i < len(g.Delay) {
			delay = g.Delay[i]
		}
		frames = append(frames, &frame.Frame{
			Pix:   out,
			Delay: frame.NewDelayFromCentiseconds(int64(delay)),
		})

		switch disposal {
		case gif.DisposalBackground:
			draw.Draw(canvas, paletted.Bounds(), image.Transparent, image.Point{}, draw.Src)
		case gif.DisposalPrevious:
			if previous != nil {
				copy(canvas.Pix, previous.Pix)
			}
		}
	}

	return frames, nil
}

// decodePNG produces a single frame with a 2-centisecond delay — as low
// as the format goes, for maximum headroom under whatever speed-derived
// operator runs next — and collapses every fully-transparent pixel to
// (0,0,0,0) so GIF's single-color-key transparency survives re-encoding.
func decodePNG(data []byte) ([]*frame.Frame, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)

	for i := 0; i+3 < len(out.Pix); i += 4 {
		if out.Pix[i+3] == 0 {
			out.Pix[i] = 0
			out.Pix[i+1] = 0
			out.Pix[i+2] = 0
		}
	}

	return []*frame.Frame{{
		Pix:   out,
		Delay: frame.NewDelayFromCentiseconds(2),
	}}, nil
}
