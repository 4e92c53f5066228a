package codec

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"

	"github.com/srinathh/gifx/frame"
)

// Encode re-encodes frames as a GIF byte stream with the loop-forever
// extension set. Quality is whatever stdlib's default GIF quantization
// (Plan9 palette, Floyd-Steinberg dithering) gives us per frame; the
// "speed=10" knob from the spec's reference encoder has
// no stdlib equivalent and is codec-defined here.
func Encode(frames []*frame.Frame) ([]byte, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("no frames to encode")
	}

	g := &gif.GIF{LoopCount: 0}
	for _, f := range frames {
		paletted, err := quantize(f.Pix)
		if err != nil {
			return nil, err
		}
		g.Image = append(g.Image, paletted)
		g.Delay = append(g.Delay, int(f.Delay.Centiseconds()))
		g.Disposal = append(g.Disposal, gif.DisposalNone)
	}

	var buf bytes.Buffer
	if err := gif.EncodeAll(&buf, g); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// quantize turns an NRGBA buffer into a paletted frame the same way the
// teacher's tool does: round-trip it through a single-frame GIF encode,
// which maps it onto the Plan9 palette with Floyd-Steinberg dithering
// (stdlib's defaults for nil options), then decode the result back
// into an *image.Paletted.
func quantize(img *image.NRGBA) (*image.Paletted, error) {
	var buf bytes.Buffer
	if err := gif.Encode(&buf, img, nil); err != nil {
		return nil, err
	}
	decoded, err := gif.Decode(&buf)
	if err != nil {
		return nil, err
	}
	return decoded.(*image.Paletted), nil
}
