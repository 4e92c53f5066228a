package codec

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/srinathh/gifx/frame"
)

func encodePNGFixture(t *testing.T) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA(x, y, color.NRGBA{100, 150, 200, 255})
		}
	}
	img.SetNRGBA(1, 1, color.NRGBA{17, 34, 51, 0})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDecodePNGCollapsesTransparentPixels(t *testing.T) {
	frames, err := Decode(encodePNGFixture(t), "png")
	require.NoError(t, err)
	require.Len(t, frames, 1)

	f := frames[0]
	require.Equal(t, int64(2), f.Delay.Centiseconds())

	c := f.Pix.NRGBAAt(1, 1)
	require.Equal(t, color.NRGBA{0, 0, 0, 0}, c)
}

func TestDecodeUnsupportedExtension(t *testing.T) {
	_, err := Decode([]byte{}, "bmp")
	require.Error(t, err)
}

func TestEncodeProducesLoopingDecodableGIF(t *testing.T) {
	f1 := &frame.Frame{Pix: image.NewNRGBA(image.Rect(0, 0, 3, 3)), Delay: frame.NewDelayFromCentiseconds(10)}
	f2 := &frame.Frame{Pix: image.NewNRGBA(image.Rect(0, 0, 3, 3)), Delay: frame.NewDelayFromCentiseconds(10)}
	for _, f := range []*frame.Frame{f1, f2} {
		for i := 0; i+3 < len(f.Pix.Pix); i += 4 {
			f.Pix.Pix[i], f.Pix.Pix[i+1], f.Pix.Pix[i+2], f.Pix.Pix[i+3] = 10, 20, 30, 255
		}
	}

	out, err := Encode([]*frame.Frame{f1, f2})
	require.NoError(t, err)

	decoded, err := gif.DecodeAll(bytes.NewReader(out))
	require.NoError(t, err)
	require.Equal(t, 0, decoded.LoopCount)
	require.GreaterOrEqual(t, len(decoded.Image), 1)
}

func TestEncodeEmptyFramesErrors(t *testing.T) {
	_, err := Encode(nil)
	require.Error(t, err)
}
