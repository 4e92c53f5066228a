package pipeline

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/srinathh/gifx/commands"
	"github.com/srinathh/gifx/rng"
)

func buildGIF(t *testing.T, size int, colors []color.NRGBA, delayCS int) []byte {
	t.Helper()
	g := &gif.GIF{LoopCount: 0}
	for _, c := range colors {
		img := image.NewNRGBA(image.Rect(0, 0, size, size))
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				img.SetNRGBA(x, y, c)
			}
		}
		var buf bytes.Buffer
		require.NoError(t, gif.Encode(&buf, img, nil))
		decoded, err := gif.Decode(&buf)
		require.NoError(t, err)
		g.Image = append(g.Image, decoded.(*image.Paletted))
		g.Delay = append(g.Delay, delayCS)
		g.Disposal = append(g.Disposal, gif.DisposalNone)
	}
	var out bytes.Buffer
	require.NoError(t, gif.EncodeAll(&out, g))
	return out.Bytes()
}

func TestScenarioS1Reverse(t *testing.T) {
	red := color.NRGBA{255, 0, 0, 255}
	green := color.NRGBA{0, 255, 0, 255}
	data := buildGIF(t, 2, []color.NRGBA{red, green}, 10)

	out, err := Apply(rng.New(1), data, "gif", []commands.RawCommand{{Name: "reverse", Param: "0"}})
	require.NoError(t, err)

	decoded, err := gif.DecodeAll(bytes.NewReader(out))
	require.NoError(t, err)
	require.Equal(t, 0, decoded.LoopCount)
	require.Len(t, decoded.Image, 2)
	require.Equal(t, 10, decoded.Delay[0])
	require.Equal(t, 10, decoded.Delay[1])

	firstColor := decoded.Image[0].At(0, 0)
	r, g, b, _ := firstColor.RGBA()
	// Frame 0 after reverse should be the original green frame.
	require.Zero(t, r)
	require.NotZero(t, g)
	require.Zero(t, b)
}

func TestScenarioS2Hyperspeed(t *testing.T) {
	red := color.NRGBA{255, 0, 0, 255}
	green := color.NRGBA{0, 255, 0, 255}
	data := buildGIF(t, 2, []color.NRGBA{red, green}, 10)

	out, err := Apply(rng.New(1), data, "gif", []commands.RawCommand{{Name: "hyperspeed", Param: "0"}})
	require.NoError(t, err)

	decoded, err := gif.DecodeAll(bytes.NewReader(out))
	require.NoError(t, err)
	require.Len(t, decoded.Image, 2)
	for _, d := range decoded.Delay {
		require.Equal(t, 2, d)
	}
}

func TestScenarioS5ResizePreBranch(t *testing.T) {
	c := color.NRGBA{10, 20, 30, 255}
	data := buildGIF(t, 10, []color.NRGBA{c, c}, 10)

	out, err := Apply(rng.New(1), data, "gif", []commands.RawCommand{
		{Name: "resize", Param: "0.5"},
		{Name: "rotate", Param: "90"},
	})
	require.NoError(t, err)

	decoded, err := gif.DecodeAll(bytes.NewReader(out))
	require.NoError(t, err)
	for _, img := range decoded.Image {
		require.Equal(t, 5, img.Bounds().Dx())
		require.Equal(t, 5, img.Bounds().Dy())
	}
}

func TestScenarioS6ResizePostBranch(t *testing.T) {
	c := color.NRGBA{10, 20, 30, 255}
	data := buildGIF(t, 10, []color.NRGBA{c, c}, 10)

	out, err := Apply(rng.New(1), data, "gif", []commands.RawCommand{
		{Name: "rotate", Param: "90"},
		{Name: "resize", Param: "2"},
	})
	require.NoError(t, err)

	decoded, err := gif.DecodeAll(bytes.NewReader(out))
	require.NoError(t, err)
	for _, img := range decoded.Image {
		require.Equal(t, 20, img.Bounds().Dx())
		require.Equal(t, 20, img.Bounds().Dy())
	}
}

func TestUnsupportedExtensionErrors(t *testing.T) {
	_, err := Apply(rng.New(1), []byte{}, "bmp", nil)
	require.Error(t, err)
}

func TestMalformedCommandErrors(t *testing.T) {
	data := buildGIF(t, 2, []color.NRGBA{{1, 2, 3, 255}}, 10)
	_, err := Apply(rng.New(1), data, "gif", []commands.RawCommand{{Name: "nonsense", Param: "0"}})
	require.Error(t, err)
}
