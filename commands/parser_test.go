package commands

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSimpleCommands(t *testing.T) {
	bundle, err := Parse([]RawCommand{
		{Name: "reverse", Param: "0"},
		{Name: "flip", Param: "1"},
	})
	require.NoError(t, err)
	require.Len(t, bundle.Ops, 2)
	require.Equal(t, KindReverse, bundle.Ops[0].Kind)
	require.Equal(t, KindFlip, bundle.Ops[1].Kind)
	require.Equal(t, FlipVertical, bundle.Ops[1].FlipDirection)
	require.Equal(t, ResizeNone, bundle.Resize.Kind)
}

func TestParseResizeScale(t *testing.T) {
	bundle, err := Parse([]RawCommand{{Name: "resize", Param: "0.5"}})
	require.NoError(t, err)
	require.Equal(t, ResizeScale, bundle.Resize.Kind)
	x, y := bundle.Resize.Scale()
	require.Equal(t, 0.5, x)
	require.Equal(t, 0.5, y)
}

func TestParseResizeStretch(t *testing.T) {
	bundle, err := Parse([]RawCommand{{Name: "resize", Param: "2x3"}})
	require.NoError(t, err)
	require.Equal(t, ResizeStretch, bundle.Resize.Kind)
	x, y := bundle.Resize.Scale()
	require.Equal(t, 2.0, x)
	require.Equal(t, 3.0, y)
}

func TestParseResizeLastOneWins(t *testing.T) {
	bundle, err := Parse([]RawCommand{
		{Name: "resize", Param: "2"},
		{Name: "reverse", Param: "0"},
		{Name: "resize", Param: "0.5"},
	})
	require.NoError(t, err)
	require.Equal(t, ResizeScale, bundle.Resize.Kind)
	x, _ := bundle.Resize.Scale()
	require.Equal(t, 0.5, x)
	// resize never appears in Ops even with multiple supplied.
	require.Len(t, bundle.Ops, 1)
	require.Equal(t, KindReverse, bundle.Ops[0].Kind)
}

func TestParseUnknownNameErrors(t *testing.T) {
	_, err := Parse([]RawCommand{{Name: "nonsense", Param: "0"}})
	require.Error(t, err)
}

func TestParseBadParamErrors(t *testing.T) {
	_, err := Parse([]RawCommand{{Name: "speed", Param: "not-a-number"}})
	require.Error(t, err)
}

func TestRawCommandJSONRejectsUnknownFields(t *testing.T) {
	_, err := DecodeRawCommands([]byte(`[{"name":"reverse","param":"0","extra":"x"}]`))
	require.Error(t, err)
}

func TestRawCommandJSONRequiresBothFields(t *testing.T) {
	_, err := DecodeRawCommands([]byte(`[{"name":"reverse"}]`))
	require.Error(t, err)
}
