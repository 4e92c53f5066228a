// Package gifx transforms animated raster images — animated GIFs and
// single-frame PNGs — by applying an ordered pipeline of visual effects,
// re-encoding the result as an infinite-loop GIF.
package gifx

import (
	"github.com/srinathh/gifx/commands"
	"github.com/srinathh/gifx/gifxerr"
	"github.com/srinathh/gifx/pipeline"
	"github.com/srinathh/gifx/rng"
)

// Re-export the command wire type and error kinds so callers only need
// to import this one package for the common case.
type (
	RawCommand = commands.RawCommand
	Error      = gifxerr.Error
	ErrorKind  = gifxerr.Kind
)

const (
	UnsupportedExtension = gifxerr.UnsupportedExtension
	DecodeFailure        = gifxerr.DecodeFailure
	EncodeFailure        = gifxerr.EncodeFailure
	MalformedCommand     = gifxerr.MalformedCommand
)

// ApplyCommands is the library's single entry point: data plus a format
// hint plus a structured command list in, a re-encoded looping GIF out.
// extension must be "gif" or "png". Each element of raw must have both a
// "name" and a "param" field; the parser converts param from string into
// whatever type the named operator expects.
func ApplyCommands(data []byte, extension string, raw []RawCommand) ([]byte, error) {
	return pipeline.Apply(rng.Shared, data, extension, raw)
}
