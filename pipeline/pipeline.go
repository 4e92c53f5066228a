// Package pipeline is the driver (spec C16): parse commands, decode,
// pre-resize if shrinking, run every operator in order, post-resize if
// enlarging, encode.
package pipeline

import (
	"github.com/srinathh/gifx/codec"
	"github.com/srinathh/gifx/commands"
	"github.com/srinathh/gifx/effects"
	"github.com/srinathh/gifx/frame"
	"github.com/srinathh/gifx/gifxerr"
	"github.com/srinathh/gifx/rng"
)

// Run executes the full pipeline against already-decoded frames and an
// already-parsed command bundle, returning the transformed frames. Split
// out from Apply so tests can exercise the operator loop directly
// against frames built in memory, without going through a codec.
func Run(src *rng.Source, frames []*frame.Frame, bundle commands.Bundle) []*frame.Frame {
	if bundle.Resize.PreCommands() {
		effects.Resize(frames, bundle.Resize)
	}

	for _, cmd := range bundle.Ops {
		frames = effects.Dispatch(src, frames, cmd)
	}

	if bundle.Resize.PostCommands() {
		effects.Resize(frames, bundle.Resize)
	}

	return frames
}

// Apply is the full entry point: decode data per extension, parse raw
// commands, run the pipeline, and re-encode as a looping GIF.
func Apply(src *rng.Source, data []byte, extension string, raw []commands.RawCommand) (output []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = gifxerr.New(gifxerr.EncodeFailure, "panic during pipeline execution")
			output = nil
		}
	}()

	if extension != "gif" && extension != "png" {
		return nil, gifxerr.New(gifxerr.UnsupportedExtension, "extension must be \"gif\" or \"png\"")
	}

	bundle, parseErr := commands.Parse(raw)
	if parseErr != nil {
		return nil, parseErr
	}

	frames, decodeErr := codec.Decode(data, extension)
	if decodeErr != nil {
		return nil, gifxerr.Wrap(gifxerr.DecodeFailure, "failed to decode input", decodeErr)
	}

	frames = Run(src, frames, bundle)

	encoded, encodeErr := codec.Encode(frames)
	if encodeErr != nil {
		return nil, gifxerr.Wrap(gifxerr.EncodeFailure, "failed to encode output", encodeErr)
	}

	return encoded, nil
}
