// Package commands models the structured command list a host supplies
// (spec C6): a tagged-variant Command sequence plus a single Resize that
// is extracted out of the sequence during parsing. Go has no sum type, so
// dispatch is a Kind enum plus a switch, the closest idiomatic match to
// the original Rust enum/match pair (see Command.Kind and effects'
// dispatcher).
package commands

// Kind tags which variant a Command holds.
type Kind int

const (
	KindFlip Kind = iota
	KindHyperspeed
	KindInfinite
	KindRain
	KindRainbow
	KindReverse
	KindRotate
	KindShake
	KindSlide
	KindSpeed
	KindSpin
	KindWiggle
)

// FlipDirection selects the mirror axis for the flip command.
type FlipDirection int

const (
	FlipHorizontal FlipDirection = iota
	FlipVertical
)

// RainKind selects the drop color palette for the rain command.
type RainKind int

const (
	RainRegular RainKind = iota
	RainGlitter
)

// SlideDirection selects which way rows rotate for the slide command.
type SlideDirection int

const (
	SlideForwards SlideDirection = iota
	SlideBackwards
)

// SpinDirection selects the rotation sense for the spin command.
type SpinDirection int

const (
	SpinClockwise SpinDirection = iota
	SpinCounterClockwise
)

// Command is a tagged variant holding exactly the payload its Kind
// implies; fields for other kinds are left zero.
type Command struct {
	Kind Kind

	FlipDirection FlipDirection

	InfiniteSpeed float32

	RainKind RainKind

	RainbowSpeed float32

	RotateDegrees float32

	ShakeStrength float32

	SlideDirection SlideDirection
	SlideSpeed     float32

	SpeedValue float32

	SpinDirection SpinDirection
	SpinSpeed     float32

	WiggleSpeed float32
}

// ResizeKind tags which Resize variant is in effect.
type ResizeKind int

const (
	ResizeNone ResizeKind = iota
	ResizeScale
	ResizeStretch
)

// Resize is None, a uniform Scale, or a per-axis Stretch. It is always
// extracted from the command sequence during parsing and run exactly
// once: before the operator loop if it shrinks, after if it enlarges.
type Resize struct {
	Kind   ResizeKind
	ScaleX float64
	ScaleY float64
}

// Scale returns the (x, y) scale factors this resize applies.
func (r Resize) Scale() (x, y float64) {
	switch r.Kind {
	case ResizeScale:
		return r.ScaleX, r.ScaleX
	case ResizeStretch:
		return r.ScaleX, r.ScaleY
	default:
		return 1, 1
	}
}

// OverallSize is the product of the two scale factors.
func (r Resize) OverallSize() float64 {
	x, y := r.Scale()
	return x * y
}

// PreCommands reports whether this resize should run before the operator
// loop (shrinking first saves work downstream).
func (r Resize) PreCommands() bool { return r.OverallSize() < 1 }

// PostCommands reports whether this resize should run after the operator
// loop (enlarging last avoids amplifying operator-introduced jaggies).
func (r Resize) PostCommands() bool { return r.OverallSize() > 1 }

// Bundle is an ordered operator sequence plus the single resize extracted
// from it. The Resize never appears in Ops.
type Bundle struct {
	Resize Resize
	Ops    []Command
}

// RawCommand is the wire shape a host supplies: a two-field mapping whose
// keys are name and param, param always a string regardless of the
// operator's actual parameter type.
type RawCommand struct {
	Name  string
	Param string
}
