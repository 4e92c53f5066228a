package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/srinathh/gifx/gifxerr"
)

// Parse turns the host's raw name/param list into a Bundle: an ordered
// operator sequence plus the single resize pulled out of it. The last
// "resize" entry in the list wins, mirroring the original's
// get_target_size, which scans the whole list and keeps the final match.
func Parse(raw []RawCommand) (Bundle, error) {
	var bundle Bundle
	bundle.Ops = make([]Command, 0, len(raw))

	for _, rc := range raw {
		if rc.Name == "" {
			return Bundle{}, gifxerr.New(gifxerr.MalformedCommand, "missing \"name\"")
		}

		switch rc.Name {
		case "resize":
			resize, err := parseResize(rc.Param)
			if err != nil {
				return Bundle{}, err
			}
			bundle.Resize = resize

		case "flip":
			dir, err := parseFlipDirection(rc.Param)
			if err != nil {
				return Bundle{}, err
			}
			bundle.Ops = append(bundle.Ops, Command{Kind: KindFlip, FlipDirection: dir})

		case "hyperspeed":
			bundle.Ops = append(bundle.Ops, Command{Kind: KindHyperspeed})

		case "infinite":
			v, err := parseF32(rc.Name, rc.Param)
			if err != nil {
				return Bundle{}, err
			}
			bundle.Ops = append(bundle.Ops, Command{Kind: KindInfinite, InfiniteSpeed: v})

		case "rain":
			kind, err := parseRainKind(rc.Param)
			if err != nil {
				return Bundle{}, err
			}
			bundle.Ops = append(bundle.Ops, Command{Kind: KindRain, RainKind: kind})

		case "rainbow":
			v, err := parseF32(rc.Name, rc.Param)
			if err != nil {
				return Bundle{}, err
			}
			bundle.Ops = append(bundle.Ops, Command{Kind: KindRainbow, RainbowSpeed: v})

		case "reverse":
			bundle.Ops = append(bundle.Ops, Command{Kind: KindReverse})

		case "rotate":
			v, err := parseF32(rc.Name, rc.Param)
			if err != nil {
				return Bundle{}, err
			}
			bundle.Ops = append(bundle.Ops, Command{Kind: KindRotate, RotateDegrees: v})

		case "shake":
			v, err := parseF32(rc.Name, rc.Param)
			if err != nil {
				return Bundle{}, err
			}
			bundle.Ops = append(bundle.Ops, Command{Kind: KindShake, ShakeStrength: v})

		case "slide":
			v, err := parseF32(rc.Name, rc.Param)
			if err != nil {
				return Bundle{}, err
			}
			bundle.Ops = append(bundle.Ops, Command{Kind: KindSlide, SlideDirection: SlideForwards, SlideSpeed: v})

		case "sliderev":
			v, err := parseF32(rc.Name, rc.Param)
			if err != nil {
				return Bundle{}, err
			}
			bundle.Ops = append(bundle.Ops, Command{Kind: KindSlide, SlideDirection: SlideBackwards, SlideSpeed: v})

		case "speed":
			v, err := parseF32(rc.Name, rc.Param)
			if err != nil {
				return Bundle{}, err
			}
			bundle.Ops = append(bundle.Ops, Command{Kind: KindSpeed, SpeedValue: v})

		case "spin":
			v, err := parseF32(rc.Name, rc.Param)
			if err != nil {
				return Bundle{}, err
			}
			bundle.Ops = append(bundle.Ops, Command{Kind: KindSpin, SpinDirection: SpinClockwise, SpinSpeed: v})

		case "spinrev":
			v, err := parseF32(rc.Name, rc.Param)
			if err != nil {
				return Bundle{}, err
			}
			bundle.Ops = append(bundle.Ops, Command{Kind: KindSpin, SpinDirection: SpinCounterClockwise, SpinSpeed: v})

		case "wiggle":
			v, err := parseF32(rc.Name, rc.Param)
			if err != nil {
				return Bundle{}, err
			}
			bundle.Ops = append(bundle.Ops, Command{Kind: KindWiggle, WiggleSpeed: v})

		default:
			return Bundle{}, gifxerr.New(gifxerr.MalformedCommand, fmt.Sprintf("unknown command name %q", rc.Name))
		}
	}

	return bundle, nil
}

func parseF32(name, param string) (float32, error) {
	v, err := strconv.ParseFloat(param, 32)
	if err != nil {
		return 0, gifxerr.Wrap(gifxerr.MalformedCommand, fmt.Sprintf("failed to parse param %q for %q", param, name), err)
	}
	return float32(v), nil
}

func parseU8(name, param string) (uint8, error) {
	v, err := strconv.ParseUint(param, 10, 8)
	if err != nil {
		return 0, gifxerr.Wrap(gifxerr.MalformedCommand, fmt.Sprintf("failed to parse param %q for %q", param, name), err)
	}
	return uint8(v), nil
}

func parseFlipDirection(param string) (FlipDirection, error) {
	v, err := parseU8("flip", param)
	if err != nil {
		return 0, err
	}
	if v == 0 {
		return FlipHorizontal, nil
	}
	return FlipVertical, nil
}

func parseRainKind(param string) (RainKind, error) {
	v, err := parseU8("rain", param)
	if err != nil {
		return 0, err
	}
	if v == 0 {
		return RainRegular, nil
	}
	return RainGlitter, nil
}

// parseResize accepts "0.5" for a uniform Scale, or "2x3" for a per-axis
// Stretch.
func parseResize(param string) (Resize, error) {
	if x, y, ok := strings.Cut(param, "x"); ok {
		sx, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return Resize{}, gifxerr.Wrap(gifxerr.MalformedCommand, fmt.Sprintf("failed to parse resize x %q", x), err)
		}
		sy, err := strconv.ParseFloat(y, 64)
		if err != nil {
			return Resize{}, gifxerr.Wrap(gifxerr.MalformedCommand, fmt.Sprintf("failed to parse resize y %q", y), err)
		}
		return Resize{Kind: ResizeStretch, ScaleX: sx, ScaleY: sy}, nil
	}

	s, err := strconv.ParseFloat(param, 64)
	if err != nil {
		return Resize{}, gifxerr.Wrap(gifxerr.MalformedCommand, fmt.Sprintf("failed to parse resize %q", param), err)
	}
	return Resize{Kind: ResizeScale, ScaleX: s, ScaleY: s}, nil
}
