package retained

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownSizePolicy is returned when parsing an unrecognised size policy name.
	ErrUnknownSizePolicy = errors.New("unknown size policy")

	// ErrUnknownAlignment is returned when parsing an unrecognised alignment name.
	ErrUnknownAlignment = errors.New("unknown alignment")
)

// SizePolicy controls how a control responds to the space available on one axis.
type SizePolicy int

const (
	// SizeNone keeps the minimum size. On the fit axis it behaves like SizeShrinkBegin.
	SizeNone SizePolicy = iota

	// SizeExpand takes all available fit space, or a share of leftover flow space
	// (position only, the size is not grown).
	SizeExpand

	// SizeFill scales the control uniformly so its fit size matches the container.
	SizeFill

	// SizeExpandFill combines both: leftover flow space grows the control.
	SizeExpandFill

	// SizeShrinkBegin scales the control down (never up) to fit, aligned at the start.
	SizeShrinkBegin

	// SizeShrinkEnd scales the control down to fit, aligned at the end.
	SizeShrinkEnd

	// SizeShrinkCenter scales the control down to fit, centered.
	SizeShrinkCenter
)

// Host bit flags, as used by engines that store size policies as combinable bits.
const (
	SizeBitFill         uint8 = 1
	SizeBitExpand       uint8 = 2
	SizeBitShrinkCenter uint8 = 4
	SizeBitShrinkEnd    uint8 = 8
)

// Expands reports whether the policy includes Expand.
func (p SizePolicy) Expands() bool {
	return p == SizeExpand || p == SizeExpandFill
}

// Fills reports whether the policy includes Fill.
func (p SizePolicy) Fills() bool {
	return p == SizeFill || p == SizeExpandFill
}

// SizePolicyFromBits converts host bit flags into a SizePolicy.
// Precedence is Expand, Fill, ShrinkEnd, ShrinkCenter, then ShrinkBegin.
func SizePolicyFromBits(bits uint8) SizePolicy {
	switch {
	case bits&SizeBitExpand != 0 && bits&SizeBitFill != 0:
		return SizeExpandFill
	case bits&SizeBitExpand != 0:
		return SizeExpand
	case bits&SizeBitFill != 0:
		return SizeFill
	case bits&SizeBitShrinkEnd == SizeBitShrinkEnd:
		return SizeShrinkEnd
	case bits&SizeBitShrinkCenter == SizeBitShrinkCenter:
		return SizeShrinkCenter
	case bits == 0:
		return SizeNone
	default:
		return SizeShrinkBegin
	}
}

// Bits returns the host bit flags for the policy.
func (p SizePolicy) Bits() uint8 {
	switch p {
	case SizeExpand:
		return SizeBitExpand
	case SizeFill:
		return SizeBitFill
	case SizeExpandFill:
		return SizeBitExpand | SizeBitFill
	case SizeShrinkEnd:
		return SizeBitShrinkEnd
	case SizeShrinkCenter:
		return SizeBitShrinkCenter
	default:
		return 0
	}
}

var sizePolicyNames = map[SizePolicy]string{
	SizeNone:         "none",
	SizeExpand:       "expand",
	SizeFill:         "fill",
	SizeExpandFill:   "expand_fill",
	SizeShrinkBegin:  "shrink_begin",
	SizeShrinkEnd:    "shrink_end",
	SizeShrinkCenter: "shrink_center",
}

func (p SizePolicy) String() string {
	if name, ok := sizePolicyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("SizePolicy(%d)", int(p))
}

// MarshalText implements encoding.TextMarshaler.
func (p SizePolicy) MarshalText() ([]byte, error) {
	name, ok := sizePolicyNames[p]
	if !ok {
		return nil, fmt.Errorf("size policy %d: %w", int(p), ErrUnknownSizePolicy)
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *SizePolicy) UnmarshalText(text []byte) error {
	parsed, err := ParseSizePolicy(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ParseSizePolicy parses names such as "expand_fill" or "shrink_center".
// Hyphens are accepted in place of underscores.
func ParseSizePolicy(s string) (SizePolicy, error) {
	s = normalizeName(s)
	for p, name := range sizePolicyNames {
		if name == s {
			return p, nil
		}
	}
	return SizeNone, fmt.Errorf("%q: %w", s, ErrUnknownSizePolicy)
}

// Alignment places content along the flow axis when it does not fill the container.
type Alignment int

const (
	AlignBegin Alignment = iota
	AlignCenter
	AlignEnd
)

func (a Alignment) String() string {
	switch a {
	case AlignBegin:
		return "begin"
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	default:
		return fmt.Sprintf("Alignment(%d)", int(a))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a Alignment) MarshalText() ([]byte, error) {
	if a < AlignBegin || a > AlignEnd {
		return nil, fmt.Errorf("alignment %d: %w", int(a), ErrUnknownAlignment)
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Alignment) UnmarshalText(text []byte) error {
	switch normalizeName(string(text)) {
	case "begin", "start":
		*a = AlignBegin
	case "center":
		*a = AlignCenter
	case "end":
		*a = AlignEnd
	default:
		return fmt.Errorf("%q: %w", string(text), ErrUnknownAlignment)
	}
	return nil
}

func normalizeName(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
}
