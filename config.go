package boxaspect

import "github.com/agiangrant/boxaspect/retained"

// Config holds a box's layout options.
// This is a re-export of retained.Config for consumer convenience.
type Config = retained.Config

// SizePolicy is how a control claims space on one axis.
// This is a re-export of retained.SizePolicy for consumer convenience.
type SizePolicy = retained.SizePolicy

// Alignment places underfilling content along the flow axis.
type Alignment = retained.Alignment

const (
	SizeNone         = retained.SizeNone
	SizeExpand       = retained.SizeExpand
	SizeFill         = retained.SizeFill
	SizeExpandFill   = retained.SizeExpandFill
	SizeShrinkBegin  = retained.SizeShrinkBegin
	SizeShrinkEnd    = retained.SizeShrinkEnd
	SizeShrinkCenter = retained.SizeShrinkCenter

	AlignBegin  = retained.AlignBegin
	AlignCenter = retained.AlignCenter
	AlignEnd    = retained.AlignEnd
)

// DefaultConfig returns the options of a new box.
func DefaultConfig() Config {
	return retained.DefaultConfig()
}

// SetLayoutDebug toggles tracing of layout passes to stdout.
func SetLayoutDebug(on bool) {
	retained.SetLayoutDebug(on)
}
