package retained

import (
	"errors"
	"fmt"
	"math"

	"github.com/goki/mat32"
	"github.com/samber/lo"
)

var layoutDebug = false // Set to true for debug logging

// SetLayoutDebug toggles tracing of layout passes to stdout.
func SetLayoutDebug(on bool) {
	layoutDebug = on
}

func debugLog(format string, args ...interface{}) {
	if layoutDebug {
		fmt.Printf(format+"\n", args...)
	}
}

// ErrNonFinite is returned when a layout pass produces NaN or infinite
// geometry. The pass is discarded and child geometry is left unchanged.
var ErrNonFinite = errors.New("non-finite layout geometry")

// Strategy identifies how a layout pass finalized the children.
// Exactly one strategy applies per pass.
type Strategy int

const (
	// StrategyAlign shifts the children by the container's flow alignment.
	StrategyAlign Strategy = iota

	// StrategyExpand hands leftover flow space to flow-expanding children.
	StrategyExpand

	// StrategyScaleUp grows all children uniformly to fill the flow axis.
	StrategyScaleUp

	// StrategyScaleDown shrinks all children uniformly to fit the flow axis.
	StrategyScaleDown
)

func (s Strategy) String() string {
	switch s {
	case StrategyAlign:
		return "align"
	case StrategyExpand:
		return "expand"
	case StrategyScaleUp:
		return "scale_up"
	case StrategyScaleDown:
		return "scale_down"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Result is the outcome of one layout pass.
type Result struct {
	Strategy Strategy

	// AvailableFlow and AvailableFit are the container's size less the
	// inner margin on both sides.
	AvailableFlow float32
	AvailableFit  float32

	// ContentFlow is the flow extent the children used before finalizing,
	// separation included.
	ContentFlow float32

	// StretchSum is the sum of the clamped stretch ratios of the children
	// that expand along the flow axis.
	StretchSum float32

	Separation  float32
	InnerMargin mat32.Vec2

	// Placements are in placement order (after Reverse).
	Placements []Placement
}

// Placement returns the placement computed for the given control.
func (r Result) Placement(id ControlID) (Placement, bool) {
	return lo.Find(r.Placements, func(p Placement) bool {
		return p.ID == id
	})
}

// Compute runs a layout pass without touching any control.
func (c *Container) Compute() (Result, error) {
	res, rects, err := c.compute()
	releaseRectSlice(rects)
	return res, err
}

// boxItem holds a child's scratch geometry during one pass.
type boxItem struct {
	state ControlState
	pos   mat32.Vec2
	size  mat32.Vec2
}

// boxLayout is the state of one pass. It lives only for the duration of
// compute.
type boxLayout struct {
	axis      Axis
	cfg       Config
	margin    mat32.Vec2
	availFlow float32
	availFit  float32
	sep       float32

	items       []boxItem
	contentFlow float32
	stretchSum  float32
}

// compute returns the pooled child snapshot alongside the result, also on
// error. Callers release it with releaseRectSlice.
func (c *Container) compute() (Result, []Rect, error) {
	cfg := c.Config()
	theme := c.Theme()
	size := c.Control.Size()

	l := &boxLayout{
		axis: Axis{Vertical: cfg.Vertical},
		cfg:  cfg,
	}
	l.margin = innerMargin(l.axis, cfg, size)
	avail := size.Sub(l.margin.MulScalar(2))
	l.availFlow = mat32.Max(0, l.axis.FlowOf(avail))
	l.availFit = mat32.Max(0, l.axis.FitOf(avail))
	l.sep = separation(cfg, theme, l.availFit)

	rects := c.snapshot(cfg)

	debugLog("container %d: size=%v avail=(%.1f, %.1f) sep=%.1f children=%d",
		c.ID(), size, l.availFlow, l.availFit, l.sep, len(rects))

	l.place(rects)
	strategy := l.finalize()

	res := Result{
		Strategy:      strategy,
		AvailableFlow: l.availFlow,
		AvailableFit:  l.availFit,
		ContentFlow:   l.contentFlow,
		StretchSum:    l.stretchSum,
		Separation:    l.sep,
		InnerMargin:   l.margin,
		Placements:    make([]Placement, len(l.items)),
	}
	for i, it := range l.items {
		if !finiteVec(it.pos) || !finiteVec(it.size) {
			return Result{}, rects, fmt.Errorf("container %d: child %d (%s): %w",
				c.ID(), it.state.ID, it.state.Name, ErrNonFinite)
		}
		res.Placements[i] = Placement{
			ID:            it.state.ID,
			Position:      it.pos,
			Size:          it.size,
			ResetRotation: cfg.OverrideRotation,
			ResetScale:    cfg.OverrideScale,
		}
	}
	debugLog("container %d: strategy=%v content=%.1f stretch=%.2f",
		c.ID(), strategy, l.contentFlow, l.stretchSum)
	return res, rects, nil
}

// innerMargin combines the pixel margin with the proportional one, which is
// measured against the container's fit-axis size.
func innerMargin(ax Axis, cfg Config, size mat32.Vec2) mat32.Vec2 {
	return cfg.InnerMarginPixels.Add(cfg.InnerMarginProportional.MulScalar(ax.FitOf(size)))
}

// separation is the gap placed between consecutive children. It never goes
// negative, so offsets along the flow axis only grow.
func separation(cfg Config, theme ThemeSource, availFit float32) float32 {
	sep := cfg.SeparationPixels + availFit*cfg.SeparationProportional
	if theme != nil {
		sep += theme.Constant(ThemeClass, SeparationConstant)
		if cfg.BoxThemeSeparation {
			sep += theme.Constant(BoxContainerThemeClass, SeparationConstant)
		}
	}
	return mat32.Max(0, sep)
}

// place walks the children once along the flow axis, sizing each on the fit
// axis and tallying the flow extent and the stretch ratios of expanding
// children.
func (l *boxLayout) place(rects []Rect) {
	l.items = make([]boxItem, 0, len(rects))
	var offset float32
	for i, r := range rects {
		state := r.LayoutState()
		if i > 0 {
			offset += l.sep
		}
		size, fitOffset := resolveFit(l.axis, state, l.availFit)
		pos := l.margin.
			Add(l.axis.FlowVector(offset)).
			Add(l.axis.FitVector(fitOffset))
		l.items = append(l.items, boxItem{state: state, pos: pos, size: size})

		debugLog("  child[%d] id=%d min=%v size=%v pos=%v", i, state.ID, state.MinSize, size, pos)

		offset += l.axis.FlowOf(size)
		if l.axis.FlowPolicy(state).Expands() {
			l.stretchSum += mat32.Max(0, state.StretchRatio)
		}
	}
	l.contentFlow = offset
}

// finalize picks and applies one strategy.
func (l *boxLayout) finalize() Strategy {
	if l.contentFlow <= l.availFlow {
		switch {
		case l.stretchSum > 0:
			l.expand()
			return StrategyExpand
		case l.cfg.ExpandToFit:
			l.scaleToFit()
			return StrategyScaleUp
		default:
			l.align()
			return StrategyAlign
		}
	}
	if l.cfg.ShrinkToFit {
		l.scaleToFit()
		return StrategyScaleDown
	}
	l.align()
	return StrategyAlign
}

// expand distributes the leftover flow space among flow-expanding children
// by stretch ratio. Expand+Fill children grow; Expand-only children keep
// their size and leave the space after them. Every later child moves by the
// space handed out before it.
func (l *boxLayout) expand() {
	leftover := l.availFlow - l.contentFlow
	if leftover <= 0 {
		return
	}
	var shift float32
	for i := range l.items {
		it := &l.items[i]
		it.pos = it.pos.Add(l.axis.FlowVector(shift))

		policy := l.axis.FlowPolicy(it.state)
		if !policy.Expands() {
			continue
		}
		share := leftover * (mat32.Max(0, it.state.StretchRatio) / l.stretchSum)
		if policy.Fills() {
			it.size = it.size.Add(l.axis.FlowVector(share))
		}
		shift += share
	}
}

// scaleToFit scales every child uniformly so the content exactly spans the
// flow axis, then re-aligns each child on the fit axis.
// Flow offsets are scaled relative to the inner margin.
func (l *boxLayout) scaleToFit() {
	scale := float32(1)
	if l.contentFlow > 0 {
		scale = l.availFlow / l.contentFlow
	}
	marginFlow := l.axis.FlowOf(l.margin)
	marginFit := l.axis.FitOf(l.margin)
	for i := range l.items {
		it := &l.items[i]
		it.size = it.size.MulScalar(scale)
		flow := marginFlow + (l.axis.FlowOf(it.pos)-marginFlow)*scale
		fit := marginFit + alignFit(l.axis.FitPolicy(it.state), l.axis.FitOf(it.size), l.availFit)
		it.pos = l.axis.WithFit(l.axis.WithFlow(it.pos, flow), fit)
	}
}

// align shifts all children along the flow axis by the container's
// alignment. Overflowing content is not clamped.
func (l *boxLayout) align() {
	var add float32
	switch l.cfg.FlowAlignment {
	case AlignCenter:
		add = 0.5 * (l.availFlow - l.contentFlow)
	case AlignEnd:
		add = l.availFlow - l.contentFlow
	}
	if add == 0 {
		return
	}
	for i := range l.items {
		l.items[i].pos = l.items[i].pos.Add(l.axis.FlowVector(add))
	}
}

func finiteVec(v mat32.Vec2) bool {
	return finite(v.X) && finite(v.Y)
}

func finite(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}
