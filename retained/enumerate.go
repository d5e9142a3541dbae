package retained

import (
	"iter"

	"github.com/samber/lo"
)

// Controls returns the controls a layout pass arranges, in placement order:
// reversed when Reverse is set, without invisible controls unless
// IncludeHidden is set. Non-Rect children are skipped.
//
// The sequence is restartable. Each iteration takes a fresh snapshot of the
// child list.
func (c *Container) Controls() iter.Seq[Rect] {
	return func(yield func(Rect) bool) {
		rects := c.snapshot(c.Config())
		defer releaseRectSlice(rects)
		for _, r := range rects {
			if !yield(r) {
				return
			}
		}
	}
}

// snapshot collects the arranged children into a pooled slice.
// Caller must release it with releaseRectSlice.
func (c *Container) snapshot(cfg Config) []Rect {
	children := c.childSource().Children()
	rects := acquireRectSlice(len(children))
	for _, child := range children {
		r, ok := child.(Rect)
		if !ok {
			continue
		}
		if !cfg.IncludeHidden && !r.LayoutState().Visible {
			continue
		}
		rects = append(rects, r)
	}
	if cfg.Reverse {
		lo.Reverse(rects)
	}
	return rects
}
