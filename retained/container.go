package retained

import (
	"slices"
	"sync"
	"sync/atomic"

	"github.com/goki/mat32"
)

// Theme classes queried for the "separation" constant.
const (
	ThemeClass             = "BoxAspectContainer"
	BoxContainerThemeClass = "BoxContainer"
	SeparationConstant     = "separation"
)

// ThemeSource supplies numeric theme constants.
type ThemeSource interface {
	Constant(class, name string) float32
}

// ChildProvider supplies the ordered child list a container arranges.
// Entries that do not implement Rect are skipped.
type ChildProvider interface {
	Children() []any
}

// Config holds a container's layout options.
type Config struct {
	// FlowAlignment places content that underfills the flow axis when no
	// child expands and ExpandToFit is off.
	FlowAlignment Alignment

	// Vertical makes Y the flow axis.
	Vertical bool

	// Reverse places children in reverse order.
	Reverse bool

	// OverrideRotation forces child rotation to 0 on every layout.
	OverrideRotation bool

	// OverrideScale forces child scale to (1, 1) on every layout.
	OverrideScale bool

	// BoxThemeSeparation adds the BoxContainer theme separation.
	BoxThemeSeparation bool

	// SeparationPixels is extra space between children.
	SeparationPixels float32

	// SeparationProportional is extra space between children as a fraction
	// of the available fit size.
	SeparationProportional float32

	// ShrinkToFit scales overflowing content down to fit the flow axis.
	ShrinkToFit bool

	// ExpandToFit scales underfilling content up to fill the flow axis.
	ExpandToFit bool

	// IncludeHidden lays out invisible children too.
	IncludeHidden bool

	// InnerMarginPixels is the margin between the borders and the children.
	InnerMarginPixels mat32.Vec2

	// InnerMarginProportional is the margin as a fraction of the
	// container's fit-axis size.
	InnerMarginProportional mat32.Vec2
}

// DefaultConfig returns the options of a freshly created container.
func DefaultConfig() Config {
	return Config{FlowAlignment: AlignBegin}
}

// Container arranges child controls in a single row or column.
// It is itself a Control, so containers nest.
type Container struct {
	*Control

	configMu sync.RWMutex
	config   Config
	theme    ThemeSource
	children []any
	provider ChildProvider
	onLayout func(Result)
	deferred bool
	last     Result
	lastErr  error

	layoutDirty atomic.Bool
	sorting     atomic.Bool
}

// NewContainer creates an empty container with default options.
func NewContainer() *Container {
	c := &Container{
		Control: NewControl(),
		config:  DefaultConfig(),
	}
	c.Control.onResize = func() {
		c.Notify(NotificationResized)
	}
	return c
}

// ============================================================================
// Configuration (every change triggers a layout)
// ============================================================================

// Config returns a copy of the container's options.
func (c *Container) Config() Config {
	c.configMu.RLock()
	defer c.configMu.RUnlock()
	return c.config
}

// SetConfig replaces all options at once.
func (c *Container) SetConfig(cfg Config) *Container {
	return c.update(func(dst *Config) { *dst = cfg })
}

func (c *Container) update(fn func(*Config)) *Container {
	c.configMu.Lock()
	fn(&c.config)
	c.configMu.Unlock()
	c.OnLayoutInvalidated()
	return c
}

func (c *Container) SetFlowAlignment(a Alignment) *Container {
	return c.update(func(cfg *Config) { cfg.FlowAlignment = a })
}

func (c *Container) SetVertical(vertical bool) *Container {
	return c.update(func(cfg *Config) { cfg.Vertical = vertical })
}

func (c *Container) SetReverse(reverse bool) *Container {
	return c.update(func(cfg *Config) { cfg.Reverse = reverse })
}

func (c *Container) SetOverrideRotation(override bool) *Container {
	return c.update(func(cfg *Config) { cfg.OverrideRotation = override })
}

func (c *Container) SetOverrideScale(override bool) *Container {
	return c.update(func(cfg *Config) { cfg.OverrideScale = override })
}

func (c *Container) SetBoxThemeSeparation(enabled bool) *Container {
	return c.update(func(cfg *Config) { cfg.BoxThemeSeparation = enabled })
}

func (c *Container) SetSeparationPixels(px float32) *Container {
	return c.update(func(cfg *Config) { cfg.SeparationPixels = px })
}

func (c *Container) SetSeparationProportional(fraction float32) *Container {
	return c.update(func(cfg *Config) { cfg.SeparationProportional = fraction })
}

func (c *Container) SetShrinkToFit(enabled bool) *Container {
	return c.update(func(cfg *Config) { cfg.ShrinkToFit = enabled })
}

func (c *Container) SetExpandToFit(enabled bool) *Container {
	return c.update(func(cfg *Config) { cfg.ExpandToFit = enabled })
}

func (c *Container) SetIncludeHidden(include bool) *Container {
	return c.update(func(cfg *Config) { cfg.IncludeHidden = include })
}

func (c *Container) SetInnerMarginPixels(x, y float32) *Container {
	return c.update(func(cfg *Config) { cfg.InnerMarginPixels = mat32.NewVec2(x, y) })
}

func (c *Container) SetInnerMarginProportional(x, y float32) *Container {
	return c.update(func(cfg *Config) { cfg.InnerMarginProportional = mat32.NewVec2(x, y) })
}

// SetTheme sets the source of theme constants. A nil theme reads every
// constant as 0.
func (c *Container) SetTheme(theme ThemeSource) *Container {
	c.configMu.Lock()
	c.theme = theme
	c.configMu.Unlock()
	c.Notify(NotificationThemeChanged)
	return c
}

// Theme returns the container's theme source, or nil.
func (c *Container) Theme() ThemeSource {
	c.configMu.RLock()
	defer c.configMu.RUnlock()
	return c.theme
}

// SetDeferredLayout switches between laying out on every invalidation
// (the default) and only marking the layout dirty until LayoutIfNeeded.
func (c *Container) SetDeferredLayout(deferred bool) *Container {
	c.configMu.Lock()
	c.deferred = deferred
	c.configMu.Unlock()
	return c
}

// OnLayout registers a callback invoked after each applied layout.
func (c *Container) OnLayout(fn func(Result)) *Container {
	c.configMu.Lock()
	c.onLayout = fn
	c.configMu.Unlock()
	return c
}

// ============================================================================
// Children
// ============================================================================

// Children returns a copy of the container's own child list.
func (c *Container) Children() []any {
	c.configMu.RLock()
	defer c.configMu.RUnlock()
	return slices.Clone(c.children)
}

// SetChildProvider replaces the container's own child list as the source of
// children. Passing nil restores the container's own list.
func (c *Container) SetChildProvider(p ChildProvider) *Container {
	c.configMu.Lock()
	c.provider = p
	c.configMu.Unlock()
	c.Notify(NotificationChildOrderChanged)
	return c
}

func (c *Container) childSource() ChildProvider {
	c.configMu.RLock()
	defer c.configMu.RUnlock()
	if c.provider != nil {
		return c.provider
	}
	return c
}

type parented interface {
	setParent(*Container)
}

// AddChild appends a child. Any value is accepted; only Rects are arranged.
func (c *Container) AddChild(child any) *Container {
	return c.InsertChild(-1, child)
}

// InsertChild inserts a child at index. Out-of-range indexes append.
func (c *Container) InsertChild(index int, child any) *Container {
	if p, ok := child.(parented); ok {
		p.setParent(c)
	}
	c.configMu.Lock()
	if index < 0 || index >= len(c.children) {
		c.children = append(c.children, child)
	} else {
		c.children = slices.Insert(c.children, index, child)
	}
	c.configMu.Unlock()
	c.Notify(NotificationChildOrderChanged)
	return c
}

// RemoveChild removes a child by identity.
func (c *Container) RemoveChild(child any) bool {
	c.configMu.Lock()
	i := slices.IndexFunc(c.children, func(v any) bool { return v == child })
	if i < 0 {
		c.configMu.Unlock()
		return false
	}
	c.children = slices.Delete(c.children, i, i+1)
	c.configMu.Unlock()
	if p, ok := child.(parented); ok {
		p.setParent(nil)
	}
	c.Notify(NotificationChildOrderChanged)
	return true
}

// MoveChild moves an existing child to index.
func (c *Container) MoveChild(child any, index int) bool {
	c.configMu.Lock()
	i := slices.IndexFunc(c.children, func(v any) bool { return v == child })
	if i < 0 {
		c.configMu.Unlock()
		return false
	}
	c.children = slices.Delete(c.children, i, i+1)
	if index < 0 || index >= len(c.children) {
		c.children = append(c.children, child)
	} else {
		c.children = slices.Insert(c.children, index, child)
	}
	c.configMu.Unlock()
	c.Notify(NotificationChildOrderChanged)
	return true
}

// ============================================================================
// Triggers
// ============================================================================

// Notification is a host event delivered to a container.
type Notification int

const (
	NotificationSortChildren Notification = iota
	NotificationLayoutDirectionChanged
	NotificationResized
	NotificationThemeChanged
	NotificationTransformChanged
	NotificationChildOrderChanged
	NotificationEnterTree
	NotificationReady
	NotificationTranslationChanged

	// Events that do not affect layout.
	NotificationDraw
	NotificationVisibilityChanged
)

// InvalidatesLayout reports whether the event requires a new layout.
func (n Notification) InvalidatesLayout() bool {
	return n >= NotificationSortChildren && n <= NotificationTranslationChanged
}

// Notify delivers a host event. Layout-affecting events re-sort the children.
func (c *Container) Notify(what Notification) {
	if what.InvalidatesLayout() {
		c.OnLayoutInvalidated()
	}
}

// OnLayoutInvalidated is the single entry point for anything that changes
// the layout inputs. An invalidation raised while a layout pass is running
// only marks the layout dirty; the change is picked up by the next pass.
func (c *Container) OnLayoutInvalidated() {
	c.layoutDirty.Store(true)
	if c.sorting.Load() {
		debugLog("container %d: invalidated during layout, deferred to next pass", c.ID())
		return
	}

	c.configMu.RLock()
	deferred := c.deferred
	c.configMu.RUnlock()
	if deferred {
		return
	}
	_ = c.Resort()
}

// NeedsLayout reports whether the layout is dirty.
func (c *Container) NeedsLayout() bool {
	return c.layoutDirty.Load()
}

// LayoutIfNeeded runs a layout pass if the layout is dirty.
func (c *Container) LayoutIfNeeded() error {
	if !c.layoutDirty.Load() {
		return nil
	}
	return c.Resort()
}

// Resort lays out the children and applies the result. On error, no child
// geometry is modified.
func (c *Container) Resort() error {
	if !c.sorting.CompareAndSwap(false, true) {
		// another pass is running; leave the work for LayoutIfNeeded
		c.layoutDirty.Store(true)
		return nil
	}
	defer c.sorting.Store(false)
	c.layoutDirty.Store(false)

	res, rects, err := c.compute()
	defer releaseRectSlice(rects)

	c.configMu.Lock()
	c.lastErr = err
	if err == nil {
		c.last = res
	}
	onLayout := c.onLayout
	c.configMu.Unlock()

	if err != nil {
		debugLog("container %d: layout rejected: %v", c.ID(), err)
		return err
	}
	for i, r := range rects {
		r.SetLayout(res.Placements[i])
	}
	if onLayout != nil {
		onLayout(res)
	}
	return nil
}

// LastResult returns the most recently applied layout.
func (c *Container) LastResult() Result {
	c.configMu.RLock()
	defer c.configMu.RUnlock()
	return c.last
}

// Err returns the error of the most recent layout pass, if any.
func (c *Container) Err() error {
	c.configMu.RLock()
	defer c.configMu.RUnlock()
	return c.lastErr
}
