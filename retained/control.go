// Package retained provides a retained-mode box layout engine.
//
// Controls are rectangles owned by the host. A Container arranges its
// controls along a flow axis, fitting each one along the perpendicular
// axis according to its size policy, and re-runs the layout whenever one
// of its inputs changes.
package retained

import (
	"sync"
	"sync/atomic"

	"github.com/goki/mat32"
)

// ControlID uniquely identifies a control.
// IDs are stable for the lifetime of the control and key layout results.
type ControlID uint64

var nextControlID atomic.Uint64

func newControlID() ControlID {
	return ControlID(nextControlID.Add(1))
}

// Rect is anything a Container can arrange.
// Entries in a child list that do not implement Rect are skipped.
type Rect interface {
	// LayoutState returns a snapshot of the inputs the layout pass reads.
	LayoutState() ControlState

	// SetLayout stores a computed placement.
	SetLayout(Placement)
}

// ControlState is a snapshot of a control's layout-relevant properties.
type ControlState struct {
	ID      ControlID
	Name    string
	Visible bool

	Position mat32.Vec2
	Size     mat32.Vec2

	// MinSize is the combined minimum size (content and custom minimum).
	MinSize mat32.Vec2

	HPolicy      SizePolicy
	VPolicy      SizePolicy
	StretchRatio float32

	Rotation float32
	Scale    mat32.Vec2
}

// Placement is the position and size computed for one control.
type Placement struct {
	ID       ControlID
	Position mat32.Vec2
	Size     mat32.Vec2

	// ResetRotation and ResetScale are set when the container overrides
	// child transforms.
	ResetRotation bool
	ResetScale    bool
}

// Control is a rectangle participating in box layout.
// Controls are safe for concurrent property updates.
type Control struct {
	mu sync.RWMutex

	id     ControlID
	name   string
	parent *Container

	position mat32.Vec2
	size     mat32.Vec2
	rotation float32 // radians
	scale    mat32.Vec2

	minSize       mat32.Vec2 // content minimum, measured by the host
	customMinSize mat32.Vec2

	visible      bool
	hPolicy      SizePolicy
	vPolicy      SizePolicy
	stretchRatio float32

	// onResize is set when the control is the rectangle of a Container.
	onResize func()
}

// NewControl creates a visible control with fill policies and a stretch ratio of 1.
func NewControl() *Control {
	return &Control{
		id:           newControlID(),
		scale:        mat32.NewVec2(1, 1),
		visible:      true,
		hPolicy:      SizeFill,
		vPolicy:      SizeFill,
		stretchRatio: 1,
	}
}

// ID returns the control's unique identifier.
func (c *Control) ID() ControlID {
	return c.id
}

// Parent returns the container the control is attached to, or nil.
func (c *Control) Parent() *Container {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.parent
}

func (c *Control) setParent(p *Container) {
	c.mu.Lock()
	c.parent = p
	c.mu.Unlock()
}

// invalidateParent asks the owning container to lay out again.
// Must be called without holding c.mu.
func (c *Control) invalidateParent() {
	if p := c.Parent(); p != nil {
		p.Notify(NotificationSortChildren)
	}
}

// ============================================================================
// Layout inputs (changes re-sort the parent container)
// ============================================================================

// SetName sets a name used in diagnostics and scene output.
func (c *Control) SetName(name string) *Control {
	c.mu.Lock()
	c.name = name
	c.mu.Unlock()
	return c
}

// Name returns the control's name.
func (c *Control) Name() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.name
}

// SetMinSize sets the content minimum size, as measured by the host.
func (c *Control) SetMinSize(width, height float32) *Control {
	c.mu.Lock()
	changed := c.minSize.X != width || c.minSize.Y != height
	c.minSize = mat32.NewVec2(width, height)
	c.mu.Unlock()
	if changed {
		c.invalidateParent()
	}
	return c
}

// SetCustomMinSize sets a user-specified minimum size.
func (c *Control) SetCustomMinSize(width, height float32) *Control {
	c.mu.Lock()
	changed := c.customMinSize.X != width || c.customMinSize.Y != height
	c.customMinSize = mat32.NewVec2(width, height)
	c.mu.Unlock()
	if changed {
		c.invalidateParent()
	}
	return c
}

// CombinedMinSize returns the component-wise maximum of the content and
// custom minimum sizes, never negative.
func (c *Control) CombinedMinSize() mat32.Vec2 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.combinedMinSizeLocked()
}

func (c *Control) combinedMinSizeLocked() mat32.Vec2 {
	return mat32.NewVec2(
		mat32.Max(0, mat32.Max(c.minSize.X, c.customMinSize.X)),
		mat32.Max(0, mat32.Max(c.minSize.Y, c.customMinSize.Y)),
	)
}

// SetVisible shows or hides the control.
func (c *Control) SetVisible(visible bool) *Control {
	c.mu.Lock()
	changed := c.visible != visible
	c.visible = visible
	c.mu.Unlock()
	if changed {
		c.invalidateParent()
	}
	return c
}

// Visible reports whether the control is visible.
func (c *Control) Visible() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.visible
}

// SetHPolicy sets the horizontal size policy.
func (c *Control) SetHPolicy(p SizePolicy) *Control {
	c.mu.Lock()
	changed := c.hPolicy != p
	c.hPolicy = p
	c.mu.Unlock()
	if changed {
		c.invalidateParent()
	}
	return c
}

// SetVPolicy sets the vertical size policy.
func (c *Control) SetVPolicy(p SizePolicy) *Control {
	c.mu.Lock()
	changed := c.vPolicy != p
	c.vPolicy = p
	c.mu.Unlock()
	if changed {
		c.invalidateParent()
	}
	return c
}

// SetSizePolicies sets both size policies in one update.
func (c *Control) SetSizePolicies(h, v SizePolicy) *Control {
	c.mu.Lock()
	changed := c.hPolicy != h || c.vPolicy != v
	c.hPolicy, c.vPolicy = h, v
	c.mu.Unlock()
	if changed {
		c.invalidateParent()
	}
	return c
}

// HPolicy returns the horizontal size policy.
func (c *Control) HPolicy() SizePolicy {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hPolicy
}

// VPolicy returns the vertical size policy.
func (c *Control) VPolicy() SizePolicy {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vPolicy
}

// SetStretchRatio sets the control's share weight for leftover flow space.
// Negative ratios are kept but treated as 0 by the layout.
func (c *Control) SetStretchRatio(ratio float32) *Control {
	c.mu.Lock()
	changed := c.stretchRatio != ratio
	c.stretchRatio = ratio
	c.mu.Unlock()
	if changed {
		c.invalidateParent()
	}
	return c
}

// StretchRatio returns the stretch ratio as set.
func (c *Control) StretchRatio() float32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stretchRatio
}

// ============================================================================
// Geometry
// ============================================================================

// SetPosition moves the control. Containers overwrite it on the next layout.
func (c *Control) SetPosition(x, y float32) *Control {
	c.mu.Lock()
	c.position = mat32.NewVec2(x, y)
	c.mu.Unlock()
	return c
}

// Position returns the control's position relative to its parent.
func (c *Control) Position() mat32.Vec2 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.position
}

// SetSize resizes the control.
func (c *Control) SetSize(width, height float32) *Control {
	c.mu.Lock()
	changed := c.size.X != width || c.size.Y != height
	c.size = mat32.NewVec2(width, height)
	onResize := c.onResize
	c.mu.Unlock()
	if changed && onResize != nil {
		onResize()
	}
	return c
}

// Size returns the control's current size.
func (c *Control) Size() mat32.Vec2 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.size
}

// SetRotation sets the rotation in radians.
func (c *Control) SetRotation(radians float32) *Control {
	c.mu.Lock()
	c.rotation = radians
	c.mu.Unlock()
	return c
}

// Rotation returns the rotation in radians.
func (c *Control) Rotation() float32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.rotation
}

// SetScale sets the control's scale.
func (c *Control) SetScale(x, y float32) *Control {
	c.mu.Lock()
	c.scale = mat32.NewVec2(x, y)
	c.mu.Unlock()
	return c
}

// Scale returns the control's scale.
func (c *Control) Scale() mat32.Vec2 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.scale
}

// ============================================================================
// Rect
// ============================================================================

// LayoutState implements Rect.
func (c *Control) LayoutState() ControlState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return ControlState{
		ID:           c.id,
		Name:         c.name,
		Visible:      c.visible,
		Position:     c.position,
		Size:         c.size,
		MinSize:      c.combinedMinSizeLocked(),
		HPolicy:      c.hPolicy,
		VPolicy:      c.vPolicy,
		StretchRatio: c.stretchRatio,
		Rotation:     c.rotation,
		Scale:        c.scale,
	}
}

// SetLayout implements Rect. It does not notify the parent container, so a
// layout pass never re-triggers itself. A control that is itself a container
// lays out its own children when its size changes.
func (c *Control) SetLayout(p Placement) {
	c.mu.Lock()
	resized := c.size != p.Size
	c.position = p.Position
	c.size = p.Size
	if p.ResetRotation {
		c.rotation = 0
	}
	if p.ResetScale {
		c.scale = mat32.NewVec2(1, 1)
	}
	onResize := c.onResize
	c.mu.Unlock()
	if resized && onResize != nil {
		onResize()
	}
}
