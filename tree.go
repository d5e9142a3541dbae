package boxaspect

import (
	"errors"
	"fmt"
	"sync"

	"github.com/goki/mat32"
	"github.com/samber/lo"

	"github.com/agiangrant/boxaspect/retained"
)

// Entry is one built node of a Tree.
type Entry struct {
	// Path is the slash-separated chain of node names from the root.
	// Unnamed nodes appear as kind[index].
	Path  string
	Depth int
	Kind  Kind

	Control *retained.Control

	// Box is set for box nodes.
	Box *retained.Container
}

// Tree is a live retained tree built from a Node description.
// Every box lays out in deferred mode; call Layout after changing inputs.
// The structure is fixed once Build returns; only control properties change.
type Tree struct {
	root    *retained.Container
	entries []Entry

	// Registry for ID lookups
	byID sync.Map // map[retained.ControlID]int
}

// Build creates the retained tree for root and lays it out once.
// The root must be a box; an unset kind is taken as one. th may be nil.
func Build(root Node, th retained.ThemeSource) (*Tree, error) {
	if root.Kind != "" && root.Kind != KindBox {
		return nil, fmt.Errorf("%s: kind %q: %w", rootPath(&root), root.Kind, ErrRootNotBox)
	}
	root.Kind = KindBox
	t := &Tree{}
	rect, err := t.build(&root, rootPath(&root), 0, th)
	if err != nil {
		return nil, err
	}
	t.root = rect.(*retained.Container)

	size, err := vec(root.Size, mat32.Vec2{})
	if err != nil {
		return nil, fmt.Errorf("%s: size: %w", t.entries[0].Path, err)
	}
	t.root.SetSize(size.X, size.Y)

	for i, e := range t.entries {
		t.byID.Store(e.Control.ID(), i)
	}
	if err := t.Layout(); err != nil {
		return t, err
	}
	return t, nil
}

func rootPath(n *Node) string {
	if n.Name != "" {
		return n.Name
	}
	return string(KindBox)
}

func (t *Tree) build(n *Node, path string, depth int, th retained.ThemeSource) (retained.Rect, error) {
	kind := n.EffectiveKind()
	index := len(t.entries)
	t.entries = append(t.entries, Entry{Path: path, Depth: depth, Kind: kind})

	switch kind {
	case KindControl:
		if len(n.Children) > 0 {
			return nil, fmt.Errorf("%s: control cannot have children", path)
		}
		ctl := retained.NewControl()
		if err := applyControl(ctl, n); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		t.entries[index].Control = ctl
		return ctl, nil

	case KindBox:
		box := retained.NewContainer()
		box.SetDeferredLayout(true)
		if th != nil {
			box.SetTheme(th)
		}
		cfg, err := n.Config()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		box.SetConfig(cfg)
		if err := applyControl(box.Control, n); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		t.entries[index].Control = box.Control
		t.entries[index].Box = box

		for i := range n.Children {
			child := &n.Children[i]
			name := child.Name
			if name == "" {
				name = fmt.Sprintf("%s[%d]", child.EffectiveKind(), i)
			}
			rect, err := t.build(child, path+"/"+name, depth+1, th)
			if err != nil {
				return nil, err
			}
			box.AddChild(rect)
		}
		return box, nil

	default:
		return nil, fmt.Errorf("%s: unknown kind %q", path, kind)
	}
}

func applyControl(ctl *retained.Control, n *Node) error {
	ctl.SetName(n.Name)

	minSize, err := vec(n.MinSize, mat32.Vec2{})
	if err != nil {
		return fmt.Errorf("min_size: %w", err)
	}
	custom, err := vec(n.CustomMinSize, mat32.Vec2{})
	if err != nil {
		return fmt.Errorf("custom_min_size: %w", err)
	}
	ctl.SetMinSize(minSize.X, minSize.Y).SetCustomMinSize(custom.X, custom.Y)

	h, err := policy(n.HPolicy)
	if err != nil {
		return fmt.Errorf("h_policy: %w", err)
	}
	v, err := policy(n.VPolicy)
	if err != nil {
		return fmt.Errorf("v_policy: %w", err)
	}
	ctl.SetSizePolicies(h, v)

	if n.StretchRatio != nil {
		ctl.SetStretchRatio(*n.StretchRatio)
	}
	ctl.SetVisible(!n.Hidden)
	ctl.SetRotation(n.Rotation)

	scale, err := vec(n.Scale, mat32.NewVec2(1, 1))
	if err != nil {
		return fmt.Errorf("scale: %w", err)
	}
	ctl.SetScale(scale.X, scale.Y)
	return nil
}

// policy parses a size policy name. Empty means the control default.
func policy(name string) (retained.SizePolicy, error) {
	if name == "" {
		return retained.SizeFill, nil
	}
	return retained.ParseSizePolicy(name)
}

// Root returns the root box.
func (t *Tree) Root() *retained.Container {
	return t.root
}

// Entries returns the built nodes in pre-order, root first.
func (t *Tree) Entries() []Entry {
	return append([]Entry(nil), t.entries...)
}

// Layout runs pending layout passes top-down, so every box sees the size
// its parent gave it. Errors from individual boxes are joined; a failing
// box keeps its previous child geometry.
func (t *Tree) Layout() error {
	var errs []error
	for _, e := range t.Entries() {
		if e.Box == nil {
			continue
		}
		if err := e.Box.LayoutIfNeeded(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", e.Path, err))
		}
	}
	return errors.Join(errs...)
}

// Walk visits the entries in pre-order until fn returns false.
func (t *Tree) Walk(fn func(e Entry) bool) {
	for _, e := range t.Entries() {
		if !fn(e) {
			return
		}
	}
}

// Find returns the first entry matching the predicate.
func (t *Tree) Find(pred func(e Entry) bool) (Entry, bool) {
	return lo.Find(t.Entries(), pred)
}

// Lookup finds an entry by path.
func (t *Tree) Lookup(path string) (Entry, bool) {
	return t.Find(func(e Entry) bool { return e.Path == path })
}

// Entry finds an entry by control ID.
func (t *Tree) Entry(id retained.ControlID) (Entry, bool) {
	v, ok := t.byID.Load(id)
	if !ok {
		return Entry{}, false
	}
	return t.entries[v.(int)], true
}

// Row is the computed geometry of one entry.
type Row struct {
	Path     string             `json:"path"`
	Depth    int                `json:"depth"`
	Kind     Kind               `json:"kind"`
	ID       retained.ControlID `json:"id"`
	X        float32            `json:"x"`
	Y        float32            `json:"y"`
	Width    float32            `json:"width"`
	Height   float32            `json:"height"`
	Visible  bool               `json:"visible"`
	Strategy string             `json:"strategy,omitempty"`
}

// Report returns the geometry of every entry in pre-order.
func (t *Tree) Report() []Row {
	return lo.Map(t.Entries(), func(e Entry, _ int) Row {
		state := e.Control.LayoutState()
		row := Row{
			Path:    e.Path,
			Depth:   e.Depth,
			Kind:    e.Kind,
			ID:      state.ID,
			X:       state.Position.X,
			Y:       state.Position.Y,
			Width:   state.Size.X,
			Height:  state.Size.Y,
			Visible: state.Visible,
		}
		if e.Box != nil && len(e.Box.LastResult().Placements) > 0 {
			row.Strategy = e.Box.LastResult().Strategy.String()
		}
		return row
	})
}
