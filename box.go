package boxaspect

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/goki/mat32"
	"github.com/samber/lo"

	"github.com/agiangrant/boxaspect/retained"
)

// ErrBadVector is returned for vector values that are not exactly two
// finite numbers.
var ErrBadVector = errors.New("vector must have two finite components")

// ErrRootNotBox is returned when a tree's root is declared as a non-box kind.
var ErrRootNotBox = errors.New("root must be a box")

// Kind is the type of a node in a box tree.
type Kind string

const (
	// KindBox is a container laying out its children in a row or column.
	KindBox Kind = "box"

	// KindControl is a leaf rectangle.
	KindControl Kind = "control"
)

// Node describes one element of a box tree. Vectors are [x, y] pairs.
// Unset policies and stretch ratio take the control defaults (fill, 1).
type Node struct {
	Kind          Kind      `json:"kind,omitempty" toml:"kind,omitempty"`
	Name          string    `json:"name,omitempty" toml:"name,omitempty"`
	Size          []float32 `json:"size,omitempty" toml:"size,omitempty"`
	MinSize       []float32 `json:"min_size,omitempty" toml:"min_size,omitempty"`
	CustomMinSize []float32 `json:"custom_min_size,omitempty" toml:"custom_min_size,omitempty"`
	HPolicy       string    `json:"h_policy,omitempty" toml:"h_policy,omitempty"`
	VPolicy       string    `json:"v_policy,omitempty" toml:"v_policy,omitempty"`
	StretchRatio  *float32  `json:"stretch_ratio,omitempty" toml:"stretch_ratio,omitempty"`
	Hidden        bool      `json:"hidden,omitempty" toml:"hidden,omitempty"`
	Rotation      float32   `json:"rotation,omitempty" toml:"rotation,omitempty"`
	Scale         []float32 `json:"scale,omitempty" toml:"scale,omitempty"`

	// Box options
	Vertical                bool      `json:"vertical,omitempty" toml:"vertical,omitempty"`
	Reverse                 bool      `json:"reverse,omitempty" toml:"reverse,omitempty"`
	Alignment               string    `json:"alignment,omitempty" toml:"alignment,omitempty"`
	ShrinkToFit             bool      `json:"shrink_to_fit,omitempty" toml:"shrink_to_fit,omitempty"`
	ExpandToFit             bool      `json:"expand_to_fit,omitempty" toml:"expand_to_fit,omitempty"`
	OverrideRotation        bool      `json:"override_rotation,omitempty" toml:"override_rotation,omitempty"`
	OverrideScale           bool      `json:"override_scale,omitempty" toml:"override_scale,omitempty"`
	BoxThemeSeparation      bool      `json:"box_theme_separation,omitempty" toml:"box_theme_separation,omitempty"`
	IncludeHidden           bool      `json:"include_hidden,omitempty" toml:"include_hidden,omitempty"`
	SeparationPixels        float32   `json:"separation_pixels,omitempty" toml:"separation_pixels,omitempty"`
	SeparationProportional  float32   `json:"separation_proportional,omitempty" toml:"separation_proportional,omitempty"`
	InnerMarginPixels       []float32 `json:"inner_margin_pixels,omitempty" toml:"inner_margin_pixels,omitempty"`
	InnerMarginProportional []float32 `json:"inner_margin_proportional,omitempty" toml:"inner_margin_proportional,omitempty"`

	Children []Node `json:"children,omitempty" toml:"children,omitempty"`
}

// NewNode creates a node of the given kind
func NewNode(kind Kind) *Node {
	return &Node{Kind: kind}
}

// EffectiveKind resolves an unset kind: nodes with children are boxes,
// everything else is a control.
func (n *Node) EffectiveKind() Kind {
	if n.Kind != "" {
		return n.Kind
	}
	if len(n.Children) > 0 {
		return KindBox
	}
	return KindControl
}

func (n *Node) WithName(name string) *Node {
	n.Name = name
	return n
}

func (n *Node) WithSize(width, height float32) *Node {
	n.Size = []float32{width, height}
	return n
}

func (n *Node) WithMinSize(width, height float32) *Node {
	n.MinSize = []float32{width, height}
	return n
}

func (n *Node) WithCustomMinSize(width, height float32) *Node {
	n.CustomMinSize = []float32{width, height}
	return n
}

// WithPolicies sets the horizontal and vertical size policies.
func (n *Node) WithPolicies(h, v retained.SizePolicy) *Node {
	n.HPolicy = h.String()
	n.VPolicy = v.String()
	return n
}

func (n *Node) WithStretchRatio(ratio float32) *Node {
	n.StretchRatio = &ratio
	return n
}

func (n *Node) WithHidden(hidden bool) *Node {
	n.Hidden = hidden
	return n
}

// WithConfig copies container options onto the node.
func (n *Node) WithConfig(cfg retained.Config) *Node {
	n.Vertical = cfg.Vertical
	n.Reverse = cfg.Reverse
	n.Alignment = cfg.FlowAlignment.String()
	n.ShrinkToFit = cfg.ShrinkToFit
	n.ExpandToFit = cfg.ExpandToFit
	n.OverrideRotation = cfg.OverrideRotation
	n.OverrideScale = cfg.OverrideScale
	n.BoxThemeSeparation = cfg.BoxThemeSeparation
	n.IncludeHidden = cfg.IncludeHidden
	n.SeparationPixels = cfg.SeparationPixels
	n.SeparationProportional = cfg.SeparationProportional
	n.InnerMarginPixels = vecSlice(cfg.InnerMarginPixels)
	n.InnerMarginProportional = vecSlice(cfg.InnerMarginProportional)
	return n
}

// WithChildren sets the children of this node
func (n *Node) WithChildren(children ...Node) *Node {
	n.Children = children
	return n
}

// AddChild adds a single child node
func (n *Node) AddChild(child Node) *Node {
	n.Children = append(n.Children, child)
	return n
}

// ToJSON serializes the node tree to JSON
func (n *Node) ToJSON() (string, error) {
	data, err := json.Marshal(n)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Convenience constructors

// HBox creates a horizontal box
func HBox(name string, children ...Node) Node {
	return Node{
		Kind:     KindBox,
		Name:     name,
		Children: children,
	}
}

// VBox creates a vertical box
func VBox(name string, children ...Node) Node {
	return Node{
		Kind:     KindBox,
		Name:     name,
		Vertical: true,
		Children: children,
	}
}

// Leaf creates a control with a content minimum size
func Leaf(name string, minWidth, minHeight float32) Node {
	return Node{
		Kind:    KindControl,
		Name:    name,
		MinSize: []float32{minWidth, minHeight},
	}
}

// Config returns the node's container options.
func (n *Node) Config() (retained.Config, error) {
	cfg := retained.DefaultConfig()
	cfg.Vertical = n.Vertical
	cfg.Reverse = n.Reverse
	cfg.ShrinkToFit = n.ShrinkToFit
	cfg.ExpandToFit = n.ExpandToFit
	cfg.OverrideRotation = n.OverrideRotation
	cfg.OverrideScale = n.OverrideScale
	cfg.BoxThemeSeparation = n.BoxThemeSeparation
	cfg.IncludeHidden = n.IncludeHidden
	cfg.SeparationPixels = n.SeparationPixels
	cfg.SeparationProportional = n.SeparationProportional

	if n.Alignment != "" {
		if err := cfg.FlowAlignment.UnmarshalText([]byte(n.Alignment)); err != nil {
			return cfg, fmt.Errorf("alignment: %w", err)
		}
	}
	var err error
	if cfg.InnerMarginPixels, err = vec(n.InnerMarginPixels, mat32.Vec2{}); err != nil {
		return cfg, fmt.Errorf("inner_margin_pixels: %w", err)
	}
	if cfg.InnerMarginProportional, err = vec(n.InnerMarginProportional, mat32.Vec2{}); err != nil {
		return cfg, fmt.Errorf("inner_margin_proportional: %w", err)
	}
	return cfg, nil
}

// Validate checks every value of the tree without building it.
func (n *Node) Validate() error {
	_, err := Build(*n, nil)
	return err
}

// vec converts an optional [x, y] slice. A nil slice yields def.
func vec(v []float32, def mat32.Vec2) (mat32.Vec2, error) {
	if v == nil {
		return def, nil
	}
	if len(v) != 2 {
		return def, fmt.Errorf("got %d components: %w", len(v), ErrBadVector)
	}
	if lo.SomeBy(v, func(f float32) bool { return math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) }) {
		return def, fmt.Errorf("%v: %w", v, ErrBadVector)
	}
	return mat32.NewVec2(v[0], v[1]), nil
}

func vecSlice(v mat32.Vec2) []float32 {
	if v == (mat32.Vec2{}) {
		return nil
	}
	return []float32{v.X, v.Y}
}
