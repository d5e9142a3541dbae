package boxaspect

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/agiangrant/boxaspect/theme"
)

// Scene is a box tree stored as TOML:
//
//	theme = "theme.toml"
//
//	[box]
//	name = "toolbar"
//	size = [300.0, 100.0]
//
//	[[box.children]]
//	name = "icon"
//	min_size = [100.0, 50.0]
//	h_policy = "expand_fill"
type Scene struct {
	// Theme is an optional theme file, relative to the scene file.
	Theme string `toml:"theme,omitempty"`
	Box   Node   `toml:"box"`

	// path is the file the scene was loaded from
	path string
}

// DefaultScene returns the sample scene written by the CLI.
func DefaultScene() Scene {
	icon := Leaf("icon", 100, 50)
	icon.WithPolicies(SizeExpandFill, SizeShrinkCenter)
	label := Leaf("label", 100, 50)
	label.WithPolicies(SizeExpandFill, SizeShrinkCenter).WithStretchRatio(2)
	badge := Leaf("badge", 40, 40)
	badge.WithPolicies(SizeNone, SizeFill)

	root := HBox("toolbar", icon, label, badge)
	root.WithSize(400, 100)
	root.SeparationPixels = 8
	root.InnerMarginPixels = []float32{4, 4}
	root.ShrinkToFit = true

	return Scene{Theme: "theme.toml", Box: root}
}

// ParseScene decodes a scene from TOML.
func ParseScene(data []byte) (Scene, error) {
	var s Scene
	if err := toml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("failed to parse scene: %w", err)
	}
	if err := s.Box.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

// LoadScene reads a scene file.
func LoadScene(path string) (Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	s, err := ParseScene(data)
	if err != nil {
		return s, fmt.Errorf("%s: %w", path, err)
	}
	s.path = path
	return s, nil
}

// SaveScene writes the scene to path.
func SaveScene(path string, s Scene) error {
	data, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal scene: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Path returns the file the scene was loaded from, if any.
func (s Scene) Path() string {
	return s.path
}

// ThemePath resolves the theme file against the scene's directory.
// It returns "" when the scene names no theme.
func (s Scene) ThemePath() string {
	if s.Theme == "" {
		return ""
	}
	if filepath.IsAbs(s.Theme) || s.path == "" {
		return s.Theme
	}
	return filepath.Join(filepath.Dir(s.path), s.Theme)
}

// LoadTheme loads the scene's theme, or the default theme when none is set.
func (s Scene) LoadTheme() (*theme.Theme, error) {
	path := s.ThemePath()
	if path == "" {
		return theme.Default(), nil
	}
	return theme.Load(path)
}

// Build loads the theme and builds the laid-out tree.
func (s Scene) Build() (*Tree, error) {
	th, err := s.LoadTheme()
	if err != nil {
		return nil, err
	}
	return Build(s.Box, th)
}
