// Package theme holds the numeric theme constants containers read, keyed by
// theme class and constant name.
package theme

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

// Class names and constants known to the box layout.
const (
	ClassBoxContainer       = "BoxContainer"
	ClassBoxAspectContainer = "BoxAspectContainer"
	Separation              = "separation"
)

// ErrNegativeConstant is returned when a theme file sets a negative constant.
var ErrNegativeConstant = errors.New("negative theme constant")

// File is the TOML form of a theme:
//
//	[constants.BoxContainer]
//	separation = 4
type File struct {
	Constants map[string]map[string]float32 `toml:"constants"`
}

// Theme maps (class, name) to a value. Missing entries read as 0.
// A Theme is safe for concurrent use.
type Theme struct {
	mu        sync.RWMutex
	constants map[string]map[string]float32
}

// New creates an empty theme.
func New() *Theme {
	return &Theme{constants: make(map[string]map[string]float32)}
}

// Default returns the built-in theme.
func Default() *Theme {
	t := New()
	t.Set(ClassBoxContainer, Separation, 4)
	t.Set(ClassBoxAspectContainer, Separation, 0)
	return t
}

// Constant returns the value for class and name, or 0 if unset.
func (t *Theme) Constant(class, name string) float32 {
	if t == nil {
		return 0
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.constants[class][name]
}

// Lookup is like Constant but reports whether the value is set.
func (t *Theme) Lookup(class, name string) (float32, bool) {
	if t == nil {
		return 0, false
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.constants[class][name]
	return v, ok
}

// Set stores a constant.
func (t *Theme) Set(class, name string, value float32) *Theme {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.constants[class] == nil {
		t.constants[class] = make(map[string]float32)
	}
	t.constants[class][name] = value
	return t
}

// Merge copies every constant of other into t, overwriting existing values.
// Merging into or from a nil theme is a no-op.
func (t *Theme) Merge(other *Theme) *Theme {
	if t == nil || other == nil {
		return t
	}
	f := other.File()
	for class, values := range f.Constants {
		for name, v := range values {
			t.Set(class, name, v)
		}
	}
	return t
}

// File returns a copy of the theme in its TOML form.
func (t *Theme) File() File {
	if t == nil {
		return File{Constants: map[string]map[string]float32{}}
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	f := File{Constants: make(map[string]map[string]float32, len(t.constants))}
	for class, values := range t.constants {
		f.Constants[class] = maps.Clone(values)
	}
	return f
}

// Parse reads a theme from TOML. Constants absent from data keep their
// default values.
func Parse(data []byte) (*Theme, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse theme: %w", err)
	}
	t := Default()
	for class, values := range f.Constants {
		for name, v := range values {
			if v < 0 {
				return nil, fmt.Errorf("%s.%s = %v: %w", class, name, v, ErrNegativeConstant)
			}
			t.Set(class, name, v)
		}
	}
	return t, nil
}

// Load reads a theme file.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Marshal encodes the theme as TOML.
func (t *Theme) Marshal() ([]byte, error) {
	data, err := toml.Marshal(t.File())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal theme: %w", err)
	}
	return data, nil
}

// Save writes the theme to path.
func (t *Theme) Save(path string) error {
	data, err := t.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
