package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitWritesFiles(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	if err := runInit(&out, []string{"-dir", dir}); err != nil {
		t.Fatalf("runInit() error = %v", err)
	}

	for _, name := range []string{"scene.toml", "theme.toml"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("%s not written: %v", name, err)
		}
	}
	if !strings.Contains(out.String(), "Created") {
		t.Errorf("unexpected output: %q", out.String())
	}
}

func TestInitRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	if err := runInit(&out, []string{"-dir", dir}); err != nil {
		t.Fatalf("first runInit() error = %v", err)
	}
	if err := runInit(&out, []string{"-dir", dir}); err == nil {
		t.Error("expected error when scene.toml exists")
	}
	if err := runInit(&out, []string{"-dir", dir, "-force"}); err != nil {
		t.Errorf("runInit(-force) error = %v", err)
	}
}

func TestLayoutJSON(t *testing.T) {
	dirs := []string{t.TempDir(), t.TempDir()}
	var paths []string
	for _, dir := range dirs {
		if err := runInit(&bytes.Buffer{}, []string{"-dir", dir}); err != nil {
			t.Fatalf("runInit() error = %v", err)
		}
		paths = append(paths, filepath.Join(dir, "scene.toml"))
	}

	var out bytes.Buffer
	if err := runLayout(&out, append([]string{"-json"}, paths...)); err != nil {
		t.Fatalf("runLayout() error = %v", err)
	}

	var reports []SceneReport
	if err := json.Unmarshal(out.Bytes(), &reports); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out.String())
	}
	if len(reports) != 2 {
		t.Fatalf("got %d reports, want 2", len(reports))
	}
	for i, r := range reports {
		if r.Scene != paths[i] {
			t.Errorf("reports[%d].Scene = %q, want %q", i, r.Scene, paths[i])
		}
		if len(r.Rows) != 4 {
			t.Fatalf("reports[%d] has %d rows, want 4", i, len(r.Rows))
		}
		badge := r.Rows[3]
		if badge.Path != "toolbar/badge" || badge.X != 304 || badge.Width != 92 {
			t.Errorf("badge row = %+v", badge)
		}
	}
}

func TestLayoutTable(t *testing.T) {
	dir := t.TempDir()
	if err := runInit(&bytes.Buffer{}, []string{"-dir", dir}); err != nil {
		t.Fatalf("runInit() error = %v", err)
	}

	var out bytes.Buffer
	if err := runLayout(&out, []string{filepath.Join(dir, "scene.toml")}); err != nil {
		t.Fatalf("runLayout() error = %v", err)
	}
	for _, want := range []string{"NAME", "toolbar", "  badge", "304.00", "expand"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestLayoutErrors(t *testing.T) {
	if err := runLayout(&bytes.Buffer{}, nil); !errors.Is(err, errNoScenes) {
		t.Errorf("no args: error = %v, want errNoScenes", err)
	}

	missing := filepath.Join(t.TempDir(), "missing.toml")
	if err := runLayout(&bytes.Buffer{}, []string{missing}); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: error = %v, want os.ErrNotExist", err)
	}
}
