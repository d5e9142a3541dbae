package boxaspect

import (
	"testing"

	"github.com/goki/mat32"

	"github.com/agiangrant/boxaspect/retained"
	"github.com/agiangrant/boxaspect/theme"
)

func TestBuildNestedBoxes(t *testing.T) {
	inner := HBox("inner", *NewNode(KindControl).WithName("leaf").WithMinSize(10, 10).WithPolicies(SizeNone, SizeFill))
	inner.WithMinSize(100, 50).WithPolicies(SizeNone, SizeFill)
	root := HBox("outer", inner)
	root.WithSize(200, 100)

	tree, err := Build(root, nil)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	tests := []struct {
		path string
		pos  mat32.Vec2
		size mat32.Vec2
	}{
		{"outer", mat32.Vec2{}, mat32.NewVec2(200, 100)},
		{"outer/inner", mat32.Vec2{}, mat32.NewVec2(200, 100)},
		{"outer/inner/leaf", mat32.Vec2{}, mat32.NewVec2(100, 100)},
	}
	for _, tt := range tests {
		e, ok := tree.Lookup(tt.path)
		if !ok {
			t.Fatalf("Lookup(%q) not found", tt.path)
		}
		if got := e.Control.Position(); got != tt.pos {
			t.Errorf("%s position = %v, want %v", tt.path, got, tt.pos)
		}
		if got := e.Control.Size(); got != tt.size {
			t.Errorf("%s size = %v, want %v", tt.path, got, tt.size)
		}
	}
}

func TestBuildUnnamedPaths(t *testing.T) {
	root := HBox("", Leaf("", 10, 10), VBox("", Leaf("x", 1, 1)))
	tree, err := Build(root, nil)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	want := []string{"box", "box/control[0]", "box/box[1]", "box/box[1]/x"}
	entries := tree.Entries()
	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d", len(entries), len(want))
	}
	for i, e := range entries {
		if e.Path != want[i] {
			t.Errorf("entries[%d].Path = %q, want %q", i, e.Path, want[i])
		}
	}
	if entries[3].Depth != 2 {
		t.Errorf("depth = %d, want 2", entries[3].Depth)
	}
}

func TestBuildAppliesTheme(t *testing.T) {
	a := Leaf("a", 10, 10)
	a.WithPolicies(SizeNone, SizeNone)
	b := Leaf("b", 10, 10)
	b.WithPolicies(SizeNone, SizeNone)
	root := HBox("row", a, b)
	root.WithSize(100, 10)
	root.BoxThemeSeparation = true

	tree, err := Build(root, theme.Default().Set(theme.ClassBoxAspectContainer, theme.Separation, 1))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	e, _ := tree.Lookup("row/b")
	// 1 from BoxAspectContainer, 4 from BoxContainer
	if got := e.Control.Position().X; got != 15 {
		t.Errorf("b at %v, want 15", got)
	}
	if got := tree.Root().LastResult().Separation; got != 5 {
		t.Errorf("separation = %v, want 5", got)
	}
}

func TestTreeLayoutAfterChange(t *testing.T) {
	a := Leaf("a", 50, 10)
	a.WithPolicies(SizeNone, SizeNone)
	b := Leaf("b", 50, 10)
	b.WithPolicies(SizeNone, SizeNone)
	root := HBox("row", a, b)
	root.WithSize(300, 10)

	tree, err := Build(root, nil)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	ea, _ := tree.Lookup("row/a")
	eb, _ := tree.Lookup("row/b")

	ea.Control.SetMinSize(70, 10)
	if got := eb.Control.Position().X; got != 50 {
		t.Errorf("b moved to %v before Layout", got)
	}
	if !tree.Root().NeedsLayout() {
		t.Error("expected root to need layout")
	}

	if err := tree.Layout(); err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	if got := eb.Control.Position().X; got != 70 {
		t.Errorf("b at %v, want 70", got)
	}
}

func TestTreeLookups(t *testing.T) {
	root := HBox("row", Leaf("a", 1, 1), Leaf("b", 1, 1))
	tree, err := Build(root, nil)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	eb, ok := tree.Lookup("row/b")
	if !ok {
		t.Fatal("Lookup(row/b) not found")
	}
	byID, ok := tree.Entry(eb.Control.ID())
	if !ok || byID.Path != "row/b" {
		t.Errorf("Entry(id) = %+v, %v", byID, ok)
	}
	if _, ok := tree.Entry(retained.ControlID(0)); ok {
		t.Error("Entry(0) should not be found")
	}
	if _, ok := tree.Lookup("row/missing"); ok {
		t.Error("Lookup of a missing path should fail")
	}

	visited := 0
	tree.Walk(func(e Entry) bool {
		visited++
		return e.Path != "row/a"
	})
	if visited != 2 {
		t.Errorf("Walk visited %d entries, want 2", visited)
	}
}

func TestReport(t *testing.T) {
	a := Leaf("a", 100, 50)
	a.WithPolicies(SizeExpandFill, SizeShrinkBegin)
	b := Leaf("b", 100, 50)
	b.WithPolicies(SizeExpandFill, SizeShrinkBegin)
	root := HBox("row", a, b)
	root.WithSize(300, 100)

	tree, err := Build(root, nil)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	rows := tree.Report()
	want := []Row{
		{Path: "row", Kind: KindBox, Width: 300, Height: 100, Visible: true, Strategy: "expand"},
		{Path: "row/a", Depth: 1, Kind: KindControl, X: 0, Width: 150, Height: 50, Visible: true},
		{Path: "row/b", Depth: 1, Kind: KindControl, X: 150, Width: 150, Height: 50, Visible: true},
	}
	if len(rows) != len(want) {
		t.Fatalf("got %d rows, want %d", len(rows), len(want))
	}
	for i := range rows {
		got := rows[i]
		got.ID = 0
		if got != want[i] {
			t.Errorf("rows[%d] = %+v, want %+v", i, got, want[i])
		}
	}
}
