package cli

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/mindwheel/pkg/mindmap"
	"github.com/matzehuels/mindwheel/pkg/radial"
)

func viewerFixture(t *testing.T) viewerModel {
	t.Helper()
	tree := mindmap.New()

	root, err := tree.AddRoot("root", "Root")
	if err != nil {
		t.Fatalf("AddRoot: %v", err)
	}
	a, err := tree.AddChild(root, "a", "Alpha")
	if err != nil {
		t.Fatalf("AddChild: %v", err)
	}
	if _, err := tree.AddChild(a, "a1", "Leaf"); err != nil {
		t.Fatalf("AddChild: %v", err)
	}
	if _, err := tree.AddChild(root, "b", "Beta"); err != nil {
		t.Fatalf("AddChild: %v", err)
	}

	radial.Layout(tree, radial.Options{})
	return newViewerModel(tree, defaultConfig(), "fixture.mm")
}

func keyPress(m viewerModel, key string) viewerModel {
	var msg tea.KeyMsg
	switch key {
	case "left", "right", "up", "down", "esc":
		types := map[string]tea.KeyType{
			"left": tea.KeyLeft, "right": tea.KeyRight,
			"up": tea.KeyUp, "down": tea.KeyDown, "esc": tea.KeyEsc,
		}
		msg = tea.KeyMsg{Type: types[key]}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	next, _ := m.Update(msg)
	return next.(viewerModel)
}

func TestViewerZoomKeys(t *testing.T) {
	m := viewerFixture(t)

	m = keyPress(m, "+")
	if m.view.Zoom <= 1 {
		t.Errorf("Zoom after + = %v, want > 1", m.view.Zoom)
	}
	m = keyPress(m, "-")
	if got := m.view.Zoom; got < 0.999 || got > 1.001 {
		t.Errorf("Zoom after +- = %v, want 1", got)
	}
}

func TestViewerPanKeys(t *testing.T) {
	m := viewerFixture(t)

	m = keyPress(m, "left")
	if m.view.PanX == 0 {
		t.Error("left arrow should pan horizontally")
	}
	m = keyPress(m, "right")
	if m.view.PanX != 0 {
		t.Errorf("PanX after left+right = %v, want 0", m.view.PanX)
	}

	m = keyPress(m, "k")
	if m.view.PanY == 0 {
		t.Error("k should pan vertically")
	}
}

func TestViewerToggleKeys(t *testing.T) {
	m := viewerFixture(t)

	if m.anim.Running() {
		t.Fatal("animation should start off")
	}
	m = keyPress(m, "r")
	if !m.anim.Running() {
		t.Error("r should start the rotation animation")
	}

	curved := m.opts.Curved
	m = keyPress(m, "c")
	if m.opts.Curved == curved {
		t.Error("c should toggle curved links")
	}

	m = keyPress(m, "L")
	if !m.opts.LeafOnly {
		t.Error("L should toggle leaf-only labels")
	}
	m = keyPress(m, "t")
	if !m.opts.ConstScreenSize {
		t.Error("t should toggle constant screen-size labels")
	}
}

func TestViewerQuitKeys(t *testing.T) {
	m := viewerFixture(t)

	for _, key := range []string{"q", "esc"} {
		var msg tea.KeyMsg
		if key == "esc" {
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		} else {
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
		}
		_, cmd := m.Update(msg)
		if cmd == nil {
			t.Errorf("%s should quit", key)
			continue
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s should produce a quit message", key)
		}
	}
}

func TestViewerTickAdvancesRotation(t *testing.T) {
	m := viewerFixture(t)
	m = keyPress(m, "r")

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	next, cmd := m.Update(tickMsg(base))
	m = next.(viewerModel)
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}

	next, _ = m.Update(tickMsg(base.Add(time.Second)))
	m = next.(viewerModel)
	if m.view.RotationDeg == 0 {
		t.Error("ticks while running should rotate the view")
	}
}

func TestViewerWindowResize(t *testing.T) {
	m := viewerFixture(t)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(viewerModel)
	if m.cols != 120 {
		t.Errorf("cols = %d, want 120", m.cols)
	}
	if m.rows != 38 {
		t.Errorf("rows = %d, want 38 (two rows reserved)", m.rows)
	}
}

func TestViewerViewRenders(t *testing.T) {
	m := viewerFixture(t)

	out := m.View()
	lines := strings.Split(out, "\n")
	// One line per grid row plus the two status lines.
	if len(lines) != m.rows+2 {
		t.Errorf("view has %d lines, want %d", len(lines), m.rows+2)
	}

	// The root label lands near the center of the grid.
	if !strings.Contains(out, "Root") {
		t.Error("view should contain the root label")
	}
	if !strings.Contains(out, "fixture.mm") {
		t.Error("status bar should name the input file")
	}
}
