package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/mindwheel/pkg/mindmap"
	"github.com/matzehuels/mindwheel/pkg/radial/view"
	"github.com/matzehuels/mindwheel/pkg/scene"
)

// tickInterval drives the rotation animation. The animator computes its
// own wall-clock deltas, so the interval only bounds the frame rate.
const tickInterval = 50 * time.Millisecond

// panStepPx is the keyboard pan step in virtual pixels.
const panStepPx = 6

// tickMsg carries the tick timestamp to the animator.
type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// cell categories for styling the rasterized map.
const (
	cellEmpty = iota
	cellLink
	cellDisc
	cellLabel
	cellRoot
)

// viewerModel is the bubbletea model for the interactive viewer.
//
// Terminal cells are roughly twice as tall as wide, so the viewer works
// in a virtual pixel space of (cols, rows*2) and halves Y when plotting.
// That keeps the circle round and lets the shared camera math run
// unchanged.
type viewerModel struct {
	tree *mindmap.Tree
	path string

	view *view.View
	anim *view.Animator
	opts scene.Options

	cols, rows int
}

func newViewerModel(t *mindmap.Tree, cfg Config, path string) viewerModel {
	v := view.New()
	v.BaseHalfHeight = cfg.View.BaseHalfHeight
	v.ZoomMin = cfg.View.ZoomMin
	v.ZoomMax = cfg.View.ZoomMax

	anim := view.NewAnimator()
	anim.DegPerSec = cfg.View.RotationDegPerSec

	opts := scene.DefaultOptions()
	opts.Curved = cfg.Layout.CurvedLinks
	opts.BezierSamples = cfg.Layout.BezierSamples
	opts.RadiusStep = cfg.Layout.RadiusStep
	opts.EndpointRadius = cfg.Layout.EndpointRadius
	opts.LabelScale = cfg.Labels.Scale
	opts.LabelPad = cfg.Labels.Pad
	opts.LeafOnly = cfg.Labels.LeavesOnly
	opts.ConstScreenSize = cfg.Labels.ConstScreenSize

	return viewerModel{
		tree: t,
		path: path,
		view: v,
		anim: anim,
		opts: opts,
		cols: 80,
		rows: 24,
	}
}

func (m viewerModel) Init() tea.Cmd {
	return tick()
}

func (m viewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.anim.Advance(time.Time(msg), m.view)
		return m, tick()

	case tea.WindowSizeMsg:
		m.cols = max(20, msg.Width)
		m.rows = max(10, msg.Height-2) // keep room for the status bar
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m viewerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "+", "=":
		m.view.ZoomIn()
	case "-", "_":
		m.view.ZoomOut()
	case "left", "h":
		m.view.PanByPixels(-panStepPx, 0, m.pixelH())
	case "right", "l":
		m.view.PanByPixels(panStepPx, 0, m.pixelH())
	case "up", "k":
		m.view.PanByPixels(0, -panStepPx, m.pixelH())
	case "down", "j":
		m.view.PanByPixels(0, panStepPx, m.pixelH())
	case "r":
		m.anim.Toggle()
	case "[":
		m.anim.SpeedDown()
	case "]":
		m.anim.SpeedUp()
	case "c":
		m.opts.Curved = !m.opts.Curved
	case "L":
		m.opts.LeafOnly = !m.opts.LeafOnly
	case "t":
		m.opts.ConstScreenSize = !m.opts.ConstScreenSize
	}
	return m, nil
}

func (m viewerModel) handleMouse(msg tea.MouseMsg) viewerModel {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.view.ZoomIn()
		return m
	case tea.MouseButtonWheelDown:
		m.view.ZoomOut()
		return m
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.view.StartDrag(msg.X, msg.Y*2)
		}
	case tea.MouseActionMotion:
		m.view.Drag(msg.X, msg.Y*2, m.pixelH())
	case tea.MouseActionRelease:
		m.view.EndDrag()
	}
	return m
}

// pixelH is the virtual pixel height of the map area.
func (m viewerModel) pixelH() int { return m.rows * 2 }

func (m viewerModel) View() string {
	frame := scene.Build(m.tree, m.view, m.opts)

	grid := make([][]rune, m.rows)
	cats := make([][]int, m.rows)
	for y := range grid {
		grid[y] = make([]rune, m.cols)
		cats[y] = make([]int, m.cols)
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}

	m.plotLinks(frame, grid, cats)
	m.plotDiscs(frame, grid, cats)
	m.plotLabels(frame, grid, cats)

	var b strings.Builder
	for y := range grid {
		b.WriteString(m.styleRow(grid[y], cats[y]))
		b.WriteByte('\n')
	}
	b.WriteString(m.statusBar())
	return b.String()
}

// plot maps a virtual pixel position to a grid cell.
func (m viewerModel) plot(grid [][]rune, cats [][]int, sx, sy float64, r rune, cat int) {
	x := int(sx)
	y := int(sy / 2)
	if x < 0 || x >= m.cols || y < 0 || y >= m.rows {
		return
	}
	// Labels win over discs, discs over links.
	if cat >= cats[y][x] {
		grid[y][x] = r
		cats[y][x] = cat
	}
}

func (m viewerModel) plotLinks(f scene.Frame, grid [][]rune, cats [][]int) {
	for _, link := range f.Links {
		for i := 1; i < len(link.Points); i++ {
			m.plotSegment(grid, cats, link.Points[i-1], link.Points[i])
		}
	}
}

// plotSegment draws a world-space segment by sampling it at one-pixel
// steps in screen space.
func (m viewerModel) plotSegment(grid [][]rune, cats [][]int, a, b scene.Point) {
	ax, ay := m.view.WorldToScreen(a.X, a.Y, m.cols, m.pixelH())
	bx, by := m.view.WorldToScreen(b.X, b.Y, m.cols, m.pixelH())

	dx, dy := bx-ax, by-ay
	steps := max(1, int(max64(abs64(dx), abs64(dy))))
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		m.plot(grid, cats, ax+dx*t, ay+dy*t, '·', cellLink)
	}
}

func (m viewerModel) plotDiscs(f scene.Frame, grid [][]rune, cats [][]int) {
	for _, d := range f.Discs {
		sx, sy := m.view.WorldToScreen(d.Center.X, d.Center.Y, m.cols, m.pixelH())
		m.plot(grid, cats, sx, sy, '•', cellDisc)
	}
}

// plotLabels writes label text horizontally: terminals cannot rotate
// glyphs, so only the alignment side of the placement survives, anchored
// at the projected label position.
func (m viewerModel) plotLabels(f scene.Frame, grid [][]rune, cats [][]int) {
	for i, l := range f.Labels {
		sx, sy := m.view.WorldToScreen(l.Anchor.X, l.Anchor.Y, m.cols, m.pixelH())

		runes := []rune(l.Text)
		startX := sx
		switch l.Align {
		case scene.AlignCenter:
			startX -= float64(len(runes)) / 2
		case scene.AlignEnd:
			startX -= float64(len(runes))
		}

		cat := cellLabel
		if i == 0 {
			cat = cellRoot // root label is emitted first
		}
		for j, r := range runes {
			m.plot(grid, cats, startX+float64(j), sy, r, cat)
		}
	}
}

func (m viewerModel) styleRow(row []rune, cat []int) string {
	var b strings.Builder
	for x, r := range row {
		s := string(r)
		switch cat[x] {
		case cellLink:
			s = styleLink.Render(s)
		case cellDisc:
			s = styleDisc.Render(s)
		case cellLabel:
			s = styleLabel.Render(s)
		case cellRoot:
			s = styleRoot.Render(s)
		}
		b.WriteString(s)
	}
	return b.String()
}

func (m viewerModel) statusBar() string {
	rot := "rotation off"
	if m.anim.Running() {
		rot = styleActive.Render(fmt.Sprintf("rotating %.0f°/s", m.anim.DegPerSec))
	}
	links := "curved"
	if !m.opts.Curved {
		links = "straight"
	}

	status := styleStatus.Render(fmt.Sprintf(" zoom %.2f · %s · %s links ", m.view.Zoom, rot, links))
	help := styleHelp.Render("+/- zoom  arrows pan  r rotate  [/] speed  c curves  L leaves  t scale  q quit")
	return styleTitle.Render(" "+m.path+" ") + status + "\n" + help
}

func abs64(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func max64(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
