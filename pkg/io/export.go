package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/mindwheel/pkg/mindmap"
)

// document is the on-disk JSON shape. Nodes appear in arena order; child
// order is explicit because it drives angular placement.
type document struct {
	RadiusStep float64 `json:"radius_step,omitempty"`
	Nodes      []node  `json:"nodes"`
}

type node struct {
	ID       string  `json:"id"`
	Text     string  `json:"text,omitempty"`
	Parent   int     `json:"parent"` // arena index, -1 for the root
	Children []int   `json:"children,omitempty"`
	Depth    int     `json:"depth"`
	Leaves   int     `json:"leaves"`
	Angle    float64 `json:"angle"`
	Radius   float64 `json:"radius"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
}

// WriteJSON encodes a tree and writes it to w. The output can be
// re-imported with [ReadJSON] for round-trip processing.
func WriteJSON(t *mindmap.Tree, radiusStep float64, w io.Writer) error {
	out := document{RadiusStep: radiusStep, Nodes: make([]node, t.Len())}

	for i := 0; i < t.Len(); i++ {
		n := t.Node(i)
		out.Nodes[i] = node{
			ID:       n.ID,
			Text:     n.Text,
			Parent:   n.Parent,
			Children: n.Children,
			Depth:    n.Depth,
			Leaves:   n.LeafCount,
			Angle:    n.Angle,
			Radius:   n.Radius,
			X:        n.X,
			Y:        n.Y,
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a tree to a JSON file at path.
func ExportJSON(t *mindmap.Tree, radiusStep float64, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := WriteJSON(t, radiusStep, f); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	return nil
}
