package io

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/matzehuels/mindwheel/pkg/mindmap"
	"github.com/matzehuels/mindwheel/pkg/radial"
)

func laidOutTree(t *testing.T) *mindmap.Tree {
	t.Helper()
	tree := mindmap.New()

	root, err := tree.AddRoot("root", "Root")
	if err != nil {
		t.Fatalf("AddRoot: %v", err)
	}
	a, err := tree.AddChild(root, "a", "A")
	if err != nil {
		t.Fatalf("AddChild: %v", err)
	}
	if _, err := tree.AddChild(a, "a1", "A1"); err != nil {
		t.Fatalf("AddChild: %v", err)
	}
	if _, err := tree.AddChild(root, "b", "B"); err != nil {
		t.Fatalf("AddChild: %v", err)
	}

	radial.Layout(tree, radial.Options{RadiusStep: 40})
	return tree
}

func TestJSONRoundTrip(t *testing.T) {
	tree := laidOutTree(t)

	var buf bytes.Buffer
	if err := WriteJSON(tree, 40, &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	got, step, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if step != 40 {
		t.Errorf("radius step = %v, want 40", step)
	}
	if got.Len() != tree.Len() {
		t.Fatalf("Len = %d, want %d", got.Len(), tree.Len())
	}
	if err := got.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}

	// Every node survives with identity, structure and layout intact.
	for i := 0; i < tree.Len(); i++ {
		want := tree.Node(i)
		j := got.Index(want.ID)
		if j == -1 {
			t.Fatalf("node %s missing after round trip", want.ID)
		}
		n := got.Node(j)

		if n.Text != want.Text {
			t.Errorf("node %s text = %q, want %q", want.ID, n.Text, want.Text)
		}
		if n.Depth != want.Depth || n.LeafCount != want.LeafCount {
			t.Errorf("node %s depth/leaves = %d/%d, want %d/%d",
				want.ID, n.Depth, n.LeafCount, want.Depth, want.LeafCount)
		}
		if math.Abs(n.Angle-want.Angle) > 1e-12 || math.Abs(n.Radius-want.Radius) > 1e-12 {
			t.Errorf("node %s layout changed", want.ID)
		}
		if len(n.Children) != len(want.Children) {
			t.Errorf("node %s children = %d, want %d", want.ID, len(n.Children), len(want.Children))
		}
	}
}

func TestJSONRoundTripPreservesChildOrder(t *testing.T) {
	tree := laidOutTree(t)

	var buf bytes.Buffer
	if err := WriteJSON(tree, 40, &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	got, _, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}

	wantRoot := tree.Node(tree.Root())
	gotRoot := got.Node(got.Root())
	for i := range wantRoot.Children {
		wantID := tree.Node(wantRoot.Children[i]).ID
		gotID := got.Node(gotRoot.Children[i]).ID
		if wantID != gotID {
			t.Errorf("child %d = %s, want %s", i, gotID, wantID)
		}
	}
}

func TestReadJSONErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"empty nodes", `{"nodes": []}`, ErrNoNodes},
		{"no root", `{"nodes": [{"id": "a", "parent": 0}]}`, mindmap.ErrNoRoot},
		{"bad child index", `{"nodes": [{"id": "r", "parent": -1, "children": [9]}]}`, ErrBadIndex},
		{"duplicate IDs", `{"nodes": [{"id": "r", "parent": -1, "children": [1]}, {"id": "r", "parent": 0}]}`, mindmap.ErrDuplicateNodeID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ReadJSON(strings.NewReader(tt.doc))
			if !errors.Is(err, tt.want) {
				t.Errorf("ReadJSON error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestReadJSONMalformed(t *testing.T) {
	if _, _, err := ReadJSON(strings.NewReader("{not json")); err == nil {
		t.Error("ReadJSON should reject malformed input")
	}
}
