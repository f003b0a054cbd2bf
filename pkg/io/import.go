package io

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/mindwheel/pkg/mindmap"
)

var (
	// ErrNoNodes is returned by [ReadJSON] for documents with an empty
	// node list.
	ErrNoNodes = errors.New("document has no nodes")

	// ErrBadIndex is returned when a parent or child index points outside
	// the node list.
	ErrBadIndex = errors.New("node index out of range")
)

// ReadJSON decodes a tree from w's JSON form. The tree is rebuilt through
// the normal arena constructors, so structural invariants (single root,
// unique IDs) are re-validated; layout attributes are copied verbatim and
// returned along with the recorded radius step.
func ReadJSON(r io.Reader) (*mindmap.Tree, float64, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, 0, fmt.Errorf("decode: %w", err)
	}
	if len(doc.Nodes) == 0 {
		return nil, 0, ErrNoNodes
	}

	rootIdx := -1
	for i := range doc.Nodes {
		if doc.Nodes[i].Parent == mindmap.NoParent {
			rootIdx = i
			break
		}
	}
	if rootIdx == -1 {
		return nil, 0, mindmap.ErrNoRoot
	}

	t := mindmap.New()
	ri, err := t.AddRoot(doc.Nodes[rootIdx].ID, doc.Nodes[rootIdx].Text)
	if err != nil {
		return nil, 0, err
	}
	copyLayout(t, ri, &doc.Nodes[rootIdx])

	if err := rebuild(t, ri, rootIdx, doc.Nodes); err != nil {
		return nil, 0, err
	}
	return t, doc.RadiusStep, nil
}

// ImportJSON reads a tree from a JSON file at path.
func ImportJSON(path string) (*mindmap.Tree, float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	t, step, err := ReadJSON(f)
	if err != nil {
		return nil, 0, fmt.Errorf("import %s: %w", path, err)
	}
	return t, step, nil
}

// rebuild inserts the children of document node src (at tree index dst)
// in their recorded order, recursing depth-first.
func rebuild(t *mindmap.Tree, dst, src int, nodes []node) error {
	for _, c := range nodes[src].Children {
		if c < 0 || c >= len(nodes) {
			return ErrBadIndex
		}
		ci, err := t.AddChild(dst, nodes[c].ID, nodes[c].Text)
		if err != nil {
			return err
		}
		copyLayout(t, ci, &nodes[c])
		if err := rebuild(t, ci, c, nodes); err != nil {
			return err
		}
	}
	return nil
}

func copyLayout(t *mindmap.Tree, i int, src *node) {
	n := t.Node(i)
	n.Depth = src.Depth
	n.LeafCount = src.Leaves
	n.Angle = src.Angle
	n.Radius = src.Radius
	n.X = src.X
	n.Y = src.Y
}
