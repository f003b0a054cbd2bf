// Package mindmap provides the in-memory tree model for mind map documents.
//
// Trees are stored as an arena of nodes addressed by index: each node keeps
// a parent index (NoParent for the root) and an ordered list of child
// indices. The arena avoids ownership cycles entirely - parent references
// are plain indices used only for traversal context.
//
// A tree is built once (either programmatically or by [Parse]) and then
// decorated by a layout pass (see pkg/radial). After layout, the tree is
// read-only for the duration of a session.
package mindmap

import "errors"

// NoParent is the parent index sentinel for the root node.
const NoParent = -1

var (
	// ErrInvalidNodeID is returned by [Tree.AddRoot] and [Tree.AddChild]
	// when the node ID is empty. All nodes must have non-empty identifiers.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned when a node with the same ID already
	// exists in the tree. Node IDs must be unique.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownParent is returned by [Tree.AddChild] when the parent index
	// is out of range.
	ErrUnknownParent = errors.New("unknown parent node")

	// ErrRootExists is returned by [Tree.AddRoot] when the tree already has
	// a root node.
	ErrRootExists = errors.New("tree already has a root")

	// ErrNoRoot is returned by [Tree.Validate] on a tree without nodes.
	ErrNoRoot = errors.New("tree has no root")
)

// Node is a single mind map node plus its layout attributes.
//
// ID, Text, Parent and Children are set at build time. The remaining fields
// are derived: they are populated by a layout pass (pkg/radial) and must be
// treated as read-only until the next explicit re-layout.
type Node struct {
	ID   string // unique identity within the tree
	Text string // display label

	Parent   int   // arena index of the parent, NoParent for the root
	Children []int // arena indices in placement order

	Depth     int     // root = 0, child = parent depth + 1
	LeafCount int     // number of leaf descendants, never below 1 after layout
	Angle     float64 // radians, bisector of the node's angular span
	Radius    float64 // world distance from the origin
	X, Y      float64 // cartesian position derived from Angle and Radius
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }

// Tree is an arena-backed mind map hierarchy with exactly one root at
// index 0. The zero value is an empty tree ready for AddRoot.
type Tree struct {
	nodes []Node
	byID  map[string]int
}

// New creates an empty tree.
func New() *Tree {
	return &Tree{byID: make(map[string]int)}
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int { return len(t.nodes) }

// Root returns the arena index of the root node (always 0 for a non-empty
// tree).
func (t *Tree) Root() int { return 0 }

// Node returns a pointer into the arena. The pointer stays valid for reads;
// callers must not hold it across AddChild calls, which may grow the arena.
func (t *Tree) Node(i int) *Node { return &t.nodes[i] }

// Index returns the arena index for the given node ID, or -1 if absent.
func (t *Tree) Index(id string) int {
	if i, ok := t.byID[id]; ok {
		return i
	}
	return -1
}

// AddRoot creates the root node. It fails if the tree already has one.
func (t *Tree) AddRoot(id, text string) (int, error) {
	if len(t.nodes) > 0 {
		return -1, ErrRootExists
	}
	return t.add(NoParent, id, text)
}

// AddChild appends a node under parent and returns its arena index.
// Child order is meaningful: it determines angular placement order.
func (t *Tree) AddChild(parent int, id, text string) (int, error) {
	if parent < 0 || parent >= len(t.nodes) {
		return -1, ErrUnknownParent
	}
	i, err := t.add(parent, id, text)
	if err != nil {
		return -1, err
	}
	t.nodes[parent].Children = append(t.nodes[parent].Children, i)
	return i, nil
}

func (t *Tree) add(parent int, id, text string) (int, error) {
	if id == "" {
		return -1, ErrInvalidNodeID
	}
	if _, ok := t.byID[id]; ok {
		return -1, ErrDuplicateNodeID
	}
	if t.byID == nil {
		t.byID = make(map[string]int)
	}
	i := len(t.nodes)
	t.nodes = append(t.nodes, Node{ID: id, Text: text, Parent: parent})
	t.byID[id] = i
	return i, nil
}

// Walk visits the subtree rooted at i in preorder: the node itself first,
// then each child subtree in stored order.
func (t *Tree) Walk(i int, fn func(i int, n *Node)) {
	n := &t.nodes[i]
	fn(i, n)
	for _, c := range n.Children {
		t.Walk(c, fn)
	}
}

// Leaves returns the number of leaf nodes in the whole tree.
func (t *Tree) Leaves() int {
	count := 0
	for i := range t.nodes {
		if t.nodes[i].IsLeaf() {
			count++
		}
	}
	return count
}

// Validate checks structural invariants: a root exists, the root is at
// index 0 with no parent, and every non-root node is reachable from its
// parent's child list.
func (t *Tree) Validate() error {
	if len(t.nodes) == 0 {
		return ErrNoRoot
	}
	if t.nodes[0].Parent != NoParent {
		return ErrNoRoot
	}
	seen := 0
	t.Walk(0, func(int, *Node) { seen++ })
	if seen != len(t.nodes) {
		return ErrUnknownParent
	}
	return nil
}
