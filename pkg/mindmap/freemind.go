package mindmap

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
)

var (
	// ErrNoMapElement is returned by [Parse] when the document has no
	// top-level <map> element.
	ErrNoMapElement = errors.New("no <map> element")

	// ErrNoRootElement is returned by [Parse] when the <map> element has no
	// root <node> child.
	ErrNoRootElement = errors.New("no root <node> element")
)

// xmlNode mirrors the FreeMind <node> element. Nested <node> elements are
// decoded in document order.
type xmlNode struct {
	ID       string    `xml:"ID,attr"`
	Text     string    `xml:"TEXT,attr"`
	Children []xmlNode `xml:"node"`
}

// xmlMap mirrors the FreeMind <map> document root.
type xmlMap struct {
	XMLName xml.Name `xml:"map"`
	Root    *xmlNode `xml:"node"`
}

// Parse reads a FreeMind (.mm) document and builds its tree.
//
// Node identity comes from the ID attribute; nodes without one get a
// generated UUID. Empty TEXT falls back to the ID. Children are stored in
// reverse document order: FreeMind writers emit right-side branches first,
// and reversing restores the authored top-to-bottom reading order around
// the circle. Malformed documents (no <map>, no root <node>, duplicate IDs)
// are rejected here, never during layout.
func Parse(r io.Reader) (*Tree, error) {
	var doc xmlMap
	dec := xml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoMapElement
		}
		return nil, fmt.Errorf("decode map: %w", err)
	}
	if doc.Root == nil {
		return nil, ErrNoRootElement
	}

	t := New()
	id, text := identity(doc.Root)
	if _, err := t.AddRoot(id, text); err != nil {
		return nil, err
	}
	if err := addChildren(t, t.Root(), doc.Root); err != nil {
		return nil, err
	}
	return t, nil
}

// ParseFile reads and parses a FreeMind document from disk.
func ParseFile(path string) (*Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	t, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return t, nil
}

func addChildren(t *Tree, parent int, el *xmlNode) error {
	for i := range el.Children {
		c := &el.Children[i]
		id, text := identity(c)
		idx, err := t.AddChild(parent, id, text)
		if err != nil {
			return err
		}
		if err := addChildren(t, idx, c); err != nil {
			return err
		}
	}
	reverse(t.Node(parent).Children)
	return nil
}

func reverse(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// identity resolves the ID and display text for an element. Nodes without
// an ID attribute get a generated one; empty text falls back to the ID so
// every node has something to label.
func identity(el *xmlNode) (id, text string) {
	id = el.ID
	if id == "" {
		id = "auto_" + uuid.NewString()
	}
	text = el.Text
	if text == "" {
		text = id
	}
	return id, text
}
