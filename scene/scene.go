// Package scene holds the in-memory model of a parsed notebook page:
// a tree of groups containing pen strokes and text, as produced by an
// upstream .rm parser. The exporters in this module consume this tree;
// they never touch the binary page format themselves.
package scene

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ID identifies an item within a page. IDs are assigned by the
// upstream parser; apart from equality and formatting they are opaque.
type ID struct {
	Part1 uint8
	Part2 uint64
}

func (id ID) IsZero() bool {
	return id.Part1 == 0 && id.Part2 == 0
}

func (id ID) String() string {
	return fmt.Sprintf("%d:%d", id.Part1, id.Part2)
}

// ParseID parses the "part1:part2" form produced by ID.String.
func ParseID(s string) (ID, error) {
	sep := strings.IndexByte(s, ':')
	if sep < 0 {
		return ID{}, errors.Errorf("malformed id %q", s)
	}
	p1, err := strconv.ParseUint(s[:sep], 10, 8)
	if err != nil {
		return ID{}, errors.Wrapf(err, "malformed id %q", s)
	}
	p2, err := strconv.ParseUint(s[sep+1:], 10, 64)
	if err != nil {
		return ID{}, errors.Wrapf(err, "malformed id %q", s)
	}
	return ID{Part1: uint8(p1), Part2: p2}, nil
}

// Point is one stylus sample. Coordinates are relative to the
// enclosing group's frame until the exporter resolves them.
type Point struct {
	X         float32
	Y         float32
	Speed     float32
	Direction float32
	Width     float32
	Pressure  float32
}

// Item is the closed set of things a group can contain. Exactly
// Group, Stroke and Text implement it; exporters match exhaustively.
type Item interface {
	sceneItem()
}

func (*Group) sceneItem()  {}
func (*Stroke) sceneItem() {}
func (*Text) sceneItem()   {}

// Child pairs an item with its identity. A group's children keep
// insertion order, which is drawing order.
type Child struct {
	ID   ID
	Item Item
}

// Group is an interior node of the scene tree. Its children are in
// group-local coordinates; the group's own offset lives in the anchor
// metadata of the root text and is correlated by AnchorID.
type Group struct {
	NodeID        ID
	Label         string
	AnchorID      *ID
	AnchorOriginX *float64
	Children      []Child
}

// Append adds a child, preserving insertion order.
func (g *Group) Append(id ID, item Item) {
	g.Children = append(g.Children, Child{ID: id, Item: item})
}

// Stroke is one continuous pen gesture.
type Stroke struct {
	Tool           Tool
	Color          PenColor
	ThicknessScale float64
	StartingLength float32
	// MoveID is carried for traceability only; it never affects order.
	MoveID uint32
	Points []Point
}

// Text is a typed-text block. Only the text attached to the page root
// is rendered by the exporters.
type Text struct {
	X        float64
	Y        float64
	Width    float64
	Document Document
}

// Document is an ordered list of styled paragraphs, already decoded
// from the CRDT text stream by the upstream parser.
type Document struct {
	Paragraphs []Paragraph
}

// Paragraph carries the rendered string of one line plus the id of its
// first character, which group anchors reference.
type Paragraph struct {
	StartID ID
	Style   ParagraphStyle
	Content string
}

// Tree is a fully parsed page.
type Tree struct {
	Root     *Group
	RootText *Text
}

// Walk visits every item below the root depth-first, children in
// insertion order. The root text is not part of the traversal.
func (t *Tree) Walk(fn func(Item)) {
	if t == nil || t.Root == nil {
		return
	}
	walkGroup(t.Root, fn)
}

func walkGroup(g *Group, fn func(Item)) {
	for _, c := range g.Children {
		fn(c.Item)
		if sub, ok := c.Item.(*Group); ok {
			walkGroup(sub, fn)
		}
	}
}
