package export

import (
	"github.com/rmtools/rmexport/log"
	"github.com/rmtools/rmexport/scene"
)

// AnchorTable maps an anchor id to the offset of the group that
// references it. It is built once per conversion from the root text
// and never mutated afterwards; a missing entry resolves to (0,0).
type AnchorTable map[scene.ID]Vec

// Every page carries two synthetic anchors for content attached to the
// page frame rather than to a text line.
var builtinAnchors = map[scene.ID]Vec{
	{Part1: 0, Part2: 281474976710654}: {Y: 270},
	{Part1: 0, Part2: 281474976710655}: {Y: 700},
}

// TextTopY is the y of the text block's first baseline relative to its
// position.
const TextTopY = -88

// BuildAnchorTable derives anchor offsets from the root text: each
// paragraph's start id maps to the running y of that line. A nil text
// yields just the built-in page anchors. A paragraph without a start
// id cannot be anchored to; it is skipped, not an error.
func BuildAnchorTable(text *scene.Text, styles *StyleMap) AnchorTable {
	table := make(AnchorTable, len(builtinAnchors))
	for id, v := range builtinAnchors {
		table[id] = v
	}
	if text == nil {
		return table
	}

	y := text.Y + TextTopY
	for i, p := range text.Document.Paragraphs {
		y += styles.LineHeight(p.Style)
		if p.StartID.IsZero() {
			log.Trace.Printf("paragraph %d has no start id, not anchorable", i)
			continue
		}
		table[p.StartID] = Vec{Y: y}
	}
	return table
}

// ResolveAnchor returns the group's own offset: the y of the anchored
// text line plus the group's recorded x origin. Groups without anchor
// metadata, and anchors the table does not know, resolve to (0,0).
func ResolveAnchor(g *scene.Group, table AnchorTable) Vec {
	var anchor Vec
	if g.AnchorID != nil {
		if pos, ok := table[*g.AnchorID]; ok {
			anchor.Y = pos.Y
		}
		if g.AnchorOriginX != nil {
			anchor.X = *g.AnchorOriginX
		}
	}
	return anchor
}
