// Package export implements the conversion core: anchor resolution,
// the coordinate transform pipeline, and the flattening of a scene
// tree into an ordered list of renderable shapes. Target assemblers
// (tldraw, svg, inkml, pdf) sit on top of this package.
package export

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/rmtools/rmexport/log"
	"github.com/rmtools/rmexport/scene"
)

// Kind discriminates the two renderable shapes.
type Kind int

const (
	StrokeShape Kind = iota
	TextShape
)

// StrokePoint is one fully resolved, target-space sample.
type StrokePoint struct {
	X        float64
	Y        float64
	Pressure float64
}

// Shape is one flattened renderable unit. Positions are fully
// resolved in target space; no relative offsets remain. Seq is the
// 1-based emission order, which is z-order in every target.
type Shape struct {
	Kind Kind
	Seq  int

	// stroke fields
	Points         []StrokePoint
	Tool           scene.Tool
	Color          scene.PenColor
	ThicknessScale float64

	// text fields
	X       float64
	Y       float64
	Content string
	Style   scene.ParagraphStyle
}

// EmitFunc receives shapes in emission order. An error aborts the
// conversion; it is reserved for output failures, not per-item ones.
type EmitFunc func(Shape) error

// Flattener walks a scene tree and emits shapes. Anchor offsets
// compose additively down the tree: the offset seen by a stroke is
// the sum of its group's anchor and all ancestor anchors. The zero
// value is not usable; populate all three fields.
type Flattener struct {
	Anchors   AnchorTable
	Transform Transform
	Styles    *StyleMap
}

// NewFlattener builds a flattener for one conversion, deriving the
// anchor table from the tree's root text.
func NewFlattener(tree *scene.Tree, t Transform, styles *StyleMap) *Flattener {
	return &Flattener{
		Anchors:   BuildAnchorTable(tree.RootText, styles),
		Transform: t,
		Styles:    styles,
	}
}

// Run emits every shape of the tree in document order: root-text
// paragraphs first, then the depth-first tree walk.
func (f *Flattener) Run(tree *scene.Tree, emit EmitFunc) error {
	seq := 1
	if tree.RootText != nil {
		var err error
		seq, err = f.emitText(tree.RootText, seq, emit)
		if err != nil {
			return err
		}
	}
	_, err := f.walk(tree.Root, Vec{}, seq, emit)
	return err
}

// Flatten is Run collecting into a slice.
func (f *Flattener) Flatten(tree *scene.Tree) ([]Shape, error) {
	var shapes []Shape
	err := f.Run(tree, func(s Shape) error {
		shapes = append(shapes, s)
		return nil
	})
	return shapes, err
}

func (f *Flattener) walk(g *scene.Group, offset Vec, seq int, emit EmitFunc) (int, error) {
	if g == nil {
		return seq, nil
	}
	for _, c := range g.Children {
		switch item := c.Item.(type) {
		case *scene.Group:
			anchor := ResolveAnchor(item, f.Anchors)
			var err error
			seq, err = f.walk(item, offset.Add(anchor), seq, emit)
			if err != nil {
				return seq, err
			}
		case *scene.Stroke:
			if len(item.Points) == 0 {
				log.Trace.Printf("stroke %s has no points, skipping", c.ID)
				continue
			}
			if err := emit(f.strokeShape(item, offset, seq)); err != nil {
				return seq, errors.Wrap(err, "emitting stroke")
			}
			seq++
		case *scene.Text:
			// only the root text is rendered; text nested in the tree
			// is ignored, matching the source format's viewers
			log.Trace.Printf("ignoring nested text item %s", c.ID)
		}
	}
	return seq, nil
}

func (f *Flattener) strokeShape(s *scene.Stroke, offset Vec, seq int) Shape {
	points := make([]StrokePoint, len(s.Points))
	for i, p := range s.Points {
		pos := f.Transform.Apply(float64(p.X), float64(p.Y), offset)
		points[i] = StrokePoint{X: pos.X, Y: pos.Y, Pressure: float64(p.Pressure)}
	}
	return Shape{
		Kind:           StrokeShape,
		Seq:            seq,
		Points:         points,
		Tool:           s.Tool,
		Color:          s.Color,
		ThicknessScale: s.ThicknessScale,
	}
}

func (f *Flattener) emitText(text *scene.Text, seq int, emit EmitFunc) (int, error) {
	y := float64(TextTopY)
	for _, p := range text.Document.Paragraphs {
		y += f.Styles.LineHeight(p.Style)
		content := strings.TrimSpace(p.Content)
		if content == "" {
			continue
		}
		pos := f.Transform.Apply(text.X, text.Y+y, Vec{})
		err := emit(Shape{
			Kind:    TextShape,
			Seq:     seq,
			X:       pos.X,
			Y:       pos.Y,
			Content: content,
			Style:   p.Style,
		})
		if err != nil {
			return seq, errors.Wrap(err, "emitting text")
		}
		seq++
	}
	return seq, nil
}

// BoundingBox computes the extent of all stroke points with anchors
// applied, before any target transform. Targets that normalize their
// coordinates derive their transform from it. An empty tree yields a
// zero box.
func BoundingBox(tree *scene.Tree, anchors AnchorTable) (min, max Vec) {
	first := true
	var visit func(g *scene.Group, offset Vec)
	visit = func(g *scene.Group, offset Vec) {
		if g == nil {
			return
		}
		for _, c := range g.Children {
			switch item := c.Item.(type) {
			case *scene.Group:
				visit(item, offset.Add(ResolveAnchor(item, anchors)))
			case *scene.Stroke:
				for _, p := range item.Points {
					x := float64(p.X) + offset.X
					y := float64(p.Y) + offset.Y
					if first {
						min, max = Vec{x, y}, Vec{x, y}
						first = false
						continue
					}
					if x < min.X {
						min.X = x
					}
					if x > max.X {
						max.X = x
					}
					if y < min.Y {
						min.Y = y
					}
					if y > max.Y {
						max.Y = y
					}
				}
			}
		}
	}
	visit(tree.Root, Vec{})
	return min, max
}
