package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmtools/rmexport/scene"
)

func strokeWith(points ...scene.Point) *scene.Stroke {
	return &scene.Stroke{
		Tool:           scene.Fineliner2,
		Color:          scene.Black,
		ThicknessScale: 1,
		Points:         points,
	}
}

func pt(x, y float32) scene.Point {
	return scene.Point{X: x, Y: y}
}

func float(v float64) *float64 {
	return &v
}

func TestFlattenNestedAnchorsCompose(t *testing.T) {
	// group A carries anchor (10,0), nested group B carries (0,5); a
	// stroke inside B must see the sum of both, not just B's own.
	idA := scene.ID{Part1: 1, Part2: 10}
	idB := scene.ID{Part1: 1, Part2: 11}

	groupB := &scene.Group{AnchorID: &idB}
	groupB.Append(scene.ID{Part1: 2, Part2: 1}, strokeWith(pt(1, 1), pt(2, 2)))

	groupA := &scene.Group{AnchorID: &idA, AnchorOriginX: float(10)}
	groupA.Append(scene.ID{Part1: 2, Part2: 2}, groupB)

	root := &scene.Group{}
	root.Append(scene.ID{Part1: 2, Part2: 3}, groupA)

	f := &Flattener{
		Anchors:   AnchorTable{idA: {Y: 0}, idB: {Y: 5}},
		Transform: Identity(),
		Styles:    WhiteboardStyles(),
	}
	shapes, err := f.Flatten(&scene.Tree{Root: root})
	require.NoError(t, err)
	require.Len(t, shapes, 1)

	assert.Equal(t, []StrokePoint{
		{X: 11, Y: 6},
		{X: 12, Y: 7},
	}, shapes[0].Points)
}

func TestFlattenEmissionOrder(t *testing.T) {
	// S1, S2 at the root, then S3 inside a nested group
	nested := &scene.Group{}
	nested.Append(scene.ID{Part1: 3, Part2: 3}, strokeWith(pt(3, 0)))

	root := &scene.Group{}
	root.Append(scene.ID{Part1: 3, Part2: 1}, strokeWith(pt(1, 0)))
	root.Append(scene.ID{Part1: 3, Part2: 2}, strokeWith(pt(2, 0)))
	root.Append(scene.ID{Part1: 3, Part2: 4}, nested)

	f := &Flattener{Anchors: AnchorTable{}, Transform: Identity(), Styles: WhiteboardStyles()}
	shapes, err := f.Flatten(&scene.Tree{Root: root})
	require.NoError(t, err)
	require.Len(t, shapes, 3)

	assert.Equal(t, 1.0, shapes[0].Points[0].X)
	assert.Equal(t, 2.0, shapes[1].Points[0].X)
	assert.Equal(t, 3.0, shapes[2].Points[0].X)
	for i, s := range shapes {
		assert.Equal(t, i+1, s.Seq)
	}
}

func TestFlattenRootTextPrecedesInk(t *testing.T) {
	root := &scene.Group{}
	root.Append(scene.ID{Part1: 3, Part2: 1}, strokeWith(pt(1, 0)))

	tree := &scene.Tree{
		Root: root,
		RootText: &scene.Text{
			X: -700, Y: 0,
			Document: scene.Document{Paragraphs: []scene.Paragraph{
				{Style: scene.StyleBold, Content: "Hello"},
				{Style: scene.StylePlain, Content: "   "},
			}},
		},
	}

	f := NewFlattener(tree, Identity(), WhiteboardStyles())
	shapes, err := f.Flatten(tree)
	require.NoError(t, err)

	// the whitespace-only paragraph is dropped
	require.Len(t, shapes, 2)
	assert.Equal(t, TextShape, shapes[0].Kind)
	assert.Equal(t, "Hello", shapes[0].Content)
	assert.Equal(t, scene.StyleBold, shapes[0].Style)
	assert.Equal(t, -700.0, shapes[0].X)
	assert.Equal(t, -18.0, shapes[0].Y)
	assert.Equal(t, StrokeShape, shapes[1].Kind)
	assert.Equal(t, 2, shapes[1].Seq)
}

func TestFlattenSkipsEmptyStrokes(t *testing.T) {
	root := &scene.Group{}
	root.Append(scene.ID{Part1: 3, Part2: 1}, &scene.Stroke{Tool: scene.Fineliner2})
	root.Append(scene.ID{Part1: 3, Part2: 2}, strokeWith(pt(1, 0)))

	f := &Flattener{Anchors: AnchorTable{}, Transform: Identity(), Styles: WhiteboardStyles()}
	shapes, err := f.Flatten(&scene.Tree{Root: root})
	require.NoError(t, err)

	require.Len(t, shapes, 1)
	assert.Equal(t, 1, shapes[0].Seq)
}

func TestFlattenIgnoresNestedText(t *testing.T) {
	root := &scene.Group{}
	root.Append(scene.ID{Part1: 3, Part2: 1}, &scene.Text{
		Document: scene.Document{Paragraphs: []scene.Paragraph{
			{Style: scene.StylePlain, Content: "should not render"},
		}},
	})

	f := &Flattener{Anchors: AnchorTable{}, Transform: Identity(), Styles: WhiteboardStyles()}
	shapes, err := f.Flatten(&scene.Tree{Root: root})
	require.NoError(t, err)
	assert.Empty(t, shapes)
}

func TestFlattenEmptyTree(t *testing.T) {
	f := NewFlattener(&scene.Tree{Root: &scene.Group{}}, Identity(), WhiteboardStyles())
	shapes, err := f.Flatten(&scene.Tree{Root: &scene.Group{}})
	require.NoError(t, err)
	assert.Empty(t, shapes)
}

func TestBoundingBox(t *testing.T) {
	id := scene.ID{Part1: 1, Part2: 10}
	nested := &scene.Group{AnchorID: &id}
	nested.Append(scene.ID{Part1: 3, Part2: 2}, strokeWith(pt(5, 5)))

	root := &scene.Group{}
	root.Append(scene.ID{Part1: 3, Part2: 1}, strokeWith(pt(-1, 2), pt(4, -3)))
	root.Append(scene.ID{Part1: 3, Part2: 3}, nested)

	min, max := BoundingBox(&scene.Tree{Root: root}, AnchorTable{id: {Y: 100}})

	assert.Equal(t, Vec{X: -1, Y: -3}, min)
	assert.Equal(t, Vec{X: 5, Y: 105}, max)
}
