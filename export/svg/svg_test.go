package svg

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmtools/rmexport/export"
	"github.com/rmtools/rmexport/scene"
)

func TestWriteEmptyTree(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, &scene.Tree{Root: &scene.Group{}}, nil))

	out := buf.String()
	assert.Contains(t, out, `width="1404" height="1872" viewBox="0 0 1404 1872"`)
	assert.Contains(t, out, "</svg>\n")
	assert.NotContains(t, out, "<polyline")
	assert.NotContains(t, out, "<text")
}

func TestWriteStroke(t *testing.T) {
	root := &scene.Group{}
	root.Append(scene.ID{Part1: 5, Part2: 1}, &scene.Stroke{
		Tool:           scene.Fineliner2,
		Color:          scene.Red,
		ThicknessScale: 1,
		Points: []scene.Point{
			{X: -702, Y: 0},
			{X: 0, Y: 10},
		},
	})

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, &scene.Tree{Root: root}, nil))

	out := buf.String()
	assert.Contains(t, out, `stroke:#d90707`)
	assert.Contains(t, out, `stroke-width:1.60`)
	assert.Contains(t, out, `stroke-linecap="round"`)
	assert.Contains(t, out, `points="0.00,0.00 702.00,10.00"`)
}

func TestWriteSkipsErasers(t *testing.T) {
	root := &scene.Group{}
	root.Append(scene.ID{Part1: 5, Part2: 1}, &scene.Stroke{
		Tool:   scene.Eraser,
		Points: []scene.Point{{X: 1, Y: 1}},
	})

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, &scene.Tree{Root: root}, nil))
	assert.NotContains(t, buf.String(), "<polyline")
}

func TestWriteHighlighter(t *testing.T) {
	root := &scene.Group{}
	root.Append(scene.ID{Part1: 5, Part2: 1}, &scene.Stroke{
		Tool:           scene.Highlighter2,
		Color:          scene.Highlight,
		ThicknessScale: 1,
		Points:         []scene.Point{{X: 0, Y: 0}, {X: 10, Y: 0}},
	})

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, &scene.Tree{Root: root}, nil))

	out := buf.String()
	assert.Contains(t, out, `stroke:#fbf719`)
	assert.Contains(t, out, `opacity:0.4`)
	assert.Contains(t, out, `stroke-linecap="square"`)
}

func TestWriteTextEscapes(t *testing.T) {
	tree := &scene.Tree{
		Root: &scene.Group{},
		RootText: &scene.Text{
			Document: scene.Document{Paragraphs: []scene.Paragraph{
				{Style: scene.StyleHeading, Content: "a<b & c>d"},
			}},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, tree, nil))

	out := buf.String()
	assert.Contains(t, out, "font-size:24px;font-weight:bold")
	assert.Contains(t, out, ">a&lt;b &amp; c&gt;d</text>")
}

func TestWriteCustomSize(t *testing.T) {
	var buf bytes.Buffer
	opts := &Options{Width: 500, Height: 700, Transform: &export.Transform{ScaleX: 1, ScaleY: 1}}
	require.NoError(t, Write(&buf, &scene.Tree{Root: &scene.Group{}}, opts))
	assert.Contains(t, buf.String(), `width="500" height="700" viewBox="0 0 500 700"`)
}
