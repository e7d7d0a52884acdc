package inkml

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmtools/rmexport/scene"
)

func TestWriteEmptyTree(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, &scene.Tree{Root: &scene.Group{}}))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<?xml version=\"1.0\" encoding=\"utf-8\"?>\n"))
	assert.Contains(t, out, "ctxCoordinatesWithPressure")
	assert.Contains(t, out, "</inkml:ink>\n")
	assert.NotContains(t, out, "<inkml:trace ")
	assert.NotContains(t, out, "<inkml:brush")
}

func TestWriteTraceCoordinates(t *testing.T) {
	root := &scene.Group{}
	root.Append(scene.ID{Part1: 6, Part2: 1}, &scene.Stroke{
		Tool:           scene.Ballpoint2,
		Color:          scene.Black,
		ThicknessScale: 1,
		Points: []scene.Point{
			{X: 0, Y: 0, Pressure: 0.5},
			{X: 10, Y: 10, Pressure: 1},
		},
	})

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, &scene.Tree{Root: root}))

	out := buf.String()
	// bounding box minimum lands on the pad, scaled by 10
	assert.Contains(t, out, ">0 600 64,100 700 128</inkml:trace>")
	assert.Contains(t, out, `xml:id="1"`)
	assert.Contains(t, out, `brushRef="#name_Ballpoint_cap_round_op_1_w_2_clr_0"`)
}

func TestWriteBrushDefinitions(t *testing.T) {
	root := &scene.Group{}
	// two strokes with the same pen, one with a different pen
	for i := 0; i < 2; i++ {
		root.Append(scene.ID{Part1: 6, Part2: uint64(i)}, &scene.Stroke{
			Tool:           scene.Fineliner2,
			Color:          scene.Black,
			ThicknessScale: 1,
			Points:         []scene.Point{{X: float32(i), Y: 0}},
		})
	}
	root.Append(scene.ID{Part1: 6, Part2: 9}, &scene.Stroke{
		Tool:           scene.Highlighter2,
		Color:          scene.Highlight,
		ThicknessScale: 1,
		Points:         []scene.Point{{X: 0, Y: 5}},
	})

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, &scene.Tree{Root: root}))

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, "<inkml:brush "))
	assert.Contains(t, out, `xml:id="name_Fineliner_cap_round_op_1_w_1.6_clr_0"`)
	assert.Contains(t, out, `xml:id="name_Highlighter_cap_square_op_0.4_w_15_clr_3"`)
	assert.Contains(t, out, `name="rasterOp" value="maskPen"`)
	assert.Contains(t, out, `name="transparency" value="0.6"`)
	assert.Equal(t, 3, strings.Count(out, "<inkml:trace "))
}

func TestWriteSkipsErasersAndText(t *testing.T) {
	root := &scene.Group{}
	root.Append(scene.ID{Part1: 6, Part2: 1}, &scene.Stroke{
		Tool:   scene.EraserArea,
		Points: []scene.Point{{X: 0, Y: 0}},
	})
	root.Append(scene.ID{Part1: 6, Part2: 2}, &scene.Stroke{
		Tool:           scene.Pencil2,
		ThicknessScale: 1,
		Points:         []scene.Point{{X: 1, Y: 1}},
	})
	tree := &scene.Tree{
		Root: root,
		RootText: &scene.Text{
			Document: scene.Document{Paragraphs: []scene.Paragraph{
				{Style: scene.StylePlain, Content: "not ink"},
			}},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, tree))

	out := buf.String()
	assert.NotContains(t, out, "not ink")
	assert.Equal(t, 1, strings.Count(out, "<inkml:trace "))
	assert.Contains(t, out, `xml:id="1"`)
}
