// Package inkml assembles flattened shapes into an InkML document
// suitable for OneNote-style ink importers.
package inkml

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/rmtools/rmexport/export"
	"github.com/rmtools/rmexport/log"
	"github.com/rmtools/rmexport/scene"
)

const (
	// Conversion from source units to himetric-ish integers.
	widthConv  = 10
	heightConv = 10
	// The force channel is an integer; source pressure is 0..1.
	pressureConv = 128

	// Importer pages reserve space for a title at the top; pad ink
	// below it.
	xPad = 0
	yPad = 600
)

const xmlHeader = "<?xml version=\"1.0\" encoding=\"utf-8\"?>\n" +
	"<inkml:ink xmlns:emma=\"http://www.w3.org/2003/04/emma\" " +
	"xmlns:msink=\"http://schemas.microsoft.com/ink/2010/main\"" +
	" xmlns:inkml=\"http://www.w3.org/2003/InkML\">\n"

const contextBlock = `  <inkml:definitions>
    <inkml:context xml:id="ctxCoordinatesWithPressure">
        <inkml:inkSource xml:id="inkSrcCoordinatesWithPressure">
            <inkml:traceFormat>
                <inkml:channel name="X" type="integer" max="32767" units="himetric" />
                <inkml:channel name="Y" type="integer" max="32767" units="himetric" />
                <inkml:channel name="F" type="integer" max="32767" units="dev" />
            </inkml:traceFormat>
            <inkml:channelProperties>
                <inkml:channelProperty channel="X" name="resolution" value="1" units="1/himetric" />
                <inkml:channelProperty channel="Y" name="resolution" value="1" units="1/himetric" />
                <inkml:channelProperty channel="F" name="resolution" value="1" units="1/dev" />
            </inkml:channelProperties>
        </inkml:inkSource>
    </inkml:context>
`

// Write converts a scene tree into an InkML document on w. Brush
// definitions for every pen used on the page go into the header;
// strokes become traces with x, y and pressure channels. Text is not
// part of the ink stream.
func Write(w io.Writer, tree *scene.Tree) error {
	if _, err := io.WriteString(w, xmlHeader); err != nil {
		return errors.Wrap(err, "writing inkml header")
	}
	if err := writeDefinitions(w, tree); err != nil {
		return err
	}

	styles := export.VectorStyles()
	anchors := export.BuildAnchorTable(tree.RootText, styles)
	min, _ := export.BoundingBox(tree, anchors)
	flattener := &export.Flattener{
		Anchors:   anchors,
		Transform: export.FitBox(min, widthConv, export.Vec{X: xPad, Y: yPad}),
		Styles:    styles,
	}

	if _, err := io.WriteString(w, "  <inkml:traceGroup>\n"); err != nil {
		return errors.Wrap(err, "writing trace group")
	}

	traceID := 1
	err := flattener.Run(tree, func(s export.Shape) error {
		if s.Kind != export.StrokeShape || s.Tool.IsEraser() {
			return nil
		}
		if err := writeTrace(w, s, traceID); err != nil {
			return err
		}
		traceID++
		return nil
	})
	if err != nil {
		return err
	}
	log.Trace.Printf("inkml export finished: %d traces", traceID-1)

	if _, err := io.WriteString(w, "  </inkml:traceGroup>\n</inkml:ink>\n"); err != nil {
		return errors.Wrap(err, "writing inkml footer")
	}
	return nil
}

// writeDefinitions appends the ink context and one brush definition
// per distinct pen used on the page.
func writeDefinitions(w io.Writer, tree *scene.Tree) error {
	if _, err := io.WriteString(w, contextBlock); err != nil {
		return errors.Wrap(err, "writing ink context")
	}
	for _, pen := range usedPens(tree) {
		rasterOp := "copyPen"
		if pen.Name == "Highlighter" {
			rasterOp = "maskPen"
		}
		_, err := fmt.Fprintf(w, `
    <inkml:brush xml:id="%s">
        <inkml:brushProperty name="width" value="%d" units="himetric" />
        <inkml:brushProperty name="height" value="%d" units="himetric" />
        <inkml:brushProperty name="color" value="%s" />
        <inkml:brushProperty name="transparency" value="%g" />
        <inkml:brushProperty name="tip" value="ellipse" />
        <inkml:brushProperty name="rasterOp" value="%s" />
        <inkml:brushProperty name="ignorePressure" value="false" />
        <inkml:brushProperty name="antiAliased" value="true" />
        <inkml:brushProperty name="fitToCurve" value="false" />
    </inkml:brush>`,
			pen.ID(), int(pen.Width*widthConv), int(pen.Width*heightConv),
			export.PaletteColor(pen.Color).Hex(), 1-pen.Opacity, rasterOp)
		if err != nil {
			return errors.Wrap(err, "writing brush definition")
		}
	}
	_, err := io.WriteString(w, "\n  </inkml:definitions>\n")
	return errors.Wrap(err, "writing ink definitions")
}

// usedPens collects the distinct pens of the page in first-use order.
func usedPens(tree *scene.Tree) []export.Pen {
	var pens []export.Pen
	seen := make(map[string]bool)
	tree.Walk(func(item scene.Item) {
		s, ok := item.(*scene.Stroke)
		if !ok || s.Tool.IsEraser() {
			return
		}
		pen := export.NewPen(s.Tool, s.Color, s.ThicknessScale)
		if id := pen.ID(); !seen[id] {
			seen[id] = true
			pens = append(pens, pen)
		}
	})
	return pens
}

func writeTrace(w io.Writer, s export.Shape, traceID int) error {
	pen := export.NewPen(s.Tool, s.Color, s.ThicknessScale)

	coords := make([]byte, 0, len(s.Points)*12)
	for i, p := range s.Points {
		if i > 0 {
			coords = append(coords, ',')
		}
		coords = append(coords, fmt.Sprintf("%d %d %d",
			int(p.X), int(p.Y), int(p.Pressure*pressureConv))...)
	}

	_, err := fmt.Fprintf(w,
		"    <inkml:trace xml:id=\"%d\" contextRef=\"#ctxCoordinatesWithPressure\" brushRef=\"#%s\">%s</inkml:trace>\n",
		traceID, pen.ID(), coords)
	return errors.Wrap(err, "writing trace")
}
