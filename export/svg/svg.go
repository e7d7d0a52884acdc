// Package svg assembles flattened shapes into an SVG document.
package svg

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/rmtools/rmexport/export"
	"github.com/rmtools/rmexport/log"
	"github.com/rmtools/rmexport/scene"
)

const header = `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" width="%d" height="%d" viewBox="0 0 %d %d">
`

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Options configure one conversion. The zero value is usable.
type Options struct {
	// Styles defaults to export.VectorStyles.
	Styles *export.StyleMap
	// Transform defaults to export.PageCentered.
	Transform *export.Transform
	// Canvas size, defaulting to the device page.
	Width  int
	Height int
}

// Write converts a scene tree into an SVG document on w. Strokes
// become polylines styled by their pen; root-text paragraphs become
// text elements.
func Write(w io.Writer, tree *scene.Tree, opts *Options) error {
	if opts == nil {
		opts = &Options{}
	}
	styles := opts.Styles
	if styles == nil {
		styles = export.VectorStyles()
	}
	transform := export.PageCentered()
	if opts.Transform != nil {
		transform = *opts.Transform
	}
	width, height := opts.Width, opts.Height
	if width == 0 {
		width = export.DeviceWidth
	}
	if height == 0 {
		height = export.DeviceHeight
	}

	if _, err := fmt.Fprintf(w, header, width, height, width, height); err != nil {
		return errors.Wrap(err, "writing svg header")
	}

	count := 0
	flattener := export.NewFlattener(tree, transform, styles)
	err := flattener.Run(tree, func(s export.Shape) error {
		count++
		switch s.Kind {
		case export.StrokeShape:
			return writeStroke(w, s)
		case export.TextShape:
			return writeText(w, s, styles)
		}
		return nil
	})
	if err != nil {
		return err
	}
	log.Trace.Printf("svg export finished: %d shapes", count)

	_, err = io.WriteString(w, "</svg>\n")
	return errors.Wrap(err, "writing svg footer")
}

func writeStroke(w io.Writer, s export.Shape) error {
	if s.Tool.IsEraser() {
		return nil
	}
	pen := export.NewPen(s.Tool, s.Color, s.ThicknessScale)

	var points strings.Builder
	for i, p := range s.Points {
		if i > 0 {
			points.WriteByte(' ')
		}
		fmt.Fprintf(&points, "%.2f,%.2f", p.X, p.Y)
	}

	_, err := fmt.Fprintf(w,
		"  <polyline style=\"fill:none;stroke:%s;stroke-width:%.2f;opacity:%g\" stroke-linecap=\"%s\" points=\"%s\"/>\n",
		export.PaletteColor(pen.Color).Hex(), pen.Width, pen.Opacity, pen.Linecap, points.String())
	return errors.Wrap(err, "writing stroke")
}

func writeText(w io.Writer, s export.Shape, styles *export.StyleMap) error {
	ts := styles.Text(s.Style)
	_, err := fmt.Fprintf(w,
		"  <text x=\"%.2f\" y=\"%.2f\" style=\"font-size:%dpx;font-weight:%s;font-family:sans-serif\">%s</text>\n",
		s.X, s.Y, ts.FontSize, ts.FontWeight, textEscaper.Replace(s.Content))
	return errors.Wrap(err, "writing text")
}
