// Package annotations renders scene trees onto PDF pages.
package annotations

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	annotator "github.com/unidoc/unipdf/v3/annotator"
	"github.com/unidoc/unipdf/v3/contentstream"
	"github.com/unidoc/unipdf/v3/contentstream/draw"
	"github.com/unidoc/unipdf/v3/creator"
	pdf "github.com/unidoc/unipdf/v3/model"

	"github.com/rmtools/rmexport/export"
	"github.com/rmtools/rmexport/log"
	"github.com/rmtools/rmexport/scene"
)

const PPI = 226

var rmPageSize = creator.PageSize{445, 594}

type PdfGenerator struct {
	options PdfGeneratorOptions
}

type PdfGeneratorOptions struct {
	AddPageNumbers bool
	// AnnotationsOnly suppresses typed text, leaving only ink.
	AnnotationsOnly bool
}

func CreatePdfGenerator(options PdfGeneratorOptions) *PdfGenerator {
	return &PdfGenerator{options: options}
}

// Generate renders one PDF page per scene tree and writes the
// document to w.
func (p *PdfGenerator) Generate(w io.Writer, pages []*scene.Tree) error {
	c := creator.New()
	c.SetPageSize(rmPageSize)

	ratio := c.Width() / export.DeviceWidth

	for i, tree := range pages {
		page := c.NewPage()
		if err := p.drawPage(c, page, tree, ratio); err != nil {
			return errors.Wrapf(err, "rendering page %d", i+1)
		}
	}

	if p.options.AddPageNumbers {
		c.DrawFooter(func(block *creator.Block, args creator.FooterFunctionArgs) {
			num := c.NewParagraph(fmt.Sprintf("%d", args.PageNum))
			num.SetFontSize(8)
			num.SetPos(block.Width()-20, block.Height()-10)
			block.Draw(num)
		})
	}

	return c.Write(w)
}

// GenerateToFile is Generate against a created file.
func (p *PdfGenerator) GenerateToFile(outputFilePath string, pages []*scene.Tree) error {
	f, err := os.Create(outputFilePath)
	if err != nil {
		return errors.Wrap(err, "creating output pdf")
	}
	defer f.Close()
	return p.Generate(f, pages)
}

func (p *PdfGenerator) drawPage(c *creator.Creator, page *pdf.PdfPage, tree *scene.Tree, ratio float64) error {
	// source y grows downward, pdf user space upward
	transform := export.Transform{
		ScaleX:     ratio,
		ScaleY:     ratio,
		FlipY:      true,
		FlipHeight: c.Height(),
		Translate:  export.Vec{X: c.Width() / 2},
	}

	styles := export.VectorStyles()
	flattener := export.NewFlattener(tree, transform, styles)
	shapes, err := flattener.Flatten(tree)
	if err != nil {
		return err
	}

	contentCreator := contentstream.NewContentCreator()

	for _, s := range shapes {
		switch s.Kind {
		case export.StrokeShape:
			if s.Tool.IsEraser() {
				continue
			}
			if s.Tool.IsHighlighter() {
				if err := addHighlight(page, s); err != nil {
					return err
				}
				continue
			}
			drawStroke(contentCreator, s, ratio)
		case export.TextShape:
			if p.options.AnnotationsOnly {
				continue
			}
			if err := drawText(c, s, styles, ratio); err != nil {
				return err
			}
		}
	}

	ops := contentCreator.Operations()
	return page.AppendContentStream(string(ops.Bytes()))
}

func drawStroke(contentCreator *contentstream.ContentCreator, s export.Shape, ratio float64) {
	pen := export.NewPen(s.Tool, s.Color, s.ThicknessScale)
	rgb := export.PaletteColor(pen.Color)

	path := draw.NewPath()
	for _, pt := range s.Points {
		path = path.AppendPoint(draw.NewPoint(pt.X, pt.Y))
	}

	contentCreator.Add_q()
	contentCreator.Add_w(pen.Width * ratio)
	contentCreator.Add_RG(float64(rgb.R)/255, float64(rgb.G)/255, float64(rgb.B)/255)
	draw.DrawPathWithCreator(path, contentCreator)
	contentCreator.Add_S()
	contentCreator.Add_Q()
}

// addHighlight renders a highlighter stroke as a translucent yellow
// line annotation spanning its endpoints.
func addHighlight(page *pdf.PdfPage, s export.Shape) error {
	last := len(s.Points) - 1
	lineDef := annotator.LineAnnotationDef{
		X1: s.Points[0].X,
		Y1: s.Points[0].Y,
		X2: s.Points[last].X,
		// keep highlights horizontal
		Y2: s.Points[0].Y,
	}
	lineDef.LineColor = pdf.NewPdfColorDeviceRGB(1.0, 1.0, 0.0)
	lineDef.Opacity = 0.5
	lineDef.LineWidth = 5.0
	ann, err := annotator.CreateLineAnnotation(lineDef)
	if err != nil {
		return errors.Wrap(err, "creating highlight annotation")
	}
	page.AddAnnotation(ann)
	return nil
}

func drawText(c *creator.Creator, s export.Shape, styles *export.StyleMap, ratio float64) error {
	ts := styles.Text(s.Style)
	para := c.NewParagraph(s.Content)
	para.SetFontSize(float64(ts.FontSize) * ratio * 2)
	para.SetPos(s.X, c.Height()-s.Y)
	if err := c.Draw(para); err != nil {
		log.Trace.Printf("skipping text %q: %v", s.Content, err)
	}
	return nil
}
