// Package visualize renders scene trees to raster images for quick
// previews and thumbnails.
package visualize

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"github.com/rmtools/rmexport/export"
	"github.com/rmtools/rmexport/log"
	"github.com/rmtools/rmexport/scene"
)

// Render draws the page onto a white canvas of the given size. A zero
// size renders at device resolution. Typed text is not rasterized;
// ink only.
func Render(tree *scene.Tree, width, height int) (*image.RGBA, error) {
	if width == 0 {
		width = export.DeviceWidth
	}
	if height == 0 {
		height = export.DeviceHeight
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	scale := float64(width) / export.DeviceWidth
	transform := export.Transform{
		ScaleX:    scale,
		ScaleY:    scale,
		Translate: export.Vec{X: float64(width) / 2},
	}

	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	stroker := rasterx.NewDasher(width, height, scanner)

	flattener := export.NewFlattener(tree, transform, export.VectorStyles())
	count := 0
	err := flattener.Run(tree, func(s export.Shape) error {
		if s.Kind != export.StrokeShape || s.Tool.IsEraser() {
			return nil
		}
		strokePath(scanner, stroker, s, scale)
		count++
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Trace.Printf("rasterized %d strokes at %dx%d", count, width, height)
	return img, nil
}

func strokePath(scanner rasterx.Scanner, stroker *rasterx.Dasher, s export.Shape, scale float64) {
	pen := export.NewPen(s.Tool, s.Color, s.ThicknessScale)
	rgb := export.PaletteColor(pen.Color)

	scanner.SetColor(rasterx.ApplyOpacity(
		color.NRGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}, pen.Opacity))

	width := pen.Width * scale
	if width < 1 {
		width = 1
	}
	stroker.SetStroke(
		fixed.Int26_6(width*64), fixed.Int26_6(4*64),
		rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap, rasterx.Round,
		nil, 0)

	stroker.Start(toFixed(s.Points[0]))
	for _, p := range s.Points[1:] {
		stroker.Line(toFixed(p))
	}
	stroker.Stop(false)
	stroker.Draw()
	stroker.Clear()
}

func toFixed(p export.StrokePoint) fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(p.X * 64),
		Y: fixed.Int26_6(p.Y * 64),
	}
}

// Thumbnail scales an image down to the given width, preserving the
// aspect ratio.
func Thumbnail(img image.Image, width uint) image.Image {
	return resize.Resize(width, 0, img, resize.Lanczos3)
}

// WritePNG renders the page and encodes it as PNG on w.
func WritePNG(w io.Writer, tree *scene.Tree, width, height int) error {
	img, err := Render(tree, width, height)
	if err != nil {
		return err
	}
	return errors.Wrap(png.Encode(w, img), "encoding png")
}
