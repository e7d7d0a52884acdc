// Package convert dispatches a conversion to the selected target.
package convert

import (
	"io"
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"github.com/rmtools/rmexport/annotations"
	"github.com/rmtools/rmexport/batch"
	"github.com/rmtools/rmexport/config"
	"github.com/rmtools/rmexport/export/inkml"
	"github.com/rmtools/rmexport/export/svg"
	"github.com/rmtools/rmexport/export/tldraw"
	"github.com/rmtools/rmexport/scene"
	"github.com/rmtools/rmexport/visualize"
)

// Extensions per format.
var extensions = map[string]string{
	"tldraw": "tldr",
	"svg":    "svg",
	"inkml":  "xml",
	"pdf":    "pdf",
	"png":    "png",
}

// Formats lists the supported target names.
func Formats() []string {
	return []string{"tldraw", "svg", "inkml", "pdf", "png"}
}

// Extension returns the file extension for a format, defaulting to
// the format name itself.
func Extension(format string) string {
	if ext, ok := extensions[format]; ok {
		return ext
	}
	return format
}

// Renderer returns a single-page renderer for the configured format.
func Renderer(opts *config.Options) (batch.Renderer, error) {
	switch opts.Format {
	case "tldraw":
		tlOpts := &tldraw.Options{PageName: opts.PageName}
		if opts.OpaqueIndexes {
			tlOpts.Rand = rand.NewSource(time.Now().UnixNano())
		}
		return func(w io.Writer, tree *scene.Tree) error {
			return tldraw.Write(w, tree, tlOpts)
		}, nil
	case "svg":
		svgOpts := &svg.Options{Width: opts.Width, Height: opts.Height}
		return func(w io.Writer, tree *scene.Tree) error {
			return svg.Write(w, tree, svgOpts)
		}, nil
	case "inkml":
		return func(w io.Writer, tree *scene.Tree) error {
			return inkml.Write(w, tree)
		}, nil
	case "pdf":
		gen := annotations.CreatePdfGenerator(annotations.PdfGeneratorOptions{})
		return func(w io.Writer, tree *scene.Tree) error {
			return gen.Generate(w, []*scene.Tree{tree})
		}, nil
	case "png":
		return func(w io.Writer, tree *scene.Tree) error {
			return visualize.WritePNG(w, tree, opts.Width, opts.Height)
		}, nil
	}
	return nil, errors.Errorf("unknown format %q", opts.Format)
}

// WriteTo converts one page with the configured format.
func WriteTo(w io.Writer, tree *scene.Tree, opts *config.Options) error {
	render, err := Renderer(opts)
	if err != nil {
		return err
	}
	return render(w, tree)
}
