// Package batch converts multi-page documents concurrently. Each
// page conversion is an independent in-memory transform, so pages are
// fanned out under a weighted semaphore; a page that fails is logged
// and skipped, never failing the whole document.
package batch

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"github.com/rmtools/rmexport/log"
	"github.com/rmtools/rmexport/scene"
)

// Renderer writes the converted form of one page.
type Renderer func(w io.Writer, tree *scene.Tree) error

// Config holds batch conversion settings.
type Config struct {
	// OutputPrefix is the path prefix of generated files.
	OutputPrefix string
	// Extension without the dot, e.g. "tldr" or "svg".
	Extension string
	// BatchSize bounds concurrent page conversions; 0 means 4.
	BatchSize int64
}

// Convert renders every page to OutputPrefix_page_N.Extension and
// returns the files written, in page order. Pages that fail are
// logged and left out of the result.
func Convert(ctx context.Context, pages []*scene.Tree, cfg Config, render Renderer) ([]string, error) {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 4
	}

	job := uuid.New().String()
	log.Trace.Printf("batch %s: converting %d pages", job, len(pages))

	results := make([]string, len(pages))
	sem := semaphore.NewWeighted(cfg.BatchSize)
	for i, tree := range pages {
		if err := sem.Acquire(ctx, 1); err != nil {
			return nil, err
		}
		go func(p int, tree *scene.Tree) {
			defer sem.Release(1)

			name := fmt.Sprintf("%s_page_%d.%s", cfg.OutputPrefix, p+1, cfg.Extension)
			if err := renderFile(name, tree, render); err != nil {
				log.Error.Printf("batch %s: page %d: %v", job, p+1, err)
				return
			}
			results[p] = name
		}(i, tree)
	}

	// wait for all pages
	if err := sem.Acquire(ctx, cfg.BatchSize); err != nil {
		return nil, err
	}

	var written []string
	for _, name := range results {
		if name != "" {
			written = append(written, name)
		}
	}
	log.Trace.Printf("batch %s: wrote %d files", job, len(written))
	return written, nil
}

func renderFile(name string, tree *scene.Tree, render Renderer) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := render(f, tree); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
