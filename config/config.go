// Package config loads conversion options from YAML files. Loaded
// options are plain values handed to the exporters; nothing here is
// process-global.
package config

import (
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

// Options selects and tunes a conversion target.
type Options struct {
	// Format is one of tldraw, svg, inkml, pdf, png.
	Format string `yaml:"format"`
	// PageName labels the page in targets that carry one.
	PageName string `yaml:"page_name"`
	// OpaqueIndexes makes whiteboard index keys carry a random tail
	// like the reference application's. Off by default so output is
	// reproducible.
	OpaqueIndexes bool `yaml:"opaque_indexes"`
	// Width/Height override the raster canvas, in pixels.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// BatchSize bounds concurrent page conversions.
	BatchSize int64 `yaml:"batch_size"`
}

// Default returns the options used when no file is given.
func Default() *Options {
	return &Options{
		Format:    "tldraw",
		BatchSize: 4,
	}
}

// Load reads options from a YAML file, filling unset fields from
// Default.
func Load(path string) (*Options, error) {
	content, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config")
	}
	return parse(content)
}

// LoadIfExists is Load, falling back to Default when the file is
// absent.
func LoadIfExists(path string) (*Options, error) {
	opts, err := Load(path)
	if os.IsNotExist(errors.Cause(err)) {
		return Default(), nil
	}
	return opts, err
}

func parse(content []byte) (*Options, error) {
	opts := Default()
	if err := yaml.Unmarshal(content, opts); err != nil {
		return nil, errors.Wrap(err, "parsing config")
	}
	if opts.Format == "" {
		opts.Format = "tldraw"
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = 4
	}
	return opts, nil
}
