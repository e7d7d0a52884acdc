package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rmtools/rmexport/batch"
	"github.com/rmtools/rmexport/config"
	"github.com/rmtools/rmexport/convert"
	"github.com/rmtools/rmexport/scene"
	"github.com/rmtools/rmexport/shell"
)

func main() {
	inputName := flag.String("i", "", "page to convert (scene tree json)")
	outputName := flag.String("o", "", "output file name")
	format := flag.String("f", "", "output format: "+strings.Join(convert.Formats(), ", "))
	configName := flag.String("c", "", "config file (yaml)")
	interactive := flag.Bool("shell", false, "start the interactive shell")
	flag.Parse()

	opts, err := loadOptions(*configName, *format)
	if err == nil {
		switch {
		case *interactive:
			shell.Run(opts)
		case flag.NArg() > 0:
			// remaining args are pages of one document
			err = convertBatch(append([]string{*inputName}, flag.Args()...), *outputName, opts)
		default:
			err = convertOne(*inputName, *outputName, opts)
		}
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadOptions(configName, format string) (*config.Options, error) {
	opts := config.Default()
	if configName != "" {
		loaded, err := config.Load(configName)
		if err != nil {
			return nil, err
		}
		opts = loaded
	}
	if format != "" {
		opts.Format = format
	}
	return opts, nil
}

func convertOne(inputName, outputName string, opts *config.Options) error {
	tree, err := readTree(inputName)
	if err != nil {
		return err
	}

	if outputName == "" {
		nameOnly := strings.TrimSuffix(inputName, filepath.Ext(inputName))
		outputName = nameOnly + "." + convert.Extension(opts.Format)
	}

	outputFile, err := os.Create(outputName)
	if err != nil {
		return fmt.Errorf("can't create output file %w", err)
	}
	defer outputFile.Close()

	return convert.WriteTo(outputFile, tree, opts)
}

func convertBatch(inputNames []string, outputName string, opts *config.Options) error {
	var pages []*scene.Tree
	firstName := ""
	for _, name := range inputNames {
		if name == "" {
			continue
		}
		if firstName == "" {
			firstName = name
		}
		tree, err := readTree(name)
		if err != nil {
			return err
		}
		pages = append(pages, tree)
	}
	if len(pages) == 0 {
		return fmt.Errorf("missing input files")
	}

	prefix := outputName
	if prefix == "" {
		prefix = strings.TrimSuffix(firstName, filepath.Ext(firstName))
	}

	render, err := convert.Renderer(opts)
	if err != nil {
		return err
	}

	written, err := batch.Convert(context.Background(), pages, batch.Config{
		OutputPrefix: prefix,
		Extension:    convert.Extension(opts.Format),
		BatchSize:    opts.BatchSize,
	}, render)
	if err != nil {
		return err
	}
	for _, name := range written {
		fmt.Println(name)
	}
	return nil
}

func readTree(inputName string) (*scene.Tree, error) {
	if inputName == "" {
		return nil, fmt.Errorf("missing input file")
	}
	file, err := os.Open(inputName)
	if err != nil {
		return nil, fmt.Errorf("can't open file %w", err)
	}
	defer file.Close()
	return scene.ReadTree(file)
}
