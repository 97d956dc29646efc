package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/foliotype/resumate/internal/adapters/filesystem"
	"github.com/foliotype/resumate/internal/formats"
	"github.com/foliotype/resumate/internal/typeset"
)

// RenderCommand renders a résumé document to PDF.
type RenderCommand struct {
	inputPath  string
	format     string
	template   string
	fontDir    string
	outputPath string
	watch      bool
}

// NewRenderCommand creates a render command reading from inputPath.
func NewRenderCommand(inputPath string) *RenderCommand {
	return &RenderCommand{inputPath: inputPath, outputPath: "resume.pdf"}
}

func (c *RenderCommand) WithFormat(format string) *RenderCommand {
	c.format = format
	return c
}

func (c *RenderCommand) WithTemplate(template string) *RenderCommand {
	c.template = template
	return c
}

func (c *RenderCommand) WithFontDir(dir string) *RenderCommand {
	c.fontDir = dir
	return c
}

func (c *RenderCommand) WithOutput(path string) *RenderCommand {
	c.outputPath = path
	return c
}

func (c *RenderCommand) WithWatch(watch bool) *RenderCommand {
	c.watch = watch
	return c
}

// Execute renders once, or, with --watch set, re-renders on every change
// to the input file until the context is cancelled.
func (c *RenderCommand) Execute(ctx context.Context) error {
	if err := c.renderOnce(); err != nil {
		return err
	}
	if !c.watch {
		return nil
	}
	return watchAndRerender(ctx, c.inputPath, c.renderOnce)
}

func (c *RenderCommand) renderOnce() error {
	data, name, err := readInput(c.inputPath)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	format := c.format
	if format == "" {
		format = formats.Detect(name, data)
	}

	doc, err := formats.Parse(format, data)
	if err != nil {
		return fmt.Errorf("failed to parse as %s: %w", format, err)
	}
	if c.template != "" {
		doc.Metadata.Template = c.template
	}

	if errs := doc.Validate(); errs.HasErrors() {
		return fmt.Errorf("document failed validation: %w", errs)
	}

	bundled, err := loadBundledFonts(c.fontDir)
	if err != nil {
		return fmt.Errorf("failed to load fonts from %s: %w", c.fontDir, err)
	}
	engine := typeset.NewEngine(bundled)

	pdf, err := engine.RenderPDF(doc)
	if err != nil {
		return fmt.Errorf("failed to render PDF: %w", err)
	}

	if err := writeOutput(c.outputPath, pdf); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	fmt.Fprintf(os.Stderr, "rendered %s\n", c.outputPath)
	return nil
}

// watchAndRerender re-runs render whenever inputPath changes, until ctx is
// cancelled.
func watchAndRerender(ctx context.Context, inputPath string, render func() error) error {
	if inputPath == "" || inputPath == "-" {
		return errors.New("--watch requires a file path, not stdin")
	}

	watcher, err := filesystem.NewFileWatcher()
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer watcher.Stop()

	dir := filepath.Dir(inputPath)
	events, err := watcher.Watch(ctx, dir)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	base := filepath.Base(inputPath)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if filepath.Base(ev.Path) != base {
				continue
			}
			if err := render(); err != nil {
				fmt.Fprintf(os.Stderr, "render failed: %v\n", err)
			}
		}
	}
}
