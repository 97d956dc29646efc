package cmd

import (
	"context"
	"fmt"

	"github.com/foliotype/resumate/internal/formats"
	"github.com/foliotype/resumate/internal/typeset"
)

// PreviewCommand renders a résumé document to a PNG raster preview.
type PreviewCommand struct {
	inputPath  string
	format     string
	template   string
	fontDir    string
	page       int
	outputPath string
	watch      bool
}

// NewPreviewCommand creates a preview command reading from inputPath.
func NewPreviewCommand(inputPath string) *PreviewCommand {
	return &PreviewCommand{inputPath: inputPath, outputPath: "resume.png"}
}

func (c *PreviewCommand) WithFormat(format string) *PreviewCommand {
	c.format = format
	return c
}

func (c *PreviewCommand) WithTemplate(template string) *PreviewCommand {
	c.template = template
	return c
}

func (c *PreviewCommand) WithFontDir(dir string) *PreviewCommand {
	c.fontDir = dir
	return c
}

func (c *PreviewCommand) WithPage(page int) *PreviewCommand {
	c.page = page
	return c
}

func (c *PreviewCommand) WithOutput(path string) *PreviewCommand {
	c.outputPath = path
	return c
}

func (c *PreviewCommand) WithWatch(watch bool) *PreviewCommand {
	c.watch = watch
	return c
}

// Execute renders once, or, with --watch set, re-renders on every change
// to the input file until the context is cancelled.
func (c *PreviewCommand) Execute(ctx context.Context) error {
	if err := c.renderOnce(); err != nil {
		return err
	}
	if !c.watch {
		return nil
	}
	return watchAndRerender(ctx, c.inputPath, c.renderOnce)
}

func (c *PreviewCommand) renderOnce() error {
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

	png, err := engine.RenderPreview(doc, c.page)
	if err != nil {
		return fmt.Errorf("failed to render preview: %w", err)
	}

	return writeOutput(c.outputPath, png)
}
