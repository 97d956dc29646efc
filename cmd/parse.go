package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/foliotype/resumate/internal/formats"
)

// ParseCommand reads a résumé in any supported format and prints its
// canonical document representation.
type ParseCommand struct {
	inputPath  string
	format     string
	outputPath string
}

// NewParseCommand creates a parse command reading from inputPath ("-" for
// stdin).
func NewParseCommand(inputPath string) *ParseCommand {
	return &ParseCommand{inputPath: inputPath}
}

func (c *ParseCommand) WithFormat(format string) *ParseCommand {
	c.format = format
	return c
}

func (c *ParseCommand) WithOutput(path string) *ParseCommand {
	c.outputPath = path
	return c
}

// Execute parses the input and writes the canonical document as JSON.
func (c *ParseCommand) Execute(ctx context.Context) error {
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

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	out = append(out, '\n')

	return writeOutput(c.outputPath, out)
}
