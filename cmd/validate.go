package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/foliotype/resumate/internal/formats"
)

// ValidateCommand checks a résumé document against the canonical model's
// constraints without rendering anything.
type ValidateCommand struct {
	inputPath string
	format    string
}

// NewValidateCommand creates a validate command reading from inputPath.
func NewValidateCommand(inputPath string) *ValidateCommand {
	return &ValidateCommand{inputPath: inputPath}
}

func (c *ValidateCommand) WithFormat(format string) *ValidateCommand {
	c.format = format
	return c
}

// Execute parses and validates the input, returning an error (and a
// non-zero exit code via cmd's error path) when any constraint fails.
func (c *ValidateCommand) Execute(ctx context.Context) error {
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

	if errs := doc.Validate(); errs.HasErrors() {
		fmt.Println(errs.Error())
		return errors.New("document failed validation")
	}

	fmt.Println("document is valid")
	return nil
}
