package cmd

import (
	"context"
	"fmt"

	"github.com/foliotype/resumate/internal/typeset/templates"
)

// TemplatesCommand lists the fixed template catalogue and its default
// theme colours.
type TemplatesCommand struct{}

// NewTemplatesCommand creates a templates command.
func NewTemplatesCommand() *TemplatesCommand {
	return &TemplatesCommand{}
}

// Execute prints every template slug alongside its default palette.
func (c *TemplatesCommand) Execute(ctx context.Context) error {
	for _, slug := range templates.Names {
		theme := templates.Theme(slug)
		marker := ""
		if slug == templates.Default {
			marker = " (default)"
		}
		fmt.Printf("%-12s background=%s text=%s primary=%s%s\n", slug, theme.Background, theme.Text, theme.Primary, marker)
	}
	return nil
}
