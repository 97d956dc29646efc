package cmd

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foliotype/resumate/internal/core/entities"
)

func TestInitCommand_WritesEmptyDocumentByDefault(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "resume.json")

	require.NoError(t, NewInitCommand(output).Execute(context.Background()))

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	var doc entities.Document
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Empty(t, doc.Basics.Name)
}

func TestInitCommand_SampleFillsInExperienceAndSkills(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "resume.json")

	require.NoError(t, NewInitCommand(output).WithSample(true).Execute(context.Background()))

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	var doc entities.Document
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "Jane Doe", doc.Basics.Name)
	assert.NotEmpty(t, doc.Sections.Experience.Items)
	assert.Len(t, doc.Sections.Skills.Items, 3)
}
