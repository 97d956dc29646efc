package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCommand_ValidDocumentSucceeds(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "resume.json")
	require.NoError(t, os.WriteFile(input, []byte(`{"basics":{"name":"Jane Doe","headline":"Engineer"}}`), 0o644))

	err := NewValidateCommand(input).Execute(context.Background())
	assert.NoError(t, err)
}

func TestValidateCommand_MissingNameFails(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "resume.json")
	require.NoError(t, os.WriteFile(input, []byte(`{"basics":{"headline":"Engineer"}}`), 0o644))

	err := NewValidateCommand(input).Execute(context.Background())
	assert.Error(t, err)
}
