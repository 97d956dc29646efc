package resumate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_RustumeFormat(t *testing.T) {
	doc, err := Parse(FormatRustume, []byte(`{"basics":{"name":"Jane Doe","headline":"Engineer"}}`))
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", doc.Basics.Name)
}

func TestDetectFormat_HeadlineIsRustume(t *testing.T) {
	assert.Equal(t, FormatRustume, DetectFormat("resume.json", []byte(`{"basics":{"headline":"Engineer"}}`)))
}

func TestValidate_MissingNameFails(t *testing.T) {
	errs := Validate(Document{})
	assert.True(t, errs.HasErrors())
}

func TestEngine_RenderPDFProducesBytes(t *testing.T) {
	doc, err := Parse(FormatRustume, []byte(`{"basics":{"name":"Jane Doe","headline":"Engineer"}}`))
	require.NoError(t, err)

	engine := NewEngine(nil)
	pdf, err := engine.RenderPDF(doc)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
}

func TestTemplates_IncludesDefault(t *testing.T) {
	assert.Contains(t, Templates(), DefaultTemplate())
}
