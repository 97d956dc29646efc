package typeset

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPDF_ProducesPDFBytes(t *testing.T) {
	data, err := NewEngine(nil).RenderPDF(sampleDoc())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestRenderPDF_PropagatesConfigError(t *testing.T) {
	doc := sampleDoc()
	doc.Metadata.Page.Margin = -5
	_, err := NewEngine(nil).RenderPDF(doc)
	assert.Error(t, err)
}

func TestRenderPDF_A4AndLetterFormatsBothRender(t *testing.T) {
	docA4 := sampleDoc()
	docLetter := sampleDoc()
	docLetter.Metadata.Page.Format = "letter"

	pdfA4, err := NewEngine(nil).RenderPDF(docA4)
	require.NoError(t, err)
	pdfLetter, err := NewEngine(nil).RenderPDF(docLetter)
	require.NoError(t, err)

	assert.NotEmpty(t, pdfA4)
	assert.NotEmpty(t, pdfLetter)
}
