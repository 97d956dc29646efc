package typeset

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foliotype/resumate/internal/core/entities"
)

func TestRenderPreview_ProducesDecodablePNG(t *testing.T) {
	data, err := NewEngine(nil).RenderPreview(sampleDoc(), 0)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Positive(t, img.Bounds().Dx())
	assert.Positive(t, img.Bounds().Dy())
}

func TestRenderPreview_NonZeroPageIsNotFound(t *testing.T) {
	_, err := NewEngine(nil).RenderPreview(sampleDoc(), 1)
	require.Error(t, err)
	var nf *entities.NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestRenderPreview_ScalesCanvasToDoubleNaturalSize(t *testing.T) {
	data, err := NewEngine(nil).RenderPreview(sampleDoc(), 0)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.InDelta(t, 595.28*previewScale, float64(img.Bounds().Dx()), 2)
}
