package formats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect_ZipExtensionIsLinkedIn(t *testing.T) {
	assert.Equal(t, LinkedIn, Detect("export.ZIP", nil))
}

func TestDetect_SectionsAndMetadataIsRRv3(t *testing.T) {
	data := []byte(`{"sections": {}, "metadata": {}}`)
	assert.Equal(t, RRv3, Detect("resume.json", data))
}

func TestDetect_HeadlineIsRustume(t *testing.T) {
	data := []byte(`{"basics": {"headline": "Engineer"}}`)
	assert.Equal(t, Rustume, Detect("resume.json", data))
}

func TestDetect_LabelIsJSONResume(t *testing.T) {
	data := []byte(`{"basics": {"label": "Engineer"}}`)
	assert.Equal(t, JSONResume, Detect("resume.json", data))
}

func TestDetect_UnrecognisedShapeFallsBackToJSONResume(t *testing.T) {
	data := []byte(`{"basics": {"name": "Jane"}}`)
	assert.Equal(t, JSONResume, Detect("resume.json", data))
}

func TestParse_RustumeRoundTripsCanonicalDocument(t *testing.T) {
	data := []byte(`{"basics": {"name": "Jane Doe", "headline": "Engineer"}}`)
	doc, err := Parse(Rustume, data)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", doc.Basics.Name)
	assert.Equal(t, "Engineer", doc.Basics.Headline)
}

func TestParse_UnknownFormatIsReadError(t *testing.T) {
	_, err := Parse("carbon-paper", []byte(`{}`))
	require.Error(t, err)
}

func TestParse_MalformedRustumeIsReadError(t *testing.T) {
	_, err := Parse(Rustume, []byte(`not json`))
	require.Error(t, err)
}
