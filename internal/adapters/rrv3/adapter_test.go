package rrv3

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `{
	"basics": {
		"name": "Jane Doe",
		"headline": "Senior Engineer",
		"email": "jane@example.com",
		"url": {"label": "Site", "href": "https://jane.dev"},
		"picture": {"url": "https://jane.dev/me.png", "visible": false}
	},
	"sections": {
		"summary": "Builder of things.",
		"experience": {
			"id": "experience", "name": "Experience", "columns": 1, "visible": true,
			"items": [
				{"id": "exp-1", "visible": true, "company": "Acme", "position": "Engineer", "date": "2019 - 2021"}
			]
		},
		"profiles": {
			"id": "profiles", "name": "Profiles", "columns": 1, "visible": true,
			"items": [
				{"network": "GitHub", "username": "janedoe", "url": "https://github.com/janedoe"}
			]
		},
		"custom": {
			"custom-1": {
				"id": "custom-1", "name": "Talks", "columns": 1, "visible": true,
				"items": [{"name": "Keynote", "description": "Opening talk"}]
			}
		}
	},
	"metadata": {
		"template": "some-future-template",
		"page": {"format": "us-letter"}
	}
}`

func TestParse_BasicsAndPolymorphicURL(t *testing.T) {
	doc, err := Parse([]byte(sample))
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", doc.Basics.Name)
	assert.Equal(t, "Senior Engineer", doc.Basics.Headline)
	assert.Equal(t, "Site", doc.Basics.URL.Label)
	assert.Equal(t, "https://jane.dev", doc.Basics.URL.Href)
}

func TestParse_PictureVisibleFalseSetsEffectsHidden(t *testing.T) {
	doc, err := Parse([]byte(sample))
	require.NoError(t, err)

	assert.True(t, doc.Basics.Picture.Effects.Hidden)
	assert.Equal(t, "https://jane.dev/me.png", doc.Basics.Picture.URL)
}

func TestParse_PolymorphicSummaryString(t *testing.T) {
	doc, err := Parse([]byte(sample))
	require.NoError(t, err)

	assert.Equal(t, "Builder of things.", doc.Sections.Summary.Content)
	assert.True(t, doc.Sections.Summary.Visible)
}

func TestParse_PolymorphicSummaryObject(t *testing.T) {
	doc, err := Parse([]byte(`{"sections": {"summary": {"body": "Hello", "visible": false}}}`))
	require.NoError(t, err)

	assert.Equal(t, "Hello", doc.Sections.Summary.Content)
	assert.False(t, doc.Sections.Summary.Visible)
}

func TestParse_ExperienceItemIDPreserved(t *testing.T) {
	doc, err := Parse([]byte(sample))
	require.NoError(t, err)

	require.Len(t, doc.Sections.Experience.Items, 1)
	assert.Equal(t, "exp-1", doc.Sections.Experience.Items[0].ID)
	assert.Equal(t, "2019 - 2021", doc.Sections.Experience.Items[0].Date)
}

func TestParse_MissingItemIDIsMinted(t *testing.T) {
	doc, err := Parse([]byte(sample))
	require.NoError(t, err)

	require.Len(t, doc.Sections.Profiles.Items, 1)
	assert.NotEmpty(t, doc.Sections.Profiles.Items[0].ID)
	assert.Equal(t, "https://github.com/janedoe", doc.Sections.Profiles.Items[0].URL.Href)
	assert.Equal(t, "https://github.com/janedoe", doc.Sections.Profiles.Items[0].URL.Label)
}

func TestParse_CustomSectionsPreservedByKey(t *testing.T) {
	doc, err := Parse([]byte(sample))
	require.NoError(t, err)

	require.Contains(t, doc.Sections.Custom, "custom-1")
	custom := doc.Sections.Custom["custom-1"]
	assert.Equal(t, "Talks", custom.Name)
	require.Len(t, custom.Items, 1)
	assert.Equal(t, "Keynote", custom.Items[0].Name)
}

func TestParse_UnknownTemplatePassesThrough(t *testing.T) {
	doc, err := Parse([]byte(sample))
	require.NoError(t, err)

	assert.Equal(t, "some-future-template", doc.Metadata.Template)
}

func TestParse_PageFormatUSLetterMapsToLetter(t *testing.T) {
	doc, err := Parse([]byte(sample))
	require.NoError(t, err)

	assert.Equal(t, "letter", string(doc.Metadata.Page.Format))
}

func TestParse_MetadataDefaultsApplyWhenAbsent(t *testing.T) {
	doc, err := Parse([]byte(`{}`))
	require.NoError(t, err)

	assert.Equal(t, "a4", string(doc.Metadata.Page.Format))
	assert.Equal(t, float64(18), doc.Metadata.Page.Margin)
	assert.Equal(t, "IBM Plex Serif", doc.Metadata.Typography.Font.Family)
	assert.True(t, doc.Metadata.Typography.UnderlineLinks)
}

func TestParse_MalformedJSON(t *testing.T) {
	_, err := Parse([]byte(`{not json`))
	require.Error(t, err)
}
