package jsonresume

import (
	"testing"

	"github.com/foliotype/resumate/internal/core/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `{
	"basics": {
		"name": "Jane Doe",
		"label": "Senior Engineer",
		"email": "jane@example.com",
		"location": {"city": "Austin", "region": "TX", "countryCode": "US"},
		"summary": "Builder of things.",
		"profiles": [{"network": "GitHub", "username": "janedoe", "url": "https://github.com/janedoe"}]
	},
	"work": [{
		"name": "Acme Corp",
		"position": "Engineer",
		"startDate": "2019",
		"endDate": "2021",
		"summary": "Led the platform team.",
		"highlights": ["Shipped v2", "Cut latency 40%"]
	}],
	"education": [{"institution": "State University", "studyType": "BS", "area": "CS", "startDate": "2014", "endDate": "2018"}],
	"skills": [{"name": "Go", "level": "Expert", "keywords": ["concurrency"]}],
	"languages": [{"language": "French", "fluency": "Fluent"}],
	"certificates": [{"name": "AWS Certified", "issuer": "Amazon", "date": "2022"}]
}`

func TestParse_BasicsMapping(t *testing.T) {
	doc, err := Parse([]byte(sample))
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", doc.Basics.Name)
	assert.Equal(t, "Senior Engineer", doc.Basics.Headline)
	assert.Equal(t, "jane@example.com", doc.Basics.Email)
	assert.Equal(t, "Austin, TX, US", doc.Basics.Location)
	assert.Equal(t, "Builder of things.", doc.Sections.Summary.Content)
}

func TestParse_ProfilesMapping(t *testing.T) {
	doc, err := Parse([]byte(sample))
	require.NoError(t, err)

	require.Len(t, doc.Sections.Profiles.Items, 1)
	assert.Equal(t, "GitHub", doc.Sections.Profiles.Items[0].Network)
	assert.Equal(t, "https://github.com/janedoe", doc.Sections.Profiles.Items[0].URL.Href)
}

func TestParse_WorkCombinesSummaryAndHighlights(t *testing.T) {
	doc, err := Parse([]byte(sample))
	require.NoError(t, err)

	require.Len(t, doc.Sections.Experience.Items, 1)
	exp := doc.Sections.Experience.Items[0]
	assert.Equal(t, "Acme Corp", exp.Company)
	assert.Equal(t, "Engineer", exp.Position)
	assert.Equal(t, "2019 - 2021", exp.Date)
	assert.Contains(t, exp.Summary, "Led the platform team.")
	assert.Contains(t, exp.Summary, "• Shipped v2")
	assert.Contains(t, exp.Summary, "• Cut latency 40%")
}

func TestParse_LanguageFluencyMapping(t *testing.T) {
	doc, err := Parse([]byte(sample))
	require.NoError(t, err)

	require.Len(t, doc.Sections.Languages.Items, 1)
	assert.Equal(t, 4, doc.Sections.Languages.Items[0].Level)
}

func TestParse_CertificatesMapToCertifications(t *testing.T) {
	doc, err := Parse([]byte(sample))
	require.NoError(t, err)

	require.Len(t, doc.Sections.Certifications.Items, 1)
	assert.Equal(t, "AWS Certified", doc.Sections.Certifications.Items[0].Name)
	assert.Equal(t, "Amazon", doc.Sections.Certifications.Items[0].Issuer)
}

func TestParse_MissingOptionalFieldsDefaultEmpty(t *testing.T) {
	doc, err := Parse([]byte(`{"basics": {"name": "Jane Doe"}}`))
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", doc.Basics.Name)
	assert.True(t, doc.Sections.Experience.IsEmpty())
	assert.True(t, doc.Sections.Education.IsEmpty())
}

func TestParse_MalformedJSON(t *testing.T) {
	_, err := Parse([]byte(`{not json`))
	require.Error(t, err)
	assert.IsType(t, &entities.ReadError{}, err)
}
