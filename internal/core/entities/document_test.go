package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDocument(t *testing.T) {
	d := NewDocument("Jane Doe")
	assert.Equal(t, "Jane Doe", d.Basics.Name)
	assert.Equal(t, "rhyhorn", d.Metadata.Template)
	assert.False(t, d.Validate().HasErrors())
}

func TestDocument_Validate_MissingName(t *testing.T) {
	var d Document
	d.Metadata = DefaultMetadata()
	errs := d.Validate()
	assert.True(t, errs.HasErrors())

	found := false
	for _, e := range errs {
		if e.Path == "basics.name" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestDocument_Validate_BadEmail(t *testing.T) {
	d := NewDocument("Jane Doe")
	d.Basics.Email = "not-an-email"
	errs := d.Validate()
	assert.True(t, errs.HasErrors())
	assert.Equal(t, "basics.email", errs[0].Path)
}

func TestDocument_Validate_BadURL(t *testing.T) {
	d := NewDocument("Jane Doe")
	d.Basics.URL = NewURL("not-a-url")
	errs := d.Validate()
	assert.True(t, errs.HasErrors())
	assert.Equal(t, "basics.url.href", errs[0].Path)
}

func TestDocument_Validate_CustomFieldMissingName(t *testing.T) {
	d := NewDocument("Jane Doe")
	d.Basics.CustomFields = append(d.Basics.CustomFields, CustomField{Value: "PST"})
	errs := d.Validate()
	assert.True(t, errs.HasErrors())
	assert.Equal(t, "basics.customFields[0].name", errs[0].Path)
}

func TestDocument_Validate_AggregatesSectionsAndMetadata(t *testing.T) {
	d := NewDocument("Jane Doe")
	d.Sections.Skills = NewCollection[Skill]("Skills")
	d.Sections.Skills.AddItem(Skill{})
	d.Metadata.Theme.Primary = "bogus"

	errs := d.Validate()
	assert.True(t, errs.HasErrors())

	var sawSection, sawMetadata bool
	for _, e := range errs {
		switch e.Path {
		case "sections.skills.items[0].name":
			sawSection = true
		case "metadata.theme.primary":
			sawMetadata = true
		}
	}
	assert.True(t, sawSection)
	assert.True(t, sawMetadata)
}
