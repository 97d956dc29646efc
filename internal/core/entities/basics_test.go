package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBasics(t *testing.T) {
	b := NewBasics("Jane Doe")
	assert.Equal(t, "Jane Doe", b.Name)
	assert.Equal(t, 64, b.Picture.Size)
	assert.Empty(t, b.CustomFields)
}

func TestBasics_AddCustomField(t *testing.T) {
	b := NewBasics("Jane Doe")
	b.AddCustomField("Timezone", "PST")
	assert.Len(t, b.CustomFields, 1)
	assert.Equal(t, "Timezone", b.CustomFields[0].Name)
	assert.Equal(t, "PST", b.CustomFields[0].Value)
	assert.NotEmpty(t, b.CustomFields[0].ID)
}
