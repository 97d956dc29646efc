package entities

import "fmt"

// Document is the canonical résumé shape every format adapter converts
// into and every template renders from.
type Document struct {
	Basics   Basics   `json:"basics"`
	Sections Sections `json:"sections"`
	Metadata Metadata `json:"metadata"`
}

// NewDocument creates a Document with the renderer's default metadata and
// picture settings applied, ready for a format adapter to populate.
func NewDocument(name string) Document {
	return Document{
		Basics:   NewBasics(name),
		Sections: NewSections(),
		Metadata: DefaultMetadata(),
	}
}

// Validate runs every constraint check across the document and returns the
// full set of violations found; it never stops at the first failure.
func (d Document) Validate() ValidationErrors {
	var errs ValidationErrors

	if d.Basics.Name == "" {
		errs.Add("basics.name", "name is required", ErrEmptyName)
	}
	if d.Basics.Email != "" {
		if err := ValidateEmail(d.Basics.Email); err != nil {
			errs.Add("basics.email", err.Error(), err)
		}
	}
	if !d.Basics.URL.IsEmpty() {
		if err := ValidateURL(d.Basics.URL.Href); err != nil {
			errs.Add("basics.url.href", err.Error(), err)
		}
	}
	for i, field := range d.Basics.CustomFields {
		if field.Name == "" {
			errs.Add(fmt.Sprintf("basics.customFields[%d].name", i), "name is required", ErrEmptyName)
		}
	}

	errs = append(errs, d.Sections.Validate()...)
	errs = append(errs, d.Metadata.Validate()...)

	return errs
}
