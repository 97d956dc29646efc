package entities

// Basics holds the personal-information block that sits above every
// résumé's sections: identity, contact details, and the profile picture.
type Basics struct {
	Name         string        `json:"name"`
	Headline     string        `json:"headline"`
	Email        string        `json:"email"`
	Phone        string        `json:"phone"`
	Location     string        `json:"location"`
	URL          URL           `json:"url"`
	Summary      string        `json:"summary"` // engine markup, produced by internal/normalize
	CustomFields []CustomField `json:"customFields"`
	Picture      Picture       `json:"picture"`
}

// NewBasics creates Basics with the renderer's picture defaults applied.
func NewBasics(name string) Basics {
	return Basics{Name: name, Picture: DefaultPicture()}
}

// AddCustomField appends a custom field with a freshly minted id.
func (b *Basics) AddCustomField(name, value string) {
	b.CustomFields = append(b.CustomFields, NewCustomField(name, value))
}
