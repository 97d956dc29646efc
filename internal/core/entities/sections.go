package entities

import "strconv"

// Item is implemented by every section item type; Validate reports
// constraint violations addressed relative to path, the item's own
// indexed location inside the document (e.g. "sections.experience.items[3]").
type Item interface {
	Validate(path string) ValidationErrors
}

// Collection is the generic wrapper shared by every typed section
// (Experience, Education, Skill, ...), mirroring the original schema's
// Section<T>.
type Collection[T Item] struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Columns       int    `json:"columns"`
	SeparateLinks bool   `json:"separateLinks"`
	Visible       bool   `json:"visible"`
	Items         []T    `json:"items"`
}

// NewCollection creates a collection with a generated id and the
// renderer's default layout (single column, links separated, visible).
func NewCollection[T Item](name string) Collection[T] {
	return Collection[T]{ID: NewID(), Name: name, Columns: 1, SeparateLinks: true, Visible: true}
}

// AddItem appends an item to the collection.
func (c *Collection[T]) AddItem(item T) {
	c.Items = append(c.Items, item)
}

// SetColumns clamps columns into the renderer's supported 1-5 range.
func (c *Collection[T]) SetColumns(columns int) {
	switch {
	case columns < 1:
		c.Columns = 1
	case columns > 5:
		c.Columns = 5
	default:
		c.Columns = columns
	}
}

// IsEmpty reports whether the collection has no items.
func (c Collection[T]) IsEmpty() bool {
	return len(c.Items) == 0
}

// Clone returns a copy of the collection with its own backing items
// slice, so a caller can mutate items in place (e.g. normalising rich
// text) without aliasing the original document.
func (c Collection[T]) Clone() Collection[T] {
	out := c
	out.Items = append([]T(nil), c.Items...)
	return out
}

// Len returns the number of items.
func (c Collection[T]) Len() int {
	return len(c.Items)
}

// Validate checks the collection's own constraints and every item's,
// addressing each item by its index under path.
func (c Collection[T]) Validate(path string) ValidationErrors {
	var errs ValidationErrors
	if c.Columns < 1 || c.Columns > 5 {
		errs.Add(path+".columns", "columns must be between 1 and 5", nil)
	}
	for i, item := range c.Items {
		itemErrs := item.Validate(path + ".items[" + strconv.Itoa(i) + "]")
		errs = append(errs, itemErrs...)
	}
	return errs
}

// SummarySection is the professional-summary block: unlike the other
// sections it has no items, just rich-text content.
type SummarySection struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Columns       int    `json:"columns"`
	SeparateLinks bool   `json:"separateLinks"`
	Visible       bool   `json:"visible"`
	Content       string `json:"content"` // engine markup
}

// NewSummarySection creates a summary section with the conventional
// "summary" id.
func NewSummarySection(content string) SummarySection {
	return SummarySection{
		ID: "summary", Name: "Summary", Columns: 1, SeparateLinks: true,
		Visible: true, Content: content,
	}
}

// IsEmpty reports whether the summary has no meaningful content.
func (s SummarySection) IsEmpty() bool {
	return s.Content == "" || s.Content == "<p></p>"
}

// Sections holds the full set of résumé sections: the twelve typed
// collections, the summary block, and any number of user-defined custom
// sections keyed by id.
type Sections struct {
	Summary        SummarySection                    `json:"summary"`
	Experience     Collection[Experience]            `json:"experience"`
	Education      Collection[Education]             `json:"education"`
	Skills         Collection[Skill]                 `json:"skills"`
	Projects       Collection[Project]               `json:"projects"`
	Profiles       Collection[Profile]               `json:"profiles"`
	Awards         Collection[Award]                 `json:"awards"`
	Certifications Collection[Certification]         `json:"certifications"`
	Publications   Collection[Publication]           `json:"publications"`
	Languages      Collection[Language]              `json:"languages"`
	Interests      Collection[Interest]              `json:"interests"`
	Volunteer      Collection[Volunteer]             `json:"volunteer"`
	References     Collection[Reference]             `json:"references"`
	Custom         map[string]Collection[CustomItem] `json:"custom,omitempty"`
}

// NewSections builds an empty Sections with every typed collection
// initialised to the renderer's default layout, so a freshly constructed
// document validates before any adapter or caller populates it.
func NewSections() Sections {
	return Sections{
		Summary:        NewSummarySection(""),
		Experience:     NewCollection[Experience]("Experience"),
		Education:      NewCollection[Education]("Education"),
		Skills:         NewCollection[Skill]("Skills"),
		Projects:       NewCollection[Project]("Projects"),
		Profiles:       NewCollection[Profile]("Profiles"),
		Awards:         NewCollection[Award]("Awards"),
		Certifications: NewCollection[Certification]("Certifications"),
		Publications:   NewCollection[Publication]("Publications"),
		Languages:      NewCollection[Language]("Languages"),
		Interests:      NewCollection[Interest]("Interests"),
		Volunteer:      NewCollection[Volunteer]("Volunteer"),
		References:     NewCollection[Reference]("References"),
	}
}

// Validate checks every section and every custom section, path-scoped
// under "sections.*".
func (s Sections) Validate() ValidationErrors {
	var errs ValidationErrors
	errs = append(errs, s.Experience.Validate("sections.experience")...)
	errs = append(errs, s.Education.Validate("sections.education")...)
	errs = append(errs, s.Skills.Validate("sections.skills")...)
	errs = append(errs, s.Projects.Validate("sections.projects")...)
	errs = append(errs, s.Profiles.Validate("sections.profiles")...)
	errs = append(errs, s.Awards.Validate("sections.awards")...)
	errs = append(errs, s.Certifications.Validate("sections.certifications")...)
	errs = append(errs, s.Publications.Validate("sections.publications")...)
	errs = append(errs, s.Languages.Validate("sections.languages")...)
	errs = append(errs, s.Interests.Validate("sections.interests")...)
	errs = append(errs, s.Volunteer.Validate("sections.volunteer")...)
	errs = append(errs, s.References.Validate("sections.references")...)
	for key, section := range s.Custom {
		errs = append(errs, section.Validate("sections.custom["+key+"]")...)
	}
	return errs
}
