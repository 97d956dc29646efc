package entities

// ItemBase is embedded by every section item type. Visible controls
// whether the renderer draws the item without removing it from the
// document, matching the collection-level Visible flag's semantics.
type ItemBase struct {
	ID      string `json:"id"`
	Visible bool   `json:"visible"`
}

// newItemBase returns an ItemBase with a freshly minted id, visible by
// default.
func newItemBase() ItemBase {
	return ItemBase{ID: NewID(), Visible: true}
}

// Experience is a single employment entry. Date is the already-combined
// display string ("2019 - 2021", "2019 - Present", ...); adapters that
// read separate start/end fields combine them at conversion time via
// internal/shared/daterange.
type Experience struct {
	ItemBase
	Company  string `json:"company"`
	Position string `json:"position"`
	Location string `json:"location,omitempty"`
	URL      URL    `json:"url"`
	Date     string `json:"date,omitempty"`
	Summary  string `json:"summary,omitempty"` // engine markup
}

// NewExperience creates an Experience with the required company/position.
func NewExperience(company, position string) Experience {
	return Experience{ItemBase: newItemBase(), Company: company, Position: position}
}

func (e Experience) Validate(path string) ValidationErrors {
	var errs ValidationErrors
	if e.Company == "" {
		errs.Add(path+".company", "company is required", ErrEmptyName)
	}
	if e.Position == "" {
		errs.Add(path+".position", "position is required", ErrEmptyName)
	}
	if !e.URL.IsEmpty() {
		if err := ValidateURL(e.URL.Href); err != nil {
			errs.Add(path+".url.href", err.Error(), err)
		}
	}
	return errs
}

// Education is a single degree/program entry.
type Education struct {
	ItemBase
	Institution string `json:"institution"`
	StudyType   string `json:"studyType,omitempty"`
	Area        string `json:"area,omitempty"`
	Score       string `json:"score,omitempty"`
	URL         URL    `json:"url"`
	Date        string `json:"date,omitempty"`
	Summary     string `json:"summary,omitempty"`
}

func NewEducation(institution string) Education {
	return Education{ItemBase: newItemBase(), Institution: institution}
}

func (e Education) Validate(path string) ValidationErrors {
	var errs ValidationErrors
	if e.Institution == "" {
		errs.Add(path+".institution", "institution is required", ErrEmptyName)
	}
	if !e.URL.IsEmpty() {
		if err := ValidateURL(e.URL.Href); err != nil {
			errs.Add(path+".url.href", err.Error(), err)
		}
	}
	return errs
}

// Skill is a named competency with an optional 0-5 proficiency level.
type Skill struct {
	ItemBase
	Name        string   `json:"name"`
	Level       int      `json:"level"`
	Description string   `json:"description,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
}

func NewSkill(name string) Skill {
	return Skill{ItemBase: newItemBase(), Name: name}
}

func (s Skill) Validate(path string) ValidationErrors {
	var errs ValidationErrors
	if s.Name == "" {
		errs.Add(path+".name", "name is required", ErrEmptyName)
	}
	if s.Level < 0 || s.Level > 5 {
		errs.Add(path+".level", "level must be between 0 and 5", nil)
	}
	return errs
}

// Project describes a personal or professional project.
type Project struct {
	ItemBase
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"` // engine markup
	URL         URL      `json:"url"`
	Date        string   `json:"date,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
}

func NewProject(name string) Project {
	return Project{ItemBase: newItemBase(), Name: name}
}

func (p Project) Validate(path string) ValidationErrors {
	var errs ValidationErrors
	if p.Name == "" {
		errs.Add(path+".name", "name is required", ErrEmptyName)
	}
	if !p.URL.IsEmpty() {
		if err := ValidateURL(p.URL.Href); err != nil {
			errs.Add(path+".url.href", err.Error(), err)
		}
	}
	return errs
}

// Profile links to an external social/portfolio presence.
type Profile struct {
	ItemBase
	Network  string `json:"network"`
	Username string `json:"username,omitempty"`
	URL      URL    `json:"url"`
}

func NewProfile(network string) Profile {
	return Profile{ItemBase: newItemBase(), Network: network}
}

func (p Profile) Validate(path string) ValidationErrors {
	var errs ValidationErrors
	if p.Network == "" {
		errs.Add(path+".network", "network is required", ErrEmptyName)
	}
	if !p.URL.IsEmpty() {
		if err := ValidateURL(p.URL.Href); err != nil {
			errs.Add(path+".url.href", err.Error(), err)
		}
	}
	return errs
}

// Award is a received honor or recognition.
type Award struct {
	ItemBase
	Title   string `json:"title"`
	Awarder string `json:"awarder,omitempty"`
	Date    string `json:"date,omitempty"`
	Summary string `json:"summary,omitempty"`
}

func NewAward(title string) Award {
	return Award{ItemBase: newItemBase(), Title: title}
}

func (a Award) Validate(path string) ValidationErrors {
	var errs ValidationErrors
	if a.Title == "" {
		errs.Add(path+".title", "title is required", ErrEmptyName)
	}
	return errs
}

// Certification is a professional credential.
type Certification struct {
	ItemBase
	Name   string `json:"name"`
	Issuer string `json:"issuer,omitempty"`
	Date   string `json:"date,omitempty"`
	URL    URL    `json:"url"`
}

func NewCertification(name string) Certification {
	return Certification{ItemBase: newItemBase(), Name: name}
}

func (c Certification) Validate(path string) ValidationErrors {
	var errs ValidationErrors
	if c.Name == "" {
		errs.Add(path+".name", "name is required", ErrEmptyName)
	}
	if !c.URL.IsEmpty() {
		if err := ValidateURL(c.URL.Href); err != nil {
			errs.Add(path+".url.href", err.Error(), err)
		}
	}
	return errs
}

// Publication is an authored or co-authored published work.
type Publication struct {
	ItemBase
	Name      string `json:"name"`
	Publisher string `json:"publisher,omitempty"`
	Date      string `json:"date,omitempty"`
	URL       URL    `json:"url"`
	Summary   string `json:"summary,omitempty"`
}

func NewPublication(name string) Publication {
	return Publication{ItemBase: newItemBase(), Name: name}
}

func (p Publication) Validate(path string) ValidationErrors {
	var errs ValidationErrors
	if p.Name == "" {
		errs.Add(path+".name", "name is required", ErrEmptyName)
	}
	if !p.URL.IsEmpty() {
		if err := ValidateURL(p.URL.Href); err != nil {
			errs.Add(path+".url.href", err.Error(), err)
		}
	}
	return errs
}

// Language is a spoken/written language with an optional 0-5 fluency level.
type Language struct {
	ItemBase
	Name        string `json:"name"`
	Level       int    `json:"level"`
	Description string `json:"description,omitempty"`
}

func NewLanguage(name string) Language {
	return Language{ItemBase: newItemBase(), Name: name}
}

func (l Language) Validate(path string) ValidationErrors {
	var errs ValidationErrors
	if l.Name == "" {
		errs.Add(path+".name", "name is required", ErrEmptyName)
	}
	if l.Level < 0 || l.Level > 5 {
		errs.Add(path+".level", "level must be between 0 and 5", nil)
	}
	return errs
}

// Interest is a named personal interest with optional supporting keywords.
type Interest struct {
	ItemBase
	Name     string   `json:"name"`
	Keywords []string `json:"keywords,omitempty"`
}

func NewInterest(name string) Interest {
	return Interest{ItemBase: newItemBase(), Name: name}
}

func (i Interest) Validate(path string) ValidationErrors {
	var errs ValidationErrors
	if i.Name == "" {
		errs.Add(path+".name", "name is required", ErrEmptyName)
	}
	return errs
}

// Volunteer is a volunteer engagement, structurally identical to
// Experience but kept as its own type so adapters and templates can
// address it distinctly.
type Volunteer struct {
	ItemBase
	Organization string `json:"organization"`
	Position     string `json:"position,omitempty"`
	URL          URL    `json:"url"`
	Date         string `json:"date,omitempty"`
	Summary      string `json:"summary,omitempty"`
}

func NewVolunteer(organization string) Volunteer {
	return Volunteer{ItemBase: newItemBase(), Organization: organization}
}

func (v Volunteer) Validate(path string) ValidationErrors {
	var errs ValidationErrors
	if v.Organization == "" {
		errs.Add(path+".organization", "organization is required", ErrEmptyName)
	}
	if !v.URL.IsEmpty() {
		if err := ValidateURL(v.URL.Href); err != nil {
			errs.Add(path+".url.href", err.Error(), err)
		}
	}
	return errs
}

// Reference is a character/professional reference with free-form text.
type Reference struct {
	ItemBase
	Name        string `json:"name"`
	Description string `json:"description,omitempty"` // engine markup
}

func NewReference(name string) Reference {
	return Reference{ItemBase: newItemBase(), Name: name}
}

func (r Reference) Validate(path string) ValidationErrors {
	var errs ValidationErrors
	if r.Name == "" {
		errs.Add(path+".name", "name is required", ErrEmptyName)
	}
	return errs
}

// CustomItem is the catch-all item shape for user-defined sections that
// don't fit one of the twelve named item types.
type CustomItem struct {
	ItemBase
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"` // engine markup
	Date        string   `json:"date,omitempty"`
	URL         URL      `json:"url"`
	Keywords    []string `json:"keywords,omitempty"`
}

func NewCustomItem(name string) CustomItem {
	return CustomItem{ItemBase: newItemBase(), Name: name}
}

func (c CustomItem) Validate(path string) ValidationErrors {
	var errs ValidationErrors
	if c.Name == "" {
		errs.Add(path+".name", "name is required", ErrEmptyName)
	}
	if !c.URL.IsEmpty() {
		if err := ValidateURL(c.URL.Href); err != nil {
			errs.Add(path+".url.href", err.Error(), err)
		}
	}
	return errs
}
