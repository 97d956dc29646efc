package entities

// PageFormat selects the physical page size.
type PageFormat string

const (
	PageFormatA4     PageFormat = "a4"
	PageFormatLetter PageFormat = "letter"
)

// PageOptions are cosmetic page-level toggles.
type PageOptions struct {
	BreakLine   bool `json:"breakLine"`
	PageNumbers bool `json:"pageNumbers"`
}

// DefaultPageOptions matches the renderer's built-in defaults.
func DefaultPageOptions() PageOptions {
	return PageOptions{BreakLine: true, PageNumbers: true}
}

// PageConfig controls page size and margin.
type PageConfig struct {
	Margin  float64     `json:"margin"`
	Format  PageFormat  `json:"format"`
	Options PageOptions `json:"options"`
}

// DefaultPageConfig matches the renderer's built-in defaults: an 18pt
// margin on A4 paper.
func DefaultPageConfig() PageConfig {
	return PageConfig{Margin: 18, Format: PageFormatA4, Options: DefaultPageOptions()}
}

// Validate reports out-of-range page parameters.
func (p PageConfig) Validate(path string) ValidationErrors {
	var errs ValidationErrors
	if p.Margin < 0 || p.Margin > 144 {
		errs.Add(path+".margin", "margin must be between 0 and 144 points", nil)
	}
	if p.Format != PageFormatA4 && p.Format != PageFormatLetter {
		errs.Add(path+".format", "format must be \"a4\" or \"letter\"", nil)
	}
	return errs
}

// Theme holds the three colours the templates key off of.
type Theme struct {
	Background string `json:"background"`
	Text       string `json:"text"`
	Primary    string `json:"primary"`
}

// DefaultTheme matches the renderer's built-in colours.
func DefaultTheme() Theme {
	return Theme{Background: "#ffffff", Text: "#000000", Primary: "#dc2626"}
}

// Validate checks each colour is a valid 6-digit hex value.
func (t Theme) Validate(path string) ValidationErrors {
	var errs ValidationErrors
	if err := ValidateHexColor(t.Background); err != nil {
		errs.Add(path+".background", err.Error(), err)
	}
	if err := ValidateHexColor(t.Text); err != nil {
		errs.Add(path+".text", err.Error(), err)
	}
	if err := ValidateHexColor(t.Primary); err != nil {
		errs.Add(path+".primary", err.Error(), err)
	}
	return errs
}

// FontConfig selects the body typeface.
type FontConfig struct {
	Family   string   `json:"family"`
	Subset   string   `json:"subset"`
	Variants []string `json:"variants"`
	Size     float64  `json:"size"`
}

// DefaultFontConfig matches the renderer's built-in typeface.
func DefaultFontConfig() FontConfig {
	return FontConfig{Family: "IBM Plex Serif", Subset: "latin", Variants: []string{"regular"}, Size: 14}
}

// Validate checks the font size falls within the renderer's accepted range.
func (f FontConfig) Validate(path string) ValidationErrors {
	var errs ValidationErrors
	if err := ValidateFontSize(f.Size); err != nil {
		errs.Add(path+".size", err.Error(), err)
	}
	return errs
}

// Typography groups the font config with the remaining text-rendering
// toggles.
type Typography struct {
	Font            FontConfig `json:"font"`
	LineHeight      float64    `json:"lineHeight"`
	HideIcons       bool       `json:"hideIcons"`
	UnderlineLinks  bool       `json:"underlineLinks"`
}

// DefaultTypography matches the renderer's built-in defaults.
func DefaultTypography() Typography {
	return Typography{Font: DefaultFontConfig(), LineHeight: 1.5, UnderlineLinks: true}
}

func (t Typography) Validate(path string) ValidationErrors {
	var errs ValidationErrors
	errs = append(errs, t.Font.Validate(path+".font")...)
	if t.LineHeight <= 0 {
		errs.Add(path+".lineHeight", "line height must be positive", nil)
	}
	return errs
}

// CustomCSS is an opt-in raw stylesheet override layered on top of the
// chosen template, matching the original's "power user" escape hatch.
type CustomCSS struct {
	Value   string `json:"value"`
	Visible bool   `json:"visible"`
}

// Metadata controls how a Document is rendered: template choice, section
// layout, page geometry, theme colours, and typography.
type Metadata struct {
	// Template is the catalogue slug selecting both the visual template
	// and its associated layout kind.
	Template string `json:"template"`

	// Layout is a pages -> columns -> section-id tree. The outer slice is
	// one entry per page, each page holding one slice of columns, each
	// column holding an ordered list of section ids to place in it.
	Layout [][][]string `json:"layout"`

	CSS        CustomCSS  `json:"css"`
	Page       PageConfig `json:"page"`
	Theme      Theme      `json:"theme"`
	Typography Typography `json:"typography"`
	Notes      string     `json:"notes"`
}

// DefaultLayout reproduces the renderer's built-in single-page, two-column
// section placement.
func DefaultLayout() [][][]string {
	return [][][]string{
		{
			{"profiles", "summary", "experience", "education", "projects", "volunteer", "references"},
			{"skills", "interests", "certifications", "awards", "publications", "languages"},
		},
	}
}

// DefaultMetadata matches the built-in defaults applied when authoring a
// brand-new document from scratch.
func DefaultMetadata() Metadata {
	return Metadata{
		Template:   "rhyhorn",
		Layout:     DefaultLayout(),
		Page:       DefaultPageConfig(),
		Theme:      DefaultTheme(),
		Typography: DefaultTypography(),
	}
}

// Validate checks the nested page/theme/typography configuration. Template
// slugs are validated against the catalogue elsewhere (internal/typeset),
// not here, since entities has no dependency on the renderer.
func (m Metadata) Validate() ValidationErrors {
	var errs ValidationErrors
	errs = append(errs, m.Page.Validate("metadata.page")...)
	errs = append(errs, m.Theme.Validate("metadata.theme")...)
	errs = append(errs, m.Typography.Validate("metadata.typography")...)
	return errs
}
