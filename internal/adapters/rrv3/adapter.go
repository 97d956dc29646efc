// Package rrv3 converts the predecessor document format (the canonical
// model's own section layout, with two looser field shapes carried over
// from its migration history) into the current canonical document model.
package rrv3

import (
	"encoding/json"
	"strings"

	"github.com/foliotype/resumate/internal/core/entities"
)

const formatName = "rrv3"

type rawItemBase struct {
	ID      string `json:"id"`
	Visible *bool  `json:"visible"`
}

func (b rawItemBase) toEntity() entities.ItemBase {
	id := b.ID
	if id == "" {
		id = entities.NewID()
	}
	visible := true
	if b.Visible != nil {
		visible = *b.Visible
	}
	return entities.ItemBase{ID: id, Visible: visible}
}

type rawCollection[T any] struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Columns       int    `json:"columns"`
	SeparateLinks bool   `json:"separateLinks"`
	Visible       bool   `json:"visible"`
	Items         []T    `json:"items"`
}

type rawExperience struct {
	rawItemBase
	Company  string `json:"company"`
	Position string `json:"position"`
	Location string `json:"location"`
	URL      rawURL `json:"url"`
	Date     string `json:"date"`
	Summary  string `json:"summary"`
}

type rawEducation struct {
	rawItemBase
	Institution string `json:"institution"`
	StudyType   string `json:"studyType"`
	Area        string `json:"area"`
	Score       string `json:"score"`
	URL         rawURL `json:"url"`
	Date        string `json:"date"`
	Summary     string `json:"summary"`
}

type rawSkill struct {
	rawItemBase
	Name     string   `json:"name"`
	Level    int      `json:"level"`
	Keywords []string `json:"keywords"`
}

type rawProject struct {
	rawItemBase
	Name        string   `json:"name"`
	Description string   `json:"description"`
	URL         rawURL   `json:"url"`
	Date        string   `json:"date"`
	Keywords    []string `json:"keywords"`
}

type rawProfile struct {
	rawItemBase
	Network  string `json:"network"`
	Username string `json:"username"`
	URL      rawURL `json:"url"`
}

type rawAward struct {
	rawItemBase
	Title   string `json:"title"`
	Awarder string `json:"awarder"`
	Date    string `json:"date"`
	Summary string `json:"summary"`
}

type rawCertification struct {
	rawItemBase
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
	URL    rawURL `json:"url"`
}

type rawPublication struct {
	rawItemBase
	Name      string `json:"name"`
	Publisher string `json:"publisher"`
	Date      string `json:"date"`
	URL       rawURL `json:"url"`
	Summary   string `json:"summary"`
}

type rawLanguage struct {
	rawItemBase
	Name  string `json:"name"`
	Level int    `json:"level"`
}

type rawInterest struct {
	rawItemBase
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

type rawVolunteer struct {
	rawItemBase
	Organization string `json:"organization"`
	Position     string `json:"position"`
	URL          rawURL `json:"url"`
	Date         string `json:"date"`
	Summary      string `json:"summary"`
}

type rawReference struct {
	rawItemBase
	Name        string `json:"name"`
	Description string `json:"description"`
}

type rawCustomItem struct {
	rawItemBase
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
	URL         rawURL   `json:"url"`
	Keywords    []string `json:"keywords"`
}

type rawPicture struct {
	URL          string             `json:"url"`
	Size         int                `json:"size"`
	AspectRatio  float64            `json:"aspectRatio"`
	BorderRadius int                `json:"borderRadius"`
	Visible      *bool              `json:"visible"`
	Effects      entities.PictureEffects `json:"effects"`
}

type rawBasics struct {
	Name         string                `json:"name"`
	Headline     string                `json:"headline"`
	Email        string                `json:"email"`
	Phone        string                `json:"phone"`
	Location     string                `json:"location"`
	URL          rawURL                `json:"url"`
	CustomFields []entities.CustomField `json:"customFields"`
	Picture      rawPicture            `json:"picture"`
}

type rawSections struct {
	Summary        rawSummary                          `json:"summary"`
	Experience     rawCollection[rawExperience]         `json:"experience"`
	Education      rawCollection[rawEducation]          `json:"education"`
	Skills         rawCollection[rawSkill]              `json:"skills"`
	Projects       rawCollection[rawProject]            `json:"projects"`
	Profiles       rawCollection[rawProfile]            `json:"profiles"`
	Awards         rawCollection[rawAward]              `json:"awards"`
	Certifications rawCollection[rawCertification]      `json:"certifications"`
	Publications   rawCollection[rawPublication]        `json:"publications"`
	Languages      rawCollection[rawLanguage]           `json:"languages"`
	Interests      rawCollection[rawInterest]           `json:"interests"`
	Volunteer      rawCollection[rawVolunteer]          `json:"volunteer"`
	References     rawCollection[rawReference]          `json:"references"`
	Custom         map[string]rawCollection[rawCustomItem] `json:"custom"`
}

type rawPageOptions struct {
	BreakLine   bool `json:"breakLine"`
	PageNumbers bool `json:"pageNumbers"`
}

type rawPage struct {
	Margin  *float64       `json:"margin"`
	Format  string         `json:"format"`
	Options rawPageOptions `json:"options"`
}

type rawTheme struct {
	Background string `json:"background"`
	Text       string `json:"text"`
	Primary    string `json:"primary"`
}

type rawFont struct {
	Family   string   `json:"family"`
	Subset   string   `json:"subset"`
	Variants []string `json:"variants"`
	Size     *float64 `json:"size"`
}

type rawTypography struct {
	Font           rawFont `json:"font"`
	LineHeight     *float64 `json:"lineHeight"`
	HideIcons      bool    `json:"hideIcons"`
	UnderlineLinks *bool   `json:"underlineLinks"`
}

type rawCustomCSS struct {
	Value   string `json:"value"`
	Visible bool   `json:"visible"`
}

type rawMetadata struct {
	Template   string         `json:"template"`
	Layout     [][][]string   `json:"layout"`
	CSS        rawCustomCSS   `json:"css"`
	Page       rawPage        `json:"page"`
	Theme      rawTheme       `json:"theme"`
	Typography rawTypography  `json:"typography"`
	Notes      string         `json:"notes"`
}

type rawDocument struct {
	Basics   rawBasics   `json:"basics"`
	Sections rawSections `json:"sections"`
	Metadata rawMetadata `json:"metadata"`
}

// Parse decodes predecessor-format bytes and converts them to the canonical
// model, tolerating its two looser field shapes (string-or-object summary
// and URL fields). There is no separate shape-validation stage: the only
// error is a ReadError from decoding.
func Parse(data []byte) (entities.Document, error) {
	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return entities.Document{}, &entities.ReadError{Format: formatName, Message: err.Error(), Err: err}
	}
	return convert(raw), nil
}

func convert(raw rawDocument) entities.Document {
	var doc entities.Document
	doc.Basics = convertBasics(raw.Basics)
	doc.Sections = convertSections(raw.Sections)
	doc.Metadata = convertMetadata(raw.Metadata)
	return doc
}

func convertBasics(raw rawBasics) entities.Basics {
	b := entities.NewBasics(raw.Name)
	b.Headline = raw.Headline
	b.Email = raw.Email
	b.Phone = raw.Phone
	b.Location = raw.Location
	b.URL = raw.URL.toEntity()
	b.CustomFields = raw.CustomFields

	b.Picture = entities.DefaultPicture()
	b.Picture.URL = raw.Picture.URL
	if raw.Picture.Size > 0 {
		b.Picture.Size = raw.Picture.Size
	}
	if raw.Picture.AspectRatio > 0 {
		b.Picture.AspectRatio = raw.Picture.AspectRatio
	}
	b.Picture.BorderRadius = raw.Picture.BorderRadius
	b.Picture.Effects = raw.Picture.Effects
	// visible:false on the picture itself sets effects.hidden; an explicit
	// effects.hidden in the source always wins.
	if raw.Picture.Visible != nil && !*raw.Picture.Visible {
		b.Picture.Effects.Hidden = true
	}
	return b
}

func convertSections(raw rawSections) entities.Sections {
	var s entities.Sections

	s.Summary = entities.SummarySection{
		ID: "summary", Name: "Summary", Columns: 1, SeparateLinks: true,
		Visible: raw.Summary.Visible, Content: raw.Summary.Content,
	}

	s.Experience = convertCollection(raw.Experience, func(r rawExperience) entities.Experience {
		return entities.Experience{
			ItemBase: r.toEntity(), Company: r.Company, Position: r.Position,
			Location: r.Location, URL: r.URL.toEntity(), Date: r.Date, Summary: r.Summary,
		}
	})
	s.Education = convertCollection(raw.Education, func(r rawEducation) entities.Education {
		return entities.Education{
			ItemBase: r.toEntity(), Institution: r.Institution, StudyType: r.StudyType,
			Area: r.Area, Score: r.Score, URL: r.URL.toEntity(), Date: r.Date, Summary: r.Summary,
		}
	})
	s.Skills = convertCollection(raw.Skills, func(r rawSkill) entities.Skill {
		return entities.Skill{ItemBase: r.toEntity(), Name: r.Name, Level: r.Level, Keywords: r.Keywords}
	})
	s.Projects = convertCollection(raw.Projects, func(r rawProject) entities.Project {
		return entities.Project{
			ItemBase: r.toEntity(), Name: r.Name, Description: r.Description,
			URL: r.URL.toEntity(), Date: r.Date, Keywords: r.Keywords,
		}
	})
	s.Profiles = convertCollection(raw.Profiles, func(r rawProfile) entities.Profile {
		return entities.Profile{ItemBase: r.toEntity(), Network: r.Network, Username: r.Username, URL: r.URL.toEntity()}
	})
	s.Awards = convertCollection(raw.Awards, func(r rawAward) entities.Award {
		return entities.Award{ItemBase: r.toEntity(), Title: r.Title, Awarder: r.Awarder, Date: r.Date, Summary: r.Summary}
	})
	s.Certifications = convertCollection(raw.Certifications, func(r rawCertification) entities.Certification {
		return entities.Certification{ItemBase: r.toEntity(), Name: r.Name, Issuer: r.Issuer, Date: r.Date, URL: r.URL.toEntity()}
	})
	s.Publications = convertCollection(raw.Publications, func(r rawPublication) entities.Publication {
		return entities.Publication{
			ItemBase: r.toEntity(), Name: r.Name, Publisher: r.Publisher,
			Date: r.Date, URL: r.URL.toEntity(), Summary: r.Summary,
		}
	})
	s.Languages = convertCollection(raw.Languages, func(r rawLanguage) entities.Language {
		return entities.Language{ItemBase: r.toEntity(), Name: r.Name, Level: r.Level}
	})
	s.Interests = convertCollection(raw.Interests, func(r rawInterest) entities.Interest {
		return entities.Interest{ItemBase: r.toEntity(), Name: r.Name, Keywords: r.Keywords}
	})
	s.Volunteer = convertCollection(raw.Volunteer, func(r rawVolunteer) entities.Volunteer {
		return entities.Volunteer{
			ItemBase: r.toEntity(), Organization: r.Organization, Position: r.Position,
			URL: r.URL.toEntity(), Date: r.Date, Summary: r.Summary,
		}
	})
	s.References = convertCollection(raw.References, func(r rawReference) entities.Reference {
		return entities.Reference{ItemBase: r.toEntity(), Name: r.Name, Description: r.Description}
	})

	if len(raw.Custom) > 0 {
		s.Custom = make(map[string]entities.Collection[entities.CustomItem], len(raw.Custom))
		for key, rc := range raw.Custom {
			s.Custom[key] = convertCollection(rc, func(r rawCustomItem) entities.CustomItem {
				return entities.CustomItem{
					ItemBase: r.toEntity(), Name: r.Name, Description: r.Description,
					Date: r.Date, URL: r.URL.toEntity(), Keywords: r.Keywords,
				}
			})
		}
	}

	return s
}

// convertCollection maps a raw section (section-level id/name/columns/
// visible plus a list of raw items) onto the canonical Collection[T],
// applying convertItem to each item.
func convertCollection[R any, T entities.Item](raw rawCollection[R], convertItem func(R) T) entities.Collection[T] {
	id := raw.ID
	if id == "" {
		id = entities.NewID()
	}
	columns := raw.Columns
	if columns < 1 {
		columns = 1
	}
	out := entities.Collection[T]{
		ID: id, Name: raw.Name, Columns: columns,
		SeparateLinks: raw.SeparateLinks, Visible: raw.Visible,
	}
	for _, r := range raw.Items {
		out.AddItem(convertItem(r))
	}
	return out
}

func convertMetadata(raw rawMetadata) entities.Metadata {
	m := entities.DefaultMetadata()
	if raw.Template != "" {
		// Unknown template identifiers are preserved as-is; the renderer
		// decides the fallback at render time, not the adapter.
		m.Template = raw.Template
	}
	if len(raw.Layout) > 0 {
		m.Layout = raw.Layout
	}
	m.CSS = entities.CustomCSS{Value: raw.CSS.Value, Visible: raw.CSS.Visible}
	m.Notes = raw.Notes

	m.Page = entities.DefaultPageConfig()
	if raw.Page.Margin != nil {
		m.Page.Margin = entities.ClampMargin(*raw.Page.Margin)
	}
	format := strings.ToLower(raw.Page.Format)
	if format == "letter" || format == "us-letter" {
		m.Page.Format = entities.PageFormatLetter
	} else {
		m.Page.Format = entities.PageFormatA4
	}
	m.Page.Options = entities.PageOptions{
		BreakLine:   raw.Page.Options.BreakLine,
		PageNumbers: raw.Page.Options.PageNumbers,
	}

	m.Theme = entities.DefaultTheme()
	if raw.Theme.Background != "" {
		m.Theme.Background = raw.Theme.Background
	}
	if raw.Theme.Text != "" {
		m.Theme.Text = raw.Theme.Text
	}
	if raw.Theme.Primary != "" {
		m.Theme.Primary = raw.Theme.Primary
	}

	m.Typography = entities.DefaultTypography()
	if raw.Typography.Font.Family != "" {
		m.Typography.Font.Family = raw.Typography.Font.Family
	}
	if raw.Typography.Font.Subset != "" {
		m.Typography.Font.Subset = raw.Typography.Font.Subset
	}
	if len(raw.Typography.Font.Variants) > 0 {
		m.Typography.Font.Variants = raw.Typography.Font.Variants
	}
	if raw.Typography.Font.Size != nil {
		m.Typography.Font.Size = *raw.Typography.Font.Size
	}
	if raw.Typography.LineHeight != nil {
		m.Typography.LineHeight = *raw.Typography.LineHeight
	}
	m.Typography.HideIcons = raw.Typography.HideIcons
	m.Typography.UnderlineLinks = true
	if raw.Typography.UnderlineLinks != nil {
		m.Typography.UnderlineLinks = *raw.Typography.UnderlineLinks
	}

	return m
}
