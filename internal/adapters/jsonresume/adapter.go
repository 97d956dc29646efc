// Package jsonresume converts the JSON Resume v1 schema into the canonical
// document model.
package jsonresume

import (
	"encoding/json"
	"strings"

	"github.com/foliotype/resumate/internal/core/entities"
	"github.com/foliotype/resumate/internal/shared/daterange"
)

const formatName = "json-resume"

type rawDocument struct {
	Basics       rawBasics    `json:"basics"`
	Work         []rawWork    `json:"work"`
	Education    []rawEdu     `json:"education"`
	Skills       []rawSkill   `json:"skills"`
	Languages    []rawLang    `json:"languages"`
	Projects     []rawProject `json:"projects"`
	Awards       []rawAward   `json:"awards"`
	Certificates []rawCert    `json:"certificates"`
	Publications []rawPub     `json:"publications"`
	Volunteer    []rawWork    `json:"volunteer"`
	Interests    []rawNamed   `json:"interests"`
	References   []rawRef     `json:"references"`
}

type rawBasics struct {
	Name     string       `json:"name"`
	Label    string       `json:"label"`
	Email    string       `json:"email"`
	Phone    string       `json:"phone"`
	URL      string       `json:"url"`
	Summary  string       `json:"summary"`
	Location rawLocation  `json:"location"`
	Profiles []rawProfile `json:"profiles"`
}

type rawLocation struct {
	City        string `json:"city"`
	Region      string `json:"region"`
	CountryCode string `json:"countryCode"`
}

type rawProfile struct {
	Network  string `json:"network"`
	Username string `json:"username"`
	URL      string `json:"url"`
}

type rawWork struct {
	Name       string   `json:"name"`
	Position   string   `json:"position"`
	URL        string   `json:"url"`
	StartDate  string   `json:"startDate"`
	EndDate    string   `json:"endDate"`
	Summary    string   `json:"summary"`
	Highlights []string `json:"highlights"`
}

type rawEdu struct {
	Institution string `json:"institution"`
	StudyType   string `json:"studyType"`
	Area        string `json:"area"`
	Score       string `json:"score"`
	URL         string `json:"url"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

type rawSkill struct {
	Name     string   `json:"name"`
	Level    string   `json:"level"`
	Keywords []string `json:"keywords"`
}

type rawLang struct {
	Language string `json:"language"`
	Fluency  string `json:"fluency"`
}

type rawProject struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Keywords    []string `json:"keywords"`
}

type rawAward struct {
	Title   string `json:"title"`
	Awarder string `json:"awarder"`
	Date    string `json:"date"`
	Summary string `json:"summary"`
}

type rawCert struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
	URL    string `json:"url"`
}

type rawPub struct {
	Name        string `json:"name"`
	Publisher   string `json:"publisher"`
	ReleaseDate string `json:"releaseDate"`
	URL         string `json:"url"`
	Summary     string `json:"summary"`
}

type rawNamed struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

type rawRef struct {
	Name      string `json:"name"`
	Reference string `json:"reference"`
}

// Parse decodes JSON Resume v1 bytes and converts them to the canonical
// model. There is no separate shape-validation stage: the only error is a
// ReadError from decoding (malformed JSON or a field of the wrong JSON type).
func Parse(data []byte) (entities.Document, error) {
	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return entities.Document{}, &entities.ReadError{Format: formatName, Message: err.Error(), Err: err}
	}
	return convert(raw), nil
}

func convert(raw rawDocument) entities.Document {
	doc := entities.NewDocument(raw.Basics.Name)
	doc.Basics.Headline = raw.Basics.Label
	doc.Basics.Email = raw.Basics.Email
	doc.Basics.Phone = raw.Basics.Phone
	doc.Basics.Location = joinLocation(raw.Basics.Location)
	if raw.Basics.URL != "" {
		doc.Basics.URL = entities.NewURL(raw.Basics.URL)
	}
	doc.Sections.Summary = entities.NewSummarySection(raw.Basics.Summary)

	doc.Sections.Profiles = entities.NewCollection[entities.Profile]("Profiles")
	for _, p := range raw.Basics.Profiles {
		item := entities.NewProfile(p.Network)
		item.Username = p.Username
		if p.URL != "" {
			item.URL = entities.NewURL(p.URL)
		}
		doc.Sections.Profiles.AddItem(item)
	}

	doc.Sections.Experience = entities.NewCollection[entities.Experience]("Experience")
	for _, w := range raw.Work {
		item := entities.NewExperience(w.Name, w.Position)
		if w.URL != "" {
			item.URL = entities.NewURL(w.URL)
		}
		item.Date = daterange.Format(w.StartDate, w.EndDate)
		item.Summary = combineWorkSummary(w.Summary, w.Highlights)
		doc.Sections.Experience.AddItem(item)
	}

	doc.Sections.Volunteer = entities.NewCollection[entities.Volunteer]("Volunteer")
	for _, w := range raw.Volunteer {
		item := entities.NewVolunteer(w.Name)
		item.Position = w.Position
		if w.URL != "" {
			item.URL = entities.NewURL(w.URL)
		}
		item.Date = daterange.Format(w.StartDate, w.EndDate)
		item.Summary = combineWorkSummary(w.Summary, w.Highlights)
		doc.Sections.Volunteer.AddItem(item)
	}

	doc.Sections.Education = entities.NewCollection[entities.Education]("Education")
	for _, e := range raw.Education {
		item := entities.NewEducation(e.Institution)
		item.StudyType = e.StudyType
		item.Area = e.Area
		item.Score = e.Score
		if e.URL != "" {
			item.URL = entities.NewURL(e.URL)
		}
		item.Date = daterange.Format(e.StartDate, e.EndDate)
		doc.Sections.Education.AddItem(item)
	}

	doc.Sections.Skills = entities.NewCollection[entities.Skill]("Skills")
	for _, s := range raw.Skills {
		item := entities.NewSkill(s.Name)
		item.Keywords = s.Keywords
		// skills[].level is a free-form string in this format; no numeric
		// mapping is attempted, it is stored verbatim as description.
		item.Description = s.Level
		doc.Sections.Skills.AddItem(item)
	}

	doc.Sections.Languages = entities.NewCollection[entities.Language]("Languages")
	for _, l := range raw.Languages {
		item := entities.NewLanguage(l.Language)
		item.Level = fluencyLevel(l.Fluency)
		item.Description = l.Fluency
		doc.Sections.Languages.AddItem(item)
	}

	doc.Sections.Projects = entities.NewCollection[entities.Project]("Projects")
	for _, p := range raw.Projects {
		item := entities.NewProject(p.Name)
		item.Description = p.Description
		if p.URL != "" {
			item.URL = entities.NewURL(p.URL)
		}
		item.Date = daterange.Format(p.StartDate, p.EndDate)
		item.Keywords = p.Keywords
		doc.Sections.Projects.AddItem(item)
	}

	doc.Sections.Awards = entities.NewCollection[entities.Award]("Awards")
	for _, a := range raw.Awards {
		item := entities.NewAward(a.Title)
		item.Awarder = a.Awarder
		item.Date = a.Date
		item.Summary = a.Summary
		doc.Sections.Awards.AddItem(item)
	}

	doc.Sections.Certifications = entities.NewCollection[entities.Certification]("Certifications")
	for _, c := range raw.Certificates {
		item := entities.NewCertification(c.Name)
		item.Issuer = c.Issuer
		item.Date = c.Date
		if c.URL != "" {
			item.URL = entities.NewURL(c.URL)
		}
		doc.Sections.Certifications.AddItem(item)
	}

	doc.Sections.Publications = entities.NewCollection[entities.Publication]("Publications")
	for _, p := range raw.Publications {
		item := entities.NewPublication(p.Name)
		item.Publisher = p.Publisher
		item.Date = p.ReleaseDate
		if p.URL != "" {
			item.URL = entities.NewURL(p.URL)
		}
		item.Summary = p.Summary
		doc.Sections.Publications.AddItem(item)
	}

	doc.Sections.Interests = entities.NewCollection[entities.Interest]("Interests")
	for _, i := range raw.Interests {
		item := entities.NewInterest(i.Name)
		item.Keywords = i.Keywords
		doc.Sections.Interests.AddItem(item)
	}

	doc.Sections.References = entities.NewCollection[entities.Reference]("References")
	for _, r := range raw.References {
		item := entities.NewReference(r.Name)
		item.Description = r.Reference
		doc.Sections.References.AddItem(item)
	}

	return doc
}

func joinLocation(loc rawLocation) string {
	var parts []string
	for _, p := range []string{loc.City, loc.Region, loc.CountryCode} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

func combineWorkSummary(summary string, highlights []string) string {
	var b strings.Builder
	summary = strings.TrimSpace(summary)
	if summary != "" {
		b.WriteString(summary)
	}
	var lines []string
	for _, h := range highlights {
		h = strings.TrimSpace(h)
		if h != "" {
			lines = append(lines, "• "+h)
		}
	}
	if len(lines) > 0 {
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(strings.Join(lines, "\n"))
	}
	return b.String()
}

func fluencyLevel(fluency string) int {
	f := strings.ToLower(fluency)
	switch {
	case strings.Contains(f, "native"), strings.Contains(f, "bilingual"):
		return 5
	case strings.Contains(f, "fluent"), strings.Contains(f, "professional"):
		return 4
	case strings.Contains(f, "advanced"):
		return 3
	case strings.Contains(f, "intermediate"), strings.Contains(f, "working"):
		return 2
	case strings.Contains(f, "elementary"), strings.Contains(f, "basic"), strings.Contains(f, "beginner"):
		return 1
	default:
		return 0
	}
}
