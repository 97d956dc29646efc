// Package linkedin converts a social-network data export — a ZIP archive
// of UTF-8 CSVs — into the canonical document model.
package linkedin

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"io"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/foliotype/resumate/internal/core/entities"
	"github.com/foliotype/resumate/internal/shared/daterange"
)

const formatName = "linkedin"

const maxSkillsPerGroup = 10

// table is one CSV file's rows, each already keyed by normalised header.
type table []map[string]string

// Parse unzips data, matches each entry's filename against the known
// export files, and converts the combined CSV rows into a Document.
func Parse(data []byte) (entities.Document, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return entities.Document{}, &entities.ReadError{Format: formatName, Message: err.Error(), Err: err}
	}

	var (
		profile   table
		positions table
		education table
		skills    table
		languages table
		certs     table
		projects  table
		emails    table
	)

	for _, f := range reader.File {
		if f.FileInfo().IsDir() || !strings.EqualFold(pathExt(f.Name), ".csv") {
			continue
		}
		rows, err := readCSVEntry(f)
		if err != nil {
			return entities.Document{}, &entities.ReadError{Format: formatName, Message: err.Error(), Err: err}
		}
		name := strings.ToLower(f.Name)
		switch {
		case strings.Contains(name, "profile"):
			profile = rows
		case strings.Contains(name, "position"):
			positions = rows
		case strings.Contains(name, "education"):
			education = rows
		case strings.Contains(name, "skill"):
			skills = rows
		case strings.Contains(name, "language"):
			languages = rows
		case strings.Contains(name, "certification"):
			certs = rows
		case strings.Contains(name, "project"):
			projects = rows
		case strings.Contains(name, "email"):
			emails = rows
		}
	}

	return convert(profile, positions, education, skills, languages, certs, projects, emails), nil
}

func pathExt(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i:]
	}
	return ""
}

// readCSVEntry decodes one archived CSV file, normalising every cell to
// NFC and every header to lower-case-with-underscores so the conversion
// code can address fields without worrying about export-locale quirks.
func readCSVEntry(f *zip.File) (table, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return nil, err
	}
	raw = bytes.TrimPrefix(raw, []byte{0xEF, 0xBB, 0xBF}) // UTF-8 BOM

	r := csv.NewReader(bytes.NewReader(raw))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil || len(records) == 0 {
		return nil, err
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = normaliseHeader(h)
	}

	rows := make(table, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(rec) {
				row[h] = norm.NFC.String(strings.TrimSpace(rec[i]))
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func normaliseHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	return strings.ReplaceAll(h, " ", "_")
}

func convert(profile, positions, education, skills, languages, certs, projects, emails table) entities.Document {
	doc := entities.NewDocument("")

	fullName := ""
	if len(profile) > 0 {
		p := profile[0]
		fullName = strings.TrimSpace(p["first_name"] + " " + p["last_name"])
	}
	doc.Basics = entities.NewBasics(fullName)
	if len(profile) > 0 {
		p := profile[0]
		doc.Basics.Headline = p["headline"]
		doc.Basics.Location = p["geo_location"]
		if doc.Basics.Location == "" {
			doc.Basics.Location = p["location"]
		}
	}
	if len(emails) > 0 {
		doc.Basics.Email = firstNonEmpty(emails, "email_address", "email")
	}

	doc.Sections.Experience = entities.NewCollection[entities.Experience]("Experience")
	for _, row := range positions {
		item := entities.NewExperience(row["company_name"], row["title"])
		item.Location = row["location"]
		item.Date = daterange.Format(row["started_on"], row["finished_on"])
		item.Summary = row["description"]
		doc.Sections.Experience.AddItem(item)
	}

	doc.Sections.Education = entities.NewCollection[entities.Education]("Education")
	for _, row := range education {
		item := entities.NewEducation(row["school_name"])
		item.StudyType = row["degree_name"]
		item.Area = row["notes"]
		item.Date = daterange.Format(row["start_date"], row["end_date"])
		doc.Sections.Education.AddItem(item)
	}

	doc.Sections.Skills = entities.NewCollection[entities.Skill]("Skills")
	var names []string
	for _, row := range skills {
		if n := row["name"]; n != "" {
			names = append(names, n)
		}
	}
	for i := 0; i < len(names); i += maxSkillsPerGroup {
		end := i + maxSkillsPerGroup
		if end > len(names) {
			end = len(names)
		}
		group := names[i:end]
		groupName := "Technical Skills"
		if i > 0 {
			groupName = "Additional Skills"
		}
		item := entities.NewSkill(groupName)
		item.Keywords = group
		doc.Sections.Skills.AddItem(item)
	}

	doc.Sections.Languages = entities.NewCollection[entities.Language]("Languages")
	for _, row := range languages {
		name := row["name"]
		if name == "" {
			name = row["language"]
		}
		item := entities.NewLanguage(name)
		item.Level = proficiencyLevel(row["proficiency"])
		doc.Sections.Languages.AddItem(item)
	}

	doc.Sections.Certifications = entities.NewCollection[entities.Certification]("Certifications")
	for _, row := range certs {
		item := entities.NewCertification(row["name"])
		item.Issuer = row["authority"]
		item.Date = daterange.Format(row["started_on"], row["finished_on"])
		if u := row["url"]; u != "" {
			item.URL = entities.NewURL(u)
		}
		doc.Sections.Certifications.AddItem(item)
	}

	doc.Sections.Projects = entities.NewCollection[entities.Project]("Projects")
	for _, row := range projects {
		item := entities.NewProject(row["title"])
		item.Description = row["description"]
		item.Date = daterange.Format(row["started_on"], row["finished_on"])
		if u := row["url"]; u != "" {
			item.URL = entities.NewURL(u)
		}
		doc.Sections.Projects.AddItem(item)
	}

	doc.Sections.Profiles = entities.NewCollection[entities.Profile]("Profiles")
	stub := entities.NewProfile("LinkedIn")
	stub.URL = entities.NewURL("https://linkedin.com/in/")
	doc.Sections.Profiles.AddItem(stub)

	doc.Metadata = entities.DefaultMetadata()
	return doc
}

func firstNonEmpty(rows table, keys ...string) string {
	for _, row := range rows {
		for _, k := range keys {
			if v := row[k]; v != "" {
				return v
			}
		}
	}
	return ""
}

func proficiencyLevel(proficiency string) int {
	p := strings.ToLower(proficiency)
	switch {
	case strings.Contains(p, "native"), strings.Contains(p, "bilingual"), strings.Contains(p, "full professional"):
		return 5
	case strings.Contains(p, "professional working"), strings.Contains(p, "fluent"):
		return 4
	case strings.Contains(p, "limited working"), strings.Contains(p, "intermediate"):
		return 3
	case strings.Contains(p, "elementary"), strings.Contains(p, "basic"):
		return 2
	default:
		// Unlike the v1 adapter's fluency mapping, an unrecognised or
		// absent proficiency value defaults to intermediate, not zero.
		return 3
	}
}
