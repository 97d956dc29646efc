package typeset

import (
	"fmt"
	"strings"

	"github.com/foliotype/resumate/internal/core/entities"
	"github.com/foliotype/resumate/internal/typeset/markup"
)

// Block is one piece of laid-out content: a name/headline title, a section
// heading, or a body line (plain or bulleted, with inline styling already
// resolved by internal/typeset/markup).
type Block struct {
	Kind  BlockKind
	Text  string
	Lines []markup.Line
}

type BlockKind int

const (
	BlockTitle BlockKind = iota
	BlockSubtitle
	BlockHeading
	BlockBody
)

// Plan is the renderer-agnostic sequence of content blocks both the PDF
// sink and the raster preview draw from, so the two projections never
// drift out of sync with each other.
type Plan struct {
	Blocks []Block
}

// BuildPlan flattens a document into a single top-to-bottom flow,
// following metadata.layout's section ordering when present and falling
// back to the canonical section order otherwise. Multi-column placement
// from metadata.layout is not reproduced geometrically; every visible
// section prints in sequence, one after another.
func BuildPlan(doc entities.Document) Plan {
	var p Plan

	p.Blocks = append(p.Blocks, Block{Kind: BlockTitle, Text: doc.Basics.Name})
	if doc.Basics.Headline != "" {
		p.Blocks = append(p.Blocks, Block{Kind: BlockSubtitle, Text: doc.Basics.Headline})
	}
	p.Blocks = append(p.Blocks, Block{Kind: BlockSubtitle, Text: contactLine(doc.Basics)})

	for _, id := range sectionOrder(doc.Metadata.Layout) {
		p.appendSection(doc, id)
	}

	return p
}

func contactLine(b entities.Basics) string {
	var parts []string
	for _, v := range []string{b.Email, b.Phone, b.Location} {
		if v != "" {
			parts = append(parts, v)
		}
	}
	if !b.URL.IsEmpty() {
		parts = append(parts, b.URL.Href)
	}
	return strings.Join(parts, " · ")
}

// sectionOrder flattens metadata.layout's pages->columns->ids tree into
// one ordered id list, falling back to a fixed canonical order when the
// layout is empty.
func sectionOrder(layout [][][]string) []string {
	var ids []string
	for _, page := range layout {
		for _, column := range page {
			ids = append(ids, column...)
		}
	}
	if len(ids) > 0 {
		return ids
	}
	return []string{
		"summary", "profiles", "experience", "education", "projects",
		"volunteer", "skills", "certifications", "awards", "publications",
		"languages", "interests", "references",
	}
}

func (p *Plan) appendSection(doc entities.Document, id string) {
	switch id {
	case "summary":
		p.appendRichText(doc.Sections.Summary.Name, doc.Sections.Summary.Visible, doc.Sections.Summary.Content)
	case "experience":
		appendCollection(p, doc.Sections.Experience, func(it entities.Experience) (string, string) {
			return fmt.Sprintf("%s — %s (%s)", it.Position, it.Company, it.Date), it.Summary
		})
	case "education":
		appendCollection(p, doc.Sections.Education, func(it entities.Education) (string, string) {
			return fmt.Sprintf("%s, %s (%s)", it.Institution, it.StudyType, it.Date), it.Summary
		})
	case "projects":
		appendCollection(p, doc.Sections.Projects, func(it entities.Project) (string, string) {
			return fmt.Sprintf("%s (%s)", it.Name, it.Date), it.Description
		})
	case "volunteer":
		appendCollection(p, doc.Sections.Volunteer, func(it entities.Volunteer) (string, string) {
			return fmt.Sprintf("%s — %s (%s)", it.Position, it.Organization, it.Date), it.Summary
		})
	case "skills":
		appendCollection(p, doc.Sections.Skills, func(it entities.Skill) (string, string) {
			return it.Name, strings.Join(it.Keywords, ", ")
		})
	case "profiles":
		appendCollection(p, doc.Sections.Profiles, func(it entities.Profile) (string, string) {
			return it.Network, it.URL.Href
		})
	case "awards":
		appendCollection(p, doc.Sections.Awards, func(it entities.Award) (string, string) {
			return fmt.Sprintf("%s — %s (%s)", it.Title, it.Awarder, it.Date), it.Summary
		})
	case "certifications":
		appendCollection(p, doc.Sections.Certifications, func(it entities.Certification) (string, string) {
			return fmt.Sprintf("%s — %s (%s)", it.Name, it.Issuer, it.Date), ""
		})
	case "publications":
		appendCollection(p, doc.Sections.Publications, func(it entities.Publication) (string, string) {
			return fmt.Sprintf("%s — %s (%s)", it.Name, it.Publisher, it.Date), it.Summary
		})
	case "languages":
		appendCollection(p, doc.Sections.Languages, func(it entities.Language) (string, string) {
			return fmt.Sprintf("%s (level %d)", it.Name, it.Level), ""
		})
	case "interests":
		appendCollection(p, doc.Sections.Interests, func(it entities.Interest) (string, string) {
			return it.Name, strings.Join(it.Keywords, ", ")
		})
	case "references":
		appendCollection(p, doc.Sections.References, func(it entities.Reference) (string, string) {
			return it.Name, it.Description
		})
	default:
		if c, ok := doc.Sections.Custom[id]; ok {
			appendCollection(p, c, func(it entities.CustomItem) (string, string) {
				return fmt.Sprintf("%s (%s)", it.Name, it.Date), it.Description
			})
		}
	}
}

func (p *Plan) appendRichText(name string, visible bool, content string) {
	if !visible || content == "" {
		return
	}
	p.Blocks = append(p.Blocks, Block{Kind: BlockHeading, Text: name})
	p.Blocks = append(p.Blocks, Block{Kind: BlockBody, Lines: markup.Parse(content)})
}

func appendCollection[T entities.Item](p *Plan, coll entities.Collection[T], describe func(T) (string, string)) {
	if !coll.Visible || coll.IsEmpty() {
		return
	}
	p.Blocks = append(p.Blocks, Block{Kind: BlockHeading, Text: coll.Name})
	for _, item := range coll.Items {
		title, body := describe(item)
		p.Blocks = append(p.Blocks, Block{Kind: BlockBody, Lines: []markup.Line{{Runs: []markup.Run{{Text: title, Bold: true}}}}})
		if body != "" {
			p.Blocks = append(p.Blocks, Block{Kind: BlockBody, Lines: markup.Parse(body)})
		}
	}
}
