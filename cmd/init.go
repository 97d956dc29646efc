package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/foliotype/resumate/internal/core/entities"
)

// InitCommand writes a starter canonical document, optionally pre-filled
// with sample data, to a new file.
type InitCommand struct {
	outputPath string
	sample     bool
}

// NewInitCommand creates an init command writing to outputPath.
func NewInitCommand(outputPath string) *InitCommand {
	return &InitCommand{outputPath: outputPath}
}

func (c *InitCommand) WithSample(sample bool) *InitCommand {
	c.sample = sample
	return c
}

// Execute writes the starter document as indented JSON.
func (c *InitCommand) Execute(ctx context.Context) error {
	doc := entities.NewDocument("")
	if c.sample {
		doc = sampleStarterDocument()
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	out = append(out, '\n')

	if err := writeOutput(c.outputPath, out); err != nil {
		return fmt.Errorf("failed to write %s: %w", c.outputPath, err)
	}
	fmt.Printf("wrote %s\n", c.outputPath)
	return nil
}

// sampleStarterDocument mirrors the original CLI's `init --sample` output:
// a minimal but complete résumé across basics, summary, one experience
// entry, one education entry, and three skills.
func sampleStarterDocument() entities.Document {
	doc := entities.NewDocument("Jane Doe")
	doc.Basics.Headline = "Software Engineer"
	doc.Basics.Email = "jane@example.com"
	doc.Basics.Phone = "+1-555-123-4567"
	doc.Basics.Location = "San Francisco, CA"
	doc.Basics.URL = entities.URL{Href: "https://janedoe.dev"}

	doc.Sections.Summary = entities.NewSummarySection(
		"Passionate software engineer with 5+ years of experience building web applications.",
	)

	experience := entities.NewCollection[entities.Experience]("Experience")
	item := entities.NewExperience("Acme Corp", "Senior Software Engineer")
	item.Location = "San Francisco, CA"
	item.Date = "2020 - Present"
	item.Summary = "Led development of customer-facing features."
	experience.AddItem(item)
	doc.Sections.Experience = experience

	education := entities.NewCollection[entities.Education]("Education")
	degree := entities.NewEducation("University of Technology")
	degree.StudyType = "Bachelor of Science"
	degree.Area = "Computer Science"
	degree.Date = "2012 - 2016"
	education.AddItem(degree)
	doc.Sections.Education = education

	skills := entities.NewCollection[entities.Skill]("Skills")
	for _, s := range []struct {
		name  string
		level int
	}{{"Go", 4}, {"TypeScript", 5}, {"Python", 4}} {
		skill := entities.NewSkill(s.name)
		skill.Level = s.level
		skills.AddItem(skill)
	}
	doc.Sections.Skills = skills

	return doc
}
