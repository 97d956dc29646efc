// Package cache provides the process-wide thumbnail cache: one rendered
// preview PNG per template slug, built on first request and reused after.
package cache

import (
	"sync"

	"github.com/foliotype/resumate/internal/core/entities"
	"github.com/foliotype/resumate/internal/typeset"
	"github.com/foliotype/resumate/internal/typeset/templates"
)

// Renderer is the subset of the engine the thumbnail cache depends on,
// narrowed so tests can substitute a stub.
type Renderer interface {
	RenderPreview(doc entities.Document, page int) ([]byte, error)
}

// ThumbnailCache holds one cached preview PNG per template slug. Misses
// race: concurrent misses for the same slug may each render independently,
// and the last write to complete wins, matching spec.md §4.6.
type ThumbnailCache struct {
	mu       sync.RWMutex
	entries  map[string][]byte
	renderer Renderer
}

// New creates an empty thumbnail cache backed by renderer.
func New(renderer Renderer) *ThumbnailCache {
	return &ThumbnailCache{entries: make(map[string][]byte), renderer: renderer}
}

// Get returns the cached thumbnail for slug, rendering and storing one on
// first request. An unknown slug still produces a thumbnail: sampleDocument
// renders it with the default template and theme, and the result is cached
// under the requested slug.
func (c *ThumbnailCache) Get(slug string) ([]byte, error) {
	c.mu.RLock()
	if png, ok := c.entries[slug]; ok {
		c.mu.RUnlock()
		return png, nil
	}
	c.mu.RUnlock()

	png, err := c.renderer.RenderPreview(sampleDocument(slug), 0)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[slug] = png
	c.mu.Unlock()

	return png, nil
}

// sampleDocument builds the fixed, deterministic sample résumé thumbnails
// are rendered from, with its template and theme colours pinned to slug.
func sampleDocument(slug string) entities.Document {
	doc := entities.NewDocument("Jordan Rivera")
	doc.Basics.Headline = "Product Designer"
	doc.Basics.Email = "jordan.rivera@example.com"
	doc.Basics.Location = "Remote"
	doc.Sections.Summary = entities.NewSummarySection("Designs resilient, human interfaces for complex systems.")

	experience := entities.NewCollection[entities.Experience]("Experience")
	experience.AddItem(entities.Experience{
		ItemBase: entities.ItemBase{ID: entities.NewID(), Visible: true},
		Company:  "Northwind Labs",
		Position: "Senior Product Designer",
		Date:     "2021 - Present",
		Summary:  "Led design for the flagship onboarding flow.",
	})
	doc.Sections.Experience = experience

	education := entities.NewCollection[entities.Education]("Education")
	education.AddItem(entities.Education{
		ItemBase:    entities.ItemBase{ID: entities.NewID(), Visible: true},
		Institution: "State University",
		StudyType:   "B.A. Design",
		Date:        "2015 - 2019",
	})
	doc.Sections.Education = education

	skills := entities.NewCollection[entities.Skill]("Skills")
	skills.AddItem(entities.Skill{ItemBase: entities.ItemBase{ID: entities.NewID(), Visible: true}, Name: "Interaction Design"})
	doc.Sections.Skills = skills

	if !templates.IsKnown(slug) {
		slug = templates.Default
	}
	doc.Metadata.Template = slug
	doc.Metadata.Theme = templates.Theme(slug)

	return doc
}

var _ Renderer = (*typeset.Engine)(nil)
