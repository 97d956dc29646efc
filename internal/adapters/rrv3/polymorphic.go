package rrv3

import (
	"bytes"
	"encoding/json"

	"github.com/foliotype/resumate/internal/core/entities"
)

// rawURL accepts either a bare href string or an {label, href} object, the
// two shapes the predecessor format's migrated documents mix freely.
type rawURL struct {
	Label string
	Href  string
	set   bool
}

func (u *rawURL) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	if data[0] == '"' {
		var href string
		if err := json.Unmarshal(data, &href); err != nil {
			return err
		}
		u.Href = href
		u.Label = href
		u.set = href != ""
		return nil
	}

	var obj struct {
		Label string `json:"label"`
		Href  string `json:"href"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	u.Href = obj.Href
	u.Label = obj.Label
	if u.Label == "" {
		u.Label = obj.Href
	}
	u.set = obj.Href != ""
	return nil
}

func (u rawURL) toEntity() entities.URL {
	if !u.set {
		return entities.URL{}
	}
	return entities.URL{Label: u.Label, Href: u.Href}
}

// rawSummary accepts either a bare content string or a {body, visible}
// object; the canonical shape is {content, visible} with visible
// defaulting to true.
type rawSummary struct {
	Content string
	Visible bool
}

func (s *rawSummary) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	s.Visible = true
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	if data[0] == '"' {
		var body string
		if err := json.Unmarshal(data, &body); err != nil {
			return err
		}
		s.Content = body
		return nil
	}

	var obj struct {
		Body    string `json:"body"`
		Visible *bool  `json:"visible"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	s.Content = obj.Body
	if obj.Visible != nil {
		s.Visible = *obj.Visible
	}
	return nil
}
