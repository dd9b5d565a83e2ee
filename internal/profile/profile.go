// Package profile defines the record shown on the profile card.
package profile

import (
	"unicode"
	"unicode/utf8"
)

// Stat is a single labelled counter shown as a tile on the card.
type Stat struct {
	Label string `yaml:"label" json:"label" mapstructure:"label"`
	Value int    `yaml:"value" json:"value" mapstructure:"value"`
}

// Record describes the displayed user. A view takes its own copy and never
// mutates it. Stats and Skills are rendered in stored order.
type Record struct {
	Name     string   `yaml:"name"     json:"name"     mapstructure:"name"`
	Title    string   `yaml:"title"    json:"title"    mapstructure:"title"`
	Location string   `yaml:"location" json:"location" mapstructure:"location"`
	Bio      string   `yaml:"bio"      json:"bio"      mapstructure:"bio"`
	Stats    []Stat   `yaml:"stats"    json:"stats"    mapstructure:"stats"`
	Skills   []string `yaml:"skills"   json:"skills"   mapstructure:"skills"`
}

// Sample returns placeholder data for demos and the default configuration.
// Each call returns a fresh copy.
func Sample() Record {
	return Record{
		Name:     "Alex Johnson",
		Title:    "Full Stack Developer",
		Location: "San Francisco, CA",
		Bio:      "Passionate about creating seamless user experiences and solving complex problems through clean code.",
		Stats: []Stat{
			{Label: "Projects", Value: 24},
			{Label: "Followers", Value: 568},
			{Label: "Following", Value: 327},
		},
		Skills: []string{"JavaScript", "React", "Node.js", "Python", "UI/UX", "MongoDB"},
	}
}

// Clone returns a deep copy of r.
func (r Record) Clone() Record {
	out := r
	if r.Stats != nil {
		out.Stats = append([]Stat(nil), r.Stats...)
	}
	if r.Skills != nil {
		out.Skills = append([]string(nil), r.Skills...)
	}
	return out
}

// Normalize returns a deep copy with nil lists replaced by empty ones.
// Ordering and duplicates are preserved.
func (r Record) Normalize() Record {
	out := r.Clone()
	if out.Stats == nil {
		out.Stats = []Stat{}
	}
	if out.Skills == nil {
		out.Skills = []string{}
	}
	return out
}

// Initial returns the first character of the name, uppercased.
// An empty name, or one that starts with invalid UTF-8, yields "".
func (r Record) Initial() string {
	if r.Name == "" {
		return ""
	}
	first, size := utf8.DecodeRuneInString(r.Name)
	if first == utf8.RuneError && size <= 1 {
		return ""
	}
	return string(unicode.ToUpper(first))
}

// IsEmpty reports whether the record carries nothing to display.
func (r Record) IsEmpty() bool {
	return r.Name == "" && r.Title == "" && r.Location == "" && r.Bio == "" &&
		len(r.Stats) == 0 && len(r.Skills) == 0
}
