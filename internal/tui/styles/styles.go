// Package styles provides Lip Gloss styles for the profile card.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Color palette for the TUI.
var (
	// Primary colors
	Primary     = lipgloss.Color("#7C3AED") // Purple
	Secondary   = lipgloss.Color("#06B6D4") // Cyan
	Accent      = lipgloss.Color("#EC4899") // Pink
	Success     = lipgloss.Color("#10B981") // Green
	Muted       = lipgloss.Color("#6B7280") // Gray
	MutedLight  = lipgloss.Color("#9CA3AF") // Light Gray
	Background  = lipgloss.Color("#1F2937") // Dark Gray
	Foreground  = lipgloss.Color("#F9FAFB") // White
	BorderColor = lipgloss.Color("#374151") // Border Gray
)

// Fade blends c toward Background by 1-opacity. Opacity 1 returns c
// unchanged; 0 returns Background. Colors that do not parse as hex are
// returned as-is.
func Fade(c lipgloss.Color, opacity float64) lipgloss.Color {
	if opacity >= 1 {
		return c
	}
	if opacity < 0 {
		opacity = 0
	}
	fg, err := colorful.Hex(string(c))
	if err != nil {
		return c
	}
	bg, err := colorful.Hex(string(Background))
	if err != nil {
		return c
	}
	return lipgloss.Color(bg.BlendLab(fg, opacity).Clamped().Hex())
}

// Invisible is the opacity below which an element is drawn as blank space.
const Invisible = 0.05

// Card styles. Functions take the element opacity so fades reach borders too.

// Card returns the outer card container.
func Card(opacity float64) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Fade(Primary, opacity)).
		Padding(1, 2)
}

// Name is the display name in the header block.
func Name(opacity float64) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Fade(Foreground, opacity)).
		Bold(true)
}

// Title is the job title line.
func Title(opacity float64) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Fade(Secondary, opacity))
}

// Location is the location line.
func Location(opacity float64) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Fade(MutedLight, opacity))
}

// Bio is the paragraph under the header.
func Bio(opacity float64) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Fade(Foreground, opacity))
}

// SectionHeading is used for "Skills".
func SectionHeading(opacity float64) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Fade(MutedLight, opacity)).
		Bold(true)
}

// StatValue is the number on a stat tile.
func StatValue(opacity float64) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Fade(Primary, opacity)).
		Bold(true)
}

// StatLabel is the caption on a stat tile.
func StatLabel(opacity float64) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Fade(MutedLight, opacity))
}

// Tile is the bordered stat tile.
func Tile(opacity float64) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Fade(BorderColor, opacity)).
		Align(lipgloss.Center)
}

// SkillTag is a pill around a skill name.
func SkillTag(opacity float64) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Fade(Foreground, opacity)).
		Background(Fade(Primary, opacity)).
		Padding(0, 1)
}

// Avatar is the circle-ish frame around the initial.
func Avatar(opacity float64) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Fade(Foreground, opacity)).
		Background(Fade(Primary, opacity)).
		Bold(true).
		Align(lipgloss.Center)
}

// Status bar styles.
var (
	// KeyStyle is for keyboard shortcut keys.
	KeyStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// HelpStyle is for help text.
	HelpStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// MutedTextStyle is for de-emphasized text.
	MutedTextStyle = lipgloss.NewStyle().
			Foreground(Muted)
)
