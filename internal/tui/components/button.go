// Package components provides the building blocks of the profile card.
package components

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wexinc/profilecard/internal/anim"
	"github.com/wexinc/profilecard/internal/tui/styles"
)

// pointer tracks mouse state over a control.
type pointer struct {
	hovered    bool
	pressed    bool
	hoverSince time.Time
}

// SetHovered records whether the pointer is over the control. Leaving the
// control also releases a press.
func (p *pointer) SetHovered(hovered bool, now time.Time) {
	if hovered && !p.hovered {
		p.hoverSince = now
	}
	if !hovered {
		p.pressed = false
	}
	p.hovered = hovered
}

// SetPressed records a pointer press on the control.
func (p *pointer) SetPressed(pressed bool) {
	p.pressed = pressed
}

// Hovered returns whether the pointer is over the control.
func (p *pointer) Hovered() bool {
	return p.hovered
}

// Pressed returns whether the control is held down.
func (p *pointer) Pressed() bool {
	return p.pressed
}

// HoverFor returns how long the pointer has been over the control.
func (p *pointer) HoverFor(now time.Time) time.Duration {
	if !p.hovered {
		return 0
	}
	return now.Sub(p.hoverSince)
}

// Button footprint height (border + label line).
const ButtonHeight = 3

// Button is a bordered, focusable button with hover and press feedback.
type Button struct {
	pointer
	label   string
	focused bool
	id      string
}

// NewButton creates a new Button component.
func NewButton(id, label string) *Button {
	return &Button{
		label: label,
		id:    id,
	}
}

// ID returns the component's unique identifier.
func (b *Button) ID() string {
	return b.id
}

// Focus focuses the button.
func (b *Button) Focus() tea.Cmd {
	b.focused = true
	return nil
}

// Blur removes focus from the button.
func (b *Button) Blur() {
	b.focused = false
}

// Focused returns whether the button is focused.
func (b *Button) Focused() bool {
	return b.focused
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// Width is the footprint width, which leaves room for the hover growth.
func (b *Button) Width() int {
	return lipgloss.Width(b.label) + 8
}

// Update handles messages for the button.
// Returns true if the button was activated.
func (b *Button) Update(msg tea.Msg) (*Button, tea.Cmd, bool) {
	if !b.focused {
		return b, nil, false
	}

	activated := false
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter", " ":
			activated = true
		}
	}

	return b, nil, activated
}

// View renders the button at pose p, which should already carry pointer
// feedback.
func (b *Button) View(p anim.Pose) string {
	fg, bg := styles.Fade(styles.Primary, p.Opacity), styles.Fade(styles.Background, p.Opacity)
	text := lipgloss.NewStyle().Foreground(fg)
	if b.focused {
		// Focused button uses inverted colors.
		text = lipgloss.NewStyle().Foreground(bg).Background(fg).Bold(true)
	}
	framed := text.Border(lipgloss.RoundedBorder()).BorderForeground(fg)

	var content string
	switch levelOf(p.Scale) {
	case scaleGone:
		content = ""
	case scaleSmall:
		content = text.Render(b.label)
	case scaleCompact:
		content = framed.Padding(0, 1).Render(b.label)
	case scaleNormal:
		content = framed.Padding(0, 2).Render(b.label)
	case scaleGrown:
		content = framed.Padding(0, 3).Render(b.label)
	}
	return Posed(box(b.Width(), ButtonHeight, content), p)
}
