package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/wexinc/profilecard/internal/anim"
	"github.com/wexinc/profilecard/internal/tui/styles"
)

// SkillTag is a pill showing one skill.
type SkillTag struct {
	name     string
	maxWidth int
}

// NewSkillTag creates a tag for name.
func NewSkillTag(name string) *SkillTag {
	return &SkillTag{name: name}
}

// Name returns the skill name.
func (t *SkillTag) Name() string {
	return t.name
}

// SetMaxWidth caps the footprint width. Longer names are cut with an
// ellipsis. Zero removes the cap.
func (t *SkillTag) SetMaxWidth(w int) {
	t.maxWidth = max(w, 0)
}

// label is the name as drawn, fitted to the width cap.
func (t *SkillTag) label() string {
	if t.maxWidth == 0 {
		return t.name
	}
	return ansi.Truncate(t.name, max(t.maxWidth-4, 1), "…")
}

// Width is the footprint width: the pill plus one cell of air each side,
// which the spring overshoot grows into.
func (t *SkillTag) Width() int {
	return lipgloss.Width(t.label()) + 4
}

// View renders the tag at pose p.
func (t *SkillTag) View(p anim.Pose) string {
	st := styles.SkillTag(p.Opacity)
	name := t.label()

	var content string
	switch levelOf(p.Scale) {
	case scaleGone:
		content = ""
	case scaleSmall:
		content = st.Padding(0).Render("•")
	case scaleCompact:
		content = st.Padding(0).Render(name)
	case scaleNormal:
		content = st.Render(name)
	case scaleGrown:
		content = st.Padding(0, 2).Render(name)
	}
	return Posed(box(t.Width(), 1, content), p)
}
