package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/wexinc/profilecard/internal/anim"
	"github.com/wexinc/profilecard/internal/tui/styles"
)

// Avatar footprint, sized for the largest (overshooting) scale.
const (
	AvatarWidth  = 9
	AvatarHeight = 3
)

// Avatar shows the profile initial in a filled block.
type Avatar struct {
	initial string
}

// NewAvatar creates an Avatar for the given initial.
func NewAvatar(initial string) *Avatar {
	return &Avatar{initial: initial}
}

// Initial returns the displayed character.
func (a *Avatar) Initial() string {
	return a.initial
}

// View renders the avatar at pose p.
func (a *Avatar) View(p anim.Pose) string {
	glyph := a.initial
	if glyph == "" {
		glyph = " "
	}
	st := styles.Avatar(p.Opacity)

	var content string
	switch levelOf(p.Scale) {
	case scaleGone:
		content = ""
	case scaleSmall:
		content = st.Render(glyph)
	case scaleCompact:
		content = st.Width(5).Render(glyph)
	case scaleNormal:
		content = st.Width(7).Height(3).AlignVertical(lipgloss.Center).Render(glyph)
	case scaleGrown:
		content = st.Width(AvatarWidth).Height(3).AlignVertical(lipgloss.Center).Render(glyph)
	}
	return Posed(box(AvatarWidth, AvatarHeight, content), p)
}
