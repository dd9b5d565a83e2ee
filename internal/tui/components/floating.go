package components

import (
	"math"

	"github.com/charmbracelet/lipgloss"

	"github.com/wexinc/profilecard/internal/anim"
	"github.com/wexinc/profilecard/internal/tui/styles"
)

// Floating control footprint, sized for the hover growth.
const (
	FloatingWidth  = 9
	FloatingHeight = 3
)

// FloatingButton is the round "+" control pinned below the card.
type FloatingButton struct {
	pointer
	glyph   string
	focused bool
}

// NewFloatingButton creates the control with the given glyph.
func NewFloatingButton(glyph string) *FloatingButton {
	return &FloatingButton{glyph: glyph}
}

// Focus focuses the control.
func (f *FloatingButton) Focus() {
	f.focused = true
}

// Blur removes focus from the control.
func (f *FloatingButton) Blur() {
	f.focused = false
}

// Focused returns whether the control is focused.
func (f *FloatingButton) Focused() bool {
	return f.focused
}

// Glyph returns the glyph drawn at rotation deg. A cell cannot rotate, so the
// plus turns through a cross on its way to the next quarter turn.
func (f *FloatingButton) Glyph(deg float64) string {
	if f.glyph != "+" {
		return f.glyph
	}
	a := math.Mod(math.Abs(deg), 90)
	if a >= 22.5 && a < 67.5 {
		return "×"
	}
	return "+"
}

// View renders the control at pose p, which should already carry pointer
// feedback.
func (f *FloatingButton) View(p anim.Pose) string {
	fill := styles.Accent
	if f.focused {
		fill = styles.Secondary
	}
	st := lipgloss.NewStyle().
		Foreground(styles.Fade(styles.Foreground, p.Opacity)).
		Background(styles.Fade(fill, p.Opacity)).
		Bold(true).
		Align(lipgloss.Center)
	glyph := f.Glyph(p.Rotate)

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
		content = st.Width(FloatingWidth).Height(3).AlignVertical(lipgloss.Center).Render(glyph)
	}
	return Posed(box(FloatingWidth, FloatingHeight, content), p)
}
