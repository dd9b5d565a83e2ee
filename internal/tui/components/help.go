package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wexinc/profilecard/internal/tui/styles"
)

// HelpOverlay displays every key binding in a framed box.
type HelpOverlay struct {
	visible bool
	width   int
	keys    help.KeyMap
	help    help.Model
}

// NewHelpOverlay creates a hidden overlay listing keys.
func NewHelpOverlay(keys help.KeyMap) *HelpOverlay {
	h := help.New()
	h.ShowAll = true
	h.Styles.FullKey = styles.KeyStyle
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(styles.MutedLight)
	h.Styles.FullSeparator = styles.MutedTextStyle
	return &HelpOverlay{
		width: 60,
		keys:  keys,
		help:  h,
	}
}

// SetWidth sets the overlay width.
func (h *HelpOverlay) SetWidth(width int) {
	h.width = width
	h.help.Width = max(width-6, 0)
}

// Show makes the overlay visible.
func (h *HelpOverlay) Show() {
	h.visible = true
}

// Hide hides the overlay.
func (h *HelpOverlay) Hide() {
	h.visible = false
}

// Toggle toggles visibility.
func (h *HelpOverlay) Toggle() {
	h.visible = !h.visible
}

// IsVisible returns whether the overlay is visible.
func (h *HelpOverlay) IsVisible() bool {
	return h.visible
}

// Update closes the overlay on esc, ? or q.
func (h *HelpOverlay) Update(msg tea.Msg) tea.Cmd {
	if !h.visible {
		return nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "?", "q":
			h.Hide()
			return func() tea.Msg {
				return HelpClosedMsg{}
			}
		}
	}
	return nil
}

// View renders the help overlay.
func (h *HelpOverlay) View() string {
	if !h.visible {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Foreground(styles.Foreground).
		Background(styles.Primary).
		Bold(true).
		Padding(0, 1)
	b.WriteString(titleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(h.help.View(h.keys))
	b.WriteString("\n\n")

	footerStyle := lipgloss.NewStyle().
		Foreground(styles.Muted).
		Italic(true)
	b.WriteString(footerStyle.Render("Press ? or esc to close"))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(styles.Primary).
		Padding(1, 2)

	return boxStyle.Render(b.String())
}

// HelpClosedMsg is sent when the help overlay is closed.
type HelpClosedMsg struct{}
