package components

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/wexinc/profilecard/internal/anim"
	"github.com/wexinc/profilecard/internal/profile"
	"github.com/wexinc/profilecard/internal/tui/styles"
)

// StatTileHeight is the footprint height of a tile (border + two lines).
const StatTileHeight = 4

// StatTile shows one stat value over its label.
type StatTile struct {
	stat  profile.Stat
	width int
}

// NewStatTile creates a tile whose footprint is width cells wide.
func NewStatTile(stat profile.Stat, width int) *StatTile {
	return &StatTile{stat: stat, width: max(width, 4)}
}

// Stat returns the displayed stat.
func (s *StatTile) Stat() profile.Stat {
	return s.stat
}

// Width returns the footprint width.
func (s *StatTile) Width() int {
	return s.width
}

// View renders the tile at pose p.
func (s *StatTile) View(p anim.Pose) string {
	inner := s.width - 2
	value := styles.StatValue(p.Opacity).Render(ansi.Truncate(strconv.Itoa(s.stat.Value), inner, "…"))
	label := styles.StatLabel(p.Opacity).Render(ansi.Truncate(s.stat.Label, inner, "…"))

	var content string
	switch levelOf(p.Scale) {
	case scaleGone:
		content = ""
	case scaleSmall:
		content = value
	case scaleCompact:
		content = lipgloss.NewStyle().Width(inner).Align(lipgloss.Center).
			Render(lipgloss.JoinVertical(lipgloss.Center, value, label))
	default:
		content = styles.Tile(p.Opacity).Width(inner).
			Render(lipgloss.JoinVertical(lipgloss.Center, value, label))
	}
	return Posed(box(s.width, StatTileHeight, content), p)
}
