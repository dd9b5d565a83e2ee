package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/wexinc/profilecard/internal/anim"
	"github.com/wexinc/profilecard/internal/tui/components"
	"github.com/wexinc/profilecard/internal/tui/styles"
)

// Card geometry in cells.
const (
	defaultCardWidth = 56
	minCardWidth     = 36
	maxCardWidth     = 64
	maxTileWidth     = 16
	minTileWidth     = 10
	headerGap        = 2

	// Border plus padding on the left and top of the card.
	cardInsetX = 3
	cardInsetY = 2
)

// rect is a screen area in cells.
type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return r.w > 0 && r.h > 0 && x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

func (r rect) shift(dx, dy int) rect {
	return rect{x: r.x + dx, y: r.y + dy, w: r.w, h: r.h}
}

// hitMap records where the controls were last drawn.
type hitMap struct {
	edit     rect
	floating rect
}

// innerWidth is the width of the card content area.
func (m *ProfileView) innerWidth() int {
	if m.width <= 0 {
		return defaultCardWidth
	}
	return min(max(m.width-8, minCardWidth), maxCardWidth)
}

// layoutLists sizes the stat tiles and skill tags for the current width.
func (m *ProfileView) layoutLists() {
	w := m.innerWidth()

	m.tiles = m.tiles[:0]
	m.statCols = 0
	if n := len(m.record.Stats); n > 0 {
		m.statCols = min(n, max(w/minTileWidth, 1))
		tw := min(w/m.statCols, maxTileWidth)
		for _, s := range m.record.Stats {
			m.tiles = append(m.tiles, components.NewStatTile(s, tw))
		}
	}

	m.tags = m.tags[:0]
	for _, s := range m.record.Skills {
		tag := components.NewSkillTag(s)
		tag.SetMaxWidth(w)
		m.tags = append(m.tags, tag)
	}

	m.help.SetWidth(w + 6)
}

// View renders the card.
func (m *ProfileView) View() string {
	if m.quitting {
		return ""
	}
	if m.help.IsVisible() {
		m.hits = hitMap{}
		out, _, _ := m.place(m.help.View())
		return out
	}

	content, hits := m.render()
	out, dx, dy := m.place(content)
	m.hits = hitMap{
		edit:     hits.edit.shift(dx, dy),
		floating: hits.floating.shift(dx, dy),
	}
	return out
}

// render draws the card, the floating control and the shortcut bar, and
// reports control positions relative to the top left of the result.
func (m *ProfileView) render() (string, hitMap) {
	w := m.innerWidth()
	card := m.PoseOf(anim.Card, 0)
	now := m.clock()

	blocks := []string{m.renderHeader(w, card.Opacity)}
	for _, section := range []string{
		m.renderBio(w, card.Opacity),
		m.renderStats(w, card.Opacity),
		m.renderSkills(w, card.Opacity),
	} {
		if section != "" {
			blocks = append(blocks, "", section)
		}
	}
	editPose := within(m.PoseOf(anim.EditButton, 0), card.Opacity)
	editPose = anim.EditFeedback.ApplyAt(editPose, m.edit.Hovered(), m.edit.Pressed(), m.edit.HoverFor(now))
	editView := m.edit.View(editPose)
	editLeft := max((w-lipgloss.Width(editView))/2, 0)
	blocks = append(blocks, "", indent(editView, editLeft))

	cardView := styles.Card(card.Opacity).
		Width(w + 2*(cardInsetX-1)).
		Render(strings.Join(blocks, "\n"))
	cardW, cardH := lipgloss.Size(cardView)
	cardView = components.Posed(cardView, card)

	floatingPose := anim.FloatingFeedback.ApplyAt(
		m.PoseOf(anim.Floating, 0),
		m.floating.Hovered(), m.floating.Pressed(), m.floating.HoverFor(now),
	)
	floatingLeft := max(cardW-components.FloatingWidth, 0)
	floatingView := indent(m.floating.View(floatingPose), floatingLeft)

	m.shortcuts.SetWidth(cardW)

	// The edit button is the last block, so it sits just above the bottom
	// padding and border whatever the blocks above it wrapped to.
	hits := hitMap{
		edit: rect{
			x: cardInsetX + editLeft,
			y: cardH - cardInsetY - components.ButtonHeight,
			w: m.edit.Width(),
			h: components.ButtonHeight,
		},
		floating: rect{
			x: floatingLeft,
			y: cardH,
			w: components.FloatingWidth,
			h: components.FloatingHeight,
		},
	}

	return strings.Join([]string{cardView, floatingView, m.shortcuts.View()}, "\n"), hits
}

func (m *ProfileView) renderHeader(w int, parent float64) string {
	avatar := m.avatar.View(within(m.PoseOf(anim.Avatar, 0), parent))

	infoW := max(w-components.AvatarWidth-headerGap, 1)
	p := within(m.PoseOf(anim.Header, 0), parent)
	info := strings.Join([]string{
		styles.Name(p.Opacity).Render(ansi.Truncate(m.record.Name, infoW, "…")),
		styles.Title(p.Opacity).Render(ansi.Truncate(m.record.Title, infoW, "…")),
		styles.Location(p.Opacity).Render(ansi.Truncate(m.record.Location, infoW, "…")),
	}, "\n")
	info = lipgloss.Place(infoW, components.AvatarHeight, lipgloss.Left, lipgloss.Center, info)

	return lipgloss.JoinHorizontal(lipgloss.Top, avatar, strings.Repeat(" ", headerGap), components.Posed(info, p))
}

func (m *ProfileView) renderBio(w int, parent float64) string {
	if m.record.Bio == "" {
		return ""
	}
	p := within(m.PoseOf(anim.Bio, 0), parent)
	return components.Posed(styles.Bio(p.Opacity).Width(w).Render(m.record.Bio), p)
}

// renderStats lays the tiles out in centred rows of statCols in stored order.
func (m *ProfileView) renderStats(w int, parent float64) string {
	if len(m.tiles) == 0 {
		return ""
	}
	container := within(m.PoseOf(anim.Stats, 0), parent)
	cols := max(m.statCols, 1)

	var rows []string
	for start := 0; start < len(m.tiles); start += cols {
		end := min(start+cols, len(m.tiles))
		views := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			views = append(views, m.tiles[i].View(within(m.PoseOf(anim.StatItem, i), container.Opacity)))
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top, views...)
		rows = append(rows, indent(row, max((w-lipgloss.Width(row))/2, 0)))
	}
	return components.Posed(strings.Join(rows, "\n"), container)
}

// renderSkills flows the tags onto as many lines as needed in stored order.
func (m *ProfileView) renderSkills(w int, parent float64) string {
	if len(m.tags) == 0 {
		return ""
	}
	container := within(m.PoseOf(anim.Skills, 0), parent)

	var lines, line []string
	lineW := 0
	for i, t := range m.tags {
		if lineW > 0 && lineW+t.Width() > w {
			lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, line...))
			line, lineW = nil, 0
		}
		line = append(line, t.View(within(m.PoseOf(anim.SkillTag, i), container.Opacity)))
		lineW += t.Width()
	}
	lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, line...))

	heading := styles.SectionHeading(container.Opacity).Render("Skills")
	block := heading + "\n" + strings.Join(lines, "\n")
	return components.Posed(block, container)
}

// place centres content on the screen and returns the applied offsets.
func (m *ProfileView) place(content string) (string, int, int) {
	cw, ch := lipgloss.Size(content)
	dx := max((m.width-cw)/2, 0)
	dy := max((m.height-ch)/2, 0)
	out := indent(content, dx)
	if dy > 0 {
		out = strings.Repeat("\n", dy) + out
	}
	return out, dx, dy
}

// within scales a child's opacity by its parent's.
func within(p anim.Pose, parent float64) anim.Pose {
	p.Opacity *= parent
	return p
}

// indent prefixes every line of block with n spaces.
func indent(block string, n int) string {
	if n <= 0 {
		return block
	}
	pad := strings.Repeat(" ", n)
	return pad + strings.ReplaceAll(block, "\n", "\n"+pad)
}
