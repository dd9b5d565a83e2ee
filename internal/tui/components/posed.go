package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/wexinc/profilecard/internal/anim"
	"github.com/wexinc/profilecard/internal/tui/styles"
)

// Pose offsets are tuned in CSS-ish pixels; a terminal cell is roughly 8x16.
const (
	pxPerCol = 8.0
	pxPerRow = 16.0
)

// Cols converts a horizontal pose offset to cells.
func Cols(px float64) int {
	return int(math.Round(px / pxPerCol))
}

// Rows converts a vertical pose offset to cells.
func Rows(px float64) int {
	return int(math.Round(px / pxPerRow))
}

// Blank returns a w x h block of spaces.
func Blank(w, h int) string {
	if w <= 0 || h <= 0 {
		return ""
	}
	line := strings.Repeat(" ", w)
	lines := make([]string, h)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// Translate shifts block right by dx and down by dy cells while keeping its
// footprint, so a sliding element never pushes its neighbours. Whatever
// slides past the footprint is clipped.
func Translate(block string, dx, dy int) string {
	if dx <= 0 && dy <= 0 {
		return block
	}
	dx, dy = max(dx, 0), max(dy, 0)

	lines := strings.Split(block, "\n")
	w, h := lipgloss.Width(block), len(lines)
	dy = min(dy, h)
	dx = min(dx, w)

	out := make([]string, 0, h)
	for i := 0; i < dy; i++ {
		out = append(out, strings.Repeat(" ", w))
	}
	for _, line := range lines[:h-dy] {
		if dx > 0 {
			line = ansi.Truncate(strings.Repeat(" ", dx)+line, w, "")
		}
		if lw := ansi.StringWidth(line); lw < w {
			line += strings.Repeat(" ", w-lw)
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// Posed applies the opacity cut-off and offsets of p to an already styled
// block. Fading of colours is the caller's job since it happens in styles.
func Posed(block string, p anim.Pose) string {
	if p.Opacity < styles.Invisible {
		w, h := lipgloss.Size(block)
		return Blank(w, h)
	}
	return Translate(block, Cols(p.OffsetX), Rows(p.OffsetY))
}

// scaleLevel buckets a continuous scale into the few sizes a cell grid can
// show.
type scaleLevel int

const (
	scaleGone scaleLevel = iota
	scaleSmall
	scaleCompact
	scaleNormal
	scaleGrown
)

func levelOf(scale float64) scaleLevel {
	switch {
	case scale < 0.25:
		return scaleGone
	case scale < 0.7:
		return scaleSmall
	case scale < 0.97:
		return scaleCompact
	case scale < 1.03:
		return scaleNormal
	default:
		return scaleGrown
	}
}

// box centres content in a fixed w x h footprint. Scaling changes what is
// drawn, never how much room the element takes.
func box(w, h int, content string) string {
	if content == "" {
		return Blank(w, h)
	}
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, content)
}
