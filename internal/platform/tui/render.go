package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// cellStyle identifies a foreground/background pair.
type cellStyle struct {
	fg, bg core.Color
}

// styleCache holds lipgloss styles per color pair. Only touched from the
// Bubble Tea event loop.
var styleCache = make(map[cellStyle]lipgloss.Style)

// styleFor returns the lipgloss style for a color pair.
func styleFor(cs cellStyle) lipgloss.Style {
	if style, ok := styleCache[cs]; ok {
		return style
	}
	style := lipgloss.NewStyle()
	if idx, ok := cs.fg.ANSI(); ok {
		style = style.Foreground(lipgloss.Color(strconv.Itoa(idx)))
	}
	if idx, ok := cs.bg.ANSI(); ok {
		style = style.Background(lipgloss.Color(strconv.Itoa(idx)))
	}
	styleCache[cs] = style
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same style for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := cellStyle{cell.FG, cell.BG}

			run.Reset()
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (cellStyle{cell.FG, cell.BG}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(start).Render(run.String()))
		}
	}
	return sb.String()
}
