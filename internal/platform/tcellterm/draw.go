package tcellterm

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// colorFor converts a palette color to tcell.
func colorFor(c core.Color) tcell.Color {
	idx, ok := c.ANSI()
	if !ok {
		return tcell.ColorDefault
	}
	return tcell.PaletteColor(idx)
}

// flush copies the buffer to the screen and shows it.
func flush(buf *core.Screen, screen tcell.Screen) {
	screen.Clear()
	for y := range buf.Height() {
		for x := range buf.Width() {
			cell := buf.GetCell(x, y)
			style := tcell.StyleDefault.
				Foreground(colorFor(cell.FG)).
				Background(colorFor(cell.BG))
			screen.SetContent(x, y, cell.Rune, nil, style)
		}
	}
	screen.Show()
}
