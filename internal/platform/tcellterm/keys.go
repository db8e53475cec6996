package tcellterm

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// symbolForKey maps a tcell key event to the game's input symbol.
func symbolForKey(ev *tcell.EventKey) (rune, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return core.SymbolUp, true
	case tcell.KeyDown:
		return core.SymbolDown, true
	case tcell.KeyLeft:
		return core.SymbolLeft, true
	case tcell.KeyRight:
		return core.SymbolRight, true
	case tcell.KeyEscape:
		return core.SymbolPause, true
	case tcell.KeyRune:
		if core.ActionForSymbol(ev.Rune()) == core.ActionNone {
			return 0, false
		}
		return ev.Rune(), true
	}
	return 0, false
}
