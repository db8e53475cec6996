package core

// Action represents a semantic game action, abstracted from the input symbol
// that triggered it.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // w
	ActionDown           // s
	ActionLeft           // a
	ActionRight          // d
	ActionFire           // space
	ActionPause          // p
	ActionRestart        // r
	ActionQuit           // q
)

// Input symbols understood by the game. Drivers translate physical keys
// (arrows, ctrl+c) into these before handing them to the simulation.
const (
	SymbolUp      = 'w'
	SymbolDown    = 's'
	SymbolLeft    = 'a'
	SymbolRight   = 'd'
	SymbolFire    = ' '
	SymbolPause   = 'p'
	SymbolRestart = 'r'
	SymbolQuit    = 'q'
)

// ActionForSymbol maps a single input symbol to its action.
// Unknown symbols map to ActionNone.
func ActionForSymbol(sym rune) Action {
	switch sym {
	case SymbolUp:
		return ActionUp
	case SymbolDown:
		return ActionDown
	case SymbolLeft:
		return ActionLeft
	case SymbolRight:
		return ActionRight
	case SymbolFire:
		return ActionFire
	case SymbolPause:
		return ActionPause
	case SymbolRestart:
		return ActionRestart
	case SymbolQuit:
		return ActionQuit
	default:
		return ActionNone
	}
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the input delivered to the game for one simulation tick.
// A tick carries at most one symbol.
type InputFrame struct {
	Symbol rune
	Valid  bool // false when no key was pressed this tick
}

// NoInput is the frame for a tick without a key press.
var NoInput = InputFrame{}

// KeyFrame creates a frame carrying sym.
func KeyFrame(sym rune) InputFrame {
	return InputFrame{Symbol: sym, Valid: true}
}

// Action returns the action of the frame's symbol.
func (f InputFrame) Action() Action {
	if !f.Valid {
		return ActionNone
	}
	return ActionForSymbol(f.Symbol)
}

// InputQueue buffers symbols between ticks so that exactly one is consumed
// per tick. Symbols beyond the capacity are dropped.
type InputQueue struct {
	buf []rune
	cap int
}

// NewInputQueue creates a queue holding up to capacity pending symbols.
func NewInputQueue(capacity int) *InputQueue {
	return &InputQueue{buf: make([]rune, 0, capacity), cap: capacity}
}

// Push enqueues a symbol. Returns false if the queue was full.
func (q *InputQueue) Push(sym rune) bool {
	if len(q.buf) >= q.cap {
		return false
	}
	q.buf = append(q.buf, sym)
	return true
}

// Next pops the oldest symbol as a frame, or NoInput if empty.
func (q *InputQueue) Next() InputFrame {
	if len(q.buf) == 0 {
		return NoInput
	}
	sym := q.buf[0]
	copy(q.buf, q.buf[1:])
	q.buf = q.buf[:len(q.buf)-1]
	return KeyFrame(sym)
}

// Len returns the number of pending symbols.
func (q *InputQueue) Len() int {
	return len(q.buf)
}
