package shooter

import (
	"fmt"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// CoordinateError is the panic value raised when a field coordinate outside
// the field is translated to the display. It always indicates a bug in the
// caller; the panic's goroutine trace identifies the offending call site.
type CoordinateError struct {
	X, Y int
	Size core.Vec
}

func (e *CoordinateError) Error() string {
	return fmt.Sprintf("coordinate (%d, %d) is not a valid field coordinate (field is %dx%d)",
		e.X, e.Y, e.Size.X, e.Size.Y)
}

// IsFieldCoordinate reports whether (x, y) lies inside the field.
func (gs *GameState) IsFieldCoordinate(x, y int) bool {
	return core.NewRect(0, 0, gs.FieldSize.X, gs.FieldSize.Y).Contains(x, y)
}

// FieldCellAt translates field-local (x, y) into absolute display coordinates.
// It panics with a *CoordinateError if the coordinate is outside the field.
func (gs *GameState) FieldCellAt(x, y int) core.Vec {
	if !gs.IsFieldCoordinate(x, y) {
		panic(&CoordinateError{X: x, Y: y, Size: gs.FieldSize})
	}
	return gs.FieldBegin.Add(core.V(x, y))
}
