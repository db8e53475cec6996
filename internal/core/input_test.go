package core

import "testing"

func TestActionForSymbol(t *testing.T) {
	tests := []struct {
		sym    rune
		action Action
	}{
		{'w', ActionUp},
		{'s', ActionDown},
		{'a', ActionLeft},
		{'d', ActionRight},
		{' ', ActionFire},
		{'p', ActionPause},
		{'r', ActionRestart},
		{'q', ActionQuit},
		{'x', ActionNone},
		{'W', ActionNone},
	}

	for _, tc := range tests {
		if got := ActionForSymbol(tc.sym); got != tc.action {
			t.Errorf("ActionForSymbol(%q) = %v, expected %v", tc.sym, got, tc.action)
		}
	}
}

func TestInputFrameAction(t *testing.T) {
	if NoInput.Action() != ActionNone {
		t.Error("empty frame should map to ActionNone")
	}
	if KeyFrame('d').Action() != ActionRight {
		t.Error("KeyFrame('d') should map to ActionRight")
	}
}

func TestInputQueue(t *testing.T) {
	q := NewInputQueue(2)

	if !q.Push('w') || !q.Push('d') {
		t.Fatal("Push should accept up to capacity")
	}
	if q.Push(' ') {
		t.Error("Push beyond capacity should be rejected")
	}

	if f := q.Next(); f != KeyFrame('w') {
		t.Errorf("first Next() = %+v, expected 'w'", f)
	}
	if f := q.Next(); f != KeyFrame('d') {
		t.Errorf("second Next() = %+v, expected 'd'", f)
	}
	if f := q.Next(); f != NoInput {
		t.Errorf("Next() on empty queue = %+v, expected NoInput", f)
	}
	if q.Len() != 0 {
		t.Errorf("Len() = %d, expected 0", q.Len())
	}
}
