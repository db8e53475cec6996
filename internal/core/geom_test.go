package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"last column", 29, 12, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestVecArithmetic(t *testing.T) {
	a := V(3, -1)
	b := V(2, 5)

	if got := a.Add(b); got != V(5, 4) {
		t.Errorf("Add() = %v, expected (5,4)", got)
	}
	if got := a.Sub(b); got != V(1, -6) {
		t.Errorf("Sub() = %v, expected (1,-6)", got)
	}
	if a.String() != "(3,-1)" {
		t.Errorf("String() = %q", a.String())
	}
}

func TestMax(t *testing.T) {
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}

func TestColorANSI(t *testing.T) {
	tests := []struct {
		color Color
		index int
		ok    bool
	}{
		{ColorDefault, 0, false},
		{ColorBlack, 0, true},
		{ColorRed, 1, true},
		{ColorWhite, 7, true},
		{ColorBrightRed, 9, true},
		{ColorBrightCyan, 14, true},
		{ColorBrightWhite, 15, true},
	}

	for _, tc := range tests {
		index, ok := tc.color.ANSI()
		if index != tc.index || ok != tc.ok {
			t.Errorf("Color(%d).ANSI() = (%d, %v), expected (%d, %v)", tc.color, index, ok, tc.index, tc.ok)
		}
	}
}
