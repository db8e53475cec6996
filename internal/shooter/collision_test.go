package shooter

import (
	"testing"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

func TestCollidesWithShip(t *testing.T) {
	ship := core.V(10, 10)

	tests := []struct {
		name     string
		p        core.Vec
		expected bool
	}{
		{"hull top", core.V(12, 9), true},
		{"hull middle", core.V(12, 10), true},
		{"hull bottom", core.V(12, 11), true},
		{"nose", core.V(13, 10), true},
		{"nose tip", core.V(14, 10), true},
		{"exhaust", core.V(10, 10), false},
		{"thruster", core.V(11, 9), false},
		{"weapon", core.V(15, 10), false},
		{"powerup tip slot", core.V(13, 9), false},
		{"far away", core.V(30, 3), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CollidesWithShip(ship, tc.p); got != tc.expected {
				t.Errorf("CollidesWithShip(%v, %v) = %v, expected %v", ship, tc.p, got, tc.expected)
			}
		})
	}
}

func TestHitboxInsideSprite(t *testing.T) {
	sprite := make(map[core.Vec]bool)
	for _, part := range shipSprite {
		sprite[part.off] = true
	}
	for _, cell := range shipHitbox {
		if !sprite[cell] {
			t.Errorf("hitbox cell %v is not part of the sprite", cell)
		}
	}
	if len(shipHitbox) != 5 {
		t.Errorf("hitbox has %d cells, expected 5", len(shipHitbox))
	}
}
