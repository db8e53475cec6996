package core

import (
	"testing"
	"time"
)

func TestTickInterval(t *testing.T) {
	tests := []struct {
		name string
		rate int
		want time.Duration
	}{
		{"default", 30, time.Second / 30},
		{"one per second", 1, time.Second},
		{"max", MaxTickRate, time.Millisecond},
		{"above max", 2_000_000_000, time.Millisecond},
		{"zero", 0, time.Second},
		{"negative", -5, time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := RuntimeConfig{TickRate: tt.rate}
			if got := cfg.TickInterval(); got != tt.want {
				t.Errorf("TickInterval() = %v, expected %v", got, tt.want)
			}
		})
	}
}
