package components

import (
	"math"
	"strings"
	"testing"
)

func TestBar_Filled(t *testing.T) {
	tests := []struct {
		name       string
		value, max float64
		want       int
	}{
		{"empty", 0, 100, 0},
		{"half", 50, 100, 10},
		{"low band", 40, 100, 8},
		{"high band", 70, 100, 14},
		{"full", 100, 100, 20},
		{"over max", 150, 100, 20},
		{"zero max", 10, 0, 0},
		{"negative value", -5, 100, 0},
		{"nan", math.NaN(), 100, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBar(20)
			b.Set(tt.value, tt.max)
			if got := b.Filled(); got != tt.want {
				t.Errorf("Filled() = %d, want %d", got, tt.want)
			}
			if got := strings.Count(b.View(), "█") + strings.Count(b.View(), "░"); got != 20 {
				t.Errorf("expected 20 cells, got %d", got)
			}
		})
	}
}

func TestHelpBar_View(t *testing.T) {
	h := NewHelpBar(KeyBinding{Key: "tab", Desc: "next"}, KeyBinding{Key: "esc", Desc: "quit"})
	view := h.View()
	for _, want := range []string{"tab", "next", "esc", "quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in %q", want, view)
		}
	}
}
