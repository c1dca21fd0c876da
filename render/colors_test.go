package render

import (
	"testing"

	"github.com/lixenwraith/survivor/component"
)

// TestHealthColor verifies the gradient endpoints and midpoint
func TestHealthColor(t *testing.T) {
	tests := []struct {
		frac float64
		want RGB
	}{
		{-1, RgbHealthLow},
		{0, RgbHealthLow},
		{0.5, RgbHealthMid},
		{1, RgbHealthHigh},
		{2, RgbHealthHigh},
	}
	for _, tt := range tests {
		if got := HealthColor(tt.frac); got != tt.want {
			t.Errorf("HealthColor(%v) = %v, want %v", tt.frac, got, tt.want)
		}
	}
}

// TestMonsterPalette verifies every kind has a distinct glyph and unknown kinds fall back
func TestMonsterPalette(t *testing.T) {
	seen := make(map[rune]component.MonsterKind)
	for _, k := range component.MonsterKinds() {
		g := MonsterGlyph(k)
		if prev, ok := seen[g]; ok {
			t.Errorf("%s and %s share glyph %q", prev, k, g)
		}
		seen[g] = k
		if MonsterColor(k) == RgbHUDText {
			t.Errorf("%s uses fallback color", k)
		}
	}
	if MonsterGlyph(component.MonsterKindCount) != '?' {
		t.Error("unknown kind glyph")
	}
}

// TestLerpScale verifies color interpolation and scaling clamps
func TestLerpScale(t *testing.T) {
	a, b := RGB{0, 100, 200}, RGB{200, 100, 0}
	if got := Lerp(a, b, 0.5); got != (RGB{100, 100, 100}) {
		t.Errorf("Lerp mid = %v", got)
	}
	if got := Scale(RGB{200, 10, 0}, 2); got != (RGB{255, 20, 0}) {
		t.Errorf("Scale = %v", got)
	}
	if c := (RGB{1, 2, 3}).RGBA(); c.A != 0xff || c.R != 1 {
		t.Errorf("RGBA = %v", c)
	}
}
