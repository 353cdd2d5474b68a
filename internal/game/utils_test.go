package game

import "testing"

func TestPointerColor(t *testing.T) {
	red := pointerColor(0)
	if red.A != 255 || red.R <= red.G || red.R <= red.B {
		t.Fatalf("pointerColor(0) = %+v, want a red tint", red)
	}
	// the same dial position in both directions
	tests := [][2]float64{{-120, 240}, {360, 0}, {-300, 60}}
	for _, tt := range tests {
		if got, want := pointerColor(tt[0]), pointerColor(tt[1]); got != want {
			t.Errorf("pointerColor(%v) = %+v, want %+v", tt[0], got, want)
		}
	}
}

func TestFormatDegrees(t *testing.T) {
	tests := map[float64]string{
		0:      "0.0 deg",
		-0.01:  "0.0 deg",
		12.345: "12.3 deg",
		-90:    "-90.0 deg",
	}
	for in, want := range tests {
		if got := formatDegrees(in); got != want {
			t.Errorf("formatDegrees(%v) = %q, want %q", in, got, want)
		}
	}
}
