package render

import (
	"image/color"
	"math"
	"testing"

	"github.com/iburimskiy/wheel-view/internal/wheel"
)

var testColors = Colors{
	Normal: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
	Active: color.NRGBA{R: 0x54, G: 0xac, B: 0xf0, A: 255},
}

func TestShade(t *testing.T) {
	c := color.NRGBA{R: 200, G: 100, B: 50, A: 128}
	tests := []struct {
		shade float64
		want  color.NRGBA
	}{
		{1, c},
		{0.5, color.NRGBA{R: 100, G: 50, B: 25, A: 128}},
		{0, color.NRGBA{A: 128}},
		{2, c},
	}
	for _, tt := range tests {
		if got := Shade(c, tt.shade); got != tt.want {
			t.Errorf("Shade(%v) = %+v, want %+v", tt.shade, got, tt.want)
		}
	}
}

func TestPlanMarks(t *testing.T) {
	vp := wheel.Viewport{Width: 200, Height: 64, Insets: wheel.Insets{Bottom: 32}}
	f := &wheel.Frame{
		Slots: []wheel.Slot{
			{X: 10, Scale: 1, Shade: 1},
			{X: 50, Scale: 0.9, Shade: 0.5, Active: true},
			{X: 100, Scale: 1, Shade: 1, Zero: true},
		},
	}
	r := New(DefaultStyle())
	sc := r.Plan(f, vp, testColors)

	if len(sc.Marks) != 3 {
		t.Fatalf("expected 3 marks, got %d", len(sc.Marks))
	}

	normal := sc.Marks[0]
	if normal.Color != testColors.Normal || normal.Width != 1 {
		t.Fatalf("normal mark %+v", normal)
	}
	// content is 32 high centred at 16
	if math.Abs(float64(normal.Bottom-normal.Top)-0.6*32) > 1e-4 || math.Abs(float64(normal.Top+normal.Bottom)/2-16) > 1e-4 {
		t.Fatalf("normal mark spans %v..%v", normal.Top, normal.Bottom)
	}

	active := sc.Marks[1]
	if active.Color != Shade(testColors.Active, 0.5) {
		t.Fatalf("active mark colour %+v", active.Color)
	}
	if math.Abs(float64(active.Bottom-active.Top)-0.6*32*0.9) > 1e-4 {
		t.Fatalf("active mark height %v", active.Bottom-active.Top)
	}

	zero := sc.Marks[2]
	if zero.Color != testColors.Active || zero.Width != 2 {
		t.Fatalf("zero mark %+v", zero)
	}
	if math.Abs(float64(zero.Bottom-zero.Top)-0.8*32) > 1e-4 {
		t.Fatalf("zero mark height %v", zero.Bottom-zero.Top)
	}
}

func TestPlanCursorCentred(t *testing.T) {
	vp := wheel.Viewport{Width: 200, Height: 40, Insets: wheel.Insets{Left: 10, Right: 30, Top: 4, Bottom: 4}}
	r := New(DefaultStyle())
	sc := r.Plan(&wheel.Frame{}, vp, testColors)

	c := sc.Cursor
	if c.Color != testColors.Active {
		t.Fatalf("cursor colour %+v", c.Color)
	}
	if math.Abs(float64(c.X+c.W/2)-90) > 1e-4 {
		t.Fatalf("cursor centre %v, want 90", c.X+c.W/2)
	}
	if c.Y != 4 || c.H != 32 || c.W != 3 {
		t.Fatalf("cursor %+v", c)
	}
}

func TestPlanFromLayout(t *testing.T) {
	w := wheel.NewLayout(40)
	vp := wheel.Viewport{Width: 200, Height: 32}
	f := w.Compute(0.4, vp, true)
	r := New(DefaultStyle())
	sc := r.Plan(f, vp, testColors)

	if len(sc.Marks) != len(f.Slots) {
		t.Fatalf("%d marks for %d slots", len(sc.Marks), len(f.Slots))
	}
	zeros := 0
	for _, m := range sc.Marks {
		if m.Width == 2 {
			zeros++
		}
		if m.X < 0 || m.X > 200 {
			t.Fatalf("mark at %v outside viewport", m.X)
		}
	}
	if zeros != 1 {
		t.Fatalf("expected one zero mark, got %d", zeros)
	}

	// the buffer is reused between frames
	again := r.Plan(w.Compute(2.5, vp, true), vp, testColors)
	if again != sc {
		t.Fatalf("scene not reused")
	}
}
