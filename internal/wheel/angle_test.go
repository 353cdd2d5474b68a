package wheel

import (
	"math"
	"testing"
)

func TestAngleSetKeepsSign(t *testing.T) {
	for _, in := range []float64{0, 1, -1, 7, -7, 100.5, -100.5, 2 * math.Pi} {
		var a Angle
		a.Set(in)
		want := math.Mod(in, 2*math.Pi)
		if a.Radians() != want {
			t.Errorf("Set(%v) stored %v, want %v", in, a.Radians(), want)
		}
		if in != 0 && a.Radians() != 0 && math.Signbit(a.Radians()) != math.Signbit(in) {
			t.Errorf("Set(%v) flipped sign: %v", in, a.Radians())
		}
	}
}

func TestAngleOnlyPositive(t *testing.T) {
	a := Angle{onlyPositive: true}
	for _, in := range []float64{-1, -7, -2 * math.Pi, -1e-20, 3, 13} {
		a.Set(in)
		if r := a.Radians(); r < 0 || r >= 2*math.Pi {
			t.Errorf("Set(%v) stored %v outside [0, 2π)", in, r)
		}
	}
	a.Set(-1)
	if math.Abs(a.Radians()-(2*math.Pi-1)) > eps {
		t.Fatalf("Set(-1) stored %v", a.Radians())
	}
}

func TestAngleEndLock(t *testing.T) {
	tests := []struct {
		name         string
		onlyPositive bool
		in           float64
		want         float64
		clamped      bool
	}{
		{"upper bound", false, 2 * math.Pi, math.Nextafter(2*math.Pi, 0), true},
		{"past upper bound", false, 9, math.Nextafter(2*math.Pi, 0), true},
		{"lower bound", false, -2 * math.Pi, math.Nextafter(-2*math.Pi, 0), true},
		{"negative when positive only", true, -0.1, 0, true},
		{"inside", false, 5, 5, false},
		{"inside negative", false, -5, -5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Angle{endLock: true, onlyPositive: tt.onlyPositive}
			if got := a.Set(tt.in); got != tt.clamped {
				t.Fatalf("clamped = %v, want %v", got, tt.clamped)
			}
			if a.Radians() != tt.want {
				t.Fatalf("stored %v, want %v", a.Radians(), tt.want)
			}
		})
	}
}

func TestAngleEndLockStaysBelowBoundary(t *testing.T) {
	a := Angle{endLock: true}
	a.Set(2 * math.Pi)
	if a.Radians() >= 2*math.Pi {
		t.Fatalf("stored %v, want < 2π", a.Radians())
	}
	// a value just below the bound is accepted as is
	if a.Set(a.Radians()) {
		t.Fatalf("clamped value clamped again")
	}
}

func TestAngleUnits(t *testing.T) {
	a := Angle{}
	a.Set(math.Pi)
	if math.Abs(a.Degrees()-180) > eps {
		t.Fatalf("π = %v°", a.Degrees())
	}
	if a.Turns() != 0.5 {
		t.Fatalf("π = %v turns", a.Turns())
	}
	if math.Abs(DegreesToRadians(180)-math.Pi) > eps || TurnsToRadians(0.5) != math.Pi {
		t.Fatalf("conversions not inverse")
	}
}
