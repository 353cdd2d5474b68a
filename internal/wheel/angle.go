package wheel

import "math"

const twoPi = 2 * math.Pi

// Angle holds the wheel rotation in radians.
type Angle struct {
	radians      float64
	endLock      bool
	onlyPositive bool
}

// Set stores radians and reports whether the end lock clamped the value.
func (a *Angle) Set(radians float64) bool {
	clamped := a.clamp(radians)
	if !clamped {
		a.radians = math.Mod(radians, twoPi)
	}
	if a.onlyPositive && a.radians < 0 {
		a.radians += twoPi
		// -tiny + 2π rounds to 2π
		if a.radians >= twoPi {
			a.radians = 0
		}
	}
	return clamped
}

// clamp keeps the value strictly inside ±2π so the next set at the
// boundary compares differently.
func (a *Angle) clamp(radians float64) bool {
	if !a.endLock {
		return false
	}
	switch {
	case radians >= twoPi:
		a.radians = math.Nextafter(twoPi, 0)
	case a.onlyPositive && radians < 0:
		a.radians = 0
	case radians <= -twoPi:
		a.radians = math.Nextafter(-twoPi, 0)
	default:
		return false
	}
	return true
}

func (a *Angle) Radians() float64 { return a.radians }

func (a *Angle) Degrees() float64 { return a.radians * 180 / math.Pi }

// Turns returns the angle as a fraction of a complete turn.
func (a *Angle) Turns() float64 { return a.radians / twoPi }

func DegreesToRadians(deg float64) float64 { return deg * math.Pi / 180 }

func TurnsToRadians(turns float64) float64 { return turns * twoPi }

// positiveMod returns x mod m in [0, m).
func positiveMod(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	if r >= m {
		r = 0
	}
	return r
}
