package wheel

import "math"

const (
	// ShadeRange is how much a mark darkens at the edge of the wheel.
	ShadeRange = 0.7
	// ScaleRange is how much a mark shrinks at the edge of the wheel.
	ScaleRange = 0.1

	noMark = -1
)

// Insets are the paddings between the view bounds and the drawn content.
type Insets struct {
	Top, Left, Bottom, Right float64
}

// Viewport describes the area the wheel is projected onto.
type Viewport struct {
	Width, Height float64
	Insets        Insets
}

func (v Viewport) ContentWidth() float64  { return v.Width - v.Insets.Left - v.Insets.Right }
func (v Viewport) ContentHeight() float64 { return v.Height - v.Insets.Top - v.Insets.Bottom }

// Slot is one visible mark of the half wheel facing the viewer.
type Slot struct {
	X      float64 // horizontal position including the left inset
	Gap    float64 // distance from the previous slot
	Scale  float64
	Shade  float64
	Zero   bool // the mark of angle zero
	Active bool // mark belongs to the active range
}

// Frame is the layout of a single draw. It is only valid until the next
// call to Layout.Compute.
type Frame struct {
	Slots       []Slot
	TrailingGap float64 // space between the last slot and the right edge
	ZeroIndex   int
	Switches    [3]int
	Step        float64
	Offset      float64
}

// Layout projects marks of a rotating drum onto a flat viewport. Its
// buffers are sized for the visible half of the drum and reused between
// frames.
type Layout struct {
	marks  int
	gaps   []float64
	shades []float64
	scales []float64
	frame  Frame
}

func NewLayout(marks int) *Layout {
	l := &Layout{}
	l.Resize(marks)
	return l
}

// Resize reallocates the per-slot buffers for a new mark count.
func (l *Layout) Resize(marks int) {
	if marks < 1 {
		marks = 1
	}
	visible := marks/2 + 1
	l.marks = marks
	l.gaps = make([]float64, visible)
	l.shades = make([]float64, visible)
	l.scales = make([]float64, visible)
	l.frame.Slots = make([]Slot, 0, visible)
}

func (l *Layout) Marks() int { return l.marks }

// Compute lays out the marks for the given angle.
func (l *Layout) Compute(angle float64, vp Viewport, showActiveRange bool) *Frame {
	step := twoPi / float64(l.marks)
	offset := positiveMod(math.Pi/2-angle, step)

	trailing := l.setupGaps(step, offset, vp.ContentWidth())
	l.setupShadesAndScales(step, offset)
	zero := ZeroIndex(angle, step)
	switches := ColorSwitches(angle, step, offset, zero, showActiveRange)

	f := &l.frame
	f.Slots = f.Slots[:0]
	f.TrailingGap = trailing
	f.ZeroIndex = zero
	f.Switches = switches
	f.Step = step
	f.Offset = offset

	x := vp.Insets.Left
	active := false
	pointer := 0
	for i, gap := range l.gaps {
		if gap == noMark {
			break
		}
		x += gap
		for pointer < len(switches) && i == switches[pointer] {
			active = !active
			pointer++
		}
		f.Slots = append(f.Slots, Slot{
			X:      x,
			Gap:    gap,
			Scale:  l.scales[i],
			Shade:  l.shades[i],
			Zero:   i == zero,
			Active: active,
		})
	}
	return f
}

// setupGaps fills the gap buffer scaled to width and returns the scaled
// trailing gap.
func (l *Layout) setupGaps(step, offset, width float64) float64 {
	if offset > math.Pi {
		// with one or two marks the nearest one can be behind the drum
		for i := range l.gaps {
			l.gaps[i] = noMark
		}
		return width
	}

	l.gaps[0] = math.Sin(offset / 2)
	sum := l.gaps[0]
	angle := offset
	n := 1
	for angle+step <= math.Pi && n < len(l.gaps) {
		l.gaps[n] = math.Sin(angle + step/2)
		sum += l.gaps[n]
		angle += step
		n++
	}
	last := math.Sin((math.Pi + angle) / 2)
	sum += last

	for i := n; i < len(l.gaps); i++ {
		l.gaps[i] = noMark
	}

	if sum <= 0 {
		return 0
	}
	k := width / sum
	for i := 0; i < n; i++ {
		l.gaps[i] *= k
	}
	return last * k
}

func (l *Layout) setupShadesAndScales(step, offset float64) {
	angle := offset
	for i := range l.shades {
		sin := math.Sin(angle)
		l.shades[i] = 1 - ShadeRange*(1-sin)
		l.scales[i] = 1 - ScaleRange*(1-sin)
		angle += step
	}
}

// ZeroIndex returns the slot of the zero mark, or -1 when it is
// on the far side of the wheel.
func ZeroIndex(angle, step float64) int {
	normalized := positiveMod(angle+math.Pi/2, twoPi)
	if normalized > math.Pi {
		return -1
	}
	return int((math.Pi - normalized) / step)
}

// ColorSwitches returns the slot indices where the paint alternates
// between the normal and the active colour, walking from the left edge.
// Unused entries are -1.
func ColorSwitches(angle, step, offset float64, zeroIndex int, showActiveRange bool) [3]int {
	if !showActiveRange {
		return [3]int{-1, -1, -1}
	}

	afterMiddle := 0
	if offset < math.Pi/2 {
		afterMiddle = int((math.Pi/2-offset)/step) + 1
	}

	switch {
	case angle > 3*math.Pi/2:
		return [3]int{0, afterMiddle, zeroIndex}
	case angle >= 0:
		return [3]int{max(0, zeroIndex), afterMiddle, -1}
	case angle < -3*math.Pi/2:
		return [3]int{0, zeroIndex, afterMiddle}
	default:
		return [3]int{afterMiddle, zeroIndex, -1}
	}
}
