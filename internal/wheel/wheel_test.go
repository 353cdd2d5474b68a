package wheel

import (
	"errors"
	"io"
	"log/slog"
	"math"
	"testing"
	"time"
)

const eps = 1e-9

type fakeClock struct {
	now  time.Time
	subs map[int]func()
	next int
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Unix(0, 0), subs: map[int]func(){}}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Subscribe(fn func()) func() {
	id := c.next
	c.next++
	c.subs[id] = fn
	return func() { delete(c.subs, id) }
}

// advance moves time forward and ticks every subscriber once.
func (c *fakeClock) advance(d time.Duration) {
	c.now = c.now.Add(d)
	for id, fn := range c.subs {
		if _, ok := c.subs[id]; ok {
			fn()
		}
	}
}

// run ticks in frame sized steps until no subscriber is left.
func (c *fakeClock) run(t *testing.T) {
	t.Helper()
	for i := 0; len(c.subs) > 0; i++ {
		if i > 10000 {
			t.Fatalf("animation did not finish")
		}
		c.advance(time.Second / 60)
	}
}

func newTestWheel(t *testing.T, opts Options) (*Wheel, *fakeClock) {
	t.Helper()
	clock := newFakeClock()
	w, err := New(clock, opts, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return w, clock
}

func TestNewRejectsZeroMarks(t *testing.T) {
	opts := DefaultOptions()
	opts.MarksCount = 0
	if _, err := New(newFakeClock(), opts, nil); !errors.Is(err, ErrInvalidMarksCount) {
		t.Fatalf("expected ErrInvalidMarksCount, got %v", err)
	}
}

func TestSetMarksCountValidates(t *testing.T) {
	w, _ := newTestWheel(t, DefaultOptions())
	if err := w.SetMarksCount(0); !errors.Is(err, ErrInvalidMarksCount) {
		t.Fatalf("expected ErrInvalidMarksCount, got %v", err)
	}
	if w.MarksCount() != DefaultMarksCount {
		t.Fatalf("marks count changed to %d", w.MarksCount())
	}
	if err := w.SetMarksCount(7); err != nil {
		t.Fatalf("SetMarksCount: %v", err)
	}
	f := w.Frame(Viewport{Width: 200, Height: 32})
	if len(f.Slots) > 7/2+1 {
		t.Fatalf("got %d slots for 7 marks", len(f.Slots))
	}
}

func TestSetRadiansAngleIsIdempotent(t *testing.T) {
	w, _ := newTestWheel(t, DefaultOptions())
	var got []float64
	w.OnRotationChanged(func(r float64) { got = append(got, r) })

	w.SetRadiansAngle(7.5)
	w.SetRadiansAngle(7.5)

	if len(got) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(got))
	}
	if got[0] != got[1] || w.RadiansAngle() != got[0] {
		t.Fatalf("notifications differ: %v, stored %v", got, w.RadiansAngle())
	}
	if want := math.Mod(7.5, 2*math.Pi); math.Abs(got[0]-want) > eps {
		t.Fatalf("expected %v, got %v", want, got[0])
	}
}

func TestAngleConversions(t *testing.T) {
	w, _ := newTestWheel(t, DefaultOptions())

	w.SetDegreesAngle(90)
	if math.Abs(w.RadiansAngle()-math.Pi/2) > eps {
		t.Fatalf("90° = %v rad", w.RadiansAngle())
	}
	if math.Abs(w.CompleteTurnFraction()-0.25) > eps {
		t.Fatalf("90° = %v turns", w.CompleteTurnFraction())
	}

	w.SetCompleteTurnFraction(-0.5)
	if math.Abs(w.DegreesAngle()+180) > eps {
		t.Fatalf("-0.5 turns = %v°", w.DegreesAngle())
	}
}

func TestEndLockCancelsSettling(t *testing.T) {
	opts := DefaultOptions()
	opts.EndLock = true
	w, clock := newTestWheel(t, opts)
	var states []ScrollState
	w.OnScrollStateChanged(func(s ScrollState) { states = append(states, s) })

	w.SetRadiansAngle(6)
	w.BeginDrag(0)
	// fling far past 2π
	w.EndDrag(-20000)
	if w.ScrollState() != ScrollSettling {
		t.Fatalf("expected settling, got %v", w.ScrollState())
	}
	clock.run(t)

	if w.RadiansAngle() >= 2*math.Pi {
		t.Fatalf("angle %v not below 2π", w.RadiansAngle())
	}
	if w.ScrollState() != ScrollIdle {
		t.Fatalf("expected idle after end lock, got %v", w.ScrollState())
	}
	want := []ScrollState{ScrollDragging, ScrollSettling, ScrollIdle}
	if len(states) != len(want) {
		t.Fatalf("states %v, want %v", states, want)
	}
	for i := range want {
		if states[i] != want[i] {
			t.Fatalf("states %v, want %v", states, want)
		}
	}
}

func TestMarkChangedFiresOnCrossing(t *testing.T) {
	opts := DefaultOptions()
	opts.MarksCount = 8
	w, _ := newTestWheel(t, opts)
	var marks []int
	w.OnMarkChanged(func(i int) { marks = append(marks, i) })

	w.SetRadiansAngle(0.1) // still mark 0
	w.SetRadiansAngle(math.Pi / 4)
	w.SetRadiansAngle(math.Pi/4 + 0.1)
	w.SetRadiansAngle(-math.Pi / 4)

	want := []int{1, 7}
	if len(marks) != len(want) || marks[0] != want[0] || marks[1] != want[1] {
		t.Fatalf("marks %v, want %v", marks, want)
	}
}

func TestSettersInvalidate(t *testing.T) {
	w, _ := newTestWheel(t, DefaultOptions())
	n := 0
	w.OnInvalidate(func() { n++ })

	w.SetShowActiveRange(false)
	w.SetSnapToMarks(true)
	w.SetEndLock(true)
	w.SetOnlyPositiveValues(true)
	w.SetNormalColor(ColorFromARGB(0xff000000))
	w.SetActiveColor(ColorFromARGB(0xffff0000))
	w.SetRadiansAngle(1)
	if err := w.SetMarksCount(12); err != nil {
		t.Fatalf("SetMarksCount: %v", err)
	}

	if n != 8 {
		t.Fatalf("expected 8 redraw requests, got %d", n)
	}
}

func TestColorFromARGB(t *testing.T) {
	c := ColorFromARGB(0x8054acf0)
	if c.A != 0x80 || c.R != 0x54 || c.G != 0xac || c.B != 0xf0 {
		t.Fatalf("unexpected colour %+v", c)
	}
}
