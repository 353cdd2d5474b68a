package game

import (
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// dragTarget receives the drag gesture, implemented by wheel.Wheel.
type dragTarget interface {
	BeginDrag(x float64)
	MoveDrag(x float64)
	EndDrag(vx float64)
	CancelDrag()
}

type pointerSample struct {
	x float64
	t time.Time
}

// velocityTracker estimates horizontal velocity from recent samples.
type velocityTracker struct {
	window  time.Duration
	samples []pointerSample
}

func (v *velocityTracker) reset() { v.samples = v.samples[:0] }

func (v *velocityTracker) add(x float64, t time.Time) {
	v.samples = append(v.samples, pointerSample{x: x, t: t})
	v.prune(t)
}

func (v *velocityTracker) prune(now time.Time) {
	cut := 0
	for cut < len(v.samples) && now.Sub(v.samples[cut].t) > v.window {
		cut++
	}
	if cut > 0 {
		v.samples = append(v.samples[:0], v.samples[cut:]...)
	}
}

// velocity returns px/s over the window ending at now, zero when the
// pointer rested longer than the window.
func (v *velocityTracker) velocity(now time.Time) float64 {
	v.prune(now)
	if len(v.samples) < 2 {
		return 0
	}
	first, last := v.samples[0], v.samples[len(v.samples)-1]
	dt := last.t.Sub(first.t).Seconds()
	if dt <= 0 {
		return 0
	}
	return (last.x - first.x) / dt
}

// dragTracker turns raw pointer positions into drag gesture events.
type dragTracker struct {
	target   dragTarget
	tracker  velocityTracker
	dragging bool
	lastX    float64
}

func newDragTracker(target dragTarget, window time.Duration) *dragTracker {
	return &dragTracker{target: target, tracker: velocityTracker{window: window}}
}

func (d *dragTracker) press(x float64, now time.Time) {
	d.dragging = true
	d.lastX = x
	d.tracker.reset()
	d.tracker.add(x, now)
	d.target.BeginDrag(x)
}

func (d *dragTracker) move(x float64, now time.Time) {
	if !d.dragging || x == d.lastX {
		return
	}
	d.lastX = x
	d.tracker.add(x, now)
	d.target.MoveDrag(x)
}

func (d *dragTracker) release(now time.Time) {
	if !d.dragging {
		return
	}
	d.dragging = false
	// the rest before release counts, a held pointer loses its speed
	d.tracker.add(d.lastX, now)
	d.target.EndDrag(d.tracker.velocity(now))
}

func (d *dragTracker) cancel() {
	if !d.dragging {
		return
	}
	d.dragging = false
	d.target.CancelDrag()
}

// pointerInput polls ebiten for a single mouse or touch pointer.
type pointerInput struct {
	drag    *dragTracker
	touch   bool
	touchID ebiten.TouchID
}

func (p *pointerInput) update(area image.Rectangle, now time.Time) {
	touches := ebiten.AppendTouchIDs(nil)

	if !p.drag.dragging {
		if id, ok := justPressedTouch(); ok {
			x, y := ebiten.TouchPosition(id)
			if len(touches) == 1 && image.Pt(x, y).In(area) {
				p.touch, p.touchID = true, id
				p.drag.press(float64(x), now)
			}
			return
		}
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			x, y := ebiten.CursorPosition()
			if image.Pt(x, y).In(area) {
				p.touch = false
				p.drag.press(float64(x), now)
			}
		}
		return
	}

	if p.touch {
		if len(touches) > 1 {
			p.drag.cancel()
			return
		}
		if inpututil.IsTouchJustReleased(p.touchID) {
			p.drag.release(now)
			return
		}
		x, _ := ebiten.TouchPosition(p.touchID)
		p.drag.move(float64(x), now)
		return
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		p.drag.release(now)
		return
	}
	x, _ := ebiten.CursorPosition()
	p.drag.move(float64(x), now)
}

func justPressedTouch() (ebiten.TouchID, bool) {
	ids := inpututil.AppendJustPressedTouchIDs(nil)
	if len(ids) == 0 {
		return 0, false
	}
	return ids[0], true
}
