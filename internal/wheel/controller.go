package wheel

import (
	"log/slog"
	"math"
	"time"
)

const (
	// DragSensitivity converts dragged pixels to radians.
	DragSensitivity = 0.002
	// FlingSensitivity converts release velocity (px/s) to radians.
	FlingSensitivity = 0.0002

	// settling takes one second per radian travelled
	settleDurationPerRadian = time.Second
	decelerateFactor        = 2.5
)

// ScrollState is the interaction phase of the wheel.
type ScrollState int

const (
	ScrollIdle ScrollState = iota
	ScrollDragging
	ScrollSettling
)

func (s ScrollState) String() string {
	switch s {
	case ScrollIdle:
		return "idle"
	case ScrollDragging:
		return "dragging"
	case ScrollSettling:
		return "settling"
	default:
		return "unknown"
	}
}

type rotator interface {
	RadiansAngle() float64
	SetRadiansAngle(radians float64)
	MarksCount() int
}

type settleAnimation struct {
	start, end float64
	startTime  time.Time
	duration   time.Duration
}

// Controller turns drag events into angle changes and animates the wheel
// after a release.
type Controller struct {
	wheel rotator
	clock FrameClock
	log   *slog.Logger

	snapToMarks bool
	state       ScrollState
	lastX       float64

	anim       settleAnimation
	cancelTick func()

	onStateChanged func(ScrollState)
}

func newController(w rotator, clock FrameClock, log *slog.Logger) *Controller {
	return &Controller{wheel: w, clock: clock, log: log}
}

func (c *Controller) State() ScrollState { return c.state }

// BeginDrag starts a drag at pointer x, interrupting any settling.
func (c *Controller) BeginDrag(x float64) {
	c.stopTicking()
	c.lastX = x
	c.setState(ScrollDragging)
}

// MoveDrag rotates the wheel by the horizontal distance since the last event.
func (c *Controller) MoveDrag(x float64) {
	if c.state != ScrollDragging {
		return
	}
	delta := (c.lastX - x) * DragSensitivity
	c.lastX = x
	c.wheel.SetRadiansAngle(c.wheel.RadiansAngle() + delta)
}

// EndDrag releases the pointer with horizontal velocity vx in px/s.
func (c *Controller) EndDrag(vx float64) {
	if vx != 0 {
		target := c.wheel.RadiansAngle() - vx*FlingSensitivity
		if c.snapToMarks {
			target = NearestMarkAngle(target, c.wheel.MarksCount())
		}
		c.settle(target)
		return
	}
	c.release()
}

// CancelDrag resolves an interrupted drag as a release without velocity.
func (c *Controller) CancelDrag() {
	c.release()
}

// CancelSettling stops a settling animation where it is.
func (c *Controller) CancelSettling() {
	if c.state != ScrollSettling {
		return
	}
	c.stopTicking()
	c.setState(ScrollIdle)
}

func (c *Controller) release() {
	if c.snapToMarks {
		c.settle(NearestMarkAngle(c.wheel.RadiansAngle(), c.wheel.MarksCount()))
		return
	}
	c.setState(ScrollIdle)
}

func (c *Controller) settle(target float64) {
	c.stopTicking()
	c.setState(ScrollSettling)

	start := c.wheel.RadiansAngle()
	c.anim = settleAnimation{
		start:     start,
		end:       target,
		startTime: c.clock.Now(),
		duration:  SettleDuration(start, target),
	}
	c.log.Debug("settling", "from", start, "to", target, "duration", c.anim.duration)
	c.cancelTick = c.clock.Subscribe(c.tick)
}

func (c *Controller) tick() {
	if c.cancelTick == nil {
		return
	}
	elapsed := c.clock.Now().Sub(c.anim.startTime)
	if elapsed >= c.anim.duration {
		c.stopTicking()
		c.wheel.SetRadiansAngle(c.anim.end)
		c.setState(ScrollIdle)
		return
	}

	t := clamp01(float64(elapsed) / float64(c.anim.duration))
	c.wheel.SetRadiansAngle(c.anim.start + (c.anim.end-c.anim.start)*decelerate(t))
}

func (c *Controller) stopTicking() {
	if c.cancelTick != nil {
		c.cancelTick()
		c.cancelTick = nil
	}
}

func (c *Controller) setState(s ScrollState) {
	if c.state == s {
		return
	}
	c.log.Debug("scroll state", "from", c.state, "to", s)
	c.state = s
	if c.onStateChanged != nil {
		c.onStateChanged(s)
	}
}

// SettleDuration is proportional to the angular distance travelled.
func SettleDuration(from, to float64) time.Duration {
	return time.Duration(math.Abs(from-to) * float64(settleDurationPerRadian))
}

// NearestMarkAngle rounds angle to the closest multiple of the mark step.
func NearestMarkAngle(angle float64, marks int) float64 {
	step := twoPi / float64(max(marks, 1))
	return math.RoundToEven(angle/step) * step
}

func decelerate(t float64) float64 {
	return 1 - math.Pow(1-t, 2*decelerateFactor)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
