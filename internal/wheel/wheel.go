// Package wheel implements a horizontal wheel selector: a strip of tick
// marks projected from a rotating drum that can be dragged, flung and
// snapped to marks while reporting an absolute rotation angle.
//
// The package holds no platform code. The host feeds pointer events,
// ticks a FrameClock and paints the Frame returned by Wheel.Frame.
package wheel

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"math"
)

var ErrInvalidMarksCount = errors.New("marks count must be at least 1")

const (
	DefaultMarksCount = 40
	DefaultNormalARGB = 0xffffffff
	DefaultActiveARGB = 0xff54acf0
)

// Options is the initial configuration of a Wheel.
type Options struct {
	MarksCount         int
	NormalColor        color.NRGBA
	ActiveColor        color.NRGBA
	ShowActiveRange    bool
	SnapToMarks        bool
	EndLock            bool
	OnlyPositiveValues bool
}

func DefaultOptions() Options {
	return Options{
		MarksCount:      DefaultMarksCount,
		NormalColor:     ColorFromARGB(DefaultNormalARGB),
		ActiveColor:     ColorFromARGB(DefaultActiveARGB),
		ShowActiveRange: true,
	}
}

// Wheel is the selector state shared by the angle model, the layout and
// the interaction controller. It must be used from a single goroutine.
type Wheel struct {
	angle  Angle
	layout *Layout
	ctrl   *Controller
	log    *slog.Logger

	normalColor     color.NRGBA
	activeColor     color.NRGBA
	showActiveRange bool

	lastMark int

	onRotationChanged func(radians float64)
	onInvalidate      func()
	onMarkChanged     func(index int)
}

func New(clock FrameClock, opts Options, logger *slog.Logger) (*Wheel, error) {
	if opts.MarksCount < 1 {
		return nil, fmt.Errorf("new wheel: %w", ErrInvalidMarksCount)
	}
	if logger == nil {
		logger = slog.Default()
	}
	w := &Wheel{
		layout:          NewLayout(opts.MarksCount),
		log:             logger,
		normalColor:     opts.NormalColor,
		activeColor:     opts.ActiveColor,
		showActiveRange: opts.ShowActiveRange,
	}
	w.angle.endLock = opts.EndLock
	w.angle.onlyPositive = opts.OnlyPositiveValues
	w.ctrl = newController(w, clock, logger)
	w.ctrl.snapToMarks = opts.SnapToMarks
	w.lastMark = w.markIndex()
	return w, nil
}

// OnRotationChanged registers fn to receive every accepted angle.
func (w *Wheel) OnRotationChanged(fn func(radians float64)) { w.onRotationChanged = fn }

// OnScrollStateChanged registers fn to receive scroll state transitions.
func (w *Wheel) OnScrollStateChanged(fn func(ScrollState)) { w.ctrl.onStateChanged = fn }

// OnInvalidate registers fn to be called whenever the wheel needs a redraw.
func (w *Wheel) OnInvalidate(fn func()) { w.onInvalidate = fn }

// OnMarkChanged registers fn to be called when the nearest mark changes.
func (w *Wheel) OnMarkChanged(fn func(index int)) { w.onMarkChanged = fn }

func (w *Wheel) SetRadiansAngle(radians float64) {
	if w.angle.Set(radians) {
		w.log.Debug("end lock reached", "requested", radians, "stored", w.angle.Radians())
		w.ctrl.CancelSettling()
	}
	w.checkMark()
	w.invalidate()
	if w.onRotationChanged != nil {
		w.onRotationChanged(w.angle.Radians())
	}
}

func (w *Wheel) SetDegreesAngle(degrees float64) {
	w.SetRadiansAngle(DegreesToRadians(degrees))
}

func (w *Wheel) SetCompleteTurnFraction(fraction float64) {
	w.SetRadiansAngle(TurnsToRadians(fraction))
}

func (w *Wheel) RadiansAngle() float64         { return w.angle.Radians() }
func (w *Wheel) DegreesAngle() float64         { return w.angle.Degrees() }
func (w *Wheel) CompleteTurnFraction() float64 { return w.angle.Turns() }

func (w *Wheel) SetMarksCount(n int) error {
	if n < 1 {
		return fmt.Errorf("set marks count %d: %w", n, ErrInvalidMarksCount)
	}
	w.log.Debug("marks count", "count", n)
	w.layout.Resize(n)
	w.lastMark = w.markIndex()
	w.invalidate()
	return nil
}

func (w *Wheel) MarksCount() int { return w.layout.Marks() }

func (w *Wheel) SetNormalColor(c color.NRGBA) {
	w.normalColor = c
	w.invalidate()
}

func (w *Wheel) SetActiveColor(c color.NRGBA) {
	w.activeColor = c
	w.invalidate()
}

func (w *Wheel) NormalColor() color.NRGBA { return w.normalColor }
func (w *Wheel) ActiveColor() color.NRGBA { return w.activeColor }

func (w *Wheel) SetShowActiveRange(show bool) {
	w.showActiveRange = show
	w.invalidate()
}

func (w *Wheel) ShowActiveRange() bool { return w.showActiveRange }

func (w *Wheel) SetSnapToMarks(snap bool) {
	w.ctrl.snapToMarks = snap
	w.invalidate()
}

func (w *Wheel) SnapToMarks() bool { return w.ctrl.snapToMarks }

// SetEndLock limits the wheel to one turn in either direction.
func (w *Wheel) SetEndLock(lock bool) {
	w.angle.endLock = lock
	w.invalidate()
}

func (w *Wheel) EndLock() bool { return w.angle.endLock }

// SetOnlyPositiveValues folds negative angles into [0, 2π). The stored
// angle is folded on the next set.
func (w *Wheel) SetOnlyPositiveValues(only bool) {
	w.angle.onlyPositive = only
	w.invalidate()
}

func (w *Wheel) OnlyPositiveValues() bool { return w.angle.onlyPositive }

func (w *Wheel) ScrollState() ScrollState { return w.ctrl.State() }

func (w *Wheel) BeginDrag(x float64) { w.ctrl.BeginDrag(x) }
func (w *Wheel) MoveDrag(x float64)  { w.ctrl.MoveDrag(x) }
func (w *Wheel) EndDrag(vx float64)  { w.ctrl.EndDrag(vx) }
func (w *Wheel) CancelDrag()         { w.ctrl.CancelDrag() }

// Frame lays out the marks for the current angle.
func (w *Wheel) Frame(vp Viewport) *Frame {
	return w.layout.Compute(w.angle.Radians(), vp, w.showActiveRange)
}

func (w *Wheel) invalidate() {
	if w.onInvalidate != nil {
		w.onInvalidate()
	}
}

// markIndex returns the index of the mark closest to the cursor.
func (w *Wheel) markIndex() int {
	marks := w.layout.Marks()
	step := twoPi / float64(marks)
	i := int(math.Round(w.angle.Radians() / step))
	return ((i % marks) + marks) % marks
}

func (w *Wheel) checkMark() {
	i := w.markIndex()
	if i == w.lastMark {
		return
	}
	w.lastMark = i
	if w.onMarkChanged != nil {
		w.onMarkChanged(i)
	}
}

// ColorFromARGB converts a packed 0xAARRGGBB colour.
func ColorFromARGB(argb uint32) color.NRGBA {
	return color.NRGBA{
		A: uint8(argb >> 24),
		R: uint8(argb >> 16),
		G: uint8(argb >> 8),
		B: uint8(argb),
	}
}
