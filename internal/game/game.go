// Package game hosts the wheel in an ebiten window: pointer input, the
// frame clock, click feedback and the sample screen around the wheel.
package game

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/wheel-view/internal/config"
	"github.com/iburimskiy/wheel-view/internal/render"
	"github.com/iburimskiy/wheel-view/internal/wheel"
)

const (
	pointerLength = 70
	pointerWidth  = 4
	dialMarginX   = 120
	wheelMarginY  = 24
)

var (
	backgroundColor = color.RGBA{R: 18, G: 20, B: 28, A: 255}
	wheelBackground = color.RGBA{R: 30, G: 34, B: 46, A: 255}
	dialColor       = color.RGBA{R: 60, G: 70, B: 90, A: 255}
)

var hotkeys = []ebiten.Key{
	ebiten.KeyS,
	ebiten.KeyL,
	ebiten.KeyP,
	ebiten.KeyA,
	ebiten.KeyM,
	ebiten.KeyArrowUp,
	ebiten.KeyArrowDown,
	ebiten.KeyN,
	ebiten.KeyC,
	ebiten.KeyF,
	ebiten.KeyDigit0,
	ebiten.KeyH,
	ebiten.KeyEscape,
	ebiten.KeyQ,
}

const helpText = `S: snap to marks    L: end lock
P: only positive    A: active range
M: click sound      Up/Down: marks
N/C: normal/active colour
F: click sound file 0: reset
H: hide help        Esc/Q: quit`

type Game struct {
	cfg config.Config
	log *slog.Logger

	wheel    *wheel.Wheel
	clock    *frameClock
	pointer  *pointerInput
	renderer *render.Renderer
	click    *clickPlayer

	vp     wheel.Viewport
	area   image.Rectangle
	canvas *ebiten.Image
	dirty  bool

	degreesLabel string

	// input edge detection
	prevKey map[ebiten.Key]bool

	showHelp bool
	lastErr  error

	pickColor     func(title string, c color.NRGBA) (color.NRGBA, error)
	pickClickFile func() (string, error)
}

func New(cfg config.Config, log *slog.Logger) (*Game, error) {
	normal, err := config.ParseColor(cfg.Wheel.NormalColor)
	if err != nil {
		return nil, fmt.Errorf("normal colour: %w", err)
	}
	active, err := config.ParseColor(cfg.Wheel.ActiveColor)
	if err != nil {
		return nil, fmt.Errorf("active colour: %w", err)
	}

	g := &Game{
		cfg:           cfg,
		log:           log,
		clock:         newFrameClock(nil),
		renderer:      render.New(render.DefaultStyle()),
		prevKey:       map[ebiten.Key]bool{},
		showHelp:      true,
		dirty:         true,
		pickColor:     pickColor,
		pickClickFile: pickClickFile,
	}

	w, err := wheel.New(g.clock, wheel.Options{
		MarksCount:         cfg.Wheel.MarksCount,
		NormalColor:        normal,
		ActiveColor:        active,
		ShowActiveRange:    cfg.Wheel.ShowActiveRange,
		SnapToMarks:        cfg.Wheel.SnapToMarks,
		EndLock:            cfg.Wheel.EndLock,
		OnlyPositiveValues: cfg.Wheel.OnlyPositiveValues,
	}, log.With("component", "wheel"))
	if err != nil {
		return nil, err
	}
	g.wheel = w
	g.degreesLabel = formatDegrees(w.DegreesAngle())

	g.click = newClickPlayer(cfg.Feedback, log.With("component", "sound"))
	if cfg.Feedback.Sound {
		g.click.setEnabled(true)
	}

	w.OnInvalidate(func() { g.dirty = true })
	w.OnRotationChanged(func(float64) {
		g.degreesLabel = formatDegrees(w.DegreesAngle())
	})
	w.OnMarkChanged(func(int) { g.click.play() })
	w.OnScrollStateChanged(func(s wheel.ScrollState) {
		log.Debug("scroll state", "state", s, "degrees", w.DegreesAngle())
	})

	g.vp = wheel.Viewport{
		Width:  float64(cfg.Wheel.Width),
		Height: float64(cfg.Wheel.Height),
		Insets: wheel.Insets{Bottom: float64(cfg.Wheel.PaddingBottom)},
	}
	x := (cfg.Window.Width - cfg.Wheel.Width) / 2
	y := cfg.Window.Height - cfg.Wheel.Height - wheelMarginY
	g.area = image.Rect(x, y, x+cfg.Wheel.Width, y+cfg.Wheel.Height)
	g.pointer = &pointerInput{
		drag: newDragTracker(w, config.VelocityWindowMS*time.Millisecond),
	}
	return g, nil
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	now := g.clock.Now()
	g.pointer.update(g.area, now)
	g.clock.Tick()

	for _, k := range hotkeys {
		if justPressed(k) {
			if err := g.handleKey(k); err != nil {
				return err
			}
		}
	}
	return nil
}

func (g *Game) handleKey(k ebiten.Key) error {
	w := g.wheel
	switch k {
	case ebiten.KeyS:
		w.SetSnapToMarks(!w.SnapToMarks())
		g.log.Info("snap to marks", "on", w.SnapToMarks())
	case ebiten.KeyL:
		w.SetEndLock(!w.EndLock())
		g.log.Info("end lock", "on", w.EndLock())
	case ebiten.KeyP:
		w.SetOnlyPositiveValues(!w.OnlyPositiveValues())
		g.log.Info("only positive values", "on", w.OnlyPositiveValues())
	case ebiten.KeyA:
		w.SetShowActiveRange(!w.ShowActiveRange())
		g.log.Info("show active range", "on", w.ShowActiveRange())
	case ebiten.KeyM:
		g.click.setEnabled(!g.click.enabled)
		g.log.Info("click sound", "on", g.click.enabled)
	case ebiten.KeyArrowUp:
		g.setMarksCount(w.MarksCount() + 1)
	case ebiten.KeyArrowDown:
		g.setMarksCount(w.MarksCount() - 1)
	case ebiten.KeyN:
		g.chooseColor("Normal Marks Colour", w.NormalColor(), w.SetNormalColor)
	case ebiten.KeyC:
		g.chooseColor("Active Marks Colour", w.ActiveColor(), w.SetActiveColor)
	case ebiten.KeyF:
		g.chooseClickFile()
	case ebiten.KeyDigit0:
		w.SetRadiansAngle(0)
	case ebiten.KeyH:
		g.showHelp = !g.showHelp
	case ebiten.KeyEscape, ebiten.KeyQ:
		return ebiten.Termination
	}
	return nil
}

func (g *Game) setMarksCount(n int) {
	n = max(config.MinMarksCount, min(config.MaxMarksCount, n))
	if n == g.wheel.MarksCount() {
		return
	}
	if err := g.wheel.SetMarksCount(n); err != nil {
		g.lastErr = err
		return
	}
	g.log.Info("marks count", "marks", n)
}

func (g *Game) chooseColor(title string, current color.NRGBA, set func(color.NRGBA)) {
	c, err := g.pickColor(title, current)
	if err != nil {
		if !errors.Is(err, zenity.ErrCanceled) {
			g.lastErr = err
		}
		return
	}
	g.lastErr = nil
	set(c)
	g.log.Info("colour changed", "which", title, "color", config.FormatColor(c))
}

func (g *Game) chooseClickFile() {
	path, err := g.pickClickFile()
	if err != nil {
		if !errors.Is(err, zenity.ErrCanceled) {
			g.lastErr = err
		}
		return
	}
	if err := g.click.setClip(path); err != nil {
		g.lastErr = err
		return
	}
	g.lastErr = nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	g.drawPointer(screen)
	g.drawWheel(screen)

	lw := len(g.degreesLabel) * 6
	ebitenutil.DebugPrintAt(screen, g.degreesLabel, (g.cfg.Window.Width-lw)/2, g.area.Min.Y-36)
	ebitenutil.DebugPrintAt(screen, "scroll: "+g.wheel.ScrollState().String(), 12, g.cfg.Window.Height-18)

	status := fmt.Sprintf("marks %d  snap %s  lock %s  positive %s  range %s  sound %s",
		g.wheel.MarksCount(),
		onOff(g.wheel.SnapToMarks()),
		onOff(g.wheel.EndLock()),
		onOff(g.wheel.OnlyPositiveValues()),
		onOff(g.wheel.ShowActiveRange()),
		onOff(g.click.enabled),
	)
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
	if g.showHelp {
		ebitenutil.DebugPrintAt(screen, helpText, 12, 36)
	}
}

// drawPointer draws a needle turned by the wheel angle, tinted by its
// position on the dial.
func (g *Game) drawPointer(screen *ebiten.Image) {
	cx := float32(g.cfg.Window.Width - dialMarginX)
	cy := float32(g.area.Min.Y)/2 + 10
	vector.StrokeCircle(screen, cx, cy, pointerLength+6, 2, dialColor, true)

	a := g.wheel.RadiansAngle() - math.Pi/2
	x := cx + float32(math.Cos(a)*pointerLength)
	y := cy + float32(math.Sin(a)*pointerLength)
	vector.StrokeLine(screen, cx, cy, x, y, pointerWidth, pointerColor(g.wheel.DegreesAngle()), true)
	vector.DrawFilledCircle(screen, cx, cy, pointerWidth*1.5, dialColor, true)
}

// drawWheel repaints the offscreen wheel only after it was invalidated.
func (g *Game) drawWheel(screen *ebiten.Image) {
	if g.canvas == nil {
		g.canvas = ebiten.NewImage(g.area.Dx(), g.area.Dy())
		g.dirty = true
	}
	if g.dirty {
		g.canvas.Fill(wheelBackground)
		sc := g.renderer.Plan(g.wheel.Frame(g.vp), g.vp, render.Colors{
			Normal: g.wheel.NormalColor(),
			Active: g.wheel.ActiveColor(),
		})
		g.renderer.Draw(g.canvas, sc)
		g.dirty = false
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(g.area.Min.X), float64(g.area.Min.Y))
	screen.DrawImage(g.canvas, op)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}
