// Package render turns a wheel layout into drawing primitives and paints
// them with ebiten.
package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/wheel-view/internal/wheel"
)

// Style holds the mark and cursor geometry. Heights are relative to the
// content height of the viewport.
type Style struct {
	NormalMarkWidth     float64
	ZeroMarkWidth       float64
	CursorWidth         float64
	CursorCornerRadius  float64
	NormalMarkRelHeight float64
	ZeroMarkRelHeight   float64
	CursorRelHeight     float64
}

func DefaultStyle() Style {
	return Style{
		NormalMarkWidth:     1,
		ZeroMarkWidth:       2,
		CursorWidth:         3,
		CursorCornerRadius:  1,
		NormalMarkRelHeight: 0.6,
		ZeroMarkRelHeight:   0.8,
		CursorRelHeight:     1,
	}
}

// Colors are the two paints of the wheel.
type Colors struct {
	Normal color.NRGBA
	Active color.NRGBA
}

// Line is a vertical mark.
type Line struct {
	X, Top, Bottom float32
	Width          float32
	Color          color.NRGBA
}

// Rect is a filled rounded rectangle.
type Rect struct {
	X, Y, W, H float32
	Radius     float32
	Color      color.NRGBA
}

// Scene is everything needed to paint one frame of the wheel.
type Scene struct {
	Marks  []Line
	Cursor Rect
}

// Renderer keeps the scene buffer between frames.
type Renderer struct {
	style Style
	scene Scene

	whiteImage *ebiten.Image
	vertices   []ebiten.Vertex
	indices    []uint16
}

func New(style Style) *Renderer {
	return &Renderer{style: style}
}

// Plan converts a frame into primitives. The returned scene is reused by
// the next call.
func (r *Renderer) Plan(f *wheel.Frame, vp wheel.Viewport, colors Colors) *Scene {
	st := r.style
	height := vp.ContentHeight()
	centerY := vp.Insets.Top + height/2

	r.scene.Marks = r.scene.Marks[:0]
	for _, s := range f.Slots {
		var (
			h     float64
			width float64
			c     color.NRGBA
		)
		switch {
		case s.Zero:
			h = height * st.ZeroMarkRelHeight * s.Scale
			width = st.ZeroMarkWidth
			c = colors.Active
		case s.Active:
			h = height * st.NormalMarkRelHeight * s.Scale
			width = st.NormalMarkWidth
			c = colors.Active
		default:
			h = height * st.NormalMarkRelHeight * s.Scale
			width = st.NormalMarkWidth
			c = colors.Normal
		}
		r.scene.Marks = append(r.scene.Marks, Line{
			X:      float32(s.X),
			Top:    float32(centerY - h/2),
			Bottom: float32(centerY + h/2),
			Width:  float32(width),
			Color:  Shade(c, s.Shade),
		})
	}

	ch := height * st.CursorRelHeight
	r.scene.Cursor = Rect{
		X:      float32(vp.Insets.Left + (vp.ContentWidth()-st.CursorWidth)/2),
		Y:      float32(centerY - ch/2),
		W:      float32(st.CursorWidth),
		H:      float32(ch),
		Radius: float32(st.CursorCornerRadius),
		Color:  colors.Active,
	}
	return &r.scene
}

// Draw paints the scene onto dst.
func (r *Renderer) Draw(dst *ebiten.Image, sc *Scene) {
	for _, m := range sc.Marks {
		vector.StrokeLine(dst, m.X, m.Top, m.X, m.Bottom, m.Width, m.Color, true)
	}
	r.fillRoundedRect(dst, sc.Cursor)
}

func (r *Renderer) fillRoundedRect(dst *ebiten.Image, rc Rect) {
	if rc.W <= 0 || rc.H <= 0 {
		return
	}
	rad := min(rc.Radius, rc.W/2, rc.H/2)
	x0, y0 := rc.X, rc.Y
	x1, y1 := rc.X+rc.W, rc.Y+rc.H

	var path vector.Path
	path.MoveTo(x0+rad, y0)
	path.LineTo(x1-rad, y0)
	path.QuadTo(x1, y0, x1, y0+rad)
	path.LineTo(x1, y1-rad)
	path.QuadTo(x1, y1, x1-rad, y1)
	path.LineTo(x0+rad, y1)
	path.QuadTo(x0, y1, x0, y1-rad)
	path.LineTo(x0, y0+rad)
	path.QuadTo(x0, y0, x0+rad, y0)
	path.Close()

	r.vertices, r.indices = path.AppendVerticesAndIndicesForFilling(r.vertices[:0], r.indices[:0])
	cr, cg, cb, ca := rc.Color.RGBA()
	for i := range r.vertices {
		r.vertices[i].SrcX = 1
		r.vertices[i].SrcY = 1
		r.vertices[i].ColorR = float32(cr) / 0xffff
		r.vertices[i].ColorG = float32(cg) / 0xffff
		r.vertices[i].ColorB = float32(cb) / 0xffff
		r.vertices[i].ColorA = float32(ca) / 0xffff
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(r.vertices, r.indices, r.white(), op)
}

func (r *Renderer) white() *ebiten.Image {
	if r.whiteImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		r.whiteImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return r.whiteImage
}

// Shade darkens c by multiplying its colour channels with s, keeping alpha.
func Shade(c color.NRGBA, s float64) color.NRGBA {
	if s < 0 {
		s = 0
	}
	if s > 1 {
		s = 1
	}
	return color.NRGBA{
		R: uint8(float64(c.R)*s + 0.5),
		G: uint8(float64(c.G)*s + 0.5),
		B: uint8(float64(c.B)*s + 0.5),
		A: c.A,
	}
}
