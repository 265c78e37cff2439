//go:build js
// +build js

// Package web binds the engine to the browser through gopherjs.
package web

import (
	"image/color"

	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/psychedelic-chaos/common"
)

// CanvasSurface draws on a 2D canvas context.
type CanvasSurface struct {
	Canvas *js.Object
	Ctx    *js.Object
	w, h   float64
}

// NewCanvasSurface wraps canvas and sizes it to w x h.
func NewCanvasSurface(canvas *js.Object, w, h float64) *CanvasSurface {
	s := &CanvasSurface{
		Canvas: canvas,
		Ctx:    canvas.Call("getContext", "2d"),
	}
	s.Resize(w, h)
	return s
}

func (s *CanvasSurface) Size() (float64, float64) {
	return s.w, s.h
}

// Resize sets the backing store size. The browser clears the canvas.
func (s *CanvasSurface) Resize(w, h float64) {
	s.w, s.h = w, h
	s.Canvas.Set("width", int(w))
	s.Canvas.Set("height", int(h))
}

func (s *CanvasSurface) Clear() {
	s.Ctx.Call("clearRect", 0, 0, s.w, s.h)
}

func (s *CanvasSurface) FillRect(x, y, w, h float64, c color.Color) {
	s.Ctx.Set("fillStyle", common.CSSColor(c))
	s.Ctx.Call("fillRect", x, y, w, h)
}

func (s *CanvasSurface) StrokeLine(x1, y1, x2, y2, width float64, c color.Color) {
	ctx := s.Ctx
	ctx.Set("strokeStyle", common.CSSColor(c))
	ctx.Set("lineWidth", width)
	ctx.Call("beginPath")
	ctx.Call("moveTo", x1, y1)
	ctx.Call("lineTo", x2, y2)
	ctx.Call("stroke")
}

func (s *CanvasSurface) FillText(text string, x, y float64, c color.Color) {
	s.Ctx.Set("font", "12px monospace")
	s.Ctx.Set("fillStyle", common.CSSColor(c))
	s.Ctx.Call("fillText", text, x, y)
}

func (s *CanvasSurface) SetGlow(blur float64, c color.Color) {
	s.Ctx.Set("shadowBlur", blur)
	if c != nil {
		s.Ctx.Set("shadowColor", common.CSSColor(c))
	}
}
