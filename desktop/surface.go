//go:build !js
// +build !js

package desktop

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	// Debug font cell size
	glyphWidth  = 6
	glyphHeight = 16
	glyphAscent = 12

	maxGlyphs = 256

	// Share of the glow color painted around a glowing fill
	glowAlpha = 0.25
)

// ImageSurface is a chaos.Surface backed by an offscreen image. The image
// persists between frames, so translucent fills leave trails the same way
// the browser canvas does.
type ImageSurface struct {
	img       *ebiten.Image
	w, h      float64
	glow      float64
	glowColor color.Color
	glyphs    glyphCache
}

// NewImageSurface allocates a w by h surface.
func NewImageSurface(w, h int) *ImageSurface {
	s := &ImageSurface{glyphs: glyphCache{}}
	s.Resize(float64(w), float64(h))
	return s
}

// Image returns the backing image.
func (s *ImageSurface) Image() *ebiten.Image {
	return s.img
}

func (s *ImageSurface) Size() (float64, float64) {
	return s.w, s.h
}

// Resize reallocates the backing image. Its content is lost.
func (s *ImageSurface) Resize(w, h float64) {
	iw, ih := int(w), int(h)
	if iw < 1 {
		iw = 1
	}
	if ih < 1 {
		ih = 1
	}
	if s.img != nil {
		s.img.Deallocate()
	}
	s.img = ebiten.NewImage(iw, ih)
	s.w, s.h = w, h
}

func (s *ImageSurface) Clear() {
	s.img.Clear()
}

func (s *ImageSurface) FillRect(x, y, w, h float64, c color.Color) {
	if s.glow > 0 && s.glowColor != nil {
		g := s.glow / 2
		vector.DrawFilledRect(s.img, float32(x-g), float32(y-g), float32(w+2*g), float32(h+2*g),
			scaleAlpha(s.glowColor, glowAlpha), true)
	}
	vector.DrawFilledRect(s.img, float32(x), float32(y), float32(w), float32(h), c, false)
}

func (s *ImageSurface) StrokeLine(x1, y1, x2, y2, width float64, c color.Color) {
	vector.StrokeLine(s.img, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), c, true)
}

func (s *ImageSurface) FillText(str string, x, y float64, c color.Color) {
	s.glyphs.draw(s.img, str, x, y-glyphAscent, c, 1)
}

// SetGlow approximates the canvas shadow blur with a translucent halo.
func (s *ImageSurface) SetGlow(blur float64, c color.Color) {
	s.glow = blur
	s.glowColor = c
}

// glyphCache keeps rendered strings as white images that are tinted on draw.
type glyphCache map[string]*ebiten.Image

func (gc glyphCache) draw(dst *ebiten.Image, str string, x, top float64, c color.Color, scale float64) {
	if str == "" {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, top)
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(gc.lookup(str), op)
}

func (gc glyphCache) lookup(str string) *ebiten.Image {
	if img, ok := gc[str]; ok {
		return img
	}
	// Counters change every frame, so the cache is flushed instead of grown
	if len(gc) >= maxGlyphs {
		for k, img := range gc {
			img.Deallocate()
			delete(gc, k)
		}
	}
	img := ebiten.NewImage(len(str)*glyphWidth+1, glyphHeight)
	ebitenutil.DebugPrintAt(img, str, 0, 0)
	gc[str] = img
	return img
}

// scaleAlpha multiplies every premultiplied channel of c by f.
func scaleAlpha(c color.Color, f float64) color.Color {
	r, g, b, a := c.RGBA()
	return color.RGBA64{
		R: uint16(float64(r) * f),
		G: uint16(float64(g) * f),
		B: uint16(float64(b) * f),
		A: uint16(float64(a) * f),
	}
}
