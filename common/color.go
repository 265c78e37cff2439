package common

import (
	"image/color"
	"math"
	"strconv"
)

// HSL is a hue/saturation/lightness color with alpha. H is in degrees, S and
// L in percent, A in [0, 1]. It satisfies color.Color so every drawing
// back-end can consume it.
type HSL struct {
	H, S, L float64
	A       float64
}

// Hue builds an opaque HSL color.
func Hue(h, s, l float64) HSL {
	return HSL{H: h, S: s, L: l, A: 1}
}

// WithAlpha returns a copy with the alpha replaced.
func (c HSL) WithAlpha(a float64) HSL {
	c.A = a
	return c
}

func (c HSL) normalized() (h, s, l, a float64) {
	h = math.Mod(c.H, 360)
	if h < 0 {
		h += 360
	}
	s = clamp(c.S, 0, 100) / 100
	l = clamp(c.L, 0, 100) / 100
	a = clamp(c.A, 0, 1)
	return
}

// RGBA implements color.Color with alpha-premultiplied 16-bit channels.
func (c HSL) RGBA() (r, g, b, a uint32) {
	h, s, l, alpha := c.normalized()
	rf, gf, bf := hslToRGB(h, s, l)
	a16 := alpha * 0xffff
	return uint32(rf * a16), uint32(gf * a16), uint32(bf * a16), uint32(a16)
}

// CSS renders the color as a canvas fillStyle string.
func (c HSL) CSS() string {
	h, _, _, a := c.normalized()
	s := clamp(c.S, 0, 100)
	l := clamp(c.L, 0, 100)
	body := strconv.FormatFloat(h, 'f', 1, 64) + ", " +
		strconv.FormatFloat(s, 'f', 1, 64) + "%, " +
		strconv.FormatFloat(l, 'f', 1, 64) + "%"
	if a >= 1 {
		return "hsl(" + body + ")"
	}
	return "hsla(" + body + ", " + strconv.FormatFloat(a, 'f', 3, 64) + ")"
}

// CSSColor renders any color.Color as an rgba() string.
func CSSColor(c color.Color) string {
	if h, ok := c.(HSL); ok {
		return h.CSS()
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return "rgba(" + strconv.Itoa(int(n.R)) + ", " + strconv.Itoa(int(n.G)) + ", " +
		strconv.Itoa(int(n.B)) + ", " + strconv.FormatFloat(float64(n.A)/255, 'f', 3, 64) + ")"
}

func hslToRGB(h, s, l float64) (r, g, b float64) {
	if s == 0 {
		return l, l, l
	}
	chroma := (1 - math.Abs(2*l-1)) * s
	hp := h / 60
	x := chroma * (1 - math.Abs(math.Mod(hp, 2)-1))
	switch {
	case hp < 1:
		r, g, b = chroma, x, 0
	case hp < 2:
		r, g, b = x, chroma, 0
	case hp < 3:
		r, g, b = 0, chroma, x
	case hp < 4:
		r, g, b = 0, x, chroma
	case hp < 5:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}
	m := l - chroma/2
	return r + m, g + m, b + m
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
