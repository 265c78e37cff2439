package chaos

import (
	"image/color"

	"github.com/simukka/psychedelic-chaos/common"
)

// Surface is the 2D drawing target shared by every effect. Coordinates are
// in surface units with the origin at the top left.
type Surface interface {
	Size() (w, h float64)
	Resize(w, h float64)
	Clear()
	FillRect(x, y, w, h float64, c color.Color)
	StrokeLine(x1, y1, x2, y2, width float64, c color.Color)
	// FillText draws s in a 12 unit monospace font with its baseline at y.
	FillText(s string, x, y float64, c color.Color)
	// SetGlow sets the shadow blur applied to later fills. Zero disables it.
	SetGlow(blur float64, c color.Color)
}

// LabelID identifies a transient overlay label. Zero means no label.
type LabelID int

// Overlay holds transient on-screen artifacts that live outside the surface.
type Overlay interface {
	ShowLabel(text string, x, y float64, c color.Color) LabelID
	RemoveLabel(id LabelID)
	// RemoveAll drops every label and returns how many were removed.
	RemoveAll() int
	Count() int
}

// Controls reflects the active effect on the host's selector controls.
type Controls interface {
	ClearActive()
	MarkActive(id EffectID)
}

type noControls struct{}

func (noControls) ClearActive()        {}
func (noControls) MarkActive(EffectID) {}

// Fade paints a translucent black layer over the whole surface, leaving
// trails of earlier frames.
func Fade(s Surface, alpha float64) {
	w, h := s.Size()
	s.FillRect(0, 0, w, h, common.Hue(0, 0, 0).WithAlpha(alpha))
}
