//go:build !js
// +build !js

package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/simukka/psychedelic-chaos/audio"
	"github.com/simukka/psychedelic-chaos/common"
)

// Bars is the frequency visualizer row along the bottom of the window.
type Bars struct {
	heights []float64
}

// NewBars creates n bars at the minimum height.
func NewBars(n int) *Bars {
	b := &Bars{heights: make([]float64, n)}
	for i := range b.heights {
		b.heights[i] = audio.AudioConfig.MinBarHeight
	}
	return b
}

func (b *Bars) SetHeight(i int, units float64) {
	if i < 0 || i >= len(b.heights) {
		return
	}
	b.heights[i] = units
}

// Heights returns the current bar heights.
func (b *Bars) Heights() []float64 {
	return b.heights
}

// Draw paints the bars bottom-aligned across the width of dst.
func (b *Bars) Draw(dst *ebiten.Image) {
	n := len(b.heights)
	if n == 0 {
		return
	}
	size := dst.Bounds().Size()
	w := float64(size.X) / float64(n)
	bottom := float64(size.Y)
	for i, h := range b.heights {
		// Magenta on the left fading to cyan on the right
		c := common.Hue(300-float64(i)/float64(n)*120, 100, 50)
		vector.DrawFilledRect(dst, float32(float64(i)*w), float32(bottom-h), float32(w-1), float32(h), c, false)
	}
}
