//go:build js
// +build js

package web

import (
	"image/color"
	"strconv"

	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/psychedelic-chaos/audio"
	"github.com/simukka/psychedelic-chaos/chaos"
	"github.com/simukka/psychedelic-chaos/common"
)

// EntryPoints names the page-level function that activates each effect.
var EntryPoints = map[chaos.EffectID]string{
	chaos.Particles: "startParticleStorm",
	chaos.Fractal:   "startFractalChaos",
	chaos.Matrix:    "startMatrixRain",
	chaos.Waves:     "startPsychedelicWaves",
	chaos.Glitch:    "startGlitchArt",
	chaos.Spiral:    "startNeonSpiral",
}

func document() *js.Object {
	return js.Global.Get("document")
}

// ByID returns the element with the given id, or nil.
func ByID(id string) *js.Object {
	el := document().Call("getElementById", id)
	if el == nil || el == js.Undefined {
		return nil
	}
	return el
}

// forEach visits every element of a NodeList.
func forEach(list *js.Object, fn func(el *js.Object)) int {
	n := list.Length()
	for i := 0; i < n; i++ {
		fn(list.Index(i))
	}
	return n
}

// DOMOverlay shows labels as absolutely positioned glitch-text divs.
type DOMOverlay struct {
	nodes  map[chaos.LabelID]*js.Object
	nextID chaos.LabelID
}

func NewDOMOverlay() *DOMOverlay {
	return &DOMOverlay{nodes: make(map[chaos.LabelID]*js.Object)}
}

func (o *DOMOverlay) ShowLabel(text string, x, y float64, c color.Color) chaos.LabelID {
	div := document().Call("createElement", "div")
	div.Set("className", "glitch-text")
	style := div.Get("style")
	style.Set("left", px(x))
	style.Set("top", px(y))
	style.Set("color", common.CSSColor(c))
	div.Set("textContent", text)
	document().Get("body").Call("appendChild", div)

	o.nextID++
	o.nodes[o.nextID] = div
	return o.nextID
}

func (o *DOMOverlay) RemoveLabel(id chaos.LabelID) {
	if div, ok := o.nodes[id]; ok {
		div.Call("remove")
		delete(o.nodes, id)
	}
}

// RemoveAll drops every transient artifact on the page, including ones this
// overlay did not create.
func (o *DOMOverlay) RemoveAll() int {
	n := forEach(document().Call("querySelectorAll", ".particle, .glitch-text"), func(el *js.Object) {
		el.Call("remove")
	})
	o.nodes = make(map[chaos.LabelID]*js.Object)
	return n
}

func (o *DOMOverlay) Count() int {
	return len(o.nodes)
}

// DOMControls marks the effect selector buttons.
type DOMControls struct{}

func (DOMControls) ClearActive() {
	forEach(document().Call("querySelectorAll", ".controls button"), func(el *js.Object) {
		el.Get("classList").Call("remove", "active")
	})
}

func (DOMControls) MarkActive(id chaos.EffectID) {
	name, ok := EntryPoints[id]
	if !ok {
		return
	}
	btn := document().Call("querySelector", `button[onclick="`+name+`()"]`)
	if btn == nil || btn == js.Undefined {
		return
	}
	btn.Get("classList").Call("add", "active")
}

// DOMBars renders the visualizer as freq-bar divs.
type DOMBars struct {
	bars []*js.Object
}

// NewDOMBars fills container with one bar per band.
func NewDOMBars(container *js.Object) *DOMBars {
	b := &DOMBars{bars: make([]*js.Object, audio.AudioConfig.Bands)}
	container.Set("innerHTML", "")
	for i := range b.bars {
		bar := document().Call("createElement", "div")
		bar.Set("className", "freq-bar")
		bar.Get("style").Set("height", px(audio.AudioConfig.MinBarHeight))
		container.Call("appendChild", bar)
		b.bars[i] = bar
	}
	return b
}

func (b *DOMBars) SetHeight(i int, units float64) {
	if i < 0 || i >= len(b.bars) {
		return
	}
	b.bars[i].Get("style").Set("height", px(units))
}

// ShowAudioState updates the audio toggle button.
func ShowAudioState(enabled bool) {
	btn := ByID("audioToggle")
	if btn == nil {
		return
	}
	if enabled {
		btn.Set("textContent", "🔊 AUDIO ON")
		btn.Get("classList").Call("remove", "muted")
	} else {
		btn.Set("textContent", "🔇 AUDIO OFF")
		btn.Get("classList").Call("add", "muted")
	}
}

// ShowVolume updates the volume readout and slider.
func ShowVolume(percent float64) {
	v := strconv.Itoa(int(percent + 0.5))
	if el := ByID("volumeValue"); el != nil {
		el.Set("textContent", v+"%")
	}
	if el := ByID("volumeSlider"); el != nil {
		el.Set("value", v)
	}
}

// HideStartOverlay hides the click-to-start overlay.
func HideStartOverlay() {
	if el := ByID("startOverlay"); el != nil {
		el.Get("style").Set("display", "none")
	}
}

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}
