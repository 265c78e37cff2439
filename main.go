//go:build js
// +build js

package main

import (
	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/psychedelic-chaos/audio"
	"github.com/simukka/psychedelic-chaos/chaos"
	"github.com/simukka/psychedelic-chaos/common"
	"github.com/simukka/psychedelic-chaos/web"
)

func main() {
	chaos.SetLogger(web.ConsoleLogger{})

	// Get the canvas element
	canvas := web.ByID("canvas")
	if canvas == nil {
		panic("canvas element not found")
	}
	win := js.Global
	width := win.Get("innerWidth").Float()
	height := win.Get("innerHeight").Float()
	surface := web.NewCanvasSurface(canvas, width, height)

	var statsSurface chaos.Surface
	if el := web.ByID("stats"); el != nil {
		statsSurface = web.NewCanvasSurface(el, width, height)
	}

	seed := uint32(int64(js.Global.Get("Date").Call("now").Float()))
	voices := audio.NewFactory(common.NewSeededRNG(seed))
	ctl := chaos.NewController(chaos.Options{
		Scheduler:    web.Scheduler{},
		Surface:      surface,
		Overlay:      web.NewDOMOverlay(),
		Controls:     web.DOMControls{},
		Voices:       voices,
		Stats:        chaos.NewStatsOverlay(),
		StatsSurface: statsSurface,
		Seed:         seed,
	})

	var graph *audio.WebGraph

	// initialize runs once from the start overlay click, which is the user
	// gesture browsers require before audio may start.
	initialized := false
	initialize := func() {
		if initialized {
			return
		}
		initialized = true
		web.HideStartOverlay()

		g, err := audio.NewWebGraph()
		if err != nil {
			chaos.Errorf("audio: %v", err)
		} else {
			graph = g
			graph.Resume()
			voices.SetGraph(graph)
		}

		var bars audio.Bars
		if el := web.ByID("visualizer"); el != nil {
			bars = web.NewDOMBars(el)
		}
		ctl.StartVisualizer(audio.NewVisualizer(voices, bars))

		web.ShowAudioState(voices.Enabled())
		web.ShowVolume(voices.Volume())
		if err := ctl.Activate(chaos.Waves); err != nil {
			chaos.Errorf("chaos: %v", err)
		}
	}

	// Expose the page entry points
	js.Global.Set("initializeAudioVisual", initialize)
	for id, name := range web.EntryPoints {
		id := id
		js.Global.Set(name, func() {
			if err := ctl.Activate(id); err != nil {
				chaos.Errorf("chaos: %v", err)
			}
		})
	}
	js.Global.Set("clearChaos", ctl.Teardown)
	js.Global.Set("toggleAudio", func() {
		web.ShowAudioState(ctl.ToggleAudio())
	})
	js.Global.Set("setVolume", func(value *js.Object) {
		percent := value.Float()
		ctl.SetVolume(percent)
		web.ShowVolume(percent)
	})

	web.SetupInputHandlers(ctl)

	win.Call("addEventListener", "resize", func() {
		w := win.Get("innerWidth").Float()
		h := win.Get("innerHeight").Float()
		ctl.Resize(w, h)
		if statsSurface != nil {
			statsSurface.Resize(w, h)
		}
	})

	// Release the audio device when the page goes away
	win.Call("addEventListener", "beforeunload", func() {
		if graph != nil {
			graph.Close()
		}
	})

	select {}
}
