//go:build js
// +build js

package web

import (
	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/psychedelic-chaos/chaos"
)

// SetupInputHandlers routes keydown events to the controller. The audio
// button and volume readout are refreshed after every handled key.
func SetupInputHandlers(ctl *chaos.Controller) {
	document().Call("addEventListener", "keydown", func(event *js.Object) {
		action := chaos.TranslateKeyCode(event.Get("keyCode").Int())
		if action == chaos.NoAction {
			return
		}
		if !ctl.HandleAction(action) {
			return
		}
		event.Call("preventDefault")

		snap := ctl.Snapshot()
		ShowAudioState(snap.AudioEnabled)
		ShowVolume(snap.Volume)
	})
}
