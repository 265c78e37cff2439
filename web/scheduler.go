//go:build js
// +build js

package web

import (
	"time"

	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/psychedelic-chaos/chaos"
)

// Scheduler dispatches through requestAnimationFrame and the window timers.
type Scheduler struct{}

func (Scheduler) RequestFrame(fn func(now float64)) chaos.FrameID {
	return chaos.FrameID(js.Global.Call("requestAnimationFrame", fn).Int())
}

func (Scheduler) CancelFrame(id chaos.FrameID) {
	js.Global.Call("cancelAnimationFrame", int(id))
}

func (Scheduler) SetInterval(fn func(), d time.Duration) chaos.TimerID {
	if d < chaos.MinInterval {
		d = chaos.MinInterval
	}
	return chaos.TimerID(js.Global.Call("setInterval", fn, millis(d)).Int())
}

func (Scheduler) SetTimeout(fn func(), d time.Duration) chaos.TimerID {
	return chaos.TimerID(js.Global.Call("setTimeout", fn, millis(d)).Int())
}

// ClearTimer clears an interval or a timeout. Browsers share one id pool
// between the two.
func (Scheduler) ClearTimer(id chaos.TimerID) {
	js.Global.Call("clearTimeout", int(id))
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
