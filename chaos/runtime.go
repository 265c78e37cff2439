package chaos

import (
	"time"

	"github.com/simukka/psychedelic-chaos/audio"
	"github.com/simukka/psychedelic-chaos/common"
)

// Runtime is the handle an effect receives for one activation. It captures
// the effect id and generation the activation was admitted under; every
// callback scheduled through it is dropped once either no longer matches.
type Runtime struct {
	ctl    *Controller
	id     EffectID
	gen    uint64
	effect Effect

	Surface   Surface
	Overlay   Overlay
	Voices    *audio.Factory
	Transport *audio.Transport
	RNG       *common.SeededRNG
	Config    *Config
}

// ID returns the effect this runtime belongs to.
func (rt *Runtime) ID() EffectID {
	return rt.id
}

// Generation returns the activation generation this runtime captured.
func (rt *Runtime) Generation() uint64 {
	return rt.gen
}

// Live reports whether the activation is still the current one.
func (rt *Runtime) Live() bool {
	return rt.ctl.active == rt.id && rt.ctl.gen == rt.gen
}

// Every runs fn each period d while the activation is live. The first fire
// after the activation goes stale clears the interval.
func (rt *Runtime) Every(d time.Duration, fn func()) TimerID {
	var id TimerID
	id = rt.ctl.sched.SetInterval(func() {
		if !rt.Live() {
			rt.ctl.sched.ClearTimer(id)
			Debugf("%s#%d: interval %d cleared", rt.id, rt.gen, id)
			return
		}
		fn()
	}, d)
	return id
}

// After runs fn once after d, only if the activation is still live then.
func (rt *Runtime) After(d time.Duration, fn func()) TimerID {
	return rt.ctl.sched.SetTimeout(func() {
		if !rt.Live() {
			return
		}
		fn()
	}, d)
}

// Expire removes an overlay label after d whether or not the activation is
// still live. Removing a label a teardown already dropped is harmless.
func (rt *Runtime) Expire(label LabelID, d time.Duration) {
	if label == 0 {
		return
	}
	overlay := rt.Overlay
	rt.ctl.sched.SetTimeout(func() {
		overlay.RemoveLabel(label)
	}, d)
}

// Hold plays a sustained voice through the transport so teardown can
// force-stop it.
func (rt *Runtime) Hold(v *audio.Voice) {
	rt.Transport.Hold(v)
}
