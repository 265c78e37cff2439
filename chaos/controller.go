package chaos

import (
	"errors"
	"fmt"

	"github.com/simukka/psychedelic-chaos/audio"
	"github.com/simukka/psychedelic-chaos/common"
)

// ErrUnknownEffect is returned when activating an effect with no registered
// constructor.
var ErrUnknownEffect = errors.New("chaos: unknown effect")

// Options wires a controller to its host.
type Options struct {
	Scheduler    Scheduler
	Surface      Surface
	Overlay      Overlay
	Controls     Controls
	Voices       *audio.Factory
	Transport    *audio.Transport
	Stats        *StatsOverlay
	StatsSurface Surface // receives the stats panel each visualizer frame
	Seed         uint32
	Config       *Config
}

// Controller owns the active effect tag. It is the only writer of the tag
// and the only component that force-stops sustained voices.
type Controller struct {
	sched     Scheduler
	surface   Surface
	overlay   Overlay
	controls  Controls
	voices    *audio.Factory
	transport *audio.Transport
	stats     *StatsOverlay
	statsSurf Surface
	seed      uint32
	cfg       *Config
	effects   map[EffectID]func() Effect

	active  EffectID
	gen     uint64
	current Effect
	rt      *Runtime

	frameID FrameID // pending render frame, 0 if none
	delayID TimerID // pending stutter delay, 0 if none
	frames  int     // frames rendered by the current activation

	visualizing bool
}

// NewController creates a controller with the built-in effects registered.
// Missing collaborators are replaced with silent in-memory versions.
func NewController(opts Options) *Controller {
	c := &Controller{
		sched:     opts.Scheduler,
		surface:   opts.Surface,
		overlay:   opts.Overlay,
		controls:  opts.Controls,
		voices:    opts.Voices,
		transport: opts.Transport,
		stats:     opts.Stats,
		statsSurf: opts.StatsSurface,
		seed:      opts.Seed,
		cfg:       opts.Config,
		effects:   DefaultEffects(),
	}
	if c.sched == nil {
		c.sched = NewManualScheduler()
	}
	if c.overlay == nil {
		c.overlay = NewMemoryOverlay(64)
	}
	if c.controls == nil {
		c.controls = noControls{}
	}
	if c.voices == nil {
		c.voices = audio.NewFactory(common.NewSeededRNG(opts.Seed))
	}
	if c.transport == nil {
		c.transport = &audio.Transport{}
	}
	if c.transport.Trace == nil {
		c.transport.Trace = Debugf
	}
	if c.cfg == nil {
		cfg := DefaultConfig
		c.cfg = &cfg
	}
	return c
}

// Register installs or replaces the constructor for an effect id.
func (c *Controller) Register(id EffectID, build func() Effect) {
	c.effects[id] = build
}

// Active returns the active effect tag.
func (c *Controller) Active() EffectID {
	return c.active
}

// Generation returns the number of teardowns performed so far.
func (c *Controller) Generation() uint64 {
	return c.gen
}

// Current returns the live effect value, or nil.
func (c *Controller) Current() Effect {
	return c.current
}

// Voices returns the voice factory shared by every effect.
func (c *Controller) Voices() *audio.Factory {
	return c.voices
}

// Transport returns the sustained voice list.
func (c *Controller) Transport() *audio.Transport {
	return c.transport
}

// Activate tears down whatever is running and admits id. The first frame is
// rendered before Activate returns. An unknown id leaves the controller torn
// down and returns ErrUnknownEffect.
func (c *Controller) Activate(id EffectID) error {
	c.Teardown()

	build, ok := c.effects[id]
	if !ok || id == None {
		return fmt.Errorf("%w: %s", ErrUnknownEffect, id)
	}

	effect := build()
	rt := &Runtime{
		ctl:       c,
		id:        id,
		gen:       c.gen,
		effect:    effect,
		Surface:   c.surface,
		Overlay:   c.overlay,
		Voices:    c.voices,
		Transport: c.transport,
		RNG:       common.NewSeededRNG(common.EffectSeed(c.seed, c.gen)),
		Config:    c.cfg,
	}
	c.active = id
	c.current = effect
	c.rt = rt
	c.controls.MarkActive(id)

	Infof("chaos: activate %s (generation %d)", id, c.gen)
	effect.Enter(rt)
	c.renderFrame(rt)
	return nil
}

// Teardown releases every resource of the active effect and leaves the tag
// at None. It is safe to call at any time, including before any activation
// and from inside a frame.
func (c *Controller) Teardown() {
	if c.frameID != 0 {
		c.sched.CancelFrame(c.frameID)
		c.frameID = 0
	}
	if c.delayID != 0 {
		c.sched.ClearTimer(c.delayID)
		c.delayID = 0
	}

	c.surface.Clear()

	entities := 0
	if c.current != nil {
		entities = c.current.Entities()
		c.current.Exit()
	}

	labels := c.overlay.RemoveAll()
	voices := c.transport.StopAll()
	c.controls.ClearActive()

	prev := c.active
	c.active = None
	c.current = nil
	c.rt = nil
	c.frames = 0
	c.gen++

	if prev != None {
		Debugf("chaos: teardown %s: %d entities, %d labels, %d voices", prev, entities, labels, voices)
	}
}

func (c *Controller) renderFrame(rt *Runtime) {
	if !rt.Live() {
		return
	}
	rt.effect.Update(rt)
	if !rt.Live() {
		// Torn down from inside the frame.
		return
	}
	c.frames++
	c.scheduleFrame(rt)
}

func (c *Controller) scheduleFrame(rt *Runtime) {
	if s, ok := rt.effect.(Stutterer); ok {
		c.delayID = c.sched.SetTimeout(func() {
			if !rt.Live() {
				return
			}
			c.delayID = 0
			c.surface.Clear()
			c.requestFrame(rt)
		}, s.FrameDelay())
		return
	}
	c.requestFrame(rt)
}

func (c *Controller) requestFrame(rt *Runtime) {
	c.frameID = c.sched.RequestFrame(func(now float64) {
		if !rt.Live() {
			return
		}
		c.frameID = 0
		c.renderFrame(rt)
	})
}

// Resize refreshes the surface dimensions without restarting the effect.
func (c *Controller) Resize(w, h float64) {
	c.surface.Resize(w, h)
}

// SetVolume maps a 0-100 volume onto the bus gain and returns the gain.
func (c *Controller) SetVolume(percent float64) float64 {
	return c.voices.SetVolume(percent)
}

// ToggleAudio flips the global audio switch and returns the new state.
// Turning audio off force-stops every sustained voice.
func (c *Controller) ToggleAudio() bool {
	if c.voices.Enabled() {
		n := c.transport.StopAll()
		c.voices.SetEnabled(false)
		Infof("chaos: audio off (%d voices stopped)", n)
		return false
	}
	c.voices.SetEnabled(true)
	Infof("chaos: audio on")
	return true
}

// StartVisualizer runs v on every display frame for the rest of the
// session. It ignores the active effect and is never cancelled.
func (c *Controller) StartVisualizer(v *audio.Visualizer) {
	if c.visualizing {
		return
	}
	c.visualizing = true

	var loop func(now float64)
	loop = func(now float64) {
		if c.stats != nil {
			c.stats.UpdateFPS(now)
			if c.statsSurf != nil {
				c.stats.Render(c.statsSurf, c.Snapshot())
			}
		}
		if v != nil {
			v.Step()
		}
		c.sched.RequestFrame(loop)
	}
	c.sched.RequestFrame(loop)
}

// Snapshot is a read-only view of the engine state.
type Snapshot struct {
	Effect       EffectID
	Generation   uint64
	Frames       int
	Entities     int
	Labels       int
	Sustained    int
	AudioEnabled bool
	AudioReady   bool
	Volume       float64
}

// Snapshot captures the current engine state.
func (c *Controller) Snapshot() Snapshot {
	s := Snapshot{
		Effect:       c.active,
		Generation:   c.gen,
		Frames:       c.frames,
		Labels:       c.overlay.Count(),
		Sustained:    c.transport.Len(),
		AudioEnabled: c.voices.Enabled(),
		AudioReady:   c.voices.Available(),
		Volume:       c.voices.Volume(),
	}
	if c.current != nil {
		s.Entities = c.current.Entities()
	}
	return s
}
