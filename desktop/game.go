//go:build !js
// +build !js

// Package desktop hosts the chaos engine in a native window.
package desktop

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/simukka/psychedelic-chaos/audio"
	"github.com/simukka/psychedelic-chaos/chaos"
	"github.com/simukka/psychedelic-chaos/common"
)

const (
	// Longest virtual time a single tick may advance, so a stalled window
	// does not fire a burst of catch-up timers
	maxStep = 250 * time.Millisecond

	labelScale = 1.5
	maxLabels  = 64
)

// Options configures a desktop session.
type Options struct {
	Width, Height int
	Seed          uint32
	Volume        float64 // 0-100
	Mute          bool
	Graph         audio.Graph // nil runs without audio
}

// Game drives the controller from the ebiten tick. Wall clock time is fed
// into a ManualScheduler, which stands in for the browser timers.
type Game struct {
	ctl     *chaos.Controller
	sched   *chaos.ManualScheduler
	canvas  chaos.Surface
	hud     chaos.Surface
	overlay *chaos.MemoryOverlay
	bars    *Bars
	glyphs  glyphCache

	w, h int
	now  func() time.Time
	last time.Time
}

// NewGame creates a session drawing into offscreen images.
func NewGame(opts Options) *Game {
	return newGame(opts,
		NewImageSurface(opts.Width, opts.Height),
		NewImageSurface(opts.Width, opts.Height),
		time.Now)
}

func newGame(opts Options, canvas, hud chaos.Surface, now func() time.Time) *Game {
	voices := audio.NewFactory(common.NewSeededRNG(opts.Seed))
	if opts.Graph != nil {
		voices.SetGraph(opts.Graph)
	}
	voices.SetVolume(opts.Volume)
	voices.SetEnabled(!opts.Mute)

	g := &Game{
		sched:   chaos.NewManualScheduler(),
		canvas:  canvas,
		hud:     hud,
		overlay: chaos.NewMemoryOverlay(maxLabels),
		bars:    NewBars(audio.AudioConfig.Bands),
		glyphs:  glyphCache{},
		w:       opts.Width,
		h:       opts.Height,
		now:     now,
		last:    now(),
	}
	g.ctl = chaos.NewController(chaos.Options{
		Scheduler:    g.sched,
		Surface:      canvas,
		Overlay:      g.overlay,
		Voices:       voices,
		Stats:        chaos.NewStatsOverlay(),
		StatsSurface: hud,
		Seed:         opts.Seed,
	})
	g.ctl.StartVisualizer(audio.NewVisualizer(voices, g.bars))
	return g
}

// Controller returns the engine controller.
func (g *Game) Controller() *chaos.Controller {
	return g.ctl
}

// Start activates the first effect. None leaves the window dark.
func (g *Game) Start(id chaos.EffectID) error {
	if id == chaos.None {
		return nil
	}
	return g.ctl.Activate(id)
}

// Update handles the keys pressed since the last tick, then advances the
// engine clock by the elapsed wall time and runs one display frame.
func (g *Game) Update() error {
	for _, a := range pressedActions(isKeyJustPressed) {
		g.ctl.HandleAction(a)
	}

	t := g.now()
	elapsed := t.Sub(g.last)
	g.last = t
	g.step(elapsed)
	return nil
}

func (g *Game) step(elapsed time.Duration) {
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > maxStep {
		elapsed = maxStep
	}
	g.sched.Advance(elapsed)
	g.sched.RunFrame()
}

// Draw composites the effect canvas, labels, visualizer and stats panel.
func (g *Game) Draw(screen *ebiten.Image) {
	if s, ok := g.canvas.(*ImageSurface); ok {
		screen.DrawImage(s.Image(), nil)
	}
	g.overlay.ForEach(func(l *chaos.Label) {
		g.glyphs.draw(screen, l.Text, l.X, l.Y, l.Color, labelScale)
	})
	g.bars.Draw(screen)
	if s, ok := g.hud.(*ImageSurface); ok {
		screen.DrawImage(s.Image(), nil)
	}
}

// Layout follows the window size. A change resizes both surfaces without
// restarting the effect.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.w || outsideHeight != g.h {
		g.w, g.h = outsideWidth, outsideHeight
		g.ctl.Resize(float64(g.w), float64(g.h))
		g.hud.Resize(float64(g.w), float64(g.h))
	}
	return g.w, g.h
}
