package chaos

import (
	"time"

	"github.com/simukka/psychedelic-chaos/audio"
)

// GlitchArt scatters color blocks, lines and short-lived error labels on a
// stuttering cadence.
type GlitchArt struct {
	frameDelay time.Duration
}

func (g *GlitchArt) ID() EffectID { return Glitch }

func (g *GlitchArt) Enter(rt *Runtime) {
	cfg := rt.Config
	g.frameDelay = cfg.GlitchFrameDelay
	rt.Every(cfg.GlitchAudioInterval, func() {
		rt.Voices.Burst(rt.RNG.RandomFloat(cfg.GlitchBurstMin, cfg.GlitchBurstMax))
		if rt.RNG.Chance(cfg.GlitchToneChance) {
			rt.Voices.Tone(rt.RNG.RandomFloat(cfg.GlitchToneMin, cfg.GlitchToneMax), audio.Sawtooth, cfg.GlitchToneDuration)
		}
	})
}

// FrameDelay is the pause between glitch frames.
func (g *GlitchArt) FrameDelay() time.Duration {
	return g.frameDelay
}

func (g *GlitchArt) Update(rt *Runtime) {
	cfg := rt.Config
	s := rt.Surface
	w, h := s.Size()
	rng := rt.RNG

	for i := 0; i < cfg.GlitchBlocks; i++ {
		x := rng.RandomFloat(0, w-100)
		y := rng.RandomFloat(0, h-20)
		s.FillRect(x, y, rng.RandomFloat(50, 200), rng.RandomFloat(10, 50), rng.RandomHue())
	}

	for i := 0; i < cfg.GlitchLines; i++ {
		c := rng.RandomHue()
		width := rng.RandomFloat(1, 5)
		s.StrokeLine(rng.RandomFloat(0, w), rng.RandomFloat(0, h), rng.RandomFloat(0, w), rng.RandomFloat(0, h), width, c)
	}

	if rng.Chance(cfg.GlitchLabelChance) {
		text := "ERROR_" + rng.Base36(5)
		id := rt.Overlay.ShowLabel(text, rng.RandomFloat(0, w-100), rng.RandomFloat(0, h-20), rng.RandomHue())
		rt.Expire(id, cfg.GlitchLabelLife)
	}
}

func (g *GlitchArt) Exit() {}

// Entities is always zero. Every glitch frame is drawn from scratch and
// nothing carries over to the next one.
func (g *GlitchArt) Entities() int {
	return 0
}
