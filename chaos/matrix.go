package chaos

import (
	"math"

	"github.com/simukka/psychedelic-chaos/audio"
	"github.com/simukka/psychedelic-chaos/common"
)

// Drop is one falling glyph of the matrix rain.
type Drop struct {
	X     float64
	Y     float64
	Speed float64
	Glyph byte
}

// MatrixRain drops one glyph per column. Drops that fall past the bottom
// re-enter from above with a new speed and are never removed.
type MatrixRain struct {
	Drops []Drop
	Time  float64
}

func (m *MatrixRain) ID() EffectID { return Matrix }

func (m *MatrixRain) Enter(rt *Runtime) {
	cfg := rt.Config
	m.Time = 0
	w, _ := rt.Surface.Size()
	// One slot for every column that starts on the surface
	columns := int(math.Ceil(w / cfg.MatrixColumnWidth))
	m.Drops = make([]Drop, columns)
	for i := range m.Drops {
		m.Drops[i] = Drop{
			X:     float64(i) * cfg.MatrixColumnWidth,
			Y:     rt.RNG.RandomFloat(cfg.MatrixSpawnTop, 0),
			Speed: rt.RNG.RandomFloat(cfg.MatrixSpeedMin, cfg.MatrixSpeedMax),
			Glyph: m.glyph(rt),
		}
	}

	rt.Every(cfg.MatrixAudioInterval, func() {
		if rt.RNG.Chance(cfg.MatrixToneChance) {
			rt.Voices.Tone(rt.RNG.RandomFloat(cfg.MatrixToneMin, cfg.MatrixToneMax), audio.Square, cfg.MatrixToneDuration)
		}
	})
}

func (m *MatrixRain) glyph(rt *Runtime) byte {
	glyphs := rt.Config.MatrixGlyphs
	return glyphs[rt.RNG.Pick(len(glyphs))]
}

func (m *MatrixRain) Update(rt *Runtime) {
	cfg := rt.Config
	Fade(rt.Surface, cfg.MatrixTrail)
	_, h := rt.Surface.Size()

	for i := range m.Drops {
		d := &m.Drops[i]
		d.Y += d.Speed
		if rt.RNG.Chance(cfg.MatrixGlyphChance) {
			d.Glyph = m.glyph(rt)
		}

		hue := math.Mod(d.Y+m.Time, 360)
		rt.Surface.FillText(string(d.Glyph), d.X, d.Y, common.Hue(hue, 100, 50))

		if d.Y > h {
			d.Y = rt.RNG.RandomFloat(cfg.MatrixRespawnTop, 0)
			d.Speed = rt.RNG.RandomFloat(cfg.MatrixSpeedMin, cfg.MatrixSpeedMax)
			if rt.Voices.Available() && rt.RNG.Chance(cfg.MatrixRecycleChance) {
				rt.Voices.Tone(rt.RNG.RandomFloat(cfg.MatrixRecycleMin, cfg.MatrixRecycleMax), audio.Square, cfg.MatrixRecycleDuration)
			}
		}
	}
	m.Time++
}

func (m *MatrixRain) Exit() {
	m.Drops = nil
}

func (m *MatrixRain) Entities() int {
	return len(m.Drops)
}
