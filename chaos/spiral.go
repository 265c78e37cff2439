package chaos

import (
	"math"

	"github.com/simukka/psychedelic-chaos/audio"
	"github.com/simukka/psychedelic-chaos/common"
)

// NeonSpiral draws a glowing expanding spiral and plays a random melody
// from one of two scales.
type NeonSpiral struct {
	Time   float64
	points int
}

func (n *NeonSpiral) ID() EffectID { return Spiral }

func (n *NeonSpiral) Enter(rt *Runtime) {
	cfg := rt.Config
	n.Time = 0
	n.points = cfg.SpiralPoints
	rt.Every(cfg.SpiralInterval, func() {
		if len(cfg.SpiralScales) == 0 {
			return
		}
		scale := cfg.SpiralScales[rt.RNG.Pick(len(cfg.SpiralScales))]
		note := scale[rt.RNG.Pick(len(scale))]
		octave := 1.0
		if !rt.RNG.Chance(0.5) {
			octave = 2
		}
		rt.Voices.Tone(note*octave, audio.Triangle, cfg.SpiralNoteDuration)
	})
}

func (n *NeonSpiral) Update(rt *Runtime) {
	cfg := rt.Config
	s := rt.Surface
	Fade(s, cfg.SpiralTrail)
	w, h := s.Size()
	cx, cy := w/2, h/2
	t := n.Time

	for i := 0; i < n.points; i++ {
		fi := float64(i)
		angle := fi*0.1 + t*0.02
		radius := fi*0.5 + math.Sin(t*0.01)*50
		x := cx + math.Cos(angle)*radius
		y := cy + math.Sin(angle)*radius
		hue := math.Mod(fi+t, 360)
		brightness := 50 + math.Sin(t*0.01+fi*0.1)*50

		s.SetGlow(cfg.SpiralGlow, common.Hue(hue, 100, 50))
		s.FillRect(x, y, 3, 3, common.Hue(hue, 100, brightness))
	}
	s.SetGlow(0, nil)
	n.Time++
}

func (n *NeonSpiral) Exit() {
	n.points = 0
}

func (n *NeonSpiral) Entities() int {
	return n.points
}
