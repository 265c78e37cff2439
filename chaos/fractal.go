package chaos

import (
	"math"
	"time"

	"github.com/simukka/psychedelic-chaos/audio"
	"github.com/simukka/psychedelic-chaos/common"
)

// FractalChaos draws a breathing ring of points, each trailed by satellites
// at the complementary hue, and sounds a dissonant chord on a fixed period.
type FractalChaos struct {
	Time   float64
	points int
}

func (f *FractalChaos) ID() EffectID { return Fractal }

func (f *FractalChaos) Enter(rt *Runtime) {
	f.Time = 0
	f.points = rt.Config.FractalPoints
	rt.Every(rt.Config.ChordInterval, func() {
		f.chord(rt)
	})
}

// chord plays the first note at once and staggers the rest. A staggered
// note whose activation went stale is dropped.
func (f *FractalChaos) chord(rt *Runtime) {
	cfg := rt.Config
	base := rt.RNG.RandomFloat(cfg.ChordBaseMin, cfg.ChordBaseMax)
	for i, ratio := range cfg.ChordRatios {
		freq := base * ratio
		note := func() {
			rt.Voices.Tone(freq, audio.Triangle, cfg.ChordNoteDuration)
		}
		if i == 0 {
			note()
			continue
		}
		rt.After(time.Duration(i)*cfg.ChordStagger, note)
	}
}

func (f *FractalChaos) Update(rt *Runtime) {
	cfg := rt.Config
	Fade(rt.Surface, cfg.FractalTrail)
	w, h := rt.Surface.Size()
	cx, cy := w/2, h/2
	t := f.Time

	for i := 0; i < f.points; i++ {
		fi := float64(i)
		angle := fi*2*math.Pi/float64(f.points) + t*0.01
		radius := 50 + math.Sin(t*0.005+fi*0.1)*200
		x := cx + math.Cos(angle)*radius
		y := cy + math.Sin(angle)*radius
		hue := math.Mod(t+fi*10, 360)
		size := 3 + math.Sin(t*0.01+fi)*2

		rt.Surface.FillRect(x, y, size, size, common.Hue(hue, 100, 50))

		for j := 0; j < cfg.FractalSatellites; j++ {
			a := angle + float64(j)*math.Pi/10
			r := radius * 0.3
			rt.Surface.FillRect(x+math.Cos(a)*r, y+math.Sin(a)*r, 1, 1, common.Hue(hue+180, 100, 50))
		}
	}
	f.Time++
}

func (f *FractalChaos) Exit() {
	f.points = 0
}

func (f *FractalChaos) Entities() int {
	return f.points
}
