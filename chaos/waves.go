package chaos

import (
	"math"
	"time"

	"github.com/simukka/psychedelic-chaos/audio"
	"github.com/simukka/psychedelic-chaos/common"
)

// PsychedelicWaves shades a dense grid with three interfering sine fields
// over a bed of sustained drones.
type PsychedelicWaves struct {
	Time  float64
	cells int
}

func (p *PsychedelicWaves) ID() EffectID { return Waves }

func (p *PsychedelicWaves) Enter(rt *Runtime) {
	cfg := rt.Config
	p.Time = 0
	for i, freq := range cfg.DroneFreqs {
		freq := freq
		drone := func() {
			rt.Hold(rt.Voices.Tone(freq, audio.Sine, cfg.DroneDuration))
		}
		if i == 0 {
			drone()
			continue
		}
		rt.After(time.Duration(i)*cfg.DroneStagger, drone)
	}
}

func (p *PsychedelicWaves) Update(rt *Runtime) {
	rt.Surface.Clear()
	w, h := rt.Surface.Size()
	cell := rt.Config.WaveCell
	t := p.Time

	cells := 0
	for x := 0.0; x < w; x += cell {
		for y := 0.0; y < h; y += cell {
			w1 := math.Sin((x+t)*0.01) * 50
			w2 := math.Sin((y+t)*0.02) * 50
			w3 := math.Sin((x+y+t)*0.005) * 100
			intensity := (w1 + w2 + w3) / 3
			hue := math.Mod(intensity+t*2, 360)

			rt.Surface.FillRect(x, y, cell, cell, common.Hue(hue, 100, 50+intensity*0.5))
			cells++
		}
	}
	p.cells = cells
	p.Time += rt.Config.WaveClockStep
}

func (p *PsychedelicWaves) Exit() {
	p.cells = 0
}

// Entities returns the number of grid cells shaded by the last frame.
func (p *PsychedelicWaves) Entities() int {
	return p.cells
}
