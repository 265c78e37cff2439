package chaos

import "github.com/simukka/psychedelic-chaos/common"

// Particle is one bouncing point of the particle storm.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	Life   int
	Color  common.HSL
}

// ParticleStorm keeps a fixed population of bouncing particles. A particle
// whose life runs out is re-rolled in place.
type ParticleStorm struct {
	Particles []Particle
}

func (p *ParticleStorm) ID() EffectID { return Particles }

func (p *ParticleStorm) Enter(rt *Runtime) {
	cfg := rt.Config
	p.Particles = make([]Particle, cfg.ParticleCount)
	for i := range p.Particles {
		p.spawn(rt, &p.Particles[i])
	}

	rt.Every(cfg.ParticleAudioInterval, func() {
		if rt.RNG.Chance(cfg.ParticleToneChance) {
			rt.Voices.RandomTone(cfg.ParticleFreqs, cfg.ParticleToneMin, cfg.ParticleToneMax)
		}
		if rt.RNG.Chance(cfg.ParticleBurstChance) {
			rt.Voices.Burst(cfg.ParticleBurstDuration)
		}
	})
}

func (p *ParticleStorm) spawn(rt *Runtime, pt *Particle) {
	cfg := rt.Config
	w, h := rt.Surface.Size()
	*pt = Particle{
		X:     rt.RNG.RandomFloat(0, w),
		Y:     rt.RNG.RandomFloat(0, h),
		VX:    rt.RNG.RandomFloat(-cfg.ParticleSpeed, cfg.ParticleSpeed),
		VY:    rt.RNG.RandomFloat(-cfg.ParticleSpeed, cfg.ParticleSpeed),
		Size:  rt.RNG.RandomFloat(cfg.ParticleSizeMin, cfg.ParticleSizeMax),
		Life:  rt.RNG.RandomInt(cfg.ParticleLifeMin, cfg.ParticleLifeMax+1),
		Color: rt.RNG.RandomHue(),
	}
}

func (p *ParticleStorm) Update(rt *Runtime) {
	Fade(rt.Surface, rt.Config.ParticleTrail)
	w, h := rt.Surface.Size()

	for i := range p.Particles {
		pt := &p.Particles[i]
		pt.X += pt.VX
		pt.Y += pt.VY
		pt.Life--
		bounce(pt, w, h)

		rt.Surface.FillRect(pt.X, pt.Y, pt.Size, pt.Size, pt.Color)

		if pt.Life <= 0 {
			p.spawn(rt, pt)
		}
	}
}

// bounce reflects a particle off the surface edges. The velocity always
// points back inside, so a particle parked on an edge cannot jitter past it.
func bounce(pt *Particle, w, h float64) {
	if pt.X > w {
		pt.X = w
		pt.VX = -abs(pt.VX)
	} else if pt.X < 0 {
		pt.X = 0
		pt.VX = abs(pt.VX)
	}
	if pt.Y > h {
		pt.Y = h
		pt.VY = -abs(pt.VY)
	} else if pt.Y < 0 {
		pt.Y = 0
		pt.VY = abs(pt.VY)
	}
}

func (p *ParticleStorm) Exit() {
	p.Particles = nil
}

func (p *ParticleStorm) Entities() int {
	return len(p.Particles)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
