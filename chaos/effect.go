package chaos

import (
	"fmt"
	"time"
)

// EffectID names one of the mutually exclusive effects.
type EffectID int

const (
	None EffectID = iota
	Particles
	Fractal
	Matrix
	Waves
	Glitch
	Spiral
)

// EffectNames maps each effect to its host-facing name.
var EffectNames = map[EffectID]string{
	None:      "none",
	Particles: "particles",
	Fractal:   "fractal",
	Matrix:    "matrix",
	Waves:     "waves",
	Glitch:    "glitch",
	Spiral:    "spiral",
}

func (id EffectID) String() string {
	if name, ok := EffectNames[id]; ok {
		return name
	}
	return "effect(" + fmt.Sprint(int(id)) + ")"
}

// ParseEffect resolves a host-facing effect name.
func ParseEffect(name string) (EffectID, error) {
	for id, n := range EffectNames {
		if n == name {
			return id, nil
		}
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownEffect, name)
}

// Effect is one generative animation with its audio schedule. A fresh value
// is built for every activation.
type Effect interface {
	ID() EffectID
	// Enter seeds the simulation and schedules the audio triggers.
	Enter(rt *Runtime)
	// Update advances the simulation one frame and draws it.
	Update(rt *Runtime)
	// Exit discards the simulation entities.
	Exit()
	// Entities returns the number of live simulation entities.
	Entities() int
}

// Stutterer is implemented by effects that render on their own cadence
// instead of every display frame. The surface is cleared before each
// delayed frame.
type Stutterer interface {
	FrameDelay() time.Duration
}

// DefaultEffects returns the constructors of the six built-in effects.
func DefaultEffects() map[EffectID]func() Effect {
	return map[EffectID]func() Effect{
		Particles: func() Effect { return &ParticleStorm{} },
		Fractal:   func() Effect { return &FractalChaos{} },
		Matrix:    func() Effect { return &MatrixRain{} },
		Waves:     func() Effect { return &PsychedelicWaves{} },
		Glitch:    func() Effect { return &GlitchArt{} },
		Spiral:    func() Effect { return &NeonSpiral{} },
	}
}
