package audio

import "github.com/simukka/psychedelic-chaos/common"

// Voice is one sounding unit: a source plus its gain envelope.
type Voice struct {
	graph  Graph
	source Source
	gain   Gain
	Freq   float64
	Wave   Waveform
	Ends   float64 // graph time the voice stops on its own
}

// Stop silences the voice now. Stopping a voice that already ended returns
// ErrAlreadyStopped, which callers are expected to tolerate.
func (v *Voice) Stop() error {
	if v == nil || v.source == nil {
		return nil
	}
	return v.source.Stop(v.graph.CurrentTime())
}

// Factory builds transient voices on the shared bus. It produces nothing
// while audio is disabled or before a graph is attached.
type Factory struct {
	graph   Graph
	enabled bool
	volume  float64
	rng     *common.SeededRNG
	cfg     Config
}

// NewFactory creates an enabled factory with no graph yet.
func NewFactory(rng *common.SeededRNG) *Factory {
	return &Factory{
		enabled: true,
		volume:  AudioConfig.MasterVolume * 100,
		rng:     rng,
		cfg:     AudioConfig,
	}
}

// SetGraph attaches the audio graph and applies the current volume to its bus.
func (f *Factory) SetGraph(g Graph) {
	f.graph = g
	if g != nil {
		g.Bus().Gain().SetValue(BusGain(f.volume))
	}
}

// Graph returns the attached graph, or nil.
func (f *Factory) Graph() Graph {
	return f.graph
}

// SetEnabled flips the global audio toggle.
func (f *Factory) SetEnabled(enabled bool) {
	f.enabled = enabled
}

// Enabled reports the global audio toggle.
func (f *Factory) Enabled() bool {
	return f.enabled
}

// Available reports whether voices can currently be produced.
func (f *Factory) Available() bool {
	return f.enabled && f.graph != nil
}

// Volume returns the current volume on the 0-100 scale.
func (f *Factory) Volume() float64 {
	return f.volume
}

// SetVolume sets the volume on a 0-100 scale and returns the bus gain applied.
func (f *Factory) SetVolume(percent float64) float64 {
	gain := BusGain(percent)
	f.volume = gain * 100
	if f.graph != nil {
		f.graph.Bus().Gain().SetValue(gain)
	}
	return gain
}

// BusGain maps a 0-100 volume linearly onto a 0.0-1.0 bus gain.
func BusGain(percent float64) float64 {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	return percent / 100
}

// Tone plays one decaying oscillator note lasting duration seconds.
func (f *Factory) Tone(freq float64, wave Waveform, duration float64) *Voice {
	if !f.Available() || duration <= 0 {
		return nil
	}
	g := f.graph
	now := g.CurrentTime()

	osc := g.NewOscillator(wave, freq)
	env := f.envelope(f.cfg.ToneGain, now, duration)
	osc.Connect(env)
	env.Connect(g.Bus())

	osc.Start(now)
	// A source that cannot be scheduled to end is never handed out
	if err := osc.Stop(now + duration); err != nil {
		return nil
	}

	return &Voice{graph: g, source: osc, gain: env, Freq: freq, Wave: wave, Ends: now + duration}
}

// Burst plays highpassed white noise lasting duration seconds.
func (f *Factory) Burst(duration float64) *Voice {
	if !f.Available() || duration <= 0 {
		return nil
	}
	g := f.graph
	now := g.CurrentTime()

	n := int(g.SampleRate() * duration)
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = (f.rng.Random()*2 - 1) * f.cfg.NoiseAmplitude
	}

	src := g.NewBufferSource(samples)
	filter := g.NewHighpass(f.rng.RandomFloat(f.cfg.HighpassMin, f.cfg.HighpassMax), f.cfg.HighpassQ)
	env := f.envelope(f.cfg.BurstGain, now, duration)
	src.Connect(filter)
	filter.Connect(env)
	env.Connect(g.Bus())

	src.Start(now)
	if err := src.Stop(now + duration); err != nil {
		return nil
	}

	return &Voice{graph: g, source: src, gain: env, Ends: now + duration}
}

// RandomTone plays a tone with a frequency picked from freqs and a random
// waveform.
func (f *Factory) RandomTone(freqs []float64, minDur, maxDur float64) *Voice {
	if !f.Available() || len(freqs) == 0 {
		return nil
	}
	freq := freqs[f.rng.Pick(len(freqs))]
	wave := Waveforms[f.rng.Pick(len(Waveforms))]
	return f.Tone(freq, wave, f.rng.RandomFloat(minDur, maxDur))
}

func (f *Factory) envelope(start, now, duration float64) Gain {
	env := f.graph.NewGain(start)
	env.Gain().SetValueAtTime(start, now)
	env.Gain().ExponentialRampToValueAtTime(f.cfg.EnvelopeFloor, now+duration)
	return env
}
