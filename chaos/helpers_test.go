package chaos

import (
	"image/color"
	"time"

	"github.com/simukka/psychedelic-chaos/audio"
	"github.com/simukka/psychedelic-chaos/common"
)

// recordingSurface counts drawing calls.
type recordingSurface struct {
	w, h    float64
	clears  int
	rects   int
	lines   int
	texts   []string
	glows   int
	lastBox [4]float64
}

func newRecordingSurface(w, h float64) *recordingSurface {
	return &recordingSurface{w: w, h: h}
}

func (s *recordingSurface) Size() (float64, float64) { return s.w, s.h }
func (s *recordingSurface) Resize(w, h float64)      { s.w, s.h = w, h }
func (s *recordingSurface) Clear()                   { s.clears++ }

func (s *recordingSurface) FillRect(x, y, w, h float64, c color.Color) {
	s.rects++
	s.lastBox = [4]float64{x, y, w, h}
}

func (s *recordingSurface) StrokeLine(x1, y1, x2, y2, width float64, c color.Color) {
	s.lines++
}

func (s *recordingSurface) FillText(text string, x, y float64, c color.Color) {
	s.texts = append(s.texts, text)
}

func (s *recordingSurface) SetGlow(blur float64, c color.Color) {
	if blur > 0 {
		s.glows++
	}
}

func (s *recordingSurface) draws() int {
	return s.rects + s.lines + len(s.texts)
}

// recordingGraph is an audio graph that remembers every source it built.
type recordingGraph struct {
	now      float64
	sources  []*recordingSource
	bus      *recordingGain
	analyser *recordingAnalyser
}

func newRecordingGraph() *recordingGraph {
	return &recordingGraph{
		bus:      &recordingGain{param: &recordingParam{}},
		analyser: &recordingAnalyser{bins: 64},
	}
}

func (g *recordingGraph) CurrentTime() float64     { return g.now }
func (g *recordingGraph) SampleRate() float64      { return 1000 }
func (g *recordingGraph) Bus() audio.Gain          { return g.bus }
func (g *recordingGraph) Analyser() audio.Analyser { return g.analyser }

func (g *recordingGraph) NewOscillator(wave audio.Waveform, freq float64) audio.Source {
	s := &recordingSource{wave: wave, freq: freq}
	g.sources = append(g.sources, s)
	return s
}

func (g *recordingGraph) NewBufferSource(samples []float64) audio.Source {
	s := &recordingSource{noise: true}
	g.sources = append(g.sources, s)
	return s
}

func (g *recordingGraph) NewGain(initial float64) audio.Gain {
	return &recordingGain{param: &recordingParam{value: initial}}
}

func (g *recordingGraph) NewHighpass(cutoff, q float64) audio.Node {
	return &recordingNode{}
}

// tones returns the oscillators built with the given waveform.
func (g *recordingGraph) tones(wave audio.Waveform) []*recordingSource {
	var out []*recordingSource
	for _, s := range g.sources {
		if !s.noise && s.wave == wave {
			out = append(out, s)
		}
	}
	return out
}

func (g *recordingGraph) bursts() int {
	n := 0
	for _, s := range g.sources {
		if s.noise {
			n++
		}
	}
	return n
}

type recordingNode struct{}

func (n *recordingNode) Connect(dst audio.Node) {}

type recordingSource struct {
	recordingNode
	wave    audio.Waveform
	freq    float64
	noise   bool
	started bool
	stops   int
}

func (s *recordingSource) Start(at float64) { s.started = true }

func (s *recordingSource) Stop(at float64) error {
	s.stops++
	return nil
}

type recordingParam struct {
	value float64
}

func (p *recordingParam) SetValue(v float64)                         { p.value = v }
func (p *recordingParam) SetValueAtTime(v, at float64)               { p.value = v }
func (p *recordingParam) ExponentialRampToValueAtTime(v, at float64) {}

type recordingGain struct {
	recordingNode
	param *recordingParam
}

func (g *recordingGain) Gain() audio.Param { return g.param }

type recordingAnalyser struct {
	bins  int
	level byte
	reads int
}

func (a *recordingAnalyser) FrequencyBinCount() int { return a.bins }

func (a *recordingAnalyser) ByteFrequencyData(dst []byte) {
	a.reads++
	for i := range dst {
		dst[i] = a.level
	}
}

// rig is a controller wired to recording collaborators.
type rig struct {
	sched   *ManualScheduler
	surface *recordingSurface
	overlay *MemoryOverlay
	graph   *recordingGraph
	voices  *audio.Factory
	ctl     *Controller
}

func newRig() *rig {
	r := &rig{
		sched:   NewManualScheduler(),
		surface: newRecordingSurface(800, 600),
		overlay: NewMemoryOverlay(32),
		graph:   newRecordingGraph(),
	}
	r.voices = audio.NewFactory(common.NewSeededRNG(7))
	r.voices.SetGraph(r.graph)
	r.ctl = NewController(Options{
		Scheduler: r.sched,
		Surface:   r.surface,
		Overlay:   r.overlay,
		Voices:    r.voices,
		Seed:      12345,
	})
	return r
}

// stubEffect counts how often its callbacks run.
type stubEffect struct {
	id       EffectID
	updates  int
	triggers int
	exited   bool
}

func (p *stubEffect) ID() EffectID { return p.id }

func (p *stubEffect) Enter(rt *Runtime) {
	rt.Every(100*time.Millisecond, func() { p.triggers++ })
}

func (p *stubEffect) Update(rt *Runtime) {
	p.updates++
	rt.Surface.FillRect(0, 0, 1, 1, common.Hue(0, 100, 50))
}

func (p *stubEffect) Exit() { p.exited = true }

func (p *stubEffect) Entities() int {
	if p.exited {
		return 0
	}
	return 1
}
