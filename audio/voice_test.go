package audio

import (
	"errors"
	"testing"

	"github.com/simukka/psychedelic-chaos/common"
)

type paramCall struct {
	kind  string
	value float64
	at    float64
}

type fakeParam struct {
	calls []paramCall
}

func (p *fakeParam) SetValue(v float64) {
	p.calls = append(p.calls, paramCall{"set", v, 0})
}

func (p *fakeParam) SetValueAtTime(v, at float64) {
	p.calls = append(p.calls, paramCall{"setAt", v, at})
}

func (p *fakeParam) ExponentialRampToValueAtTime(v, at float64) {
	p.calls = append(p.calls, paramCall{"exp", v, at})
}

type fakeNode struct {
	kind    string
	outputs []Node
	cutoff  float64
}

func (n *fakeNode) Connect(dst Node) { n.outputs = append(n.outputs, dst) }

type fakeSource struct {
	fakeNode
	wave    Waveform
	freq    float64
	samples []float64
	startAt float64
	stopAt  []float64
	stopErr error
}

func (s *fakeSource) Start(at float64) { s.startAt = at }

func (s *fakeSource) Stop(at float64) error {
	s.stopAt = append(s.stopAt, at)
	return s.stopErr
}

type fakeGain struct {
	fakeNode
	param fakeParam
}

func (g *fakeGain) Gain() Param { return &g.param }

type fakeAnalyser struct {
	bins []byte
}

func (a *fakeAnalyser) FrequencyBinCount() int { return len(a.bins) }

func (a *fakeAnalyser) ByteFrequencyData(dst []byte) { copy(dst, a.bins) }

type fakeGraph struct {
	now      float64
	bus      fakeGain
	analyser *fakeAnalyser
	sources  []*fakeSource
	gains    []*fakeGain
	filters  []*fakeNode
	stopErr  error // handed to every new source
}

func newFakeGraph() *fakeGraph {
	return &fakeGraph{now: 2, analyser: &fakeAnalyser{bins: make([]byte, 64)}}
}

func (g *fakeGraph) CurrentTime() float64 { return g.now }
func (g *fakeGraph) SampleRate() float64  { return 1000 }
func (g *fakeGraph) Bus() Gain            { return &g.bus }
func (g *fakeGraph) Analyser() Analyser   { return g.analyser }

func (g *fakeGraph) NewOscillator(wave Waveform, freq float64) Source {
	s := &fakeSource{fakeNode: fakeNode{kind: "osc"}, wave: wave, freq: freq, stopErr: g.stopErr}
	g.sources = append(g.sources, s)
	return s
}

func (g *fakeGraph) NewBufferSource(samples []float64) Source {
	s := &fakeSource{fakeNode: fakeNode{kind: "buffer"}, samples: samples, stopErr: g.stopErr}
	g.sources = append(g.sources, s)
	return s
}

func (g *fakeGraph) NewGain(initial float64) Gain {
	gn := &fakeGain{fakeNode: fakeNode{kind: "gain"}}
	gn.param.SetValue(initial)
	g.gains = append(g.gains, gn)
	return gn
}

func (g *fakeGraph) NewHighpass(cutoff, q float64) Node {
	f := &fakeNode{kind: "highpass", cutoff: cutoff}
	g.filters = append(g.filters, f)
	return f
}

func newTestFactory() (*Factory, *fakeGraph) {
	f := NewFactory(common.NewSeededRNG(1))
	g := newFakeGraph()
	f.SetGraph(g)
	return f, g
}

func TestFactory_Tone_Envelope(t *testing.T) {
	f, g := newTestFactory()

	v := f.Tone(440, Triangle, 0.5)
	if v == nil {
		t.Fatal("Expected a voice")
	}
	if len(g.sources) != 1 {
		t.Fatalf("Expected 1 source, got %d", len(g.sources))
	}
	osc := g.sources[0]
	if osc.wave != Triangle || osc.freq != 440 {
		t.Errorf("Expected triangle 440Hz, got %s %fHz", osc.wave, osc.freq)
	}
	if osc.startAt != 2 {
		t.Errorf("Expected start at 2, got %f", osc.startAt)
	}
	if len(osc.stopAt) != 1 || osc.stopAt[0] != 2.5 {
		t.Errorf("Expected stop scheduled at 2.5, got %v", osc.stopAt)
	}

	env := g.gains[0]
	last := env.param.calls[len(env.param.calls)-1]
	if last.kind != "exp" || last.value != AudioConfig.EnvelopeFloor || last.at != 2.5 {
		t.Errorf("Expected exponential ramp to floor at 2.5, got %+v", last)
	}
	if len(env.outputs) != 1 || env.outputs[0] != Node(&g.bus) {
		t.Error("Expected envelope connected to the bus")
	}
}

func TestFactory_Burst_Chain(t *testing.T) {
	f, g := newTestFactory()

	v := f.Burst(0.2)
	if v == nil {
		t.Fatal("Expected a voice")
	}
	src := g.sources[0]
	if len(src.samples) != 200 {
		t.Errorf("Expected 200 noise samples, got %d", len(src.samples))
	}
	for _, s := range src.samples {
		if s < -AudioConfig.NoiseAmplitude || s > AudioConfig.NoiseAmplitude {
			t.Fatalf("Expected sample within amplitude, got %f", s)
		}
	}
	if len(g.filters) != 1 {
		t.Fatalf("Expected 1 highpass filter, got %d", len(g.filters))
	}
	cutoff := g.filters[0].cutoff
	if cutoff < AudioConfig.HighpassMin || cutoff > AudioConfig.HighpassMax {
		t.Errorf("Expected cutoff in [1000,4000], got %f", cutoff)
	}
	if g.gains[0].param.calls[0].value != AudioConfig.BurstGain {
		t.Errorf("Expected burst gain start %f, got %f", AudioConfig.BurstGain, g.gains[0].param.calls[0].value)
	}
}

func TestFactory_Disabled(t *testing.T) {
	f, g := newTestFactory()
	f.SetEnabled(false)

	if v := f.Tone(440, Sine, 1); v != nil {
		t.Error("Expected nil tone when disabled")
	}
	if v := f.Burst(1); v != nil {
		t.Error("Expected nil burst when disabled")
	}
	if len(g.sources) != 0 {
		t.Errorf("Expected no nodes when disabled, got %d", len(g.sources))
	}
}

func TestFactory_NoGraph(t *testing.T) {
	f := NewFactory(common.NewSeededRNG(1))
	if v := f.Tone(440, Sine, 1); v != nil {
		t.Error("Expected nil tone without a graph")
	}
	var v *Voice
	if err := v.Stop(); err != nil {
		t.Errorf("Expected nil voice stop to be a no-op, got %v", err)
	}
}

func TestFactory_NonPositiveDuration(t *testing.T) {
	f, g := newTestFactory()
	for _, d := range []float64{0, -1} {
		if v := f.Tone(440, Sine, d); v != nil {
			t.Errorf("Expected nil tone for duration %f", d)
		}
		if v := f.Burst(d); v != nil {
			t.Errorf("Expected nil burst for duration %f", d)
		}
	}
	if len(g.sources) != 0 {
		t.Errorf("Expected no nodes, got %d", len(g.sources))
	}
}

func TestFactory_UnschedulableStop(t *testing.T) {
	f, g := newTestFactory()
	g.stopErr = errors.New("stop rejected")

	if v := f.Tone(440, Sine, 0.5); v != nil {
		t.Error("Expected nil tone when the source cannot be stopped")
	}
	if v := f.Burst(0.5); v != nil {
		t.Error("Expected nil burst when the source cannot be stopped")
	}
	if len(g.sources) != 2 {
		t.Fatalf("Expected 2 sources attempted, got %d", len(g.sources))
	}
	for i, src := range g.sources {
		if len(src.stopAt) != 1 || src.stopAt[0] != g.now+0.5 {
			t.Errorf("Expected source %d stop scheduled at %f, got %v", i, g.now+0.5, src.stopAt)
		}
	}
}

func TestFactory_RandomTone(t *testing.T) {
	f, g := newTestFactory()
	freqs := []float64{220, 330}
	for i := 0; i < 20; i++ {
		f.RandomTone(freqs, 0.1, 0.6)
	}
	for _, s := range g.sources {
		if s.freq != 220 && s.freq != 330 {
			t.Errorf("Expected frequency from the set, got %f", s.freq)
		}
		d := s.stopAt[0] - s.startAt
		if d < 0.1-1e-9 || d >= 0.6+1e-9 {
			t.Errorf("Expected duration in [0.1,0.6), got %f", d)
		}
	}
}

func TestBusGain(t *testing.T) {
	tests := []struct {
		in       float64
		expected float64
	}{
		{0, 0},
		{30, 0.3},
		{50, 0.5},
		{100, 1},
		{-10, 0},
		{150, 1},
	}
	for _, tt := range tests {
		if got := BusGain(tt.in); got != tt.expected {
			t.Errorf("Expected BusGain(%f) = %f, got %f", tt.in, tt.expected, got)
		}
	}

	prev := -1.0
	for v := 0.0; v <= 100; v++ {
		g := BusGain(v)
		if g < prev {
			t.Fatalf("Expected monotonic mapping at %f", v)
		}
		prev = g
	}
}

func TestFactory_SetVolume(t *testing.T) {
	f, g := newTestFactory()
	f.SetVolume(100)
	last := g.bus.param.calls[len(g.bus.param.calls)-1]
	if last.kind != "set" || last.value != 1 {
		t.Errorf("Expected bus gain 1, got %+v", last)
	}
	f.SetVolume(0)
	last = g.bus.param.calls[len(g.bus.param.calls)-1]
	if last.value != 0 {
		t.Errorf("Expected bus gain 0, got %f", last.value)
	}
}

func TestTransport_StopAll(t *testing.T) {
	f, g := newTestFactory()
	var tr Transport
	var traced int
	tr.Trace = func(string, ...interface{}) { traced++ }

	tr.Hold(f.Tone(55, Sine, 10))
	tr.Hold(f.Tone(110, Sine, 10))
	tr.Hold(nil)
	if tr.Len() != 2 {
		t.Fatalf("Expected 2 held voices, got %d", tr.Len())
	}

	g.sources[1].stopErr = ErrAlreadyStopped
	if n := tr.StopAll(); n != 2 {
		t.Errorf("Expected 2 voices stopped, got %d", n)
	}
	if tr.Len() != 0 {
		t.Errorf("Expected empty transport, got %d", tr.Len())
	}
	if traced != 1 {
		t.Errorf("Expected 1 swallowed error, got %d", traced)
	}
	for i, s := range g.sources {
		if len(s.stopAt) != 2 {
			t.Errorf("Expected source %d stopped twice, got %d", i, len(s.stopAt))
		}
	}
	if !errors.Is(g.sources[1].stopErr, ErrAlreadyStopped) {
		t.Error("Expected sentinel error to be preserved")
	}
}

type recordingBars struct {
	heights map[int]float64
}

func (b *recordingBars) SetHeight(i int, h float64) { b.heights[i] = h }

func TestBarHeight(t *testing.T) {
	tests := []struct {
		in       byte
		expected float64
	}{
		{0, 2},
		{5, 2},
		{255, 60},
		{51, 12},
	}
	for _, tt := range tests {
		if got := BarHeight(tt.in); got != tt.expected {
			t.Errorf("Expected BarHeight(%d) = %f, got %f", tt.in, tt.expected, got)
		}
	}
}

func TestVisualizer_Step(t *testing.T) {
	f, g := newTestFactory()
	bars := &recordingBars{heights: map[int]float64{}}
	v := NewVisualizer(f, bars)

	g.analyser.bins[0] = 255
	g.analyser.bins[63] = 51
	if !v.Step() {
		t.Fatal("Expected visualizer to sample")
	}
	if len(bars.heights) != 64 {
		t.Errorf("Expected 64 bars, got %d", len(bars.heights))
	}
	if bars.heights[0] != 60 {
		t.Errorf("Expected full bar 60, got %f", bars.heights[0])
	}
	if bars.heights[63] != 12 {
		t.Errorf("Expected bar 12, got %f", bars.heights[63])
	}

	f.SetEnabled(false)
	g.analyser.bins[0] = 0
	if v.Step() {
		t.Error("Expected no sampling while disabled")
	}
	if bars.heights[0] != 60 {
		t.Errorf("Expected bars left untouched, got %f", bars.heights[0])
	}
}
