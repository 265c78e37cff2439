//go:build !js
// +build !js

package audio

import (
	"fmt"
	"math"
	"sync"

	"github.com/cwbudde/algo-dsp/dsp/filter/biquad"
	"github.com/cwbudde/algo-dsp/dsp/filter/design"
)

// Mixer is a pull-rendered audio graph for hosts without Web Audio. Every
// node renders one block at a time, the bus feeds the analyser, and Read
// streams the result as interleaved stereo float32 little-endian PCM.
type Mixer struct {
	mu         sync.Mutex
	sampleRate float64
	frame      int64 // frames rendered so far
	block      int64 // index of the block being rendered
	blockSize  int

	bus      *mixGain
	analyser *mixAnalyser
	out      []float64
}

// NewMixer creates a mixer at the given sample rate. The rate must be
// positive and finite.
func NewMixer(sampleRate float64) (*Mixer, error) {
	m := &Mixer{
		sampleRate: sampleRate,
		blockSize:  AudioConfig.MixBlockFrames,
		block:      -1,
	}
	m.bus = &mixGain{m: m, gain: newParam(m, AudioConfig.MasterVolume)}
	an, err := newAnalyser(m, AudioConfig)
	if err != nil {
		return nil, fmt.Errorf("audio: analyser at %v Hz: %w", sampleRate, err)
	}
	m.analyser = an
	return m, nil
}

// CurrentTime returns the render position in seconds.
func (m *Mixer) CurrentTime() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return float64(m.frame) / m.sampleRate
}

// SampleRate returns the mixer sample rate.
func (m *Mixer) SampleRate() float64 {
	return m.sampleRate
}

// Bus returns the shared mix bus.
func (m *Mixer) Bus() Gain {
	return m.bus
}

// Analyser returns the spectrum tap after the bus.
func (m *Mixer) Analyser() Analyser {
	return m.analyser
}

// Voices returns the number of chains still connected to the bus.
func (m *Mixer) Voices() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.bus.srcs)
}

// NewOscillator creates an oscillator source.
func (m *Mixer) NewOscillator(wave Waveform, freq float64) Source {
	return &mixSource{m: m, length: -1, stopFrame: -1, sample: oscillator(wave, freq, m.sampleRate)}
}

// NewBufferSource creates a one-shot source playing samples.
func (m *Mixer) NewBufferSource(samples []float64) Source {
	buf := append([]float64(nil), samples...)
	return &mixSource{
		m:         m,
		length:    int64(len(buf)),
		stopFrame: -1,
		sample:    func(i int64) float64 { return buf[i] },
	}
}

// NewGain creates a gain node.
func (m *Mixer) NewGain(initial float64) Gain {
	return &mixGain{m: m, gain: newParam(m, initial)}
}

// NewHighpass creates a second-order highpass filter.
func (m *Mixer) NewHighpass(cutoff, q float64) Node {
	if limit := m.sampleRate * 0.45; cutoff > limit {
		cutoff = limit
	}
	return &mixFilter{m: m, section: biquad.NewSection(design.Highpass(cutoff, q, m.sampleRate))}
}

// Render produces the next n mono frames of the bus output.
func (m *Mixer) Render(n int) []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]float64, 0, n)
	for len(out) < n {
		size := n - len(out)
		if size > m.blockSize {
			size = m.blockSize
		}
		out = append(out, m.renderBlock(size)...)
	}
	return out
}

// Read fills p with stereo float32 PCM. It never reports io.EOF.
func (m *Mixer) Read(p []byte) (int, error) {
	frames := len(p) / 8
	if frames == 0 {
		return 0, nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	written := 0
	for written < frames {
		size := frames - written
		if size > m.blockSize {
			size = m.blockSize
		}
		for i, s := range m.renderBlock(size) {
			putStereoF32(p, written+i, s)
		}
		written += size
	}
	return frames * 8, nil
}

// renderBlock must be called with m.mu held.
func (m *Mixer) renderBlock(n int) []float64 {
	m.block++
	out := m.bus.process(m.block, n)
	m.analyser.push(out)
	m.frame += int64(n)
	m.bus.prune(m.frame)
	return out
}

func (m *Mixer) frameAt(t float64) int64 {
	return int64(math.Round(t * m.sampleRate))
}

func putStereoF32(buf []byte, i int, sample float64) {
	if sample > 1 {
		sample = 1
	}
	if sample < -1 {
		sample = -1
	}
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

type mixNode interface {
	process(block int64, n int) []float64
	done(frame int64) bool
}

type mixInput interface {
	addInput(src mixNode)
}

func connect(m *Mixer, src mixNode, dst Node) {
	in, ok := dst.(mixInput)
	if !ok {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	in.addInput(src)
}

// inputs sums upstream nodes once per block.
type inputs struct {
	srcs  []mixNode
	block int64
	buf   []float64
}

func (in *inputs) addInput(src mixNode) {
	in.srcs = append(in.srcs, src)
}

func (in *inputs) sum(block int64, n int) []float64 {
	if cap(in.buf) < n {
		in.buf = make([]float64, n)
	}
	buf := in.buf[:n]
	for i := range buf {
		buf[i] = 0
	}
	for _, s := range in.srcs {
		for i, v := range s.process(block, n) {
			buf[i] += v
		}
	}
	return buf
}

func (in *inputs) allDone(frame int64) bool {
	if len(in.srcs) == 0 {
		return false
	}
	for _, s := range in.srcs {
		if !s.done(frame) {
			return false
		}
	}
	return true
}

type mixSource struct {
	m          *Mixer
	sample     func(i int64) float64
	length     int64 // -1 for endless
	started    bool
	startFrame int64
	stopFrame  int64 // -1 until stop is scheduled

	block int64
	buf   []float64
}

func (s *mixSource) Connect(dst Node) { connect(s.m, s, dst) }

func (s *mixSource) Start(at float64) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	s.started = true
	s.startFrame = s.m.frameAt(at)
	s.block = -1
}

func (s *mixSource) Stop(at float64) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if !s.started {
		return ErrNotStarted
	}
	if s.done(s.m.frame) {
		return ErrAlreadyStopped
	}
	f := s.m.frameAt(at)
	if f < s.m.frame {
		f = s.m.frame
	}
	if s.stopFrame < 0 || f < s.stopFrame {
		s.stopFrame = f
	}
	return nil
}

func (s *mixSource) end() int64 {
	end := int64(-1)
	if s.length >= 0 {
		end = s.startFrame + s.length
	}
	if s.stopFrame >= 0 && (end < 0 || s.stopFrame < end) {
		end = s.stopFrame
	}
	return end
}

func (s *mixSource) done(frame int64) bool {
	if !s.started {
		return false
	}
	end := s.end()
	return end >= 0 && frame >= end
}

func (s *mixSource) process(block int64, n int) []float64 {
	if s.block == block && len(s.buf) == n {
		return s.buf
	}
	s.block = block
	if cap(s.buf) < n {
		s.buf = make([]float64, n)
	}
	s.buf = s.buf[:n]
	end := s.end()
	for i := range s.buf {
		f := s.m.frame + int64(i)
		if !s.started || f < s.startFrame || (end >= 0 && f >= end) {
			s.buf[i] = 0
			continue
		}
		s.buf[i] = s.sample(f - s.startFrame)
	}
	return s.buf
}

func oscillator(wave Waveform, freq, sampleRate float64) func(i int64) float64 {
	return func(i int64) float64 {
		_, p := math.Modf(float64(i) * freq / sampleRate)
		switch wave {
		case Square:
			if p < 0.5 {
				return 1
			}
			return -1
		case Sawtooth:
			return 2*p - 1
		case Triangle:
			return 1 - 4*math.Abs(p-0.5)
		default:
			return math.Sin(2 * math.Pi * p)
		}
	}
}

type mixGain struct {
	m    *Mixer
	gain *mixParam
	inputs

	outBlock int64
	out      []float64
}

func (g *mixGain) Connect(dst Node) { connect(g.m, g, dst) }

func (g *mixGain) Gain() Param { return g.gain }

func (g *mixGain) done(frame int64) bool { return g.allDone(frame) }

func (g *mixGain) process(block int64, n int) []float64 {
	if g.outBlock == block && len(g.out) == n && g.out != nil {
		return g.out
	}
	g.outBlock = block
	in := g.sum(block, n)
	if cap(g.out) < n {
		g.out = make([]float64, n)
	}
	g.out = g.out[:n]
	for i, v := range in {
		t := float64(g.m.frame+int64(i)) / g.m.sampleRate
		g.out[i] = v * g.gain.valueAt(t)
	}
	g.gain.compact(float64(g.m.frame) / g.m.sampleRate)
	return g.out
}

// prune drops finished chains so the bus does not grow without bound.
func (g *mixGain) prune(frame int64) {
	kept := g.srcs[:0]
	for _, s := range g.srcs {
		if !s.done(frame) {
			kept = append(kept, s)
		}
	}
	for i := len(kept); i < len(g.srcs); i++ {
		g.srcs[i] = nil
	}
	g.srcs = kept
}

type mixFilter struct {
	m       *Mixer
	section *biquad.Section
	inputs

	outBlock int64
	out      []float64
}

func (f *mixFilter) Connect(dst Node) { connect(f.m, f, dst) }

func (f *mixFilter) done(frame int64) bool { return f.allDone(frame) }

func (f *mixFilter) process(block int64, n int) []float64 {
	if f.outBlock == block && len(f.out) == n && f.out != nil {
		return f.out
	}
	f.outBlock = block
	in := f.sum(block, n)
	if cap(f.out) < n {
		f.out = make([]float64, n)
	}
	f.out = f.out[:n]
	copy(f.out, in)
	f.section.ProcessBlock(f.out)
	return f.out
}

type automation struct {
	at    float64
	value float64
	ramp  bool
	from  float64 // time a ramp was scheduled, used when nothing precedes it
}

type mixParam struct {
	m      *Mixer
	value  float64
	events []automation
}

func newParam(m *Mixer, v float64) *mixParam {
	return &mixParam{m: m, value: v}
}

func (p *mixParam) SetValue(v float64) {
	p.m.mu.Lock()
	defer p.m.mu.Unlock()
	p.value = v
	p.events = p.events[:0]
}

func (p *mixParam) SetValueAtTime(v, at float64) {
	p.m.mu.Lock()
	defer p.m.mu.Unlock()
	p.insert(automation{at: at, value: v})
}

func (p *mixParam) ExponentialRampToValueAtTime(v, at float64) {
	p.m.mu.Lock()
	defer p.m.mu.Unlock()
	p.insert(automation{at: at, value: v, ramp: true, from: float64(p.m.frame) / p.m.sampleRate})
}

func (p *mixParam) insert(e automation) {
	i := len(p.events)
	for i > 0 && p.events[i-1].at > e.at {
		i--
	}
	p.events = append(p.events, automation{})
	copy(p.events[i+1:], p.events[i:])
	p.events[i] = e
}

func (p *mixParam) valueAt(t float64) float64 {
	prevV, prevT, havePrev := p.value, 0.0, false
	for _, e := range p.events {
		if e.at <= t {
			prevV, prevT, havePrev = e.value, e.at, true
			continue
		}
		if !e.ramp {
			return prevV
		}
		start := prevT
		if !havePrev {
			start = e.from
		}
		if e.at <= start {
			return e.value
		}
		return expInterp(prevV, e.value, (t-start)/(e.at-start))
	}
	return prevV
}

// compact folds events that lie entirely in the past into the base value.
func (p *mixParam) compact(t float64) {
	drop := 0
	for drop < len(p.events)-1 && p.events[drop+1].at <= t {
		drop++
	}
	if drop == 0 {
		return
	}
	p.value = p.events[drop-1].value
	p.events = append(p.events[:0], p.events[drop:]...)
}

func expInterp(v0, v1, frac float64) float64 {
	if frac <= 0 {
		return v0
	}
	if frac >= 1 {
		return v1
	}
	if v0 <= 0 || v1 <= 0 {
		return v0 + (v1-v0)*frac
	}
	return v0 * math.Pow(v1/v0, frac)
}
