//go:build js
// +build js

package audio

import (
	"fmt"

	"github.com/gopherjs/gopherjs/js"
)

// WebGraph drives the browser Web Audio API. The master gain feeds a single
// analyser which feeds the destination.
type WebGraph struct {
	ctx        *js.Object
	masterGain *webGain
	analyser   *webAnalyser
}

// NewWebGraph creates the AudioContext and the bus chain.
func NewWebGraph() (*WebGraph, error) {
	audioCtx := js.Global.Get("AudioContext")
	if audioCtx == nil || audioCtx == js.Undefined {
		audioCtx = js.Global.Get("webkitAudioContext")
	}
	if audioCtx == nil || audioCtx == js.Undefined {
		return nil, ErrAudioUnavailable
	}

	ctx := audioCtx.New()
	master := ctx.Call("createGain")
	master.Get("gain").Set("value", AudioConfig.MasterVolume)

	an := ctx.Call("createAnalyser")
	an.Set("fftSize", AudioConfig.FFTSize)
	an.Set("smoothingTimeConstant", AudioConfig.Smoothing)

	master.Call("connect", an)
	an.Call("connect", ctx.Get("destination"))

	return &WebGraph{
		ctx:        ctx,
		masterGain: &webGain{obj: master},
		analyser:   &webAnalyser{obj: an},
	}, nil
}

// Resume wakes a context suspended by the browser autoplay policy.
func (w *WebGraph) Resume() {
	if w.ctx.Get("state").String() == "suspended" {
		w.ctx.Call("resume")
	}
}

// Close releases the audio device.
func (w *WebGraph) Close() {
	w.ctx.Call("close")
}

func (w *WebGraph) CurrentTime() float64 { return w.ctx.Get("currentTime").Float() }
func (w *WebGraph) SampleRate() float64  { return w.ctx.Get("sampleRate").Float() }
func (w *WebGraph) Bus() Gain            { return w.masterGain }
func (w *WebGraph) Analyser() Analyser   { return w.analyser }

func (w *WebGraph) NewOscillator(wave Waveform, freq float64) Source {
	osc := w.ctx.Call("createOscillator")
	osc.Set("type", string(wave))
	osc.Get("frequency").Set("value", freq)
	return &webSource{webNode: webNode{obj: osc}}
}

func (w *WebGraph) NewBufferSource(samples []float64) Source {
	sr := w.ctx.Get("sampleRate").Int()
	n := len(samples)
	if n == 0 {
		n = 1
	}
	buffer := w.ctx.Call("createBuffer", 1, n, sr)
	data := buffer.Call("getChannelData", 0)
	for i, s := range samples {
		data.SetIndex(i, s)
	}
	src := w.ctx.Call("createBufferSource")
	src.Set("buffer", buffer)
	return &webSource{webNode: webNode{obj: src}}
}

func (w *WebGraph) NewGain(initial float64) Gain {
	g := w.ctx.Call("createGain")
	g.Get("gain").Set("value", initial)
	return &webGain{obj: g}
}

func (w *WebGraph) NewHighpass(cutoff, q float64) Node {
	f := w.ctx.Call("createBiquadFilter")
	f.Set("type", "highpass")
	f.Get("frequency").Set("value", cutoff)
	f.Get("Q").Set("value", q)
	return &webNode{obj: f}
}

type jsBacked interface {
	object() *js.Object
}

type webNode struct {
	obj *js.Object
}

func (n *webNode) object() *js.Object { return n.obj }

func (n *webNode) Connect(dst Node) {
	if d, ok := dst.(jsBacked); ok {
		n.obj.Call("connect", d.object())
	}
}

type webSource struct {
	webNode
}

func (s *webSource) Start(at float64) {
	s.obj.Call("start", at)
}

// Stop converts the InvalidStateError thrown for finished nodes into an error.
func (s *webSource) Stop(at float64) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrAlreadyStopped, r)
		}
	}()
	s.obj.Call("stop", at)
	return nil
}

type webGain struct {
	obj *js.Object
}

func (g *webGain) object() *js.Object { return g.obj }

func (g *webGain) Connect(dst Node) {
	if d, ok := dst.(jsBacked); ok {
		g.obj.Call("connect", d.object())
	}
}

func (g *webGain) Gain() Param { return &webParam{obj: g.obj.Get("gain")} }

type webParam struct {
	obj *js.Object
}

func (p *webParam) SetValue(v float64)           { p.obj.Set("value", v) }
func (p *webParam) SetValueAtTime(v, at float64) { p.obj.Call("setValueAtTime", v, at) }
func (p *webParam) ExponentialRampToValueAtTime(v, at float64) {
	p.obj.Call("exponentialRampToValueAtTime", v, at)
}

type webAnalyser struct {
	obj  *js.Object
	data *js.Object
}

func (a *webAnalyser) FrequencyBinCount() int {
	return a.obj.Get("frequencyBinCount").Int()
}

func (a *webAnalyser) ByteFrequencyData(dst []byte) {
	if a.data == nil {
		a.data = js.Global.Get("Uint8Array").New(a.FrequencyBinCount())
	}
	a.obj.Call("getByteFrequencyData", a.data)
	for i := range dst {
		if i >= a.data.Length() {
			break
		}
		dst[i] = byte(a.data.Index(i).Int())
	}
}
