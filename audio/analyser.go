//go:build !js
// +build !js

package audio

import (
	"math"

	"github.com/cwbudde/algo-dsp/dsp/spectrum"
	"github.com/cwbudde/algo-dsp/dsp/window"
)

// mixAnalyser keeps the last FFTSize bus samples and reports one byte per
// bin on the same scale as a Web Audio AnalyserNode: Blackman window, time
// smoothing, then decibels mapped from [MinDecibels, MaxDecibels] to 0-255.
type mixAnalyser struct {
	m        *Mixer
	size     int
	ring     []float64
	pos      int
	window   []float64
	scratch  []float64
	bins     *spectrum.MultiGoertzel
	smoothed []float64
	cfg      Config
}

func newAnalyser(m *Mixer, cfg Config) (*mixAnalyser, error) {
	n := cfg.FFTSize
	freqs := make([]float64, n/2)
	for k := range freqs {
		freqs[k] = float64(k) * m.sampleRate / float64(n)
	}
	bins, err := spectrum.NewMultiGoertzel(freqs, m.sampleRate)
	if err != nil {
		return nil, err
	}
	return &mixAnalyser{
		m:        m,
		size:     n,
		ring:     make([]float64, n),
		window:   window.Generate(window.TypeBlackman, n),
		scratch:  make([]float64, n),
		bins:     bins,
		smoothed: make([]float64, n/2),
		cfg:      cfg,
	}, nil
}

func (a *mixAnalyser) push(samples []float64) {
	for _, s := range samples {
		a.ring[a.pos] = s
		a.pos = (a.pos + 1) % a.size
	}
}

// FrequencyBinCount returns half the analysis window.
func (a *mixAnalyser) FrequencyBinCount() int {
	return a.size / 2
}

// ByteFrequencyData fills dst with the current spectrum.
func (a *mixAnalyser) ByteFrequencyData(dst []byte) {
	a.m.mu.Lock()
	defer a.m.mu.Unlock()

	for i := 0; i < a.size; i++ {
		a.scratch[i] = a.ring[(a.pos+i)%a.size] * a.window[i]
	}

	a.bins.Reset()
	a.bins.ProcessBlock(a.scratch)
	powers := a.bins.Powers()

	span := a.cfg.MaxDecibels - a.cfg.MinDecibels
	for k := 0; k < len(dst) && k < len(a.smoothed); k++ {
		mag := 0.0
		if k < len(powers) && powers[k] > 0 {
			mag = math.Sqrt(powers[k]) / float64(a.size)
		}
		a.smoothed[k] = a.cfg.Smoothing*a.smoothed[k] + (1-a.cfg.Smoothing)*mag

		if a.smoothed[k] <= 0 {
			dst[k] = 0
			continue
		}
		db := 20 * math.Log10(a.smoothed[k])
		v := 255 * (db - a.cfg.MinDecibels) / span
		if v < 0 {
			v = 0
		}
		if v > 255 {
			v = 255
		}
		dst[k] = byte(v)
	}
}
