package audio

// Bars receives visualizer bar heights.
type Bars interface {
	SetHeight(i int, units float64)
}

// Visualizer maps the bus spectrum onto a fixed row of bars.
type Visualizer struct {
	factory *Factory
	bars    Bars
	data    []byte
	heights []float64
	cfg     Config
}

// NewVisualizer creates a visualizer that samples f's graph into bars.
func NewVisualizer(f *Factory, bars Bars) *Visualizer {
	return &Visualizer{
		factory: f,
		bars:    bars,
		heights: make([]float64, AudioConfig.Bands),
		cfg:     AudioConfig,
	}
}

// Step samples the analyser once. It leaves the bars untouched and returns
// false when audio is disabled or unavailable.
func (v *Visualizer) Step() bool {
	if !v.factory.Available() {
		return false
	}
	an := v.factory.Graph().Analyser()
	if an == nil {
		return false
	}
	n := an.FrequencyBinCount()
	if cap(v.data) < n {
		v.data = make([]byte, n)
	}
	v.data = v.data[:n]
	an.ByteFrequencyData(v.data)

	for i := 0; i < len(v.heights) && i < n; i++ {
		h := v.barHeight(v.data[i])
		v.heights[i] = h
		if v.bars != nil {
			v.bars.SetHeight(i, h)
		}
	}
	return true
}

// Heights returns the last computed bar heights.
func (v *Visualizer) Heights() []float64 {
	return v.heights
}

func (v *Visualizer) barHeight(b byte) float64 {
	h := float64(b) / 255 * v.cfg.MaxBarHeight
	if h < v.cfg.MinBarHeight {
		return v.cfg.MinBarHeight
	}
	return h
}

// BarHeight maps an analyser byte onto bar units with the default config.
func BarHeight(b byte) float64 {
	v := Visualizer{cfg: AudioConfig}
	return v.barHeight(b)
}
