package audio

import "errors"

var (
	// ErrAudioUnavailable is returned when no audio device or API exists.
	ErrAudioUnavailable = errors.New("audio: unavailable")
	// ErrNotStarted is returned when stopping a source that never started.
	ErrNotStarted = errors.New("audio: source not started")
	// ErrAlreadyStopped is returned when stopping a source that already finished.
	ErrAlreadyStopped = errors.New("audio: source already stopped")
)

// Waveform selects the oscillator shape.
type Waveform string

const (
	Sine     Waveform = "sine"
	Square   Waveform = "square"
	Sawtooth Waveform = "sawtooth"
	Triangle Waveform = "triangle"
)

// Waveforms lists every oscillator shape.
var Waveforms = []Waveform{Sine, Triangle, Sawtooth, Square}

// Param is an automatable node parameter. Times are in graph seconds.
type Param interface {
	SetValue(v float64)
	SetValueAtTime(v, at float64)
	ExponentialRampToValueAtTime(v, at float64)
}

// Node is anything that can feed another node.
type Node interface {
	Connect(dst Node)
}

// Source generates sound between Start and Stop.
type Source interface {
	Node
	Start(at float64)
	Stop(at float64) error
}

// Gain scales the sum of its inputs.
type Gain interface {
	Node
	Gain() Param
}

// Analyser exposes the spectrum of the signal passing through it.
type Analyser interface {
	FrequencyBinCount() int
	ByteFrequencyData(dst []byte)
}

// Graph is the audio device surface the engine drives. Voices connect to
// the shared Bus, which feeds the Analyser before the device output.
type Graph interface {
	CurrentTime() float64
	SampleRate() float64
	Bus() Gain
	Analyser() Analyser
	NewOscillator(wave Waveform, freq float64) Source
	NewBufferSource(samples []float64) Source
	NewGain(initial float64) Gain
	NewHighpass(cutoff, q float64) Node
}
