package audio

type Config struct {
	// Master settings
	MasterVolume float64 // Initial bus gain, 0.0 - 1.0
	SampleRate   float64 // Sample rate of the native mixer

	// Envelope settings
	ToneGain      float64 // Starting gain of a tone voice
	BurstGain     float64 // Starting gain of a noise burst voice
	EnvelopeFloor float64 // Near-silent target of every exponential decay

	// Noise burst settings
	NoiseAmplitude float64 // Scale of the uniform noise samples
	HighpassMin    float64 // Lowest randomized highpass cutoff (Hz)
	HighpassMax    float64 // Highest randomized highpass cutoff (Hz)
	HighpassQ      float64 // Highpass resonance

	// Analyser settings
	FFTSize        int     // Analysis window length, bins = FFTSize/2
	Smoothing      float64 // Time smoothing between analyser frames
	MinDecibels    float64 // Magnitude mapped to byte 0
	MaxDecibels    float64 // Magnitude mapped to byte 255
	MixBlockFrames int     // Frames rendered per mixer block

	// Visualizer settings
	Bands        int     // Bars displayed
	MaxBarHeight float64 // Bar height for a full-scale bin
	MinBarHeight float64 // Floor so silent bands stay visible
}
