package audio

var AudioConfig = Config{
	// Master settings
	MasterVolume: 0.3,
	SampleRate:   44100,

	// Envelope settings
	ToneGain:      0.1,
	BurstGain:     0.05,
	EnvelopeFloor: 0.001,

	// Noise burst settings
	NoiseAmplitude: 0.1,
	HighpassMin:    1000,
	HighpassMax:    4000,
	HighpassQ:      0.7071,

	// Analyser settings
	FFTSize:        128,
	Smoothing:      0.8,
	MinDecibels:    -100,
	MaxDecibels:    -30,
	MixBlockFrames: 128,

	// Visualizer settings
	Bands:        64,
	MaxBarHeight: 60,
	MinBarHeight: 2,
}
