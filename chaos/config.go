package chaos

import "time"

type Config struct {
	// Particle storm
	ParticleCount         int           // Population kept alive at all times
	ParticleSpeed         float64       // Max absolute velocity per axis
	ParticleSizeMin       float64       // Smallest particle edge
	ParticleSizeMax       float64       // Largest particle edge
	ParticleLifeMin       int           // Shortest lifetime in frames
	ParticleLifeMax       int           // Longest lifetime in frames, inclusive
	ParticleTrail         float64       // Alpha of the per-frame fade
	ParticleAudioInterval time.Duration // Audio trigger period
	ParticleToneChance    float64       // Chance of a random tone per trigger
	ParticleBurstChance   float64       // Chance of a noise burst per trigger
	ParticleBurstDuration float64       // Noise burst length (s)
	ParticleToneMin       float64       // Shortest random tone (s)
	ParticleToneMax       float64       // Longest random tone (s)
	ParticleFreqs         []float64     // Random tone candidates (Hz)

	// Fractal chaos
	FractalPoints     int           // Points on the ring
	FractalSatellites int           // Satellites per point
	FractalTrail      float64       // Alpha of the per-frame fade
	ChordInterval     time.Duration // Chord period
	ChordStagger      time.Duration // Delay between chord notes
	ChordRatios       []float64     // Note ratios against the base
	ChordBaseMin      float64       // Lowest chord base (Hz)
	ChordBaseMax      float64       // Highest chord base (Hz)
	ChordNoteDuration float64       // Length of each note (s)

	// Matrix rain
	MatrixColumnWidth     float64       // Horizontal spacing of drops
	MatrixGlyphs          string        // Glyph alphabet
	MatrixSpeedMin        float64       // Slowest fall speed
	MatrixSpeedMax        float64       // Fastest fall speed
	MatrixSpawnTop        float64       // Highest initial y
	MatrixRespawnTop      float64       // Highest respawn y
	MatrixTrail           float64       // Alpha of the per-frame fade
	MatrixGlyphChance     float64       // Chance a drop changes glyph per frame
	MatrixAudioInterval   time.Duration // Audio trigger period
	MatrixToneChance      float64       // Chance of a square blip per trigger
	MatrixToneMin         float64       // Lowest blip (Hz)
	MatrixToneMax         float64       // Highest blip (Hz)
	MatrixToneDuration    float64       // Blip length (s)
	MatrixRecycleChance   float64       // Chance of a tone on respawn
	MatrixRecycleMin      float64       // Lowest respawn tone (Hz)
	MatrixRecycleMax      float64       // Highest respawn tone (Hz)
	MatrixRecycleDuration float64       // Respawn tone length (s)

	// Psychedelic waves
	WaveCell      float64       // Grid cell edge
	WaveClockStep float64       // Clock advance per frame
	DroneFreqs    []float64     // Sustained drone frequencies (Hz)
	DroneStagger  time.Duration // Delay between drone onsets
	DroneDuration float64       // Drone length (s)

	// Glitch art
	GlitchBlocks        int           // Color blocks per frame
	GlitchLines         int           // Stroked lines per frame
	GlitchLabelChance   float64       // Chance of an error label per frame
	GlitchLabelLife     time.Duration // Label lifetime
	GlitchFrameDelay    time.Duration // Render cadence
	GlitchAudioInterval time.Duration // Audio trigger period
	GlitchBurstMin      float64       // Shortest noise burst (s)
	GlitchBurstMax      float64       // Longest noise burst (s)
	GlitchToneChance    float64       // Chance of a sawtooth per trigger
	GlitchToneMin       float64       // Lowest sawtooth (Hz)
	GlitchToneMax       float64       // Highest sawtooth (Hz)
	GlitchToneDuration  float64       // Sawtooth length (s)

	// Neon spiral
	SpiralPoints       int           // Points along the spiral
	SpiralTrail        float64       // Alpha of the per-frame fade
	SpiralGlow         float64       // Shadow blur of each point
	SpiralScales       [][]float64   // Melodic scales (Hz)
	SpiralInterval     time.Duration // Melody period
	SpiralNoteDuration float64       // Note length (s)
}

var DefaultConfig = Config{
	ParticleCount:         200,
	ParticleSpeed:         5,
	ParticleSizeMin:       1,
	ParticleSizeMax:       4,
	ParticleLifeMin:       50,
	ParticleLifeMax:       200,
	ParticleTrail:         0.1,
	ParticleAudioInterval: 100 * time.Millisecond,
	ParticleToneChance:    0.3,
	ParticleBurstChance:   0.1,
	ParticleBurstDuration: 0.05,
	ParticleToneMin:       0.1,
	ParticleToneMax:       0.6,
	ParticleFreqs:         []float64{220, 330, 440, 550, 660, 770, 880, 1100},

	FractalPoints:     100,
	FractalSatellites: 5,
	FractalTrail:      0.05,
	ChordInterval:     1500 * time.Millisecond,
	ChordStagger:      50 * time.Millisecond,
	ChordRatios:       []float64{1, 1.26, 1.498, 1.782},
	ChordBaseMin:      100,
	ChordBaseMax:      300,
	ChordNoteDuration: 2,

	MatrixColumnWidth:     10,
	MatrixGlyphs:          "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ!@#$%^&*()",
	MatrixSpeedMin:        2,
	MatrixSpeedMax:        8,
	MatrixSpawnTop:        -500,
	MatrixRespawnTop:      -200,
	MatrixTrail:           0.1,
	MatrixGlyphChance:     0.05,
	MatrixAudioInterval:   150 * time.Millisecond,
	MatrixToneChance:      0.4,
	MatrixToneMin:         200,
	MatrixToneMax:         1200,
	MatrixToneDuration:    0.1,
	MatrixRecycleChance:   0.1,
	MatrixRecycleMin:      800,
	MatrixRecycleMax:      1200,
	MatrixRecycleDuration: 0.05,

	WaveCell:      5,
	WaveClockStep: 3,
	DroneFreqs:    []float64{55, 82.5, 110, 165},
	DroneStagger:  500 * time.Millisecond,
	DroneDuration: 10,

	GlitchBlocks:        20,
	GlitchLines:         10,
	GlitchLabelChance:   0.3,
	GlitchLabelLife:     time.Second,
	GlitchFrameDelay:    100 * time.Millisecond,
	GlitchAudioInterval: 200 * time.Millisecond,
	GlitchBurstMin:      0.1,
	GlitchBurstMax:      0.3,
	GlitchToneChance:    0.3,
	GlitchToneMin:       50,
	GlitchToneMax:       2050,
	GlitchToneDuration:  0.1,

	SpiralPoints: 500,
	SpiralTrail:  0.05,
	SpiralGlow:   10,
	SpiralScales: [][]float64{
		{220, 247, 277, 294, 330, 370, 415},
		{261, 293, 329, 349, 392, 440, 493},
	},
	SpiralInterval:     300 * time.Millisecond,
	SpiralNoteDuration: 0.3,
}
