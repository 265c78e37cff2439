package chaos

// Action is a host-independent user command.
type Action int

const (
	NoAction Action = iota
	SelectParticles
	SelectFractal
	SelectMatrix
	SelectWaves
	SelectGlitch
	SelectSpiral
	ClearEffect
	ToggleAudio
	VolumeUp
	VolumeDown
	ToggleStats
)

// VolumeStep is the volume change of one VolumeUp or VolumeDown.
const VolumeStep = 10

// KeyMap maps DOM key codes to actions.
var KeyMap = map[int]Action{
	49:  SelectParticles, // 1
	50:  SelectFractal,   // 2
	51:  SelectMatrix,    // 3
	52:  SelectWaves,     // 4
	53:  SelectGlitch,    // 5
	54:  SelectSpiral,    // 6
	48:  ClearEffect,     // 0
	27:  ClearEffect,     // Esc
	77:  ToggleAudio,     // M
	187: VolumeUp,        // =+
	107: VolumeUp,        // numpad +
	189: VolumeDown,      // -
	109: VolumeDown,      // numpad -
	121: ToggleStats,     // F10
}

// TranslateKeyCode converts a key code to its action.
func TranslateKeyCode(keyCode int) Action {
	if a, ok := KeyMap[keyCode]; ok {
		return a
	}
	return NoAction
}

var selectActions = map[Action]EffectID{
	SelectParticles: Particles,
	SelectFractal:   Fractal,
	SelectMatrix:    Matrix,
	SelectWaves:     Waves,
	SelectGlitch:    Glitch,
	SelectSpiral:    Spiral,
}

// HandleAction applies a user command. It reports whether the action was
// recognised.
func (c *Controller) HandleAction(a Action) bool {
	if id, ok := selectActions[a]; ok {
		if err := c.Activate(id); err != nil {
			Errorf("chaos: %v", err)
		}
		return true
	}
	switch a {
	case ClearEffect:
		c.Teardown()
	case ToggleAudio:
		c.ToggleAudio()
	case VolumeUp:
		c.SetVolume(c.voices.Volume() + VolumeStep)
	case VolumeDown:
		c.SetVolume(c.voices.Volume() - VolumeStep)
	case ToggleStats:
		if c.stats == nil {
			return false
		}
		c.stats.Toggle()
	default:
		return false
	}
	return true
}
