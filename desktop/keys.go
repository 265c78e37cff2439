//go:build !js
// +build !js

package desktop

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/simukka/psychedelic-chaos/chaos"
)

// keyCodes maps window keys onto the DOM key codes of chaos.KeyMap so both
// hosts share one key map.
var keyCodes = map[ebiten.Key]int{
	ebiten.KeyDigit0:         48,
	ebiten.KeyDigit1:         49,
	ebiten.KeyDigit2:         50,
	ebiten.KeyDigit3:         51,
	ebiten.KeyDigit4:         52,
	ebiten.KeyDigit5:         53,
	ebiten.KeyDigit6:         54,
	ebiten.KeyEscape:         27,
	ebiten.KeyM:              77,
	ebiten.KeyEqual:          187,
	ebiten.KeyNumpadAdd:      107,
	ebiten.KeyMinus:          189,
	ebiten.KeyNumpadSubtract: 109,
	ebiten.KeyF10:            121,
}

var isKeyJustPressed = inpututil.IsKeyJustPressed

// pressedActions returns the actions whose keys went down this tick, ordered
// by key code.
func pressedActions(pressed func(ebiten.Key) bool) []chaos.Action {
	var codes []int
	for key, code := range keyCodes {
		if pressed(key) {
			codes = append(codes, code)
		}
	}
	sort.Ints(codes)

	var actions []chaos.Action
	for _, code := range codes {
		if a := chaos.TranslateKeyCode(code); a != chaos.NoAction {
			actions = append(actions, a)
		}
	}
	return actions
}
