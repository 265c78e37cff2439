//go:build !js
// +build !js

package desktop

import (
	"fmt"

	"github.com/hajimehoshi/oto/v2"
	"github.com/simukka/psychedelic-chaos/audio"
)

const (
	channelCount = 2
	bitDepth     = 0 // 32-bit float (oto.FormatFloat32LE), the format Mixer.Read produces
)

// Output streams a Mixer to the default audio device.
type Output struct {
	ctx    *oto.Context
	player oto.Player
}

// OpenOutput starts playback of m. The mixer never reports EOF, so the
// player runs until Close.
func OpenOutput(m *audio.Mixer) (*Output, error) {
	ctx, ready, err := oto.NewContext(int(m.SampleRate()), channelCount, bitDepth)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", audio.ErrAudioUnavailable, err)
	}
	<-ready

	player := ctx.NewPlayer(m)
	player.Play()
	return &Output{ctx: ctx, player: player}, nil
}

// Suspend pauses the device, e.g. while the window is hidden.
func (o *Output) Suspend() error {
	return o.ctx.Suspend()
}

// Resume restarts a suspended device.
func (o *Output) Resume() error {
	return o.ctx.Resume()
}

// Close stops playback.
func (o *Output) Close() error {
	return o.player.Close()
}
