package chaos

import (
	"errors"
	"testing"
	"time"

	"github.com/simukka/psychedelic-chaos/audio"
)

// --- Lifecycle Tests ---

// TestActivate_OnlyNewEffectProducesOutput tests that a switched-out effect never runs again
func TestActivate_OnlyNewEffectProducesOutput(t *testing.T) {
	r := newRig()
	a := &stubEffect{id: Particles}
	b := &stubEffect{id: Fractal}
	r.ctl.Register(Particles, func() Effect { return a })
	r.ctl.Register(Fractal, func() Effect { return b })

	if err := r.ctl.Activate(Particles); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	r.sched.Step(100 * time.Millisecond)

	if a.updates != 2 {
		t.Errorf("Expected 2 updates before the switch, got %d", a.updates)
	}
	if a.triggers != 1 {
		t.Errorf("Expected 1 audio trigger before the switch, got %d", a.triggers)
	}

	if err := r.ctl.Activate(Fractal); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	updates, triggers := a.updates, a.triggers

	for i := 0; i < 10; i++ {
		r.sched.Step(100 * time.Millisecond)
	}

	if a.updates != updates {
		t.Errorf("Expected old effect to stay at %d updates, got %d", updates, a.updates)
	}
	if a.triggers != triggers {
		t.Errorf("Expected old effect to stay at %d triggers, got %d", triggers, a.triggers)
	}
	if !a.exited {
		t.Error("Expected old effect to be exited")
	}
	if b.updates != 11 {
		t.Errorf("Expected 11 updates of the new effect, got %d", b.updates)
	}
	if b.triggers != 10 {
		t.Errorf("Expected 10 triggers of the new effect, got %d", b.triggers)
	}
	if r.sched.PendingTimers() != 1 {
		t.Errorf("Expected only the live interval to remain, got %d timers", r.sched.PendingTimers())
	}
}

// TestActivate_SameEffectTwice tests that reactivating an effect invalidates its old callbacks
func TestActivate_SameEffectTwice(t *testing.T) {
	r := newRig()
	var stubs []*stubEffect
	r.ctl.Register(Spiral, func() Effect {
		p := &stubEffect{id: Spiral}
		stubs = append(stubs, p)
		return p
	})

	r.ctl.Activate(Spiral)
	gen := r.ctl.Generation()
	r.ctl.Activate(Spiral)

	if r.ctl.Generation() == gen {
		t.Error("Expected generation to change on reactivation")
	}

	r.sched.Advance(time.Second)
	if stubs[0].triggers != 0 {
		t.Errorf("Expected first activation to stay silent, got %d triggers", stubs[0].triggers)
	}
	if stubs[1].triggers != 10 {
		t.Errorf("Expected 10 triggers of second activation, got %d", stubs[1].triggers)
	}
}

// TestTeardown_BeforeAnyActivation tests that teardown is safe on a fresh controller
func TestTeardown_BeforeAnyActivation(t *testing.T) {
	r := newRig()
	r.ctl.Teardown()
	r.ctl.Teardown()

	if r.ctl.Active() != None {
		t.Errorf("Expected none, got %s", r.ctl.Active())
	}
	if r.surface.clears != 2 {
		t.Errorf("Expected 2 clears, got %d", r.surface.clears)
	}
}

type selfStopping struct {
	stubEffect
	ctl *Controller
}

func (s *selfStopping) Update(rt *Runtime) {
	s.stubEffect.Update(rt)
	if s.updates == 2 {
		s.ctl.Teardown()
	}
}

// TestTeardown_FromInsideFrame tests that a frame tearing down the engine schedules nothing
func TestTeardown_FromInsideFrame(t *testing.T) {
	r := newRig()
	s := &selfStopping{stubEffect: stubEffect{id: Matrix}, ctl: r.ctl}
	r.ctl.Register(Matrix, func() Effect { return s })

	r.ctl.Activate(Matrix)
	r.sched.RunFrame()

	if r.sched.PendingFrames() != 0 {
		t.Errorf("Expected no pending frames, got %d", r.sched.PendingFrames())
	}
	r.sched.Step(time.Second)
	if s.updates != 2 {
		t.Errorf("Expected 2 updates, got %d", s.updates)
	}
	if r.ctl.Active() != None {
		t.Errorf("Expected none, got %s", r.ctl.Active())
	}
}

// TestTeardown_StopsSustainedVoices tests that drones are force-stopped on switch
func TestTeardown_StopsSustainedVoices(t *testing.T) {
	r := newRig()
	r.ctl.Activate(Waves)
	r.sched.Advance(1500 * time.Millisecond)

	if r.ctl.Transport().Len() != 4 {
		t.Fatalf("Expected 4 sustained drones, got %d", r.ctl.Transport().Len())
	}

	r.ctl.Activate(Glitch)

	if r.ctl.Transport().Len() != 0 {
		t.Errorf("Expected empty transport, got %d", r.ctl.Transport().Len())
	}
	drones := r.graph.tones(audio.Sine)
	if len(drones) != 4 {
		t.Fatalf("Expected 4 sine drones, got %d", len(drones))
	}
	for i, d := range drones {
		// one scheduled stop at creation plus the forced stop
		if d.stops != 2 {
			t.Errorf("Expected drone %d to be stopped twice, got %d", i, d.stops)
		}
	}
}

// TestTeardown_DropsStaggeredDrones tests that drones scheduled before a switch never start
func TestTeardown_DropsStaggeredDrones(t *testing.T) {
	r := newRig()
	r.ctl.Activate(Waves)
	r.sched.Advance(600 * time.Millisecond)
	r.ctl.Teardown()
	r.sched.Advance(2 * time.Second)

	if n := len(r.graph.tones(audio.Sine)); n != 2 {
		t.Errorf("Expected 2 drones, got %d", n)
	}
	if r.ctl.Transport().Len() != 0 {
		t.Errorf("Expected empty transport, got %d", r.ctl.Transport().Len())
	}
}

// TestTeardown_RemovesGlitchLabels tests that overlay artifacts are removed with the effect
func TestTeardown_RemovesGlitchLabels(t *testing.T) {
	r := newRig()
	r.ctl.Activate(Glitch)
	for i := 0; i < 100 && r.overlay.Count() == 0; i++ {
		r.sched.Step(100 * time.Millisecond)
	}
	if r.overlay.Count() == 0 {
		t.Fatal("Expected glitch to show at least one label")
	}

	r.ctl.Teardown()

	if r.overlay.Count() != 0 {
		t.Errorf("Expected no labels, got %d", r.overlay.Count())
	}
	snap := r.ctl.Snapshot()
	if snap.Entities != 0 {
		t.Errorf("Expected 0 entities, got %d", snap.Entities)
	}
	if snap.Effect != None {
		t.Errorf("Expected none, got %s", snap.Effect)
	}
}

// TestActivate_UnknownEffect tests that an unregistered id leaves the engine torn down
func TestActivate_UnknownEffect(t *testing.T) {
	tests := []struct {
		name string
		id   EffectID
	}{
		{"unregistered", EffectID(42)},
		{"none", None},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig()
			r.ctl.Activate(Particles)

			err := r.ctl.Activate(tt.id)
			if !errors.Is(err, ErrUnknownEffect) {
				t.Errorf("Expected ErrUnknownEffect, got %v", err)
			}
			if r.ctl.Active() != None {
				t.Errorf("Expected none, got %s", r.ctl.Active())
			}
			if r.sched.PendingFrames() != 0 {
				t.Errorf("Expected no pending frames, got %d", r.sched.PendingFrames())
			}
		})
	}
}

// --- Scenario Tests ---

// TestFractal_ChordStaggering tests that a switch between chord notes drops the late notes
func TestFractal_ChordStaggering(t *testing.T) {
	tests := []struct {
		name string
		swap bool
		want int
	}{
		{"switch at +10ms", true, 1},
		{"no switch", false, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig()
			r.ctl.Activate(Fractal)
			r.sched.Advance(1500 * time.Millisecond)

			if n := len(r.graph.tones(audio.Triangle)); n != 1 {
				t.Fatalf("Expected first note at once, got %d notes", n)
			}

			r.sched.Advance(10 * time.Millisecond)
			if tt.swap {
				r.ctl.Activate(Matrix)
			}
			r.sched.Advance(190 * time.Millisecond)

			if n := len(r.graph.tones(audio.Triangle)); n != tt.want {
				t.Errorf("Expected %d chord notes, got %d", tt.want, n)
			}
		})
	}
}

// TestDisabledAudio_VisualsContinue tests that every effect renders with audio off
func TestDisabledAudio_VisualsContinue(t *testing.T) {
	for _, id := range []EffectID{Particles, Fractal, Matrix, Waves, Glitch, Spiral} {
		t.Run(id.String(), func(t *testing.T) {
			r := newRig()
			r.voices.SetEnabled(false)

			if v := r.voices.Tone(440, audio.Sine, 1); v != nil {
				t.Error("Expected nil tone while disabled")
			}
			if v := r.voices.Burst(0.1); v != nil {
				t.Error("Expected nil burst while disabled")
			}

			r.ctl.Activate(id)
			for i := 0; i < 5; i++ {
				r.sched.Step(200 * time.Millisecond)
			}

			if frames := r.ctl.Snapshot().Frames; frames < 5 {
				t.Errorf("Expected at least 5 frames, got %d", frames)
			}
			if len(r.graph.sources) != 0 {
				t.Errorf("Expected no sources, got %d", len(r.graph.sources))
			}
		})
	}
}

// TestGlitch_FrameCadence tests that glitch renders every 100ms and clears first
func TestGlitch_FrameCadence(t *testing.T) {
	r := newRig()
	r.ctl.Activate(Glitch)
	clears := r.surface.clears

	if r.ctl.Snapshot().Frames != 1 {
		t.Fatalf("Expected first frame on activation, got %d", r.ctl.Snapshot().Frames)
	}

	r.sched.Advance(99 * time.Millisecond)
	if r.sched.PendingFrames() != 0 {
		t.Errorf("Expected no frame before 100ms, got %d", r.sched.PendingFrames())
	}

	r.sched.Advance(time.Millisecond)
	if r.sched.PendingFrames() != 1 {
		t.Errorf("Expected a frame at 100ms, got %d", r.sched.PendingFrames())
	}
	if r.surface.clears != clears+1 {
		t.Errorf("Expected surface cleared before the frame, got %d clears", r.surface.clears-clears)
	}

	r.sched.RunFrame()
	if r.ctl.Snapshot().Frames != 2 {
		t.Errorf("Expected 2 frames, got %d", r.ctl.Snapshot().Frames)
	}
}

// TestGlitch_LabelExpires tests that labels vanish after one second
func TestGlitch_LabelExpires(t *testing.T) {
	r := newRig()
	r.ctl.Activate(Glitch)
	for i := 0; i < 100 && r.overlay.Count() == 0; i++ {
		r.sched.Step(100 * time.Millisecond)
	}
	if r.overlay.Count() == 0 {
		t.Fatal("Expected glitch to show at least one label")
	}

	var first LabelID
	var text string
	r.overlay.ForEach(func(l *Label) {
		if first == 0 {
			first, text = l.ID, l.Text
		}
	})
	if len(text) != len("ERROR_")+5 || text[:6] != "ERROR_" {
		t.Errorf("Expected ERROR_xxxxx label, got %q", text)
	}

	r.sched.Advance(time.Second)

	r.overlay.ForEach(func(l *Label) {
		if l.ID == first {
			t.Errorf("Expected label %d to be expired", first)
		}
	})
}

// --- Host Entry Point Tests ---

// TestToggleAudio_StopsDrones tests the global audio switch
func TestToggleAudio_StopsDrones(t *testing.T) {
	r := newRig()
	r.ctl.Activate(Waves)
	r.sched.Advance(1500 * time.Millisecond)

	if on := r.ctl.ToggleAudio(); on {
		t.Error("Expected audio off")
	}
	if r.ctl.Transport().Len() != 0 {
		t.Errorf("Expected empty transport, got %d", r.ctl.Transport().Len())
	}
	if r.voices.Enabled() {
		t.Error("Expected voices disabled")
	}
	if on := r.ctl.ToggleAudio(); !on {
		t.Error("Expected audio on")
	}
	if r.ctl.Active() != Waves {
		t.Errorf("Expected waves to keep running, got %s", r.ctl.Active())
	}
}

// TestSetVolume tests the linear volume mapping onto the bus
func TestSetVolume(t *testing.T) {
	tests := []struct {
		percent float64
		want    float64
	}{
		{0, 0},
		{50, 0.5},
		{100, 1},
		{150, 1},
	}

	for _, tt := range tests {
		r := newRig()
		got := r.ctl.SetVolume(tt.percent)
		if got != tt.want {
			t.Errorf("Expected gain %v for %v%%, got %v", tt.want, tt.percent, got)
		}
		if r.graph.bus.param.value != tt.want {
			t.Errorf("Expected bus gain %v, got %v", tt.want, r.graph.bus.param.value)
		}
	}
}

// TestResize_KeepsEffect tests that resizing does not restart the effect
func TestResize_KeepsEffect(t *testing.T) {
	r := newRig()
	r.ctl.Activate(Particles)
	gen := r.ctl.Generation()

	r.ctl.Resize(400, 300)
	r.sched.RunFrame()

	if w, h := r.surface.Size(); w != 400 || h != 300 {
		t.Errorf("Expected 400x300, got %vx%v", w, h)
	}
	if r.ctl.Generation() != gen || r.ctl.Active() != Particles {
		t.Error("Expected particles to keep running after resize")
	}
}

type recordingBars struct {
	heights map[int]float64
}

func (b *recordingBars) SetHeight(i int, units float64) {
	b.heights[i] = units
}

// TestVisualizer_IgnoresActiveEffect tests that the visualizer keeps sampling across teardowns
func TestVisualizer_IgnoresActiveEffect(t *testing.T) {
	r := newRig()
	bars := &recordingBars{heights: make(map[int]float64)}
	r.graph.analyser.level = 255
	r.ctl.StartVisualizer(audio.NewVisualizer(r.voices, bars))
	r.ctl.StartVisualizer(audio.NewVisualizer(r.voices, bars))

	r.sched.RunFrame()
	if r.graph.analyser.reads != 1 {
		t.Errorf("Expected 1 read, got %d", r.graph.analyser.reads)
	}
	if len(bars.heights) != 64 || bars.heights[0] != 60 {
		t.Errorf("Expected 64 full bars, got %d bars, first %v", len(bars.heights), bars.heights[0])
	}

	r.ctl.Activate(Spiral)
	r.ctl.Teardown()
	r.sched.RunFrame()
	if r.graph.analyser.reads != 2 {
		t.Errorf("Expected visualizer to survive teardown, got %d reads", r.graph.analyser.reads)
	}

	r.voices.SetEnabled(false)
	r.graph.analyser.level = 0
	r.sched.RunFrame()
	r.sched.RunFrame()
	if r.graph.analyser.reads != 2 {
		t.Errorf("Expected no reads while disabled, got %d", r.graph.analyser.reads)
	}
	if bars.heights[0] != 60 {
		t.Errorf("Expected bars left untouched, got %v", bars.heights[0])
	}
	if r.sched.PendingFrames() != 1 {
		t.Errorf("Expected the loop to keep running, got %d pending frames", r.sched.PendingFrames())
	}
}
