package chaos

import "time"

// FrameID identifies a requested display frame.
type FrameID int

// TimerID identifies an interval or timeout.
type TimerID int

// Scheduler is the host's single-threaded callback dispatcher. Frame
// callbacks receive the host timestamp in milliseconds.
type Scheduler interface {
	RequestFrame(fn func(now float64)) FrameID
	CancelFrame(id FrameID)
	SetInterval(fn func(), d time.Duration) TimerID
	SetTimeout(fn func(), d time.Duration) TimerID
	ClearTimer(id TimerID)
}

// MinInterval is the shortest interval period a scheduler honours.
const MinInterval = time.Millisecond

type manualTimer struct {
	id    TimerID
	due   time.Duration
	every time.Duration
	seq   int
	fn    func()
}

type manualFrame struct {
	id FrameID
	fn func(now float64)
}

// ManualScheduler runs callbacks against a virtual clock. Timers fire in
// deadline order, ties broken by scheduling order. Frames requested during
// RunFrame wait for the next RunFrame.
type ManualScheduler struct {
	now     time.Duration
	nextID  int
	seq     int
	timers  map[TimerID]*manualTimer
	frames  []manualFrame
	running []manualFrame
}

// NewManualScheduler creates a scheduler at virtual time zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{timers: make(map[TimerID]*manualTimer)}
}

// Now returns the virtual clock.
func (s *ManualScheduler) Now() time.Duration {
	return s.now
}

func (s *ManualScheduler) id() int {
	s.nextID++
	return s.nextID
}

func (s *ManualScheduler) RequestFrame(fn func(now float64)) FrameID {
	id := FrameID(s.id())
	s.frames = append(s.frames, manualFrame{id: id, fn: fn})
	return id
}

func (s *ManualScheduler) CancelFrame(id FrameID) {
	for i := range s.running {
		if s.running[i].id == id {
			s.running[i].fn = nil
		}
	}
	for i, f := range s.frames {
		if f.id == id {
			s.frames = append(s.frames[:i], s.frames[i+1:]...)
			return
		}
	}
}

func (s *ManualScheduler) SetInterval(fn func(), d time.Duration) TimerID {
	if d < MinInterval {
		d = MinInterval
	}
	return s.add(fn, d, d)
}

func (s *ManualScheduler) SetTimeout(fn func(), d time.Duration) TimerID {
	if d < 0 {
		d = 0
	}
	return s.add(fn, d, 0)
}

func (s *ManualScheduler) add(fn func(), d, every time.Duration) TimerID {
	id := TimerID(s.id())
	s.seq++
	s.timers[id] = &manualTimer{id: id, due: s.now + d, every: every, seq: s.seq, fn: fn}
	return id
}

func (s *ManualScheduler) ClearTimer(id TimerID) {
	delete(s.timers, id)
}

func (s *ManualScheduler) nextDue(limit time.Duration) *manualTimer {
	var next *manualTimer
	for _, t := range s.timers {
		if t.due > limit {
			continue
		}
		if next == nil || t.due < next.due || (t.due == next.due && t.seq < next.seq) {
			next = t
		}
	}
	return next
}

// Advance moves the clock forward by d, firing every timer that falls due.
func (s *ManualScheduler) Advance(d time.Duration) {
	target := s.now + d
	for {
		t := s.nextDue(target)
		if t == nil {
			break
		}
		s.now = t.due
		if t.every > 0 {
			s.seq++
			t.due += t.every
			t.seq = s.seq
		} else {
			delete(s.timers, t.id)
		}
		t.fn()
	}
	s.now = target
}

// RunFrame dispatches the frames requested so far and returns how many ran.
func (s *ManualScheduler) RunFrame() int {
	s.running = s.frames
	s.frames = nil
	ran := 0
	ms := float64(s.now) / float64(time.Millisecond)
	for i := range s.running {
		fn := s.running[i].fn
		if fn == nil {
			continue
		}
		fn(ms)
		ran++
	}
	s.running = nil
	return ran
}

// Step advances the clock by d and then runs one frame.
func (s *ManualScheduler) Step(d time.Duration) int {
	s.Advance(d)
	return s.RunFrame()
}

// PendingTimers returns the number of live timers.
func (s *ManualScheduler) PendingTimers() int {
	return len(s.timers)
}

// PendingFrames returns the number of frames waiting for RunFrame.
func (s *ManualScheduler) PendingFrames() int {
	return len(s.frames)
}
