package playback

import (
	"iter"
	"math"
	"time"

	"github.com/san-kum/sortviz/internal/sorting"
)

// State is the scheduler's lifecycle position. Completion and cancellation
// both land back in Idle.
type State int

const (
	Idle State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "idle"
}

// Scheduler pulls steps from one producer at a bounded rate. The host calls
// Tick once per repaint opportunity; Tick never blocks and advances at most
// one step.
type Scheduler struct {
	onStep     func(sorting.Step)
	onComplete func()

	next     func() (sorting.Step, bool)
	stop     func()
	state    State
	interval time.Duration
	last     time.Time
	steps    int
}

func New(onStep func(sorting.Step), onComplete func()) *Scheduler {
	return &Scheduler{
		onStep:     onStep,
		onComplete: onComplete,
		interval:   time.Millisecond,
	}
}

// Start begins a session over seq. It is a no-op returning false when a
// session is already running.
func (s *Scheduler) Start(seq iter.Seq[sorting.Step], interval time.Duration, now time.Time) bool {
	if s.state == Running {
		return false
	}
	s.next, s.stop = iter.Pull(seq)
	s.state = Running
	s.last = now
	s.steps = 0
	s.SetInterval(interval)
	return true
}

// Tick advances the session when the interval has elapsed since the last
// step. It reports whether the session is still running, which is the
// host's cue to schedule another frame.
func (s *Scheduler) Tick(now time.Time) bool {
	if s.state != Running {
		return false
	}
	if now.Sub(s.last) < s.interval {
		return true
	}

	step, ok := s.next()
	if !ok {
		s.finish()
		if s.onComplete != nil {
			s.onComplete()
		}
		return false
	}
	s.steps++
	s.last = now
	if s.onStep != nil {
		s.onStep(step)
	}
	return s.state == Running
}

// Cancel drops the running session without signalling completion.
func (s *Scheduler) Cancel() {
	if s.state != Running {
		return
	}
	s.finish()
}

func (s *Scheduler) finish() {
	s.state = Idle
	if s.stop != nil {
		s.stop()
	}
	s.next, s.stop = nil, nil
}

// SetInterval changes the step interval, also for a running session.
func (s *Scheduler) SetInterval(d time.Duration) {
	if d < time.Millisecond {
		d = time.Millisecond
	}
	s.interval = d
}

func (s *Scheduler) Interval() time.Duration { return s.interval }
func (s *Scheduler) State() State            { return s.state }
func (s *Scheduler) Running() bool           { return s.state == Running }

// Steps returns how many steps the current or last session published.
func (s *Scheduler) Steps() int { return s.steps }

// EffectiveInterval converts a speed unit (milliseconds per step) into the
// interval for an algorithm, dividing by its multiplier and flooring at one
// millisecond.
func EffectiveInterval(speed int, multiplier float64) time.Duration {
	if multiplier <= 0 {
		multiplier = 1
	}
	ms := math.Max(1, float64(speed)/multiplier)
	return time.Duration(ms * float64(time.Millisecond))
}
