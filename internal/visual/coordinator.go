package visual

import (
	"log/slog"
	"math/rand"
	"slices"
	"time"

	"github.com/san-kum/sortviz/internal/playback"
	"github.com/san-kum/sortviz/internal/sorting"
)

const (
	DefaultBaseFrequency  = 200.0
	DefaultFrequencyScale = 5.0
	DefaultSweepStride    = 30 * time.Millisecond
	DefaultSize           = 60
	DefaultSpeed          = 50
)

// Tone receives one frequency per sounded step. Implementations must not
// block and must swallow their own failures.
type Tone interface {
	Play(freq float64)
}

// ToneFunc adapts a plain function to Tone.
type ToneFunc func(freq float64)

func (f ToneFunc) Play(freq float64) { f(freq) }

type silent struct{}

func (silent) Play(float64) {}

type Options struct {
	Algorithm      sorting.ID
	Size           int
	Speed          int
	BaseFrequency  float64
	FrequencyScale float64
	SweepStride    time.Duration
	// Seed drives the permutation generator; zero picks a time-based seed.
	Seed int64
}

func DefaultOptions() Options {
	return Options{
		Algorithm:      sorting.Bubble,
		Size:           DefaultSize,
		Speed:          DefaultSpeed,
		BaseFrequency:  DefaultBaseFrequency,
		FrequencyScale: DefaultFrequencyScale,
		SweepStride:    DefaultSweepStride,
	}
}

// Snapshot is the state a frontend renders from. Array is a copy.
type Snapshot struct {
	Array     []int
	Highlight sorting.Pair
	Complete  bool
	Running   bool
	Sweeping  bool
	Algorithm sorting.Descriptor
	Size      int
	Speed     int
	Interval  time.Duration
	// Applied counts state updates applied since the last reset; Pulled
	// counts steps the scheduler handed over, coalesced ones included.
	Applied int
	Pulled  int
}

// sweep is the post-completion reveal: index i fires at start + i*stride.
type sweep struct {
	start  time.Time
	values []int
	next   int
}

// Coordinator owns the working array and everything the frontend shows. It
// is driven entirely from the host's frame callback and is not safe for
// concurrent use.
type Coordinator struct {
	opts  Options
	rng   *rand.Rand
	tone  Tone
	log   *slog.Logger
	sched *playback.Scheduler

	array     []int
	highlight sorting.Pair
	complete  bool
	pending   *sorting.Step
	applied   int
	pulled    int
	sweep     *sweep
	now       time.Time
}

func New(opts Options, tone Tone, log *slog.Logger) *Coordinator {
	if tone == nil {
		tone = silent{}
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if opts.SweepStride <= 0 {
		opts.SweepStride = DefaultSweepStride
	}
	if opts.Algorithm == "" {
		opts.Algorithm = sorting.Bubble
	}
	sorting.Lookup(opts.Algorithm)

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	c := &Coordinator{
		opts: opts,
		rng:  rand.New(rand.NewSource(seed)),
		tone: tone,
		log:  log,
	}
	c.sched = playback.New(c.HandleStep, c.handleComplete)
	c.Reset()
	return c
}

// HandleStep stores s as the pending update. A step that arrives before the
// previous one was applied replaces it.
func (c *Coordinator) HandleStep(s sorting.Step) {
	c.pulled++
	c.pending = &s
}

// Frame is the repaint opportunity: apply the pending step, let the
// scheduler advance, then fire due sweep entries. It reports whether another
// frame is needed.
func (c *Coordinator) Frame(now time.Time) bool {
	c.now = now
	c.applyPending()
	running := c.sched.Tick(now)
	c.runSweep(now)
	return running || c.pending != nil || c.sweep != nil
}

func (c *Coordinator) applyPending() {
	if c.pending == nil {
		return
	}
	s := c.pending
	c.pending = nil

	c.array = s.Array
	c.highlight = s.Highlight
	c.applied++
	if !s.Highlight.IsNone() {
		c.tone.Play(c.frequency(s.Array[s.Highlight[0]]))
	}
}

func (c *Coordinator) handleComplete() {
	c.applyPending()
	c.complete = true
	c.highlight = sorting.NoHighlight
	c.sweep = &sweep{start: c.now, values: slices.Clone(c.array)}
	c.log.Debug("playback complete",
		"algorithm", c.opts.Algorithm,
		"size", len(c.array),
		"steps", c.sched.Steps(),
	)
}

func (c *Coordinator) runSweep(now time.Time) {
	sw := c.sweep
	if sw == nil {
		return
	}
	elapsed := now.Sub(sw.start)
	for sw.next < len(sw.values) && time.Duration(sw.next)*c.opts.SweepStride <= elapsed {
		i := sw.next
		c.highlight = sorting.Pair{i, i}
		c.tone.Play(c.frequency(sw.values[i]))
		sw.next++
	}
	if sw.next >= len(sw.values) {
		c.sweep = nil
	}
}

func (c *Coordinator) frequency(v int) float64 {
	return c.opts.BaseFrequency + float64(v)*c.opts.FrequencyScale
}

// Start plays the selected algorithm over the current array. It does nothing
// while a session runs or after completion; Reset first to go again.
func (c *Coordinator) Start(now time.Time) bool {
	if c.complete || c.sched.Running() {
		return false
	}
	d := sorting.Lookup(c.opts.Algorithm)
	interval := playback.EffectiveInterval(c.opts.Speed, d.SpeedMultiplier)
	c.now = now
	if !c.sched.Start(d.Produce(c.array), interval, now) {
		return false
	}
	c.log.Debug("playback started", "algorithm", d.ID, "size", len(c.array), "interval", interval)
	return true
}

// Reset cancels playback and any running sweep, then deals a fresh
// permutation.
func (c *Coordinator) Reset() {
	c.sched.Cancel()
	c.pending = nil
	c.sweep = nil
	c.complete = false
	c.applied = 0
	c.pulled = 0
	c.array = Permutation(c.rng, c.opts.Size)
	c.highlight = sorting.NoHighlight
	c.log.Debug("reset", "algorithm", c.opts.Algorithm, "size", c.opts.Size)
}

// SelectAlgorithm switches algorithms. An in-flight session is never
// retargeted; it is dropped along with the array.
func (c *Coordinator) SelectAlgorithm(id sorting.ID) {
	sorting.Lookup(id)
	c.opts.Algorithm = id
	c.Reset()
}

// SetArraySize expects a size already clamped to the configured bounds.
// Setting the current size is a no-op.
func (c *Coordinator) SetArraySize(n int) {
	if n == c.opts.Size {
		return
	}
	c.opts.Size = n
	c.Reset()
}

// SetSpeed expects a speed unit already clamped to the configured bounds and
// applies it to a running session as well.
func (c *Coordinator) SetSpeed(unit int) {
	c.opts.Speed = unit
	d := sorting.Lookup(c.opts.Algorithm)
	c.sched.SetInterval(playback.EffectiveInterval(unit, d.SpeedMultiplier))
}

func (c *Coordinator) Options() Options { return c.opts }

func (c *Coordinator) Snapshot() Snapshot {
	d := sorting.Lookup(c.opts.Algorithm)
	return Snapshot{
		Array:     slices.Clone(c.array),
		Highlight: c.highlight,
		Complete:  c.complete,
		Running:   c.sched.Running(),
		Sweeping:  c.sweep != nil,
		Algorithm: d,
		Size:      c.opts.Size,
		Speed:     c.opts.Speed,
		Interval:  playback.EffectiveInterval(c.opts.Speed, d.SpeedMultiplier),
		Applied:   c.applied,
		Pulled:    c.pulled,
	}
}

// Permutation returns 1..n in uniformly random order (Fisher–Yates).
func Permutation(rng *rand.Rand, n int) []int {
	a := make([]int, n)
	for i := range a {
		a[i] = i + 1
	}
	for i := n - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
	return a
}
